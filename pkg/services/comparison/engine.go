package comparison

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/de-tools/treasury-atlas/pkg/models/domain"
	"github.com/de-tools/treasury-atlas/pkg/services/insight"
	"github.com/rs/zerolog"
)

// Settings contains configurable thresholds for statement comparison.
type Settings struct {
	// SignificanceThreshold is the minimum absolute change percentage for
	// a line item to count as a significant change (default: 5).
	SignificanceThreshold float64
	// RankingSize is the length of the top/bottom department slices
	// (default: 5).
	RankingSize int
	// DeficitTolerance is the maximum relative divergence allowed between
	// the computed deficit and the statement's surplus/deficit row, using
	// the same rule as the section-total check (default: 0.005).
	DeficitTolerance float64
}

// DefaultSettings returns the default configuration for comparisons.
func DefaultSettings() Settings {
	return Settings{
		SignificanceThreshold: 5,
		RankingSize:           5,
		DeficitTolerance:      0.005,
	}
}

// Engine aligns two statements by canonical id and derives the comparison
// aggregates. Stateless beyond its read-only collaborators; safe for
// concurrent use.
type Engine struct {
	settings Settings
	debt     DebtProvider
	insights *insight.Generator
}

func NewEngine(debt DebtProvider, insights *insight.Generator, settings Settings) *Engine {
	return &Engine{
		settings: settings,
		debt:     debt,
		insights: insights,
	}
}

// Compare computes the full comparison for a primary statement and an
// optional comparison statement. With no comparison statement every
// previous/change_percent field stays undefined and significant changes and
// insights are empty; the engine never synthesizes a zero-change baseline.
func (e *Engine) Compare(
	ctx context.Context,
	primary domain.Statement,
	comparison *domain.Statement,
) (domain.ComparisonResult, error) {
	if err := validate(primary, comparison); err != nil {
		return domain.ComparisonResult{}, err
	}

	result := domain.ComparisonResult{
		PrimaryPeriod: primary.Period,
		Receipts:      e.alignSection(primary, comparison, domain.SectionReceipts),
		Outlays:       e.alignSection(primary, comparison, domain.SectionOutlays),
	}
	if comparison != nil {
		p := comparison.Period
		result.ComparisonPeriod = &p
	}

	summary, err := e.buildSummary(ctx, primary, comparison)
	if err != nil {
		return domain.ComparisonResult{}, err
	}
	result.Summary = summary

	if comparison != nil {
		result.SignificantChanges = e.significantChanges(result.Receipts, result.Outlays)
		result.Insights = e.insights.Generate(result.SignificantChanges)
	}
	return result, nil
}

func validate(primary domain.Statement, comparison *domain.Statement) error {
	if !primary.Valid {
		return fmt.Errorf("primary statement %s: %w", primary.Period, domain.ErrStatementInvalid)
	}
	if comparison != nil && !comparison.Valid {
		return fmt.Errorf("comparison statement %s: %w", comparison.Period, domain.ErrStatementInvalid)
	}
	return nil
}

// alignSection joins the primary section's item rows with the comparison
// statement by canonical id. An id present only in the primary statement
// keeps previous and change_percent undefined: a genuinely new category is
// not a zero-percent change from a value that did not exist.
func (e *Engine) alignSection(
	primary domain.Statement,
	comparison *domain.Statement,
	section domain.Section,
) []domain.BudgetDetailItem {
	items := primary.SectionItems(section)
	details := make([]domain.BudgetDetailItem, 0, len(items))
	for _, it := range items {
		detail := domain.BudgetDetailItem{
			CanonicalID:    it.CanonicalID,
			Category:       it.Label,
			Section:        section,
			Current:        it.ThisMonth,
			BudgetEstimate: it.BudgetEstimate,
		}
		if comparison != nil {
			if prev, ok := comparison.Item(it.CanonicalID); ok {
				detail.Previous = prev.ThisMonth
				detail.ChangePercent = ChangePercent(it.ThisMonth, prev.ThisMonth)
			}
		}
		details = append(details, detail)
	}
	return details
}

// ChangePercent is (current − previous) / |previous| × 100, undefined when
// either value is absent or previous is zero. Undefined is an explicit
// state, never coerced to zero or infinity.
func ChangePercent(current, previous domain.Amount) domain.Percent {
	if !current.Valid || !previous.Valid || previous.Value == 0 {
		return domain.Percent{}
	}
	change := float64(current.Value-previous.Value) / math.Abs(float64(previous.Value)) * 100
	return domain.PercentOf(change)
}

func (e *Engine) buildSummary(
	ctx context.Context,
	primary domain.Statement,
	comparison *domain.Statement,
) (domain.Summary, error) {
	receipts, outlays, deficit, err := e.summaryFigures(primary)
	if err != nil {
		return domain.Summary{}, err
	}
	debt := e.lookupDebt(ctx, primary.Period)

	summary := domain.Summary{
		Receipts: domain.SummaryEntry{Current: receipts},
		Outlays:  domain.SummaryEntry{Current: outlays},
		Deficit:  domain.SummaryEntry{Current: deficit},
		Debt:     domain.SummaryEntry{Current: debt},
	}
	if comparison == nil {
		return summary, nil
	}

	prevReceipts, prevOutlays, prevDeficit, err := e.summaryFigures(*comparison)
	if err != nil {
		return domain.Summary{}, err
	}
	prevDebt := e.lookupDebt(ctx, comparison.Period)

	summary.Receipts.Previous = prevReceipts
	summary.Receipts.ChangePercent = ChangePercent(receipts, prevReceipts)
	summary.Outlays.Previous = prevOutlays
	summary.Outlays.ChangePercent = ChangePercent(outlays, prevOutlays)
	summary.Deficit.Previous = prevDeficit
	summary.Deficit.ChangePercent = ChangePercent(deficit, prevDeficit)
	summary.Debt.Previous = prevDebt
	summary.Debt.ChangePercent = ChangePercent(debt, prevDebt)
	return summary, nil
}

// summaryFigures extracts the section totals and derives the deficit.
// Positive deficit means outlays exceed receipts. The derived figure is
// cross-checked against the statement's own surplus/deficit row; divergence
// beyond tolerance means the statement was misparsed and the comparison is
// refused rather than reported with misleading numbers.
func (e *Engine) summaryFigures(stmt domain.Statement) (receipts, outlays, deficit domain.Amount, err error) {
	if total, ok := stmt.Item("total_receipts"); ok {
		receipts = total.ThisMonth
	}
	if total, ok := stmt.Item("total_outlays"); ok {
		outlays = total.ThisMonth
	}
	if receipts.Valid && outlays.Valid {
		deficit = domain.AmountOf(outlays.Value - receipts.Value)
	}

	row, ok := stmt.Item("surplus_deficit")
	if ok && row.ThisMonth.Valid && deficit.Valid {
		// The report row carries surplus as positive, deficit as negative.
		declared := -row.ThisMonth.Value
		diff := math.Abs(float64(deficit.Value - declared))
		limit := e.settings.DeficitTolerance * math.Abs(float64(declared))
		if limit < 1 {
			limit = 1
		}
		if diff > limit {
			return domain.Amount{}, domain.Amount{}, domain.Amount{}, fmt.Errorf(
				"statement %s: derived deficit %d disagrees with surplus/deficit row %d: %w",
				stmt.Period, deficit.Value, declared, domain.ErrStatementInvalid)
		}
	}
	return receipts, outlays, deficit, nil
}

func (e *Engine) lookupDebt(ctx context.Context, period domain.Period) domain.Amount {
	if e.debt == nil {
		return domain.Amount{}
	}
	debt, err := e.debt.Debt(ctx, period)
	if err != nil {
		zerolog.Ctx(ctx).Warn().
			Str("period", period.String()).
			Err(err).
			Msg("debt lookup failed, reporting debt as absent")
		return domain.Amount{}
	}
	return debt
}

// significantChanges filters the aligned items down to those with a defined
// change at or beyond the significance threshold, ordered by descending
// absolute change. Undefined changes never qualify.
func (e *Engine) significantChanges(sections ...[]domain.BudgetDetailItem) []domain.BudgetDetailItem {
	var significant []domain.BudgetDetailItem
	for _, section := range sections {
		for _, d := range section {
			if d.ChangePercent.Valid && math.Abs(d.ChangePercent.Value) >= e.settings.SignificanceThreshold {
				significant = append(significant, d)
			}
		}
	}
	sort.SliceStable(significant, func(i, j int) bool {
		return math.Abs(significant[i].ChangePercent.Value) > math.Abs(significant[j].ChangePercent.Value)
	})
	return significant
}
