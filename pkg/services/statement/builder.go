package statement

import (
	"context"
	"fmt"
	"math"

	"github.com/de-tools/treasury-atlas/pkg/models/domain"
	"github.com/de-tools/treasury-atlas/pkg/services/parser"
	"github.com/de-tools/treasury-atlas/pkg/services/schema"
	"github.com/rs/zerolog"
)

// BuildSettings contains configurable thresholds for statement assembly.
type BuildSettings struct {
	// HierarchyTolerance is the maximum relative divergence allowed between
	// a section total and the sum of its item rows. The reports note that
	// details may not add to totals due to rounding (default: 0.005).
	HierarchyTolerance float64
}

// DefaultBuildSettings returns the default configuration for statement builds.
func DefaultBuildSettings() BuildSettings {
	return BuildSettings{HierarchyTolerance: 0.005}
}

var sectionTotals = map[domain.Section]string{
	domain.SectionReceipts: "total_receipts",
	domain.SectionOutlays:  "total_outlays",
}

// Build assembles normalized line items into a Statement. A duplicate
// canonical id is fatal: two source lines collapsed onto one id means the
// alias table has a collision that must be fixed, not merged over. A section
// total that disagrees with its summed items beyond tolerance flags the
// statement invalid and is reported as a diagnostic, never silently
// corrected.
func Build(
	ctx context.Context,
	period domain.Period,
	items []domain.LineItem,
	settings BuildSettings,
) (domain.Statement, []domain.Diagnostic, error) {
	logger := zerolog.Ctx(ctx)

	stmt := domain.Statement{
		Period: period,
		Items:  items,
		Valid:  true,
	}

	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.CanonicalID]; dup {
			return domain.Statement{}, nil, fmt.Errorf(
				"statement %s: %q: %w", period, it.CanonicalID, domain.ErrDuplicateItem)
		}
		seen[it.CanonicalID] = struct{}{}

		if it.Level == domain.LevelSubtotal || it.Level == domain.LevelTotal {
			stmt.Aggregates = append(stmt.Aggregates, it.CanonicalID)
		}
	}

	var diagnostics []domain.Diagnostic
	for section, totalID := range sectionTotals {
		total, ok := stmt.Item(totalID)
		if !ok {
			continue
		}
		diags := checkSectionTotal(stmt, section, total, settings.HierarchyTolerance)
		for _, d := range diags {
			logger.Warn().
				Str("period", period.String()).
				Str("section", string(section)).
				Str("detail", d.Detail).
				Msg("hierarchy violation")
		}
		if len(diags) > 0 {
			stmt.Valid = false
			diagnostics = append(diagnostics, diags...)
		}
	}

	return stmt, diagnostics, nil
}

type column struct {
	name string
	get  func(domain.LineItem) domain.Amount
}

var columns = []column{
	{"this_month", func(it domain.LineItem) domain.Amount { return it.ThisMonth }},
	{"fiscal_year_to_date", func(it domain.LineItem) domain.Amount { return it.FiscalYearToDate }},
	{"prior_period_ytd", func(it domain.LineItem) domain.Amount { return it.PriorPeriodYTD }},
	{"budget_estimate_full_year", func(it domain.LineItem) domain.Amount { return it.BudgetEstimate }},
}

// checkSectionTotal validates every value column of a section total against
// the sum of the section's item rows. Absent item values contribute nothing;
// an absent total value is not checked.
func checkSectionTotal(
	stmt domain.Statement,
	section domain.Section,
	total domain.LineItem,
	tolerance float64,
) []domain.Diagnostic {
	var diags []domain.Diagnostic
	items := stmt.SectionItems(section)

	for _, col := range columns {
		declared := col.get(total)
		if !declared.Valid {
			continue
		}
		var sum int64
		for _, it := range items {
			if v := col.get(it); v.Valid {
				sum += v.Value
			}
		}
		if !withinTolerance(sum, declared.Value, tolerance) {
			diags = append(diags, domain.Diagnostic{
				Kind:  domain.DiagHierarchyViolation,
				Label: total.Label,
				Detail: fmt.Sprintf("%s %s: declared total %d, summed items %d",
					section, col.name, declared.Value, sum),
			})
		}
	}
	return diags
}

// withinTolerance compares using relative tolerance against the declared
// value, with a floor of one report unit so near-zero totals do not demand
// exact equality.
func withinTolerance(sum, declared int64, tolerance float64) bool {
	diff := math.Abs(float64(sum - declared))
	limit := tolerance * math.Abs(float64(declared))
	if limit < 1 {
		limit = 1
	}
	return diff <= limit
}

// Builder runs the full pipeline for one period: raw lines through the line
// parser and schema normalizer into a validated Statement.
type Builder struct {
	table    *schema.Table
	settings BuildSettings
}

func NewBuilder(table *schema.Table, settings BuildSettings) *Builder {
	return &Builder{table: table, settings: settings}
}

// BuildFromLines parses one statement's raw text. Recoverable conditions are
// accumulated into the returned diagnostics; only a duplicate canonical id
// fails the build.
func (b *Builder) BuildFromLines(
	ctx context.Context,
	period domain.Period,
	lines []string,
) (domain.Statement, []domain.Diagnostic, error) {
	parsed, diagnostics := parser.Scan(ctx, lines)

	items := make([]domain.LineItem, 0, len(parsed))
	for _, p := range parsed {
		item, diag := b.table.Resolve(p)
		if diag != nil {
			diagnostics = append(diagnostics, *diag)
			zerolog.Ctx(ctx).Warn().
				Str("label", p.Label).
				Int("line", p.Line).
				Msg("unknown label, using normalized fallback id")
		}
		items = append(items, item)
	}

	stmt, buildDiags, err := Build(ctx, period, items, b.settings)
	if err != nil {
		return domain.Statement{}, diagnostics, err
	}
	return stmt, append(diagnostics, buildDiags...), nil
}
