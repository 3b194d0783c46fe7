// Package insight turns the significant-change set of a comparison into
// human-readable, severity-tagged insight records via a static rule table.
package insight

import (
	"fmt"

	"github.com/de-tools/treasury-atlas/pkg/models/domain"
)

// Settings contains configurable thresholds for insight generation.
type Settings struct {
	// WarningThreshold is the outlay-increase percentage flagged as a
	// warning rather than info (default: 20).
	WarningThreshold float64
	// MaxInsights caps the emitted insights by truncating the
	// significant-changes input before rule evaluation, preserving the
	// magnitude ordering (default: 10).
	MaxInsights int
}

// DefaultSettings returns the default configuration for insight generation.
func DefaultSettings() Settings {
	return Settings{
		WarningThreshold: 20,
		MaxInsights:      10,
	}
}

type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

type ruleKey struct {
	canonicalID string
	direction   Direction
}

type sectionKey struct {
	section   domain.Section
	direction Direction
}

// Generator evaluates significant changes against the description tables.
// The tables are read-only after construction; concurrent use needs no
// locking.
type Generator struct {
	settings     Settings
	descriptions map[ruleKey]string
	fallbacks    map[sectionKey]string
}

func NewGenerator(settings Settings) *Generator {
	return &Generator{
		settings:     settings,
		descriptions: defaultDescriptions,
		fallbacks:    defaultFallbacks,
	}
}

// Describe registers or overrides the explanatory text for one category and
// direction. Call during setup, before the generator is shared.
func (g *Generator) Describe(canonicalID string, direction Direction, description string) {
	if len(g.descriptions) == len(defaultDescriptions) {
		// Copy-on-first-write so the package-level default table stays
		// untouched.
		copied := make(map[ruleKey]string, len(defaultDescriptions)+1)
		for k, v := range g.descriptions {
			copied[k] = v
		}
		g.descriptions = copied
	}
	g.descriptions[ruleKey{canonicalID, direction}] = description
}

// Generate emits one insight per significant change, in the input's
// magnitude ordering. An outlay-category increase at or above the warning
// threshold is a warning; everything else is info.
func (g *Generator) Generate(changes []domain.BudgetDetailItem) []domain.Insight {
	if len(changes) == 0 {
		return nil
	}
	if g.settings.MaxInsights > 0 && len(changes) > g.settings.MaxInsights {
		changes = changes[:g.settings.MaxInsights]
	}

	insights := make([]domain.Insight, 0, len(changes))
	for _, change := range changes {
		if !change.ChangePercent.Valid {
			continue
		}
		direction := DirectionIncrease
		magnitude := change.ChangePercent.Value
		if magnitude < 0 {
			direction = DirectionDecrease
			magnitude = -magnitude
		}

		kind := domain.InsightInfo
		if change.Section == domain.SectionOutlays &&
			direction == DirectionIncrease &&
			magnitude >= g.settings.WarningThreshold {
			kind = domain.InsightWarning
		}

		insights = append(insights, domain.Insight{
			Type: kind,
			Message: fmt.Sprintf("%s %sd %.1f%% compared to the prior period",
				change.Category, direction, magnitude),
			Description: g.description(change, direction),
		})
	}
	return insights
}

func (g *Generator) description(change domain.BudgetDetailItem, direction Direction) string {
	if d, ok := g.descriptions[ruleKey{change.CanonicalID, direction}]; ok {
		return d
	}
	return g.fallbacks[sectionKey{change.Section, direction}]
}

var defaultDescriptions = map[ruleKey]string{
	{"interest_on_treasury_debt", DirectionIncrease}: "Rising interest rates and increased federal debt are driving higher interest expenses.",
	{"individual_income_taxes", DirectionIncrease}:   "Strong labor market and wage growth are contributing to higher income tax receipts.",
	{"social_insurance_taxes", DirectionIncrease}:    "Employment growth and wage increases are driving higher payroll tax collections.",
	{"corporation_income_taxes", DirectionIncrease}:  "Higher corporate profits and estimated payments are lifting corporate tax receipts.",
}

var defaultFallbacks = map[sectionKey]string{
	{domain.SectionReceipts, DirectionIncrease}: "Receipts in this category are running ahead of the comparison period.",
	{domain.SectionReceipts, DirectionDecrease}: "Receipts in this category are running behind the comparison period.",
	{domain.SectionOutlays, DirectionIncrease}:  "Spending in this category is growing faster than in the comparison period.",
	{domain.SectionOutlays, DirectionDecrease}:  "Spending in this category has declined from the comparison period.",
}
