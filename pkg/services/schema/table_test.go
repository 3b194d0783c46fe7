package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/treasury-atlas/pkg/models/domain"
	"github.com/de-tools/treasury-atlas/pkg/services/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Individual Income Taxes  ", "individual income taxes"},
		{"Individual   Income\tTaxes", "individual income taxes"},
		{"Department of Education 1/", "department of education"},
		{"Department of Education 1", "department of education"},
		{"Interest on Treasury Debt:", "interest on treasury debt"},
		{"Department of Defense--Military Programs", "department of defense military programs"},
		{"Excise Taxes ..........", "excise taxes"},
		{"Customs Duties *", "customs duties"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeLabel(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeLabel_Idempotent(t *testing.T) {
	labels := []string{
		"Individual Income Taxes",
		"Department of Defense--Military Programs 2/",
		"Total Surplus (+) or Deficit (-)",
	}
	for _, label := range labels {
		once := NormalizeLabel(label)
		assert.Equal(t, once, NormalizeLabel(once), "normalization must be a no-op on canonical labels")
	}
}

func TestResolve_AliasVariantsShareCanonicalID(t *testing.T) {
	table := DefaultTable()

	variants := []string{
		"Department of Defense--Military Programs",
		"Defense",
		"Department of Defense 3/",
	}
	for _, label := range variants {
		item, diag := table.Resolve(parser.ParsedLine{
			Label:   label,
			Section: domain.SectionOutlays,
		})
		assert.Nil(t, diag, "label %q should be registered", label)
		assert.Equal(t, "defense", item.CanonicalID)
		assert.Equal(t, "Department of Defense", item.Label)
		assert.Equal(t, domain.LevelItem, item.Level)
		assert.Equal(t, "Department of Defense", item.Department)
	}
}

func TestResolve_SectionScopedLookup(t *testing.T) {
	table := DefaultTable()

	receiptsTotal, diag := table.Resolve(parser.ParsedLine{Label: "Total", Section: domain.SectionReceipts})
	require.Nil(t, diag)
	outlaysTotal, diag := table.Resolve(parser.ParsedLine{Label: "Total", Section: domain.SectionOutlays})
	require.Nil(t, diag)

	assert.Equal(t, "total_receipts", receiptsTotal.CanonicalID)
	assert.Equal(t, "total_outlays", outlaysTotal.CanonicalID)
}

func TestResolve_UnknownLabelFallsBack(t *testing.T) {
	table := DefaultTable()

	item, diag := table.Resolve(parser.ParsedLine{
		Label:   "Allowances for Contingencies",
		Section: domain.SectionOutlays,
		Line:    17,
	})

	require.NotNil(t, diag)
	assert.Equal(t, domain.DiagUnknownLabel, diag.Kind)
	assert.Equal(t, 17, diag.Line)
	assert.Equal(t, "allowances for contingencies", item.CanonicalID)
	assert.Equal(t, domain.LevelItem, item.Level)
}

func TestResolve_UnknownTotalLevelInference(t *testing.T) {
	table := DefaultTable()

	top, _ := table.Resolve(parser.ParsedLine{Label: "Total Means of Financing", Section: domain.SectionOutlays})
	assert.Equal(t, domain.LevelTotal, top.Level)

	nested, _ := table.Resolve(parser.ParsedLine{Label: "Total Trust Funds", Section: domain.SectionOutlays, Indent: 4})
	assert.Equal(t, domain.LevelSubtotal, nested.Level)

	onBudget, _ := table.Resolve(parser.ParsedLine{Label: "Receipts--On-Budget Portion", Section: domain.SectionReceipts})
	assert.Equal(t, domain.LevelSubtotal, onBudget.Level)
}

func TestLoadTable_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aliases.yaml")
	content := `version: "2026.1"
entries:
  - id: defense
    display: Department of Defense
    section: outlays
    level: item
    department: Department of Defense
    aliases:
      - Defense
      - Department of Defense--Military Programs
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, "2026.1", table.Version())

	item, diag := table.Resolve(parser.ParsedLine{Label: "Defense", Section: domain.SectionOutlays})
	assert.Nil(t, diag)
	assert.Equal(t, "defense", item.CanonicalID)
}

func TestMerge_AliasCollisionRejected(t *testing.T) {
	table := DefaultTable()

	err := table.Merge([]Entry{{
		ID:      "not_defense",
		Display: "Something Else",
		Section: domain.SectionOutlays,
		Level:   domain.LevelItem,
		Aliases: []string{"Defense"},
	}})

	assert.Error(t, err)
}

func TestMerge_ExtendsDefault(t *testing.T) {
	table := DefaultTable()

	require.NoError(t, table.Merge([]Entry{{
		ID:      "railroad_retirement_board",
		Display: "Railroad Retirement Board",
		Section: domain.SectionOutlays,
		Level:   domain.LevelItem,
		Aliases: []string{"RRB"},
	}}))

	item, diag := table.Resolve(parser.ParsedLine{Label: "RRB", Section: domain.SectionOutlays})
	assert.Nil(t, diag)
	assert.Equal(t, "railroad_retirement_board", item.CanonicalID)
}
