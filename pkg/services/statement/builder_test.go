package statement

import (
	"context"
	"testing"
	"time"

	"github.com/de-tools/treasury-atlas/pkg/models/domain"
	"github.com/de-tools/treasury-atlas/pkg/services/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var feb24 = domain.Period{Month: time.February, Year: 2024}

func receiptsItem(id, label string, thisMonth int64) domain.LineItem {
	return domain.LineItem{
		CanonicalID: id,
		Label:       label,
		Section:     domain.SectionReceipts,
		Level:       domain.LevelItem,
		ThisMonth:   domain.AmountOf(thisMonth),
	}
}

func TestBuild_ValidStatement(t *testing.T) {
	items := []domain.LineItem{
		receiptsItem("individual_income_taxes", "Individual Income Taxes", 198779),
		receiptsItem("corporation_income_taxes", "Corporation Income Taxes", 7929),
		{
			CanonicalID: "total_receipts_on_budget",
			Section:     domain.SectionReceipts,
			Level:       domain.LevelSubtotal,
			ThisMonth:   domain.AmountOf(180000),
		},
		{
			CanonicalID: "total_receipts",
			Label:       "Total Receipts",
			Section:     domain.SectionReceipts,
			Level:       domain.LevelTotal,
			ThisMonth:   domain.AmountOf(206708),
		},
	}

	stmt, diags, err := Build(context.Background(), feb24, items, DefaultBuildSettings())

	require.NoError(t, err)
	assert.True(t, stmt.Valid)
	assert.Empty(t, diags)
	assert.Equal(t, feb24, stmt.Period)
	assert.ElementsMatch(t, []string{"total_receipts_on_budget", "total_receipts"}, stmt.Aggregates)
}

func TestBuild_TotalWithinRoundingTolerance(t *testing.T) {
	// Details may not add to totals due to rounding; 0.5% slack covers it.
	items := []domain.LineItem{
		receiptsItem("individual_income_taxes", "Individual Income Taxes", 100000),
		{
			CanonicalID: "total_receipts",
			Section:     domain.SectionReceipts,
			Level:       domain.LevelTotal,
			ThisMonth:   domain.AmountOf(100400),
		},
	}

	stmt, diags, err := Build(context.Background(), feb24, items, DefaultBuildSettings())

	require.NoError(t, err)
	assert.True(t, stmt.Valid)
	assert.Empty(t, diags)
}

func TestBuild_HierarchyViolationFlagsInvalid(t *testing.T) {
	items := []domain.LineItem{
		receiptsItem("individual_income_taxes", "Individual Income Taxes", 100000),
		receiptsItem("excise_taxes", "Excise Taxes", 5000),
		{
			CanonicalID: "total_receipts",
			Label:       "Total Receipts",
			Section:     domain.SectionReceipts,
			Level:       domain.LevelTotal,
			ThisMonth:   domain.AmountOf(150000),
		},
	}

	stmt, diags, err := Build(context.Background(), feb24, items, DefaultBuildSettings())

	require.NoError(t, err)
	assert.False(t, stmt.Valid, "statement must be flagged, not silently corrected")
	require.NotEmpty(t, diags)
	assert.Equal(t, domain.DiagHierarchyViolation, diags[0].Kind)
}

func TestBuild_AbsentColumnsNotValidated(t *testing.T) {
	items := []domain.LineItem{
		receiptsItem("individual_income_taxes", "Individual Income Taxes", 100000),
		{
			CanonicalID: "total_receipts",
			Section:     domain.SectionReceipts,
			Level:       domain.LevelTotal,
			ThisMonth:   domain.AmountOf(100000),
			// FiscalYearToDate left absent on the total: no check applies.
		},
	}

	stmt, diags, err := Build(context.Background(), feb24, items, DefaultBuildSettings())

	require.NoError(t, err)
	assert.True(t, stmt.Valid)
	assert.Empty(t, diags)
}

func TestBuild_DuplicateCanonicalIDFatal(t *testing.T) {
	items := []domain.LineItem{
		receiptsItem("individual_income_taxes", "Individual Income Taxes", 100000),
		receiptsItem("individual_income_taxes", "Individual Income Taxes 1/", 100),
	}

	_, _, err := Build(context.Background(), feb24, items, DefaultBuildSettings())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateItem)
}

func TestBuildFromLines_FullPipeline(t *testing.T) {
	lines := []string{
		"BUDGET RECEIPTS",
		"Individual Income Taxes ........ 198,779 926,432 812,909 2,355,223",
		"Corporation Income Taxes ....... 7,929 87,562 79,001 382,000",
		"Total ........................... 206,708 1,013,994 891,910 2,737,223",
		"BUDGET OUTLAYS",
		"Department of Defense--Military Programs ... 61,355 345,021 330,010 842,000",
		"Department of Health and Human Services .... 145,068 682,511 640,220 1,650,000",
		"Mystery Allowance ... 10 10 10 10",
		"Total ....................................... 206,433 1,027,542 970,240 2,492,010",
	}
	builder := NewBuilder(schema.DefaultTable(), DefaultBuildSettings())

	stmt, diags, err := builder.BuildFromLines(context.Background(), feb24, lines)

	require.NoError(t, err)
	assert.True(t, stmt.Valid)

	defense, ok := stmt.Item("defense")
	require.True(t, ok)
	assert.Equal(t, domain.AmountOf(61355), defense.ThisMonth)
	assert.Equal(t, "Department of Defense", defense.Label)
	assert.Equal(t, "Department of Defense--Military Programs", defense.RawLabel)

	total, ok := stmt.Item("total_receipts")
	require.True(t, ok)
	assert.Equal(t, domain.AmountOf(206708), total.ThisMonth)

	require.Len(t, diags, 1)
	assert.Equal(t, domain.DiagUnknownLabel, diags[0].Kind)
	assert.Equal(t, "Mystery Allowance", diags[0].Label)

	mystery, ok := stmt.Item("mystery allowance")
	require.True(t, ok, "unknown labels are kept under the normalized fallback id")
	assert.Equal(t, domain.LevelItem, mystery.Level)
}
