package domain

type InsightType string

const (
	InsightInfo    InsightType = "info"
	InsightWarning InsightType = "warning"
)

// Insight is a human-readable, severity-tagged observation derived from the
// significant-change set. Stateless; recomputed per comparison.
type Insight struct {
	Type        InsightType
	Message     string
	Description string
}

// SummaryEntry holds one summary figure for the primary period and, when a
// comparison period was supplied, the previous figure and the change.
type SummaryEntry struct {
	Current       Amount
	Previous      Amount
	ChangePercent Percent
}

type Summary struct {
	Receipts SummaryEntry
	Outlays  SummaryEntry
	Deficit  SummaryEntry
	Debt     SummaryEntry
}

// BudgetDetailItem is one aligned line item of a comparison. Previous and
// ChangePercent are undefined (not zero) for categories absent from the
// comparison statement.
type BudgetDetailItem struct {
	CanonicalID    string
	Category       string
	Section        Section
	Current        Amount
	Previous       Amount
	ChangePercent  Percent
	BudgetEstimate Amount
}

// DepartmentBudgetItem is the Outlays view at department granularity.
// RatioPercentage is this month's outlay as a percentage of the full-year
// budget estimate, undefined when the estimate is zero or absent.
type DepartmentBudgetItem struct {
	Department       string
	ThisMonth        Amount
	FiscalYearToDate Amount
	PriorPeriod      Amount
	BudgetEstimate   Amount
	RatioPercentage  Percent
}

// ComparisonResult is the full output of one comparison request. Pure
// derivation; holds no identity beyond the period pair that produced it.
type ComparisonResult struct {
	PrimaryPeriod    Period
	ComparisonPeriod *Period

	Summary  Summary
	Receipts []BudgetDetailItem
	Outlays  []BudgetDetailItem

	SignificantChanges []BudgetDetailItem
	Insights           []Insight
}

// DepartmentComparisonResult ranks departments by budget-consumption ratio.
// With fewer than ten departments the top and bottom slices may overlap;
// consumers must not assume disjointness.
type DepartmentComparisonResult struct {
	PrimaryPeriod    Period
	ComparisonPeriod *Period

	Departments           []DepartmentBudgetItem
	TopDepartments        []DepartmentBudgetItem
	BottomDepartments     []DepartmentBudgetItem
	ComparisonDepartments []DepartmentBudgetItem
}
