// Package api defines the JSON shapes handed to the presentation layer.
// Monetary values are in dollars; undefined previous/change/ratio figures
// serialize as null, never zero.
package api

type BudgetItem struct {
	Current       float64  `json:"current"`
	Previous      *float64 `json:"previous"`
	ChangePercent *float64 `json:"change_percent"`
}

type Summary struct {
	Receipts BudgetItem `json:"receipts"`
	Outlays  BudgetItem `json:"outlays"`
	Deficit  BudgetItem `json:"deficit"`
	Debt     BudgetItem `json:"debt"`
}

type BudgetDetailItem struct {
	Category       string   `json:"category"`
	Current        float64  `json:"current"`
	Previous       *float64 `json:"previous"`
	ChangePercent  *float64 `json:"change_percent"`
	BudgetEstimate *float64 `json:"budget_estimate,omitempty"`
}

type Detailed struct {
	Receipts []BudgetDetailItem `json:"receipts"`
	Outlays  []BudgetDetailItem `json:"outlays"`
}

type Insight struct {
	Type        string `json:"type"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

type ComparisonResult struct {
	PrimaryPeriod      string             `json:"primary_period"`
	ComparisonPeriod   *string            `json:"comparison_period"`
	Summary            Summary            `json:"summary"`
	Detailed           Detailed           `json:"detailed"`
	SignificantChanges []BudgetDetailItem `json:"significant_changes"`
	Insights           []Insight          `json:"insights"`
}

type DepartmentBudgetItem struct {
	Department       string   `json:"department"`
	ThisMonth        float64  `json:"this_month"`
	FiscalYearToDate float64  `json:"fiscal_year_to_date"`
	PriorPeriod      float64  `json:"prior_period"`
	BudgetEstimate   float64  `json:"budget_estimate"`
	RatioPercentage  *float64 `json:"ratio_percentage"`
}

type DepartmentComparisonResult struct {
	PrimaryPeriod         string                 `json:"primary_period"`
	ComparisonPeriod      *string                `json:"comparison_period"`
	Departments           []DepartmentBudgetItem `json:"departments"`
	TopDepartments        []DepartmentBudgetItem `json:"top_departments"`
	BottomDepartments     []DepartmentBudgetItem `json:"bottom_departments"`
	ComparisonDepartments []DepartmentBudgetItem `json:"comparison_departments,omitempty"`
}

type Diagnostic struct {
	Kind   string `json:"kind"`
	Line   int    `json:"line,omitempty"`
	Label  string `json:"label,omitempty"`
	Detail string `json:"detail"`
}
