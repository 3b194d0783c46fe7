package adapters

import (
	"github.com/de-tools/treasury-atlas/pkg/models/api"
	"github.com/de-tools/treasury-atlas/pkg/models/domain"
)

// Report values are in millions; the API contract carries dollars.
const millions = 1_000_000

func dollars(a domain.Amount) float64 {
	if !a.Valid {
		return 0
	}
	return float64(a.Value) * millions
}

func dollarsPtr(a domain.Amount) *float64 {
	if !a.Valid {
		return nil
	}
	v := float64(a.Value) * millions
	return &v
}

func percentPtr(p domain.Percent) *float64 {
	if !p.Valid {
		return nil
	}
	v := p.Value
	return &v
}

func periodPtr(p *domain.Period) *string {
	if p == nil {
		return nil
	}
	s := p.String()
	return &s
}

func MapDomainSummaryEntryToApi(e domain.SummaryEntry) api.BudgetItem {
	return api.BudgetItem{
		Current:       dollars(e.Current),
		Previous:      dollarsPtr(e.Previous),
		ChangePercent: percentPtr(e.ChangePercent),
	}
}

func MapDomainDetailItemToApi(d domain.BudgetDetailItem) api.BudgetDetailItem {
	return api.BudgetDetailItem{
		Category:       d.Category,
		Current:        dollars(d.Current),
		Previous:       dollarsPtr(d.Previous),
		ChangePercent:  percentPtr(d.ChangePercent),
		BudgetEstimate: dollarsPtr(d.BudgetEstimate),
	}
}

func mapDetailItems(items []domain.BudgetDetailItem) []api.BudgetDetailItem {
	mapped := make([]api.BudgetDetailItem, 0, len(items))
	for _, d := range items {
		mapped = append(mapped, MapDomainDetailItemToApi(d))
	}
	return mapped
}

func MapDomainComparisonToApi(r domain.ComparisonResult) api.ComparisonResult {
	insights := make([]api.Insight, 0, len(r.Insights))
	for _, in := range r.Insights {
		insights = append(insights, api.Insight{
			Type:        string(in.Type),
			Message:     in.Message,
			Description: in.Description,
		})
	}
	return api.ComparisonResult{
		PrimaryPeriod:    r.PrimaryPeriod.String(),
		ComparisonPeriod: periodPtr(r.ComparisonPeriod),
		Summary: api.Summary{
			Receipts: MapDomainSummaryEntryToApi(r.Summary.Receipts),
			Outlays:  MapDomainSummaryEntryToApi(r.Summary.Outlays),
			Deficit:  MapDomainSummaryEntryToApi(r.Summary.Deficit),
			Debt:     MapDomainSummaryEntryToApi(r.Summary.Debt),
		},
		Detailed: api.Detailed{
			Receipts: mapDetailItems(r.Receipts),
			Outlays:  mapDetailItems(r.Outlays),
		},
		SignificantChanges: mapDetailItems(r.SignificantChanges),
		Insights:           insights,
	}
}

func MapDomainDepartmentItemToApi(d domain.DepartmentBudgetItem) api.DepartmentBudgetItem {
	return api.DepartmentBudgetItem{
		Department:       d.Department,
		ThisMonth:        dollars(d.ThisMonth),
		FiscalYearToDate: dollars(d.FiscalYearToDate),
		PriorPeriod:      dollars(d.PriorPeriod),
		BudgetEstimate:   dollars(d.BudgetEstimate),
		RatioPercentage:  percentPtr(d.RatioPercentage),
	}
}

func mapDepartmentItems(items []domain.DepartmentBudgetItem) []api.DepartmentBudgetItem {
	mapped := make([]api.DepartmentBudgetItem, 0, len(items))
	for _, d := range items {
		mapped = append(mapped, MapDomainDepartmentItemToApi(d))
	}
	return mapped
}

func MapDomainDepartmentComparisonToApi(r domain.DepartmentComparisonResult) api.DepartmentComparisonResult {
	return api.DepartmentComparisonResult{
		PrimaryPeriod:         r.PrimaryPeriod.String(),
		ComparisonPeriod:      periodPtr(r.ComparisonPeriod),
		Departments:           mapDepartmentItems(r.Departments),
		TopDepartments:        mapDepartmentItems(r.TopDepartments),
		BottomDepartments:     mapDepartmentItems(r.BottomDepartments),
		ComparisonDepartments: mapDepartmentItems(r.ComparisonDepartments),
	}
}

func MapDomainDiagnosticToApi(d domain.Diagnostic) api.Diagnostic {
	return api.Diagnostic{
		Kind:   string(d.Kind),
		Line:   d.Line,
		Label:  d.Label,
		Detail: d.Detail,
	}
}
