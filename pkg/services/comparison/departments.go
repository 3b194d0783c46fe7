package comparison

import (
	"context"
	"sort"

	"github.com/de-tools/treasury-atlas/pkg/models/domain"
)

// CompareDepartments builds the department-granularity view of the Outlays
// section: per-department budget figures with this month's outlay as a
// percentage of the full-year estimate, ranked descending. With fewer than
// twice RankingSize departments the top and bottom slices overlap; that is
// accepted behavior, not deduplicated.
func (e *Engine) CompareDepartments(
	ctx context.Context,
	primary domain.Statement,
	comparison *domain.Statement,
) (domain.DepartmentComparisonResult, error) {
	if err := validate(primary, comparison); err != nil {
		return domain.DepartmentComparisonResult{}, err
	}

	departments := departmentItems(primary)
	result := domain.DepartmentComparisonResult{
		PrimaryPeriod:     primary.Period,
		Departments:       departments,
		TopDepartments:    head(departments, e.settings.RankingSize),
		BottomDepartments: tail(departments, e.settings.RankingSize),
	}
	if comparison != nil {
		p := comparison.Period
		result.ComparisonPeriod = &p
		result.ComparisonDepartments = departmentItems(*comparison)
	}
	return result, nil
}

// departmentItems restricts a statement to Outlays rows at department
// granularity: item level only, so subtotal and total aggregation rows never
// enter the ranking.
func departmentItems(stmt domain.Statement) []domain.DepartmentBudgetItem {
	var departments []domain.DepartmentBudgetItem
	for _, it := range stmt.SectionItems(domain.SectionOutlays) {
		if it.Department == "" {
			continue
		}
		departments = append(departments, domain.DepartmentBudgetItem{
			Department:       it.Department,
			ThisMonth:        it.ThisMonth,
			FiscalYearToDate: it.FiscalYearToDate,
			PriorPeriod:      it.PriorPeriodYTD,
			BudgetEstimate:   it.BudgetEstimate,
			RatioPercentage:  RatioPercentage(it.ThisMonth, it.BudgetEstimate),
		})
	}
	sortDepartments(departments)
	return departments
}

// RatioPercentage is this month's value as a percentage of the full-year
// budget estimate, undefined when either value is absent or the estimate is
// zero.
func RatioPercentage(thisMonth, budgetEstimate domain.Amount) domain.Percent {
	if !thisMonth.Valid || !budgetEstimate.Valid || budgetEstimate.Value == 0 {
		return domain.Percent{}
	}
	return domain.PercentOf(float64(thisMonth.Value) / float64(budgetEstimate.Value) * 100)
}

// sortDepartments orders descending by ratio percentage, ties broken by
// descending this-month outlay. Departments without a defined ratio sort
// after all ranked ones.
func sortDepartments(departments []domain.DepartmentBudgetItem) {
	sort.SliceStable(departments, func(i, j int) bool {
		a, b := departments[i], departments[j]
		switch {
		case a.RatioPercentage.Valid != b.RatioPercentage.Valid:
			return a.RatioPercentage.Valid
		case a.RatioPercentage.Valid && a.RatioPercentage.Value != b.RatioPercentage.Value:
			return a.RatioPercentage.Value > b.RatioPercentage.Value
		default:
			return amountValue(a.ThisMonth) > amountValue(b.ThisMonth)
		}
	})
}

func amountValue(a domain.Amount) int64 {
	if !a.Valid {
		return 0
	}
	return a.Value
}

func head(items []domain.DepartmentBudgetItem, n int) []domain.DepartmentBudgetItem {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

func tail(items []domain.DepartmentBudgetItem, n int) []domain.DepartmentBudgetItem {
	if len(items) < n {
		n = len(items)
	}
	return items[len(items)-n:]
}
