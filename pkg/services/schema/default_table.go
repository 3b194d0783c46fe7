package schema

import "github.com/de-tools/treasury-atlas/pkg/models/domain"

// DefaultTableVersion identifies the compiled-in alias table. Bump when the
// canonical schema changes so statements parsed under different table
// versions can be told apart.
const DefaultTableVersion = "2025.1"

// DefaultTable returns the compiled-in alias table covering the canonical
// Monthly Treasury Statement schema (Table 2 receipts categories, Table 9
// outlay departments) plus the historical label variants observed across
// statement vintages.
func DefaultTable() *Table {
	t, err := NewTable(DefaultTableVersion, defaultEntries)
	if err != nil {
		// The compiled-in table is validated by tests; a collision here is
		// a programming error, not an input condition.
		panic(err)
	}
	return t
}

var defaultEntries = []Entry{
	// Receipts categories.
	{
		ID: "individual_income_taxes", Display: "Individual Income Taxes",
		Section: domain.SectionReceipts, Level: domain.LevelItem,
	},
	{
		ID: "corporation_income_taxes", Display: "Corporation Income Taxes",
		Section: domain.SectionReceipts, Level: domain.LevelItem,
		Aliases: []string{"Corporate Income Taxes"},
	},
	{
		ID: "social_insurance_taxes", Display: "Social Insurance Taxes",
		Section: domain.SectionReceipts, Level: domain.LevelItem,
		Aliases: []string{"Social Insurance and Retirement Receipts", "Social Insurance and Retirement Receipts (On-Budget)"},
	},
	{
		ID: "excise_taxes", Display: "Excise Taxes",
		Section: domain.SectionReceipts, Level: domain.LevelItem,
	},
	{
		ID: "estate_and_gift_taxes", Display: "Estate and Gift Taxes",
		Section: domain.SectionReceipts, Level: domain.LevelItem,
	},
	{
		ID: "customs_duties", Display: "Customs Duties",
		Section: domain.SectionReceipts, Level: domain.LevelItem,
	},
	{
		ID: "miscellaneous_receipts", Display: "Miscellaneous Receipts",
		Section: domain.SectionReceipts, Level: domain.LevelItem,
		Aliases: []string{"Other", "Other Receipts"},
	},
	{
		ID: "total_receipts_on_budget", Display: "Total Receipts On-Budget",
		Section: domain.SectionReceipts, Level: domain.LevelSubtotal,
		Aliases: []string{"Total--On-Budget", "On-Budget"},
	},
	{
		ID: "total_receipts_off_budget", Display: "Total Receipts Off-Budget",
		Section: domain.SectionReceipts, Level: domain.LevelSubtotal,
		Aliases: []string{"Total--Off-Budget", "Off-Budget"},
	},
	{
		ID: "total_receipts", Display: "Total Receipts",
		Section: domain.SectionReceipts, Level: domain.LevelTotal,
		Aliases: []string{"Total Budget Receipts", "Total"},
	},

	// Outlay departments and agencies.
	{
		ID: "legislative_branch", Display: "Legislative Branch",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Legislative Branch",
	},
	{
		ID: "judicial_branch", Display: "Judicial Branch",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Judicial Branch",
	},
	{
		ID: "agriculture", Display: "Department of Agriculture",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of Agriculture",
		Aliases:    []string{"Agriculture"},
	},
	{
		ID: "commerce", Display: "Department of Commerce",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of Commerce",
		Aliases:    []string{"Commerce"},
	},
	{
		ID: "defense", Display: "Department of Defense",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of Defense",
		Aliases: []string{
			"Department of Defense--Military Programs",
			"Defense",
			"Defense--Military Programs",
		},
	},
	{
		ID: "education", Display: "Department of Education",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of Education",
		Aliases:    []string{"Education"},
	},
	{
		ID: "energy", Display: "Department of Energy",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of Energy",
		Aliases:    []string{"Energy"},
	},
	{
		ID: "health_and_human_services", Display: "Department of Health and Human Services",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of Health and Human Services",
		Aliases:    []string{"Health and Human Services", "HHS"},
	},
	{
		ID: "homeland_security", Display: "Department of Homeland Security",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of Homeland Security",
		Aliases:    []string{"Homeland Security", "DHS"},
	},
	{
		ID: "housing_and_urban_development", Display: "Department of Housing and Urban Development",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of Housing and Urban Development",
		Aliases:    []string{"Housing and Urban Development", "HUD"},
	},
	{
		ID: "interior", Display: "Department of the Interior",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of the Interior",
		Aliases:    []string{"Interior", "Department of Interior"},
	},
	{
		ID: "justice", Display: "Department of Justice",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of Justice",
		Aliases:    []string{"Justice"},
	},
	{
		ID: "labor", Display: "Department of Labor",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of Labor",
		Aliases:    []string{"Labor"},
	},
	{
		ID: "state", Display: "Department of State",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of State",
		Aliases:    []string{"State"},
	},
	{
		ID: "transportation", Display: "Department of Transportation",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of Transportation",
		Aliases:    []string{"Transportation"},
	},
	{
		ID: "treasury", Display: "Department of the Treasury",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of the Treasury",
		Aliases:    []string{"Treasury", "Department of Treasury"},
	},
	{
		ID: "veterans_affairs", Display: "Department of Veterans Affairs",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Department of Veterans Affairs",
		Aliases:    []string{"Veterans Affairs", "VA"},
	},
	{
		ID: "corps_of_engineers", Display: "Corps of Engineers",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Corps of Engineers",
		Aliases:    []string{"Corps of Engineers--Civil Works"},
	},
	{
		ID: "environmental_protection_agency", Display: "Environmental Protection Agency",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Environmental Protection Agency",
		Aliases:    []string{"EPA"},
	},
	{
		ID: "executive_office", Display: "Executive Office of the President",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Executive Office of the President",
	},
	{
		ID: "general_services_administration", Display: "General Services Administration",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "General Services Administration",
		Aliases:    []string{"GSA"},
	},
	{
		ID: "international_assistance", Display: "International Assistance Programs",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "International Assistance Programs",
	},
	{
		ID: "nasa", Display: "National Aeronautics and Space Administration",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "National Aeronautics and Space Administration",
		Aliases:    []string{"NASA"},
	},
	{
		ID: "national_science_foundation", Display: "National Science Foundation",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "National Science Foundation",
		Aliases:    []string{"NSF"},
	},
	{
		ID: "office_of_personnel_management", Display: "Office of Personnel Management",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Office of Personnel Management",
		Aliases:    []string{"OPM"},
	},
	{
		ID: "small_business_administration", Display: "Small Business Administration",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Small Business Administration",
		Aliases:    []string{"SBA"},
	},
	{
		ID: "social_security_administration", Display: "Social Security Administration",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Social Security Administration",
		Aliases:    []string{"SSA"},
	},
	{
		ID: "other_independent_agencies", Display: "Other Independent Agencies",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Department: "Other Independent Agencies",
		Aliases:    []string{"Independent Agencies"},
	},
	{
		ID: "interest_on_treasury_debt", Display: "Interest on Treasury Debt",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
		Aliases: []string{"Interest on Treasury Debt Securities (Gross)"},
	},
	{
		ID: "undistributed_offsetting_receipts", Display: "Undistributed Offsetting Receipts",
		Section: domain.SectionOutlays, Level: domain.LevelItem,
	},
	{
		ID: "total_outlays_on_budget", Display: "Total Outlays On-Budget",
		Section: domain.SectionOutlays, Level: domain.LevelSubtotal,
		Aliases: []string{"Total--On-Budget", "On-Budget"},
	},
	{
		ID: "total_outlays_off_budget", Display: "Total Outlays Off-Budget",
		Section: domain.SectionOutlays, Level: domain.LevelSubtotal,
		Aliases: []string{"Total--Off-Budget", "Off-Budget"},
	},
	{
		ID: "total_outlays", Display: "Total Outlays",
		Section: domain.SectionOutlays, Level: domain.LevelTotal,
		Aliases: []string{"Total Budget Outlays", "Total"},
	},

	// The surplus/deficit row closes the outlays half of the table. It is
	// not part of the outlays sum; the comparison engine cross-checks the
	// computed deficit against it.
	{
		ID: "surplus_deficit", Display: "Total Surplus (+) or Deficit (-)",
		Section: domain.SectionOutlays, Level: domain.LevelTotal,
		Aliases: []string{"Surplus (+) or Deficit (-)", "Total Surplus or Deficit"},
	},
}
