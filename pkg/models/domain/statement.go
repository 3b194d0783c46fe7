package domain

import (
	"fmt"
	"strconv"
	"time"
)

type Section string

const (
	SectionReceipts Section = "receipts"
	SectionOutlays  Section = "outlays"
)

type Level string

const (
	LevelItem     Level = "item"
	LevelSubtotal Level = "subtotal"
	LevelTotal    Level = "total"
)

// Period identifies one Monthly Treasury Statement (month + calendar year).
type Period struct {
	Month time.Month
	Year  int
}

func (p Period) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}

// Key returns a stable sortable form ("2024-02") used for cache keys.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func (p Period) IsZero() bool {
	return p.Month == 0 && p.Year == 0
}

// ParsePeriodFilename extracts the period from a statement file name in the
// Treasury naming scheme mtsMMYY (e.g. "mts0224" or "mts0224.pdf" for
// February 2024).
func ParsePeriodFilename(name string) (Period, error) {
	base := name
	if len(base) > 4 && base[len(base)-4:] == ".pdf" {
		base = base[:len(base)-4]
	}
	if len(base) != 7 || base[:3] != "mts" {
		return Period{}, fmt.Errorf("unrecognized statement file name %q", name)
	}
	month, err := strconv.Atoi(base[3:5])
	if err != nil || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid month in statement file name %q", name)
	}
	year, err := strconv.Atoi(base[5:7])
	if err != nil {
		return Period{}, fmt.Errorf("invalid year in statement file name %q", name)
	}
	return Period{Month: time.Month(month), Year: 2000 + year}, nil
}

// Amount is a report value in millions of dollars. Valid is false for the
// no-transaction placeholder; an absent value is distinct from zero and must
// never be collapsed onto it.
type Amount struct {
	Value int64
	Valid bool
}

func AmountOf(v int64) Amount {
	return Amount{Value: v, Valid: true}
}

// Percent is a computed percentage that may be undefined (previous value
// absent or zero, budget estimate absent or zero).
type Percent struct {
	Value float64
	Valid bool
}

func PercentOf(v float64) Percent {
	return Percent{Value: v, Valid: true}
}

// LineItem is one normalized statement row. Value objects: built once by the
// statement builder and never mutated afterwards.
type LineItem struct {
	CanonicalID string
	// Label is the canonical display name; RawLabel preserves the source text.
	Label      string
	RawLabel   string
	Section    Section
	Level      Level
	// Department is set for Outlays rows at department granularity.
	Department string

	ThisMonth        Amount
	FiscalYearToDate Amount
	PriorPeriodYTD   Amount
	BudgetEstimate   Amount
}

// Statement is one parsed Monthly Treasury Statement.
type Statement struct {
	Period Period
	// Items keeps the source ordering of the report.
	Items []LineItem
	// Aggregates lists canonical ids of subtotal/total rows, which must be
	// excluded from department-level ranking.
	Aggregates []string
	// Valid is false when a hierarchy violation was recorded during the
	// build; comparisons against an invalid statement are refused.
	Valid bool
}

// Item returns the line item with the given canonical id, if present.
func (s Statement) Item(id string) (LineItem, bool) {
	for _, it := range s.Items {
		if it.CanonicalID == id {
			return it, true
		}
	}
	return LineItem{}, false
}

// SectionItems returns the item-level rows of one section in source order.
func (s Statement) SectionItems(section Section) []LineItem {
	var items []LineItem
	for _, it := range s.Items {
		if it.Section == section && it.Level == LevelItem {
			items = append(items, it)
		}
	}
	return items
}
