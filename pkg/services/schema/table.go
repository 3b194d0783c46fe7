package schema

import (
	"fmt"
	"os"
	"strings"

	"github.com/de-tools/treasury-atlas/pkg/models/domain"
	"github.com/de-tools/treasury-atlas/pkg/services/parser"
	"gopkg.in/yaml.v2"
)

// Entry maps a set of label aliases to one canonical schema position.
type Entry struct {
	ID         string         `yaml:"id"`
	Display    string         `yaml:"display"`
	Section    domain.Section `yaml:"section"`
	Level      domain.Level   `yaml:"level"`
	Department string         `yaml:"department,omitempty"`
	Aliases    []string       `yaml:"aliases"`
}

type tableFile struct {
	Version string  `yaml:"version"`
	Entries []Entry `yaml:"entries"`
}

// Table is the alias lookup structure: normalized label (within a section)
// to canonical entry. Built once at startup and read-only afterwards, so
// concurrent resolution needs no locking.
type Table struct {
	version   string
	bySection map[domain.Section]map[string]Entry
}

// NewTable indexes the given entries. Each alias (and each display name)
// must resolve to exactly one entry within its section.
func NewTable(version string, entries []Entry) (*Table, error) {
	t := &Table{
		version: version,
		bySection: map[domain.Section]map[string]Entry{
			domain.SectionReceipts: {},
			domain.SectionOutlays:  {},
		},
	}
	for _, e := range entries {
		if err := t.add(e); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) add(e Entry) error {
	section, ok := t.bySection[e.Section]
	if !ok {
		return fmt.Errorf("entry %s: unknown section %q", e.ID, e.Section)
	}
	keys := append([]string{e.Display}, e.Aliases...)
	for _, alias := range keys {
		norm := NormalizeLabel(alias)
		if norm == "" {
			continue
		}
		if existing, dup := section[norm]; dup && existing.ID != e.ID {
			return fmt.Errorf("alias %q maps to both %s and %s", alias, existing.ID, e.ID)
		}
		section[norm] = e
	}
	return nil
}

func (t *Table) Version() string {
	return t.version
}

// LoadTable reads an alias table from a YAML file. The file fully replaces
// the compiled-in default; use Merge to extend the default instead.
func LoadTable(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias table: %w", err)
	}
	var file tableFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse alias table: %w", err)
	}
	return NewTable(file.Version, file.Entries)
}

// Merge registers additional entries on top of the table, returning an error
// on alias collisions. The receiver is modified; call before the table is
// shared across requests.
func (t *Table) Merge(entries []Entry) error {
	for _, e := range entries {
		if err := t.add(e); err != nil {
			return err
		}
	}
	return nil
}

// Resolve maps a parsed line onto its canonical schema position. A lookup
// miss does not fail the pipeline: the normalized label becomes the
// canonical id and an UnknownLabel diagnostic is returned for alias-table
// maintenance.
func (t *Table) Resolve(p parser.ParsedLine) (domain.LineItem, *domain.Diagnostic) {
	norm := NormalizeLabel(p.Label)

	item := domain.LineItem{
		RawLabel:         p.Label,
		Section:          p.Section,
		ThisMonth:        p.Values[0],
		FiscalYearToDate: p.Values[1],
		PriorPeriodYTD:   p.Values[2],
		BudgetEstimate:   p.Values[3],
	}

	if entry, ok := t.bySection[p.Section][norm]; ok {
		item.CanonicalID = entry.ID
		item.Label = entry.Display
		item.Level = entry.Level
		item.Department = entry.Department
		return item, nil
	}

	item.CanonicalID = norm
	item.Label = p.Label
	item.Level = inferLevel(norm, p.Indent)
	return item, &domain.Diagnostic{
		Kind:   domain.DiagUnknownLabel,
		Line:   p.Line,
		Label:  p.Label,
		Detail: fmt.Sprintf("no alias registered for %q in section %s", norm, p.Section),
	}
}

// inferLevel classifies an unregistered label. Explicit label-prefix rules
// are preferred over indentation; the indent only decides between item and
// subtotal for "total" lines nested below the section's top level.
func inferLevel(normalized string, indent int) domain.Level {
	switch {
	case strings.Contains(normalized, "on-budget"), strings.Contains(normalized, "off-budget"):
		return domain.LevelSubtotal
	case strings.HasPrefix(normalized, "total"):
		if indent > 0 {
			return domain.LevelSubtotal
		}
		return domain.LevelTotal
	default:
		return domain.LevelItem
	}
}
