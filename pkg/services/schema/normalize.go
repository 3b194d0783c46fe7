package schema

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	// footnoteMarker matches trailing footnote references as OCR renders
	// them: "1/", "(1)", a bare superscript digit, asterisks or daggers.
	footnoteMarker = regexp.MustCompile(`(?:\s*(?:\(\d\)|\d/|\d|\*+|†+))+$`)
)

// NormalizeLabel reduces a raw report label to its canonical lookup form:
// trimmed, casefolded, internal whitespace collapsed, trailing footnote
// markers, dot leaders and colons stripped. Normalizing an already-normalized
// label is a no-op.
func NormalizeLabel(label string) string {
	s := strings.TrimSpace(label)
	s = strings.TrimRight(s, ".")
	s = footnoteMarker.ReplaceAllString(s, "")
	s = strings.TrimRight(s, ": ")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "--", " ")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
