package parser

import (
	"context"
	"errors"
	"strings"

	"github.com/de-tools/treasury-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Scan walks the raw lines of one statement and parses every data row. The
// section context is established by the report's section header lines;
// anything before the first header is preamble and skipped. Malformed lines
// are recorded as diagnostics and skipped, the rest of the document is still
// parsed.
func Scan(ctx context.Context, lines []string) ([]ParsedLine, []domain.Diagnostic) {
	logger := zerolog.Ctx(ctx)

	var (
		parsed      []ParsedLine
		diagnostics []domain.Diagnostic
		section     domain.Section
	)

	for i, line := range lines {
		lineNo := i + 1

		if s, ok := sectionHeader(line); ok {
			section = s
			logger.Debug().Int("line", lineNo).Str("section", string(s)).Msg("entering section")
			continue
		}
		if section == "" || strings.TrimSpace(line) == "" {
			continue
		}

		p, err := ParseLine(line, section, lineNo)
		if err != nil {
			var perr *domain.ParseError
			if errors.As(err, &perr) && errors.Is(perr.Err, domain.ErrMalformedLine) {
				diagnostics = append(diagnostics, domain.Diagnostic{
					Kind:   domain.DiagMalformedLine,
					Line:   lineNo,
					Label:  perr.Label,
					Detail: "line does not fit the label + four value columns shape",
				})
				logger.Warn().Int("line", lineNo).Str("text", strings.TrimSpace(line)).Msg("skipping malformed line")
				continue
			}
			diagnostics = append(diagnostics, domain.Diagnostic{
				Kind:   domain.DiagMalformedLine,
				Line:   lineNo,
				Detail: err.Error(),
			})
			continue
		}

		// Headings and footnotes carry no value columns; drop them here so
		// downstream components only ever see data rows.
		if !p.HasValues {
			logger.Debug().Int("line", lineNo).Str("label", p.Label).Msg("dropping line without value columns")
			continue
		}
		parsed = append(parsed, p)
	}
	return parsed, diagnostics
}

// sectionHeader reports whether a line is one of the report's section
// headers. The OCR text renders these as "BUDGET RECEIPTS" / "BUDGET
// OUTLAYS" headings above each half of the table.
func sectionHeader(line string) (domain.Section, bool) {
	l := strings.ToLower(strings.TrimSpace(line))
	switch {
	case strings.HasPrefix(l, "budget receipts"), l == "receipts":
		return domain.SectionReceipts, true
	case strings.HasPrefix(l, "budget outlays"), l == "outlays":
		return domain.SectionOutlays, true
	}
	return "", false
}
