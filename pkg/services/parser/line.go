package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/de-tools/treasury-atlas/pkg/models/domain"
)

// ParsedLine is the raw output of the line parser: a label plus up to four
// right-aligned value columns, still untyped with respect to the schema.
type ParsedLine struct {
	Label   string
	Indent  int
	Section domain.Section
	Line    int

	// Values are this month, fiscal year to date, comparable prior period
	// to date and full-year budget estimate, in report units (millions).
	Values    [4]domain.Amount
	HasValues bool
}

var (
	// numberToken matches the report's numeric grammar: optional sign,
	// comma-grouped digits, optionally wrapped in parentheses (the report's
	// negative notation).
	numberToken = regexp.MustCompile(`^\(?-?\d{1,3}(?:,\d{3})*\)?$`)

	// placeholderToken matches the no-transaction placeholder: a run of
	// dots, or a bare dash as OCR sometimes renders it.
	placeholderToken = regexp.MustCompile(`^(\.{2,}|-)$`)
)

func isValueToken(tok string) bool {
	return numberToken.MatchString(tok) || placeholderToken.MatchString(tok)
}

// ParseLine splits one raw report line into a label and its trailing value
// columns. Lines with no value columns are returned with HasValues false so
// the document walker can discard headings and footnotes; any other column
// count that is not exactly four is a malformed line.
func ParseLine(text string, section domain.Section, lineNo int) (ParsedLine, error) {
	trimmed := strings.TrimRight(text, " \t\r")
	indent := len(trimmed) - len(strings.TrimLeft(trimmed, " "))

	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return ParsedLine{}, &domain.ParseError{Line: lineNo, Err: domain.ErrMalformedLine}
	}

	// Collect the maximal trailing run of value-shaped tokens.
	run := 0
	for run < len(fields) && isValueToken(fields[len(fields)-1-run]) {
		run++
	}

	// Dot leaders between the label and the first column match the
	// placeholder grammar; fold any excess beyond four columns back into
	// the label, provided the excess tokens are placeholders, not numbers.
	values := run
	for values > 4 && placeholderToken.MatchString(fields[len(fields)-values]) {
		values--
	}

	if values > 4 || (values > 0 && values < 4) {
		return ParsedLine{}, &domain.ParseError{
			Line:  lineNo,
			Label: strings.Join(fields, " "),
			Err:   domain.ErrMalformedLine,
		}
	}

	labelFields := fields[:len(fields)-values]
	label := strings.Join(labelFields, " ")
	label = strings.TrimRight(label, ". ")
	if label == "" {
		return ParsedLine{}, &domain.ParseError{Line: lineNo, Err: domain.ErrMalformedLine}
	}

	parsed := ParsedLine{
		Label:     label,
		Indent:    indent,
		Section:   section,
		Line:      lineNo,
		HasValues: values == 4,
	}
	if values == 4 {
		for i, tok := range fields[len(fields)-4:] {
			amount, err := parseAmount(tok)
			if err != nil {
				return ParsedLine{}, &domain.ParseError{Line: lineNo, Label: label, Err: domain.ErrMalformedLine}
			}
			parsed.Values[i] = amount
		}
	}
	return parsed, nil
}

// parseAmount converts one value token to an Amount. Placeholders parse to
// an absent value, never zero.
func parseAmount(tok string) (domain.Amount, error) {
	if placeholderToken.MatchString(tok) {
		return domain.Amount{}, nil
	}
	negative := false
	if strings.HasPrefix(tok, "(") && strings.HasSuffix(tok, ")") {
		negative = true
		tok = tok[1 : len(tok)-1]
	}
	tok = strings.ReplaceAll(tok, ",", "")
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return domain.Amount{}, err
	}
	if negative {
		v = -v
	}
	return domain.AmountOf(v), nil
}
