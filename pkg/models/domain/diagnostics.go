package domain

type DiagnosticKind string

const (
	DiagMalformedLine      DiagnosticKind = "malformed_line"
	DiagUnknownLabel       DiagnosticKind = "unknown_label"
	DiagHierarchyViolation DiagnosticKind = "hierarchy_violation"
)

// Diagnostic records a recoverable parsing or validation condition. The
// pipeline accumulates diagnostics and returns them beside the parsed data so
// callers can render a best-effort result with visible caveats.
type Diagnostic struct {
	Kind   DiagnosticKind
	Line   int
	Label  string
	Detail string
}
