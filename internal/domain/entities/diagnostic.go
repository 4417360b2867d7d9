package entities

import "errors"

// ErrInvalidDocument marks a document that failed parsing or validation
var ErrInvalidDocument = errors.New("invalid SPDX document")

// DiagnosticKind classifies a problem found while parsing
type DiagnosticKind string

const (
	DiagnosticValue       DiagnosticKind = "value"
	DiagnosticCardinality DiagnosticKind = "cardinality"
	DiagnosticOrder       DiagnosticKind = "order"
	DiagnosticUnknownTag  DiagnosticKind = "unknown_tag"
	DiagnosticLexer       DiagnosticKind = "lexer"
	DiagnosticSyntax      DiagnosticKind = "syntax"
	DiagnosticValidation  DiagnosticKind = "validation"
)

// Diagnostic is one recoverable problem tied to a source line.
// Line is 0 for document-level validation messages.
type Diagnostic struct {
	Kind    DiagnosticKind
	Field   string
	Tag     string
	Line    int
	Message string
}

// ParseResult is the best-effort document plus everything that went wrong
type ParseResult struct {
	Document    *Document
	Error       bool
	Diagnostics []Diagnostic
}

// Messages returns the diagnostic messages in order
func (r *ParseResult) Messages() []string {
	out := make([]string, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		out = append(out, d.Message)
	}
	return out
}

// Count returns the number of diagnostics of the given kind
func (r *ParseResult) Count(kind DiagnosticKind) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
