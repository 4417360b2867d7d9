package entities

import (
	"slices"
	"strings"
)

// License is any value that may appear where an SPDX license is expected
type License interface {
	Identifier() string
	FullName() string
}

const (
	// NoAssertionValue is the literal for "no claim made"
	NoAssertionValue = "NOASSERTION"
	// NoneValue is the literal for "explicitly absent"
	NoneValue = "NONE"
	// ExtractedLicensePrefix starts every document-local license identifier
	ExtractedLicensePrefix = "LicenseRef-"
)

// NoAssertion is the sentinel meaning no claim is made
type NoAssertion struct{}

// Identifier returns NOASSERTION
func (NoAssertion) Identifier() string { return NoAssertionValue }

// FullName returns NOASSERTION
func (NoAssertion) FullName() string { return NoAssertionValue }

// SpdxNone is the sentinel meaning explicitly absent
type SpdxNone struct{}

// Identifier returns NONE
func (SpdxNone) Identifier() string { return NoneValue }

// FullName returns NONE
func (SpdxNone) FullName() string { return NoneValue }

// SimpleLicense is a single license from the license list (or an unknown identifier)
type SimpleLicense struct {
	ID   string
	Name string
}

// Identifier returns the short SPDX identifier
func (l SimpleLicense) Identifier() string { return l.ID }

// FullName returns the catalog name, falling back to the identifier
func (l SimpleLicense) FullName() string {
	if l.Name == "" {
		return l.ID
	}
	return l.Name
}

// LicenseConjunction is "Left AND Right"
type LicenseConjunction struct {
	Left  License
	Right License
}

// Identifier renders the conjunction, parenthesizing disjunction operands
func (l LicenseConjunction) Identifier() string {
	return renderOperand(l.Left, opAnd, false, License.Identifier) + " AND " + renderOperand(l.Right, opAnd, true, License.Identifier)
}

// FullName renders the conjunction using operand full names
func (l LicenseConjunction) FullName() string {
	return renderOperand(l.Left, opAnd, false, License.FullName) + " AND " + renderOperand(l.Right, opAnd, true, License.FullName)
}

// LicenseDisjunction is "Left OR Right"
type LicenseDisjunction struct {
	Left  License
	Right License
}

// Identifier renders the disjunction, parenthesizing conjunction operands
func (l LicenseDisjunction) Identifier() string {
	return renderOperand(l.Left, opOr, false, License.Identifier) + " OR " + renderOperand(l.Right, opOr, true, License.Identifier)
}

// FullName renders the disjunction using operand full names
func (l LicenseDisjunction) FullName() string {
	return renderOperand(l.Left, opOr, false, License.FullName) + " OR " + renderOperand(l.Right, opOr, true, License.FullName)
}

// ExtractedLicense is a document-local license identified by LicenseRef-*
type ExtractedLicense struct {
	ID        string
	Text      string
	Name      string
	Comment   string
	CrossRefs []string
}

// Identifier returns the LicenseRef identifier
func (l *ExtractedLicense) Identifier() string { return l.ID }

// FullName returns the license name, falling back to the identifier
func (l *ExtractedLicense) FullName() string {
	if l.Name == "" {
		return l.ID
	}
	return l.Name
}

type operator int

const (
	opNone operator = iota
	opAnd
	opOr
)

func operatorOf(l License) operator {
	switch l.(type) {
	case LicenseConjunction, *LicenseConjunction:
		return opAnd
	case LicenseDisjunction, *LicenseDisjunction:
		return opOr
	default:
		return opNone
	}
}

// renderOperand parenthesizes a compound operand whose operator differs from the
// parent's, and a right operand of the same operator so that left association survives.
// Parenthesizing the same-operator right operand is intentional: "a AND (b AND c)"
// must not re-parse as "(a AND b) AND c".
func renderOperand(l License, parent operator, right bool, render func(License) string) string {
	if l == nil {
		return ""
	}
	op := operatorOf(l)
	if op != opNone && (op != parent || right) {
		return "(" + render(l) + ")"
	}
	return render(l)
}

// IsCompound reports whether l is a conjunction or disjunction
func IsCompound(l License) bool {
	return operatorOf(l) != opNone
}

// IsExtractedLicenseID reports whether id names a document-local license
func IsExtractedLicenseID(id string) bool {
	return strings.HasPrefix(id, ExtractedLicensePrefix)
}

// LicensesEqual compares two license trees by shape and identifier.
// Extracted licenses are compared field by field.
func LicensesEqual(a, b License) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case LicenseConjunction:
		y, ok := b.(LicenseConjunction)
		return ok && LicensesEqual(x.Left, y.Left) && LicensesEqual(x.Right, y.Right)
	case LicenseDisjunction:
		y, ok := b.(LicenseDisjunction)
		return ok && LicensesEqual(x.Left, y.Left) && LicensesEqual(x.Right, y.Right)
	case *ExtractedLicense:
		y, ok := b.(*ExtractedLicense)
		if !ok {
			return false
		}
		if x == nil || y == nil {
			return x == y
		}
		return x.ID == y.ID && x.Text == y.Text && x.Name == y.Name && x.Comment == y.Comment &&
			slices.Equal(x.CrossRefs, y.CrossRefs)
	case NoAssertion:
		_, ok := b.(NoAssertion)
		return ok
	case SpdxNone:
		_, ok := b.(SpdxNone)
		return ok
	default:
		if _, ok := b.(SimpleLicense); !ok {
			return false
		}
		return a.Identifier() == b.Identifier()
	}
}

// CompareLicenses orders licenses by identifier string
func CompareLicenses(a, b License) int {
	return strings.Compare(a.Identifier(), b.Identifier())
}
