package tagvalue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ochairo/spdxtv/internal/domain/entities"
	"github.com/ochairo/spdxtv/internal/domain/interfaces/gateways"
)

// MaxExpressionDepth bounds parenthesis nesting in license expressions
const MaxExpressionDepth = 64

// ErrExpression is the kind of every license expression failure
var ErrExpression = errors.New("invalid license expression")

// ExpressionError describes where a license expression went wrong
type ExpressionError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("%s %q at offset %d: %s", ErrExpression, e.Expr, e.Pos, e.Msg)
}

func (e *ExpressionError) Unwrap() error {
	return ErrExpression
}

type exprKind int

const (
	exprEnd exprKind = iota
	exprLP
	exprRP
	exprAnd
	exprOr
	exprID
)

type exprToken struct {
	kind  exprKind
	value string
	pos   int
}

// ParseLicenseExpression parses "MIT AND (Apache-2.0 OR LicenseRef-1)".
// AND binds tighter than OR and both associate to the left. Identifiers are
// resolved through catalog; unknown LicenseRef- identifiers become extracted
// license placeholders carrying only the identifier.
func ParseLicenseExpression(expr string, catalog gateways.LicenseCatalog) (entities.License, error) {
	p := &exprParser{expr: expr, tokens: lexExpression(expr), catalog: catalog}
	if p.peek().kind == exprEnd {
		return nil, p.fail(0, "empty expression")
	}
	lic, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != exprEnd {
		if tok.kind == exprRP {
			return nil, p.fail(tok.pos, "unbalanced parentheses")
		}
		return nil, p.fail(tok.pos, fmt.Sprintf("unexpected %q", tok.value))
	}
	return lic, nil
}

func lexExpression(expr string) []exprToken {
	var tokens []exprToken
	i := 0
	for i < len(expr) {
		switch c := expr[i]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			tokens = append(tokens, exprToken{kind: exprLP, value: "(", pos: i})
			i++
		case c == ')':
			tokens = append(tokens, exprToken{kind: exprRP, value: ")", pos: i})
			i++
		default:
			start := i
			for i < len(expr) && !strings.ContainsRune(" \t\n\r()", rune(expr[i])) {
				i++
			}
			word := expr[start:i]
			kind := exprID
			switch strings.ToLower(word) {
			case "and":
				kind = exprAnd
			case "or":
				kind = exprOr
			}
			tokens = append(tokens, exprToken{kind: kind, value: word, pos: start})
		}
	}
	return append(tokens, exprToken{kind: exprEnd, pos: len(expr)})
}

type exprParser struct {
	expr    string
	tokens  []exprToken
	pos     int
	depth   int
	catalog gateways.LicenseCatalog
}

func (p *exprParser) peek() exprToken {
	return p.tokens[p.pos]
}

func (p *exprParser) next() exprToken {
	tok := p.tokens[p.pos]
	if tok.kind != exprEnd {
		p.pos++
	}
	return tok
}

func (p *exprParser) fail(pos int, msg string) error {
	return &ExpressionError{Expr: p.expr, Pos: pos, Msg: msg}
}

func (p *exprParser) parseOr() (entities.License, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == exprOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = entities.LicenseDisjunction{Left: left, Right: right}
	}
	return left, nil
}

func (p *exprParser) parseAnd() (entities.License, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == exprAnd {
		p.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = entities.LicenseConjunction{Left: left, Right: right}
	}
	return left, nil
}

func (p *exprParser) parseFactor() (entities.License, error) {
	tok := p.next()
	switch tok.kind {
	case exprID:
		return p.resolve(tok.value), nil
	case exprLP:
		p.depth++
		if p.depth > MaxExpressionDepth {
			return nil, p.fail(tok.pos, fmt.Sprintf("nesting deeper than %d", MaxExpressionDepth))
		}
		if p.peek().kind == exprRP {
			return nil, p.fail(tok.pos, "empty parentheses")
		}
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != exprRP {
			return nil, p.fail(closing.pos, "unbalanced parentheses")
		}
		p.depth--
		return inner, nil
	case exprEnd:
		return nil, p.fail(tok.pos, "expected license identifier")
	default:
		return nil, p.fail(tok.pos, fmt.Sprintf("expected license identifier, got %q", tok.value))
	}
}

func (p *exprParser) resolve(id string) entities.License {
	switch id {
	case entities.NoAssertionValue:
		return entities.NoAssertion{}
	case entities.NoneValue:
		return entities.SpdxNone{}
	}
	if p.catalog != nil {
		if name, ok := p.catalog.LicenseName(id); ok {
			return entities.SimpleLicense{ID: id, Name: name}
		}
	}
	if entities.IsExtractedLicenseID(id) {
		return &entities.ExtractedLicense{ID: id}
	}
	return entities.SimpleLicense{ID: id}
}
