package entities

// TextKind tells literal text apart from the NOASSERTION and NONE sentinels
type TextKind int

const (
	// TextUnset means the field was never given
	TextUnset TextKind = iota
	// TextLiteral holds free-form text
	TextLiteral
	// TextNoAssertion is NOASSERTION
	TextNoAssertion
	// TextNone is NONE
	TextNone
)

// Text is a field that holds free-form text or one of the sentinels
type Text struct {
	Kind  TextKind
	Value string
}

// LiteralText wraps s as literal text
func LiteralText(s string) Text {
	return Text{Kind: TextLiteral, Value: s}
}

// NoAssertionText is the NOASSERTION sentinel as text
func NoAssertionText() Text {
	return Text{Kind: TextNoAssertion}
}

// NoneText is the NONE sentinel as text
func NoneText() Text {
	return Text{Kind: TextNone}
}

// IsSet reports whether the field was given
func (t Text) IsSet() bool {
	return t.Kind != TextUnset
}

// IsLiteral reports whether t holds free-form text
func (t Text) IsLiteral() bool {
	return t.Kind == TextLiteral
}

func (t Text) String() string {
	switch t.Kind {
	case TextNoAssertion:
		return NoAssertionValue
	case TextNone:
		return NoneValue
	default:
		return t.Value
	}
}
