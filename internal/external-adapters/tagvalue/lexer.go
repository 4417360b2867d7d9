package tagvalue

import (
	"regexp"
	"strings"
)

const (
	textOpen  = "<text>"
	textClose = "</text>"
)

// Value patterns, tried in order at the current position. The first match wins.
var (
	checksumPattern       = regexp.MustCompile(`^:[ \t]*SHA1:[ \t]*[a-f0-9]{40}`)
	docRefIDPattern       = regexp.MustCompile(`^:[ \t]*DocumentRef-[A-Za-z0-9+.\-]+`)
	docURIPattern         = regexp.MustCompile(`^[ \t]*(ht|f)tps?://\S*`)
	extDocChecksumPattern = regexp.MustCompile(`^[ \t]*SHA1:[ \t]*[a-f0-9]{40}`)
	toolPattern           = regexp.MustCompile(`^:[ \t]*Tool:[^\n]+`)
	personPattern         = regexp.MustCompile(`^:[ \t]*Person:[^\n]+`)
	organizationPattern   = regexp.MustCompile(`^:[ \t]*Organization:[^\n]+`)
	datePattern           = regexp.MustCompile(`^:[ \t]*\d{4}-\d\d-\d\dT\d\d:\d\d:\d\dZ`)
	wordPattern           = regexp.MustCompile(`^[a-zA-Z]+`)
	linePattern           = regexp.MustCompile(`^:[^\n]+`)
	textStartPattern      = regexp.MustCompile(`^:\s*<text>`)
	tagLinePattern        = regexp.MustCompile(`^([a-zA-Z]+)[ \t]*:`)
)

// Lexer turns tag:value text into tokens. A Lexer is single use.
type Lexer struct {
	src  string
	pos  int
	line int
	done bool
}

// NewLexer creates a lexer over data
func NewLexer(data []byte) *Lexer {
	return &Lexer{src: string(data), line: 1}
}

// Line returns the current line number
func (l *Lexer) Line() int {
	return l.line
}

// Next returns the next token. After the input is exhausted it keeps returning TokenEOF.
func (l *Lexer) Next() Token {
	for l.pos < len(l.src) {
		rest := l.src[l.pos:]
		switch c := rest[0]; {
		case c == '\n':
			l.line++
			l.pos++
			continue
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
			continue
		case c == '#':
			l.skipLine()
			continue
		}

		if m := textStartPattern.FindString(rest); m != "" {
			l.advance(len(m))
			return l.scanText(l.line - strings.Count(m, "\n"))
		}
		if strings.HasPrefix(rest, textOpen) {
			l.advance(len(textOpen))
			return l.scanText(l.line)
		}
		if tok, ok := l.scanValue(rest); ok {
			return tok
		}
		if m := wordPattern.FindString(rest); m != "" {
			l.pos += len(m)
			if kind, ok := tagKeywords[m]; ok {
				return Token{Kind: kind, Value: m, Line: l.line}
			}
			if kind, ok := valueKeywords[m]; ok {
				return Token{Kind: kind, Value: m, Line: l.line}
			}
			return Token{Kind: TokenUnknownTag, Value: m, Line: l.line}
		}
		if m := linePattern.FindString(rest); m != "" {
			l.pos += len(m)
			value := strings.TrimSpace(m[1:])
			if kind, ok := valueKeywords[value]; ok {
				return Token{Kind: kind, Value: value, Line: l.line}
			}
			return Token{Kind: TokenLine, Value: value, Line: l.line}
		}

		start, line := l.pos, l.line
		l.skipLine()
		return Token{Kind: TokenError, Value: strings.TrimSpace(l.src[start:l.pos]), Line: line}
	}
	return Token{Kind: TokenEOF, Line: l.line}
}

// scanValue tries the value patterns that must win over the generic line rule
func (l *Lexer) scanValue(rest string) (Token, bool) {
	line := l.line
	emit := func(kind TokenKind, m string) (Token, bool) {
		l.pos += len(m)
		return Token{Kind: kind, Value: trimValue(m), Line: line}, true
	}

	if m := checksumPattern.FindString(rest); m != "" && atLineEnd(rest[len(m):]) {
		return emit(TokenChecksum, m)
	}
	if m := docRefIDPattern.FindString(rest); m != "" && atWordEnd(rest[len(m):]) {
		return emit(TokenDocRefID, m)
	}
	if m := docURIPattern.FindString(rest); m != "" {
		return emit(TokenDocURI, m)
	}
	if m := extDocChecksumPattern.FindString(rest); m != "" && atLineEnd(rest[len(m):]) {
		return emit(TokenExtDocRefChecksum, m)
	}
	if m := toolPattern.FindString(rest); m != "" {
		return emit(TokenTool, m)
	}
	if m := personPattern.FindString(rest); m != "" {
		return emit(TokenPerson, m)
	}
	if m := organizationPattern.FindString(rest); m != "" {
		return emit(TokenOrganization, m)
	}
	if m := datePattern.FindString(rest); m != "" && atLineEnd(rest[len(m):]) {
		return emit(TokenDate, m)
	}
	return Token{}, false
}

// scanText reads up to the closing </text>. The tags are not part of the value.
// A line that starts with a known tag before the close ends the block as an error,
// so an unterminated block does not swallow the tags that follow it.
func (l *Lexer) scanText(line int) Token {
	rest := l.src[l.pos:]
	end := strings.Index(rest, textClose)
	body := rest
	if end >= 0 {
		body = rest[:end]
	}
	if stop := tagLineOffset(body); stop >= 0 {
		value := rest[:stop]
		l.advance(stop)
		return Token{Kind: TokenError, Value: textOpen + value, Line: line}
	}
	if end < 0 {
		value := l.src[l.pos:]
		l.advance(len(value))
		return Token{Kind: TokenError, Value: textOpen + value, Line: line}
	}
	value := l.src[l.pos : l.pos+end]
	l.advance(end + len(textClose))
	// trailing whitespace after </text> belongs to the text token, up to the end of the line
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t' || l.src[l.pos] == '\r') {
		l.pos++
	}
	return Token{Kind: TokenText, Value: value, Line: line}
}

// tagLineOffset returns where the first line after the opening one starts with
// "<known tag>:", or -1
func tagLineOffset(s string) int {
	i := strings.IndexByte(s, '\n')
	for i >= 0 {
		start := i + 1
		if m := tagLinePattern.FindStringSubmatch(s[start:]); m != nil {
			if _, ok := tagKeywords[m[1]]; ok {
				return start
			}
		}
		next := strings.IndexByte(s[start:], '\n')
		if next < 0 {
			return -1
		}
		i = start + next
	}
	return -1
}

func (l *Lexer) advance(n int) {
	l.line += strings.Count(l.src[l.pos:l.pos+n], "\n")
	l.pos += n
}

func (l *Lexer) skipLine() {
	if i := strings.IndexByte(l.src[l.pos:], '\n'); i >= 0 {
		l.pos += i
		return
	}
	l.pos = len(l.src)
}

// trimValue drops the leading ':' and surrounding blanks
func trimValue(m string) string {
	m = strings.TrimSpace(m)
	m = strings.TrimPrefix(m, ":")
	return strings.TrimSpace(m)
}

func atLineEnd(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return true
		default:
			return false
		}
	}
	return true
}

func atWordEnd(s string) bool {
	return s == "" || s[0] == ' ' || s[0] == '\t' || s[0] == '\r' || s[0] == '\n'
}

// Tokenize lexes data completely, including the final EOF token
func Tokenize(data []byte) []Token {
	l := NewLexer(data)
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}
