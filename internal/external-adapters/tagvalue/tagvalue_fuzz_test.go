package tagvalue

import (
	"os"
	"strings"
	"testing"
)

// FuzzLexer checks that tokenizing never panics, always ends in EOF and never
// moves backwards through the input.
//
// Run with: go test -fuzz=FuzzLexer -fuzztime=30s
func FuzzLexer(f *testing.F) {
	f.Add([]byte("SPDXVersion: SPDX-2.1\nDataLicense: CC0-1.0\n"))
	f.Add([]byte("DocumentComment: <text>unterminated"))
	f.Add([]byte("ExternalDocumentRef: DocumentRef-a https://example.com SHA1: " + sampleSHA1))
	f.Add([]byte("# comment only"))
	f.Add([]byte(":::\n<text></text>\n%%%"))

	f.Fuzz(func(t *testing.T, data []byte) {
		tokens := Tokenize(data)
		if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
			t.Fatalf("token stream does not end in EOF: %v", tokens)
		}
		prev := 1
		for _, tok := range tokens {
			if tok.Line < prev {
				t.Fatalf("line numbers went backwards at %v", tok)
			}
			prev = tok.Line
		}
	})
}

// FuzzLicenseExpression checks that any expression that parses renders back
// into one that parses to the same tree.
//
// Run with: go test -fuzz=FuzzLicenseExpression -fuzztime=30s
func FuzzLicenseExpression(f *testing.F) {
	f.Add("MIT")
	f.Add("MIT OR Apache-2.0 AND GPL-2.0")
	f.Add("(MIT OR (Apache-2.0 AND LicenseRef-1))")
	f.Add("((((")
	f.Add("and or )")

	f.Fuzz(func(t *testing.T, expr string) {
		lic, err := ParseLicenseExpression(expr, nil)
		if err != nil {
			return
		}
		rendered := lic.Identifier()
		again, err := ParseLicenseExpression(rendered, nil)
		if err != nil {
			t.Fatalf("rendered %q from %q does not parse: %v", rendered, expr, err)
		}
		if again.Identifier() != rendered {
			t.Fatalf("rendering is not stable: %q then %q", rendered, again.Identifier())
		}
	})
}

// FuzzParser checks that the parser never panics and always returns a document
//
// Run with: go test -fuzz=FuzzParser -fuzztime=30s
func FuzzParser(f *testing.F) {
	if sample, err := os.ReadFile("testdata/sample.spdx"); err == nil {
		f.Add(sample)
	}
	f.Add([]byte("PackageName: p\nFileName: a\nSPDXID: SPDXRef-1\nSPDXID: SPDXRef-2\n"))
	f.Add([]byte("FileComment: <text>x</text>\nArtifactOfProjectURI: UNKNOWN\n"))
	f.Add([]byte("PackageLicenseDeclared: (MIT AND (Apache-2.0\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		result, err := NewParser().ParseBytes(data)
		if err != nil {
			t.Fatalf("ParseBytes() error = %v", err)
		}
		if result.Document == nil {
			t.Fatal("ParseBytes() returned no document")
		}
		if !result.Error && strings.TrimSpace(string(data)) == "" {
			t.Fatal("an empty document must not validate")
		}
	})
}
