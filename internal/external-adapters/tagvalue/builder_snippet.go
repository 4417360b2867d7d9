package tagvalue

import (
	"fmt"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

const snippetAnchor = "SnippetSPDXID"

// CreateSnippet starts a new snippet. A rejected id leaves no current snippet.
func (b *Builder) CreateSnippet(spdxID string) error {
	if !elementIDPattern.MatchString(spdxID) {
		b.snippet = -1
		return valueError("Snippet::SPDXID", fmt.Errorf("%q is not SPDXRef-<id>", spdxID))
	}
	b.doc.Snippets = append(b.doc.Snippets, &entities.Snippet{SPDXID: spdxID})
	b.snippet = len(b.doc.Snippets) - 1
	b.snippetState = snippetFlags{}
	return nil
}

func (b *Builder) currentSnippet(field string) (*entities.Snippet, error) {
	if b.snippet < 0 || b.snippet >= len(b.doc.Snippets) {
		return nil, orderError(field, snippetAnchor)
	}
	return b.doc.Snippets[b.snippet], nil
}

// SetSnippetName sets the current snippet's name
func (b *Builder) SetSnippetName(value string) error {
	const field = "Snippet::Name"
	s, err := b.currentSnippet(field)
	if err != nil {
		return err
	}
	if b.snippetState.name {
		return cardinalityError(field)
	}
	s.Name = value
	b.snippetState.name = true
	return nil
}

// SetSnippetComment sets the current snippet's comment
func (b *Builder) SetSnippetComment(value string) error {
	const field = "Snippet::Comment"
	s, err := b.currentSnippet(field)
	if err != nil {
		return err
	}
	if b.snippetState.comment {
		return cardinalityError(field)
	}
	s.Comment = value
	b.snippetState.comment = true
	return nil
}

// SetSnippetCopyright sets the current snippet's copyright text
func (b *Builder) SetSnippetCopyright(value entities.Text) error {
	const field = "Snippet::Copyright"
	s, err := b.currentSnippet(field)
	if err != nil {
		return err
	}
	if b.snippetState.copyright {
		return cardinalityError(field)
	}
	s.Copyright = value
	b.snippetState.copyright = true
	return nil
}

// SetSnippetLicenseComment sets the current snippet's license comments
func (b *Builder) SetSnippetLicenseComment(value string) error {
	const field = "Snippet::LicenseComment"
	s, err := b.currentSnippet(field)
	if err != nil {
		return err
	}
	if b.snippetState.licenseComment {
		return cardinalityError(field)
	}
	s.LicenseComment = value
	b.snippetState.licenseComment = true
	return nil
}

// SetSnippetFromFileSPDXID sets the file the current snippet was taken from
func (b *Builder) SetSnippetFromFileSPDXID(value string) error {
	const field = "Snippet::FromFileSPDXID"
	s, err := b.currentSnippet(field)
	if err != nil {
		return err
	}
	if b.snippetState.fromFile {
		return cardinalityError(field)
	}
	if !elementRefPattern.MatchString(value) {
		return valueError(field, fmt.Errorf("%q is not an SPDX element reference", value))
	}
	s.FromFileSPDXID = value
	b.snippetState.fromFile = true
	return nil
}

// SetSnippetConcludedLicense sets the current snippet's concluded license
func (b *Builder) SetSnippetConcludedLicense(value string) error {
	const field = "Snippet::ConcludedLicense"
	s, err := b.currentSnippet(field)
	if err != nil {
		return err
	}
	if b.snippetState.concluded {
		return cardinalityError(field)
	}
	lic, err := b.parseLicenseValue(value)
	if err != nil {
		return valueError(field, err)
	}
	s.ConcludedLicense = lic
	b.snippetState.concluded = true
	return nil
}

// AddSnippetLicenseInfo appends a license found in the current snippet
func (b *Builder) AddSnippetLicenseInfo(value string) error {
	const field = "Snippet::LicenseInfoInSnippet"
	s, err := b.currentSnippet(field)
	if err != nil {
		return err
	}
	lic, err := b.parseLicenseValue(value)
	if err != nil {
		return valueError(field, err)
	}
	s.LicensesInfo = append(s.LicensesInfo, lic)
	return nil
}
