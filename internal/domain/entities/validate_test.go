package entities

import (
	"slices"
	"testing"
	"time"
)

func validDocument() *Document {
	mit := SimpleLicense{ID: "MIT"}
	doc := NewDocument()
	doc.Version = &Version{Major: 2, Minor: 1}
	doc.DataLicense = SimpleLicense{ID: DataLicenseID}
	doc.Name = "example"
	doc.SPDXID = DocumentSPDXID
	doc.Namespace = "https://example.com/spdx/example"
	doc.CreationInfo.AddCreator(NewTool("spdxtv"))
	doc.CreationInfo.Created = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	pkg := NewPackage("pkg", NoAssertionText())
	pkg.VerificationCode = &VerificationCode{Value: "abc"}
	pkg.ConcludedLicense = mit
	pkg.DeclaredLicense = NoAssertion{}
	pkg.LicensesFromFiles = []License{mit}
	pkg.CopyrightText = NoneText()
	f := NewFile("a.c", "SPDXRef-1")
	f.Checksum = NewSHA1Checksum(quickFoxSHA1)
	f.ConcludedLicense = mit
	f.LicensesInFile = []License{mit}
	f.Copyright = NoAssertionText()
	pkg.AddFile(f)
	doc.Package = pkg
	return doc
}

func TestValidate_Valid(t *testing.T) {
	if msgs := validDocument().Validate(); len(msgs) != 0 {
		t.Errorf("Validate() = %v, want no messages", msgs)
	}
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Document)
		want   string
	}{
		{"no version", func(d *Document) { d.Version = nil }, "Document has no version."},
		{"wrong data license", func(d *Document) { d.DataLicense = SimpleLicense{ID: "MIT"} }, "Document data license must be CC0-1.0."},
		{"no name", func(d *Document) { d.Name = "" }, "Document has no name."},
		{"bad id", func(d *Document) { d.SPDXID = "SPDXRef-1" }, "Invalid document SPDX identifier value."},
		{"no namespace", func(d *Document) { d.Namespace = "" }, "Document has no namespace."},
		{"no creators", func(d *Document) { d.CreationInfo.Creators = nil }, "No creators defined, must have at least one."},
		{"no created", func(d *Document) { d.CreationInfo.Created = time.Time{} }, "Creation info missing created date."},
		{"no package", func(d *Document) { d.Package = nil }, "Document has no package."},
		{"no files", func(d *Document) { d.Package.Files = nil }, "Package must have at least one file"},
		{"no licenses from files", func(d *Document) { d.Package.LicensesFromFiles = nil }, "Package licenses_from_files can not be empty"},
		{"tool supplier", func(d *Document) {
			tool := NewTool("x")
			d.Package.Supplier = &tool
		}, "Package supplier must be a person, an organization or NOASSERTION"},
		{"no license in file", func(d *Document) { d.Package.Files[0].LicensesInFile = nil }, "File must have at least one license in file."},
		{"file checksum algorithm", func(d *Document) {
			d.Package.Files[0].Checksum = &Checksum{Algorithm: "MD5", Value: "x"}
		}, "File checksum algorithm must be SHA1"},
		{"empty extracted text", func(d *Document) {
			d.ExtractedLicenses = append(d.ExtractedLicenses, &ExtractedLicense{ID: "LicenseRef-1"})
		}, "ExtractedLicense LicenseRef-1 text can not be empty"},
		{"review without date", func(d *Document) {
			d.Reviews = append(d.Reviews, &Review{Reviewer: NewPerson("Joe", "")})
		}, "Review missing review date."},
		{"annotation without type", func(d *Document) {
			d.Annotations = append(d.Annotations, &Annotation{Annotator: NewPerson("Jane", ""), Date: time.Now(), SPDXID: "SPDXRef-1"})
		}, "Annotation missing annotation type."},
		{"snippet from unknown file", func(d *Document) {
			d.Snippets = append(d.Snippets, &Snippet{SPDXID: "SPDXRef-S", Copyright: NoneText(), ConcludedLicense: NoAssertion{}, FromFileSPDXID: "SPDXRef-9"})
		}, "Snippet SPDXRef-S references unknown file SPDXRef-9."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)
			msgs := doc.Validate()
			if !slices.Contains(msgs, tt.want) {
				t.Errorf("Validate() = %v, want it to contain %q", msgs, tt.want)
			}
		})
	}
}

func TestValidate_SnippetFromExternalDocument(t *testing.T) {
	doc := validDocument()
	doc.Snippets = append(doc.Snippets, &Snippet{
		SPDXID:           "SPDXRef-S",
		Copyright:        NoneText(),
		ConcludedLicense: NoAssertion{},
		FromFileSPDXID:   "DocumentRef-other:SPDXRef-9",
	})
	if msgs := doc.Validate(); len(msgs) != 0 {
		t.Errorf("Validate() = %v, want no messages", msgs)
	}
}
