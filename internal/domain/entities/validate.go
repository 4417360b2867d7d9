package entities

import (
	"fmt"
	"strings"
)

// Validate checks the document's structure and returns user friendly messages.
// An empty result means the document is valid.
func (d *Document) Validate() []string {
	var messages []string
	if d.Version == nil {
		messages = append(messages, "Document has no version.")
	}
	if d.DataLicense == nil {
		messages = append(messages, "Document has no data license.")
	} else if d.DataLicense.Identifier() != DataLicenseID {
		messages = append(messages, fmt.Sprintf("Document data license must be %s.", DataLicenseID))
	}
	if d.Name == "" {
		messages = append(messages, "Document has no name.")
	}
	if d.SPDXID == "" {
		messages = append(messages, "Document has no SPDX identifier.")
	} else if !strings.HasSuffix(d.SPDXID, DocumentSPDXID) {
		messages = append(messages, "Invalid document SPDX identifier value.")
	}
	if d.Namespace == "" {
		messages = append(messages, "Document has no namespace.")
	}
	for _, ref := range d.ExternalDocumentRefs {
		messages = ref.validate(messages)
	}
	messages = d.CreationInfo.validate(messages)
	if d.Package == nil {
		messages = append(messages, "Document has no package.")
	} else {
		messages = d.Package.validate(messages)
	}
	for _, lic := range d.ExtractedLicenses {
		messages = lic.validate(messages)
	}
	for _, r := range d.Reviews {
		messages = r.validate(messages)
	}
	for _, a := range d.Annotations {
		messages = a.validate(messages)
	}
	for _, s := range d.Snippets {
		messages = s.validate(d.Package, messages)
	}
	return messages
}

func (r *ExternalDocumentRef) validate(messages []string) []string {
	if r.ID == "" {
		messages = append(messages, "ExternalDocumentRef has no External Document ID.")
	}
	if r.URI == "" {
		messages = append(messages, "ExternalDocumentRef has no SPDX Document URI.")
	}
	if r.Checksum == nil {
		messages = append(messages, "ExternalDocumentRef has no Checksum.")
	} else if r.Checksum.Algorithm != ChecksumAlgorithmSHA1 {
		messages = append(messages, "ExternalDocumentRef checksum algorithm must be SHA1")
	}
	return messages
}

func (ci *CreationInfo) validate(messages []string) []string {
	if len(ci.Creators) == 0 {
		messages = append(messages, "No creators defined, must have at least one.")
	}
	if ci.Created.IsZero() {
		messages = append(messages, "Creation info missing created date.")
	}
	return messages
}

func (p *Package) validate(messages []string) []string {
	if p.Name == "" {
		messages = append(messages, "Package has no name.")
	}
	if !p.DownloadLocation.IsSet() {
		messages = append(messages, "Package has no download location.")
	}
	if p.VerificationCode == nil || p.VerificationCode.Value == "" {
		messages = append(messages, "Package has no verification code.")
	}
	if !p.CopyrightText.IsSet() {
		messages = append(messages, "Package copyright text must be text, NOASSERTION or NONE")
	}
	if p.Checksum != nil && p.Checksum.Algorithm != ChecksumAlgorithmSHA1 {
		messages = append(messages, "Package checksum algorithm must be SHA1")
	}
	if p.Supplier != nil && p.Supplier.Kind == CreatorTool {
		messages = append(messages, "Package supplier must be a person, an organization or NOASSERTION")
	}
	if p.Originator != nil && p.Originator.Kind == CreatorTool {
		messages = append(messages, "Package originator must be a person, an organization or NOASSERTION")
	}
	if p.ConcludedLicense == nil {
		messages = append(messages, "Package concluded license must be a license, NOASSERTION or NONE")
	}
	if p.DeclaredLicense == nil {
		messages = append(messages, "Package declared license must be a license, NOASSERTION or NONE")
	}
	if len(p.LicensesFromFiles) == 0 {
		messages = append(messages, "Package licenses_from_files can not be empty")
	}
	if len(p.Files) == 0 {
		messages = append(messages, "Package must have at least one file")
	}
	for _, f := range p.Files {
		messages = f.validate(messages)
	}
	return messages
}

func (f *File) validate(messages []string) []string {
	if f.SPDXID == "" {
		messages = append(messages, fmt.Sprintf("File %s has no SPDX identifier.", f.Name))
	}
	if f.ConcludedLicense == nil {
		messages = append(messages, fmt.Sprintf("File %s concluded license must be a license, NOASSERTION or NONE", f.Name))
	}
	if f.Type != "" {
		if _, ok := ParseFileType(string(f.Type)); !ok {
			messages = append(messages, fmt.Sprintf("File %s type must be one of SOURCE, BINARY, ARCHIVE or OTHER", f.Name))
		}
	}
	if f.Checksum == nil {
		messages = append(messages, fmt.Sprintf("File %s has no checksum.", f.Name))
	} else if f.Checksum.Algorithm != ChecksumAlgorithmSHA1 {
		messages = append(messages, "File checksum algorithm must be SHA1")
	}
	if len(f.LicensesInFile) == 0 {
		messages = append(messages, "File must have at least one license in file.")
	}
	if !f.Copyright.IsSet() {
		messages = append(messages, fmt.Sprintf("File %s copyright must be text, NOASSERTION or NONE", f.Name))
	}
	for _, a := range f.ArtifactOf {
		if a.Name == "" {
			messages = append(messages, "File must have as much artifact of project names as uri or homepage")
			break
		}
	}
	return messages
}

func (l *ExtractedLicense) validate(messages []string) []string {
	if l.Text == "" {
		messages = append(messages, fmt.Sprintf("ExtractedLicense %s text can not be empty", l.ID))
	}
	return messages
}

func (r *Review) validate(messages []string) []string {
	if r.Reviewer.Name == "" {
		messages = append(messages, "Review missing reviewer.")
	}
	if r.Date.IsZero() {
		messages = append(messages, "Review missing review date.")
	}
	return messages
}

func (a *Annotation) validate(messages []string) []string {
	if a.Annotator.Name == "" {
		messages = append(messages, "Annotation missing annotator.")
	}
	if a.Date.IsZero() {
		messages = append(messages, "Annotation missing annotation date.")
	}
	if a.Type == "" {
		messages = append(messages, "Annotation missing annotation type.")
	}
	if a.SPDXID == "" {
		messages = append(messages, "Annotation missing SPDX Identifier Reference.")
	}
	return messages
}

func (s *Snippet) validate(pkg *Package, messages []string) []string {
	if s.SPDXID == "" {
		messages = append(messages, "Snippet has no SPDX Identifier.")
	}
	if !s.Copyright.IsSet() {
		messages = append(messages, fmt.Sprintf("Snippet %s copyright must be text, NOASSERTION or NONE", s.SPDXID))
	}
	if s.ConcludedLicense == nil {
		messages = append(messages, fmt.Sprintf("Snippet %s concluded license must be a license, NOASSERTION or NONE", s.SPDXID))
	}
	switch {
	case s.FromFileSPDXID == "":
		messages = append(messages, fmt.Sprintf("Snippet %s has no Snippet from File SPDXID.", s.SPDXID))
	case !strings.HasPrefix(s.FromFileSPDXID, "DocumentRef-") && (pkg == nil || pkg.File(s.FromFileSPDXID) == nil):
		messages = append(messages, fmt.Sprintf("Snippet %s references unknown file %s.", s.SPDXID, s.FromFileSPDXID))
	}
	return messages
}
