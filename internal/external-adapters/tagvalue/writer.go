package tagvalue

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ochairo/spdxtv/internal/domain/entities"
	"github.com/ochairo/spdxtv/internal/external-adapters/isodate"
)

// ErrUnwritableText means a free-form value contains the closing text delimiter
var ErrUnwritableText = errors.New("text value contains " + textClose)

// WriteOption configures a Writer
type WriteOption func(*Writer)

// WithValidation makes the writer refuse documents that fail validation
func WithValidation(validate bool) WriteOption {
	return func(w *Writer) { w.validate = validate }
}

// Writer renders documents in the tag:value format
type Writer struct {
	validate bool
}

// NewWriter creates a writer
func NewWriter(opts ...WriteOption) *Writer {
	w := &Writer{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteDocument renders doc to out
func WriteDocument(out io.Writer, doc *entities.Document, opts ...WriteOption) error {
	return NewWriter(opts...).Encode(out, doc)
}

// Marshal renders doc without validation
func Marshal(doc *entities.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteDocument(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode implements gateways.DocumentEncoder
func (w *Writer) Encode(out io.Writer, doc *entities.Document) error {
	if doc == nil {
		return errors.New("cannot write nil document")
	}
	if w.validate {
		if msgs := doc.Validate(); len(msgs) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
		}
	}

	tw := &tagWriter{out: bufio.NewWriter(out)}
	tw.document(doc)
	tw.creationInfo(&doc.CreationInfo)
	for _, r := range doc.Reviews {
		tw.review(r)
	}
	for _, a := range doc.Annotations {
		tw.annotation(a)
	}
	if doc.Package != nil {
		tw.pkg(doc.Package)
	}
	for _, s := range doc.Snippets {
		tw.snippet(s)
	}
	if len(doc.ExtractedLicenses) > 0 {
		tw.section("Extracted Licenses")
		for i, lic := range doc.ExtractedLicenses {
			if i > 0 {
				tw.blank()
			}
			tw.extractedLicense(lic)
		}
	}
	if tw.err != nil {
		return fmt.Errorf("failed to write document: %w", tw.err)
	}
	if err := tw.out.Flush(); err != nil {
		return fmt.Errorf("failed to flush document: %w", err)
	}
	return nil
}

// tagWriter keeps the first write error so the section writers stay linear
type tagWriter struct {
	out     *bufio.Writer
	err     error
	written bool
}

func (t *tagWriter) raw(s string) {
	if t.err != nil {
		return
	}
	_, t.err = t.out.WriteString(s)
	t.written = true
}

func (t *tagWriter) blank() {
	t.raw("\n")
}

func (t *tagWriter) section(title string) {
	if t.written {
		t.blank()
	}
	t.raw("# " + title + "\n\n")
}

func (t *tagWriter) tag(name, value string) {
	t.raw(name + ": " + value + "\n")
}

func (t *tagWriter) optional(name, value string) {
	if value != "" {
		t.tag(name, value)
	}
}

func (t *tagWriter) text(name, value string) {
	if value == "" {
		return
	}
	if strings.Contains(value, textClose) {
		if t.err == nil {
			t.err = fmt.Errorf("%s: %w", name, ErrUnwritableText)
		}
		return
	}
	t.tag(name, textOpen+value+textClose)
}

// sentinelText writes NOASSERTION and NONE bare and literal values between text tags
func (t *tagWriter) sentinelText(name string, value entities.Text) {
	switch value.Kind {
	case entities.TextUnset:
	case entities.TextLiteral:
		t.text(name, value.Value)
	default:
		t.tag(name, value.String())
	}
}

// locator writes a single-line value such as a URL or one of the sentinels
func (t *tagWriter) locator(name string, value entities.Text) {
	if value.IsSet() {
		t.tag(name, value.String())
	}
}

func (t *tagWriter) license(name string, lic entities.License) {
	if lic == nil {
		return
	}
	t.tag(name, licenseString(lic))
}

func licenseString(lic entities.License) string {
	if entities.IsCompound(lic) {
		return "(" + lic.Identifier() + ")"
	}
	return lic.Identifier()
}

func (t *tagWriter) document(doc *entities.Document) {
	t.section("Document Information")
	if doc.Version != nil {
		t.tag("SPDXVersion", "SPDX-"+doc.Version.String())
	}
	if doc.DataLicense != nil {
		t.tag("DataLicense", doc.DataLicense.Identifier())
	}
	t.optional("DocumentNamespace", doc.Namespace)
	t.optional("DocumentName", doc.Name)
	t.optional("SPDXID", doc.SPDXID)
	t.text("DocumentComment", doc.Comment)
	for _, ref := range doc.ExternalDocumentRefs {
		value := ref.ID + " " + ref.URI
		if ref.Checksum != nil {
			value += " " + ref.Checksum.String()
		}
		t.tag("ExternalDocumentRef", value)
	}
}

func (t *tagWriter) creationInfo(ci *entities.CreationInfo) {
	t.section("Creation Info")
	for _, c := range ci.Creators {
		t.tag("Creator", c.String())
	}
	if !ci.Created.IsZero() {
		t.tag("Created", isodate.Format(ci.Created))
	}
	t.text("CreatorComment", ci.Comment)
	if ci.LicenseListVersion != nil {
		t.tag("LicenseListVersion", ci.LicenseListVersion.String())
	}
}

func (t *tagWriter) review(r *entities.Review) {
	t.section("Review")
	t.tag("Reviewer", r.Reviewer.String())
	if !r.Date.IsZero() {
		t.tag("ReviewDate", isodate.Format(r.Date))
	}
	t.text("ReviewComment", r.Comment)
}

func (t *tagWriter) annotation(a *entities.Annotation) {
	t.section("Annotation")
	t.tag("Annotator", a.Annotator.String())
	if !a.Date.IsZero() {
		t.tag("AnnotationDate", isodate.Format(a.Date))
	}
	t.text("AnnotationComment", a.Comment)
	t.optional("AnnotationType", string(a.Type))
	t.optional("SPDXREF", a.SPDXID)
}

func (t *tagWriter) pkg(p *entities.Package) {
	t.section("Package")
	t.tag("PackageName", p.Name)
	t.optional("PackageVersion", p.Version)
	t.optional("PackageFileName", p.FileName)
	if p.Supplier != nil {
		t.tag("PackageSupplier", p.Supplier.String())
	}
	if p.Originator != nil {
		t.tag("PackageOriginator", p.Originator.String())
	}
	t.locator("PackageDownloadLocation", p.DownloadLocation)
	if p.VerificationCode != nil {
		t.tag("PackageVerificationCode", p.VerificationCode.String())
	}
	if p.Checksum != nil {
		t.tag("PackageChecksum", p.Checksum.String())
	}
	t.locator("PackageHomePage", p.HomePage)
	t.text("PackageSourceInfo", p.SourceInfo)
	t.license("PackageLicenseConcluded", p.ConcludedLicense)
	for _, lic := range p.LicensesFromFiles {
		t.license("PackageLicenseInfoFromFiles", lic)
	}
	t.license("PackageLicenseDeclared", p.DeclaredLicense)
	t.text("PackageLicenseComments", p.LicenseComment)
	t.sentinelText("PackageCopyrightText", p.CopyrightText)
	t.text("PackageSummary", p.Summary)
	t.text("PackageDescription", p.Description)

	for _, f := range p.Files {
		t.file(f)
	}
}

func (t *tagWriter) file(f *entities.File) {
	t.section("File")
	t.tag("FileName", f.Name)
	t.optional("SPDXID", f.SPDXID)
	t.optional("FileType", string(f.Type))
	if f.Checksum != nil {
		t.tag("FileChecksum", f.Checksum.String())
	}
	t.license("LicenseConcluded", f.ConcludedLicense)
	for _, lic := range f.LicensesInFile {
		t.license("LicenseInfoInFile", lic)
	}
	t.text("LicenseComments", f.LicenseComment)
	t.sentinelText("FileCopyrightText", f.Copyright)
	t.text("FileComment", f.Comment)
	t.text("FileNotice", f.Notice)
	for _, c := range f.Contributors {
		t.tag("FileContributor", c)
	}
	for _, d := range f.Dependencies {
		t.tag("FileDependency", d)
	}
	for _, a := range f.ArtifactOf {
		t.tag("ArtifactOfProjectName", a.Name)
		t.optional("ArtifactOfProjectHomePage", a.HomePage)
		t.optional("ArtifactOfProjectURI", a.URI)
	}
}

func (t *tagWriter) snippet(s *entities.Snippet) {
	t.section("Snippet")
	t.tag("SnippetSPDXID", s.SPDXID)
	t.optional("SnippetName", s.Name)
	t.text("SnippetComment", s.Comment)
	t.optional("SnippetFromFileSPDXID", s.FromFileSPDXID)
	t.license("SnippetLicenseConcluded", s.ConcludedLicense)
	for _, lic := range s.LicensesInfo {
		t.license("LicenseInfoInSnippet", lic)
	}
	t.text("SnippetLicenseComments", s.LicenseComment)
	t.sentinelText("SnippetCopyrightText", s.Copyright)
}

func (t *tagWriter) extractedLicense(lic *entities.ExtractedLicense) {
	t.tag("LicenseID", lic.ID)
	t.optional("LicenseName", lic.Name)
	t.text("LicenseComment", lic.Comment)
	for _, ref := range lic.CrossRefs {
		t.tag("LicenseCrossReference", ref)
	}
	t.text("ExtractedText", lic.Text)
}
