package tagvalue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ochairo/spdxtv/internal/domain/entities"
	"github.com/ochairo/spdxtv/internal/domain/interfaces/gateways"
)

var (
	// ErrValue means a value was present but malformed or out of domain
	ErrValue = errors.New("invalid value")
	// ErrCardinality means a field was set more often than allowed
	ErrCardinality = errors.New("field set more than once")
	// ErrOrder means a field appeared before the tag that anchors its entity
	ErrOrder = errors.New("field before its anchor")
)

// BuildError is returned by every Builder operation that rejects its input.
// Kind is one of ErrValue, ErrCardinality or ErrOrder.
type BuildError struct {
	Kind   error
	Field  string
	Anchor string
	Err    error
}

func (e *BuildError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Field, e.Kind)
	if e.Anchor != "" {
		msg += " (requires " + e.Anchor + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *BuildError) Unwrap() error {
	return e.Kind
}

func valueError(field string, err error) error {
	return &BuildError{Kind: ErrValue, Field: field, Err: err}
}

func cardinalityError(field string) error {
	return &BuildError{Kind: ErrCardinality, Field: field}
}

func orderError(field, anchor string) error {
	return &BuildError{Kind: ErrOrder, Field: field, Anchor: anchor}
}

// Per-entity "already set" flags. Anchor operations zero the struct for their entity kind.
type (
	docFlags struct {
		version, dataLicense, name, spdxID, comment, namespace bool
	}
	creationFlags struct {
		created, comment, listVersion bool
	}
	reviewFlags struct {
		date, comment bool
	}
	annotationFlags struct {
		date, comment, kind, spdxRef bool
	}
	packageFlags struct {
		version, fileName, supplier, originator, downloadLocation, homePage, checksum bool
		verificationCode, sourceInfo, concluded, declared, licenseComment            bool
		copyright, summary, description                                             bool
	}
	fileFlags struct {
		spdxID, comment, kind, checksum, concluded, licenseComment, copyright, notice bool
	}
	artifactFlags struct {
		homePage, uri bool
	}
	snippetFlags struct {
		name, comment, copyright, licenseComment, fromFile, concluded bool
	}
	licenseFlags struct {
		text, name, comment bool
	}
)

// Builder assembles a Document from individual tag values. It is the only
// mutator of the document while a parse runs and is not safe for concurrent use.
type Builder struct {
	doc     *entities.Document
	catalog gateways.LicenseCatalog

	docState        docFlags
	creationState   creationFlags
	reviewState     reviewFlags
	annotationState annotationFlags
	packageState    packageFlags
	fileState       fileFlags
	artifactState   artifactFlags
	snippetState    snippetFlags
	licenseState    licenseFlags

	// indexes of the current sub-entities, -1 when none exists yet
	file       int
	artifact   int
	snippet    int
	review     int
	annotation int
	license    int
}

// NewBuilder creates a builder bound to a fresh document. catalog may be nil.
func NewBuilder(catalog gateways.LicenseCatalog) *Builder {
	b := &Builder{catalog: catalog}
	b.Begin(entities.NewDocument())
	return b
}

// Begin resets the builder and binds it to doc
func (b *Builder) Begin(doc *entities.Document) {
	b.Reset()
	b.doc = doc
	b.file, b.artifact, b.snippet = -1, -1, -1
	b.review, b.annotation, b.license = -1, -1, -1
	if doc.Package != nil {
		b.file = len(doc.Package.Files) - 1
	}
	b.snippet = len(doc.Snippets) - 1
	b.review = len(doc.Reviews) - 1
	b.annotation = len(doc.Annotations) - 1
	b.license = len(doc.ExtractedLicenses) - 1
}

// Reset clears every cardinality flag. The document and the current-entity handles are kept.
func (b *Builder) Reset() {
	b.docState = docFlags{}
	b.creationState = creationFlags{}
	b.reviewState = reviewFlags{}
	b.annotationState = annotationFlags{}
	b.packageState = packageFlags{}
	b.fileState = fileFlags{}
	b.artifactState = artifactFlags{}
	b.snippetState = snippetFlags{}
	b.licenseState = licenseFlags{}
}

// Document returns the document under construction
func (b *Builder) Document() *entities.Document {
	return b.doc
}

// parseLicenseValue accepts NOASSERTION, NONE or a license expression
func (b *Builder) parseLicenseValue(value string) (entities.License, error) {
	switch value = strings.TrimSpace(value); value {
	case entities.NoAssertionValue:
		return entities.NoAssertion{}, nil
	case entities.NoneValue:
		return entities.SpdxNone{}, nil
	}
	return ParseLicenseExpression(value, b.catalog)
}

func (b *Builder) simpleLicense(id string) entities.License {
	if b.catalog != nil {
		if name, ok := b.catalog.LicenseName(id); ok {
			return entities.SimpleLicense{ID: id, Name: name}
		}
	}
	return entities.SimpleLicense{ID: id}
}

// SetSPDXID routes the shared SPDXID tag: it names the document until the document
// has an identifier or a file has started, then it names the current file.
func (b *Builder) SetSPDXID(value string) error {
	if b.doc.SPDXID == "" && b.file < 0 {
		return b.SetDocSPDXID(value)
	}
	return b.SetFileSPDXID(value)
}
