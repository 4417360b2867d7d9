package tagvalue

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/ochairo/spdxtv/internal/domain/entities"
	"github.com/ochairo/spdxtv/internal/external-adapters/isodate"
)

var (
	docVersionPattern  = regexp.MustCompile(`^SPDX-(\d+)\.(\d+)$`)
	extDocRefIDPattern = regexp.MustCompile(`^DocumentRef-[A-Za-z0-9+.\-]+$`)
)

// SetDocVersion sets the document's SPDX version from "SPDX-M.N"
func (b *Builder) SetDocVersion(value string) error {
	const field = "Document::Version"
	if b.docState.version {
		return cardinalityError(field)
	}
	m := docVersionPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return valueError(field, fmt.Errorf("%q is not SPDX-M.N", value))
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	b.doc.Version = &entities.Version{Major: major, Minor: minor}
	b.docState.version = true
	return nil
}

// SetDocDataLicense sets the data license, which must be CC0-1.0
func (b *Builder) SetDocDataLicense(value string) error {
	const field = "Document::DataLicense"
	if b.docState.dataLicense {
		return cardinalityError(field)
	}
	if value = strings.TrimSpace(value); value != entities.DataLicenseID {
		return valueError(field, fmt.Errorf("%q is not %s", value, entities.DataLicenseID))
	}
	b.doc.DataLicense = b.simpleLicense(value)
	b.docState.dataLicense = true
	return nil
}

// SetDocName sets the document name
func (b *Builder) SetDocName(value string) error {
	const field = "Document::Name"
	if b.docState.name {
		return cardinalityError(field)
	}
	b.doc.Name = value
	b.docState.name = true
	return nil
}

// SetDocSPDXID sets the document identifier, which must be SPDXRef-DOCUMENT
func (b *Builder) SetDocSPDXID(value string) error {
	const field = "Document::SPDXID"
	if b.docState.spdxID {
		return cardinalityError(field)
	}
	if value != entities.DocumentSPDXID {
		return valueError(field, fmt.Errorf("%q is not %s", value, entities.DocumentSPDXID))
	}
	b.doc.SPDXID = value
	b.docState.spdxID = true
	return nil
}

// SetDocComment sets the document comment
func (b *Builder) SetDocComment(value string) error {
	const field = "Document::Comment"
	if b.docState.comment {
		return cardinalityError(field)
	}
	b.doc.Comment = value
	b.docState.comment = true
	return nil
}

// SetDocNamespace sets the document namespace: an absolute URI without a '#' part
func (b *Builder) SetDocNamespace(value string) error {
	const field = "Document::Namespace"
	if b.docState.namespace {
		return cardinalityError(field)
	}
	if err := validateNamespace(value); err != nil {
		return valueError(field, err)
	}
	b.doc.Namespace = value
	b.docState.namespace = true
	return nil
}

func validateNamespace(value string) error {
	if strings.Contains(value, "#") {
		return errors.New("namespace must not contain '#'")
	}
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("failed to parse namespace: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "ftp":
	default:
		return fmt.Errorf("namespace %q must use http, https or ftp", value)
	}
	if u.Host == "" {
		return fmt.Errorf("namespace %q has no host", value)
	}
	return nil
}

// AddExtDocRef appends an external document reference. There is no cardinality limit.
func (b *Builder) AddExtDocRef(id, uri, checksum string) error {
	const field = "Document::ExternalDocumentRef"
	if !extDocRefIDPattern.MatchString(id) {
		return valueError(field, fmt.Errorf("%q is not DocumentRef-<id>", id))
	}
	if uri == "" {
		return valueError(field, errors.New("missing document URI"))
	}
	sum, err := entities.ParseSHA1Checksum(checksum)
	if err != nil {
		return valueError(field, err)
	}
	b.doc.ExternalDocumentRefs = append(b.doc.ExternalDocumentRefs, &entities.ExternalDocumentRef{
		ID:       id,
		URI:      uri,
		Checksum: sum,
	})
	return nil
}

// AddCreator appends a Tool, Person or Organization creator
func (b *Builder) AddCreator(value string) error {
	c, err := entities.ParseCreator(value)
	if err != nil {
		return valueError("CreationInfo::Creator", err)
	}
	b.doc.CreationInfo.AddCreator(c)
	return nil
}

// SetCreated sets the creation timestamp
func (b *Builder) SetCreated(value string) error {
	const field = "CreationInfo::Created"
	if b.creationState.created {
		return cardinalityError(field)
	}
	t, err := isodate.Parse(value)
	if err != nil {
		return valueError(field, err)
	}
	b.doc.CreationInfo.Created = t
	b.creationState.created = true
	return nil
}

// SetCreationComment sets the creator comment
func (b *Builder) SetCreationComment(value string) error {
	const field = "CreationInfo::Comment"
	if b.creationState.comment {
		return cardinalityError(field)
	}
	b.doc.CreationInfo.Comment = value
	b.creationState.comment = true
	return nil
}

// SetLicenseListVersion sets the license list version from "M.N"
func (b *Builder) SetLicenseListVersion(value string) error {
	const field = "CreationInfo::LicenseListVersion"
	if b.creationState.listVersion {
		return cardinalityError(field)
	}
	v, err := entities.ParseVersion(strings.TrimSpace(value))
	if err != nil {
		return valueError(field, err)
	}
	b.doc.CreationInfo.LicenseListVersion = &v
	b.creationState.listVersion = true
	return nil
}
