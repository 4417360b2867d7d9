// Package entities defines the SPDX document model and its structural validation.
package entities

const (
	// DocumentSPDXID is the only identifier a document may carry
	DocumentSPDXID = "SPDXRef-DOCUMENT"
	// DataLicenseID is the only license SPDX metadata may be published under
	DataLicenseID = "CC0-1.0"
)

// Document is the root of an SPDX document graph
type Document struct {
	Version              *Version
	DataLicense          License
	Name                 string
	SPDXID               string
	Namespace            string
	Comment              string
	CreationInfo         CreationInfo
	Package              *Package
	ExtractedLicenses    []*ExtractedLicense
	Reviews              []*Review
	Annotations          []*Annotation
	ExternalDocumentRefs []*ExternalDocumentRef
	Snippets             []*Snippet
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{}
}

// ExternalDocumentRef points at another SPDX document by id, URI and checksum
type ExternalDocumentRef struct {
	ID       string
	URI      string
	Checksum *Checksum
}

// ExtractedLicense returns the document-local license with the given id, or nil
func (d *Document) ExtractedLicense(id string) *ExtractedLicense {
	for _, lic := range d.ExtractedLicenses {
		if lic.ID == id {
			return lic
		}
	}
	return nil
}

// Files returns the files of the document's package
func (d *Document) Files() []*File {
	if d.Package == nil {
		return nil
	}
	return d.Package.Files
}
