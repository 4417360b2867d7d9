package tagvalue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

const licenseAnchor = "LicenseID"

// SetLicenseID starts a new extracted license. A rejected id leaves no current license.
func (b *Builder) SetLicenseID(value string) error {
	if !entities.IsExtractedLicenseID(value) {
		b.license = -1
		return valueError("ExtractedLicense::LicenseID", fmt.Errorf("%q must start with %s", value, entities.ExtractedLicensePrefix))
	}
	b.doc.ExtractedLicenses = append(b.doc.ExtractedLicenses, &entities.ExtractedLicense{ID: value})
	b.license = len(b.doc.ExtractedLicenses) - 1
	b.licenseState = licenseFlags{}
	return nil
}

func (b *Builder) currentLicense(field string) (*entities.ExtractedLicense, error) {
	if b.license < 0 || b.license >= len(b.doc.ExtractedLicenses) {
		return nil, orderError(field, licenseAnchor)
	}
	return b.doc.ExtractedLicenses[b.license], nil
}

// SetLicenseText sets the current extracted license's text
func (b *Builder) SetLicenseText(value string) error {
	const field = "ExtractedLicense::Text"
	lic, err := b.currentLicense(field)
	if err != nil {
		return err
	}
	if b.licenseState.text {
		return cardinalityError(field)
	}
	lic.Text = value
	b.licenseState.text = true
	return nil
}

// SetLicenseName sets the current extracted license's name. NOASSERTION is kept literally.
func (b *Builder) SetLicenseName(value string) error {
	const field = "ExtractedLicense::Name"
	lic, err := b.currentLicense(field)
	if err != nil {
		return err
	}
	if b.licenseState.name {
		return cardinalityError(field)
	}
	if strings.TrimSpace(value) == "" {
		return valueError(field, errors.New("empty license name"))
	}
	lic.Name = value
	b.licenseState.name = true
	return nil
}

// SetLicenseComment sets the current extracted license's comment
func (b *Builder) SetLicenseComment(value string) error {
	const field = "ExtractedLicense::Comment"
	lic, err := b.currentLicense(field)
	if err != nil {
		return err
	}
	if b.licenseState.comment {
		return cardinalityError(field)
	}
	lic.Comment = value
	b.licenseState.comment = true
	return nil
}

// AddLicenseCrossRef appends a cross reference URL to the current extracted license
func (b *Builder) AddLicenseCrossRef(value string) error {
	lic, err := b.currentLicense("ExtractedLicense::CrossRef")
	if err != nil {
		return err
	}
	lic.CrossRefs = append(lic.CrossRefs, value)
	return nil
}

// BindExtractedLicenses replaces LicenseRef placeholders in license fields with the
// document's extracted licenses of the same identifier.
func (b *Builder) BindExtractedLicenses() {
	doc := b.doc
	if len(doc.ExtractedLicenses) == 0 {
		return
	}
	bind := func(l entities.License) entities.License { return bindLicense(doc, l) }
	bindAll := func(ls []entities.License) {
		for i := range ls {
			ls[i] = bind(ls[i])
		}
	}
	if pkg := doc.Package; pkg != nil {
		pkg.ConcludedLicense = bind(pkg.ConcludedLicense)
		pkg.DeclaredLicense = bind(pkg.DeclaredLicense)
		bindAll(pkg.LicensesFromFiles)
		for _, f := range pkg.Files {
			f.ConcludedLicense = bind(f.ConcludedLicense)
			bindAll(f.LicensesInFile)
		}
	}
	for _, s := range doc.Snippets {
		s.ConcludedLicense = bind(s.ConcludedLicense)
		bindAll(s.LicensesInfo)
	}
}

func bindLicense(doc *entities.Document, l entities.License) entities.License {
	switch x := l.(type) {
	case *entities.ExtractedLicense:
		if found := doc.ExtractedLicense(x.ID); found != nil {
			return found
		}
		return x
	case entities.LicenseConjunction:
		return entities.LicenseConjunction{Left: bindLicense(doc, x.Left), Right: bindLicense(doc, x.Right)}
	case entities.LicenseDisjunction:
		return entities.LicenseDisjunction{Left: bindLicense(doc, x.Left), Right: bindLicense(doc, x.Right)}
	default:
		return l
	}
}
