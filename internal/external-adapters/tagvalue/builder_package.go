package tagvalue

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

const packageAnchor = "PackageName"

var verificationCodePattern = regexp.MustCompile(`^([0-9a-f]+)\s*(\(\s*(.+)\))?\s*$`)

func (b *Builder) currentPackage(field string) (*entities.Package, error) {
	if b.doc.Package == nil {
		return nil, orderError(field, packageAnchor)
	}
	return b.doc.Package, nil
}

// CreatePackage starts the document's package. A document holds a single package.
func (b *Builder) CreatePackage(name string) error {
	if b.doc.Package != nil {
		return cardinalityError("Package::Name")
	}
	b.doc.Package = entities.NewPackage(name, entities.Text{})
	b.packageState = packageFlags{}
	b.fileState = fileFlags{}
	b.file, b.artifact = -1, -1
	return nil
}

// setPackageString is the shape shared by the free-form package fields
func (b *Builder) setPackageString(field string, flag *bool, dst func(*entities.Package) *string, value string) error {
	pkg, err := b.currentPackage(field)
	if err != nil {
		return err
	}
	if *flag {
		return cardinalityError(field)
	}
	*dst(pkg) = value
	*flag = true
	return nil
}

// SetPkgVersion sets the package version
func (b *Builder) SetPkgVersion(value string) error {
	return b.setPackageString("Package::Version", &b.packageState.version,
		func(p *entities.Package) *string { return &p.Version }, value)
}

// SetPkgFileName sets the package archive file name
func (b *Builder) SetPkgFileName(value string) error {
	return b.setPackageString("Package::FileName", &b.packageState.fileName,
		func(p *entities.Package) *string { return &p.FileName }, value)
}

// SetPkgSourceInfo sets the package source information
func (b *Builder) SetPkgSourceInfo(value string) error {
	return b.setPackageString("Package::SourceInfo", &b.packageState.sourceInfo,
		func(p *entities.Package) *string { return &p.SourceInfo }, value)
}

// SetPkgLicenseComment sets the package license comments
func (b *Builder) SetPkgLicenseComment(value string) error {
	return b.setPackageString("Package::LicenseComment", &b.packageState.licenseComment,
		func(p *entities.Package) *string { return &p.LicenseComment }, value)
}

// SetPkgSummary sets the package summary
func (b *Builder) SetPkgSummary(value string) error {
	return b.setPackageString("Package::Summary", &b.packageState.summary,
		func(p *entities.Package) *string { return &p.Summary }, value)
}

// SetPkgDescription sets the package description
func (b *Builder) SetPkgDescription(value string) error {
	return b.setPackageString("Package::Description", &b.packageState.description,
		func(p *entities.Package) *string { return &p.Description }, value)
}

// SetPkgSupplier sets the supplier: a person, an organization or NOASSERTION
func (b *Builder) SetPkgSupplier(value string) error {
	const field = "Package::Supplier"
	pkg, err := b.currentPackage(field)
	if err != nil {
		return err
	}
	if b.packageState.supplier {
		return cardinalityError(field)
	}
	c, err := parseAgent(value)
	if err != nil {
		return valueError(field, err)
	}
	pkg.Supplier = c
	b.packageState.supplier = true
	return nil
}

// SetPkgOriginator sets the originator: a person, an organization or NOASSERTION
func (b *Builder) SetPkgOriginator(value string) error {
	const field = "Package::Originator"
	pkg, err := b.currentPackage(field)
	if err != nil {
		return err
	}
	if b.packageState.originator {
		return cardinalityError(field)
	}
	c, err := parseAgent(value)
	if err != nil {
		return valueError(field, err)
	}
	pkg.Originator = c
	b.packageState.originator = true
	return nil
}

func parseAgent(value string) (*entities.Creator, error) {
	if strings.TrimSpace(value) == entities.NoAssertionValue {
		return &entities.Creator{Kind: entities.CreatorNoAssertion}, nil
	}
	c, err := entities.ParseCreator(value)
	if err != nil {
		return nil, err
	}
	if c.Kind == entities.CreatorTool {
		return nil, fmt.Errorf("%q must be a person or an organization", value)
	}
	return &c, nil
}

// SetPkgDownloadLocation sets where the package can be downloaded from
func (b *Builder) SetPkgDownloadLocation(value entities.Text) error {
	const field = "Package::DownloadLocation"
	pkg, err := b.currentPackage(field)
	if err != nil {
		return err
	}
	if b.packageState.downloadLocation {
		return cardinalityError(field)
	}
	if value.IsLiteral() && strings.TrimSpace(value.Value) == "" {
		return valueError(field, errors.New("empty download location"))
	}
	pkg.DownloadLocation = value
	b.packageState.downloadLocation = true
	return nil
}

// SetPkgHomePage sets the package home page
func (b *Builder) SetPkgHomePage(value entities.Text) error {
	const field = "Package::HomePage"
	pkg, err := b.currentPackage(field)
	if err != nil {
		return err
	}
	if b.packageState.homePage {
		return cardinalityError(field)
	}
	if value.IsLiteral() && strings.TrimSpace(value.Value) == "" {
		return valueError(field, errors.New("empty home page"))
	}
	pkg.HomePage = value
	b.packageState.homePage = true
	return nil
}

// SetPkgVerificationCode parses "<sha1> (excluded,files)". An "excludes:" prefix is accepted.
func (b *Builder) SetPkgVerificationCode(value string) error {
	const field = "Package::VerificationCode"
	pkg, err := b.currentPackage(field)
	if err != nil {
		return err
	}
	if b.packageState.verificationCode {
		return cardinalityError(field)
	}
	m := verificationCodePattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return valueError(field, fmt.Errorf("%q is not a verification code", value))
	}
	code := &entities.VerificationCode{Value: m[1]}
	if m[3] != "" {
		excluded := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(m[3]), "excludes:"))
		for _, name := range strings.Split(excluded, ",") {
			if name = strings.TrimSpace(name); name != "" {
				code.ExcludedFiles = append(code.ExcludedFiles, name)
			}
		}
	}
	pkg.VerificationCode = code
	b.packageState.verificationCode = true
	return nil
}

// SetPkgChecksum sets the package SHA1 checksum
func (b *Builder) SetPkgChecksum(value string) error {
	const field = "Package::Checksum"
	pkg, err := b.currentPackage(field)
	if err != nil {
		return err
	}
	if b.packageState.checksum {
		return cardinalityError(field)
	}
	sum, err := entities.ParseSHA1Checksum(value)
	if err != nil {
		return valueError(field, err)
	}
	pkg.Checksum = sum
	b.packageState.checksum = true
	return nil
}

// SetPkgConcludedLicense sets the concluded license
func (b *Builder) SetPkgConcludedLicense(value string) error {
	const field = "Package::ConcludedLicense"
	pkg, err := b.currentPackage(field)
	if err != nil {
		return err
	}
	if b.packageState.concluded {
		return cardinalityError(field)
	}
	lic, err := b.parseLicenseValue(value)
	if err != nil {
		return valueError(field, err)
	}
	pkg.ConcludedLicense = lic
	b.packageState.concluded = true
	return nil
}

// SetPkgDeclaredLicense sets the declared license
func (b *Builder) SetPkgDeclaredLicense(value string) error {
	const field = "Package::DeclaredLicense"
	pkg, err := b.currentPackage(field)
	if err != nil {
		return err
	}
	if b.packageState.declared {
		return cardinalityError(field)
	}
	lic, err := b.parseLicenseValue(value)
	if err != nil {
		return valueError(field, err)
	}
	pkg.DeclaredLicense = lic
	b.packageState.declared = true
	return nil
}

// AddPkgLicenseFromFile appends one license found in the package's files
func (b *Builder) AddPkgLicenseFromFile(value string) error {
	const field = "Package::LicensesFromFiles"
	pkg, err := b.currentPackage(field)
	if err != nil {
		return err
	}
	lic, err := b.parseLicenseValue(value)
	if err != nil {
		return valueError(field, err)
	}
	pkg.LicensesFromFiles = append(pkg.LicensesFromFiles, lic)
	return nil
}

// SetPkgCopyright sets the package copyright text
func (b *Builder) SetPkgCopyright(value entities.Text) error {
	const field = "Package::CopyrightText"
	pkg, err := b.currentPackage(field)
	if err != nil {
		return err
	}
	if b.packageState.copyright {
		return cardinalityError(field)
	}
	pkg.CopyrightText = value
	b.packageState.copyright = true
	return nil
}
