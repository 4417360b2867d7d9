package entities

// Package describes the single software package of a legacy SPDX document
type Package struct {
	Name              string
	Version           string
	FileName          string
	Supplier          *Creator
	Originator        *Creator
	DownloadLocation  Text
	HomePage          Text
	VerificationCode  *VerificationCode
	Checksum          *Checksum
	SourceInfo        string
	ConcludedLicense  License
	DeclaredLicense   License
	LicenseComment    string
	LicensesFromFiles []License
	CopyrightText     Text
	Summary           string
	Description       string
	Files             []*File
}

// NewPackage creates a package with a name and download location
func NewPackage(name string, downloadLocation Text) *Package {
	return &Package{Name: name, DownloadLocation: downloadLocation}
}

// AddFile appends a file to the package
func (p *Package) AddFile(f *File) {
	p.Files = append(p.Files, f)
}

// File returns the file with the given SPDX identifier, or nil
func (p *Package) File(spdxID string) *File {
	for _, f := range p.Files {
		if f.SPDXID == spdxID {
			return f
		}
	}
	return nil
}
