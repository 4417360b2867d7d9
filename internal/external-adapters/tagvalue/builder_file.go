package tagvalue

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

const (
	fileAnchor     = "FileName"
	artifactAnchor = "ArtifactOfProjectName"
)

var elementIDPattern = regexp.MustCompile(`^SPDXRef-[A-Za-z0-9.\-]+$`)

func (b *Builder) currentFile(field string) (*entities.File, error) {
	if b.doc.Package == nil || b.file < 0 || b.file >= len(b.doc.Package.Files) {
		return nil, orderError(field, fileAnchor)
	}
	return b.doc.Package.Files[b.file], nil
}

// SetFileName starts a new file in the current package
func (b *Builder) SetFileName(name string) error {
	pkg, err := b.currentPackage("File::Name")
	if err != nil {
		return err
	}
	pkg.AddFile(&entities.File{Name: name})
	b.file = len(pkg.Files) - 1
	b.fileState = fileFlags{}
	b.artifact = -1
	b.artifactState = artifactFlags{}
	return nil
}

// SetFileSPDXID sets the current file's identifier. A "namespace#SPDXRef-x" form is accepted.
func (b *Builder) SetFileSPDXID(value string) error {
	const field = "File::SPDXID"
	f, err := b.currentFile(field)
	if err != nil {
		return err
	}
	if b.fileState.spdxID {
		return cardinalityError(field)
	}
	id := value
	if i := strings.LastIndex(value, "#"); i >= 0 {
		id = value[i+1:]
	}
	if !elementIDPattern.MatchString(id) {
		return valueError(field, fmt.Errorf("%q is not SPDXRef-<id>", value))
	}
	f.SPDXID = value
	b.fileState.spdxID = true
	return nil
}

// SetFileComment sets the current file's comment
func (b *Builder) SetFileComment(value string) error {
	const field = "File::Comment"
	f, err := b.currentFile(field)
	if err != nil {
		return err
	}
	if b.fileState.comment {
		return cardinalityError(field)
	}
	f.Comment = value
	b.fileState.comment = true
	return nil
}

// SetFileType sets SOURCE, BINARY, ARCHIVE or OTHER
func (b *Builder) SetFileType(value string) error {
	const field = "File::Type"
	f, err := b.currentFile(field)
	if err != nil {
		return err
	}
	if b.fileState.kind {
		return cardinalityError(field)
	}
	t, ok := entities.ParseFileType(strings.TrimSpace(value))
	if !ok {
		return valueError(field, fmt.Errorf("%q is not a file type", value))
	}
	f.Type = t
	b.fileState.kind = true
	return nil
}

// SetFileChecksum sets the current file's SHA1
func (b *Builder) SetFileChecksum(value string) error {
	const field = "File::Checksum"
	f, err := b.currentFile(field)
	if err != nil {
		return err
	}
	if b.fileState.checksum {
		return cardinalityError(field)
	}
	sum, err := entities.ParseSHA1Checksum(value)
	if err != nil {
		return valueError(field, err)
	}
	f.Checksum = sum
	b.fileState.checksum = true
	return nil
}

// SetFileConcludedLicense sets the current file's concluded license
func (b *Builder) SetFileConcludedLicense(value string) error {
	const field = "File::ConcludedLicense"
	f, err := b.currentFile(field)
	if err != nil {
		return err
	}
	if b.fileState.concluded {
		return cardinalityError(field)
	}
	lic, err := b.parseLicenseValue(value)
	if err != nil {
		return valueError(field, err)
	}
	f.ConcludedLicense = lic
	b.fileState.concluded = true
	return nil
}

// AddFileLicenseInFile appends a license found in the current file
func (b *Builder) AddFileLicenseInFile(value string) error {
	const field = "File::LicenseInFile"
	f, err := b.currentFile(field)
	if err != nil {
		return err
	}
	lic, err := b.parseLicenseValue(value)
	if err != nil {
		return valueError(field, err)
	}
	f.LicensesInFile = append(f.LicensesInFile, lic)
	return nil
}

// SetFileLicenseComment sets the current file's license comments
func (b *Builder) SetFileLicenseComment(value string) error {
	const field = "File::LicenseComment"
	f, err := b.currentFile(field)
	if err != nil {
		return err
	}
	if b.fileState.licenseComment {
		return cardinalityError(field)
	}
	f.LicenseComment = value
	b.fileState.licenseComment = true
	return nil
}

// SetFileCopyright sets the current file's copyright text
func (b *Builder) SetFileCopyright(value entities.Text) error {
	const field = "File::Copyright"
	f, err := b.currentFile(field)
	if err != nil {
		return err
	}
	if b.fileState.copyright {
		return cardinalityError(field)
	}
	f.Copyright = value
	b.fileState.copyright = true
	return nil
}

// SetFileNotice sets the current file's notice text
func (b *Builder) SetFileNotice(value string) error {
	const field = "File::Notice"
	f, err := b.currentFile(field)
	if err != nil {
		return err
	}
	if b.fileState.notice {
		return cardinalityError(field)
	}
	f.Notice = value
	b.fileState.notice = true
	return nil
}

// AddFileContributor appends a contributor to the current file
func (b *Builder) AddFileContributor(value string) error {
	f, err := b.currentFile("File::Contributor")
	if err != nil {
		return err
	}
	f.Contributors = append(f.Contributors, value)
	return nil
}

// AddFileDependency appends a dependency to the current file
func (b *Builder) AddFileDependency(value string) error {
	f, err := b.currentFile("File::Dependency")
	if err != nil {
		return err
	}
	f.Dependencies = append(f.Dependencies, value)
	return nil
}

// AddArtifactName starts a new artifact-of-project record on the current file
func (b *Builder) AddArtifactName(value string) error {
	f, err := b.currentFile("File::Artifact")
	if err != nil {
		return err
	}
	f.ArtifactOf = append(f.ArtifactOf, entities.ArtifactOfProject{Name: value})
	b.artifact = len(f.ArtifactOf) - 1
	b.artifactState = artifactFlags{}
	return nil
}

func (b *Builder) currentArtifact(field string) (*entities.ArtifactOfProject, error) {
	f, err := b.currentFile(field)
	if err != nil {
		return nil, err
	}
	if b.artifact < 0 || b.artifact >= len(f.ArtifactOf) {
		return nil, orderError(field, artifactAnchor)
	}
	return &f.ArtifactOf[b.artifact], nil
}

// SetArtifactHomePage sets the home page of the current artifact. UNKNOWN is allowed.
func (b *Builder) SetArtifactHomePage(value string) error {
	const field = "File::ArtifactOfProjectHomePage"
	a, err := b.currentArtifact(field)
	if err != nil {
		return err
	}
	if b.artifactState.homePage {
		return cardinalityError(field)
	}
	a.HomePage = value
	b.artifactState.homePage = true
	return nil
}

// SetArtifactURI sets the URI of the current artifact. UNKNOWN is allowed.
func (b *Builder) SetArtifactURI(value string) error {
	const field = "File::ArtifactOfProjectURI"
	a, err := b.currentArtifact(field)
	if err != nil {
		return err
	}
	if b.artifactState.uri {
		return cardinalityError(field)
	}
	a.URI = value
	b.artifactState.uri = true
	return nil
}
