package entities

// FileType classifies a file's content
type FileType string

const (
	FileTypeSource  FileType = "SOURCE"
	FileTypeBinary  FileType = "BINARY"
	FileTypeArchive FileType = "ARCHIVE"
	FileTypeOther   FileType = "OTHER"
)

// ParseFileType maps a tag-value keyword onto a FileType
func ParseFileType(s string) (FileType, bool) {
	switch t := FileType(s); t {
	case FileTypeSource, FileTypeBinary, FileTypeArchive, FileTypeOther:
		return t, true
	default:
		return "", false
	}
}

// ArtifactOfProject links a file to the project it was derived from.
// HomePage and URI may be "UNKNOWN".
type ArtifactOfProject struct {
	Name     string
	HomePage string
	URI      string
}

// File is one file within a package
type File struct {
	Name             string
	SPDXID           string
	Comment          string
	Type             FileType
	Checksum         *Checksum
	ConcludedLicense License
	LicensesInFile   []License
	LicenseComment   string
	Copyright        Text
	Notice           string
	Contributors     []string
	Dependencies     []string
	ArtifactOf       []ArtifactOfProject
}

// NewFile creates a file with a name and SPDX identifier
func NewFile(name, spdxID string) *File {
	return &File{Name: name, SPDXID: spdxID}
}
