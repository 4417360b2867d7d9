package entities

// Snippet is a range of a file carrying its own license information
type Snippet struct {
	SPDXID           string
	Name             string
	Comment          string
	Copyright        Text
	LicenseComment   string
	FromFileSPDXID   string
	ConcludedLicense License
	LicensesInfo     []License
}
