package tagvalue

// valueMessages holds the diagnostic for a malformed value, keyed by field path.
// Formats take the offending value as %[1]s and the line as %[2]d.
var valueMessages = map[string]string{
	"Document::Version":             "Invalid SPDXVersion '%[1]s' must be SPDX-M.N where M and N are numbers. Line: %[2]d",
	"Document::DataLicense":         "Invalid DataLicense '%[1]s' must be CC0-1.0, line: %[2]d",
	"Document::Name":                "DocumentName must be single line of text, line: %[2]d",
	"Document::SPDXID":              "Invalid SPDXID value '%[1]s', must be SPDXRef-DOCUMENT, line: %[2]d",
	"Document::Comment":             "DocumentComment value must be free form text between <text></text> tags, line: %[2]d",
	"Document::Namespace":           "Invalid DocumentNamespace value '%[1]s', must contain a scheme (e.g. \"https:\") and should not contain the \"#\" delimiter, line: %[2]d",
	"Document::ExternalDocumentRef": "ExternalDocumentRef must contain External Document ID, SPDX Document URI and Checksum, line: %[2]d",

	"CreationInfo::Creator":            "Invalid creator value '%[1]s' must be Tool:, Person: or Organization:, line: %[2]d",
	"CreationInfo::Created":            "Created value must be date in ISO 8601 format, line: %[2]d",
	"CreationInfo::Comment":            "CreatorComment value must be free form text between <text></text> tags, line: %[2]d",
	"CreationInfo::LicenseListVersion": "Invalid LicenseListVersion '%[1]s', must be of the form N.N where N are numbers, line: %[2]d",

	"Review::Reviewer": "Invalid Reviewer value '%[1]s' must be Tool:, Person: or Organization:, line: %[2]d",
	"Review::Date":     "ReviewDate value must be date in ISO 8601 format, line: %[2]d",
	"Review::Comment":  "ReviewComment value must be free form text between <text></text> tags, line: %[2]d",

	"Annotation::Annotator":      "Invalid Annotator value '%[1]s' must be Tool:, Person: or Organization:, line: %[2]d",
	"Annotation::Date":           "AnnotationDate value must be date in ISO 8601 format, line: %[2]d",
	"Annotation::Comment":        "AnnotationComment value must be free form text between <text></text> tags, line: %[2]d",
	"Annotation::AnnotationType": "AnnotationType must be \"REVIEW\" or \"OTHER\", line: %[2]d",
	"Annotation::SPDXREF":        "SPDXREF must be a single line of text referencing an SPDX element, line: %[2]d",

	"Package::Name":              "PackageName must be single line of text, line: %[2]d",
	"Package::Version":           "PackageVersion must be single line of text, line: %[2]d",
	"Package::FileName":          "PackageFileName must be single line of text, line: %[2]d",
	"Package::Supplier":          "PackageSupplier must be Organization, Person or NOASSERTION, line: %[2]d",
	"Package::Originator":        "PackageOriginator must be Organization, Person or NOASSERTION, line: %[2]d",
	"Package::DownloadLocation":  "PackageDownloadLocation must be a url or NONE or NOASSERTION, line: %[2]d",
	"Package::HomePage":          "PackageHomePage must be a url or NONE or NOASSERTION, line: %[2]d",
	"Package::VerificationCode":  "VerificationCode '%[1]s' doesn't match verification code form, line: %[2]d",
	"Package::Checksum":          "PackageChecksum must be a single line of text starting with 'SHA1:' followed by 40 lowercase hex characters, line: %[2]d",
	"Package::SourceInfo":        "PackageSourceInfo must be free form text between <text></text> tags, line: %[2]d",
	"Package::ConcludedLicense":  "PackageLicenseConcluded must be NOASSERTION, NONE, license identifier or license list, line: %[2]d",
	"Package::DeclaredLicense":   "PackageLicenseDeclared must be NOASSERTION, NONE, license identifier or license list, line: %[2]d",
	"Package::LicensesFromFiles": "PackageLicenseInfoFromFiles must be NOASSERTION, NONE or license identifier, line: %[2]d",
	"Package::LicenseComment":    "PackageLicenseComments must be free form text between <text></text> tags, line: %[2]d",
	"Package::CopyrightText":     "PackageCopyrightText must be free form text between <text></text> tags, NONE or NOASSERTION, line: %[2]d",
	"Package::Summary":           "PackageSummary must be free form text between <text></text> tags, line: %[2]d",
	"Package::Description":       "PackageDescription must be free form text between <text></text> tags, line: %[2]d",

	"File::Name":                      "FileName must be a single line of text, line: %[2]d",
	"File::SPDXID":                    "Invalid SPDXID value '%[1]s', must be SPDXRef-[idstring] where [idstring] is unique, line: %[2]d",
	"File::Comment":                   "FileComment must be free form text between <text></text> tags, line: %[2]d",
	"File::Type":                      "FileType must be one of OTHER, BINARY, SOURCE or ARCHIVE, line: %[2]d",
	"File::Checksum":                  "FileChecksum must be a single line of text starting with 'SHA1:' followed by 40 lowercase hex characters, line: %[2]d",
	"File::ConcludedLicense":          "LicenseConcluded must be NOASSERTION, NONE, license identifier or license list, line: %[2]d",
	"File::LicenseInFile":             "LicenseInfoInFile must be NOASSERTION, NONE or license identifier, line: %[2]d",
	"File::LicenseComment":            "LicenseComments must be free form text between <text></text> tags, line: %[2]d",
	"File::Copyright":                 "FileCopyrightText must be one of NOASSERTION, NONE or free form text between <text></text> tags, line: %[2]d",
	"File::Notice":                    "FileNotice must be free form text between <text></text> tags, line: %[2]d",
	"File::Contributor":               "FileContributor must be a single line, line: %[2]d",
	"File::Dependency":                "FileDependency must be a single line, line: %[2]d",
	"File::Artifact":                  "ArtifactOfProjectName must be a single line of text, line: %[2]d",
	"File::ArtifactOfProjectHomePage": "ArtifactOfProjectHomePage must be a URL or UNKNOWN, line: %[2]d",
	"File::ArtifactOfProjectURI":      "ArtifactOfProjectURI must be a URI or UNKNOWN, line: %[2]d",

	"Snippet::SPDXID":               "SnippetSPDXID must be a single line of text of the form SPDXRef-[idstring], line: %[2]d",
	"Snippet::Name":                 "SnippetName must be a single line of text, line: %[2]d",
	"Snippet::Comment":              "SnippetComment value must be free form text between <text></text> tags, line: %[2]d",
	"Snippet::Copyright":            "SnippetCopyrightText must be one of NOASSERTION, NONE or free form text between <text></text> tags, line: %[2]d",
	"Snippet::LicenseComment":       "SnippetLicenseComments must be free form text between <text></text> tags, line: %[2]d",
	"Snippet::FromFileSPDXID":       "SnippetFromFileSPDXID must be a single line of text of the form [DocumentRef-[idstring]:]SPDXRef-[idstring], line: %[2]d",
	"Snippet::ConcludedLicense":     "SnippetLicenseConcluded must be NOASSERTION, NONE, license identifier or license list, line: %[2]d",
	"Snippet::LicenseInfoInSnippet": "LicenseInfoInSnippet must be NOASSERTION, NONE or license identifier, line: %[2]d",

	"ExtractedLicense::LicenseID": "LicenseID must start with 'LicenseRef-', line: %[2]d",
	"ExtractedLicense::Text":      "ExtractedText must be free form text between <text></text> tags, line: %[2]d",
	"ExtractedLicense::Name":      "LicenseName must be a single line of text or NOASSERTION, line: %[2]d",
	"ExtractedLicense::Comment":   "LicenseComment must be free form text between <text></text> tags, line: %[2]d",
	"ExtractedLicense::CrossRef":  "LicenseCrossReference must be a single line of text, line: %[2]d",
}

const (
	msgCardinality   = "Only one %s allowed, extra at line: %d"
	msgOrder         = "%s Can not appear before %s, line: %d"
	msgUnknownTag    = "Found unknown tag : %s at line: %d"
	msgLexer         = "Unrecognized input '%s' at line: %d"
	msgUnexpected    = "Unexpected %s '%s' at line: %d"
	msgArtifactOrder = "ArtifactOfProjectHomePage and ArtifactOfProjectURI must immediately follow ArtifactOfProjectName, line: %d"
)
