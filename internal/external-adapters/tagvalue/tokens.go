// Package tagvalue reads and writes SPDX 2.1 documents in the tag:value format.
package tagvalue

import "fmt"

// TokenKind identifies a lexical token
type TokenKind int

// Value and control tokens
const (
	TokenEOF TokenKind = iota
	TokenError
	TokenUnknownTag
	TokenLine
	TokenText
	TokenChecksum
	TokenDocRefID
	TokenDocURI
	TokenExtDocRefChecksum
	TokenTool
	TokenPerson
	TokenOrganization
	TokenDate
	TokenNoAssertion
	TokenUnknown
	TokenNone
	TokenSource
	TokenBinary
	TokenArchive
	TokenOther
	tagsBegin
)

// Tag tokens, one per reserved keyword
const (
	TagSPDXVersion TokenKind = tagsBegin + iota + 1
	TagDataLicense
	TagDocumentName
	TagSPDXID
	TagDocumentComment
	TagDocumentNamespace
	TagExternalDocumentRef
	TagCreator
	TagCreated
	TagCreatorComment
	TagLicenseListVersion
	TagReviewer
	TagReviewDate
	TagReviewComment
	TagAnnotator
	TagAnnotationDate
	TagAnnotationComment
	TagAnnotationType
	TagSPDXREF
	TagPackageName
	TagPackageVersion
	TagPackageDownloadLocation
	TagPackageSummary
	TagPackageSourceInfo
	TagPackageFileName
	TagPackageSupplier
	TagPackageOriginator
	TagPackageChecksum
	TagPackageVerificationCode
	TagPackageDescription
	TagPackageLicenseDeclared
	TagPackageLicenseConcluded
	TagPackageLicenseInfoFromFiles
	TagPackageLicenseComments
	TagPackageCopyrightText
	TagPackageHomePage
	TagFileName
	TagFileType
	TagFileChecksum
	TagLicenseConcluded
	TagLicenseInfoInFile
	TagFileCopyrightText
	TagLicenseComments
	TagFileComment
	TagFileNotice
	TagFileContributor
	TagFileDependency
	TagArtifactOfProjectName
	TagArtifactOfProjectHomePage
	TagArtifactOfProjectURI
	TagLicenseID
	TagExtractedText
	TagLicenseName
	TagLicenseCrossReference
	TagLicenseComment
	TagSnippetSPDXID
	TagSnippetName
	TagSnippetComment
	TagSnippetCopyrightText
	TagSnippetLicenseComments
	TagSnippetFromFileSPDXID
	TagSnippetLicenseConcluded
	TagLicenseInfoInSnippet
	tagsEnd
)

var tagKeywords = map[string]TokenKind{
	"SPDXVersion":                 TagSPDXVersion,
	"DataLicense":                 TagDataLicense,
	"DocumentName":                TagDocumentName,
	"SPDXID":                      TagSPDXID,
	"DocumentComment":             TagDocumentComment,
	"DocumentNamespace":           TagDocumentNamespace,
	"ExternalDocumentRef":         TagExternalDocumentRef,
	"Creator":                     TagCreator,
	"Created":                     TagCreated,
	"CreatorComment":              TagCreatorComment,
	"LicenseListVersion":          TagLicenseListVersion,
	"Reviewer":                    TagReviewer,
	"ReviewDate":                  TagReviewDate,
	"ReviewComment":               TagReviewComment,
	"Annotator":                   TagAnnotator,
	"AnnotationDate":              TagAnnotationDate,
	"AnnotationComment":           TagAnnotationComment,
	"AnnotationType":              TagAnnotationType,
	"SPDXREF":                     TagSPDXREF,
	"PackageName":                 TagPackageName,
	"PackageVersion":              TagPackageVersion,
	"PackageDownloadLocation":     TagPackageDownloadLocation,
	"PackageSummary":              TagPackageSummary,
	"PackageSourceInfo":           TagPackageSourceInfo,
	"PackageFileName":             TagPackageFileName,
	"PackageSupplier":             TagPackageSupplier,
	"PackageOriginator":           TagPackageOriginator,
	"PackageChecksum":             TagPackageChecksum,
	"PackageVerificationCode":     TagPackageVerificationCode,
	"PackageDescription":          TagPackageDescription,
	"PackageLicenseDeclared":      TagPackageLicenseDeclared,
	"PackageLicenseConcluded":     TagPackageLicenseConcluded,
	"PackageLicenseInfoFromFiles": TagPackageLicenseInfoFromFiles,
	"PackageLicenseComments":      TagPackageLicenseComments,
	"PackageCopyrightText":        TagPackageCopyrightText,
	"PackageHomePage":             TagPackageHomePage,
	"FileName":                    TagFileName,
	"FileType":                    TagFileType,
	"FileChecksum":                TagFileChecksum,
	"LicenseConcluded":            TagLicenseConcluded,
	"LicenseInfoInFile":           TagLicenseInfoInFile,
	"FileCopyrightText":           TagFileCopyrightText,
	"LicenseComments":             TagLicenseComments,
	"FileComment":                 TagFileComment,
	"FileNotice":                  TagFileNotice,
	"FileContributor":             TagFileContributor,
	"FileDependency":              TagFileDependency,
	"ArtifactOfProjectName":       TagArtifactOfProjectName,
	"ArtifactOfProjectHomePage":   TagArtifactOfProjectHomePage,
	"ArtifactOfProjectURI":        TagArtifactOfProjectURI,
	"LicenseID":                   TagLicenseID,
	"ExtractedText":               TagExtractedText,
	"LicenseName":                 TagLicenseName,
	"LicenseCrossReference":       TagLicenseCrossReference,
	"LicenseComment":              TagLicenseComment,
	"SnippetSPDXID":               TagSnippetSPDXID,
	"SnippetName":                 TagSnippetName,
	"SnippetComment":              TagSnippetComment,
	"SnippetCopyrightText":        TagSnippetCopyrightText,
	"SnippetLicenseComments":      TagSnippetLicenseComments,
	"SnippetFromFileSPDXID":       TagSnippetFromFileSPDXID,
	"SnippetLicenseConcluded":     TagSnippetLicenseConcluded,
	"LicenseInfoInSnippet":        TagLicenseInfoInSnippet,
}

// valueKeywords are literals recognized in value position
var valueKeywords = map[string]TokenKind{
	"NOASSERTION": TokenNoAssertion,
	"UNKNOWN":     TokenUnknown,
	"NONE":        TokenNone,
	"SOURCE":      TokenSource,
	"BINARY":      TokenBinary,
	"ARCHIVE":     TokenArchive,
	"OTHER":       TokenOther,
}

var valueNames = map[TokenKind]string{
	TokenEOF:               "EOF",
	TokenError:             "ERROR",
	TokenUnknownTag:        "UNKNOWN_TAG",
	TokenLine:              "LINE",
	TokenText:              "TEXT",
	TokenChecksum:          "CHKSUM",
	TokenDocRefID:          "DOC_REF_ID",
	TokenDocURI:            "DOC_URI",
	TokenExtDocRefChecksum: "EXT_DOC_REF_CHKSUM",
	TokenTool:              "TOOL_VALUE",
	TokenPerson:            "PERSON_VALUE",
	TokenOrganization:      "ORG_VALUE",
	TokenDate:              "DATE",
	TokenNoAssertion:       "NO_ASSERT",
	TokenUnknown:           "UN_KNOWN",
	TokenNone:              "NONE",
	TokenSource:            "SOURCE",
	TokenBinary:            "BINARY",
	TokenArchive:           "ARCHIVE",
	TokenOther:             "OTHER",
}

var tagNames = func() map[TokenKind]string {
	m := make(map[TokenKind]string, len(tagKeywords))
	for name, kind := range tagKeywords {
		m[kind] = name
	}
	return m
}()

// IsTag reports whether k is a reserved tag keyword
func (k TokenKind) IsTag() bool {
	return k > tagsBegin && k < tagsEnd
}

func (k TokenKind) String() string {
	if name, ok := tagNames[k]; ok {
		return name
	}
	if name, ok := valueNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one lexeme with the line it started on
type Token struct {
	Kind  TokenKind
	Value string
	Line  int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Value, t.Line)
}
