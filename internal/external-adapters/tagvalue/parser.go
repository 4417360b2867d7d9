package tagvalue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ochairo/spdxtv/internal/domain/entities"
	"github.com/ochairo/spdxtv/internal/domain/interfaces"
	"github.com/ochairo/spdxtv/internal/domain/interfaces/gateways"
)

// ErrInvalidDocument is returned in strict mode when parsing or validation found problems
var ErrInvalidDocument = entities.ErrInvalidDocument

// production describes the value a tag expects and the builder operation it feeds
type production struct {
	field   string
	accepts []TokenKind
	apply   func(b *Builder, value Token) error
}

var (
	lineOnly     = []TokenKind{TokenLine}
	textOnly     = []TokenKind{TokenText}
	dateValue    = []TokenKind{TokenDate, TokenLine}
	entityValue  = []TokenKind{TokenTool, TokenPerson, TokenOrganization}
	agentValue   = []TokenKind{TokenPerson, TokenOrganization, TokenNoAssertion, TokenTool}
	licenseValue = []TokenKind{TokenLine, TokenNoAssertion, TokenNone}
	locatorValue = []TokenKind{TokenLine, TokenNoAssertion, TokenNone}
	textOrAbsent = []TokenKind{TokenText, TokenNoAssertion, TokenNone}
	checksumTag  = []TokenKind{TokenChecksum, TokenLine}
	unknownable  = []TokenKind{TokenLine, TokenUnknown}
	fileTypes    = []TokenKind{TokenSource, TokenBinary, TokenArchive, TokenOther, TokenLine}
)

func str(set func(*Builder, string) error) func(*Builder, Token) error {
	return func(b *Builder, t Token) error { return set(b, t.Value) }
}

func text(set func(*Builder, entities.Text) error) func(*Builder, Token) error {
	return func(b *Builder, t Token) error { return set(b, tokenText(t)) }
}

func tokenText(t Token) entities.Text {
	switch t.Kind {
	case TokenNoAssertion:
		return entities.NoAssertionText()
	case TokenNone:
		return entities.NoneText()
	default:
		return entities.LiteralText(t.Value)
	}
}

var productions = map[TokenKind]production{
	TagSPDXVersion:        {"Document::Version", lineOnly, str((*Builder).SetDocVersion)},
	TagDataLicense:        {"Document::DataLicense", lineOnly, str((*Builder).SetDocDataLicense)},
	TagDocumentName:       {"Document::Name", lineOnly, str((*Builder).SetDocName)},
	TagSPDXID:             {"Document::SPDXID", lineOnly, str((*Builder).SetSPDXID)},
	TagDocumentComment:    {"Document::Comment", textOnly, str((*Builder).SetDocComment)},
	TagDocumentNamespace:  {"Document::Namespace", lineOnly, str((*Builder).SetDocNamespace)},
	TagCreator:            {"CreationInfo::Creator", entityValue, str((*Builder).AddCreator)},
	TagCreated:            {"CreationInfo::Created", dateValue, str((*Builder).SetCreated)},
	TagCreatorComment:     {"CreationInfo::Comment", textOnly, str((*Builder).SetCreationComment)},
	TagLicenseListVersion: {"CreationInfo::LicenseListVersion", lineOnly, str((*Builder).SetLicenseListVersion)},

	TagReviewer:          {"Review::Reviewer", entityValue, str((*Builder).AddReviewer)},
	TagReviewDate:        {"Review::Date", dateValue, str((*Builder).SetReviewDate)},
	TagReviewComment:     {"Review::Comment", textOnly, str((*Builder).SetReviewComment)},
	TagAnnotator:         {"Annotation::Annotator", entityValue, str((*Builder).AddAnnotator)},
	TagAnnotationDate:    {"Annotation::Date", dateValue, str((*Builder).SetAnnotationDate)},
	TagAnnotationComment: {"Annotation::Comment", textOnly, str((*Builder).SetAnnotationComment)},
	TagAnnotationType:    {"Annotation::AnnotationType", []TokenKind{TokenLine, TokenOther}, str((*Builder).SetAnnotationType)},
	TagSPDXREF:           {"Annotation::SPDXREF", lineOnly, str((*Builder).SetAnnotationSPDXID)},

	TagPackageName:                 {"Package::Name", lineOnly, str((*Builder).CreatePackage)},
	TagPackageVersion:              {"Package::Version", lineOnly, str((*Builder).SetPkgVersion)},
	TagPackageFileName:             {"Package::FileName", lineOnly, str((*Builder).SetPkgFileName)},
	TagPackageSupplier:             {"Package::Supplier", agentValue, str((*Builder).SetPkgSupplier)},
	TagPackageOriginator:           {"Package::Originator", agentValue, str((*Builder).SetPkgOriginator)},
	TagPackageDownloadLocation:     {"Package::DownloadLocation", locatorValue, text((*Builder).SetPkgDownloadLocation)},
	TagPackageHomePage:             {"Package::HomePage", locatorValue, text((*Builder).SetPkgHomePage)},
	TagPackageVerificationCode:     {"Package::VerificationCode", lineOnly, str((*Builder).SetPkgVerificationCode)},
	TagPackageChecksum:             {"Package::Checksum", checksumTag, str((*Builder).SetPkgChecksum)},
	TagPackageSourceInfo:           {"Package::SourceInfo", textOnly, str((*Builder).SetPkgSourceInfo)},
	TagPackageLicenseConcluded:     {"Package::ConcludedLicense", licenseValue, str((*Builder).SetPkgConcludedLicense)},
	TagPackageLicenseDeclared:      {"Package::DeclaredLicense", licenseValue, str((*Builder).SetPkgDeclaredLicense)},
	TagPackageLicenseInfoFromFiles: {"Package::LicensesFromFiles", licenseValue, str((*Builder).AddPkgLicenseFromFile)},
	TagPackageLicenseComments:      {"Package::LicenseComment", textOnly, str((*Builder).SetPkgLicenseComment)},
	TagPackageCopyrightText:        {"Package::CopyrightText", textOrAbsent, text((*Builder).SetPkgCopyright)},
	TagPackageSummary:              {"Package::Summary", textOnly, str((*Builder).SetPkgSummary)},
	TagPackageDescription:          {"Package::Description", textOnly, str((*Builder).SetPkgDescription)},

	TagFileName:                  {"File::Name", lineOnly, str((*Builder).SetFileName)},
	TagFileType:                  {"File::Type", fileTypes, str((*Builder).SetFileType)},
	TagFileChecksum:              {"File::Checksum", checksumTag, str((*Builder).SetFileChecksum)},
	TagLicenseConcluded:          {"File::ConcludedLicense", licenseValue, str((*Builder).SetFileConcludedLicense)},
	TagLicenseInfoInFile:         {"File::LicenseInFile", licenseValue, str((*Builder).AddFileLicenseInFile)},
	TagFileCopyrightText:         {"File::Copyright", textOrAbsent, text((*Builder).SetFileCopyright)},
	TagLicenseComments:           {"File::LicenseComment", textOnly, str((*Builder).SetFileLicenseComment)},
	TagFileComment:               {"File::Comment", textOnly, str((*Builder).SetFileComment)},
	TagFileNotice:                {"File::Notice", textOnly, str((*Builder).SetFileNotice)},
	TagFileContributor:           {"File::Contributor", lineOnly, str((*Builder).AddFileContributor)},
	TagFileDependency:            {"File::Dependency", lineOnly, str((*Builder).AddFileDependency)},
	TagArtifactOfProjectName:     {"File::Artifact", lineOnly, str((*Builder).AddArtifactName)},
	TagArtifactOfProjectHomePage: {"File::ArtifactOfProjectHomePage", unknownable, str((*Builder).SetArtifactHomePage)},
	TagArtifactOfProjectURI:      {"File::ArtifactOfProjectURI", unknownable, str((*Builder).SetArtifactURI)},

	TagSnippetSPDXID:           {"Snippet::SPDXID", lineOnly, str((*Builder).CreateSnippet)},
	TagSnippetName:             {"Snippet::Name", lineOnly, str((*Builder).SetSnippetName)},
	TagSnippetComment:          {"Snippet::Comment", textOnly, str((*Builder).SetSnippetComment)},
	TagSnippetCopyrightText:    {"Snippet::Copyright", textOrAbsent, text((*Builder).SetSnippetCopyright)},
	TagSnippetLicenseComments:  {"Snippet::LicenseComment", textOnly, str((*Builder).SetSnippetLicenseComment)},
	TagSnippetFromFileSPDXID:   {"Snippet::FromFileSPDXID", lineOnly, str((*Builder).SetSnippetFromFileSPDXID)},
	TagSnippetLicenseConcluded: {"Snippet::ConcludedLicense", licenseValue, str((*Builder).SetSnippetConcludedLicense)},
	TagLicenseInfoInSnippet:    {"Snippet::LicenseInfoInSnippet", licenseValue, str((*Builder).AddSnippetLicenseInfo)},

	TagLicenseID:             {"ExtractedLicense::LicenseID", lineOnly, str((*Builder).SetLicenseID)},
	TagExtractedText:         {"ExtractedLicense::Text", textOnly, str((*Builder).SetLicenseText)},
	TagLicenseName:           {"ExtractedLicense::Name", []TokenKind{TokenLine, TokenNoAssertion}, str((*Builder).SetLicenseName)},
	TagLicenseCrossReference: {"ExtractedLicense::CrossRef", lineOnly, str((*Builder).AddLicenseCrossRef)},
	TagLicenseComment:        {"ExtractedLicense::Comment", textOnly, str((*Builder).SetLicenseComment)},
}

// Option configures a Parser
type Option func(*Parser)

// WithCatalog sets the license list used to resolve identifiers
func WithCatalog(catalog gateways.LicenseCatalog) Option {
	return func(p *Parser) { p.catalog = catalog }
}

// WithLogger sets where diagnostics are logged
func WithLogger(logger interfaces.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// WithStrict makes Parse fail with ErrInvalidDocument when any diagnostic was recorded
func WithStrict(strict bool) Option {
	return func(p *Parser) { p.strict = strict }
}

// Parser drives the lexer and builder over tag:value input. A Parser holds no
// per-document state and may be shared; every call uses its own lexer and builder.
type Parser struct {
	catalog gateways.LicenseCatalog
	logger  interfaces.Logger
	strict  bool
}

// NewParser creates a parser
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: &interfaces.NoOpLogger{}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads all of r and parses it. The result is returned even when it has errors.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*entities.ParseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled: %w", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return p.ParseBytes(data)
}

// Decode implements gateways.DocumentDecoder
func (p *Parser) Decode(ctx context.Context, r io.Reader) (*entities.ParseResult, error) {
	return p.Parse(ctx, r)
}

// ParseBytes parses a complete document held in memory
func (p *Parser) ParseBytes(data []byte) (*entities.ParseResult, error) {
	run := &parseRun{
		parser:  p,
		lexer:   NewLexer(data),
		builder: NewBuilder(p.catalog),
	}
	result := run.execute()
	if p.strict && result.Error {
		return result, fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(result.Messages(), "; "))
	}
	return result, nil
}

// parseRun is the state of one parse
type parseRun struct {
	parser  *Parser
	lexer   *Lexer
	builder *Builder
	peeked  *Token
	prevTag TokenKind
	result  entities.ParseResult
}

func (r *parseRun) next() Token {
	if r.peeked != nil {
		tok := *r.peeked
		r.peeked = nil
		return tok
	}
	return r.lexer.Next()
}

func (r *parseRun) unread(tok Token) {
	r.peeked = &tok
}

func (r *parseRun) execute() *entities.ParseResult {
	for {
		tok := r.next()
		switch {
		case tok.Kind == TokenEOF:
			r.finish()
			return &r.result
		case tok.Kind == TokenError:
			r.report(entities.Diagnostic{Kind: entities.DiagnosticLexer, Line: tok.Line,
				Message: fmt.Sprintf(msgLexer, tok.Value, tok.Line)})
		case tok.Kind == TokenUnknownTag:
			r.report(entities.Diagnostic{Kind: entities.DiagnosticUnknownTag, Tag: tok.Value, Line: tok.Line,
				Message: fmt.Sprintf(msgUnknownTag, tok.Value, tok.Line)})
			r.skipLine(tok.Line)
		case tok.Kind.IsTag():
			r.handleTag(tok)
			r.prevTag = tok.Kind
		default:
			r.report(entities.Diagnostic{Kind: entities.DiagnosticSyntax, Line: tok.Line,
				Message: fmt.Sprintf(msgUnexpected, tok.Kind, tok.Value, tok.Line)})
		}
	}
}

// skipLine drops the value tokens that follow an unknown tag on the same line
func (r *parseRun) skipLine(line int) {
	for {
		tok := r.next()
		if tok.Kind == TokenEOF || tok.Kind.IsTag() || tok.Kind == TokenUnknownTag || tok.Line != line {
			r.unread(tok)
			return
		}
	}
}

func (r *parseRun) handleTag(tag Token) {
	if tag.Kind == TagExternalDocumentRef {
		r.handleExternalDocumentRef(tag)
		return
	}
	prod, ok := productions[tag.Kind]
	if !ok {
		r.report(entities.Diagnostic{Kind: entities.DiagnosticUnknownTag, Tag: tag.Value, Line: tag.Line,
			Message: fmt.Sprintf(msgUnknownTag, tag.Value, tag.Line)})
		return
	}
	if (tag.Kind == TagArtifactOfProjectHomePage || tag.Kind == TagArtifactOfProjectURI) && !followsArtifact(r.prevTag) {
		r.report(entities.Diagnostic{Kind: entities.DiagnosticOrder, Field: prod.field, Tag: tag.Value, Line: tag.Line,
			Message: fmt.Sprintf(msgArtifactOrder, tag.Line)})
		r.consumeValue()
		return
	}

	value := r.next()
	if !slices.Contains(prod.accepts, value.Kind) {
		if value.Kind == TokenEOF || value.Kind.IsTag() || value.Kind == TokenUnknownTag {
			r.unread(value)
		}
		r.reportValue(prod.field, tag, value.Value)
		return
	}
	if err := prod.apply(r.builder, value); err != nil {
		r.reportBuildError(err, tag, value.Value)
	}
}

func followsArtifact(prev TokenKind) bool {
	switch prev {
	case TagArtifactOfProjectName, TagArtifactOfProjectHomePage, TagArtifactOfProjectURI:
		return true
	default:
		return false
	}
}

// consumeValue drops the value token of a rejected tag
func (r *parseRun) consumeValue() {
	value := r.next()
	if value.Kind == TokenEOF || value.Kind.IsTag() || value.Kind == TokenUnknownTag {
		r.unread(value)
	}
}

// handleExternalDocumentRef reads "DocumentRef-id <uri> SHA1: <hex>"
func (r *parseRun) handleExternalDocumentRef(tag Token) {
	const field = "Document::ExternalDocumentRef"
	parts := make([]Token, 0, 3)
	for _, want := range []TokenKind{TokenDocRefID, TokenDocURI, TokenExtDocRefChecksum} {
		tok := r.next()
		if tok.Kind != want {
			if tok.Kind == TokenEOF || tok.Kind.IsTag() || tok.Kind == TokenUnknownTag || tok.Line != tag.Line {
				r.unread(tok)
			}
			r.reportValue(field, tag, tok.Value)
			return
		}
		parts = append(parts, tok)
	}
	if err := r.builder.AddExtDocRef(parts[0].Value, parts[1].Value, parts[2].Value); err != nil {
		r.reportBuildError(err, tag, parts[0].Value)
	}
}

func (r *parseRun) reportValue(field string, tag Token, value string) {
	format, ok := valueMessages[field]
	if !ok {
		format = "Invalid value '%[1]s' for " + tag.Value + ", line: %[2]d"
	}
	r.report(entities.Diagnostic{Kind: entities.DiagnosticValue, Field: field, Tag: tag.Value, Line: tag.Line,
		Message: fmt.Sprintf(format, value, tag.Line)})
}

func (r *parseRun) reportBuildError(err error, tag Token, value string) {
	var be *BuildError
	if !errors.As(err, &be) {
		r.report(entities.Diagnostic{Kind: entities.DiagnosticValue, Tag: tag.Value, Line: tag.Line,
			Message: fmt.Sprintf("%s at line: %d", err, tag.Line)})
		return
	}
	switch {
	case errors.Is(be, ErrCardinality):
		r.report(entities.Diagnostic{Kind: entities.DiagnosticCardinality, Field: be.Field, Tag: tag.Value, Line: tag.Line,
			Message: fmt.Sprintf(msgCardinality, tag.Value, tag.Line)})
	case errors.Is(be, ErrOrder):
		r.report(entities.Diagnostic{Kind: entities.DiagnosticOrder, Field: be.Field, Tag: tag.Value, Line: tag.Line,
			Message: fmt.Sprintf(msgOrder, tag.Value, be.Anchor, tag.Line)})
	default:
		r.reportValue(be.Field, tag, value)
		if be.Err != nil {
			r.parser.logger.Debug("value rejected", interfaces.F("field", be.Field), interfaces.F("reason", be.Err.Error()))
		}
	}
}

func (r *parseRun) report(d entities.Diagnostic) {
	r.result.Error = true
	r.result.Diagnostics = append(r.result.Diagnostics, d)
	r.parser.logger.Error(d.Message, interfaces.F("line", d.Line), interfaces.F("kind", string(d.Kind)))
}

// finish resets the builder, binds extracted licenses and validates the document
func (r *parseRun) finish() {
	r.builder.Reset()
	r.builder.BindExtractedLicenses()
	doc := r.builder.Document()
	r.result.Document = doc
	for _, msg := range doc.Validate() {
		r.result.Error = true
		r.result.Diagnostics = append(r.result.Diagnostics, entities.Diagnostic{Kind: entities.DiagnosticValidation, Message: msg})
		r.parser.logger.Warn(msg, interfaces.F("kind", string(entities.DiagnosticValidation)))
	}
}
