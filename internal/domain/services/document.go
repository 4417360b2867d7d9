// Package services implements domain business logic and use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ochairo/spdxtv/internal/domain/entities"
	"github.com/ochairo/spdxtv/internal/domain/interfaces"
	"github.com/ochairo/spdxtv/internal/domain/interfaces/gateways"
	"github.com/ochairo/spdxtv/internal/domain/interfaces/services"
)

const (
	// DefaultNamespacePrefix is prepended to generated document namespaces
	DefaultNamespacePrefix = "https://spdx.org/spdxdocs/"
	// ToolName identifies this tool in generated creation info
	ToolName = "spdxtv"
)

var generatedVersion = entities.Version{Major: 2, Minor: 1}

// DocumentDeps groups the collaborators of the document service
type DocumentDeps struct {
	Decoder   gateways.DocumentDecoder
	Encoder   gateways.DocumentEncoder
	Checksums gateways.ChecksumCalculator
	Catalog   gateways.LicenseCatalog
	Logger    interfaces.Logger
}

// documentService implements DocumentService
type documentService struct {
	decoder   gateways.DocumentDecoder
	encoder   gateways.DocumentEncoder
	checksums gateways.ChecksumCalculator
	catalog   gateways.LicenseCatalog
	logger    interfaces.Logger
}

// NewDocumentService creates a new document service with dependency injection
func NewDocumentService(deps DocumentDeps) services.DocumentService {
	logger := deps.Logger
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &documentService{
		decoder:   deps.Decoder,
		encoder:   deps.Encoder,
		checksums: deps.Checksums,
		catalog:   deps.Catalog,
		logger:    logger,
	}
}

// Parse decodes a document
func (s *documentService) Parse(ctx context.Context, r io.Reader) (*entities.ParseResult, error) {
	result, err := s.decoder.Decode(ctx, r)
	if err != nil {
		return result, fmt.Errorf("parse failed: %w", err)
	}
	return result, nil
}

// Write serializes a document
func (s *documentService) Write(w io.Writer, doc *entities.Document) error {
	if err := s.encoder.Encode(w, doc); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	return nil
}

// Validate returns the document's structural problems
func (s *documentService) Validate(doc *entities.Document) []string {
	if doc == nil {
		return []string{"Document is empty."}
	}
	messages := doc.Validate()
	s.checkListVersion(doc)
	return messages
}

// checkListVersion warns when a document was written against a newer license list than the loaded one
func (s *documentService) checkListVersion(doc *entities.Document) {
	if s.catalog == nil || doc.CreationInfo.LicenseListVersion == nil {
		return
	}
	known := s.catalog.ListVersion()
	if doc.CreationInfo.LicenseListVersion.Compare(known) > 0 {
		s.logger.Warn("Document uses a newer license list than the one loaded",
			interfaces.F("document", doc.CreationInfo.LicenseListVersion.String()),
			interfaces.F("loaded", known.String()))
	}
}

// VerifyFiles recomputes each file checksum under root and the package verification code
func (s *documentService) VerifyFiles(ctx context.Context, doc *entities.Document, root string) (*entities.VerificationReport, error) {
	if doc == nil || doc.Package == nil {
		return nil, errors.New("document has no package to verify")
	}

	report := &entities.VerificationReport{ExpectedCode: doc.Package.VerificationCode}
	actual := make([]*entities.File, 0, len(doc.Package.Files))
	complete := true

	for _, f := range doc.Package.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		check := entities.FileVerification{Name: f.Name, Expected: f.Checksum}
		sum, err := s.checksums.Calculate(ctx, localPath(root, f.Name))
		switch {
		case err != nil:
			check.Err = err
			complete = false
		case f.Checksum == nil:
			check.Actual = sum
			check.Err = errors.New("no checksum recorded")
		case f.Checksum.Value != sum.Value:
			check.Actual = sum
			check.Err = fmt.Errorf("%w: expected %s, got %s", entities.ErrChecksumMismatch, f.Checksum.Value, sum.Value)
		default:
			check.Actual = sum
		}
		if check.Actual != nil {
			actual = append(actual, &entities.File{Name: f.Name, Checksum: check.Actual})
		}
		if check.Err != nil {
			s.logger.Warn("File failed verification", interfaces.F("file", f.Name), interfaces.F("error", check.Err))
		}
		report.Files = append(report.Files, check)
	}

	if complete {
		var excluded []string
		if report.ExpectedCode != nil {
			excluded = report.ExpectedCode.ExcludedFiles
		}
		code, err := entities.ComputeVerificationCode(actual, excluded)
		if err != nil {
			return nil, fmt.Errorf("failed to compute verification code: %w", err)
		}
		report.ActualCode = code
	}

	return report, nil
}

// Generate describes every regular file under root as one package.
// Excluded files are left out of the package and listed in its verification code.
func (s *documentService) Generate(ctx context.Context, root string, opts entities.GenerateOptions) (*entities.Document, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	excluded := make([]string, 0, len(opts.Excluded))
	for _, name := range opts.Excluded {
		if !strings.HasPrefix(name, "./") {
			name = "./" + strings.TrimPrefix(filepath.ToSlash(name), "/")
		}
		excluded = append(excluded, name)
	}

	var names []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		name := "./" + filepath.ToSlash(rel)
		if !slices.Contains(excluded, name) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no files found under %s", root)
	}

	base := filepath.Base(filepath.Clean(root))
	pkgName := firstNonEmpty(opts.PackageName, base)
	pkg := entities.NewPackage(pkgName, entities.NoAssertionText())
	pkg.ConcludedLicense = entities.NoAssertion{}
	pkg.DeclaredLicense = entities.NoAssertion{}
	pkg.LicensesFromFiles = []entities.License{entities.NoAssertion{}}
	pkg.CopyrightText = entities.NoAssertionText()

	for i, name := range names {
		sum, err := s.checksums.Calculate(ctx, localPath(root, name))
		if err != nil {
			return nil, fmt.Errorf("failed to checksum %s: %w", name, err)
		}
		f := entities.NewFile(name, fmt.Sprintf("SPDXRef-File%d", i+1))
		f.Type = classifyFile(name)
		f.Checksum = sum
		f.ConcludedLicense = entities.NoAssertion{}
		f.LicensesInFile = []entities.License{entities.NoAssertion{}}
		f.Copyright = entities.NoAssertionText()
		pkg.AddFile(f)
	}

	code, err := entities.ComputeVerificationCode(pkg.Files, excluded)
	if err != nil {
		return nil, fmt.Errorf("failed to compute verification code: %w", err)
	}
	pkg.VerificationCode = code

	version := generatedVersion
	doc := entities.NewDocument()
	doc.Version = &version
	doc.DataLicense = entities.SimpleLicense{ID: entities.DataLicenseID}
	doc.SPDXID = entities.DocumentSPDXID
	doc.Name = firstNonEmpty(opts.DocumentName, base)
	doc.Namespace = opts.Namespace
	if doc.Namespace == "" {
		doc.Namespace = DefaultNamespacePrefix + doc.Name + "-" + code.Value
	}
	doc.Package = pkg

	creators := opts.Creators
	if len(creators) == 0 {
		creators = []entities.Creator{entities.NewTool(ToolName)}
	}
	for _, c := range creators {
		doc.CreationInfo.AddCreator(c)
	}
	doc.CreationInfo.SetCreatedNow()
	if s.catalog != nil {
		v := s.catalog.ListVersion()
		doc.CreationInfo.LicenseListVersion = &v
	}

	s.logger.Debug("Generated document",
		interfaces.F("root", root),
		interfaces.F("files", len(pkg.Files)),
		interfaces.F("verification_code", code.Value))
	return doc, nil
}

// LicenseSummary returns the distinct licenses a document references, ordered by identifier
func LicenseSummary(doc *entities.Document) []entities.License {
	var all []entities.License
	add := func(l entities.License) {
		if l == nil {
			return
		}
		for _, seen := range all {
			if entities.LicensesEqual(seen, l) {
				return
			}
		}
		all = append(all, l)
	}

	if doc.Package != nil {
		add(doc.Package.ConcludedLicense)
		add(doc.Package.DeclaredLicense)
		for _, l := range doc.Package.LicensesFromFiles {
			add(l)
		}
		for _, f := range doc.Package.Files {
			add(f.ConcludedLicense)
			for _, l := range f.LicensesInFile {
				add(l)
			}
		}
	}
	for _, sn := range doc.Snippets {
		add(sn.ConcludedLicense)
		for _, l := range sn.LicensesInfo {
			add(l)
		}
	}

	slices.SortFunc(all, entities.CompareLicenses)
	return all
}

// localPath maps an SPDX file name such as "./src/a.c" onto a path under root
func localPath(root, name string) string {
	clean := path.Clean("/" + strings.TrimPrefix(name, "./"))
	return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(clean, "/")))
}

var (
	sourceExtensions  = []string{".c", ".h", ".cc", ".cpp", ".go", ".java", ".js", ".ts", ".py", ".rb", ".rs", ".sh", ".pl", ".php"}
	archiveExtensions = []string{".zip", ".tar", ".gz", ".tgz", ".bz2", ".xz", ".jar", ".7z"}
	binaryExtensions  = []string{".so", ".a", ".o", ".exe", ".dll", ".dylib", ".class", ".bin"}
)

func classifyFile(name string) entities.FileType {
	ext := strings.ToLower(path.Ext(name))
	switch {
	case slices.Contains(sourceExtensions, ext):
		return entities.FileTypeSource
	case slices.Contains(archiveExtensions, ext):
		return entities.FileTypeArchive
	case slices.Contains(binaryExtensions, ext):
		return entities.FileTypeBinary
	default:
		return entities.FileTypeOther
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
