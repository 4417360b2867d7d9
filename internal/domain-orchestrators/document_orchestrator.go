// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ochairo/spdxtv/internal/domain/entities"
	"github.com/ochairo/spdxtv/internal/domain/interfaces"
	"github.com/ochairo/spdxtv/internal/domain/interfaces/gateways"
	"github.com/ochairo/spdxtv/internal/domain/interfaces/services"
	domainservices "github.com/ochairo/spdxtv/internal/domain/services"
)

// SignatureExtension is appended to a document path to name its detached signature
const SignatureExtension = ".asc"

// DocumentOrchestrator coordinates the parse, generate, verify and sign workflows
type DocumentOrchestrator struct {
	documents  services.DocumentService
	signatures gateways.SignatureGateway
	logger     interfaces.Logger
	keyring    string
	keysLoaded bool
}

// DocumentOrchestratorConfig holds configuration for the orchestrator
type DocumentOrchestratorConfig struct {
	// Keyring is a key file path or URL used for signing and signature checks
	Keyring string
}

// NewDocumentOrchestrator creates a new document orchestrator
func NewDocumentOrchestrator(
	documents services.DocumentService,
	signatures gateways.SignatureGateway,
	logger interfaces.Logger,
	config DocumentOrchestratorConfig,
) *DocumentOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &DocumentOrchestrator{
		documents:  documents,
		signatures: signatures,
		logger:     logger,
		keyring:    config.Keyring,
	}
}

// InspectResult is a parsed document with its license summary
type InspectResult struct {
	Path     string
	Result   *entities.ParseResult
	Licenses []entities.License
}

// Inspect parses a document file without failing on diagnostics
func (o *DocumentOrchestrator) Inspect(ctx context.Context, path string) (*InspectResult, error) {
	result, err := o.parseFile(ctx, path)
	if err != nil {
		return nil, err
	}

	inspect := &InspectResult{Path: path, Result: result}
	if result.Document != nil {
		inspect.Licenses = domainservices.LicenseSummary(result.Document)
	}
	return inspect, nil
}

// Validate parses a document file and fails with ErrInvalidDocument when it has problems
func (o *DocumentOrchestrator) Validate(ctx context.Context, path string) (*entities.ParseResult, error) {
	result, err := o.parseFile(ctx, path)
	if err != nil {
		return result, err
	}
	if result.Error {
		return result, invalid(path, result)
	}
	o.logger.Info("Document is valid", interfaces.F("path", path))
	return result, nil
}

// Format re-serializes a valid document in canonical tag order
func (o *DocumentOrchestrator) Format(ctx context.Context, path string, out io.Writer) error {
	result, err := o.Validate(ctx, path)
	if err != nil {
		return err
	}
	return o.documents.Write(out, result.Document)
}

// Generate describes root as a document and writes it to out
func (o *DocumentOrchestrator) Generate(ctx context.Context, root string, opts entities.GenerateOptions, out io.Writer) (*entities.Document, error) {
	doc, err := o.documents.Generate(ctx, root, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate document: %w", err)
	}
	if err := o.documents.Write(out, doc); err != nil {
		return nil, err
	}
	o.logger.Info("Generated document",
		interfaces.F("root", root),
		interfaces.F("files", len(doc.Package.Files)))
	return doc, nil
}

// GenerateFile writes the document for root to outPath, excluding outPath itself when it lies under root
func (o *DocumentOrchestrator) GenerateFile(ctx context.Context, root, outPath string, opts entities.GenerateOptions) (*entities.Document, error) {
	if rel, ok := within(root, outPath); ok {
		opts.Excluded = append(opts.Excluded, rel)
	}

	var buf bytes.Buffer
	doc, err := o.Generate(ctx, root, opts, &buf)
	if err != nil {
		return nil, err
	}
	//nolint:gosec // G306: SPDX documents are public metadata
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return doc, nil
}

// VerifyOptions selects the checks performed by Verify
type VerifyOptions struct {
	// Root is the directory holding the package files; empty skips the file checks
	Root string
	// Signature is the detached signature path; empty skips the signature check
	Signature string
}

// Verify checks a document's signature and the files it describes
func (o *DocumentOrchestrator) Verify(ctx context.Context, path string, opts VerifyOptions) (*entities.VerificationReport, error) {
	if opts.Signature != "" {
		if err := o.loadKeys(ctx); err != nil {
			return nil, err
		}
		if err := o.signatures.Verify(ctx, path, opts.Signature); err != nil {
			return nil, err
		}
		o.logger.Info("Signature verified", interfaces.F("signature", opts.Signature))
	}

	result, err := o.Validate(ctx, path)
	if err != nil {
		return nil, err
	}

	report := &entities.VerificationReport{SignatureChecked: opts.Signature != ""}
	if opts.Root != "" {
		files, err := o.documents.VerifyFiles(ctx, result.Document, opts.Root)
		if err != nil {
			return nil, fmt.Errorf("failed to verify files: %w", err)
		}
		files.SignatureChecked = report.SignatureChecked
		report = files
	}

	for _, f := range report.Failed() {
		o.logger.Error("File failed verification", interfaces.F("file", f.Name), interfaces.F("error", f.Err))
	}
	return report, nil
}

// Sign validates a document and writes its detached signature.
// An empty signaturePath writes next to the document.
func (o *DocumentOrchestrator) Sign(ctx context.Context, path, signaturePath string) (string, error) {
	if _, err := o.Validate(ctx, path); err != nil {
		return "", err
	}
	if err := o.loadKeys(ctx); err != nil {
		return "", err
	}
	if signaturePath == "" {
		signaturePath = path + SignatureExtension
	}
	if err := o.signatures.Sign(ctx, path, signaturePath); err != nil {
		return "", err
	}
	o.logger.Info("Signed document", interfaces.F("path", path), interfaces.F("signature", signaturePath))
	return signaturePath, nil
}

func (o *DocumentOrchestrator) loadKeys(ctx context.Context) error {
	if o.keysLoaded {
		return nil
	}
	if o.signatures == nil {
		return errors.New("signatures are not configured")
	}
	if o.keyring == "" {
		return errors.New("no keyring configured")
	}
	if err := o.signatures.ImportKeys(ctx, o.keyring); err != nil {
		return err
	}
	o.keysLoaded = true
	return nil
}

func (o *DocumentOrchestrator) parseFile(ctx context.Context, path string) (*entities.ParseResult, error) {
	//nolint:gosec // G304: path is the document named by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	o.logger.Debug("Parsing document", interfaces.F("path", path))
	result, err := o.documents.Parse(ctx, f)
	if err != nil {
		return result, err
	}
	return result, nil
}

func invalid(path string, result *entities.ParseResult) error {
	return fmt.Errorf("%w: %s has %d problem(s)", entities.ErrInvalidDocument, path, len(result.Diagnostics))
}

// within returns target relative to root, in SPDX form, when target lies under root
func within(root, target string) (string, bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, absTarget)
	if err != nil || rel == "." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || rel == ".." {
		return "", false
	}
	return "./" + filepath.ToSlash(rel), true
}
