// Package services defines interfaces for domain service contracts.
package services

import (
	"context"
	"io"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

// DocumentService defines the high-level operations on SPDX documents
type DocumentService interface {
	// Parse decodes a document; the result is returned even when it carries diagnostics
	Parse(ctx context.Context, r io.Reader) (*entities.ParseResult, error)

	// Write serializes a document
	Write(w io.Writer, doc *entities.Document) error

	// Validate returns structural validation messages
	Validate(doc *entities.Document) []string

	// VerifyFiles recomputes file checksums under root and the package verification code
	VerifyFiles(ctx context.Context, doc *entities.Document, root string) (*entities.VerificationReport, error)

	// Generate describes the files under root as a single-package document
	Generate(ctx context.Context, root string, opts entities.GenerateOptions) (*entities.Document, error)
}
