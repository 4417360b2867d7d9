package gateways

import (
	"context"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

// ChecksumCalculator hashes files on disk
type ChecksumCalculator interface {
	// Calculate returns the SHA1 checksum of the file at path
	Calculate(ctx context.Context, path string) (*entities.Checksum, error)

	// Verify compares the file at path against expected
	Verify(ctx context.Context, path string, expected *entities.Checksum) error
}

// SignatureGateway signs and verifies detached OpenPGP signatures of documents
type SignatureGateway interface {
	ImportKeys(ctx context.Context, keyringPath string) error
	Sign(ctx context.Context, documentPath, signaturePath string) error
	Verify(ctx context.Context, documentPath, signaturePath string) error
}
