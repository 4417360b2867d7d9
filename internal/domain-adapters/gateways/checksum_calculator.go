package gateways

import (
	"context"
	"crypto/sha1" //nolint:gosec // G505: SHA1 is the only file checksum SPDX 2.x tag-value carries
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

// checksumCalculator computes SPDX file checksums in pure Go
type checksumCalculator struct{}

// NewChecksumCalculator creates a new checksum calculator
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewChecksumCalculator() *checksumCalculator {
	return &checksumCalculator{}
}

// Calculate returns the SHA1 checksum of a file
func (c *checksumCalculator) Calculate(ctx context.Context, path string) (*entities.Checksum, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	//nolint:gosec // G304: File path comes from the document or the directory being described
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	h := sha1.New() //nolint:gosec // G401: see import
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("failed to hash file: %w", err)
	}

	return entities.NewSHA1Checksum(hex.EncodeToString(h.Sum(nil))), nil
}

// Verify compares a file's SHA1 checksum against expected
func (c *checksumCalculator) Verify(ctx context.Context, path string, expected *entities.Checksum) error {
	if expected == nil {
		return fmt.Errorf("no checksum recorded for %s", path)
	}
	if err := expected.Validate(); err != nil {
		return fmt.Errorf("invalid recorded checksum: %w", err)
	}

	actual, err := c.Calculate(ctx, path)
	if err != nil {
		return err
	}

	if actual.Value != expected.Value {
		return fmt.Errorf("%w: expected %s, got %s", entities.ErrChecksumMismatch, expected.Value, actual.Value)
	}

	return nil
}
