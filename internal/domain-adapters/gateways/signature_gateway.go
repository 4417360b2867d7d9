package gateways

import (
	"context"
	"fmt"

	"github.com/ochairo/spdxtv/internal/domain/entities"
	"github.com/ochairo/spdxtv/internal/external-adapters/gpg"
)

// signatureGateway wraps the OpenPGP keyring to implement the domain gateway interface
type signatureGateway struct {
	keyring *gpg.Keyring
}

// NewSignatureGateway creates a new signature gateway; passphrase unlocks protected signing keys
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewSignatureGateway(passphrase string) *signatureGateway {
	keyring := gpg.NewKeyring()
	if passphrase != "" {
		keyring.SetPassphrase(passphrase)
	}
	return &signatureGateway{keyring: keyring}
}

// ImportKeys loads a keyring from a file path or URL
func (g *signatureGateway) ImportKeys(ctx context.Context, keyringPath string) error {
	if err := g.keyring.Import(ctx, keyringPath); err != nil {
		return fmt.Errorf("failed to import keys: %w", err)
	}
	return nil
}

// Sign writes an armored detached signature for a document
func (g *signatureGateway) Sign(ctx context.Context, documentPath, signaturePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.keyring.SignFile(documentPath, signaturePath); err != nil {
		return fmt.Errorf("failed to sign %s: %w", documentPath, err)
	}
	return nil
}

// Verify checks a detached signature for a document
func (g *signatureGateway) Verify(ctx context.Context, documentPath, signaturePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := g.keyring.VerifyFile(documentPath, signaturePath); err != nil {
		return fmt.Errorf("%w for %s: %w", entities.ErrSignature, documentPath, err)
	}
	return nil
}

// KeyringSize returns the number of keys loaded
func (g *signatureGateway) KeyringSize() int {
	return g.keyring.Size()
}
