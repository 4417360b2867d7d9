package gpg

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

const armoredSignaturePrefix = "-----BEGIN PGP SIGNATURE---"

// SignFile writes an armored detached signature of documentPath to signaturePath
func (k *Keyring) SignFile(documentPath, signaturePath string) error {
	signer, err := k.signer()
	if err != nil {
		return err
	}

	//nolint:gosec // G304: documentPath is the document being signed
	doc, err := os.Open(documentPath)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	//nolint:errcheck // Defer close
	defer doc.Close()

	//nolint:gosec // G304: signaturePath is chosen by the user
	out, err := os.OpenFile(signaturePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create signature file: %w", err)
	}

	if err := openpgp.ArmoredDetachSign(out, signer, doc, nil); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to sign document: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write signature: %w", err)
	}
	return nil
}

// VerifyFile checks a detached signature, armored or binary, against documentPath
func (k *Keyring) VerifyFile(documentPath, signaturePath string) error {
	if len(k.entities) == 0 {
		return errors.New("no keys imported, import a keyring first")
	}

	//nolint:gosec // G304: signaturePath is user-provided for verification
	sigFile, err := os.Open(signaturePath)
	if err != nil {
		return fmt.Errorf("failed to open signature file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer sigFile.Close()

	//nolint:gosec // G304: documentPath is user-provided for verification
	doc, err := os.Open(documentPath)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	//nolint:errcheck // Defer close
	defer doc.Close()

	peek := make([]byte, len(armoredSignaturePrefix))
	n, _ := io.ReadFull(sigFile, peek)
	armored := n == len(peek) && string(peek) == armoredSignaturePrefix
	if _, err := sigFile.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to reset signature file: %w", err)
	}

	if armored {
		_, err = openpgp.CheckArmoredDetachedSignature(k.entities, doc, sigFile, nil)
	} else {
		_, err = openpgp.CheckDetachedSignature(k.entities, doc, sigFile, nil)
	}
	if err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}
	return nil
}
