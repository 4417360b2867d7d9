// Package gpg signs and verifies SPDX documents with detached OpenPGP signatures.
package gpg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// maxKeyringSize bounds keyrings downloaded over HTTP
const maxKeyringSize = 10 * 1024 * 1024

// Keyring holds the public and private keys used for document signatures.
// ProtonMail's go-crypto is a maintained fork of golang.org/x/crypto/openpgp.
type Keyring struct {
	entities   openpgp.EntityList
	httpClient *http.Client
	passphrase []byte
}

// NewKeyring creates an empty keyring
func NewKeyring() *Keyring {
	return &Keyring{
		entities: make(openpgp.EntityList, 0),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetPassphrase sets the passphrase used to unlock protected signing keys
func (k *Keyring) SetPassphrase(passphrase string) {
	k.passphrase = []byte(passphrase)
}

// Import loads keys from a local path or, for http(s) locations, from a URL
func (k *Keyring) Import(ctx context.Context, location string) error {
	if strings.HasPrefix(location, "https://") || strings.HasPrefix(location, "http://") {
		return k.ImportKeysFromURL(ctx, location)
	}
	return k.ImportKeyFromFile(location)
}

// ImportKeysFromURL imports every key from an armored KEYS file
func (k *Keyring) ImportKeysFromURL(ctx context.Context, keysURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, keysURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download KEYS file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("KEYS file download failed with status %d", resp.StatusCode)
	}

	entities, err := openpgp.ReadArmoredKeyRing(io.LimitReader(resp.Body, maxKeyringSize))
	if err != nil {
		return fmt.Errorf("failed to parse KEYS file: %w", err)
	}
	if len(entities) == 0 {
		return errors.New("no keys found in KEYS file")
	}

	k.entities = append(k.entities, entities...)
	return nil
}

// ImportKeyFromFile imports armored or binary keys from a file
func (k *Keyring) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath is the keyring configured by the user
	f, err := os.Open(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}
	//nolint:errcheck // Defer close
	defer f.Close()

	entities, err := openpgp.ReadArmoredKeyRing(f)
	if err != nil {
		if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
			return fmt.Errorf("failed to reset file: %w", seekErr)
		}
		entities, err = openpgp.ReadKeyRing(f)
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
	}

	if len(entities) == 0 {
		return errors.New("no keys found in file")
	}

	k.entities = append(k.entities, entities...)
	return nil
}

// Size returns the number of keys in the keyring
func (k *Keyring) Size() int {
	return len(k.entities)
}

// Clear removes all imported keys
func (k *Keyring) Clear() {
	k.entities = make(openpgp.EntityList, 0)
}

// signer returns the first entity carrying a usable private key
func (k *Keyring) signer() (*openpgp.Entity, error) {
	for _, e := range k.entities {
		if e.PrivateKey == nil {
			continue
		}
		if e.PrivateKey.Encrypted {
			if len(k.passphrase) == 0 {
				return nil, errors.New("signing key is passphrase protected")
			}
			if err := e.PrivateKey.Decrypt(k.passphrase); err != nil {
				return nil, fmt.Errorf("failed to unlock signing key: %w", err)
			}
			for _, sub := range e.Subkeys {
				if sub.PrivateKey != nil && sub.PrivateKey.Encrypted {
					if err := sub.PrivateKey.Decrypt(k.passphrase); err != nil {
						return nil, fmt.Errorf("failed to unlock signing subkey: %w", err)
					}
				}
			}
		}
		return e, nil
	}
	return nil, errors.New("no private key in keyring")
}
