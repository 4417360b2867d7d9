package gateways

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

func writePrivateKey(t *testing.T, dir string, passphrase []byte) string {
	t.Helper()
	entity, err := openpgp.NewEntity("gateway test", "", "gateway@example.com", &packet.Config{Algorithm: packet.PubKeyAlgoEdDSA})
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	if passphrase != nil {
		if err := entity.PrivateKey.Encrypt(passphrase); err != nil {
			t.Fatal(err)
		}
		for _, sub := range entity.Subkeys {
			if err := sub.PrivateKey.Encrypt(passphrase); err != nil {
				t.Fatal(err)
			}
		}
	}

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PrivateKeyType, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := entity.SerializePrivateWithoutSigning(w, nil); err != nil {
		t.Fatalf("Failed to serialize key: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "key.asc")
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSignatureGateway_SignAndVerify(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "doc.spdx")
	if err := os.WriteFile(docPath, []byte("SPDXVersion: SPDX-2.1\n"), 0600); err != nil {
		t.Fatal(err)
	}
	sigPath := docPath + ".asc"

	g := NewSignatureGateway("")
	if err := g.ImportKeys(ctx, writePrivateKey(t, tmpDir, nil)); err != nil {
		t.Fatalf("ImportKeys() error = %v", err)
	}
	if g.KeyringSize() != 1 {
		t.Errorf("KeyringSize() = %d, want 1", g.KeyringSize())
	}
	if err := g.Sign(ctx, docPath, sigPath); err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if err := g.Verify(ctx, docPath, sigPath); err != nil {
		t.Errorf("Verify() error = %v", err)
	}

	if err := os.WriteFile(docPath, []byte("SPDXVersion: SPDX-2.2\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := g.Verify(ctx, docPath, sigPath); !errors.Is(err, entities.ErrSignature) {
		t.Errorf("Verify() tampered error = %v, want ErrSignature", err)
	}
}

func TestSignatureGateway_Passphrase(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	keyPath := writePrivateKey(t, tmpDir, []byte("secret"))
	docPath := filepath.Join(tmpDir, "doc.spdx")
	if err := os.WriteFile(docPath, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	locked := NewSignatureGateway("")
	if err := locked.ImportKeys(ctx, keyPath); err != nil {
		t.Fatal(err)
	}
	if err := locked.Sign(ctx, docPath, docPath+".asc"); err == nil || !strings.Contains(err.Error(), "passphrase") {
		t.Errorf("Sign() error = %v, want passphrase error", err)
	}

	unlocked := NewSignatureGateway("secret")
	if err := unlocked.ImportKeys(ctx, keyPath); err != nil {
		t.Fatal(err)
	}
	if err := unlocked.Sign(ctx, docPath, docPath+".asc"); err != nil {
		t.Errorf("Sign() with passphrase error = %v", err)
	}
}

func TestSignatureGateway_ImportKeysMissing(t *testing.T) {
	err := NewSignatureGateway("").ImportKeys(context.Background(), "/nonexistent/keys.asc")
	if err == nil || !strings.Contains(err.Error(), "failed to import keys") {
		t.Errorf("ImportKeys() error = %v", err)
	}
}
