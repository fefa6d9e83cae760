package service

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	cryptoDomain "github.com/allisson/journalite/internal/crypto/domain"
)

// applicationSalt is the fixed, non-secret application-level salt mixed into
// every key derivation. It provides domain separation so the derived key is
// never a bare hash of the user identifier alone, guarding against key reuse
// if the identifier ever leaks into another system.
const applicationSalt = "journalite/field-encryption/v1"

// HKDFKeyDeriver implements KeyDeriver using HKDF-SHA256.
//
// The derivation is keyed by a deployment-wide root secret (optionally
// unwrapped from a secrets keeper at startup) and bound to the user
// identifier through the HKDF info parameter:
//
//	key = HKDF-SHA256(secret=root, salt=applicationSalt, info="user:"+userID)
//
// The deriver is stateless and safe for concurrent use.
type HKDFKeyDeriver struct {
	root []byte
}

// NewHKDFKeyDeriver creates a new HKDFKeyDeriver with the given root secret.
// The root secret must be non-empty; it is copied so the caller may zero its
// own buffer.
func NewHKDFKeyDeriver(root []byte) (*HKDFKeyDeriver, error) {
	if len(root) == 0 {
		return nil, fmt.Errorf("root secret must not be empty")
	}
	owned := make([]byte, len(root))
	copy(owned, root)
	return &HKDFKeyDeriver{root: owned}, nil
}

// Derive derives the 32-byte field-encryption key for the given user identifier.
// An empty identifier is a programmer error and fails loudly rather than
// silently deriving a shared default key.
func (d *HKDFKeyDeriver) Derive(userID string) (cryptoDomain.DerivedKey, error) {
	if userID == "" {
		return nil, cryptoDomain.ErrMissingUserID
	}

	reader := hkdf.New(sha256.New, d.root, []byte(applicationSalt), []byte("user:"+userID))

	key := make([]byte, cryptoDomain.KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return cryptoDomain.DerivedKey(key), nil
}
