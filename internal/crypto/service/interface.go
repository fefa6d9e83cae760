// Package service provides cryptographic services for field-level encryption.
// Implements AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305), deterministic
// per-user key derivation, and the field cipher used by the entry codec.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/journalite/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyDeriver derives per-user field-encryption keys.
//
// Derivation is deterministic and side-effect free: the same user identifier
// always yields the same key for a given deployment root secret. No key
// material is cached beyond the call stack.
type KeyDeriver interface {
	// Derive derives the field-encryption key for the given user identifier.
	// Returns cryptoDomain.ErrMissingUserID for an empty identifier.
	Derive(userID string) (cryptoDomain.DerivedKey, error)
}

// FieldCipher encrypts and decrypts single scalar string fields.
//
// Both operations are stateless and pure beyond CPU cost. DecryptField never
// returns an error: cryptographic failure yields the well-known sentinel so a
// corrupted record cannot abort a caller's batch operation.
type FieldCipher interface {
	// EncryptField encrypts a plaintext field value. Empty input is returned
	// unchanged so absent fields never produce spurious ciphertext.
	EncryptField(plaintext string, key cryptoDomain.DerivedKey) (string, error)

	// DecryptField decrypts a ciphertext field value. On any cryptographic
	// failure it returns cryptoDomain.DecryptionFailedSentinel.
	DecryptField(ciphertext string, key cryptoDomain.DerivedKey) string
}

// KeyRootService unwraps the key-derivation root secret through a
// gocloud.dev secrets keeper.
type KeyRootService interface {
	// UnwrapRoot opens the keeper at keeperURI and decrypts the base64-encoded
	// wrapped root secret.
	UnwrapRoot(ctx context.Context, keeperURI, wrappedRoot string) ([]byte, error)

	// WrapRoot opens the keeper at keeperURI and encrypts the root secret,
	// returning it base64-encoded for storage in configuration.
	WrapRoot(ctx context.Context, keeperURI string, root []byte) (string, error)
}
