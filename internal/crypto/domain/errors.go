package domain

import (
	"github.com/allisson/journalite/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures. All errors are mapped to
// appropriate HTTP status codes by the error handling layer.
var (
	// ErrMissingUserID indicates a key derivation was attempted without a user
	// identifier. This is a programmer error: deriving a key from an empty
	// identifier would silently produce the same weak key for every caller,
	// so the operation fails loudly instead.
	ErrMissingUserID = errors.Wrap(errors.ErrInvalidInput, "missing user identifier")

	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305)
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the cryptographic key size is invalid.
	//
	// Derived keys must be exactly 32 bytes (256 bits) for both AES-256-GCM
	// and ChaCha20-Poly1305.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error can occur due to:
	//   - Wrong decryption key used (entry encrypted for a different user)
	//   - Ciphertext has been tampered with (authentication failure)
	//   - Corrupted or structurally invalid encrypted data
	//
	// For security reasons, the specific cause is not disclosed to prevent
	// information leakage that could aid attackers.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrKeyRootUnavailable indicates the wrapped key-derivation root secret
	// could not be unwrapped through the configured secrets keeper.
	ErrKeyRootUnavailable = errors.Wrap(errors.ErrUnavailable, "key root unavailable")
)
