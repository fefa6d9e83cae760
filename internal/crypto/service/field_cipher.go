package service

import (
	"encoding/base64"
	"fmt"

	cryptoDomain "github.com/allisson/journalite/internal/crypto/domain"
)

// nonceSize is the AEAD nonce length in bytes. Both supported algorithms
// (AES-256-GCM and ChaCha20-Poly1305) use 12-byte nonces.
const nonceSize = 12

// AEADFieldCipher implements FieldCipher on top of an AEADManager.
//
// Ciphertext wire format: base64(nonce || sealed), where sealed includes the
// 16-byte authentication tag. The format carries no algorithm marker; the
// algorithm is a deployment-level setting and changing it invalidates
// existing ciphertext, which surfaces as the decryption sentinel rather than
// an error.
//
// The cipher is stateless and safe for concurrent use.
type AEADFieldCipher struct {
	aeadManager AEADManager
	algorithm   cryptoDomain.Algorithm
}

// NewAEADFieldCipher creates a new AEADFieldCipher using the given manager
// and algorithm.
func NewAEADFieldCipher(aeadManager AEADManager, alg cryptoDomain.Algorithm) *AEADFieldCipher {
	return &AEADFieldCipher{
		aeadManager: aeadManager,
		algorithm:   alg,
	}
}

// EncryptField encrypts a single plaintext field value with the user's derived key.
//
// Empty input passes through unchanged: an absent title or content must not
// produce spurious ciphertext. All other inputs are sealed with a fresh
// random nonce.
func (f *AEADFieldCipher) EncryptField(plaintext string, key cryptoDomain.DerivedKey) (string, error) {
	if plaintext == "" {
		return plaintext, nil
	}

	aead, err := f.aeadManager.CreateCipher(key, f.algorithm)
	if err != nil {
		return "", fmt.Errorf("failed to create field cipher: %w", err)
	}

	ciphertext, nonce, err := aead.Encrypt([]byte(plaintext), nil)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt field: %w", err)
	}

	payload := make([]byte, 0, len(nonce)+len(ciphertext))
	payload = append(payload, nonce...)
	payload = append(payload, ciphertext...)

	return base64.StdEncoding.EncodeToString(payload), nil
}

// DecryptField decrypts a single ciphertext field value with the user's derived key.
//
// Any cryptographic failure (wrong key, corrupted payload, structurally
// invalid ciphertext) yields cryptoDomain.DecryptionFailedSentinel instead of
// an error, so one corrupted record never blocks the rest of a batch. The
// plaintext is never logged at failure sites.
func (f *AEADFieldCipher) DecryptField(ciphertext string, key cryptoDomain.DerivedKey) string {
	if ciphertext == "" {
		return ciphertext
	}

	payload, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil || len(payload) <= nonceSize {
		return cryptoDomain.DecryptionFailedSentinel
	}

	aead, err := f.aeadManager.CreateCipher(key, f.algorithm)
	if err != nil {
		return cryptoDomain.DecryptionFailedSentinel
	}

	plaintext, err := aead.Decrypt(payload[nonceSize:], payload[:nonceSize], nil)
	if err != nil {
		return cryptoDomain.DecryptionFailedSentinel
	}

	return string(plaintext)
}
