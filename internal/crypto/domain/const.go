package domain

// Algorithm represents the cryptographic algorithm used for field encryption.
//
// Both supported algorithms provide Authenticated Encryption with Associated Data
// (AEAD), ensuring both confidentiality and authenticity of encrypted journal
// fields. AEAD prevents unauthorized reading as well as tampering.
//
// Algorithm selection guidelines:
//   - Use AESGCM on modern CPUs with AES-NI hardware acceleration
//   - Use ChaCha20 on mobile devices or systems without AES-NI
//   - Both provide equivalent 256-bit security when used correctly
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// Uses a 256-bit key, a 12-byte random nonce per encryption, and a 16-byte
	// authentication tag. Hardware-accelerated on most modern processors.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// Uses a 256-bit key, a 12-byte random nonce per encryption, and a 16-byte
	// authentication tag. Constant-time software implementation; the better
	// choice on platforms without AES hardware acceleration.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// KeySize is the required byte length (256 bits) of every derived
// field-encryption key.
const KeySize = 32

// DecryptionFailedSentinel is the well-known placeholder returned in place of
// a field value that could not be decrypted. Returning a sentinel instead of
// failing keeps one corrupted record from blocking a whole batch.
const DecryptionFailedSentinel = "[decryption failed]"

// DerivedKey is a per-user symmetric key derived deterministically from the
// user identifier. It exists only on the call stack of one operation; it is
// never logged or persisted.
type DerivedKey []byte

// Valid reports whether the key has the required size.
func (k DerivedKey) Valid() bool {
	return len(k) == KeySize
}
