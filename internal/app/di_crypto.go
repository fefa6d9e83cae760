package app

import (
	"context"
	"fmt"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/journalite/internal/crypto/domain"
	cryptoService "github.com/allisson/journalite/internal/crypto/service"
	entriesService "github.com/allisson/journalite/internal/entries/service"
	customValidation "github.com/allisson/journalite/internal/validation"
)

// devKeyRoot is the static key-derivation root used when no keeper URI is
// configured. Only suitable for local development.
const devKeyRoot = "journalite-insecure-dev-key-root"

// KeyRootService returns the key root unwrapping service.
func (c *Container) KeyRootService() cryptoService.KeyRootService {
	c.keyRootServiceInit.Do(func() {
		c.keyRootService = cryptoService.NewKeyRootService()
	})
	return c.keyRootService
}

// AEADManager returns the AEAD cipher factory.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// KeyDeriver returns the per-user key deriver seeded with the unwrapped
// key-derivation root secret.
func (c *Container) KeyDeriver() (cryptoService.KeyDeriver, error) {
	var err error
	c.keyDeriverInit.Do(func() {
		c.keyDeriver, err = c.initKeyDeriver()
		if err != nil {
			c.initErrors["keyDeriver"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyDeriver"]; exists {
		return nil, storedErr
	}
	return c.keyDeriver, nil
}

// FieldCipher returns the field-level AEAD cipher.
func (c *Container) FieldCipher() (cryptoService.FieldCipher, error) {
	var err error
	c.fieldCipherInit.Do(func() {
		c.fieldCipher, err = c.initFieldCipher()
		if err != nil {
			c.initErrors["fieldCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldCipher"]; exists {
		return nil, storedErr
	}
	return c.fieldCipher, nil
}

// EntryCodec returns the entry field encryption codec.
func (c *Container) EntryCodec() (entriesService.EntryCodec, error) {
	var err error
	c.entryCodecInit.Do(func() {
		c.entryCodec, err = c.initEntryCodec()
		if err != nil {
			c.initErrors["entryCodec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["entryCodec"]; exists {
		return nil, storedErr
	}
	return c.entryCodec, nil
}

// initKeyDeriver unwraps the configured key root and seeds the HKDF deriver.
// Falls back to the static development root when no keeper URI is configured.
func (c *Container) initKeyDeriver() (cryptoService.KeyDeriver, error) {
	logger := c.Logger()

	var root []byte
	if c.config.KeyRootURI == "" {
		logger.Warn("no key root keeper configured, using static development key root")
		root = []byte(devKeyRoot)
	} else {
		if err := validation.Validate(c.config.WrappedKeyRoot, validation.Required, customValidation.Base64); err != nil {
			return nil, fmt.Errorf("invalid wrapped key root: %w", err)
		}
		unwrapped, err := c.KeyRootService().UnwrapRoot(
			context.Background(),
			c.config.KeyRootURI,
			c.config.WrappedKeyRoot,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to unwrap key root: %w", err)
		}
		root = unwrapped
	}

	keyDeriver, err := cryptoService.NewHKDFKeyDeriver(root)
	if err != nil {
		return nil, fmt.Errorf("failed to create key deriver: %w", err)
	}
	return keyDeriver, nil
}

// initFieldCipher creates the field cipher for the configured AEAD algorithm.
func (c *Container) initFieldCipher() (cryptoService.FieldCipher, error) {
	alg := cryptoDomain.Algorithm(c.config.EncryptionAlgorithm)
	switch alg {
	case cryptoDomain.AESGCM, cryptoDomain.ChaCha20:
	default:
		return nil, fmt.Errorf("unsupported encryption algorithm: %s", c.config.EncryptionAlgorithm)
	}

	return cryptoService.NewAEADFieldCipher(c.AEADManager(), alg), nil
}

// initEntryCodec creates the entry codec from the key deriver and field cipher.
func (c *Container) initEntryCodec() (entriesService.EntryCodec, error) {
	keyDeriver, err := c.KeyDeriver()
	if err != nil {
		return nil, fmt.Errorf("failed to get key deriver for entry codec: %w", err)
	}

	fieldCipher, err := c.FieldCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get field cipher for entry codec: %w", err)
	}

	return entriesService.NewEntryCodec(keyDeriver, fieldCipher), nil
}
