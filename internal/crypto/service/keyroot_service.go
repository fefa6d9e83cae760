package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/journalite/internal/crypto/domain"

	// Register all secrets keeper drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// keyRootService implements KeyRootService using gocloud.dev/secrets.
//
// The key-derivation root secret is stored wrapped (encrypted) in
// configuration and unwrapped once at startup through a secrets keeper.
// Supported keeper URIs: gcpkms://, awskms://, azurekeyvault://,
// hashivault://, base64key:// (local development).
type keyRootService struct{}

// NewKeyRootService creates a new key root service instance.
func NewKeyRootService() KeyRootService {
	return &keyRootService{}
}

// UnwrapRoot opens the keeper at keeperURI and decrypts the base64-encoded
// wrapped root secret. The returned bytes are the caller's to zero.
func (k *keyRootService) UnwrapRoot(ctx context.Context, keeperURI, wrappedRoot string) ([]byte, error) {
	wrapped, err := base64.StdEncoding.DecodeString(wrappedRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid wrapped key root: %w", err)
	}

	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	if err != nil {
		return nil, cryptoDomain.ErrKeyRootUnavailable
	}
	defer func() { _ = keeper.Close() }()

	root, err := keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, cryptoDomain.ErrKeyRootUnavailable
	}

	return root, nil
}

// WrapRoot opens the keeper at keeperURI and encrypts the root secret.
// The result is base64-encoded for storage in configuration.
func (k *keyRootService) WrapRoot(ctx context.Context, keeperURI string, root []byte) (string, error) {
	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	if err != nil {
		return "", cryptoDomain.ErrKeyRootUnavailable
	}
	defer func() { _ = keeper.Close() }()

	wrapped, err := keeper.Encrypt(ctx, root)
	if err != nil {
		return "", cryptoDomain.ErrKeyRootUnavailable
	}

	return base64.StdEncoding.EncodeToString(wrapped), nil
}
