package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	cryptoService "github.com/allisson/journalite/internal/crypto/service"
)

// RunCreateKeyRoot generates a cryptographically secure 32-byte key-derivation
// root secret and wraps it with the secrets keeper at keeperURI. Per-user
// field-encryption keys are derived from this root, so it must never be stored
// in plaintext. The raw root is zeroed from memory after wrapping.
//
// For local development, use keeperURI="base64key://<32-byte-url-base64-key>".
// For production, use cloud keepers (gcpkms, awskms, azurekeyvault, hashivault).
//
// Output format:
//   - KEY_ROOT_URI="<keeper-uri>"
//   - WRAPPED_KEY_ROOT="<base64-encoded-wrapped-root>"
func RunCreateKeyRoot(
	ctx context.Context,
	keyRootService cryptoService.KeyRootService,
	w io.Writer,
	keeperURI string,
) error {
	if keeperURI == "" {
		return fmt.Errorf(
			"--keeper-uri is required\n\nFor local development, use:\n  --keeper-uri=\"base64key://<32-byte-url-base64-key>\"\n\nFor production, use cloud keepers:\n  --keeper-uri=\"gcpkms://projects/.../cryptoKeys/...\"\n  --keeper-uri=\"awskms:///alias/...\"\n  --keeper-uri=\"azurekeyvault://...\"\n  --keeper-uri=\"hashivault://...\"",
		)
	}

	// Generate a cryptographically secure 32-byte root secret
	root := make([]byte, 32)
	if _, err := rand.Read(root); err != nil {
		return fmt.Errorf("failed to generate key root: %w", err)
	}

	wrapped, err := keyRootService.WrapRoot(ctx, keeperURI, root)

	// Zero out the root from memory regardless of the wrap outcome
	for i := range root {
		root[i] = 0
	}

	if err != nil {
		return fmt.Errorf("failed to wrap key root: %w", err)
	}

	fmt.Fprintln(w, "# Key root configuration")
	fmt.Fprintln(w, "# Copy these environment variables to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "KEY_ROOT_URI=%q\n", keeperURI)
	fmt.Fprintf(w, "WRAPPED_KEY_ROOT=%q\n", wrapped)

	return nil
}
