// Package gateways adapts external adapters to the domain gateway interfaces.
package gateways

import (
	"fmt"

	"github.com/ochairo/filedrecipes/internal/domain/interfaces/gateways"
	"github.com/ochairo/filedrecipes/internal/external-adapters/gpg"
)

var _ gateways.SignatureVerifier = (*signatureVerifier)(nil)

// signatureVerifier wraps the external GPG adapter to implement the domain gateway interface
type signatureVerifier struct {
	verifier *gpg.Verifier
}

// NewSignatureVerifier creates a new GPG-backed signature verifier gateway
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewSignatureVerifier() *signatureVerifier {
	return &signatureVerifier{
		verifier: gpg.NewVerifier(),
	}
}

// ImportPublicKey imports a GPG key from a local file
func (g *signatureVerifier) ImportPublicKey(keyPath string) error {
	if err := g.verifier.ImportKeyFromFile(keyPath); err != nil {
		return fmt.Errorf("failed to import GPG key from file: %w", err)
	}
	return nil
}

// VerifyFile verifies a detached GPG signature from a local file
func (g *signatureVerifier) VerifyFile(filePath, sigPath string) error {
	if err := g.verifier.VerifySignatureFromFile(filePath, sigPath); err != nil {
		return fmt.Errorf("GPG signature verification failed: %w", err)
	}
	return nil
}

// KeyCount returns the number of keys loaded
func (g *signatureVerifier) KeyCount() int {
	return g.verifier.GetKeyringSize()
}
