// Package gateways defines interfaces for external system integrations.
package gateways

// SignatureVerifier checks that the recipe file was signed by a trusted key
type SignatureVerifier interface {
	// ImportPublicKey adds the keys in keyPath to the trusted keyring
	ImportPublicKey(keyPath string) error

	// VerifyFile checks the detached signature in sigPath over filePath
	VerifyFile(filePath, sigPath string) error
}
