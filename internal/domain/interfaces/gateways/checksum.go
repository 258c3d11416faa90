package gateways

// ChecksumVerifier fingerprints the recipe file so a copy can be checked against a known digest
type ChecksumVerifier interface {
	// CalculateChecksum returns the hex SHA256 digest of filePath
	CalculateChecksum(filePath string) (string, error)

	// VerifyChecksum fails when the digest of filePath differs from expectedSum
	VerifyChecksum(filePath, expectedSum string) error
}
