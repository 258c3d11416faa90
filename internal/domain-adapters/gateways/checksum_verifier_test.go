package gateways

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Recipes.txt")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

// TestCalculateChecksum tests SHA256 checksum calculation
func TestCalculateChecksum(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantChecksum string
	}{
		{
			name:         "empty file",
			content:      "",
			wantChecksum: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:         "simple content",
			content:      "Hello, World!",
			wantChecksum: "dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checksum, err := NewChecksumVerifier().CalculateChecksum(writeFile(t, tt.content))
			if err != nil {
				t.Fatalf("CalculateChecksum() error = %v", err)
			}
			if checksum != tt.wantChecksum {
				t.Errorf("CalculateChecksum() = %v, want %v", checksum, tt.wantChecksum)
			}
		})
	}
}

// TestVerifyChecksum tests SHA256 checksum verification
func TestVerifyChecksum(t *testing.T) {
	path := writeFile(t, "Hello, World!")
	verifier := NewChecksumVerifier()

	t.Run("valid checksum", func(t *testing.T) {
		err := verifier.VerifyChecksum(path, "dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f")
		if err != nil {
			t.Errorf("VerifyChecksum() error = %v", err)
		}
	})

	t.Run("upper case checksum", func(t *testing.T) {
		err := verifier.VerifyChecksum(path, strings.ToUpper("dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f"))
		if err != nil {
			t.Errorf("VerifyChecksum() error = %v", err)
		}
	})

	t.Run("invalid checksum", func(t *testing.T) {
		err := verifier.VerifyChecksum(path, strings.Repeat("0", 64))
		if err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
			t.Errorf("VerifyChecksum() error = %v, want checksum mismatch", err)
		}
	})

	t.Run("non-existent file", func(t *testing.T) {
		if err := verifier.VerifyChecksum("/nonexistent/file.txt", "abc"); err == nil {
			t.Error("VerifyChecksum() with non-existent file should return error")
		}
	})
}
