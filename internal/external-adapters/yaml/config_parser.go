// Package yaml provides YAML-based config parsing and recipe export.
package yaml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ochairo/filedrecipes/internal/domain/interfaces"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is read when no -config flag is given
const DefaultConfigPath = "recipes.yml"

const (
	defaultRecipesFile = "Recipes.txt"
	defaultDebounce    = 200 * time.Millisecond
	maxDebounceMS      = 60 * 1000
)

// Config is the CLI configuration
type Config struct {
	RecipesFile string
	LogLevel    interfaces.Level
	Signature   SignatureConfig
	Debounce    time.Duration
}

// SignatureConfig locates the key and detached signature for the recipe file
type SignatureConfig struct {
	PublicKey     string
	SignatureFile string
	VerifyOnLoad  bool
}

// yamlConfig represents the raw YAML structure
type yamlConfig struct {
	RecipesFile string        `yaml:"recipes_file"`
	LogLevel    string        `yaml:"log_level"`
	Signature   yamlSignature `yaml:"signature"`
	Watch       yamlWatch     `yaml:"watch"`
}

type yamlSignature struct {
	PublicKey     string `yaml:"public_key"`
	SignatureFile string `yaml:"signature_file"`
	VerifyOnLoad  bool   `yaml:"verify_on_load"`
}

type yamlWatch struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		RecipesFile: defaultRecipesFile,
		LogLevel:    interfaces.LevelInfo,
		Debounce:    defaultDebounce,
	}
}

// SignaturePath returns the detached signature file, defaulting to the
// recipe file path with an ".asc" suffix
func (c *Config) SignaturePath() string {
	if c.Signature.SignatureFile != "" {
		return c.Signature.SignatureFile
	}
	return c.RecipesFile + ".asc"
}

// ConfigParser parses YAML config files
type ConfigParser struct{}

// NewConfigParser creates a new YAML config parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// ParseFile parses the config file at filePath.
// A missing file yields DefaultConfig.
func (p *ConfigParser) ParseFile(filePath string) (*Config, error) {
	//nolint:gosec // G304: filePath is the user-selected config file
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Config
func (p *ConfigParser) Parse(data []byte) (*Config, error) {
	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg := DefaultConfig()
	if raw.RecipesFile != "" {
		cfg.RecipesFile = raw.RecipesFile
	}

	level, err := interfaces.ParseLevel(raw.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	cfg.LogLevel = level

	if raw.Watch.DebounceMS < 0 || raw.Watch.DebounceMS > maxDebounceMS {
		return nil, fmt.Errorf("watch.debounce_ms must be between 0 and %d", maxDebounceMS)
	}
	if raw.Watch.DebounceMS > 0 {
		cfg.Debounce = time.Duration(raw.Watch.DebounceMS) * time.Millisecond
	}

	cfg.Signature = SignatureConfig{
		PublicKey:     raw.Signature.PublicKey,
		SignatureFile: raw.Signature.SignatureFile,
		VerifyOnLoad:  raw.Signature.VerifyOnLoad,
	}
	if cfg.Signature.VerifyOnLoad && cfg.Signature.PublicKey == "" {
		return nil, fmt.Errorf("signature.verify_on_load requires signature.public_key")
	}
	return cfg, nil
}
