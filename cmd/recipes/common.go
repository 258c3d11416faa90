package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ochairo/filedrecipes/internal/domain-adapters/gateways"
	"github.com/ochairo/filedrecipes/internal/domain/interfaces"
	"github.com/ochairo/filedrecipes/internal/external-adapters/textfile"
	"github.com/ochairo/filedrecipes/internal/external-adapters/yaml"
)

// commonFlags are accepted by every subcommand
type commonFlags struct {
	configPath *string
	file       *string
	logLevel   *string
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: fs.String("config", yaml.DefaultConfigPath, "Path to YAML config file"),
		file:       fs.String("file", "", "Recipe file (overrides config)"),
		logLevel:   fs.String("log-level", "", "Log level: debug, info, warn, error (overrides config)"),
	}
}

// resolve reads the config file and applies flag overrides
func (c commonFlags) resolve() (*yaml.Config, error) {
	cfg, err := yaml.NewConfigParser().ParseFile(*c.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if *c.file != "" {
		cfg.RecipesFile = *c.file
	}
	if *c.logLevel != "" {
		level, err := interfaces.ParseLevel(*c.logLevel)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = level
	}
	cfg.Signature.SignatureFile = cfg.SignaturePath()

	return cfg, nil
}

func newLogger(cfg *yaml.Config, out io.Writer) interfaces.Logger {
	return interfaces.NewWriterLogger(out, cfg.LogLevel)
}

// openRepository verifies the file when configured to, then loads it
func openRepository(cfg *yaml.Config, logger interfaces.Logger) (*textfile.RecipeRepository, error) {
	if cfg.Signature.VerifyOnLoad {
		if err := verifySignature(cfg.RecipesFile, cfg.Signature.PublicKey, cfg.SignaturePath()); err != nil {
			return nil, err
		}
		logger.Debug("recipe file signature verified", interfaces.F("path", cfg.RecipesFile))
	}

	repo := textfile.NewRecipeRepository(cfg.RecipesFile, logger)
	repo.Subscribe(func() {
		logger.Info("recipes changed", interfaces.F("count", len(repo.GetAll())), interfaces.F("modified", repo.IsModified()))
	})

	if err := repo.Load(); err != nil {
		return nil, err
	}
	return repo, nil
}

func verifySignature(filePath, keyPath, sigPath string) error {
	verifier := gateways.NewSignatureVerifier()
	if err := verifier.ImportPublicKey(keyPath); err != nil {
		return err
	}
	return verifier.VerifyFile(filePath, sigPath)
}

// parsePosition converts a 1-based position from the command line into an index
func parsePosition(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid recipe number %q", s)
	}
	return n - 1, nil
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
