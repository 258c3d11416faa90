package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/filedrecipes/internal/domain-adapters/gateways"
	"github.com/ochairo/filedrecipes/internal/external-adapters/yaml"
)

func runVerify(_ context.Context, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	common := addCommonFlags(fs)
	var (
		keyPath = fs.String("key", "", "Public key file (overrides config signature.public_key)")
		sigPath = fs.String("sig", "", "Detached signature file (overrides config signature.signature_file)")
		sha256  = fs.String("sha256", "", "Expected SHA256 checksum of the recipe file")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: recipes verify [options]

Verify the recipe file against a detached GPG signature, a SHA256 checksum,
or both.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  recipes verify -key pub.asc
  recipes verify -key pub.asc -sig Recipes.txt.sig
  recipes verify -sha256 e3b0c442...
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	cfg, err := common.resolve()
	exitOnError(err)
	if *keyPath != "" {
		cfg.Signature.PublicKey = *keyPath
	}
	if *sigPath != "" {
		cfg.Signature.SignatureFile = *sigPath
	}

	exitOnError(executeVerify(cfg, os.Stdout, *sha256))
}

func executeVerify(cfg *yaml.Config, out io.Writer, expectedSum string) error {
	if cfg.Signature.PublicKey == "" && expectedSum == "" {
		return fmt.Errorf("nothing to verify: give -key (or signature.public_key in config) or -sha256")
	}

	if cfg.Signature.PublicKey != "" {
		if err := verifySignature(cfg.RecipesFile, cfg.Signature.PublicKey, cfg.SignaturePath()); err != nil {
			return err
		}
		fmt.Fprintf(out, "🔐 Signature OK: %s\n", cfg.SignaturePath())
	}

	if expectedSum != "" {
		if err := gateways.NewChecksumVerifier().VerifyChecksum(cfg.RecipesFile, expectedSum); err != nil {
			return err
		}
		fmt.Fprintf(out, "✅ Checksum OK: %s\n", cfg.RecipesFile)
	}

	return nil
}
