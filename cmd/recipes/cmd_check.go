package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/filedrecipes/internal/domain-adapters/gateways"
	"github.com/ochairo/filedrecipes/internal/domain/interfaces"
	"github.com/ochairo/filedrecipes/internal/external-adapters/yaml"
)

func runCheck(_ context.Context, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	common := addCommonFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: recipes check [options]

Read the whole recipe file and report its contents. A malformed line is
reported with its line number.

Exit Codes:
  0  File is valid
  1  File is missing, unreadable or malformed

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	cfg, err := common.resolve()
	exitOnError(err)
	exitOnError(executeCheck(cfg, newLogger(cfg, os.Stderr), os.Stdout))
}

func executeCheck(cfg *yaml.Config, logger interfaces.Logger, out io.Writer) error {
	repo, err := openRepository(cfg, logger)
	if err != nil {
		return err
	}

	checksum, err := gateways.NewChecksumVerifier().CalculateChecksum(repo.Path())
	if err != nil {
		return err
	}

	recipes := repo.GetAll()
	var ingredients, instructions int
	for _, r := range recipes {
		ingredients += len(r.Ingredients)
		instructions += len(r.Instructions)
	}

	fmt.Fprintf(out, "✅ %s is valid\n", repo.Path())
	fmt.Fprintf(out, "  Recipes:      %d\n", len(recipes))
	fmt.Fprintf(out, "  Ingredients:  %d\n", ingredients)
	fmt.Fprintf(out, "  Instructions: %d\n", instructions)
	fmt.Fprintf(out, "  SHA256:       %s\n", checksum)
	return nil
}
