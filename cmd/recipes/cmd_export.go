package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/filedrecipes/internal/domain/interfaces"
	"github.com/ochairo/filedrecipes/internal/external-adapters/textfile"
	"github.com/ochairo/filedrecipes/internal/external-adapters/yaml"
)

func runExport(_ context.Context, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	common := addCommonFlags(fs)
	format := fs.String("format", "yaml", "Output format: yaml or text")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: recipes export [options]

Write all recipes to stdout, sorted by name.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  recipes export > recipes.yaml
  recipes export -format text
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	cfg, err := common.resolve()
	exitOnError(err)
	exitOnError(executeExport(cfg, newLogger(cfg, os.Stderr), os.Stdout, *format))
}

func executeExport(cfg *yaml.Config, logger interfaces.Logger, out io.Writer, format string) error {
	if format != "yaml" && format != "text" {
		return fmt.Errorf("unknown export format %q (want yaml or text)", format)
	}

	repo, err := openRepository(cfg, logger)
	if err != nil {
		return err
	}

	if format == "text" {
		return textfile.NewRecipeWriter().Write(out, repo.GetAll())
	}
	return yaml.NewRecipeEncoder().Encode(out, repo.GetAll())
}
