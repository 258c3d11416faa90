package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/filedrecipes/internal/domain/entities"
	"github.com/ochairo/filedrecipes/internal/domain/interfaces"
	"github.com/ochairo/filedrecipes/internal/external-adapters/yaml"
)

func runList(_ context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	common := addCommonFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: recipes list [options]

List the recipes in the recipe file, sorted by name.

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
	exitOnError(executeList(cfg, newLogger(cfg, os.Stderr), os.Stdout))
}

func executeList(cfg *yaml.Config, logger interfaces.Logger, out io.Writer) error {
	repo, err := openRepository(cfg, logger)
	if err != nil {
		return err
	}

	printList(out, repo.GetAll())
	return nil
}

func printList(out io.Writer, recipes []*entities.Recipe) {
	fmt.Fprintf(out, "Recipes (%d total):\n\n", len(recipes))
	for i, r := range recipes {
		fmt.Fprintf(out, "  %3d. %s\n", i+1, r.Name)
	}
}
