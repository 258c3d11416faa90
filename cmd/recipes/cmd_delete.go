package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/filedrecipes/internal/domain/interfaces"
	"github.com/ochairo/filedrecipes/internal/domain/interfaces/repositories"
	"github.com/ochairo/filedrecipes/internal/external-adapters/yaml"
)

func runDelete(_ context.Context, args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	common := addCommonFlags(fs)
	name := fs.String("name", "", "Delete the first recipe with this name instead of by number")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: recipes delete <number> [options]
       recipes delete -name <name> [options]

Delete a recipe and save the recipe file.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  recipes delete 2
  recipes delete -name "Apple Pie"
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if *name == "" && fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: recipe number or -name is required\n\n")
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := common.resolve()
	exitOnError(err)
	exitOnError(executeDelete(cfg, newLogger(cfg, os.Stderr), os.Stdout, fs.Arg(0), *name))
}

func executeDelete(cfg *yaml.Config, logger interfaces.Logger, out io.Writer, position, name string) error {
	repo, err := openRepository(cfg, logger)
	if err != nil {
		return err
	}

	deleted := name
	if name != "" {
		err = deleteByName(repo, name)
	} else {
		deleted, err = deleteAt(repo, position)
	}
	if err != nil {
		return err
	}

	if err := repo.Save(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Deleted %q, %d recipes left\n", deleted, len(repo.GetAll()))
	return nil
}

// deleteAt removes the recipe at a 1-based position and returns its name
func deleteAt(repo repositories.RecipeRepository, position string) (string, error) {
	index, err := parsePosition(position)
	if err != nil {
		return "", err
	}
	r, err := repo.GetAt(index)
	if err != nil {
		return "", err
	}
	return r.Name, repo.DeleteAt(index)
}

// deleteByName removes the first recipe named name through a caller-held copy
func deleteByName(repo repositories.RecipeRepository, name string) error {
	for _, r := range repo.GetAll() {
		if r.Name == name {
			return repo.Delete(r)
		}
	}
	return fmt.Errorf("%w: %s", repositories.ErrNotFound, name)
}
