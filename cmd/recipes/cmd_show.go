package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ochairo/filedrecipes/internal/domain/entities"
	"github.com/ochairo/filedrecipes/internal/domain/interfaces"
	"github.com/ochairo/filedrecipes/internal/external-adapters/yaml"
)

func runShow(_ context.Context, args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	common := addCommonFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: recipes show [number] [options]

Show the recipe with the given number from "recipes list", or every recipe
when no number is given.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  recipes show 3
  recipes show -file Recipes.txt
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	cfg, err := common.resolve()
	exitOnError(err)
	exitOnError(executeShow(cfg, newLogger(cfg, os.Stderr), os.Stdout, fs.Arg(0)))
}

func executeShow(cfg *yaml.Config, logger interfaces.Logger, out io.Writer, position string) error {
	repo, err := openRepository(cfg, logger)
	if err != nil {
		return err
	}

	if position == "" {
		for i, r := range repo.GetAll() {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printRecipe(out, r)
		}
		return nil
	}

	index, err := parsePosition(position)
	if err != nil {
		return err
	}
	recipe, err := repo.GetAt(index)
	if err != nil {
		return err
	}

	printRecipe(out, recipe)
	return nil
}

func printRecipe(out io.Writer, r *entities.Recipe) {
	fmt.Fprintf(out, "%s\n%s\n", r.Name, strings.Repeat("=", len([]rune(r.Name))))

	fmt.Fprint(out, "\nIngredienser\n------------\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintln(out, ing.String())
	}

	fmt.Fprint(out, "\nGör så här\n----------\n")
	for _, instruction := range r.Instructions {
		fmt.Fprintln(out, instruction)
	}
}
