package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ochairo/filedrecipes/internal/domain/interfaces"
	"github.com/ochairo/filedrecipes/internal/external-adapters/fswatch"
	"github.com/ochairo/filedrecipes/internal/external-adapters/yaml"
)

func runWatch(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	common := addCommonFlags(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: recipes watch [options]

List the recipes, then reload and list them again every time the recipe file
changes. Stop with Ctrl-C.

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
	exitOnError(executeWatch(ctx, cfg, newLogger(cfg, os.Stderr), os.Stdout))
}

func executeWatch(ctx context.Context, cfg *yaml.Config, logger interfaces.Logger, out io.Writer) error {
	repo, err := openRepository(cfg, logger)
	if err != nil {
		return err
	}

	watcher, err := fswatch.NewWatcher(repo.Path(), cfg.Debounce, logger)
	if err != nil {
		return err
	}
	//nolint:errcheck // Defer close
	defer watcher.Close()

	printList(out, repo.GetAll())

	logger.Info("watching recipe file", interfaces.F("path", repo.Path()))

	return watcher.Run(ctx, func() {
		// A bad edit keeps the last good collection on screen
		if cfg.Signature.VerifyOnLoad {
			if err := verifySignature(repo.Path(), cfg.Signature.PublicKey, cfg.SignaturePath()); err != nil {
				logger.Error("reload skipped", interfaces.F("error", err))
				return
			}
		}
		if err := repo.Load(); err != nil {
			logger.Error("reload failed", interfaces.F("error", err))
			return
		}
		fmt.Fprintln(out)
		printList(out, repo.GetAll())
	})
}
