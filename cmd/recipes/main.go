package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "list":
		runList(ctx, os.Args[2:])
	case "show":
		runShow(ctx, os.Args[2:])
	case "delete":
		runDelete(ctx, os.Args[2:])
	case "check":
		runCheck(ctx, os.Args[2:])
	case "export":
		runExport(ctx, os.Args[2:])
	case "verify":
		runVerify(ctx, os.Args[2:])
	case "watch":
		runWatch(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`recipes - Manage a file of recipes

Usage:
  recipes <command> [options]

Commands:
  list      List recipe names
  show      Show one recipe, or all of them
  delete    Delete a recipe and save the file
  check     Validate the recipe file and print statistics
  export    Write the recipes as YAML or text
  verify    Verify the recipe file's signature or checksum
  watch     Reload and list the recipes whenever the file changes

Common options:
  -config     Path to YAML config (default recipes.yml)
  -file       Recipe file (overrides config)
  -log-level  debug|info|warn|error (overrides config)

Use "recipes <command> --help" for more information about a command.`)
}
