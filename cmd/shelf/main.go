// Package main provides the shelf CLI entry point.
package main

import (
	"os"

	"github.com/dmordue/shelf/internal/config"
	"github.com/dmordue/shelf/internal/store"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// jsonOutput controls whether to emit JSON instead of human-readable text
var jsonOutput bool

// libraryFile overrides the data file path when set
var libraryFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Track a personal library of books",
	Long: `shelf is a local CLI for tracking a small library of books.

Books are stored in a single JSON file (default data/books.json,
configurable via --file, SHELF_LIBRARY, or the global config). Each
command loads the file, performs one operation, and writes the file
back on mutation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of human-readable output")
	rootCmd.PersistentFlags().StringVar(&libraryFile, "file", "", "Path to the books JSON file")
	rootCmd.Version = Version
}

// mustOpenStore resolves the data file path and loads the store,
// exiting on configuration or storage errors.
func mustOpenStore() *store.Store {
	path, err := config.ResolveLibraryPath(libraryFile)
	if err != nil {
		exitWithError(ExitConfigError, "resolving library path: %v", err)
	}

	s, err := store.Open(path)
	if err != nil {
		exitWithError(ExitStorageError, "%v", err)
	}
	return s
}
