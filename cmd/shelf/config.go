package main

import (
	"fmt"

	"github.com/dmordue/shelf/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  shelf config                              # Show all config
  shelf config library-path                 # Get specific value
  shelf config library-path ~/books.json    # Set value

Keys:
  library-path  Path to the books JSON file`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	// No args: show all config
	if len(args) == 0 {
		if jsonOutput {
			outputJSON(map[string]string{"library_path": cfg.LibraryPath})
		} else {
			fmt.Printf("library-path: %s\n", cfg.LibraryPath)
		}
		return nil
	}

	key := args[0]
	if key != "library-path" {
		exitWithError(ExitError, "unknown configuration key: %s", key)
	}

	// One arg: get specific value
	if len(args) == 1 {
		if jsonOutput {
			outputJSON(map[string]string{"library_path": cfg.LibraryPath})
		} else {
			fmt.Println(cfg.LibraryPath)
		}
		return nil
	}

	// Two args: set value
	cfg.LibraryPath = config.ExpandTilde(args[1])
	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}

	if jsonOutput {
		outputJSON(map[string]string{"status": "updated", "library_path": cfg.LibraryPath})
	} else {
		fmt.Printf("library-path set to %s\n", cfg.LibraryPath)
	}

	return nil
}
