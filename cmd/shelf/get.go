package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a single book by ID",
	Long: `Get a single book by its ID.

Example:
  shelf get book_1714238400.123456`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	s := mustOpenStore()

	b, err := s.Get(args[0])
	if err != nil {
		exitWithStoreError(err)
	}

	if jsonOutput {
		outputJSON(b)
	} else {
		printBookDetail(b)
	}

	return nil
}
