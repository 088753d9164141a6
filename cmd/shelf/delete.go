package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a book permanently",
	Long: `Delete a book from the library permanently.

Example:
  shelf delete book_1714238400.123456`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]
	s := mustOpenStore()

	// Fetch first so the confirmation can name the title.
	b, err := s.Get(id)
	if err != nil {
		exitWithStoreError(err)
	}

	if err := s.Delete(id); err != nil {
		exitWithStoreError(err)
	}

	if jsonOutput {
		outputJSON(StatusResponse{Status: "deleted", ID: id})
	} else {
		fmt.Printf("Deleted %q (%s)\n", b.Title, id)
	}

	return nil
}
