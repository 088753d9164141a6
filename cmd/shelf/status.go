package main

import (
	"fmt"

	"github.com/dmordue/shelf/internal/book"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status <id> <available|borrowed>",
	Short: "Update a book's availability status",
	Long: `Update a book's availability status.

Examples:
  shelf status book_1714238400.123456 borrowed
  shelf status book_1714238400.123456 available`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	id := args[0]
	status, err := book.ParseStatus(args[1])
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	s := mustOpenStore()

	if err := s.SetStatus(id, status); err != nil {
		exitWithStoreError(err)
	}

	if jsonOutput {
		outputJSON(StatusResponse{Status: string(status), ID: id})
	} else {
		fmt.Printf("Book %s status updated to %s\n", id, status)
	}

	return nil
}
