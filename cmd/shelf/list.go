package main

import (
	"fmt"

	"github.com/dmordue/shelf/internal/book"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books",
	Long: `List all books in the library, sorted by ID.

Example:
  shelf list`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s := mustOpenStore()

	books := s.List()

	if jsonOutput {
		if books == nil {
			books = []book.Book{}
		}
		outputJSON(books)
	} else {
		if len(books) == 0 {
			fmt.Println("No books in the library")
		} else {
			fmt.Printf("%d books in the library:\n\n", len(books))
			printBookList(books)
		}
	}

	return nil
}
