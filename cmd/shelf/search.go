package main

import (
	"fmt"

	"github.com/dmordue/shelf/internal/store"
	"github.com/spf13/cobra"
)

var searchField string

func init() {
	searchCmd.Flags().StringVar(&searchField, "field", string(store.FieldTitle), "Field to search in (title, author, year)")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search books by field",
	Long: `Search books by a specific field.

Title and author searches match case-insensitive substrings; year
searches match the exact integer.

Examples:
  shelf search "clean"
  shelf search --field author "martin"
  shelf search --field year 2008`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	field, err := store.ParseField(searchField)
	if err != nil {
		exitWithStoreError(err)
	}

	s := mustOpenStore()

	books, err := s.Search(field, args[0])
	if err != nil {
		exitWithStoreError(err)
	}

	if jsonOutput {
		outputJSON(books)
	} else {
		if len(books) == 0 {
			fmt.Println("No books found matching the search criteria")
		} else {
			fmt.Printf("Found %d matching books:\n\n", len(books))
			printBookList(books)
		}
	}

	return nil
}
