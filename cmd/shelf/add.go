package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <title> <author> <year>",
	Short: "Add a book to the library",
	Long: `Add a book to the library.

The book gets a generated ID and starts with status "available".

Example:
  shelf add "Clean Code" "Robert C. Martin" 2008`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	title, author := args[0], args[1]
	year, err := strconv.Atoi(args[2])
	if err != nil {
		exitWithError(ExitDataError, "invalid year: %q is not an integer", args[2])
	}

	s := mustOpenStore()

	b, err := s.Add(title, author, year)
	if err != nil {
		exitWithStoreError(err)
	}

	if jsonOutput {
		outputJSON(b)
	} else {
		fmt.Printf("Added %q by %s (%d)\n", b.Title, b.Author, b.Year)
		fmt.Printf("ID: %s\n", b.ID)
	}

	return nil
}
