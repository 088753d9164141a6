package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmordue/shelf/internal/book"
	"github.com/dmordue/shelf/internal/store"
)

// ListTitleMaxLen is the truncation length for titles in list output.
const ListTitleMaxLen = 40

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	ID     string `json:"id,omitempty"`
}

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or
// JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if jsonOutput {
		outputJSON(ErrorResponse{Error: msg})
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	os.Exit(code)
}

// exitWithStoreError maps a store error to its exit code and exits.
func exitWithStoreError(err error) {
	switch {
	case store.IsValidation(err), store.IsNotFound(err):
		exitWithError(ExitDataError, "%v", err)
	case store.IsStorage(err):
		exitWithError(ExitStorageError, "%v", err)
	default:
		exitWithError(ExitError, "%v", err)
	}
}

// printBookList prints books one per line with truncated titles.
func printBookList(books []book.Book) {
	for _, b := range books {
		fmt.Printf("  %-22s %-*s %-22s %4d  %s\n",
			b.ID, ListTitleMaxLen, truncateString(b.Title, ListTitleMaxLen),
			truncateString(b.Author, 22), b.Year, b.Status)
	}
}

// printBookDetail prints one book field by field.
func printBookDetail(b book.Book) {
	fmt.Printf("ID:      %s\n", b.ID)
	fmt.Printf("Title:   %s\n", b.Title)
	fmt.Printf("Author:  %s\n", b.Author)
	fmt.Printf("Year:    %d\n", b.Year)
	fmt.Printf("Status:  %s\n", b.Status)
	fmt.Printf("Added:   %s\n", b.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated: %s\n", b.UpdatedAt.Format("2006-01-02 15:04:05"))
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
