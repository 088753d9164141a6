package main

import (
	"testing"
	"time"

	"github.com/dmordue/shelf/internal/book"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a long title that needs truncation", 20, "this is a long ti..."},
	}

	for _, tt := range tests {
		if got := truncateString(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPrintBookList_DoesNotPanic(t *testing.T) {
	now := time.Now().UTC()
	books := []book.Book{
		{
			ID:        "book_1714233600.123456",
			Title:     "A title considerably longer than the column it has to fit into",
			Author:    "An author with a very long name indeed",
			Year:      2008,
			Status:    book.StatusAvailable,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	printBookList(books)
}
