package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmordue/shelf/internal/book"
)

// Field selects which book field a search compares against.
type Field string

const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
	FieldYear   Field = "year"
)

// ParseField converts a string to a Field, rejecting unknown values.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldTitle, FieldAuthor, FieldYear:
		return Field(s), nil
	default:
		return "", &ValidationError{
			Field:  "field",
			Reason: fmt.Sprintf("%q is not one of %s, %s, %s", s, FieldTitle, FieldAuthor, FieldYear),
		}
	}
}

// matcher builds the comparison function for a query against this
// field. Title and author match case-insensitive substrings; year
// matches exact integer equality.
func (f Field) matcher(query string) (func(book.Book) bool, error) {
	switch f {
	case FieldTitle:
		q := strings.ToLower(query)
		return func(b book.Book) bool {
			return strings.Contains(strings.ToLower(b.Title), q)
		}, nil
	case FieldAuthor:
		q := strings.ToLower(query)
		return func(b book.Book) bool {
			return strings.Contains(strings.ToLower(b.Author), q)
		}, nil
	case FieldYear:
		year, err := strconv.Atoi(query)
		if err != nil {
			return nil, &ValidationError{
				Field:  "query",
				Reason: fmt.Sprintf("year search requires an integer, got %q", query),
			}
		}
		return func(b book.Book) bool {
			return b.Year == year
		}, nil
	default:
		return nil, &ValidationError{
			Field:  "field",
			Reason: fmt.Sprintf("%q is not one of %s, %s, %s", f, FieldTitle, FieldAuthor, FieldYear),
		}
	}
}
