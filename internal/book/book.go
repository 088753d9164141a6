// Package book defines the core domain type for the shelf library.
package book

import (
	"fmt"
	"strings"
	"time"
)

// Validation bounds for book fields.
const (
	MaxIDLength     = 50
	MaxTitleLength  = 200
	MaxAuthorLength = 100
	MinYear         = 1000
)

// Status is the availability state of a book.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBorrowed  Status = "borrowed"
)

// ParseStatus converts a string to a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable:
		return StatusAvailable, nil
	case StatusBorrowed:
		return StatusBorrowed, nil
	default:
		return "", fmt.Errorf("invalid status %q (valid: %s, %s)", s, StatusAvailable, StatusBorrowed)
	}
}

// Valid reports whether the status is one of the known values.
func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusBorrowed
}

// Book represents one tracked book.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Year      int       `json:"year"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a book with a freshly generated ID, status available,
// and creation timestamps. The input is validated first.
func New(title, author string, year int) (Book, error) {
	if err := Validate(title, author, year); err != nil {
		return Book{}, err
	}

	now := time.Now().UTC()
	return Book{
		ID:        NewID(now),
		Title:     title,
		Author:    author,
		Year:      year,
		Status:    StatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewID derives a book ID from a timestamp with microsecond precision.
// Micros are zero-padded so IDs generated within one run sort
// chronologically as strings.
func NewID(t time.Time) string {
	return fmt.Sprintf("book_%d.%06d", t.Unix(), t.Nanosecond()/1000)
}

// Validate checks the field constraints for a new book.
func Validate(title, author string, year int) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must be a non-empty string")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLength)
	}
	if strings.TrimSpace(author) == "" {
		return fmt.Errorf("author must be a non-empty string")
	}
	if len(author) > MaxAuthorLength {
		return fmt.Errorf("author must not exceed %d characters", MaxAuthorLength)
	}
	return ValidateYear(year)
}

// ValidateYear checks the publication year sanity bound.
func ValidateYear(year int) error {
	maxYear := time.Now().UTC().Year()
	if year < MinYear || year > maxYear {
		return fmt.Errorf("publication year must be between %d and %d", MinYear, maxYear)
	}
	return nil
}

// CheckRecord validates a book as loaded from storage.
// Unlike Validate it also covers the ID and status fields, which are
// store-generated for new books but untrusted on disk.
func (b Book) CheckRecord() error {
	if b.ID == "" {
		return fmt.Errorf("book ID must be a non-empty string")
	}
	if len(b.ID) > MaxIDLength {
		return fmt.Errorf("book ID must not exceed %d characters", MaxIDLength)
	}
	if !b.Status.Valid() {
		return fmt.Errorf("invalid status %q", b.Status)
	}
	return Validate(b.Title, b.Author, b.Year)
}
