// Package store handles the book collection and its JSON file persistence.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dmordue/shelf/internal/book"
)

// Store is the authoritative holder of the book collection for one
// process run. Lifecycle: Open (load) -> mutate (persists on each
// mutation) -> drop. Not safe for concurrent writers across processes;
// last write wins.
type Store struct {
	path  string
	books map[string]book.Book
}

// Open loads the collection from the JSON file at path. A missing
// file yields an empty collection; an unreadable or malformed file is
// a fatal StorageError.
func Open(path string) (*Store, error) {
	s := &Store{
		path:  path,
		books: make(map[string]book.Book),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}

	// An empty file is equivalent to an empty collection.
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	var books []book.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: fmt.Errorf("parsing file: %w", err)}
	}

	for i, b := range books {
		if err := b.CheckRecord(); err != nil {
			return nil, &StorageError{Op: "load", Path: path, Err: fmt.Errorf("record %d: %w", i+1, err)}
		}
		if _, ok := s.books[b.ID]; ok {
			return nil, &StorageError{Op: "load", Path: path, Err: fmt.Errorf("record %d: duplicate ID %q", i+1, b.ID)}
		}
		s.books[b.ID] = b
	}

	return s, nil
}

// Path returns the data file path.
func (s *Store) Path() string { return s.path }

// Count returns the number of books in the collection.
func (s *Store) Count() int { return len(s.books) }

// Add validates the input, inserts a new book with a unique generated
// ID and status available, and persists the collection.
func (s *Store) Add(title, author string, year int) (book.Book, error) {
	b, err := book.New(title, author, year)
	if err != nil {
		return book.Book{}, &ValidationError{Field: "book", Reason: err.Error()}
	}

	// Two Adds within the same microsecond would collide; regenerate
	// until the ID is unique within the collection.
	for {
		if _, ok := s.books[b.ID]; !ok {
			break
		}
		b.ID = book.NewID(time.Now().UTC())
	}

	s.books[b.ID] = b
	if err := s.save(); err != nil {
		return book.Book{}, err
	}
	return b, nil
}

// Get returns the book with the given ID.
func (s *Store) Get(id string) (book.Book, error) {
	b, ok := s.books[id]
	if !ok {
		return book.Book{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return b, nil
}

// List returns all books sorted by ID ascending.
func (s *Store) List() []book.Book {
	books := make([]book.Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books
}

// Search returns the books matching query on the given field, in ID
// order. An empty result is not an error.
func (s *Store) Search(field Field, query string) ([]book.Book, error) {
	match, err := field.matcher(query)
	if err != nil {
		return nil, err
	}

	books := make([]book.Book, 0)
	for _, b := range s.books {
		if match(b) {
			books = append(books, b)
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

// SetStatus changes the status of the book with the given ID and
// persists the collection.
func (s *Store) SetStatus(id string, status book.Status) error {
	if !status.Valid() {
		return &ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("%q is not one of %s, %s", status, book.StatusAvailable, book.StatusBorrowed),
		}
	}

	b, ok := s.books[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	s.books[id] = b
	return s.save()
}

// Delete removes the book with the given ID permanently and persists
// the collection.
func (s *Store) Delete(id string) error {
	if _, ok := s.books[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.books, id)
	return s.save()
}

// save writes the whole collection to the data file, replacing its
// previous contents. Uses temp file + rename for atomic operation.
func (s *Store) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: fmt.Errorf("creating directory: %w", err)}
	}

	data, err := json.MarshalIndent(s.List(), "", "  ")
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: fmt.Errorf("encoding collection: %w", err)}
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: fmt.Errorf("creating temp file: %w", err)}
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(append(data, '\n')); err != nil {
		tmpFile.Close()
		return &StorageError{Op: "save", Path: s.path, Err: fmt.Errorf("writing collection: %w", err)}
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return &StorageError{Op: "save", Path: s.path, Err: fmt.Errorf("syncing temp file: %w", err)}
	}
	if err := tmpFile.Close(); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: fmt.Errorf("closing temp file: %w", err)}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: fmt.Errorf("renaming temp file: %w", err)}
	}

	success = true
	return nil
}
