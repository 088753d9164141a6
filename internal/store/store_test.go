package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmordue/shelf/internal/book"
)

// testStore opens a store backed by a file in a temp directory.
func testStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "books.json")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return s
}

func TestOpen_MissingFile(t *testing.T) {
	s := testStore(t)
	if s.Count() != 0 {
		t.Errorf("Count() = %d, want 0", s.Count())
	}
}

func TestOpen_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Count() != 0 {
		t.Errorf("Count() = %d, want 0", s.Count())
	}
}

func TestOpen_CorruptJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("Open() expected error for corrupt file")
	}
	if !IsStorage(err) {
		t.Errorf("Open() error = %v, want StorageError", err)
	}
}

func TestOpen_WrongShape(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"object not array", `{"id":"book_1.000001"}`},
		{"bad status", `[{"id":"book_1.000001","title":"T","author":"A","year":2008,"status":"lost"}]`},
		{"missing title", `[{"id":"book_1.000001","author":"A","year":2008,"status":"available"}]`},
		{"duplicate ids", `[{"id":"book_1.000001","title":"T","author":"A","year":2008,"status":"available"},
			{"id":"book_1.000001","title":"U","author":"B","year":2010,"status":"borrowed"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "books.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("writing file: %v", err)
			}

			_, err := Open(path)
			if !IsStorage(err) {
				t.Errorf("Open() error = %v, want StorageError", err)
			}
		})
	}
}

func TestAdd_CreatesFileAndDirectory(t *testing.T) {
	s := testStore(t)

	b, err := s.Add("Clean Code", "Robert C. Martin", 2008)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if b.Status != book.StatusAvailable {
		t.Errorf("Status = %q, want %q", b.Status, book.StatusAvailable)
	}

	// File must exist and hold a JSON array of one record.
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("reading data file: %v", err)
	}
	var books []book.Book
	if err := json.Unmarshal(data, &books); err != nil {
		t.Fatalf("data file is not a JSON array: %v", err)
	}
	if len(books) != 1 || books[0].ID != b.ID {
		t.Errorf("data file = %+v, want one record with ID %s", books, b.ID)
	}
}

func TestAdd_ValidationFailureLeavesCollectionUnchanged(t *testing.T) {
	s := testStore(t)

	if _, err := s.Add("Clean Code", "Robert C. Martin", 2008); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	_, err := s.Add("T", "A", 50)
	if !IsValidation(err) {
		t.Fatalf("Add() error = %v, want ValidationError", err)
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1 after failed Add", s.Count())
	}

	_, err = s.Add("", "A", 2008)
	if !IsValidation(err) {
		t.Fatalf("Add() error = %v, want ValidationError", err)
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1 after failed Add", s.Count())
	}
}

func TestAdd_UniqueIDs(t *testing.T) {
	s := testStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		b, err := s.Add("Title", "Author", 2008)
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if seen[b.ID] {
			t.Fatalf("duplicate ID generated: %s", b.ID)
		}
		seen[b.ID] = true
	}
}

func TestRoundTrip(t *testing.T) {
	s := testStore(t)

	first, err := s.Add("Clean Code", "Robert C. Martin", 2008)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	second, err := s.Add("The Go Programming Language", "Alan Donovan", 2015)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := s.SetStatus(second.ID, book.StatusBorrowed); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	reloaded, err := Open(s.Path())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	want := map[string]book.Book{first.ID: first}
	second.Status = book.StatusBorrowed
	want[second.ID] = second

	got := reloaded.List()
	if len(got) != len(want) {
		t.Fatalf("List() returned %d books, want %d", len(got), len(want))
	}
	for _, g := range got {
		w, ok := want[g.ID]
		if !ok {
			t.Errorf("unexpected book %s after reload", g.ID)
			continue
		}
		if g.Title != w.Title || g.Author != w.Author || g.Year != w.Year || g.Status != w.Status {
			t.Errorf("book %s = %+v, want %+v", g.ID, g, w)
		}
		if !g.CreatedAt.Equal(w.CreatedAt) {
			t.Errorf("book %s CreatedAt = %v, want %v", g.ID, g.CreatedAt, w.CreatedAt)
		}
	}
}

func TestList_SortedByID(t *testing.T) {
	s := testStore(t)

	for i := 0; i < 10; i++ {
		if _, err := s.Add("Title", "Author", 2008); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	books := s.List()
	for i := 1; i < len(books); i++ {
		if books[i-1].ID >= books[i].ID {
			t.Fatalf("List() not sorted: %q before %q", books[i-1].ID, books[i].ID)
		}
	}
}

func TestSearch(t *testing.T) {
	s := testStore(t)

	cc, err := s.Add("Clean Code", "Robert C. Martin", 2008)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := s.Add("The Pragmatic Programmer", "Andrew Hunt", 1999); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	tests := []struct {
		name    string
		field   Field
		query   string
		wantIDs []string
	}{
		{"title substring", FieldTitle, "clean", []string{cc.ID}},
		{"title case-insensitive", FieldTitle, "CLEAN", []string{cc.ID}},
		{"author substring any case", FieldAuthor, "martin", []string{cc.ID}},
		{"year exact", FieldYear, "2008", []string{cc.ID}},
		{"year no match", FieldYear, "2009", nil},
		{"title no match", FieldTitle, "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Search(tt.field, tt.query)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Search() returned %d books, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Search()[%d].ID = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestSearch_InvalidYearQuery(t *testing.T) {
	s := testStore(t)

	_, err := s.Search(FieldYear, "not-a-year")
	if !IsValidation(err) {
		t.Errorf("Search() error = %v, want ValidationError", err)
	}
}

func TestParseField(t *testing.T) {
	for _, valid := range []string{"title", "author", "year"} {
		if _, err := ParseField(valid); err != nil {
			t.Errorf("ParseField(%q) error = %v", valid, err)
		}
	}

	_, err := ParseField("isbn")
	if !IsValidation(err) {
		t.Errorf("ParseField(\"isbn\") error = %v, want ValidationError", err)
	}
}

func TestSetStatus(t *testing.T) {
	s := testStore(t)

	b, err := s.Add("Clean Code", "Robert C. Martin", 2008)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := s.SetStatus(b.ID, book.StatusBorrowed); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	got, err := s.Get(b.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != book.StatusBorrowed {
		t.Errorf("Status = %q, want %q", got.Status, book.StatusBorrowed)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Error("UpdatedAt should advance on status change")
	}
}

func TestSetStatus_Errors(t *testing.T) {
	s := testStore(t)

	b, err := s.Add("Clean Code", "Robert C. Martin", 2008)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := s.SetStatus("book_0.000000", book.StatusBorrowed); !IsNotFound(err) {
		t.Errorf("SetStatus(missing) error = %v, want ErrNotFound", err)
	}

	if err := s.SetStatus(b.ID, book.Status("lost")); !IsValidation(err) {
		t.Errorf("SetStatus(invalid) error = %v, want ValidationError", err)
	}

	got, _ := s.Get(b.ID)
	if got.Status != book.StatusAvailable {
		t.Errorf("Status = %q after failed updates, want %q", got.Status, book.StatusAvailable)
	}
}

func TestDelete(t *testing.T) {
	s := testStore(t)

	b, err := s.Add("Clean Code", "Robert C. Martin", 2008)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := s.Delete(b.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if s.Count() != 0 {
		t.Errorf("Count() = %d after delete, want 0", s.Count())
	}

	// Second delete of the same ID must fail and change nothing.
	if err := s.Delete(b.ID); !IsNotFound(err) {
		t.Errorf("Delete(deleted) error = %v, want ErrNotFound", err)
	}
}

func TestDelete_MissingNeverMutates(t *testing.T) {
	s := testStore(t)

	if _, err := s.Add("Clean Code", "Robert C. Martin", 2008); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := s.Delete("book_0.000000"); !IsNotFound(err) {
		t.Errorf("Delete(missing) error = %v, want ErrNotFound", err)
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}

// TestLibraryLifecycle walks the full add/search/status/delete flow.
func TestLibraryLifecycle(t *testing.T) {
	s := testStore(t)

	b, err := s.Add("Clean Code", "Robert C. Martin", 2008)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if b.Status != book.StatusAvailable {
		t.Fatalf("Status = %q, want %q", b.Status, book.StatusAvailable)
	}

	books := s.List()
	if len(books) != 1 || books[0].ID != b.ID {
		t.Fatalf("List() = %+v, want the added book", books)
	}

	matches, err := s.Search(FieldAuthor, "MARTIN")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(matches) != 1 || matches[0].ID != b.ID {
		t.Fatalf("Search(author, MARTIN) = %+v, want the added book", matches)
	}

	if err := s.SetStatus(b.ID, book.StatusBorrowed); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if got := s.List(); got[0].Status != book.StatusBorrowed {
		t.Fatalf("Status after update = %q, want %q", got[0].Status, book.StatusBorrowed)
	}

	if err := s.Delete(b.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(s.List()) != 0 {
		t.Fatal("List() not empty after delete")
	}
	if err := s.Delete(b.ID); !IsNotFound(err) {
		t.Fatalf("second Delete() error = %v, want ErrNotFound", err)
	}
}
