package library

import (
	"errors"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *SeedStore {
	t.Helper()
	dir := t.TempDir()
	s, err := OpenSeedStore(filepath.Join(dir, "seed.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeedStoreKeepsInsertionOrder(t *testing.T) {
	s := tempStore(t)
	for _, b := range []Book{{ID: 3, Title: "C", Author: "c"}, {ID: 1, Title: "A", Author: "a"}, {ID: 2, Title: "B", Author: "b"}} {
		if err := s.PutBook(b.ID, b.Title, b.Author); err != nil {
			t.Fatalf("put %d: %v", b.ID, err)
		}
	}

	books, err := s.Books()
	if err != nil {
		t.Fatalf("books: %v", err)
	}
	want := []int64{3, 1, 2}
	if len(books) != len(want) {
		t.Fatalf("want %d books, got %d", len(want), len(books))
	}
	for i, b := range books {
		if b.ID != want[i] {
			t.Fatalf("position %d: want id %d, got %d", i, want[i], b.ID)
		}
		if !b.Available {
			t.Fatalf("seed book %d should be available", b.ID)
		}
	}
}

func TestSeedStorePutUpdatesInPlace(t *testing.T) {
	s := tempStore(t)
	s.PutBook(1, "Old", "Author")
	s.PutBook(2, "Other", "Author")
	if err := s.PutBook(1, "New", "Author"); err != nil {
		t.Fatalf("update: %v", err)
	}

	books, _ := s.Books()
	if len(books) != 2 {
		t.Fatalf("want 2 books, got %d", len(books))
	}
	if books[0].ID != 1 || books[0].Title != "New" {
		t.Fatalf("want updated book 1 first, got %+v", books[0])
	}
}

func TestSeedStoreRejectsEmptyFields(t *testing.T) {
	s := tempStore(t)
	err := s.PutBook(1, "", "Author")
	if !errors.Is(err, ErrInvalidSeedRecord) {
		t.Fatalf("want ErrInvalidSeedRecord, got %v", err)
	}
	books, _ := s.Books()
	if len(books) != 0 {
		t.Fatalf("invalid record was stored")
	}
}

func TestSeedStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "seed.db")
	s, err := OpenSeedStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.PutBook(7, "T", "A")
	s.Close()

	s, err = OpenSeedStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	books, err := s.Books()
	if err != nil || len(books) != 1 || books[0].ID != 7 {
		t.Fatalf("reopened store: %v %+v", err, books)
	}
}

func TestSeedFromStore(t *testing.T) {
	s := tempStore(t)
	s.PutBook(2, "B", "b")
	s.PutBook(1, "A", "a")

	c := NewCatalog()
	n, err := SeedFromStore(c, s)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 2 {
		t.Fatalf("want 2 seeded, got %d", n)
	}
	books := c.ListBooks()
	if len(books) != 2 || books[0].ID != 1 || books[1].ID != 2 {
		t.Fatalf("unexpected catalog books: %+v", books)
	}
}

func TestSeedSampleBooks(t *testing.T) {
	c := NewCatalog()
	if n := Seed(c, SampleBooks); n != 3 {
		t.Fatalf("want 3 sample books, got %d", n)
	}
	if got := c.BorrowBook(1, 2); got != "User 1 has borrowed book Data Structures" {
		t.Fatalf("unexpected borrow message: %q", got)
	}
}
