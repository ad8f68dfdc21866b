package library

import "fmt"

// SampleBooks are the books a fresh session starts with.
var SampleBooks = []Book{
	{ID: 1, Title: "Python Programming", Author: "John Smith", Available: true},
	{ID: 2, Title: "Data Structures", Author: "Jane Doe", Available: true},
	{ID: 3, Title: "Algorithms", Author: "Bob Wilson", Available: true},
}

// Seed adds books to the catalog in the given order and returns how many
// were added.
func Seed(c *Catalog, books []Book) int {
	for _, b := range books {
		c.AddBook(b.ID, b.Title, b.Author)
	}
	return len(books)
}

// SeedFromStore adds every record of the seed store to the catalog.
func SeedFromStore(c *Catalog, s *SeedStore) (int, error) {
	books, err := s.Books()
	if err != nil {
		return 0, fmt.Errorf("load seed books: %w", err)
	}
	return Seed(c, books), nil
}
