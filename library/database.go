package library

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// ErrInvalidSeedRecord is returned for seed rows that cannot describe a book.
var ErrInvalidSeedRecord = errors.New("invalid seed record")

// SeedStore is a SQLite file of book metadata used to seed a Catalog at
// startup. Catalog state is never written back to it.
type SeedStore struct {
	db *sql.DB

	putBookStmt *sql.Stmt
}

// OpenSeedStore opens (or creates) the seed database at dbPath and applies
// schema migrations.
func OpenSeedStore(dbPath string) (*SeedStore, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	store := &SeedStore{db: db}
	if err := store.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases prepared statements and closes the DB.
func (s *SeedStore) Close() error {
	if s.putBookStmt != nil {
		s.putBookStmt.Close()
	}
	return s.db.Close()
}

// ---------------------------------------------------------------------------
// Schema migration
// ---------------------------------------------------------------------------

const schemaVersion = 1

func applyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// seq keeps insertion order, which decides the shape of the seeded tree.
	if _, err := tx.Exec(`CREATE TABLE IF NOT EXISTS seed_books (
            seq INTEGER PRIMARY KEY AUTOINCREMENT,
            id INTEGER NOT NULL UNIQUE,
            title TEXT NOT NULL,
            author TEXT NOT NULL
        );`); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
            ON CONFLICT(key) DO UPDATE SET value=excluded.value;`, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	return tx.Commit()
}

func (s *SeedStore) prepareStatements() error {
	var err error
	s.putBookStmt, err = s.db.Prepare(`INSERT INTO seed_books(id,title,author) VALUES(?,?,?)
        ON CONFLICT(id) DO UPDATE SET title=excluded.title, author=excluded.author`)
	return err
}

// ---------------------------------------------------------------------------
// Seed records
// ---------------------------------------------------------------------------

// PutBook adds a seed record, or updates title and author of an existing ID
// without changing its position.
func (s *SeedStore) PutBook(id int64, title, author string) error {
	if title == "" || author == "" {
		return fmt.Errorf("book %d: title and author are required: %w", id, ErrInvalidSeedRecord)
	}
	if _, err := s.putBookStmt.Exec(id, title, author); err != nil {
		return fmt.Errorf("put book %d: %w", id, err)
	}
	return nil
}

// Books returns the seed records in the order they were first stored.
func (s *SeedStore) Books() ([]Book, error) {
	rows, err := s.db.Query(`SELECT id,title,author FROM seed_books ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		b := Book{Available: true}
		if err := rows.Scan(&b.ID, &b.Title, &b.Author); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
