package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"library-catalog/library"

	"github.com/spf13/cobra"
)

func main() {
	if err := newImportCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newImportCmd() *cobra.Command {
	var (
		dbPath string
		fresh  bool
	)

	cmd := &cobra.Command{
		Use:           "import_books CSV_FILE",
		Short:         "Load id,title,author rows into a seed database",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if fresh {
				if err := removeDatabase(out, dbPath); err != nil {
					return err
				}
			}

			store, err := library.OpenSeedStore(dbPath)
			if err != nil {
				return fmt.Errorf("creating database: %w", err)
			}
			defer store.Close()

			f, err := os.Open(filepath.Clean(args[0]))
			if err != nil {
				return err
			}
			defer f.Close()

			ok, failed, err := importBooks(out, store, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nImport complete!\n")
			fmt.Fprintf(out, "Successfully imported: %d books\n", ok)
			fmt.Fprintf(out, "Errors: %d\n", failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "seed.db", "seed database to write")
	cmd.Flags().BoolVar(&fresh, "fresh", false, "remove an existing database first")
	return cmd
}

func removeDatabase(out io.Writer, dbPath string) error {
	fmt.Fprintln(out, "Cleaning up existing database files...")
	for _, file := range []string{dbPath, dbPath + "-shm", dbPath + "-wal"} {
		if err := os.Remove(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", file, err)
		}
	}
	return nil
}

// importBooks stores every valid row of r. Bad rows are reported and
// counted; only read failures abort the import. A first row whose id does
// not parse is taken as a header.
func importBooks(out io.Writer, store *library.SeedStore, r io.Reader) (ok, failed int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	for first := true; ; first = false {
		rec, err := cr.Read()
		if err == io.EOF {
			return ok, failed, nil
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) && errors.Is(perr.Err, csv.ErrFieldCount) {
			fmt.Fprintf(out, "Line %d: ERROR - %v\n", perr.Line, perr.Err)
			failed++
			continue
		}
		if err != nil {
			return ok, failed, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		id, convErr := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
		if convErr != nil {
			if first {
				continue
			}
			fmt.Fprintf(out, "Line %d: ERROR - bad id %q: %v\n", line, rec[0], library.ErrInvalidSeedRecord)
			failed++
			continue
		}

		title, author := strings.TrimSpace(rec[1]), strings.TrimSpace(rec[2])
		if err := store.PutBook(id, title, author); err != nil {
			fmt.Fprintf(out, "Line %d: ERROR - %v\n", line, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "Imported: %s by %s (ID: %d)\n", title, author, id)
		ok++
	}
}
