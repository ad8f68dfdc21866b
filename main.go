package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"library-catalog/library"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// config holds the command-line settings of a session.
type config struct {
	SeedDB    string
	Samples   bool
	LogLevel  string
	LogFormat string
}

func newRootCmd() *cobra.Command {
	cfg := config{}

	cmd := &cobra.Command{
		Use:           "library",
		Short:         "Interactive in-memory library catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			catalog, err := newSession(cfg, logger)
			if err != nil {
				return err
			}
			sh := &shell{
				in:          cmd.InOrStdin(),
				out:         cmd.OutOrStdout(),
				catalog:     catalog,
				interactive: isTerminal(cmd.InOrStdin()),
			}
			return sh.run()
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.SeedDB, "seed-db", os.Getenv("LIBRARY_SEED_DB"), "SQLite seed database to load books from")
	flags.BoolVar(&cfg.Samples, "samples", true, "start with the sample books")
	flags.StringVar(&cfg.LogLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.StringVar(&cfg.LogFormat, "log-format", "text", "log format: text or json")
	return cmd
}

// newSession builds and seeds the catalog a shell works on.
func newSession(cfg config, logger *slog.Logger) (*library.Catalog, error) {
	catalog := library.NewCatalog(library.WithLogger(logger))
	if cfg.Samples {
		library.Seed(catalog, library.SampleBooks)
	}
	if cfg.SeedDB == "" {
		return catalog, nil
	}

	store, err := library.OpenSeedStore(cfg.SeedDB)
	if err != nil {
		return nil, fmt.Errorf("opening seed database: %w", err)
	}
	defer store.Close()

	n, err := library.SeedFromStore(catalog, store)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog seeded", "path", cfg.SeedDB, "books", n)
	return catalog, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
