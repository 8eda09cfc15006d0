package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hupe1980/markbook"
	"github.com/hupe1980/markbook/blobstore"
	redisstore "github.com/hupe1980/markbook/blobstore/redis"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	dataDir     string
	redisAddr   string
	key         string
	compression string
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "markbook",
	Short: "markbook - transcribe hand-written score sheets with fuzzy name matching",
	Long: `markbook helps you transcribe hand-written student score sheets.

Type part of a student's name to float the matching row to the top, then
commit a line like "=12 8 20" to record that student's marks. The book is
saved after every change and can be exported as a tab-separated table for
pasting into a spreadsheet.

Commands inside the interactive loop:

  <partial name>   re-sort students by fuzzy match
  <lhs>=<m1 m2..>  record marks for the top student
  :export          print the tab-separated table
  :clear           discard all records
  :quit            leave the loop`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "directory for local snapshot storage (default: in-memory only)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "redis address for snapshot storage (overrides --data)")
	rootCmd.PersistentFlags().StringVar(&key, "key", markbook.DefaultKey, "storage key the snapshot is saved under")
	rootCmd.PersistentFlags().StringVar(&compression, "compression", "none", "snapshot compression: none, zstd or lz4")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd, exportCmd, clearCmd)
}

// newStore builds the snapshot store from the persistent flags.
func newStore() (blobstore.Store, error) {
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		return redisstore.NewStore(client, "markbook:", 0), nil
	}
	if dataDir != "" {
		return blobstore.NewLocalStore(dataDir)
	}
	return blobstore.NewMemoryStore(), nil
}

// newSession wires a Session from the persistent flags.
func newSession() (*markbook.Session, error) {
	store, err := newStore()
	if err != nil {
		return nil, err
	}

	comp, ok := markbook.CompressionByName(compression)
	if !ok {
		return nil, fmt.Errorf("unknown compression %q", compression)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return markbook.NewSession(store,
		markbook.WithKey(key),
		markbook.WithCompression(comp),
		markbook.WithLogger(markbook.NewTextLogger(level)),
	), nil
}

// loadSession builds a session and restores its saved book, reporting
// whether a snapshot was found.
func loadSession(ctx context.Context) (*markbook.Session, bool, error) {
	session, err := newSession()
	if err != nil {
		return nil, false, err
	}

	switch err := session.Load(ctx); {
	case err == nil:
		return session, true, nil
	case errors.Is(err, blobstore.ErrNotFound):
		return session, false, nil
	default:
		return nil, false, err
	}
}
