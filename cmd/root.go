package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"findash/internal/cli"
	"findash/internal/config"
	"findash/internal/dataset"
	"findash/internal/pipeline"
	"findash/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagNoCache bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "findash",
	Short: "Smart Finance Dashboard CLI",
	Long:  "Load a CSV or PDF file, preview the data, build charts, and get budgeting recommendations.",

	// Parse and precondition failures are already user-readable; skip the
	// usage dump and render errors ourselves.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the SQLite dataset cache, reparse the file")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadDataset is the shared data loading path used by all commands.
// Uses the SQLite cache when available so re-running commands against an
// unchanged file (PDFs especially) skips the parse.
func loadDataset(path string) (*dataset.Dataset, error) {
	cfg, _ := config.Load()

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Loading %s...\n", filepath.Base(path))
	}

	var cache *store.Cache
	if !flagNoCache && cfg.General.UseCache {
		c, err := store.Open(store.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			defer c.Close()
			cache = c
		}
	}

	result, err := pipeline.Load(path, cache)
	if err != nil {
		return nil, err
	}

	if !flagQuiet {
		if result.FromCache {
			fmt.Fprintf(os.Stderr, "  Loaded %d rows from cache\n", result.Dataset.RowCount())
		} else {
			fmt.Fprintf(os.Stderr, "  Parsed %d rows, %d columns in %s\n",
				result.Dataset.RowCount(), len(result.Dataset.Columns), result.Elapsed.Round(time.Millisecond))
		}
	}

	return result.Dataset, nil
}
