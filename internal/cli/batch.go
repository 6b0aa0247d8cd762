package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/svhawkins/czech-verb-conjugator/config"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/fs"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/memstore"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/store"
	"github.com/svhawkins/czech-verb-conjugator/internal/port"
	"github.com/svhawkins/czech-verb-conjugator/internal/usecase"
)

var (
	batchForce      bool
	batchPerfective bool
	batchNoMotion   bool
	batchWorkers    int
	batchDryRun     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [path]",
	Short: "Conjugate word lists into the table store",
	Long: `Conjugate every infinitive in the word lists under a directory and store
the tables in .conjugator/conjugator.db. A word list holds one infinitive per
line; blank lines and lines starting with # are skipped. Files that have not
changed since the last run are skipped unless --force is given.

Examples:
  conjugator batch .                  # Word lists in the current directory
  conjugator batch ./lists --force    # Redo every file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().BoolVar(&batchForce, "force", false, "conjugate unchanged files again")
	batchCmd.Flags().BoolVarP(&batchPerfective, "perfective", "p", false, "conjugate every word as perfective")
	batchCmd.Flags().BoolVar(&batchNoMotion, "no-motion", false, "do not treat motion verbs specially in the future")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "concurrent words per file (default from config)")
	batchCmd.Flags().BoolVar(&batchDryRun, "dry-run", false, "conjugate in memory without writing the table store")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()

	lex, err := loadLexicon(cfg, GetRootDir())
	if err != nil {
		return err
	}

	var tables port.TableStore
	dbPath := config.StoreDBPath(path)
	if batchDryRun {
		tables = memstore.NewMemoryStore()
	} else {
		st, err := openBatchStore(path, lex)
		if err != nil {
			return err
		}
		defer st.Close()
		tables = st
	}

	conjugator, err := newConjugator(cfg, lex)
	if err != nil {
		return err
	}

	workers := cfg.Batch.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}
	walker := fs.NewWalker(cfg.Batch.Includes, cfg.Batch.Excludes)
	batchUC := usecase.NewBatchUseCase(conjugator, tables, walker, fs.WordReader{}, workers)

	fmt.Printf("Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time

	progress := func(done, total int) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Conjugating[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}

		bar.Set(done)

		if elapsed := time.Since(startTime); done > 0 && elapsed > 0 {
			rate := float64(done) / elapsed.Seconds()
			if rate > 0 {
				eta := time.Duration(float64(total-done)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Conjugating[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	opts := usecase.BatchOptions{
		Conjugate: conjugateOptions(cfg, batchPerfective, batchNoMotion),
		Force:     batchForce,
	}
	result, err := batchUC.Run(cmd.Context(), path, opts, progress)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if st, ok := tables.(*store.BoltStore); ok {
		if err := st.Migrate(lex); err != nil {
			return fmt.Errorf("failed to update schema info: %w", err)
		}
	}

	fmt.Printf("\nBatch complete:\n")
	fmt.Printf("  Files read:     %d\n", result.Files-result.FilesSkipped)
	fmt.Printf("  Files skipped:  %d (unchanged)\n", result.FilesSkipped)
	fmt.Printf("  Words:          %d\n", result.Words)
	fmt.Printf("  Conjugated:     %d\n", result.Conjugated)
	fmt.Printf("  Failed:         %d\n", result.Failed)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e.Error())
		}
	}

	if batchDryRun {
		fmt.Printf("\nDry run: nothing was written to %s\n", dbPath)
	} else {
		fmt.Printf("\nTables stored at: %s\n", dbPath)
	}
	return nil
}

// openBatchStore opens the table store under path and clears or migrates it
// when the schema or the lexicon changed.
func openBatchStore(path string, lex port.Lexicon) (*store.BoltStore, error) {
	if err := config.EnsureDataDir(path); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", config.DataDirName, err)
	}
	st, err := store.NewBoltStore(config.StoreDBPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open table store: %w", err)
	}

	migration, err := st.CheckMigration(lex)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to check migration: %w", err)
	}
	if migration.NeedsRebuild {
		fmt.Printf("Table store rebuild required: %s\n", migration.Reason)
		fmt.Println("Clearing stored tables...")
		if err := st.Clear(); err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to clear table store: %w", err)
		}
	} else if migration.NeedsMigration {
		fmt.Printf("Running schema migration: %s\n", migration.Reason)
		if err := st.Migrate(lex); err != nil {
			st.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}
	return st, nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
