package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/svhawkins/czech-verb-conjugator/config"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/lexicon"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/store"
)

var (
	importIrregular string
	importPrefixes  string
	importConcrete  string
	showSection     string
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Manage the irregular verb, prefix and motion verb tables",
}

var lexiconImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import lexicon files into the store",
	Long: `Parse the lexicon files and save them in .conjugator/conjugator.db, where
lexicon.source: store picks them up. Files that are not given fall back to
the configured paths, then to the built-in tables.

Examples:
  conjugator lexicon import --irregular irregular.txt
  conjugator lexicon import --prefixes prefixes.txt --concrete concrete.txt`,
	Args: cobra.NoArgs,
	RunE: runLexiconImport,
}

var lexiconShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the lexicon in use",
	Args:  cobra.NoArgs,
	RunE:  runLexiconShow,
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
	lexiconCmd.AddCommand(lexiconImportCmd, lexiconShowCmd)

	lexiconImportCmd.Flags().StringVar(&importIrregular, "irregular", "", "irregular verb file")
	lexiconImportCmd.Flags().StringVar(&importPrefixes, "prefixes", "", "prefix file")
	lexiconImportCmd.Flags().StringVar(&importConcrete, "concrete", "", "motion verb file")

	lexiconShowCmd.Flags().StringVarP(&showSection, "section", "s", "", "irregular, prefixes or concrete (default all)")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func runLexiconImport(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	dir := GetRootDir()

	lex, err := lexicon.LoadFiles(
		firstNonEmpty(importIrregular, cfg.Lexicon.IrregularPath),
		firstNonEmpty(importPrefixes, cfg.Lexicon.PrefixPath),
		firstNonEmpty(importConcrete, cfg.Lexicon.ConcretePath),
	)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}

	if err := config.EnsureDataDir(dir); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", config.DataDirName, err)
	}
	dbPath := config.StoreDBPath(dir)
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	if err := st.PutLexicon(lex.Irregular(), lex.Prefixes(), lex.Concrete()); err != nil {
		return fmt.Errorf("failed to store lexicon: %w", err)
	}
	// Tables built from the previous lexicon are stale now.
	if err := st.EnsureCurrent(lex); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d irregular verbs, %d prefixes, %d motion verbs\n",
		len(lex.Irregular()), len(lex.Prefixes()), len(lex.Concrete()))
	fmt.Fprintf(out, "Lexicon stored at: %s (hash %s)\n", dbPath, store.ComputeLexiconHash(lex))
	return nil
}

func runLexiconShow(cmd *cobra.Command, args []string) error {
	section := strings.ToLower(showSection)
	switch section {
	case "", "irregular", "prefixes", "concrete":
	default:
		return fmt.Errorf("unknown section: %q", showSection)
	}

	lex, err := loadLexicon(GetConfig(), GetRootDir())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if section == "" || section == "irregular" {
		fmt.Fprintf(tw, "# irregular (%d)\n", len(lex.Irregular()))
		fmt.Fprintln(tw, "PATTERN\tCLASS\tPRESENT\tPAST\tIMPERATIVE")
		for _, e := range lex.Irregular() {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", e.Pattern, e.Class, dash(e.PresentStem), dash(e.PastStem), dash(e.ImperativeStem))
		}
	}
	if section == "" || section == "prefixes" {
		fmt.Fprintf(tw, "# prefixes (%d)\n", len(lex.Prefixes()))
		for _, p := range lex.Prefixes() {
			fmt.Fprintln(tw, p)
		}
	}
	if section == "" || section == "concrete" {
		fmt.Fprintf(tw, "# concrete (%d)\n", len(lex.Concrete()))
		for _, c := range lex.Concrete() {
			fmt.Fprintf(tw, "%s\t%s\n", c.Infinitive, c.Prefix)
		}
	}
	return tw.Flush()
}
