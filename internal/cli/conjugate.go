package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/render"
	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

var (
	conjPerfective bool
	conjNoMotion   bool
	conjTense      string
	conjPerson     string
	conjFormat     string
)

var conjugateCmd = &cobra.Command{
	Use:   "conjugate <infinitive>...",
	Short: "Conjugate Czech infinitives",
	Long: `Conjugate one or more infinitives. Aspect is never guessed: pass
--perfective for perfective verbs, which have no present tense and form
their future from the present stem.

Examples:
  conjugator conjugate dělat
  conjugator conjugate --perfective udělat
  conjugator conjugate jít --tense future --person 1sg
  conjugator conjugate stát --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConjugate,
}

func init() {
	rootCmd.AddCommand(conjugateCmd)
	conjugateCmd.Flags().BoolVarP(&conjPerfective, "perfective", "p", false, "conjugate as a perfective verb")
	conjugateCmd.Flags().BoolVar(&conjNoMotion, "no-motion", false, "do not treat motion verbs specially in the future")
	conjugateCmd.Flags().StringVarP(&conjTense, "tense", "t", "", "present, past, future, imperative or conditional (default all)")
	conjugateCmd.Flags().StringVar(&conjPerson, "person", "", "1sg, 2sg, 3sg, 1pl, 2pl or 3pl (default all)")
	conjugateCmd.Flags().StringVarP(&conjFormat, "format", "f", "", "table, json or yaml (default from config)")
}

func runConjugate(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	tense, err := domain.ParseTense(conjTense)
	if err != nil {
		return err
	}
	person, err := domain.ParsePerson(conjPerson)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if conjFormat != "" {
		format = conjFormat
	}
	renderer, err := render.New(format)
	if err != nil {
		return err
	}

	lex, err := loadLexicon(cfg, GetRootDir())
	if err != nil {
		return err
	}
	conjugator, err := newConjugator(cfg, lex)
	if err != nil {
		return err
	}

	opts := conjugateOptions(cfg, conjPerfective, conjNoMotion)
	var results []domain.Conjugation
	var errs []error
	for _, word := range args {
		res, err := conjugator.Conjugate(cmd.Context(), word, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", word, err)
			errs = append(errs, err)
			continue
		}
		results = append(results, res...)
	}

	if len(results) > 0 {
		if err := renderer.Render(cmd.OutOrStdout(), render.Select(results, tense, person)); err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d words failed: %w", len(errs), len(args), errors.Join(errs...))
	}
	return nil
}
