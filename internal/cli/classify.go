package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/svhawkins/czech-verb-conjugator/internal/usecase"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <infinitive>...",
	Short: "Show the conjugation class and stems of infinitives",
	Long: `Show how each infinitive is classified: its prefixes and root, whether it
comes from the irregular lexicon, its conjugation class, ending and stems.

Examples:
  conjugator classify mluvit
  conjugator classify stát přijít studovat`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	lex, err := loadLexicon(cfg, GetRootDir())
	if err != nil {
		return err
	}
	uc, err := usecase.NewConjugateUseCaseFromLexicon(lex)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WORD\tPREFIX\tROOT\tKIND\tCLASS\tENDING\tSTEMS\tSOURCE")

	failed := 0
	for _, word := range args {
		results, err := uc.Conjugate(cmd.Context(), word, usecase.ConjugateOptions{NoMotion: true})
		if err != nil {
			fmt.Fprintf(tw, "%s\t\t\t%v\n", word, err)
			failed++
			continue
		}
		for _, c := range results {
			source := "regular"
			if c.Irregular {
				source = "lexicon"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s %s %s\t%s\n",
				c.Word, dash(c.Prefix), c.Root, c.Kind, c.ClassNumber, dash(c.Ending),
				dash(c.Stems.Present), dash(c.Stems.Past), dash(c.Stems.Imperative), source)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d words could not be classified", failed, len(args))
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
