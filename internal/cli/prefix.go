package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/phonology"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/prefix"
)

var prefixCmd = &cobra.Command{
	Use:   "prefix <infinitive>...",
	Short: "Split infinitives into prefixes and root",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPrefix,
}

var prefixShowExpr bool

func init() {
	rootCmd.AddCommand(prefixCmd)
	prefixCmd.Flags().BoolVar(&prefixShowExpr, "expr", false, "print the prefix regular expression")
}

func runPrefix(cmd *cobra.Command, args []string) error {
	lex, err := loadLexicon(GetConfig(), GetRootDir())
	if err != nil {
		return err
	}
	stripper, err := prefix.NewStripper(lex.Prefixes())
	if err != nil {
		return fmt.Errorf("failed to build prefix stripper: %w", err)
	}

	out := cmd.OutOrStdout()
	if prefixShowExpr {
		fmt.Fprintln(out, stripper.Expr())
	}
	for _, word := range args {
		word = phonology.Normalize(word)
		prefixes, root := stripper.Strip(word)
		fmt.Fprintf(out, "%s\t%s + %s\n", word, dash(prefixes), root)
	}
	return nil
}
