package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/svhawkins/czech-verb-conjugator/config"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/phonology"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/render"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/store"
	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
	"github.com/svhawkins/czech-verb-conjugator/internal/port"
)

var (
	tablesPerfective bool
	tablesFormat     string
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Inspect the tables stored by batch",
}

var tablesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored words",
	Args:  cobra.NoArgs,
	RunE:  runTablesList,
}

var tablesShowCmd = &cobra.Command{
	Use:   "show <infinitive>",
	Short: "Print a stored table",
	Args:  cobra.ExactArgs(1),
	RunE:  runTablesShow,
}

var tablesDeleteCmd = &cobra.Command{
	Use:   "delete <infinitive>",
	Short: "Remove a stored table",
	Args:  cobra.ExactArgs(1),
	RunE:  runTablesDelete,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.AddCommand(tablesListCmd, tablesShowCmd, tablesDeleteCmd)

	tablesShowCmd.Flags().BoolVarP(&tablesPerfective, "perfective", "p", false, "the perfective table")
	tablesShowCmd.Flags().StringVarP(&tablesFormat, "format", "f", "", "table, json or yaml (default from config)")
	tablesDeleteCmd.Flags().BoolVarP(&tablesPerfective, "perfective", "p", false, "the perfective table")
}

func openTableStore() (*store.BoltStore, error) {
	dbPath := config.StoreDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("no table store found. Run 'conjugator batch' first")
	}
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open table store: %w", err)
	}
	return st, nil
}

// storedFlags finds the key a table was stored under. Motion flags depend on
// the lexicon, so they are taken from the stored entry itself.
func storedFlags(st port.TableStore, word string, perfective bool) (domain.Flags, error) {
	all, err := st.ListTables()
	if err != nil {
		return domain.Flags{}, err
	}
	for _, c := range all {
		if c.Word == word && c.Flags.Perfective == perfective {
			return c.Flags, nil
		}
	}
	return domain.Flags{}, fmt.Errorf("%s: %w", word, store.ErrNotFound)
}

func runTablesList(cmd *cobra.Command, args []string) error {
	st, err := openTableStore()
	if err != nil {
		return err
	}
	defer st.Close()

	all, err := st.ListTables()
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	var lines []string
	for _, c := range all {
		line := fmt.Sprintf("%s\t%s\t%s", c.Word, c.Flags.Key(), c.Kind)
		if !seen[line] {
			seen[line] = true
			lines = append(lines, line)
		}
	}
	sort.Strings(lines)

	out := cmd.OutOrStdout()
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	fmt.Fprintf(out, "%d stored conjugations\n", len(lines))
	return nil
}

func runTablesShow(cmd *cobra.Command, args []string) error {
	format := GetConfig().Output.Format
	if tablesFormat != "" {
		format = tablesFormat
	}
	renderer, err := render.New(format)
	if err != nil {
		return err
	}

	st, err := openTableStore()
	if err != nil {
		return err
	}
	defer st.Close()

	word := phonology.Normalize(args[0])
	flags, err := storedFlags(st, word, tablesPerfective)
	if err != nil {
		return err
	}
	results, err := st.GetTable(word, flags)
	if err != nil {
		return err
	}
	return renderer.Render(cmd.OutOrStdout(), results)
}

func runTablesDelete(cmd *cobra.Command, args []string) error {
	st, err := openTableStore()
	if err != nil {
		return err
	}
	defer st.Close()

	word := phonology.Normalize(args[0])
	flags, err := storedFlags(st, word, tablesPerfective)
	if err != nil {
		return err
	}
	if err := st.DeleteTable(word, flags); err != nil {
		return fmt.Errorf("failed to delete %s: %w", word, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%s)\n", word, flags.Key())
	return nil
}
