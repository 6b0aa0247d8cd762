// Package render writes conjugation results as an aligned text table, JSON
// or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
	"github.com/svhawkins/czech-verb-conjugator/internal/port"
)

// Formats lists the names New accepts.
var Formats = []string{"table", "json", "yaml"}

// New returns the renderer for format. An empty format means table.
func New(format string) (port.Renderer, error) {
	switch strings.ToLower(format) {
	case "", "table":
		return TableRenderer{}, nil
	case "json":
		return JSONRenderer{}, nil
	case "yaml", "yml":
		return YAMLRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown output format: %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// Select blanks every cell outside tense t and person p. AllTenses and
// AllPersons keep the whole axis. The input is not modified.
func Select(results []domain.Conjugation, t domain.Tense, p domain.Person) []domain.Conjugation {
	out := make([]domain.Conjugation, len(results))
	for i, c := range results {
		table := make([][]string, len(c.Table))
		for ti, row := range c.Table {
			table[ti] = make([]string, len(row))
			if t != domain.AllTenses && domain.Tense(ti) != t {
				continue
			}
			for pi, cell := range row {
				if p == domain.AllPersons || domain.Person(pi) == p {
					table[ti][pi] = cell
				}
			}
		}
		c.Table = table
		out[i] = c
	}
	return out
}

// TableRenderer prints one block per tense with singular and plural columns.
// Tenses without any form are left out.
type TableRenderer struct{}

func (TableRenderer) Render(w io.Writer, results []domain.Conjugation) error {
	for i, c := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := renderTable(w, c); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, c domain.Conjugation) error {
	header := fmt.Sprintf("%s (%s, class %d)", c.Word, c.Kind, c.ClassNumber)
	if c.Irregular {
		header += " irregular"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	half := domain.NumPersons / 2
	for t := domain.Tense(0); t < domain.NumTenses; t++ {
		if rowEmpty(c, t) {
			continue
		}
		fmt.Fprintf(tw, "\n%s\tsingular\tplural\n", t)
		for p := 0; p < half; p++ {
			sg := c.Cell(t, domain.Person(p))
			pl := c.Cell(t, domain.Person(p+half))
			fmt.Fprintf(tw, "%d.\t%s\t%s\n", p+1, dash(sg), dash(pl))
		}
	}
	return tw.Flush()
}

func rowEmpty(c domain.Conjugation, t domain.Tense) bool {
	for p := domain.Person(0); p < domain.NumPersons; p++ {
		if c.Cell(t, p) != "" {
			return false
		}
	}
	return true
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, results []domain.Conjugation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(results)
}

type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, results []domain.Conjugation) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}
	return enc.Close()
}
