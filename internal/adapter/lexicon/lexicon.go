// Package lexicon holds the static tables the classifier consults: irregular
// verbs, verbal prefixes and motion verbs.
package lexicon

import (
	"bytes"
	"embed"
	"fmt"
	"strings"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

//go:embed data/*.txt
var dataFS embed.FS

// Lexicon is an immutable set of tables. Accessors return copies.
type Lexicon struct {
	irregular []domain.IrregularEntry
	prefixes  []string
	concrete  []domain.ConcreteEntry
	motion    map[string]string
}

// New builds a lexicon from already parsed tables.
func New(irregular []domain.IrregularEntry, prefixes []string, concrete []domain.ConcreteEntry) *Lexicon {
	l := &Lexicon{
		irregular: append([]domain.IrregularEntry(nil), irregular...),
		prefixes:  append([]string(nil), prefixes...),
		concrete:  append([]domain.ConcreteEntry(nil), concrete...),
		motion:    make(map[string]string, len(concrete)),
	}
	for _, c := range concrete {
		if _, seen := l.motion[c.Infinitive]; !seen {
			l.motion[c.Infinitive] = c.Prefix
		}
	}
	return l
}

func (l *Lexicon) Irregular() []domain.IrregularEntry {
	return append([]domain.IrregularEntry(nil), l.irregular...)
}

func (l *Lexicon) Prefixes() []string {
	return append([]string(nil), l.prefixes...)
}

func (l *Lexicon) Concrete() []domain.ConcreteEntry {
	return append([]domain.ConcreteEntry(nil), l.concrete...)
}

// ConcretePrefix reports whether word is a motion verb and returns the prefix
// its future takes. A leading "ne" is ignored.
func (l *Lexicon) ConcretePrefix(word string) (string, bool) {
	p, ok := l.motion[strings.TrimPrefix(word, "ne")]
	return p, ok
}

var defaultLexicon *Lexicon

// Default returns the lexicon built from the embedded data files.
func Default() *Lexicon {
	return defaultLexicon
}

func init() {
	irregular, err := ParseIrregular(mustOpen("data/irregular.txt"), "irregular.txt")
	if err != nil {
		panic(fmt.Errorf("could not parse embedded irregular verbs: %w", err))
	}
	prefixes, err := ParsePrefixes(mustOpen("data/prefix.txt"), "prefix.txt")
	if err != nil {
		panic(fmt.Errorf("could not parse embedded prefixes: %w", err))
	}
	concrete, err := ParseConcrete(mustOpen("data/concrete.txt"), "concrete.txt")
	if err != nil {
		panic(fmt.Errorf("could not parse embedded concrete verbs: %w", err))
	}
	defaultLexicon = New(irregular, prefixes, concrete)
}

func mustOpen(name string) *bytes.Reader {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		panic(fmt.Errorf("could not read embedded %s: %w", name, err))
	}
	return bytes.NewReader(data)
}
