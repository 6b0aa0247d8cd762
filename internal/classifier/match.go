// Package classifier routes an infinitive to its conjugation class, either
// through the irregular lexicon or through the regular ending rules.
package classifier

import (
	"fmt"
	"regexp"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

// Match is a lexicon entry whose pattern is a suffix of the word.
// Remainder is the part of the word in front of that suffix.
type Match struct {
	Entry     domain.IrregularEntry
	Remainder string
}

// Matcher holds the lexicon patterns compiled once, anchored at the end of the word.
type Matcher struct {
	entries  []domain.IrregularEntry
	patterns []*regexp.Regexp
}

func NewMatcher(entries []domain.IrregularEntry) (*Matcher, error) {
	m := &Matcher{
		entries:  make([]domain.IrregularEntry, len(entries)),
		patterns: make([]*regexp.Regexp, len(entries)),
	}
	copy(m.entries, entries)
	for i, e := range entries {
		re, err := regexp.Compile("(" + e.Pattern + ")$")
		if err != nil {
			return nil, fmt.Errorf("compile lexicon pattern %q: %w", e.Pattern, err)
		}
		m.patterns[i] = re
	}
	return m, nil
}

// FindMatches returns every entry whose pattern ends the word, in lexicon order.
func (m *Matcher) FindMatches(word string) []Match {
	var matches []Match
	for i, re := range m.patterns {
		loc := re.FindStringIndex(word)
		if loc == nil {
			continue
		}
		matches = append(matches, Match{Entry: m.entries[i], Remainder: word[:loc[0]]})
	}
	return matches
}

// FindMatches is a one-off lookup for callers without a Matcher. Entries with
// a pattern that does not compile are skipped.
func FindMatches(word string, entries []domain.IrregularEntry) []Match {
	var matches []Match
	for _, e := range entries {
		re, err := regexp.Compile("(" + e.Pattern + ")$")
		if err != nil {
			continue
		}
		if loc := re.FindStringIndex(word); loc != nil {
			matches = append(matches, Match{Entry: e, Remainder: word[:loc[0]]})
		}
	}
	return matches
}
