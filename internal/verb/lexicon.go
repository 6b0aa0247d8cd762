package verb

import (
	"fmt"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

// FromEntry builds the class-level verb for an irregular lexicon entry.
// remainder is whatever precedes the matched pattern in the word (a prefix,
// "ne", or nothing) and is put in front of every stem from the entry.
func FromEntry(word, remainder string, entry domain.IrregularEntry, flags domain.Flags) (*Verb, error) {
	kind, ok := domain.BaseKind(entry.Class)
	if !ok {
		return nil, fmt.Errorf("lexicon entry %q: invalid class %d", entry.Pattern, entry.Class)
	}

	v := newVerb(kind, word, entry.Pattern, flags)
	v.fromLexicon = true
	v.Stem = remainder + entry.PresentStem
	v.PresentStem = remainder + entry.PresentStem
	v.PastStem = remainder + entry.PastStem
	v.ImperativeStem = remainder + entry.ImperativeStem
	return v, nil
}
