package port

import "github.com/svhawkins/czech-verb-conjugator/internal/domain"

// Lexicon is the read-only irregular, prefix and concrete verb data.
type Lexicon interface {
	Irregular() []domain.IrregularEntry

	Prefixes() []string

	Concrete() []domain.ConcreteEntry

	// ConcretePrefix returns the future prefix of a motion verb, ignoring a leading "ne".
	ConcretePrefix(word string) (string, bool)
}

type PrefixStripper interface {
	Strip(word string) (prefixes, root string)
}
