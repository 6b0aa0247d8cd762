package port

import (
	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
	"github.com/svhawkins/czech-verb-conjugator/internal/verb"
)

// Classifier builds a regular verb from the ending of a word.
type Classifier interface {
	Classify(word, root string, flags domain.Flags) (*verb.Verb, error)
}
