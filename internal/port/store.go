package port

import "github.com/svhawkins/czech-verb-conjugator/internal/domain"

type LexiconStore interface {
	PutLexicon(irregular []domain.IrregularEntry, prefixes []string, concrete []domain.ConcreteEntry) error

	Irregular() ([]domain.IrregularEntry, error)

	Prefixes() ([]string, error)

	Concrete() ([]domain.ConcreteEntry, error)
}

// TableStore persists conjugation results keyed by word and flags. A key
// holds a slice since some words have two conjugations.
type TableStore interface {
	PutTable(word string, flags domain.Flags, results []domain.Conjugation) error

	GetTable(word string, flags domain.Flags) ([]domain.Conjugation, error)

	ListTables() ([]domain.Conjugation, error)

	DeleteTable(word string, flags domain.Flags) error

	BatchPut(tables []StoredTable) error

	FileModTime(path string) (int64, error)

	SetFileModTime(path string, modTime int64) error

	Close() error
}

type StoredTable struct {
	Word    string
	Flags   domain.Flags
	Results []domain.Conjugation
}
