package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/svhawkins/czech-verb-conjugator/config"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/cache"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/lexicon"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/store"
	"github.com/svhawkins/czech-verb-conjugator/internal/port"
	"github.com/svhawkins/czech-verb-conjugator/internal/usecase"
)

// loadLexicon returns the lexicon named by lexicon.source: the embedded
// tables, files on disk, or the tables imported into the store.
func loadLexicon(cfg *config.Config, dir string) (port.Lexicon, error) {
	switch cfg.Lexicon.Source {
	case "", "embedded":
		return lexicon.Default(), nil

	case "files":
		lex, err := lexicon.LoadFiles(cfg.Lexicon.IrregularPath, cfg.Lexicon.PrefixPath, cfg.Lexicon.ConcretePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load lexicon files: %w", err)
		}
		return lex, nil

	case "store":
		dbPath := config.StoreDBPath(dir)
		if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no store found. Run 'conjugator lexicon import' first")
		}
		st, err := store.NewBoltStore(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open store: %w", err)
		}
		defer st.Close()
		return readStoredLexicon(st)
	}
	return nil, fmt.Errorf("unknown lexicon source: %q", cfg.Lexicon.Source)
}

func readStoredLexicon(st port.LexiconStore) (port.Lexicon, error) {
	irregular, err := st.Irregular()
	if err != nil {
		return nil, fmt.Errorf("failed to read irregular verbs: %w", err)
	}
	prefixes, err := st.Prefixes()
	if err != nil {
		return nil, fmt.Errorf("failed to read prefixes: %w", err)
	}
	concrete, err := st.Concrete()
	if err != nil {
		return nil, fmt.Errorf("failed to read concrete verbs: %w", err)
	}
	if len(irregular) == 0 && len(prefixes) == 0 {
		return nil, fmt.Errorf("stored lexicon is empty. Run 'conjugator lexicon import' first")
	}

	log.Info().
		Int("irregular", len(irregular)).
		Int("prefixes", len(prefixes)).
		Int("concrete", len(concrete)).
		Msg("lexicon loaded from store")
	return lexicon.New(irregular, prefixes, concrete), nil
}

// newConjugator builds the cached conjugation pipeline over lex.
func newConjugator(cfg *config.Config, lex port.Lexicon) (*cache.CachedConjugator, error) {
	uc, err := usecase.NewConjugateUseCaseFromLexicon(lex)
	if err != nil {
		return nil, err
	}
	return cache.NewCachedConjugator(uc, cache.NewConjugationCache(cfg.Cache.Size, cfg.Cache.TTL)), nil
}

// conjugateOptions merges the command line flags over the configured defaults.
func conjugateOptions(cfg *config.Config, perfective, noMotion bool) usecase.ConjugateOptions {
	return usecase.ConjugateOptions{
		Perfective: perfective || cfg.Conjugation.Perfective,
		NoMotion:   noMotion || !cfg.Conjugation.Motion,
	}
}
