package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/phonology"
	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/prefix"
	"github.com/svhawkins/czech-verb-conjugator/internal/classifier"
	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
	"github.com/svhawkins/czech-verb-conjugator/internal/port"
	"github.com/svhawkins/czech-verb-conjugator/internal/verb"
)

// ErrEmptyWord is returned when the input is blank after normalization.
var ErrEmptyWord = errors.New("empty word")

// ConjugateOptions are the caller's choices for one conjugation.
type ConjugateOptions struct {
	// Perfective is never inferred and must be set by the caller.
	Perfective bool
	// NoMotion turns off the concrete verb lookup.
	NoMotion bool
}

// Key is a compact form of the options for cache keys.
func (o ConjugateOptions) Key() string {
	key := "ipf"
	if o.Perfective {
		key = "pf"
	}
	if o.NoMotion {
		key += "-nomotion"
	}
	return key
}

// ConjugateUseCase runs a word through normalization, prefix stripping,
// the irregular lexicon or the regular classifier, and the conjugation engine.
// It holds no mutable state and is safe for concurrent use.
type ConjugateUseCase struct {
	lexicon       port.Lexicon
	stripper      port.PrefixStripper
	matcher       *classifier.Matcher
	disambiguator *classifier.Disambiguator
	classifier    port.Classifier
}

// NewConjugateUseCase creates a new conjugate use case.
func NewConjugateUseCase(
	lexicon port.Lexicon,
	stripper port.PrefixStripper,
	cls port.Classifier,
	disambiguator *classifier.Disambiguator,
) (*ConjugateUseCase, error) {
	matcher, err := classifier.NewMatcher(lexicon.Irregular())
	if err != nil {
		return nil, fmt.Errorf("failed to build lexicon matcher: %w", err)
	}
	return &ConjugateUseCase{
		lexicon:       lexicon,
		stripper:      stripper,
		matcher:       matcher,
		disambiguator: disambiguator,
		classifier:    cls,
	}, nil
}

// NewConjugateUseCaseFromLexicon wires the default stripper, classifier and
// disambiguator around lexicon.
func NewConjugateUseCaseFromLexicon(lexicon port.Lexicon) (*ConjugateUseCase, error) {
	stripper, err := prefix.NewStripper(lexicon.Prefixes())
	if err != nil {
		return nil, fmt.Errorf("failed to build prefix stripper: %w", err)
	}
	return NewConjugateUseCase(lexicon, stripper, classifier.New(), classifier.NewDisambiguator())
}

// Conjugate returns the full table for word. Bare stát and nestát give two
// results, one per sense; every other word gives one.
func (u *ConjugateUseCase) Conjugate(ctx context.Context, word string, opts ConjugateOptions) ([]domain.Conjugation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	word = phonology.Normalize(word)
	if word == "" {
		return nil, ErrEmptyWord
	}

	flags := domain.Flags{Perfective: opts.Perfective}
	if !opts.Perfective && !opts.NoMotion {
		if p, ok := u.lexicon.ConcretePrefix(word); ok {
			flags.Motion = domain.Motion{Enabled: true, Prefix: p}
		}
	}

	prefixes, root := u.stripper.Strip(word)

	var verbs []*verb.Verb
	if matches := u.matcher.FindMatches(word); len(matches) > 0 {
		first, second := u.disambiguator.Disambiguate(matches, word, root, flags)
		for _, v := range []*verb.Verb{first, second} {
			if v != nil {
				verbs = append(verbs, v)
			}
		}
	}

	if len(verbs) == 0 {
		v, err := u.classifier.Classify(word, root, flags)
		if err != nil {
			return nil, fmt.Errorf("classify %q: %w", word, err)
		}
		verbs = append(verbs, v)
	}

	results := make([]domain.Conjugation, 0, len(verbs))
	for _, v := range verbs {
		v.Conjugate(domain.AllTenses, domain.AllPersons)
		results = append(results, toConjugation(word, prefixes, root, v))
	}

	log.Debug().
		Str("word", word).
		Str("root", root).
		Str("kind", results[0].Kind).
		Int("results", len(results)).
		Msg("conjugated")
	return results, nil
}

func toConjugation(word, prefixes, root string, v *verb.Verb) domain.Conjugation {
	table := v.Table()
	return domain.Conjugation{
		Word:        word,
		Prefix:      prefixes,
		Root:        root,
		Kind:        v.Kind().String(),
		ClassNumber: v.ClassNumber(),
		Irregular:   v.FromLexicon() || v.Kind() == domain.KindByt,
		Ending:      v.Ending,
		Stems:       v.Stems(),
		Flags:       v.Flags(),
		Table:       table.Rows(),
	}
}
