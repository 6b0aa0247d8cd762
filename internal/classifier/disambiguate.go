package classifier

import (
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
	"github.com/svhawkins/czech-verb-conjugator/internal/verb"
)

type outcome int

const (
	outcomeNone outcome = iota
	outcomeByt
	outcomeFirst
	outcomeSecond
	outcomeBoth
)

// candidate is what the disambiguation rules look at: the first matched
// pattern, the whole word, and the root left by the prefix stripper.
type candidate struct {
	pattern string
	word    string
	root    string
}

func (c candidate) is(patterns ...string) bool {
	for _, p := range patterns {
		if c.pattern == p {
			return true
		}
	}
	return false
}

type rule struct {
	name string
	when func(c candidate) bool
	then outcome
}

var (
	zatRe     = regexp.MustCompile("((zát)|(zábst))$")
	zacitRe   = regexp.MustCompile("(začít)$")
	snistRe   = regexp.MustCompile("(sníst)$")
	spatRe    = regexp.MustCompile("(spát)$")
	vedetRe   = regexp.MustCompile("(vědět)$")
	zetRe     = regexp.MustCompile("(zet)$")
	zustatRe  = regexp.MustCompile("(zůstat)$")
	skakatRe  = regexp.MustCompile("(skákat)$")
	vzitRe    = regexp.MustCompile("(vzít)$")
	pristatRe = regexp.MustCompile("(((při)|(v))st[aá]t)$")
	bzditRe   = regexp.MustCompile("((bz)|[bzr])dít$")
	upetRe    = regexp.MustCompile("úpět$")
	sklitRe   = regexp.MustCompile("sklít$")
)

// disambiguationRules were collected from the lexicon data one verb at a
// time. The first rule that holds decides the outcome.
var disambiguationRules = []rule{
	{
		name: "být",
		when: func(c candidate) bool {
			return (c.pattern == "být" && c.word == "být") || c.word == "nebýt"
		},
		then: outcomeByt,
	},
	{
		name: "over-stripped root",
		when: func(c candidate) bool {
			switch {
			case c.is("zát", "zábst") && zatRe.MatchString(c.word),
				c.is("začít") && zacitRe.MatchString(c.word),
				c.is("stít") && c.root == "tít",
				c.is("sníst") && snistRe.MatchString(c.word),
				c.is("spát") && spatRe.MatchString(c.word),
				c.is("vědět") && vedetRe.MatchString(c.word),
				c.is("zet") && zetRe.MatchString(c.word) && c.root == "t",
				c.is("stat") && (c.root == "tat" || zustatRe.MatchString(c.word)),
				c.is("skákat") && (c.root == "kákat" || skakatRe.MatchString(c.word)),
				c.is("vzít") && (c.root == "ít" || vzitRe.MatchString(c.word)):
				return true
			}
			return false
		},
		then: outcomeFirst,
	},
	{
		name: "stát, to become",
		when: func(c candidate) bool {
			return (c.is("stat") || pristatRe.MatchString(c.word)) && (c.root == "tat" || c.root == "tát")
		},
		then: outcomeFirst,
	},
	{
		name: "stát, both senses",
		when: func(c candidate) bool {
			return c.is("stát") && (c.word == "stát" || c.word == "nestát")
		},
		then: outcomeBoth,
	},
	{
		name: "stát, to stand",
		when: func(c candidate) bool { return c.is("stát") },
		then: outcomeSecond,
	},
	{
		name: "regular verb with an irregular tail",
		when: func(c candidate) bool {
			return (c.is("dít") && bzditRe.MatchString(c.word)) ||
				(c.is("pět") && upetRe.MatchString(c.word)) ||
				(c.is("klít") && sklitRe.MatchString(c.word))
		},
		then: outcomeNone,
	},
	{
		name: "inexact match",
		when: func(c candidate) bool { return c.pattern != c.root },
		then: outcomeNone,
	},
	{
		name: "exact match",
		when: func(candidate) bool { return true },
		then: outcomeFirst,
	},
}

// Disambiguator decides which lexicon match, if any, a word is conjugated from.
type Disambiguator struct {
	rules []rule
}

func NewDisambiguator() *Disambiguator {
	return &Disambiguator{rules: disambiguationRules}
}

// Disambiguate returns the verb built from the chosen match. The second verb
// is only set for bare stát and nestát, which have two conjugations. Both are
// nil when the word should go to the regular classifier instead.
func (d *Disambiguator) Disambiguate(matches []Match, word, root string, flags domain.Flags) (*verb.Verb, *verb.Verb) {
	if len(matches) == 0 {
		return nil, nil
	}
	name, out := d.resolve(candidate{pattern: matches[0].Entry.Pattern, word: word, root: root})
	log.Debug().
		Str("word", word).
		Str("root", root).
		Str("rule", name).
		Int("matches", len(matches)).
		Msg("irregular match disambiguated")

	switch out {
	case outcomeByt:
		return verb.NewByt(word, flags), nil
	case outcomeFirst:
		return construct(word, matches, 0, flags), nil
	case outcomeSecond:
		return construct(word, matches, 1, flags), nil
	case outcomeBoth:
		return construct(word, matches, 0, flags), construct(word, matches, 1, flags)
	}
	return nil, nil
}

func (d *Disambiguator) resolve(c candidate) (string, outcome) {
	for _, r := range d.rules {
		if r.when(c) {
			return r.name, r.then
		}
	}
	return "", outcomeNone
}

func construct(word string, matches []Match, idx int, flags domain.Flags) *verb.Verb {
	if idx >= len(matches) {
		return nil
	}
	m := matches[idx]
	v, err := verb.FromEntry(word, m.Remainder, m.Entry, flags)
	if err != nil {
		log.Warn().Err(err).Str("word", word).Msg("skipping lexicon entry")
		return nil
	}
	return v
}
