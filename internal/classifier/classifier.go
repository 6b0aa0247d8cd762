package classifier

import (
	"errors"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/phonology"
	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
	"github.com/svhawkins/czech-verb-conjugator/internal/verb"
)

// ErrNoPattern is returned when no ending rule fits the word.
var ErrNoPattern = errors.New("no matching pattern for this ending")

// subRule refines an ending family. The match of re becomes the verb's ending.
type subRule struct {
	name   string
	re     *regexp.Regexp
	onRoot bool
	unless *regexp.Regexp
	guard  func(root string) bool
	build  verb.Constructor
}

// family is one ending the classifier recognises, tried in order. When none
// of its sub-rules apply, fallback picks the constructor from the family's
// own match.
type family struct {
	name     string
	re       *regexp.Regexp
	rules    []subRule
	fallback func(ending string) verb.Constructor
}

func always(c verb.Constructor) func(string) verb.Constructor {
	return func(string) verb.Constructor { return c }
}

var thematicConsonant = map[string]verb.Constructor{
	"c": verb.NewClass4Ct,
	"s": verb.NewClass4St,
	"z": verb.NewClass4Zt,
}

func byThematicConsonant(ending string) verb.Constructor {
	r := []rune(ending)
	if len(r) < 2 {
		return nil
	}
	return thematicConsonant[string(r[len(r)-2])]
}

func isMonosyllabic(root string) bool {
	return len(phonology.Split(root)) == 1
}

var families = []family{
	{
		name: "-at",
		re:   regexp.MustCompile("([aá]t)$"),
		rules: []subRule{
			{
				name:   "-ovat",
				re:     regexp.MustCompile("(ovat)$"),
				unless: regexp.MustCompile("chovat$"),
				build:  verb.NewClass2Ovat,
			},
			{
				name:   "-ápat",
				re:     regexp.MustCompile("([aá][bpmz]at)$"),
				unless: regexp.MustCompile("(papat|chlámat)"),
				build:  verb.NewClass4Apat,
			},
			{
				name:   "cluster before -át",
				re:     regexp.MustCompile("((" + phonology.Consonant + ")+[pvrlhž][áa]t)$"),
				unless: regexp.MustCompile("(hr[áa]t)|([pv]l[aá]t)$"),
				build:  verb.NewClass4Cluster,
			},
			{
				name:   "monosyllabic -át",
				re:     regexp.MustCompile("([ltkvsmrř]át)$"),
				unless: regexp.MustCompile("([tl]kát)|([p]tát)$"),
				guard:  isMonosyllabic,
				build:  verb.NewClass2At,
			},
		},
		fallback: always(verb.NewClass1At),
	},
	{
		name: "-ít",
		re:   regexp.MustCompile("([íý]t)$"),
		rules: []subRule{
			{
				name:   "-řít",
				re:     regexp.MustCompile("(řít)$"),
				unless: regexp.MustCompile("(zřít)$"),
				build:  verb.NewClass4Rit,
			},
			{
				name:   "cluster before -ít",
				re:     regexp.MustCompile("((" + phonology.Consonant + "){2,}ít)$"),
				onRoot: true,
				unless: regexp.MustCompile("((blít)|(hnít))$"),
				build:  verb.NewClass3Cluster,
			},
			{
				name:  "cluster exceptions",
				re:    regexp.MustCompile("((zdít)(znít)|(snít))$"),
				build: verb.NewClass3Cluster,
			},
		},
		fallback: always(verb.NewClass2Ityt),
	},
	{
		name: "-out",
		re:   regexp.MustCompile("(out)$"),
		rules: []subRule{
			{name: "-nout", re: regexp.MustCompile("(nout)$"), build: verb.NewClass4Nout},
		},
		fallback: always(verb.NewClass2Out),
	},
	{
		name:     "-it",
		re:       regexp.MustCompile("([ieě]t)$"),
		fallback: always(verb.NewClass3Itet),
	},
	{
		name:     "long vowel and -ct, -st, -zt",
		re:       regexp.MustCompile("((" + phonology.LongVowel + ")[csz]t)$"),
		fallback: byThematicConsonant,
	},
}

// Classifier picks a regular conjugation class from the ending of a word.
type Classifier struct {
	families []family
}

func New() *Classifier {
	return &Classifier{families: families}
}

// Classify builds the regular verb for word. root is the word without its
// prefixes and is only consulted by the rules that need it.
func (c *Classifier) Classify(word, root string, flags domain.Flags) (*verb.Verb, error) {
	for _, f := range c.families {
		ending := f.re.FindString(word)
		if ending == "" {
			continue
		}
		if v := f.refine(word, root, flags); v != nil {
			return v, nil
		}
		if build := f.fallback(ending); build != nil {
			return build(word, ending, flags), nil
		}
		break
	}
	log.Warn().Str("word", word).Str("root", root).Msg(ErrNoPattern.Error())
	return nil, ErrNoPattern
}

func (f family) refine(word, root string, flags domain.Flags) *verb.Verb {
	for _, r := range f.rules {
		subject := word
		if r.onRoot {
			subject = root
		}
		ending := r.re.FindString(subject)
		if ending == "" {
			continue
		}
		if r.unless != nil && r.unless.MatchString(word) {
			continue
		}
		if r.guard != nil && !r.guard(root) {
			continue
		}
		log.Debug().Str("word", word).Str("family", f.name).Str("rule", r.name).Msg("regular class")
		return r.build(word, ending, flags)
	}
	return nil
}
