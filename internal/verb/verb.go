// Package verb derives stems for each conjugation class and fills the
// tense by person table from them.
package verb

import (
	"strings"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

// Verb is a classified infinitive together with its stems and conjugation table.
//
// The stem fields are set by the constructors and may be overwritten before
// Conjugate is called, which is how lexicon entries supply their own stems.
type Verb struct {
	Infinitive     string
	Ending         string
	Stem           string
	PresentStem    string
	PastStem       string
	ImperativeStem string

	kind        domain.Kind
	negative    bool
	fromLexicon bool
	flags       domain.Flags
	paradigm    paradigm
	table       domain.Table
}

// New returns a verb of the base kind, which has no present endings.
func New(infinitive, ending string, flags domain.Flags) *Verb {
	return newVerb(domain.KindBase, infinitive, ending, flags)
}

func newVerb(kind domain.Kind, infinitive, ending string, flags domain.Flags) *Verb {
	return &Verb{
		Infinitive: infinitive,
		Ending:     ending,
		kind:       kind,
		negative:   strings.HasPrefix(infinitive, "ne"),
		flags:      flags,
		paradigm:   newParadigm(presentEndings(kind, infinitive), flags),
	}
}

func (v *Verb) Kind() domain.Kind { return v.kind }

// ClassNumber is 1-4 for the conjugation classes and 0 for the base verb and být.
func (v *Verb) ClassNumber() int { return v.kind.ClassNumber() }

// IsNegative reports whether the infinitive starts with the negation prefix "ne".
func (v *Verb) IsNegative() bool { return v.negative }

func (v *Verb) Flags() domain.Flags { return v.flags }

// FromLexicon reports whether the stems came from an irregular lexicon entry.
func (v *Verb) FromLexicon() bool { return v.fromLexicon }

func (v *Verb) Stems() domain.Stems {
	return domain.Stems{
		Stem:       v.Stem,
		Present:    v.PresentStem,
		Past:       v.PastStem,
		Imperative: v.ImperativeStem,
	}
}

// Conjugate fills the cells selected by t and p. Pass domain.AllTenses or
// domain.AllPersons to select a whole column, row or the full table.
// Cells outside the selection are left untouched, and repeating a call
// produces the same table.
func (v *Verb) Conjugate(t domain.Tense, p domain.Person) {
	sel := newSelection(t, p)
	for _, tt := range sel.tenses {
		for _, pp := range sel.persons {
			v.table[tt][pp] = v.cell(tt, pp)
		}
	}
	v.applyCorrections(sel)
}

// At returns a conjugated form, or "" for an out-of-range index.
func (v *Verb) At(t domain.Tense, p domain.Person) string {
	return v.table.At(t, p)
}

// Table returns a copy of the conjugation table.
func (v *Verb) Table() domain.Table {
	return v.table
}

func (v *Verb) ClearTable() {
	v.table = domain.Table{}
}

func (v *Verb) cell(t domain.Tense, p domain.Person) string {
	if t == domain.Imperative && (p == domain.FirstSg || p == domain.ThirdSg || p == domain.ThirdPl) {
		return ""
	}
	if t == domain.Present && v.flags.Perfective {
		return ""
	}

	stem := v.stemFor(t)
	ending := v.paradigm.endings[t][p]
	aux := v.paradigm.auxiliaries[t][p]

	if t == domain.Future && !v.flags.Perfective {
		var form string
		switch {
		case v.flags.Motion.Enabled:
			form = v.flags.Motion.Prefix + stem + ending
		case stem == "" || aux == "":
			form = aux + stem + ending
		default:
			form = aux + " " + stem + ending
		}
		if v.negative {
			form = "ne" + form
		}
		return form
	}

	if aux == "" {
		return stem + ending
	}
	return stem + ending + " " + aux
}

func (v *Verb) stemFor(t domain.Tense) string {
	switch t {
	case domain.Present:
		return v.PresentStem
	case domain.Past, domain.Conditional:
		return v.PastStem
	case domain.Imperative:
		return v.ImperativeStem
	case domain.Future:
		return v.futureStem()
	}
	return ""
}

// futureStem never carries the negation prefix, since the future cell adds
// "ne" back in front of the auxiliary or motion prefix.
func (v *Verb) futureStem() string {
	switch {
	case v.kind == domain.KindByt:
		return ""
	case v.flags.Perfective:
		return v.PresentStem
	case v.flags.Motion.Enabled:
		if v.negative {
			return strings.TrimPrefix(v.PresentStem, "ne")
		}
		return v.PresentStem
	case v.negative:
		return strings.TrimPrefix(v.Infinitive, "ne")
	}
	return v.Infinitive
}

type selection struct {
	tenses  []domain.Tense
	persons []domain.Person
}

func newSelection(t domain.Tense, p domain.Person) selection {
	var sel selection
	switch {
	case t == domain.AllTenses:
		for i := 0; i < domain.NumTenses; i++ {
			sel.tenses = append(sel.tenses, domain.Tense(i))
		}
	case t >= 0 && int(t) < domain.NumTenses:
		sel.tenses = []domain.Tense{t}
	}
	switch {
	case p == domain.AllPersons:
		for i := 0; i < domain.NumPersons; i++ {
			sel.persons = append(sel.persons, domain.Person(i))
		}
	case p >= 0 && int(p) < domain.NumPersons:
		sel.persons = []domain.Person{p}
	}
	return sel
}

func (s selection) has(t domain.Tense, p domain.Person) bool {
	return s.hasTense(t) && s.hasPerson(p)
}

func (s selection) hasTense(t domain.Tense) bool {
	for _, x := range s.tenses {
		if x == t {
			return true
		}
	}
	return false
}

func (s selection) hasPerson(p domain.Person) bool {
	for _, x := range s.persons {
		if x == p {
			return true
		}
	}
	return false
}
