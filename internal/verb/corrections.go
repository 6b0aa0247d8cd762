package verb

import (
	"regexp"
	"strings"

	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/phonology"
	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

// correction patches cells that the per-cell formula gets wrong for a kind.
// It only touches cells inside the selection passed to Conjugate.
type correction func(v *Verb, sel selection)

var (
	chtitRe           = regexp.MustCompile("chtít$")
	clusterPluralRe   = regexp.MustCompile("[dtvn]$")
	clusterAtPluralRe = regexp.MustCompile("[dtvnpb]$")
)

var corrections = map[domain.Kind][]correction{
	domain.KindByt:           {bytPresentRow},
	domain.KindClass2:        {chtitPresent},
	domain.KindClass2Ityt:    {chtitPresent},
	domain.KindClass2Ovat:    {chtitPresent},
	domain.KindClass2Out:     {chtitPresent},
	domain.KindClass2At:      {chtitPresent},
	domain.KindClass3:        {ediSpelling},
	domain.KindClass3Cluster: {softPluralImperative(clusterPluralRe)},
	domain.KindClass4Nout:    {noutPluralImperative},
	domain.KindClass4Rit:     {ritPluralImperative},
	domain.KindClass4Cluster: {clusterAtPluralImperative},
}

func (v *Verb) applyCorrections(sel selection) {
	for _, fix := range corrections[v.kind] {
		fix(v, sel)
	}
	if v.fromLexicon {
		vowelPluralImperative(v, sel)
	}
}

// bytPresentRow writes the present of být, which has no stem: jsem, jseš/jsi,
// je. The negated third person singular is není.
func bytPresentRow(v *Verb, sel selection) {
	if v.flags.Perfective || !sel.hasTense(domain.Present) {
		return
	}
	neg := ""
	if v.negative {
		neg = "ne"
	}
	for _, p := range sel.persons {
		ending := bytPresent[p]
		if v.negative && p == domain.ThirdSg {
			ending = "ní"
		}
		v.table[domain.Present][p] = neg + ending
	}
}

// chtitPresent replaces the regular chtěji/u and chtějí with chci and chtějí.
func chtitPresent(v *Verb, sel selection) {
	if v.flags.Perfective || !chtitRe.MatchString(v.Infinitive) {
		return
	}
	if sel.has(domain.Present, domain.FirstSg) {
		cell := v.table[domain.Present][domain.FirstSg]
		v.table[domain.Present][domain.FirstSg] = dropRunes(cell, 8) + "chci"
	}
	if sel.has(domain.Present, domain.ThirdPl) {
		cell := v.table[domain.Present][domain.ThirdPl]
		v.table[domain.Present][domain.ThirdPl] = dropRunes(cell, 6) + "chtějí"
	}
}

// ediSpelling fixes the -ědí third person plural after a soft consonant (jedí).
func ediSpelling(v *Verb, sel selection) {
	for _, t := range []domain.Tense{domain.Present, domain.Future} {
		if sel.has(t, domain.ThirdPl) && v.paradigm.endings[t][domain.ThirdPl] == ediEnding {
			v.table[t][domain.ThirdPl] = phonology.FixSpelling(v.table[t][domain.ThirdPl])
		}
	}
}

func setPluralImperative(v *Verb, sel selection, base string) {
	if sel.has(domain.Imperative, domain.FirstPl) {
		v.table[domain.Imperative][domain.FirstPl] = base + "me"
	}
	if sel.has(domain.Imperative, domain.SecondPl) {
		v.table[domain.Imperative][domain.SecondPl] = base + "te"
	}
}

// softPluralImperative swaps the final i of the imperative stem for ě after
// a stem matching re, and for e otherwise.
func softPluralImperative(re *regexp.Regexp) correction {
	return func(v *Verb, sel selection) {
		vowel := "e"
		if re.MatchString(v.Stem) {
			vowel = "ě"
		}
		setPluralImperative(v, sel, dropRunes(v.ImperativeStem, 1)+vowel)
	}
}

func clusterAtPluralImperative(v *Verb, sel selection) {
	if lastRune(v.ImperativeStem) != "i" {
		return
	}
	softPluralImperative(clusterAtPluralRe)(v, sel)
}

// noutPluralImperative: zhasni gives zhasněme, zhasněte.
func noutPluralImperative(v *Verb, sel selection) {
	if !strings.HasSuffix(v.ImperativeStem, "ni") {
		return
	}
	setPluralImperative(v, sel, dropRunes(v.ImperativeStem, 1)+"ě")
}

// ritPluralImperative: tři gives třeme, třete.
func ritPluralImperative(v *Verb, sel selection) {
	setPluralImperative(v, sel, dropRunes(v.ImperativeStem, 1)+"e")
}

// vowelPluralImperative handles lexicon imperatives that end in a vowel:
// spi gives spěme, vezmi gives vezměte.
func vowelPluralImperative(v *Verb, sel selection) {
	if !phonology.IsVowel(lastRune(v.ImperativeStem)) {
		return
	}
	setPluralImperative(v, sel, phonology.FixSpelling(dropRunes(v.ImperativeStem, 1)+"ě"))
}
