package verb

import (
	"regexp"
	"strings"

	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/phonology"
	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

// Constructor builds a verb of one class from an infinitive and the ending
// the classifier matched.
type Constructor func(infinitive, ending string, flags domain.Flags) *Verb

var (
	sitRe            = regexp.MustCompile("(sít)$")
	softAtStemRe     = regexp.MustCompile("[smvř]$")
	softerAtStemRe   = regexp.MustCompile("[vm]$")
	clusterPastElRe  = regexp.MustCompile("[dlvř]$")
	clusterPastEelRe = regexp.MustCompile("[vd]$")
	clusterIlRe      = regexp.MustCompile("^((zdít)|(sklít)|(mnít))")
	clusterZnitRe    = regexp.MustCompile("(znít)$")
	syllabicEndRe    = regexp.MustCompile("(" + phonology.SyllabicConsonant + ")$")
	consonantRunRe   = regexp.MustCompile("(" + phonology.Consonant + "){2,}")
)

// NewByt builds the irregular verb být, including prefixed and negated forms.
// It has no present stem; its present row is filled by a correction.
func NewByt(infinitive string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindByt, infinitive, "", flags)
	prefix := dropRunes(infinitive, runeLen("být"))
	v.PastStem = prefix + "byl"
	v.ImperativeStem = prefix + "buď"
	return v
}

// NewClass1At handles -at/-át verbs of class 1, such as dělat.
func NewClass1At(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass1At, infinitive, ending, flags)
	v.Stem = dropRunes(infinitive, runeLen(ending))
	v.PresentStem = v.Stem
	v.PastStem = v.Stem + "al"
	v.ImperativeStem = v.Stem + "ej"
	return v
}

// NewClass2Ityt handles -ít/-ýt verbs such as pít and krýt. The thematic
// vowel is i or y, or e after -s.
func NewClass2Ityt(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass2Ityt, infinitive, ending, flags)
	vowel := "y"
	if strings.HasPrefix(ending, "í") {
		vowel = "i"
	}
	if sitRe.MatchString(infinitive) {
		vowel = "e"
	}
	v.Stem = dropRunes(infinitive, runeLen(ending))
	v.PresentStem = v.Stem + vowel + "j"
	v.PastStem = v.Stem + vowel + "l"
	v.ImperativeStem = v.PresentStem
	return v
}

// NewClass2Ovat handles -ovat verbs such as studovat.
func NewClass2Ovat(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass2Ovat, infinitive, ending, flags)
	v.Stem = dropRunes(infinitive, runeLen(ending))
	v.PresentStem = v.Stem + "uj"
	v.PastStem = v.Stem + "oval"
	v.ImperativeStem = v.PresentStem
	return v
}

// NewClass2Out handles -out verbs other than -nout, such as plout.
func NewClass2Out(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass2Out, infinitive, ending, flags)
	v.Stem = dropRunes(infinitive, runeLen(ending))
	v.PresentStem = v.Stem + "uj"
	v.PastStem = v.Stem + "ul"
	v.ImperativeStem = v.PresentStem
	return v
}

// NewClass2At handles monosyllabic -át verbs such as hrát and smát. The stem
// is the infinitive without -át; the ending keeps the matched consonant.
func NewClass2At(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass2At, infinitive, ending, flags)
	v.Stem = dropRunes(infinitive, 2)
	v.PresentStem = v.Stem + "aj"
	if softAtStemRe.MatchString(v.Stem) {
		v.PresentStem = v.Stem + "ej"
		if softerAtStemRe.MatchString(v.Stem) {
			v.PresentStem = v.Stem + "ěj"
		}
	}
	v.PastStem = v.Stem + "ál"
	v.ImperativeStem = v.PresentStem
	return v
}

// NewClass3Itet handles -it/-et/-ět verbs such as prosit and sedět. The
// imperative stem goes through imperativeLadder.
func NewClass3Itet(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass3Itet, infinitive, ending, flags)
	vowel := firstRune(ending)
	base := dropRunes(infinitive, runeLen(ending))
	v.PresentStem = base
	v.PastStem = base + vowel + "l"
	v.Stem = dropRunes(base, 1) + phonology.SoftConsonantOf(lastRune(base))
	v.ImperativeStem = v.Stem
	v.ImperativeStem = resolveImperative(v, vowel)
	return v
}

// NewClass3Cluster handles -ít verbs whose root ends in a consonant cluster,
// such as ctít and zřít. The stem is the infinitive without -ít.
func NewClass3Cluster(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass3Cluster, infinitive, ending, flags)
	v.Stem = dropRunes(infinitive, 2)
	v.PresentStem = v.Stem

	v.PastStem = v.Stem + "il"
	if clusterPastElRe.MatchString(v.Stem) {
		v.PastStem = v.Stem + "el"
		if clusterPastEelRe.MatchString(v.Stem) {
			v.PastStem = v.Stem + "ěl"
		}
	}
	switch {
	case clusterIlRe.MatchString(infinitive):
		v.PastStem = v.Stem + "il"
	case clusterZnitRe.MatchString(infinitive):
		v.PastStem = v.Stem + "ěl"
	}

	v.ImperativeStem = v.Stem + "i"
	return v
}

// NewClass4Nout handles -nout verbs such as zhasnout and minout.
func NewClass4Nout(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass4Nout, infinitive, ending, flags)
	v.Stem = dropRunes(infinitive, runeLen(ending))
	v.PresentStem = v.Stem + "n"

	v.ImperativeStem = v.Stem + "ň"
	if !phonology.IsVowel(lastRune(v.Stem)) {
		v.ImperativeStem = v.Stem + "ni"
	}

	// tiskl, zhasl; minul and usnul keep -nul.
	v.PastStem = v.Stem + "nul"
	if !(phonology.IsVowel(firstRune(v.PastStem)) || !phonology.ContainsVowel(dropRunes(v.PastStem, runeLen(ending)))) {
		v.PastStem = v.Stem + "l"
	}
	return v
}

// The -st, -zt and -ct classes cut the stem before the final consonant and t,
// shorten its vowel and turn a final i into e.
func sztBase(infinitive string) string {
	base := phonology.Shorten(dropRunes(infinitive, 2))
	if lastRune(base) == "i" {
		base = dropRunes(base, 1) + "e"
	}
	return base
}

// NewClass4St handles -st verbs such as krást (kradu, kradl, kraď).
func NewClass4St(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass4St, infinitive, ending, flags)
	v.Stem = sztBase(infinitive)
	v.PresentStem = v.Stem + "d"
	v.PastStem = v.PresentStem + "l"
	v.ImperativeStem = v.Stem + phonology.SoftConsonantOf(lastRune(v.PresentStem))
	return v
}

// NewClass4Zt handles -zt verbs such as vézt.
func NewClass4Zt(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass4Zt, infinitive, ending, flags)
	v.Stem = sztBase(infinitive)
	v.PresentStem = v.Stem + "z"
	v.PastStem = v.PresentStem + "l"
	v.ImperativeStem = v.PresentStem
	return v
}

// NewClass4Ct handles -ct verbs such as péct and tlouct.
func NewClass4Ct(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass4Ct, infinitive, ending, flags)
	v.Stem = sztBase(infinitive)
	v.PresentStem = v.Stem + "č"
	v.PastStem = v.Stem + "kl"
	if lastRune(v.Stem) == "u" {
		v.PastStem = phonology.Lengthen(v.PastStem)
	}
	v.ImperativeStem = v.PresentStem
	return v
}

// NewClass4Rit handles -řít verbs such as třít.
func NewClass4Rit(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass4Rit, infinitive, ending, flags)
	v.Stem = dropRunes(infinitive, runeLen(ending))
	v.PresentStem = v.Stem + "ř"
	v.PastStem = v.Stem + "řel"
	v.ImperativeStem = v.Stem + "ři"
	return v
}

// NewClass4Apat handles -ápat, -ámat and -ázat verbs such as kázat (kážu, kaž).
func NewClass4Apat(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass4Apat, infinitive, ending, flags)
	v.Stem = dropRunes(infinitive, 2)
	v.PresentStem = v.Stem
	v.PastStem = v.Stem + "al"
	v.ImperativeStem = v.PresentStem + "ej"
	if strings.HasSuffix(ending, "zat") {
		v.PresentStem = dropRunes(v.PresentStem, 1) + "ž"
		v.ImperativeStem = phonology.Shorten(v.PresentStem)
	}
	return v
}

// NewClass4Cluster handles -at/-át verbs with a consonant cluster before the
// ending, such as brát, zvát and lhát.
func NewClass4Cluster(infinitive, ending string, flags domain.Flags) *Verb {
	v := newVerb(domain.KindClass4Cluster, infinitive, ending, flags)
	v.Stem = dropRunes(infinitive, 2)
	v.PresentStem = v.Stem
	switch {
	case lastRune(v.Stem) == "h":
		v.PresentStem = dropRunes(v.Stem, 1) + "ž"
	case strings.HasSuffix(v.Stem, "sl"):
		v.PresentStem = dropRunes(v.Stem, 2) + "šl"
	case syllabicEndRe.MatchString(v.Stem):
		v.PresentStem = dropRunes(v.Stem, 1) + "e" + lastRune(v.Stem)
	}

	v.PastStem = v.Stem + "al"
	v.ImperativeStem = v.PresentStem
	if consonantRunRe.MatchString(v.PresentStem) {
		v.ImperativeStem += "i"
	}
	return v
}
