package phonology

import (
	"regexp"
	"strings"
)

var (
	hardToSoft  = map[string]string{"k": "c", "d": "ď", "g": "z", "h": "z", "n": "ň", "r": "ř", "ch": "š", "t": "ť"}
	softToHard  = map[string]string{"c": "k", "ď": "d", "z": "h", "ň": "n", "ř": "r", "š": "ch", "ť": "t"}
	longToShort = map[string]string{"á": "a", "é": "e", "í": "i", "ů": "o", "ou": "u", "ý": "y", "ú": "u"}
	shortToLong = map[string]string{"a": "á", "e": "é", "i": "í", "o": "ů", "u": "ou", "y": "ý"}
)

func lookup(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

// ShortVowelOf maps a long vowel to its short counterpart. "ou" maps to "u".
// Anything else is returned unchanged.
func ShortVowelOf(s string) string { return lookup(longToShort, s) }

// LongVowelOf maps a short vowel to its long counterpart. "u" maps to "ou", never "ú".
func LongVowelOf(s string) string { return lookup(shortToLong, s) }

// HardConsonantOf maps a soft consonant to its hard counterpart. "z" maps to "h".
func HardConsonantOf(s string) string { return lookup(softToHard, s) }

// SoftConsonantOf maps a hard consonant (or "ch") to its soft counterpart.
func SoftConsonantOf(s string) string { return lookup(hardToSoft, s) }

// PatternType selects which letters ConvertLastMatch looks for and how it rewrites them.
type PatternType int

const (
	// Soft hardens a soft consonant.
	Soft PatternType = iota
	// Hard softens a hard consonant or "ch".
	Hard
	// Short lengthens a short vowel.
	Short
	// Long shortens a long vowel.
	Long
)

type conversion struct {
	re      *regexp.Regexp
	convert func(string) string
}

var conversions = map[PatternType]conversion{
	Soft:  {regexp.MustCompile(SoftConsonant), HardConsonantOf},
	Hard:  {regexp.MustCompile("(ch)|" + HardConsonant), SoftConsonantOf},
	Short: {regexp.MustCompile(ShortVowel), LongVowelOf},
	Long:  {regexp.MustCompile(LongVowel), ShortVowelOf},
}

// ConvertLastMatch rewrites the last phoneme of word that matches the pattern type.
//
// The search runs over the reversed phoneme sequence, so a match that spans
// only part of a digraph (the "s" of "st") is not a phoneme and the word is
// returned unchanged. An earlier phoneme is converted when the final ones do
// not match at all.
func ConvertLastMatch(word string, pt PatternType) string {
	conv, ok := conversions[pt]
	if !ok {
		return word
	}

	phonemes := Phonemes(word)
	reverse(phonemes)

	match := conv.re.FindString(strings.Join(phonemes, ""))
	if match == "" {
		return word
	}
	idx := indexOf(phonemes, match)
	if idx < 0 {
		return word
	}
	phonemes[idx] = conv.convert(match)
	reverse(phonemes)
	return strings.Join(phonemes, "")
}

// Lengthen turns the last short vowel of stem into its long form.
func Lengthen(stem string) string { return ConvertLastMatch(stem, Short) }

// Shorten turns the last long vowel of stem into its short form.
func Shorten(stem string) string { return ConvertLastMatch(stem, Long) }

// Soften turns the last hard consonant of stem into its soft form.
func Soften(stem string) string { return ConvertLastMatch(stem, Hard) }

// Harden turns the last soft consonant of stem into its hard form.
func Harden(stem string) string { return ConvertLastMatch(stem, Soft) }

// FixSpelling applies the orthographic rule for a soft consonant followed by
// i, í or ě: ď, ť and ň lose their caron, and every other soft consonant
// turns a following ě into e.
func FixSpelling(word string) string {
	return spellingRe.ReplaceAllStringFunc(word, func(pair string) string {
		r := []rune(pair)
		consonant, vowel := string(r[0]), string(r[1])
		if carrierRe.MatchString(consonant) {
			return Harden(consonant) + vowel
		}
		if vowel == "ě" {
			vowel = "e"
		}
		return consonant + vowel
	})
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
