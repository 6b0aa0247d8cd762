// Package phonology holds the Czech orthography helpers used to derive verb
// stems: character classes, vowel and consonant alternations, and syllables.
package phonology

import "regexp"

// Character-class patterns. They are composed by plain concatenation, so the
// alternations keep the exact precedence the stem rules were written against.
const (
	ShortVowel           = "[aeiouy]"
	LongVowel            = "(ou)|[áéíóúůý]"
	SoftVowel            = "[ěií]"
	hardNonSyllabic      = "dghknst"
	HardConsonant        = "[" + hardNonSyllabic + "r]"
	NeutralConsonant     = "[bmpvfqwx]"
	softNonSyllabic      = "cčďjňřšťzž"
	SoftConsonant        = "[" + softNonSyllabic + "l]"
	SyllabicConsonant    = "[rl]"
	Digraph              = "(ch)|(st)|(št)|(ct)|(čt)"
	Consonant            = HardConsonant + "|" + NeutralConsonant + "|" + SoftConsonant
	ConsonantNonSyllabic = Digraph + "|" + NeutralConsonant + "|[" + softNonSyllabic + "]|[" + hardNonSyllabic + "]"
	ConsonantOrDigraph   = Digraph + "|" + Consonant
	Vowel                = LongVowel + "|" + ShortVowel + "|" + SoftVowel
	Phoneme              = "(" + ConsonantOrDigraph + "|" + Vowel + ")"
	Cluster              = "(" + ConsonantNonSyllabic + "){3,5}"
)

var (
	vowelRe     = regexp.MustCompile(Vowel)
	consonantRe = regexp.MustCompile(Consonant)
	syllabicRe  = regexp.MustCompile(SyllabicConsonant)
	phonemeRe   = regexp.MustCompile(Phoneme)
	clusterRe   = regexp.MustCompile(Cluster)
	spellingRe  = regexp.MustCompile(SoftConsonant + SoftVowel)
	carrierRe   = regexp.MustCompile("[ďťň]")
)

// IsVowel reports whether s contains a vowel. It is meant for single letters
// and the digraph "ou".
func IsVowel(s string) bool {
	return vowelRe.MatchString(s)
}

// IsConsonant reports whether s contains a consonant letter.
func IsConsonant(s string) bool {
	return consonantRe.MatchString(s)
}

// IsSyllabic reports whether s contains r or l, the consonants that can carry a syllable.
func IsSyllabic(s string) bool {
	return syllabicRe.MatchString(s)
}

// Vowels keeps only the vowel letters of s, in order.
func Vowels(s string) string {
	return filterRunes(s, IsVowel)
}

// Consonants keeps only the consonant letters of s, in order.
func Consonants(s string) string {
	return filterRunes(s, IsConsonant)
}

// ContainsVowel reports whether any letter of s is a vowel.
func ContainsVowel(s string) bool {
	return Vowels(s) != ""
}

// Phonemes splits word into phonemes, preferring digraphs over single letters.
// Characters outside the Czech letter classes are dropped.
func Phonemes(word string) []string {
	return phonemeRe.FindAllString(word, -1)
}

func filterRunes(s string, keep func(string) bool) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if keep(string(r)) {
			out = append(out, r)
		}
	}
	return string(out)
}
