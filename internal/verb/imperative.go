package verb

import (
	"regexp"

	"github.com/svhawkins/czech-verb-conjugator/internal/adapter/phonology"
)

// imperativeRule is one step of the class 3 -it/-et/-ět imperative ladder.
// The first rule whose predicate holds picks the stem; when none does, the
// softened stem is used as is.
type imperativeRule struct {
	name string
	when func(v *Verb, syl phonology.Syllables) bool
	stem func(v *Verb, vowel string) string
}

var (
	slzetRe       = regexp.MustCompile("slzet$")
	pustitRe      = regexp.MustCompile("(pustit|půjčit)$")
	chvetRe       = regexp.MustCompile("(chvět|ouštět)$")
	skripetRe     = regexp.MustCompile("(skřípět)$")
	lpetRe        = regexp.MustCompile("(lpět)$")
	neutralEtRe   = regexp.MustCompile(phonology.NeutralConsonant + "ět$")
	clusterItetRe = regexp.MustCompile("(" + phonology.ConsonantOrDigraph + "){2}[ieě]t$")
	longVowelEtRe = regexp.MustCompile("((" + phonology.LongVowel + ")(" + phonology.ConsonantOrDigraph + "){1}[eě]t$)")
	longVowelItRe = regexp.MustCompile("(" + phonology.LongVowel + "(" + phonology.Consonant + "){1}" + "it$)")
)

func matches(re *regexp.Regexp) func(*Verb, phonology.Syllables) bool {
	return func(v *Verb, _ phonology.Syllables) bool { return re.MatchString(v.Infinitive) }
}

var imperativeLadder = []imperativeRule{
	{"slzet", matches(slzetRe), func(v *Verb, _ string) string { return v.Stem + "ej" }},
	{"pustit", matches(pustitRe), func(v *Verb, _ string) string { return v.Stem }},
	{"chvět", matches(chvetRe), func(v *Verb, _ string) string { return v.PresentStem + "ěj" }},
	{"skřípět", matches(skripetRe), func(v *Verb, _ string) string { return phonology.Shorten(v.Stem) }},
	{"lpět", matches(lpetRe), func(v *Verb, _ string) string { return v.Stem + "i" }},
	{
		name: "neutral consonant before -ět",
		when: func(v *Verb, syl phonology.Syllables) bool {
			return neutralEtRe.MatchString(v.Infinitive) && !syl.IsSyllabic(-1) && syl.ContainsVowel(-1)
		},
		stem: func(v *Verb, _ string) string { return v.PresentStem + "ěj" },
	},
	{
		name: "consonant cluster",
		when: func(v *Verb, syl phonology.Syllables) bool {
			return (clusterItetRe.MatchString(v.Infinitive) && !syl.IsSyllabic(-1)) ||
				(syl.IsSyllabic(-1) && syl.ContainsCluster(-1))
		},
		stem: func(v *Verb, _ string) string { return v.PresentStem + "i" },
	},
	{
		name: "long vowel and consonant before -et/-ět",
		when: matches(longVowelEtRe),
		stem: func(v *Verb, vowel string) string {
			if vowel == "ě" {
				return v.PresentStem + vowel + "j"
			}
			return v.Stem + vowel + "j"
		},
	},
	{
		name: "long vowel and consonant before -it",
		when: matches(longVowelItRe),
		stem: func(v *Verb, _ string) string { return phonology.Shorten(v.Stem) },
	},
}

func resolveImperative(v *Verb, vowel string) string {
	syl := phonology.Split(v.PresentStem)
	for _, rule := range imperativeLadder {
		if rule.when(v, syl) {
			return rule.stem(v, vowel)
		}
	}
	return v.Stem
}
