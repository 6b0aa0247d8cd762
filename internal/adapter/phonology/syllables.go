package phonology

// Syllable is one segment of a word. Syllabic is set when the segment is
// carried by r or l instead of a vowel.
type Syllable struct {
	Text     string
	Syllabic bool
}

// Syllables is a word split into syllables.
type Syllables []Syllable

// Split segments word into syllables. A vowel closes the open syllable when
// one is already voiced; a consonant closes it after a vowel or a syllabic
// consonant. Trailing consonants attach to the final syllable.
func Split(word string) Syllables {
	var (
		out         Syllables
		current     string
		hasVowel    bool
		hasSyllabic bool
	)
	flush := func() {
		out = append(out, Syllable{Text: current, Syllabic: hasSyllabic})
		current, hasVowel, hasSyllabic = "", false, false
	}

	for _, ph := range Phonemes(word) {
		switch {
		case IsVowel(ph):
			if hasVowel {
				flush()
			}
			current += ph
			hasVowel, hasSyllabic = true, false
		case IsSyllabic(ph):
			hasSyllabic = !hasVowel
			current += ph
		case IsConsonant(ph):
			if hasVowel || hasSyllabic {
				flush()
			}
			current += ph
		}
	}

	if current != "" {
		if !hasVowel && !hasSyllabic && len(out) > 0 {
			out[len(out)-1].Text += current
		} else {
			out = append(out, Syllable{Text: current})
		}
	}
	return out
}

func (s Syllables) at(idx int) (Syllable, bool) {
	if idx < 0 {
		idx += len(s)
	}
	if idx < 0 || idx >= len(s) {
		return Syllable{}, false
	}
	return s[idx], true
}

// Inspect returns the text of the syllable at idx. Negative indices count
// from the end. Out-of-range indices yield "".
func (s Syllables) Inspect(idx int) string {
	syl, _ := s.at(idx)
	return syl.Text
}

// IsSyllabic reports whether the syllable at idx is carried by a syllabic consonant.
func (s Syllables) IsSyllabic(idx int) bool {
	syl, _ := s.at(idx)
	return syl.Syllabic
}

// ContainsCluster reports whether the syllable at idx has a run of three to
// five non-syllabic consonants.
func (s Syllables) ContainsCluster(idx int) bool {
	return clusterRe.MatchString(s.Inspect(idx))
}

// ContainsVowel reports whether the syllable at idx has a vowel.
func (s Syllables) ContainsVowel(idx int) bool {
	return ContainsVowel(s.Inspect(idx))
}
