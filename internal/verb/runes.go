package verb

import "unicode/utf8"

// dropRunes removes the last n runes of s. It returns "" when s is not longer than n.
func dropRunes(s string, n int) string {
	r := []rune(s)
	if n >= len(r) {
		return ""
	}
	return string(r[:len(r)-n])
}

func lastRune(s string) string {
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return string(r)
}

func firstRune(s string) string {
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(r)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
