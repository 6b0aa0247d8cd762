// Package prefix strips verbal prefixes from the front of an infinitive.
package prefix

import (
	"fmt"
	"regexp"
	"strings"
)

// Stripper removes consecutive prefixes from a word.
//
// Stripping is greedy: "ne" is removed from "nést" as readily as from
// "nedělat", and callers that need the lexical root must treat the result as
// a heuristic.
type Stripper struct {
	expr string
	re   *regexp.Regexp
}

// NewStripper compiles the alternatives into ^((alt1)|(alt2)|...). Order
// matters, since the first alternative that matches wins.
func NewStripper(alternatives []string) (*Stripper, error) {
	if len(alternatives) == 0 {
		return &Stripper{}, nil
	}

	groups := make([]string, len(alternatives))
	for i, alt := range alternatives {
		groups[i] = "(" + alt + ")"
	}
	expr := "^(" + strings.Join(groups, "|") + ")"

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile prefix table: %w", err)
	}
	return &Stripper{expr: expr, re: re}, nil
}

// Expr returns the combined pattern.
func (s *Stripper) Expr() string {
	return s.expr
}

// Strip peels prefixes off word until none match and returns them
// concatenated together with what is left.
func (s *Stripper) Strip(word string) (prefixes, root string) {
	if s.re == nil {
		return "", word
	}

	var b strings.Builder
	for {
		p := lastGroup(s.re.FindStringSubmatch(word))
		if p == "" {
			break
		}
		b.WriteString(p)
		word = word[len(p):]
	}
	return b.String(), word
}

func lastGroup(m []string) string {
	for i := len(m) - 1; i >= 1; i-- {
		if m[i] != "" {
			return m[i]
		}
	}
	return ""
}
