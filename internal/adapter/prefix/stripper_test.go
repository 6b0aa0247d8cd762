package prefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var czechPrefixes = []string{
	"beze?", "d[oů]", "nade?", "n[aá]", "ne", "ode?", "ob?e?", "pode?", "přede?",
	"p[oů]", "pře", "př[ií]", "pr[oů]", "roze?", "spolu", "sou", "se?", "[uú]",
	"v[yý]", "vze?", "ve?", "z[aá]", "zne", "znovu", "ze?",
}

func TestNewStripper_Expr(t *testing.T) {
	s, err := NewStripper(czechPrefixes)
	require.NoError(t, err)

	expected := "^((beze?)|(d[oů])|(nade?)|(n[aá])|(ne)|" +
		"(ode?)|(ob?e?)|(pode?)|(přede?)|(p[oů])|(pře)|" +
		"(př[ií])|(pr[oů])|(roze?)|(spolu)|(sou)|(se?)|([uú])|" +
		"(v[yý])|(vze?)|(ve?)|(z[aá])|(zne)|(znovu)|(ze?))"
	assert.Equal(t, expected, s.Expr())
}

func TestStripper_Strip(t *testing.T) {
	s, err := NewStripper(czechPrefixes)
	require.NoError(t, err)

	tests := []struct {
		name     string
		word     string
		prefixes string
		root     string
	}{
		{"no prefixes", "ledne", "", "ledne"},
		{"all prefixes", "nenenenavydopo", "nenenenavydopo", ""},
		{"some prefixes", "nenenenavydopoledne", "nenenenavydopo", "ledne"},
		{"separated prefix stays in root", "nedalekohledpo", "ne", "dalekohledpo"},
		{"optional vowel taken", "odejít", "ode", "jít"},
		{"over-stripping", "dostat", "dos", "tat"},
		{"empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefixes, root := s.Strip(tt.word)
			assert.Equal(t, tt.prefixes, prefixes)
			assert.Equal(t, tt.root, root)
		})
	}
}

func TestStripper_EmptyTable(t *testing.T) {
	s, err := NewStripper(nil)
	require.NoError(t, err)

	prefixes, root := s.Strip("nedělat")
	assert.Empty(t, prefixes)
	assert.Equal(t, "nedělat", root)
}

func TestNewStripper_InvalidPattern(t *testing.T) {
	_, err := NewStripper([]string{"ne", "z[a"})
	assert.Error(t, err)
}
