package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

func TestDefault_IrregularRows(t *testing.T) {
	irregular := Default().Irregular()

	tests := []struct {
		idx  int
		want domain.IrregularEntry
	}{
		{13, domain.IrregularEntry{Pattern: "jít", Class: 4, PresentStem: "jd", PastStem: "šel", ImperativeStem: "pojď"}},
		{17, domain.IrregularEntry{Pattern: "spát", Class: 3, PresentStem: "sp", PastStem: "spal", ImperativeStem: "spi"}},
		{32, domain.IrregularEntry{Pattern: "mít", Class: 1, PresentStem: "m", PastStem: "měl", ImperativeStem: "měj"}},
		{43, domain.IrregularEntry{Pattern: "vzít", Class: 4, PresentStem: "vezm", PastStem: "vzal", ImperativeStem: "vezmi"}},
	}
	require.Greater(t, len(irregular), 43)
	for _, tt := range tests {
		assert.Equal(t, tt.want, irregular[tt.idx], "row %d", tt.idx)
	}
}

func TestDefault_Prefixes(t *testing.T) {
	prefixes := Default().Prefixes()
	require.Len(t, prefixes, 25)
	assert.Equal(t, "beze?", prefixes[0])
	assert.Equal(t, "ze?", prefixes[len(prefixes)-1])
}

func TestLexicon_ConcretePrefix(t *testing.T) {
	lex := Default()

	p, ok := lex.ConcretePrefix("jít")
	assert.True(t, ok)
	assert.Equal(t, "pů", p)

	p, ok = lex.ConcretePrefix("nejet")
	assert.True(t, ok)
	assert.Equal(t, "po", p)

	_, ok = lex.ConcretePrefix("dojet")
	assert.False(t, ok)
}

func TestLexicon_AccessorsReturnCopies(t *testing.T) {
	lex := Default()

	irregular := lex.Irregular()
	irregular[0].Pattern = "changed"
	assert.Equal(t, "být", lex.Irregular()[0].Pattern)

	prefixes := lex.Prefixes()
	prefixes[0] = "changed"
	assert.Equal(t, "beze?", lex.Prefixes()[0])
}

func TestParseIrregular(t *testing.T) {
	input := `# comment
mít,1,m,měl,měj

 vzít , 4 , vezm , vzal , vezmi
`
	entries, err := ParseIrregular(strings.NewReader(input), "test.txt")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "vzít", entries[1].Pattern)
	assert.Equal(t, 4, entries[1].Class)
	assert.Equal(t, "vezmi", entries[1].ImperativeStem)
}

func TestParseIrregular_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"too few fields", "mít,1,m,měl", 1},
		{"class not a number", "# header\nmít,x,m,měl,měj", 2},
		{"class out of range", "mít,5,m,měl,měj", 1},
		{"empty pattern", ",1,m,měl,měj", 1},
		{"invalid regex", "m(ít,1,m,měl,měj", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIrregular(strings.NewReader(tt.input), "bad.txt")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRow))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "bad.txt", perr.File)
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}

func TestParseConcrete_Malformed(t *testing.T) {
	_, err := ParseConcrete(strings.NewReader("jít"), "concrete.txt")
	assert.ErrorIs(t, err, ErrMalformedRow)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	irregularPath := filepath.Join(dir, "irregular.txt")
	require.NoError(t, os.WriteFile(irregularPath, []byte("mít,1,m,měl,měj\n"), 0644))

	lex, err := LoadFiles(irregularPath, "", "")
	require.NoError(t, err)

	assert.Len(t, lex.Irregular(), 1)
	assert.Equal(t, Default().Prefixes(), lex.Prefixes())
	assert.Equal(t, Default().Concrete(), lex.Concrete())
}

func TestLoadFiles_Missing(t *testing.T) {
	_, err := LoadFiles(filepath.Join(t.TempDir(), "nope.txt"), "", "")
	assert.Error(t, err)
}
