package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

func sampleTable() domain.Conjugation {
	return domain.Conjugation{
		Word:        "dělat",
		Root:        "dělat",
		Kind:        "Class1_at",
		ClassNumber: 1,
		Ending:      "at",
		Stems:       domain.Stems{Stem: "děl", Present: "děl", Past: "dělal", Imperative: "dělej"},
		Table: [][]string{
			{"dělám", "děláš", "dělá", "děláme", "děláte", "dělají"},
			{"dělal/a jsem", "dělal/a jsi/jseš", "dělal/a/o", "dělali/y jsme", "dělali/y jste", "dělali/y/a"},
			{"budu dělat", "budeš dělat", "bude dělat", "budeme dělat", "budete dělat", "budou dělat"},
			{"", "dělej", "", "dělejme", "dělejte", ""},
			{"dělal/a bych", "dělal/a bys", "dělal/a/o by", "dělali/y bychom", "dělali/y byste", "dělali/y/a by"},
		},
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"", "table", "JSON", "yaml", "yml"} {
		r, err := New(format)
		require.NoError(t, err, format)
		assert.NotNil(t, r, format)
	}

	_, err := New("xml")
	assert.ErrorContains(t, err, "xml")
}

func TestTableRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TableRenderer{}.Render(&buf, []domain.Conjugation{sampleTable()}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "dělat (Class1_at, class 1)\n"))
	for _, want := range []string{"present", "past", "future", "imperative", "conditional", "singular", "plural"} {
		assert.Contains(t, out, want)
	}

	lines := strings.Split(out, "\n")
	var first string
	for _, l := range lines {
		if strings.HasPrefix(l, "1.") {
			first = l
			break
		}
	}
	fields := strings.Fields(first)
	assert.Equal(t, []string{"1.", "dělám", "děláme"}, fields)
	assert.Contains(t, out, "1.  ")
	assert.Regexp(t, `1\.\s+-\s+dělejme`, out)
}

func TestTableRenderer_SkipsEmptyTenses(t *testing.T) {
	c := sampleTable()
	c.Table[domain.Present] = []string{"", "", "", "", "", ""}

	var buf bytes.Buffer
	require.NoError(t, TableRenderer{}.Render(&buf, []domain.Conjugation{c}))
	assert.NotContains(t, buf.String(), "present")
	assert.Contains(t, buf.String(), "future")
}

func TestTableRenderer_TwoResults(t *testing.T) {
	stan := domain.Conjugation{Word: "stát", Kind: "Class4", ClassNumber: 4, Irregular: true, Table: [][]string{{"stanu", "staneš", "stane", "staneme", "stanete", "stanou"}}}
	stoj := domain.Conjugation{Word: "stát", Kind: "Class3", ClassNumber: 3, Irregular: true, Table: [][]string{{"stojím", "stojíš", "stojí", "stojíme", "stojíte", "stojí"}}}

	var buf bytes.Buffer
	require.NoError(t, TableRenderer{}.Render(&buf, []domain.Conjugation{stan, stoj}))
	out := buf.String()
	assert.Contains(t, out, "stát (Class4, class 4) irregular")
	assert.Contains(t, out, "stát (Class3, class 3) irregular")
	assert.Less(t, strings.Index(out, "stanu"), strings.Index(out, "stojím"))
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONRenderer{}.Render(&buf, []domain.Conjugation{sampleTable()}))

	var decoded []domain.Conjugation
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "dělám", decoded[0].Cell(domain.Present, domain.FirstSg))
	assert.Contains(t, buf.String(), `"kind": "Class1_at"`)
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAMLRenderer{}.Render(&buf, []domain.Conjugation{sampleTable()}))

	var decoded []domain.Conjugation
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "dělej", decoded[0].Cell(domain.Imperative, domain.SecondSg))
	assert.Contains(t, buf.String(), "kind: Class1_at")
}

func TestSelect(t *testing.T) {
	in := []domain.Conjugation{sampleTable()}

	out := Select(in, domain.Present, domain.SecondPl)
	assert.Equal(t, "děláte", out[0].Cell(domain.Present, domain.SecondPl))
	assert.Empty(t, out[0].Cell(domain.Present, domain.FirstSg))
	assert.Empty(t, out[0].Cell(domain.Past, domain.SecondPl))
	assert.Equal(t, "dělám", in[0].Cell(domain.Present, domain.FirstSg), "input unchanged")

	out = Select(in, domain.Future, domain.AllPersons)
	assert.Equal(t, in[0].Table[domain.Future], out[0].Table[domain.Future])
	assert.Empty(t, out[0].Cell(domain.Present, domain.FirstSg))

	out = Select(in, domain.AllTenses, domain.AllPersons)
	assert.Equal(t, in[0].Table, out[0].Table)
}
