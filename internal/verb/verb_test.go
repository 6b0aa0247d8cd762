package verb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

var (
	imperfective = domain.Flags{}
	perfective   = domain.Flags{Perfective: true}
)

func motion(prefix string) domain.Flags {
	return domain.Flags{Motion: domain.Motion{Enabled: true, Prefix: prefix}}
}

func conjugated(v *Verb) domain.Table {
	v.Conjugate(domain.AllTenses, domain.AllPersons)
	return v.Table()
}

func TestBaseVerb(t *testing.T) {
	tb := conjugated(New("foobar", "bar", imperfective))

	assert.Equal(t, []string{"", "", "", "", "", ""}, tb.Row(domain.Present))
	assert.Equal(t, []string{"/a jsem", "/a jsi/jseš", "/a/o", "i/y jsme", "i/y jste", "i/y/a"}, tb.Row(domain.Past))
	assert.Equal(t, []string{
		"budu foobar", "budeš foobar", "bude foobar",
		"budeme foobar", "budete foobar", "budou foobar",
	}, tb.Row(domain.Future))
	assert.Equal(t, []string{"", "", "", "me", "te", ""}, tb.Row(domain.Imperative))
	assert.Equal(t, []string{"/a bych", "/a bys", "/a/o by", "i/y bychom", "i/y byste", "i/y/a by"}, tb.Row(domain.Conditional))
}

func TestEmptyVerbFuture(t *testing.T) {
	tb := conjugated(New("", "", imperfective))
	assert.Equal(t, []string{"budu", "budeš", "bude", "budeme", "budete", "budou"}, tb.Row(domain.Future))
}

func TestByt(t *testing.T) {
	v := NewByt("být", imperfective)
	assert.Equal(t, domain.KindByt, v.Kind())
	assert.Equal(t, 0, v.ClassNumber())

	tb := conjugated(v)
	assert.Equal(t, []string{"jsem", "jseš/jsi", "je", "jsme", "jste", "jsou"}, tb.Row(domain.Present))
	assert.Equal(t, []string{"byl/a jsem", "byl/a jsi/jseš", "byl/a/o", "byli/y jsme", "byli/y jste", "byli/y/a"}, tb.Row(domain.Past))
	assert.Equal(t, []string{"budu", "budeš", "bude", "budeme", "budete", "budou"}, tb.Row(domain.Future))
	assert.Equal(t, []string{"", "buď", "", "buďme", "buďte", ""}, tb.Row(domain.Imperative))
	assert.Equal(t, []string{"byl/a bych", "byl/a bys", "byl/a/o by", "byli/y bychom", "byli/y byste", "byli/y/a by"}, tb.Row(domain.Conditional))
}

func TestBytNegated(t *testing.T) {
	v := NewByt("nebýt", imperfective)
	assert.True(t, v.IsNegative())

	tb := conjugated(v)
	assert.Equal(t, []string{"nejsem", "nejseš/jsi", "není", "nejsme", "nejste", "nejsou"}, tb.Row(domain.Present))
	assert.Equal(t, "nebyl/a jsem", tb.At(domain.Past, domain.FirstSg))
	assert.Equal(t, []string{"nebudu", "nebudeš", "nebude", "nebudeme", "nebudete", "nebudou"}, tb.Row(domain.Future))
	assert.Equal(t, "nebuď", tb.At(domain.Imperative, domain.SecondSg))
}

func TestBytFlags(t *testing.T) {
	t.Run("perfective", func(t *testing.T) {
		tb := conjugated(NewByt("být", perfective))
		assert.Equal(t, []string{"", "", "", "", "", ""}, tb.Row(domain.Present))
		assert.Equal(t, []string{"jsem", "jseš/jsi", "je", "jsme", "jste", "jsou"}, tb.Row(domain.Future))
	})
	t.Run("motion", func(t *testing.T) {
		tb := conjugated(NewByt("být", motion("po")))
		assert.Equal(t, []string{"jsem", "jseš/jsi", "je", "jsme", "jste", "jsou"}, tb.Row(domain.Present))
		assert.Equal(t, []string{"pojsem", "pojseš/jsi", "poje", "pojsme", "pojste", "pojsou"}, tb.Row(domain.Future))
	})
}

func TestClass1At(t *testing.T) {
	v := NewClass1At("dělat", "at", imperfective)
	assert.Equal(t, domain.KindClass1At, v.Kind())
	assert.Equal(t, 1, v.ClassNumber())
	assert.Equal(t, domain.Stems{Stem: "děl", Present: "děl", Past: "dělal", Imperative: "dělej"}, v.Stems())

	tb := conjugated(v)
	assert.Equal(t, []string{"dělám", "děláš", "dělá", "děláme", "děláte", "dělají"}, tb.Row(domain.Present))
	assert.Equal(t, "dělal/a jsem", tb.At(domain.Past, domain.FirstSg))
	assert.Equal(t, "budu dělat", tb.At(domain.Future, domain.FirstSg))
	assert.Equal(t, []string{"", "dělej", "", "dělejme", "dělejte", ""}, tb.Row(domain.Imperative))
	assert.Equal(t, "dělali/y bychom", tb.At(domain.Conditional, domain.FirstPl))
}

func TestClass1AtShortStem(t *testing.T) {
	tb := conjugated(NewClass1At("bát", "át", imperfective))
	assert.Equal(t, []string{"bám", "báš", "bá", "báme", "báte", "bají"}, tb.Row(domain.Present))
	assert.Equal(t, "bal/a jsem", tb.At(domain.Past, domain.FirstSg))
	assert.Equal(t, "budu bát", tb.At(domain.Future, domain.FirstSg))
	assert.Equal(t, []string{"", "bej", "", "bejme", "bejte", ""}, tb.Row(domain.Imperative))
}

func TestNegatedFuture(t *testing.T) {
	tb := conjugated(NewClass1At("nedělat", "at", imperfective))
	assert.Equal(t, "nebudu dělat", tb.At(domain.Future, domain.FirstSg))
	assert.Equal(t, "nedělám", tb.At(domain.Present, domain.FirstSg))

	tb = conjugated(NewClass2Ovat("nestudovat", "ovat", imperfective))
	assert.Equal(t, "nebudu studovat", tb.At(domain.Future, domain.FirstSg))
}

func TestPerfective(t *testing.T) {
	tb := conjugated(NewClass1At("udělat", "at", perfective))
	assert.Equal(t, []string{"", "", "", "", "", ""}, tb.Row(domain.Present))
	assert.Equal(t, []string{"udělám", "uděláš", "udělá", "uděláme", "uděláte", "udělají"}, tb.Row(domain.Future))
	assert.Equal(t, "udělal/a jsem", tb.At(domain.Past, domain.FirstSg))
}

func TestClass2(t *testing.T) {
	tests := []struct {
		name        string
		ctor        Constructor
		infinitive  string
		ending      string
		stems       domain.Stems
		present1sg  string
		present3pl  string
		imperative  string
		imperative1 string
	}{
		{"pít", NewClass2Ityt, "pít", "ít", domain.Stems{Stem: "p", Present: "pij", Past: "pil", Imperative: "pij"}, "piji/u", "pijí", "pij", "pijme"},
		{"krýt", NewClass2Ityt, "krýt", "ýt", domain.Stems{Stem: "kr", Present: "kryj", Past: "kryl", Imperative: "kryj"}, "kryji/u", "kryjí", "kryj", "kryjme"},
		{"sít", NewClass2Ityt, "sít", "ít", domain.Stems{Stem: "s", Present: "sej", Past: "sel", Imperative: "sej"}, "seji/u", "sejí", "sej", "sejme"},
		{"studovat", NewClass2Ovat, "studovat", "ovat", domain.Stems{Stem: "stud", Present: "studuj", Past: "studoval", Imperative: "studuj"}, "studuji/u", "studují", "studuj", "studujme"},
		{"plout", NewClass2Out, "plout", "out", domain.Stems{Stem: "pl", Present: "pluj", Past: "plul", Imperative: "pluj"}, "pluji/u", "plují", "pluj", "plujme"},
		{"hrát", NewClass2At, "hrát", "rát", domain.Stems{Stem: "hr", Present: "hraj", Past: "hrál", Imperative: "hraj"}, "hraji/u", "hrají", "hraj", "hrajme"},
		{"smát", NewClass2At, "smát", "mát", domain.Stems{Stem: "sm", Present: "směj", Past: "smál", Imperative: "směj"}, "směji/u", "smějí", "směj", "smějme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.ctor(tt.infinitive, tt.ending, imperfective)
			assert.Equal(t, 2, v.ClassNumber())
			assert.Equal(t, tt.stems, v.Stems())

			tb := conjugated(v)
			assert.Equal(t, tt.present1sg, tb.At(domain.Present, domain.FirstSg))
			assert.Equal(t, tt.present3pl, tb.At(domain.Present, domain.ThirdPl))
			assert.Equal(t, tt.imperative, tb.At(domain.Imperative, domain.SecondSg))
			assert.Equal(t, tt.imperative1, tb.At(domain.Imperative, domain.FirstPl))
		})
	}
}

func TestClass3ItetImperative(t *testing.T) {
	tests := []struct {
		infinitive string
		ending     string
		want       string
	}{
		{"mluvit", "it", "mluv"},
		{"vrátit", "it", "vrať"},
		{"sedět", "ět", "seď"},
		{"trpět", "ět", "trp"},
		{"umět", "ět", "uměj"},
		{"čistit", "it", "čisti"},
		{"pálit", "it", "pal"},
	}
	for _, tt := range tests {
		t.Run(tt.infinitive, func(t *testing.T) {
			v := NewClass3Itet(tt.infinitive, tt.ending, imperfective)
			assert.Equal(t, domain.KindClass3Itet, v.Kind())
			assert.Equal(t, tt.want, v.ImperativeStem)
		})
	}
}

func TestClass3Itet(t *testing.T) {
	tb := conjugated(NewClass3Itet("mluvit", "it", imperfective))
	assert.Equal(t, []string{"mluvím", "mluvíš", "mluví", "mluvíme", "mluvíte", "mluví"}, tb.Row(domain.Present))
	assert.Equal(t, "mluvil/a jsem", tb.At(domain.Past, domain.FirstSg))
	assert.Equal(t, "budu mluvit", tb.At(domain.Future, domain.FirstSg))
	assert.Equal(t, []string{"", "mluv", "", "mluvme", "mluvte", ""}, tb.Row(domain.Imperative))

	tb = conjugated(NewClass3Itet("sedět", "ět", imperfective))
	assert.Equal(t, "seděl/a jsem", tb.At(domain.Past, domain.FirstSg))
}

func TestClass3Cluster(t *testing.T) {
	tests := []struct {
		infinitive string
		past       string
		imperative string
		plural     string
	}{
		{"ctít", "ctil", "cti", "ctěme"},
		{"bdít", "bděl", "bdi", "bděme"},
		{"tlít", "tlel", "tli", "tleme"},
		{"zřít", "zřel", "zři", "zřeme"},
	}
	for _, tt := range tests {
		t.Run(tt.infinitive, func(t *testing.T) {
			v := NewClass3Cluster(tt.infinitive, "ít", imperfective)
			assert.Equal(t, tt.past, v.PastStem)
			assert.Equal(t, tt.imperative, v.ImperativeStem)

			tb := conjugated(v)
			assert.Equal(t, tt.plural, tb.At(domain.Imperative, domain.FirstPl))
		})
	}

	tb := conjugated(NewClass3Cluster("ctít", "ít", imperfective))
	assert.Equal(t, "ctím", tb.At(domain.Present, domain.FirstSg))
}

func TestClass4Nout(t *testing.T) {
	v := NewClass4Nout("zhasnout", "nout", imperfective)
	assert.Equal(t, domain.Stems{Stem: "zhas", Present: "zhasn", Past: "zhasl", Imperative: "zhasni"}, v.Stems())
	tb := conjugated(v)
	assert.Equal(t, "zhasnu", tb.At(domain.Present, domain.FirstSg))
	assert.Equal(t, "zhasnou", tb.At(domain.Present, domain.ThirdPl))
	assert.Equal(t, []string{"", "zhasni", "", "zhasněme", "zhasněte", ""}, tb.Row(domain.Imperative))

	v = NewClass4Nout("minout", "nout", imperfective)
	assert.Equal(t, "minul", v.PastStem)
	tb = conjugated(v)
	assert.Equal(t, []string{"", "miň", "", "miňme", "miňte", ""}, tb.Row(domain.Imperative))
}

func TestClass4Consonant(t *testing.T) {
	tests := []struct {
		name  string
		ctor  Constructor
		inf   string
		end   string
		stems domain.Stems
		first string
	}{
		{"krást", NewClass4St, "krást", "st", domain.Stems{Stem: "kra", Present: "krad", Past: "kradl", Imperative: "kraď"}, "kradu"},
		{"vézt", NewClass4Zt, "vézt", "zt", domain.Stems{Stem: "ve", Present: "vez", Past: "vezl", Imperative: "vez"}, "vezu"},
		{"tlouct", NewClass4Ct, "tlouct", "ct", domain.Stems{Stem: "tlu", Present: "tluč", Past: "tloukl", Imperative: "tluč"}, "tluču"},
		{"třít", NewClass4Rit, "třít", "řít", domain.Stems{Stem: "t", Present: "tř", Past: "třel", Imperative: "tři"}, "třu"},
		{"kázat", NewClass4Apat, "kázat", "ázat", domain.Stems{Stem: "káz", Present: "káž", Past: "kázal", Imperative: "kaž"}, "kážu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.ctor(tt.inf, tt.end, imperfective)
			assert.Equal(t, 4, v.ClassNumber())
			assert.Equal(t, tt.stems, v.Stems())

			tb := conjugated(v)
			assert.Equal(t, tt.first, tb.At(domain.Present, domain.FirstSg))
		})
	}

	tb := conjugated(NewClass4Rit("třít", "řít", imperfective))
	assert.Equal(t, []string{"", "tři", "", "třeme", "třete", ""}, tb.Row(domain.Imperative))
}

func TestClass4Cluster(t *testing.T) {
	tests := []struct {
		inf        string
		present    string
		imperative string
		plural     string
	}{
		{"brát", "beru", "ber", "berme"},
		{"lhát", "lžu", "lži", "lžeme"},
		{"zvát", "zvu", "zvi", "zvěme"},
		{"cpát", "cpu", "cpi", "cpěme"},
	}
	for _, tt := range tests {
		t.Run(tt.inf, func(t *testing.T) {
			tb := conjugated(NewClass4Cluster(tt.inf, "át", imperfective))
			assert.Equal(t, tt.present, tb.At(domain.Present, domain.FirstSg))
			assert.Equal(t, tt.imperative, tb.At(domain.Imperative, domain.SecondSg))
			assert.Equal(t, tt.plural, tb.At(domain.Imperative, domain.FirstPl))
		})
	}
}

func TestMotionFuture(t *testing.T) {
	v, err := FromEntry("jít", "", domain.IrregularEntry{Pattern: "jít", Class: 4, PresentStem: "jd", PastStem: "šel", ImperativeStem: "pojď"}, motion("pů"))
	require.NoError(t, err)
	tb := conjugated(v)
	assert.Equal(t, []string{"půjdu", "půjdeš", "půjde", "půjdeme", "půjdete", "půjdou"}, tb.Row(domain.Future))
	assert.Equal(t, "jdu", tb.At(domain.Present, domain.FirstSg))

	v, err = FromEntry("nejít", "ne", domain.IrregularEntry{Pattern: "jít", Class: 4, PresentStem: "jd", PastStem: "šel", ImperativeStem: "pojď"}, motion("pů"))
	require.NoError(t, err)
	tb = conjugated(v)
	assert.Equal(t, "nepůjdu", tb.At(domain.Future, domain.FirstSg))
	assert.Equal(t, "nejdu", tb.At(domain.Present, domain.FirstSg))
}

func TestFromEntry(t *testing.T) {
	chtit := domain.IrregularEntry{Pattern: "chtít", Class: 2, PresentStem: "chtěj", PastStem: "chtěl", ImperativeStem: "chtěj"}

	t.Run("chtít", func(t *testing.T) {
		v, err := FromEntry("chtít", "", chtit, imperfective)
		require.NoError(t, err)
		assert.True(t, v.FromLexicon())
		assert.Equal(t, domain.KindClass2, v.Kind())

		tb := conjugated(v)
		assert.Equal(t, []string{"chci", "chtěješ", "chtěje", "chtějeme", "chtějete", "chtějí"}, tb.Row(domain.Present))
		assert.Equal(t, "chtějme", tb.At(domain.Imperative, domain.FirstPl))
	})
	t.Run("nechtít", func(t *testing.T) {
		v, err := FromEntry("nechtít", "ne", chtit, imperfective)
		require.NoError(t, err)
		tb := conjugated(v)
		assert.Equal(t, "nechci", tb.At(domain.Present, domain.FirstSg))
		assert.Equal(t, "nechtějí", tb.At(domain.Present, domain.ThirdPl))
	})
	t.Run("jíst", func(t *testing.T) {
		v, err := FromEntry("jíst", "", domain.IrregularEntry{Pattern: "jíst", Class: 3, PresentStem: "j", PastStem: "jedl", ImperativeStem: "jez"}, imperfective)
		require.NoError(t, err)
		tb := conjugated(v)
		assert.Equal(t, "jím", tb.At(domain.Present, domain.FirstSg))
		assert.Equal(t, "jedí", tb.At(domain.Present, domain.ThirdPl))
		assert.Equal(t, "jedl/a jsem", tb.At(domain.Past, domain.FirstSg))
		assert.Equal(t, "jezme", tb.At(domain.Imperative, domain.FirstPl))
	})
	t.Run("vědět", func(t *testing.T) {
		v, err := FromEntry("vědět", "", domain.IrregularEntry{Pattern: "vědět", Class: 3, PresentStem: "v", PastStem: "věděl", ImperativeStem: "věz"}, imperfective)
		require.NoError(t, err)
		tb := conjugated(v)
		assert.Equal(t, "vědí", tb.At(domain.Present, domain.ThirdPl))
	})
	t.Run("vowel imperative", func(t *testing.T) {
		v, err := FromEntry("spát", "", domain.IrregularEntry{Pattern: "spát", Class: 3, PresentStem: "sp", PastStem: "spal", ImperativeStem: "spi"}, imperfective)
		require.NoError(t, err)
		tb := conjugated(v)
		assert.Equal(t, []string{"", "spi", "", "spěme", "spěte", ""}, tb.Row(domain.Imperative))

		v, err = FromEntry("vzít", "", domain.IrregularEntry{Pattern: "vzít", Class: 4, PresentStem: "vezm", PastStem: "vzal", ImperativeStem: "vezmi"}, imperfective)
		require.NoError(t, err)
		tb = conjugated(v)
		assert.Equal(t, "vezmu", tb.At(domain.Present, domain.FirstSg))
		assert.Equal(t, "vezměte", tb.At(domain.Imperative, domain.SecondPl))
	})
	t.Run("prefixed", func(t *testing.T) {
		v, err := FromEntry("přijít", "při", domain.IrregularEntry{Pattern: "jít", Class: 4, PresentStem: "jd", PastStem: "šel", ImperativeStem: "pojď"}, imperfective)
		require.NoError(t, err)
		assert.Equal(t, domain.Stems{Stem: "přijd", Present: "přijd", Past: "přišel", Imperative: "připojď"}, v.Stems())
	})
	t.Run("invalid class", func(t *testing.T) {
		_, err := FromEntry("foo", "", domain.IrregularEntry{Pattern: "foo", Class: 7}, imperfective)
		assert.Error(t, err)
	})
}

func TestConjugateSelection(t *testing.T) {
	v := NewClass1At("dělat", "at", imperfective)

	v.Conjugate(domain.Present, domain.FirstSg)
	tb := v.Table()
	assert.Equal(t, "dělám", tb.At(domain.Present, domain.FirstSg))
	assert.Empty(t, tb.At(domain.Present, domain.SecondSg))
	assert.Empty(t, tb.At(domain.Past, domain.FirstSg))

	v.Conjugate(domain.Past, domain.AllPersons)
	tb = v.Table()
	assert.Equal(t, "dělali/y/a", tb.At(domain.Past, domain.ThirdPl))
	assert.Empty(t, tb.At(domain.Future, domain.FirstSg))

	v.Conjugate(domain.AllTenses, domain.SecondPl)
	assert.Equal(t, "budete dělat", v.At(domain.Future, domain.SecondPl))
	assert.Empty(t, v.At(domain.Future, domain.FirstPl))

	v.Conjugate(domain.AllTenses, domain.AllPersons)
	first := v.Table()
	v.Conjugate(domain.AllTenses, domain.AllPersons)
	assert.Equal(t, first, v.Table())

	v.ClearTable()
	assert.Equal(t, domain.Table{}, v.Table())
}

func TestConjugateOutOfRange(t *testing.T) {
	v := NewClass1At("dělat", "at", imperfective)
	v.Conjugate(domain.Tense(-1), domain.FirstSg)
	v.Conjugate(domain.Present, domain.Person(9))
	assert.Equal(t, domain.Table{}, v.Table())
	assert.Empty(t, v.At(domain.Tense(7), domain.FirstSg))
}

func TestBytSelection(t *testing.T) {
	v := NewByt("nebýt", imperfective)
	v.Conjugate(domain.Present, domain.ThirdSg)
	tb := v.Table()
	assert.Equal(t, "není", tb.At(domain.Present, domain.ThirdSg))
	assert.Empty(t, tb.At(domain.Present, domain.FirstSg))
}
