package domain

import (
	"fmt"
	"strings"
)

// Tense indexes the rows of a conjugation table. It covers moods as well.
type Tense int

const (
	Present Tense = iota
	Past
	Future
	Imperative
	Conditional
)

// NumTenses is the number of rows in a Table.
const NumTenses = 5

// AllTenses selects every row when passed to a conjugate call.
const AllTenses Tense = NumTenses

var tenseNames = [NumTenses]string{"present", "past", "future", "imperative", "conditional"}

func (t Tense) String() string {
	if t < 0 || int(t) >= NumTenses {
		return "all"
	}
	return tenseNames[t]
}

// ParseTense maps a tense name to its index.
func ParseTense(s string) (Tense, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return AllTenses, nil
	}
	for i, name := range tenseNames {
		if name == s {
			return Tense(i), nil
		}
	}
	return AllTenses, fmt.Errorf("unknown tense: %q", s)
}

// Person indexes the columns of a conjugation table. It includes number.
type Person int

const (
	FirstSg Person = iota
	SecondSg
	ThirdSg
	FirstPl
	SecondPl
	ThirdPl
)

// NumPersons is the number of columns in a Table.
const NumPersons = 6

// AllPersons selects every column when passed to a conjugate call.
const AllPersons Person = NumPersons

var personNames = [NumPersons]string{"1sg", "2sg", "3sg", "1pl", "2pl", "3pl"}

func (p Person) String() string {
	if p < 0 || int(p) >= NumPersons {
		return "all"
	}
	return personNames[p]
}

// ParsePerson maps a person label such as "2sg" to its index.
func ParsePerson(s string) (Person, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "all" {
		return AllPersons, nil
	}
	for i, name := range personNames {
		if name == s {
			return Person(i), nil
		}
	}
	return AllPersons, fmt.Errorf("unknown person: %q", s)
}

// Table is the five tense by six person grid of conjugated forms.
// An empty string means there is no form for that cell.
type Table [NumTenses][NumPersons]string

// At returns the cell at (t, p), or "" when either index is out of range.
func (tb *Table) At(t Tense, p Person) string {
	if t < 0 || int(t) >= NumTenses || p < 0 || int(p) >= NumPersons {
		return ""
	}
	return tb[t][p]
}

// Row returns a copy of one tense row.
func (tb *Table) Row(t Tense) []string {
	if t < 0 || int(t) >= NumTenses {
		return nil
	}
	row := make([]string, NumPersons)
	copy(row, tb[t][:])
	return row
}

// Rows returns the table as nested slices, which serialize more readably than arrays.
func (tb *Table) Rows() [][]string {
	rows := make([][]string, NumTenses)
	for t := 0; t < NumTenses; t++ {
		rows[t] = tb.Row(Tense(t))
	}
	return rows
}

// IrregularEntry is one row of the irregular verb lexicon.
type IrregularEntry struct {
	Pattern        string `json:"pattern" yaml:"pattern"`
	Class          int    `json:"class" yaml:"class"`
	PresentStem    string `json:"present_stem" yaml:"present_stem"`
	PastStem       string `json:"past_stem" yaml:"past_stem"`
	ImperativeStem string `json:"imperative_stem" yaml:"imperative_stem"`
}

// ConcreteEntry is a motion verb together with its future-tense prefix.
type ConcreteEntry struct {
	Infinitive string `json:"infinitive" yaml:"infinitive"`
	Prefix     string `json:"prefix" yaml:"prefix"`
}

// Motion marks a verb whose future is formed with a prefix instead of an auxiliary.
type Motion struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Prefix  string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// Flags are the class-agnostic modifiers that change how a verb is conjugated.
type Flags struct {
	Perfective bool   `json:"perfective" yaml:"perfective"`
	Motion     Motion `json:"motion" yaml:"motion"`
}

// Key is a compact string form of the flags, used in cache and store keys.
func (f Flags) Key() string {
	var b strings.Builder
	if f.Perfective {
		b.WriteString("pf")
	} else {
		b.WriteString("ipf")
	}
	if f.Motion.Enabled {
		b.WriteString("+m:")
		b.WriteString(f.Motion.Prefix)
	}
	return b.String()
}

// Stems groups the stems a conjugation class derives from an infinitive.
type Stems struct {
	Stem       string `json:"stem" yaml:"stem"`
	Present    string `json:"present" yaml:"present"`
	Past       string `json:"past" yaml:"past"`
	Imperative string `json:"imperative" yaml:"imperative"`
}

// Conjugation is the outcome of running one infinitive through the pipeline.
type Conjugation struct {
	Word        string     `json:"word" yaml:"word"`
	Prefix      string     `json:"prefix" yaml:"prefix"`
	Root        string     `json:"root" yaml:"root"`
	Kind        string     `json:"kind" yaml:"kind"`
	ClassNumber int        `json:"class" yaml:"class"`
	Irregular   bool       `json:"irregular" yaml:"irregular"`
	Ending      string     `json:"ending" yaml:"ending"`
	Stems       Stems      `json:"stems" yaml:"stems"`
	Flags       Flags      `json:"flags" yaml:"flags"`
	Table       [][]string `json:"table" yaml:"table"`
}

// Cell returns a form from the serialized table, or "" when absent.
func (c Conjugation) Cell(t Tense, p Person) string {
	if int(t) < 0 || int(t) >= len(c.Table) {
		return ""
	}
	row := c.Table[t]
	if int(p) < 0 || int(p) >= len(row) {
		return ""
	}
	return row[p]
}
