package verb

import (
	"regexp"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
)

type row = [domain.NumPersons]string

var (
	emptyRow      = row{}
	participleRow = row{"/a", "/a", "/a/o", "i/y", "i/y", "i/y/a"}
	// 1sg, 3sg and 3pl have no imperative form; cell() leaves them empty.
	imperativeRow = row{"", "", "", "me", "te", ""}

	pastAuxiliary        = row{"jsem", "jsi/jseš", "", "jsme", "jste", ""}
	futureAuxiliary      = row{"budu", "budeš", "bude", "budeme", "budete", "budou"}
	conditionalAuxiliary = row{"bych", "bys", "by", "bychom", "byste", "by"}

	bytPresent = row{"jsem", "jseš/jsi", "je", "jsme", "jste", "jsou"}

	classPresent = map[int]row{
		1: {"ám", "áš", "á", "áme", "áte", "ají"},
		2: {"i/u", "eš", "e", "eme", "ete", "í"},
		3: {"ím", "íš", "í", "íme", "íte", "í"},
		4: {"u", "eš", "e", "eme", "ete", "ou"},
	}

	// Class 3 lexicon verbs whose third person plural keeps the -ěd- of the infinitive.
	ediRe = regexp.MustCompile("(jíst|sníst|vědět)$")
)

const ediEnding = "ědí"

// paradigm maps each tense to its endings and auxiliaries. It is computed
// once per verb from the class's present endings and the flags.
type paradigm struct {
	endings     [domain.NumTenses]row
	auxiliaries [domain.NumTenses]row
}

func newParadigm(present row, flags domain.Flags) paradigm {
	p := paradigm{
		endings:     [domain.NumTenses]row{present, participleRow, emptyRow, imperativeRow, participleRow},
		auxiliaries: [domain.NumTenses]row{emptyRow, pastAuxiliary, futureAuxiliary, emptyRow, conditionalAuxiliary},
	}
	if flags.Perfective {
		p.endings[domain.Future] = present
		p.auxiliaries[domain.Future] = emptyRow
		p.endings[domain.Present] = emptyRow
	}
	if flags.Motion.Enabled {
		p.endings[domain.Future] = present
		p.auxiliaries[domain.Future] = emptyRow
	}
	return p
}

func presentEndings(kind domain.Kind, infinitive string) row {
	if kind == domain.KindByt {
		return bytPresent
	}
	endings, ok := classPresent[kind.ClassNumber()]
	if !ok {
		return emptyRow
	}
	if kind == domain.KindClass3 && ediRe.MatchString(infinitive) {
		endings[domain.ThirdPl] = ediEnding
	}
	return endings
}
