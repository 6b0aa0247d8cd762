package domain

// Kind tags the conjugation-class variant a verb belongs to.
type Kind int

const (
	KindBase Kind = iota
	KindByt
	KindClass1
	KindClass2
	KindClass3
	KindClass4
	KindClass1At
	KindClass2Ityt
	KindClass2Ovat
	KindClass2Out
	KindClass2At
	KindClass3Itet
	KindClass3Cluster
	KindClass4Nout
	KindClass4St
	KindClass4Zt
	KindClass4Ct
	KindClass4Rit
	KindClass4Apat
	KindClass4Cluster
)

var kindInfo = map[Kind]struct {
	name  string
	class int
}{
	KindBase:          {"Verb", 0},
	KindByt:           {"Být", 0},
	KindClass1:        {"Class1", 1},
	KindClass2:        {"Class2", 2},
	KindClass3:        {"Class3", 3},
	KindClass4:        {"Class4", 4},
	KindClass1At:      {"Class1_at", 1},
	KindClass2Ityt:    {"Class2_ityt", 2},
	KindClass2Ovat:    {"Class2_ovat", 2},
	KindClass2Out:     {"Class2_out", 2},
	KindClass2At:      {"Class2_át", 2},
	KindClass3Itet:    {"Class3_itet", 3},
	KindClass3Cluster: {"Class3_cluster", 3},
	KindClass4Nout:    {"Class4_nout", 4},
	KindClass4St:      {"Class4_st", 4},
	KindClass4Zt:      {"Class4_zt", 4},
	KindClass4Ct:      {"Class4_ct", 4},
	KindClass4Rit:     {"Class4_řít", 4},
	KindClass4Apat:    {"Class4_ápat", 4},
	KindClass4Cluster: {"Class4_cluster", 4},
}

func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return "Unknown"
}

// ClassNumber returns the conjugation class (1-4), or 0 for the base verb and být.
func (k Kind) ClassNumber() int {
	return kindInfo[k].class
}

// BaseKind returns the class-level kind for a class number, as used by lexicon entries.
func BaseKind(class int) (Kind, bool) {
	switch class {
	case 1:
		return KindClass1, true
	case 2:
		return KindClass2, true
	case 3:
		return KindClass3, true
	case 4:
		return KindClass4, true
	}
	return KindBase, false
}
