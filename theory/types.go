// Package theory holds the chord and scale interval tables and answers
// membership and scale degree questions against a selection.
package theory

import "fmt"

// Type identifies a chord or scale. The set is closed; every value below
// resolves to an interval list in exactly one of the two tables.
type Type int

const (
	// chords
	Major Type = iota
	Minor
	Diminished
	Augmented
	Maj7
	Min7
	Dom7
	HalfDim7
	Dim7
	MinMaj7
	AugMaj7
	Add9
	Sus2
	Sus4

	// scales
	PentatonicMajor
	PentatonicMinor
	Ionian
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	NaturalMinor
	HarmonicMinor
	MelodicMinor
	BluesMajor
	BluesMinor

	numTypes
)

type Kind int

const (
	Chord Kind = iota
	Scale
)

func (k Kind) String() string {
	if k == Chord {
		return "chord"
	}
	return "scale"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "chord":
		*k = Chord
	case "scale":
		*k = Scale
	default:
		return fmt.Errorf("unknown kind %q", text)
	}
	return nil
}

type typeInfo struct {
	id        string
	label     string
	intervals []int
}

var chordTable = map[Type]typeInfo{
	Major:      {"major", "Major", []int{0, 4, 7}},
	Minor:      {"minor", "Minor", []int{0, 3, 7}},
	Diminished: {"diminished", "Diminished", []int{0, 3, 6}},
	Augmented:  {"augmented", "Augmented", []int{0, 4, 8}},

	Maj7:     {"maj7", "Major 7th", []int{0, 4, 7, 11}},
	Min7:     {"min7", "Minor 7th", []int{0, 3, 7, 10}},
	Dom7:     {"dom7", "Dominant 7th", []int{0, 4, 7, 10}},
	HalfDim7: {"half-dim7", "Half Diminished 7th", []int{0, 3, 6, 10}},
	Dim7:     {"dim7", "Diminished 7th", []int{0, 3, 6, 9}},
	MinMaj7:  {"min-maj7", "Minor-Major 7th", []int{0, 3, 7, 11}},
	AugMaj7:  {"aug-maj7", "Augmented Major 7th", []int{0, 4, 8, 11}},

	// add9 keeps the ninth inside the octave as a major second
	Add9: {"add9", "Add 9", []int{0, 2, 4, 7}},
	Sus2: {"sus2", "Suspended 2nd", []int{0, 2, 7}},
	Sus4: {"sus4", "Suspended 4th", []int{0, 5, 7}},
}

var scaleTable = map[Type]typeInfo{
	PentatonicMajor: {"pentatonic-major", "Major Pentatonic", []int{0, 2, 4, 7, 9}},
	PentatonicMinor: {"pentatonic-minor", "Minor Pentatonic", []int{0, 3, 5, 7, 10}},

	Ionian:     {"ionian", "Ionian (Mode 1)", []int{0, 2, 4, 5, 7, 9, 11}},
	Dorian:     {"dorian", "Dorian (Mode 2)", []int{0, 2, 3, 5, 7, 9, 10}},
	Phrygian:   {"phrygian", "Phrygian (Mode 3)", []int{0, 1, 3, 5, 7, 8, 10}},
	Lydian:     {"lydian", "Lydian (Mode 4)", []int{0, 2, 4, 6, 7, 9, 11}},
	Mixolydian: {"mixolydian", "Mixolydian (Mode 5)", []int{0, 2, 4, 5, 7, 9, 10}},
	Aeolian:    {"aeolian", "Aeolian (Mode 6)", []int{0, 2, 3, 5, 7, 8, 10}},
	Locrian:    {"locrian", "Locrian (Mode 7)", []int{0, 1, 3, 5, 6, 8, 10}},

	NaturalMinor:  {"natural-minor", "Natural Minor", []int{0, 2, 3, 5, 7, 8, 10}},
	HarmonicMinor: {"harmonic-minor", "Harmonic Minor", []int{0, 2, 3, 5, 7, 8, 11}},
	MelodicMinor:  {"melodic-minor", "Melodic Minor", []int{0, 2, 3, 5, 7, 9, 11}},

	BluesMajor: {"blues-major", "Major Blues", []int{0, 2, 3, 4, 7, 9}},
	BluesMinor: {"blues-minor", "Minor Blues", []int{0, 3, 5, 6, 7, 10}},
}

var idToType = func() map[string]Type {
	m := make(map[string]Type, numTypes)
	for t := Type(0); t < numTypes; t++ {
		m[t.info().id] = t
	}
	return m
}()

func (t Type) info() typeInfo {
	if info, ok := chordTable[t]; ok {
		return info
	}
	if info, ok := scaleTable[t]; ok {
		return info
	}
	panic(fmt.Sprintf("theory: unknown type %d", int(t)))
}

func (t Type) Valid() bool {
	return t >= 0 && t < numTypes
}

// String is the identifier, e.g. "pentatonic-minor".
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return t.info().id
}

func (t Type) Label() string {
	return t.info().label
}

func (t Type) Kind() Kind {
	return Classify(t)
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, ok := ParseType(string(text))
	if !ok {
		return fmt.Errorf("unknown chord or scale type %q", text)
	}
	*t = parsed
	return nil
}

// ParseType looks up an identifier. Unknown identifiers are absent, not errors.
func ParseType(id string) (Type, bool) {
	t, ok := idToType[id]
	return t, ok
}

// Classify reports which table t belongs to.
func Classify(t Type) Kind {
	if _, ok := chordTable[t]; ok {
		return Chord
	}
	if _, ok := scaleTable[t]; ok {
		return Scale
	}
	panic(fmt.Sprintf("theory: unknown type %d", int(t)))
}

// Intervals returns a copy of the semitone offsets from the root.
func Intervals(t Type) []int {
	src := t.info().intervals
	res := make([]int, len(src))
	copy(res, src)
	return res
}

func typesOfKind(k Kind) []Type {
	var res []Type
	for t := Type(0); t < numTypes; t++ {
		if Classify(t) == k {
			res = append(res, t)
		}
	}
	return res
}

func ChordTypes() []Type { return typesOfKind(Chord) }

func ScaleTypes() []Type { return typesOfKind(Scale) }

func AllTypes() []Type {
	res := make([]Type, numTypes)
	for i := range res {
		res[i] = Type(i)
	}
	return res
}

// Category is a named group of types for menus.
type Category struct {
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Types []Type `json:"types"`
}

var categories = []Category{
	{"Triads", Chord, []Type{Major, Minor, Diminished, Augmented}},
	{"Seventh Chords", Chord, []Type{Maj7, Min7, Dom7, HalfDim7, Dim7, MinMaj7, AugMaj7}},
	{"Extended/Sus", Chord, []Type{Add9, Sus2, Sus4}},
	{"Pentatonic", Scale, []Type{PentatonicMajor, PentatonicMinor}},
	{"Major Modes", Scale, []Type{Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian}},
	{"Minor Scales", Scale, []Type{NaturalMinor, HarmonicMinor, MelodicMinor}},
	{"Blues", Scale, []Type{BluesMajor, BluesMinor}},
}

func Categories() []Category {
	res := make([]Category, len(categories))
	for i, c := range categories {
		c.Types = append([]Type(nil), c.Types...)
		res[i] = c
	}
	return res
}

var (
	CommonChords = []Type{Major, Minor, Maj7, Min7, Dom7}
	CommonScales = []Type{Ionian, Aeolian, PentatonicMajor, PentatonicMinor, Dorian}
)
