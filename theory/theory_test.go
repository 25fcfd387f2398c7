package theory

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/jsphweid/fretdex/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalTablesAreWellFormed(t *testing.T) {
	for _, typ := range AllTypes() {
		t.Run(typ.String(), func(t *testing.T) {
			intervals := Intervals(typ)
			require.NotEmpty(t, intervals)
			assert.Equal(t, 0, intervals[0])
			for i := 1; i < len(intervals); i++ {
				assert.Greater(t, intervals[i], intervals[i-1])
				assert.LessOrEqual(t, intervals[i], 11)
			}
			assert.NotEmpty(t, typ.Label())
		})
	}
}

func TestTablesAreDisjointAndComplete(t *testing.T) {
	for _, typ := range AllTypes() {
		_, inChords := chordTable[typ]
		_, inScales := scaleTable[typ]
		assert.True(t, inChords != inScales, typ.String())
	}
	assert.Len(t, ChordTypes(), 14)
	assert.Len(t, ScaleTypes(), 14)
	assert.Len(t, AllTypes(), len(chordTable)+len(scaleTable))
}

func TestParseType(t *testing.T) {
	for _, typ := range AllTypes() {
		parsed, ok := ParseType(typ.String())
		assert.True(t, ok)
		assert.Equal(t, typ, parsed)
	}
	_, ok := ParseType("lydian-dominant")
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Chord, Classify(Dom7))
	assert.Equal(t, Chord, Classify(Sus4))
	assert.Equal(t, Scale, Classify(Dorian))
	assert.Equal(t, Scale, Classify(BluesMinor))
	assert.Panics(t, func() { Classify(Type(-1)) })
}

func TestNotesFor(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]pitch.Class{pitch.C, pitch.E, pitch.G}, NotesFor(pitch.C, Major))
	assert.Equal([]pitch.Class{pitch.A, pitch.C, pitch.D, pitch.E, pitch.G}, NotesFor(pitch.A, PentatonicMinor))
	// wraps past B but keeps degree order
	assert.Equal([]pitch.Class{pitch.G, pitch.B, pitch.D, pitch.F}, NotesFor(pitch.G, Dom7))
}

func TestNotesForStartsAtRoot(t *testing.T) {
	for _, root := range pitch.Classes() {
		for _, typ := range AllTypes() {
			notes := NotesFor(root, typ)
			name := fmt.Sprintf("%v %v", root, typ)
			assert.Len(t, notes, len(Intervals(typ)), name)
			assert.Equal(t, root, notes[0], name)
		}
	}
}

func cMajor() Selection {
	return NewSelection(pitch.C, Major)
}

func TestIsMember(t *testing.T) {
	sel := cMajor()
	assert.True(t, IsMember(pitch.G, sel))
	assert.False(t, IsMember(pitch.F, sel))
}

func TestDegreeInfo(t *testing.T) {
	assert := assert.New(t)
	sel := cMajor()

	info, ok := DegreeInfoFor(pitch.C, sel)
	assert.True(ok)
	assert.Equal(DegreeInfo{Class: pitch.C, Degree: 1, Important: true}, info)

	info, ok = sel.DegreeInfo(pitch.E)
	assert.True(ok)
	assert.Equal(2, info.Degree)
	assert.False(info.Important)

	info, ok = sel.DegreeInfo(pitch.G)
	assert.True(ok)
	assert.Equal(3, info.Degree)
	assert.True(info.Important)

	_, ok = sel.DegreeInfo(pitch.F)
	assert.False(ok)
}

func TestDegreeInfoInAScale(t *testing.T) {
	sel := NewSelection(pitch.D, Dorian)
	info, ok := sel.DegreeInfo(pitch.A)
	require.True(t, ok)
	assert.Equal(t, 5, info.Degree)
	assert.True(t, info.Important)

	info, _ = sel.DegreeInfo(pitch.C)
	assert.Equal(t, 7, info.Degree)
	assert.False(t, info.Important)
}

func TestWithRootRegeneratesNotes(t *testing.T) {
	sel := NewSelection(pitch.C, Ionian)
	moved := sel.WithRoot(pitch.E)
	assert.True(t, moved.Equal(NewSelection(pitch.E, Ionian)))
	assert.Equal(t, NotesFor(pitch.E, Ionian), moved.Notes())
	assert.False(t, moved.IsMember(pitch.F))
	// the original is untouched
	assert.Equal(t, NotesFor(pitch.C, Ionian), sel.Notes())

	retyped := sel.WithType(Min7)
	assert.Equal(t, NotesFor(pitch.C, Min7), retyped.Notes())
}

func TestZeroSelectionIsCMajor(t *testing.T) {
	var sel Selection
	assert.Equal(t, NotesFor(pitch.C, Major), sel.Notes())
	assert.True(t, sel.Equal(NewSelection(pitch.C, Major)))
	assert.True(t, sel.IsMember(pitch.G))
	info, ok := sel.DegreeInfo(pitch.E)
	assert.True(t, ok)
	assert.Equal(t, 3, info.Degree)

	data, err := json.Marshal(sel)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"notes":["C","E","G"]`)
}

func TestNotesIsACopy(t *testing.T) {
	sel := cMajor()
	notes := sel.Notes()
	notes[0] = pitch.B
	assert.Equal(t, pitch.C, sel.Notes()[0])
}

func TestOrdinalSuffix(t *testing.T) {
	assert.Equal(t, "1st", OrdinalSuffix(1))
	assert.Equal(t, "2nd", OrdinalSuffix(2))
	assert.Equal(t, "3rd", OrdinalSuffix(3))
	assert.Equal(t, "7th", OrdinalSuffix(7))
	assert.Equal(t, "11th", OrdinalSuffix(11))
}

func TestSelectionJSON(t *testing.T) {
	data, err := json.Marshal(NewSelection(pitch.A, PentatonicMinor))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"pentatonic-minor","kind":"scale","label":"Minor Pentatonic","rootNote":"A","notes":["A","C","D","E","G"]}`, string(data))

	var sel Selection
	require.NoError(t, json.Unmarshal([]byte(`{"type":"major","rootNote":"D","notes":["X"]}`), &sel))
	assert.Equal(t, []pitch.Class{pitch.D, pitch.FSharp, pitch.A}, sel.Notes())
}

func TestIdentify(t *testing.T) {
	res := Identify([]pitch.Class{pitch.C, pitch.E, pitch.G})
	require.NotEmpty(t, res)
	assert.True(t, res[0].Equal(cMajor()), res[0].String())
	for _, sel := range res {
		assert.True(t, sel.IsMember(pitch.C) && sel.IsMember(pitch.E) && sel.IsMember(pitch.G))
	}
	last := res[len(res)-1]
	assert.Equal(t, Scale, last.Kind())

	assert.Empty(t, Identify(nil))
}

func TestCategoriesCoverEveryType(t *testing.T) {
	seen := make(map[Type]bool)
	for _, c := range Categories() {
		for _, typ := range c.Types {
			assert.Equal(t, c.Kind, Classify(typ))
			seen[typ] = true
		}
	}
	assert.Len(t, seen, len(AllTypes()))
}
