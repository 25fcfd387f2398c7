package fretboard

import (
	"math"
	"testing"

	"github.com/jsphweid/fretdex/enharmonic"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guitar() tuning.Instrument {
	return tuning.Default()
}

func TestProjectWithoutSelection(t *testing.T) {
	b := Project(guitar(), nil, enharmonic.Auto, Window{Min: 0, Max: 12})
	require.Len(t, b.Rows, 6)
	for _, row := range b.Rows {
		require.Len(t, row, 13)
		for _, cell := range row {
			assert.False(t, cell.Member)
			assert.Nil(t, cell.Degree)
		}
	}
	// low E string, 5th fret
	assert.Equal(t, pitch.Note{Class: pitch.A, Octave: 2}, b.Rows[5][5].Note)
	assert.Empty(t, b.Highlighted())
}

func TestProjectMarksMembers(t *testing.T) {
	sel := theory.NewSelection(pitch.C, theory.Major)
	b := Project(guitar(), &sel, enharmonic.Auto, Window{Min: 0, Max: 15})

	for _, row := range b.Rows {
		for _, cell := range row {
			assert.Equal(t, sel.IsMember(cell.Note.Class), cell.Member, "string %d fret %d", cell.String, cell.Fret)
			if cell.Member {
				require.NotNil(t, cell.Degree)
				info, _ := sel.DegreeInfo(cell.Note.Class)
				assert.Equal(t, info, *cell.Degree)
			}
		}
	}
	// B string, 1st fret is the root
	assert.Equal(t, 1, b.Rows[1][1].Degree.Degree)
	assert.True(t, b.Rows[1][1].Degree.Important)
}

func TestProjectSpellsForTheKey(t *testing.T) {
	sel := theory.NewSelection(pitch.F, theory.Ionian)
	b := Project(guitar(), &sel, enharmonic.Auto, Window{Min: 0, Max: 12})
	// G string, 3rd fret is A#/Bb
	assert.Equal(t, pitch.Name("Bb"), b.Rows[2][3].Label)

	b = Project(guitar(), &sel, enharmonic.Sharps, Window{Min: 0, Max: 12})
	assert.Equal(t, pitch.Name("A#"), b.Rows[2][3].Label)
}

func TestProjectSpellsBlackKeyRootsFlat(t *testing.T) {
	sel := theory.NewSelection(pitch.ASharp, theory.Major)
	b := Project(guitar(), &sel, enharmonic.Auto, Window{Min: 0, Max: 12})
	// high E string: 6th fret is the root, 11th is the fourth
	assert.Equal(t, pitch.Name("Bb"), b.Rows[0][6].Label)
	assert.Equal(t, pitch.Name("Eb"), b.Rows[0][11].Label)
	for _, row := range b.Rows {
		for _, cell := range row {
			assert.False(t, cell.Label.IsSharp(), cell.Label)
		}
	}
}

func TestProjectWindow(t *testing.T) {
	b := Project(guitar(), nil, enharmonic.Auto, Window{Min: 5, Max: 3})
	assert.Equal(t, 5, b.MinFret)
	assert.Equal(t, 5, b.MaxFret)
	assert.Len(t, b.Rows[0], 1)
	assert.Equal(t, 5, b.Rows[0][0].Fret)

	far := Project(guitar(), nil, enharmonic.Auto, Window{Min: 100, Max: 112})
	assert.Equal(t, far.Rows[0][0].Note.Class, far.Rows[0][12].Note.Class)
}

func TestExtremeWindowsAreBounded(t *testing.T) {
	sel := theory.NewSelection(pitch.C, theory.Major)
	for _, w := range []Window{
		{Min: math.MaxInt - 1, Max: math.MaxInt},
		{Min: math.MinInt, Max: math.MaxInt},
		{Min: 0, Max: math.MaxInt},
		{Min: math.MaxInt, Max: math.MinInt},
	} {
		b := Project(guitar(), &sel, enharmonic.Auto, w)
		assert.LessOrEqual(t, b.MaxFret-b.MinFret, MaxSpan, w)
		assert.LessOrEqual(t, b.MaxFret, LastFret, w)
		assert.GreaterOrEqual(t, b.MinFret, 0, w)
		assert.Len(t, b.Rows[0], b.MaxFret-b.MinFret+1, w)

		assert.LessOrEqual(t, len(LowestInstances(guitar(), sel, w)), 3, w)
		for _, p := range Positions(guitar(), pitch.C, w) {
			assert.LessOrEqual(t, p.Fret, LastFret, w)
		}
	}

	wide := Project(guitar(), nil, enharmonic.Auto, Window{Min: 2, Max: 500})
	assert.Equal(t, 2+MaxSpan, wide.MaxFret)

	assert.Len(t, Voicing(guitar(), sel, math.MaxInt, math.MaxInt), 6)
	assert.Len(t, Voicing(guitar(), sel, math.MinInt, -5), 6)
}

func TestHighlightedIsSortedAndKeepsDuplicates(t *testing.T) {
	sel := theory.NewSelection(pitch.E, theory.Minor)
	b := Project(guitar(), &sel, enharmonic.Auto, Window{Min: 0, Max: 5})
	notes := b.Highlighted()
	require.NotEmpty(t, notes)
	for i := 1; i < len(notes); i++ {
		assert.LessOrEqual(t, notes[i-1].Frequency(), notes[i].Frequency())
	}
	// E2 open, E4 open and the B string's open B3 all appear, B3 twice (G string 4th fret)
	count := 0
	for _, n := range notes {
		if n == (pitch.Note{Class: pitch.B, Octave: 3}) {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestLowestInstances(t *testing.T) {
	sel := theory.NewSelection(pitch.A, theory.PentatonicMinor)
	notes := LowestInstances(guitar(), sel, Window{Min: 0, Max: 12})
	assert.Equal(t, []pitch.Note{
		{Class: pitch.A, Octave: 2},
		{Class: pitch.C, Octave: 3},
		{Class: pitch.D, Octave: 3},
		{Class: pitch.E, Octave: 2},
		{Class: pitch.G, Octave: 2},
	}, notes)

	// nothing on the neck between frets 0 and 0 for C#
	none := LowestInstances(guitar(), theory.NewSelection(pitch.CSharp, theory.Major), Window{Min: 0, Max: 0})
	assert.Empty(t, none)
}

func TestPositions(t *testing.T) {
	pos := Positions(guitar(), pitch.E, Window{Min: 0, Max: 12})
	for _, p := range pos {
		assert.Equal(t, pitch.E, p.Note.Class)
	}
	// high E: 0, 12; B: 5; G: 9; D: 2; A: 7; low E: 0, 12
	assert.Len(t, pos, 8)
	assert.Equal(t, Position{String: 0, Fret: 0, Note: pitch.Note{Class: pitch.E, Octave: 4}}, pos[0])
}

func TestVoicing(t *testing.T) {
	sel := theory.NewSelection(pitch.C, theory.Major)
	frets := Voicing(guitar(), sel, 0, 3)
	// E4 open, B3 1 (C), G3 open, D3 2 (E), A2 3 (C), E2 open
	assert.Equal(t, []int{0, 1, 0, 2, 3, 0}, frets)

	frets = Voicing(guitar(), theory.NewSelection(pitch.G, theory.Sus2), 0, 0)
	assert.Equal(t, []int{Muted, Muted, 0, 0, 0, Muted}, frets)
}

func TestRecentQueueEvictsOldest(t *testing.T) {
	q := NewRecent[pitch.Note]()
	assert.Equal(t, 0, q.Len())
	q.Push(pitch.Note{Class: pitch.C, Octave: 3})
	q.Push(pitch.Note{Class: pitch.E, Octave: 3})
	assert.True(t, q.Full())
	q.Push(pitch.Note{Class: pitch.G, Octave: 3})
	assert.Equal(t, []pitch.Note{{Class: pitch.E, Octave: 3}, {Class: pitch.G, Octave: 3}}, q.Items())
	q.Clear()
	assert.Empty(t, q.Items())
}

func TestQueueItemsIsACopy(t *testing.T) {
	q := NewQueue[int](3)
	q.Push(1)
	items := q.Items()
	items[0] = 9
	assert.Equal(t, []int{1}, q.Items())
}
