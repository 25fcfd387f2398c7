package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/fretdex/enharmonic"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemes(t *testing.T) {
	names := ThemeNames()
	assert.Equal(t, []string{"classic", "cool", "forest", "indigo", "sunset", "warm"}, names)
	for _, name := range names {
		th, ok := LookupTheme(name)
		require.True(t, ok)
		assert.NotEmpty(t, th.Name)
		assert.NotEmpty(t, th.Scale.Root, name)
		assert.NotEmpty(t, th.Scale.Others, name)
	}
	_, ok := LookupTheme("neon")
	assert.False(t, ok)
}

func TestDegreeColor(t *testing.T) {
	th, _ := LookupTheme("indigo")
	assert := assert.New(t)
	assert.Equal(lipgloss.Color("#1a237e"), th.DegreeColor(theory.DegreeInfo{Degree: 1, Important: true}))
	assert.Equal(lipgloss.Color("#3f51b5"), th.DegreeColor(theory.DegreeInfo{Degree: 3, Important: true}))
	assert.Equal(lipgloss.Color("#5c6bc0"), th.DegreeColor(theory.DegreeInfo{Degree: 5, Important: true}))
	assert.Equal(lipgloss.Color("#9fa8da"), th.DegreeColor(theory.DegreeInfo{Degree: 2}))
	assert.Equal(lipgloss.Color("#b39ddb"), th.DegreeColor(theory.DegreeInfo{Degree: 7}))
	assert.Equal(lipgloss.Color("#d1c4e9"), th.DegreeColor(theory.DegreeInfo{Degree: 8}))
}

func TestFretMarker(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", FretMarker(0, Numbers))
	assert.Equal("7", FretMarker(7, Numbers))
	assert.Equal("•", FretMarker(5, Dots))
	assert.Equal("••", FretMarker(12, Dots))
	assert.Equal("", FretMarker(0, Dots))
	assert.Equal("", FretMarker(4, Dots))
	assert.Equal("", FretMarker(12, NoMarkers))
}

func TestBoard(t *testing.T) {
	sel := theory.NewSelection(pitch.C, theory.Major)
	b := fretboard.Project(tuning.Default(), &sel, enharmonic.Auto, fretboard.Window{Min: 0, Max: 5})
	out := Board(b, DefaultOptions())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "5")
	assert.True(t, strings.HasPrefix(lines[1], "E4"))
	// B string, 1st fret is the root
	assert.Contains(t, lines[2], "C1")
	assert.Contains(t, lines[2], "-")
	assert.True(t, strings.HasPrefix(lines[6], "E2"))
}

func TestBoardWithoutSelectionShowsEveryNote(t *testing.T) {
	b := fretboard.Project(tuning.Default(), nil, enharmonic.Flats, fretboard.Window{Min: 0, Max: 3})
	out := Board(b, DefaultOptions())
	assert.Contains(t, out, "Bb")
	assert.NotContains(t, out, "A#")
}

func TestLegend(t *testing.T) {
	sel := theory.NewSelection(pitch.F, theory.Dom7)
	spell := func(info theory.DegreeInfo) string {
		return string(enharmonic.Resolver{Root: sel.Root().Sharp()}.Spell(info.Class))
	}
	out := Legend(sel, spell, DefaultOptions())
	assert.Contains(t, out, "F Dominant 7th")
	assert.Contains(t, out, "Eb 4th")
	assert.Contains(t, out, "A 2nd")
}
