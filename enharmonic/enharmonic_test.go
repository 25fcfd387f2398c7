package enharmonic

import (
	"fmt"
	"testing"

	"github.com/jsphweid/fretdex/pitch"
	"github.com/stretchr/testify/assert"
)

func allNames() []pitch.Name {
	var res []pitch.Name
	for _, c := range pitch.Classes() {
		res = append(res, c.Sharp())
		if c.IsAccidental() {
			res = append(res, c.Flat())
		}
	}
	return res
}

func TestEquivalentIsAnInvolution(t *testing.T) {
	assert.Equal(t, pitch.Name("Db"), Equivalent("C#"))
	assert.Equal(t, pitch.Name("C#"), Equivalent(Equivalent("C#")))
	for _, n := range allNames() {
		assert.Equal(t, n, Equivalent(Equivalent(n)), n)
		assert.Equal(t, n.Class(), Equivalent(n).Class(), n)
	}
	assert.Equal(t, pitch.Name("E"), Equivalent("E"))
}

func TestUsesSharpSpelling(t *testing.T) {
	for _, root := range []pitch.Name{"C", "G", "D", "A", "E", "B", "F#", "C#"} {
		assert.True(t, UsesSharpSpelling(root), root)
	}
	for _, root := range []pitch.Name{"F", "Bb", "Eb", "Ab", "Db", "Gb"} {
		assert.False(t, UsesSharpSpelling(root), root)
	}
	// spelled outside both sets, judged by the other spelling
	assert.False(t, UsesSharpSpelling("A#"))
	assert.False(t, UsesSharpSpelling("D#"))
	assert.False(t, UsesSharpSpelling("G#"))
}

func TestSharpNamedRootsPickTheirKey(t *testing.T) {
	flat := map[pitch.Class]bool{pitch.F: true, pitch.ASharp: true, pitch.DSharp: true, pitch.GSharp: true}
	for _, c := range pitch.Classes() {
		assert.Equal(t, !flat[c], UsesSharpSpelling(c.Sharp()), c)
	}
	assert.Equal(t, pitch.Name("Eb"), DisplaySpelling("D#", Auto, "A#"))
	assert.Equal(t, pitch.Name("Eb"), DisplaySpelling("D#", Auto, "Bb"))
	assert.Equal(t, pitch.Name("C#"), DisplaySpelling("Db", Auto, "C#"))
}

func TestDisplaySpelling(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(pitch.Name("Db"), DisplaySpelling("C#", Auto, "F"))
	assert.Equal(pitch.Name("C#"), DisplaySpelling("C#", Auto, "G"))
	assert.Equal(pitch.Name("C#"), DisplaySpelling("Db", Auto, "G"))
	assert.Equal(pitch.Name("Db"), DisplaySpelling("Db", Auto, ""))
	assert.Equal(pitch.Name("C#"), DisplaySpelling("C#", Auto, ""))
	assert.Equal(pitch.Name("Bb"), DisplaySpelling("A#", Flats, "G"))
	assert.Equal(pitch.Name("A#"), DisplaySpelling("Bb", Sharps, "F"))
	assert.Equal(pitch.Name("E"), DisplaySpelling("E", Flats, "F"))
}

func TestDisplaySpellingIsIdempotent(t *testing.T) {
	roots := append(allNames(), "")
	for _, pref := range Preferences() {
		for _, root := range roots {
			for _, n := range allNames() {
				name := fmt.Sprintf("%v/%v/%v", n, pref, root)
				once := DisplaySpelling(n, pref, root)
				assert.Equal(t, once, DisplaySpelling(once, pref, root), name)
				assert.Equal(t, n.Class(), once.Class(), name)
			}
		}
	}
}

func TestResolver(t *testing.T) {
	r := Resolver{Preference: Auto, Root: "Bb"}
	assert.Equal(t, pitch.Name("Eb"), r.Spell(pitch.DSharp))
	assert.Equal(t, pitch.Name("D"), r.Spell(pitch.D))
}

func TestParsePreference(t *testing.T) {
	for _, p := range Preferences() {
		parsed, ok := ParsePreference(p.String())
		assert.True(t, ok)
		assert.Equal(t, p, parsed)
	}
	_, ok := ParsePreference("naturals")
	assert.False(t, ok)

	var p Preference
	assert.NoError(t, p.UnmarshalText([]byte("flats")))
	assert.Equal(t, Flats, p)
	assert.Error(t, p.UnmarshalText([]byte("x")))
}
