// Package enharmonic decides whether accidentals are shown as sharps or flats.
package enharmonic

import (
	"fmt"

	"github.com/jsphweid/fretdex/pitch"
)

type Preference int

const (
	Auto Preference = iota
	Sharps
	Flats
)

var preferenceNames = [...]string{"auto", "sharps", "flats"}

func (p Preference) String() string {
	if p < 0 || int(p) >= len(preferenceNames) {
		return fmt.Sprintf("Preference(%d)", int(p))
	}
	return preferenceNames[p]
}

func ParsePreference(s string) (Preference, bool) {
	for i, name := range preferenceNames {
		if name == s {
			return Preference(i), true
		}
	}
	return Auto, false
}

// Preferences lists every preference in cycling order.
func Preferences() []Preference {
	return []Preference{Auto, Sharps, Flats}
}

func (p Preference) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Preference) UnmarshalText(text []byte) error {
	parsed, ok := ParsePreference(string(text))
	if !ok {
		return fmt.Errorf("invalid enharmonic preference %q (want auto, sharps or flats)", text)
	}
	*p = parsed
	return nil
}

var sharpKeys = map[pitch.Name]bool{
	"C": true, "G": true, "D": true, "A": true, "E": true, "B": true, "F#": true, "C#": true,
}

var flatKeys = map[pitch.Name]bool{
	"F": true, "Bb": true, "Eb": true, "Ab": true, "Db": true, "Gb": true,
}

var equivalents = map[pitch.Name]pitch.Name{
	"C#": "Db", "Db": "C#",
	"D#": "Eb", "Eb": "D#",
	"F#": "Gb", "Gb": "F#",
	"G#": "Ab", "Ab": "G#",
	"A#": "Bb", "Bb": "A#",
}

// UsesSharpSpelling reports whether a key rooted at root is conventionally
// written with sharps. A root spelled outside both key sets is judged by its
// other spelling, so A#, D# and G# are the flat keys Bb, Eb and Ab.
func UsesSharpSpelling(root pitch.Name) bool {
	if sharpKeys[root] {
		return true
	}
	if flatKeys[root] {
		return false
	}
	if !root.Valid() {
		return true
	}
	c := root.Class()
	if sharpKeys[c.Sharp()] {
		return true
	}
	return !flatKeys[c.Flat()]
}

// Equivalent swaps a black key between its sharp and flat spelling.
func Equivalent(n pitch.Name) pitch.Name {
	if e, ok := equivalents[n]; ok {
		return e
	}
	return n
}

// DisplaySpelling picks the spelling of n to show. An empty root means no
// key is active, in which case Auto keeps n as spelled.
func DisplaySpelling(n pitch.Name, pref Preference, root pitch.Name) pitch.Name {
	if !n.IsAccidental() {
		return n
	}
	c := n.Class()
	switch pref {
	case Sharps:
		return c.Sharp()
	case Flats:
		return c.Flat()
	}
	if root == "" {
		return n
	}
	if UsesSharpSpelling(root) {
		return c.Sharp()
	}
	return c.Flat()
}

// Resolver spells pitch classes for one preference and key.
type Resolver struct {
	Preference Preference
	Root       pitch.Name
}

func (r Resolver) Spell(c pitch.Class) pitch.Name {
	return DisplaySpelling(c.Sharp(), r.Preference, r.Root)
}
