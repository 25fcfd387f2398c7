package pitch

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	ReferenceFrequency = 440.0
	ReferenceMIDI      = 69
)

// Note is a pitch class at an octave. Frequency is always derived, so it can
// never disagree with the class and octave.
type Note struct {
	Class  Class
	Octave int
}

// base[c] is the frequency of c in octave 4.
var base = func() [NumClasses]float64 {
	var res [NumClasses]float64
	for i := range res {
		res[i] = ReferenceFrequency * math.Pow(2, float64(i-int(A))/12)
	}
	return res
}()

// Frequency is 440 * 2^((midi-69)/12). Octaves are applied as an exact power
// of two so that each octave up doubles the frequency bit for bit.
func Frequency(c Class, octave int) float64 {
	return math.Ldexp(base[c], octave-4)
}

// MIDI returns the MIDI note number, (octave+1)*12 + class.
func MIDI(c Class, octave int) int {
	return (octave+1)*NumClasses + int(c)
}

// NoteFromMIDI is the inverse of MIDI.
func NoteFromMIDI(key int) Note {
	return Note{Class: Mod(key), Octave: floorDiv(key, NumClasses) - 1}
}

// NoteAtFret transposes an open string up by fret semitones. It is total over
// every fret number.
func NoteAtFret(open Class, openOctave int, fret int) Note {
	i := int(open) + fret
	return Note{
		Class:  Mod(i),
		Octave: openOctave + floorDiv(i, NumClasses),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (n Note) Frequency() float64 {
	return Frequency(n.Class, n.Octave)
}

func (n Note) MIDI() int {
	return MIDI(n.Class, n.Octave)
}

// Transpose moves the note by a signed number of semitones.
func (n Note) Transpose(semitones int) Note {
	return NoteFromMIDI(n.MIDI() + semitones)
}

// DisplayName is the class name followed by the octave, e.g. "A4".
func DisplayName(n Note) string {
	return n.Class.String() + strconv.Itoa(n.Octave)
}

func (n Note) String() string {
	return DisplayName(n)
}

// ParseNote reads forms like "E2", "C#4", "Bb-1".
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	if i <= 0 {
		return Note{}, &ParseError{Kind: "note", Text: s}
	}
	c, ok := ParseClass(s[:i])
	if !ok {
		return Note{}, &ParseError{Kind: "note", Text: s}
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return Note{}, fmt.Errorf("invalid octave in %q: %w", s, err)
	}
	return Note{Class: c, Octave: octave}, nil
}

type noteJSON struct {
	Name      string  `json:"name"`
	Octave    int     `json:"octave"`
	Frequency float64 `json:"frequency"`
}

func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(noteJSON{Name: n.Class.String(), Octave: n.Octave, Frequency: n.Frequency()})
}

// UnmarshalJSON ignores the frequency field; it is recomputed.
func (n *Note) UnmarshalJSON(data []byte) error {
	var raw noteJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c, ok := ParseClass(raw.Name)
	if !ok {
		return &ParseError{Kind: "note", Text: raw.Name}
	}
	*n = Note{Class: c, Octave: raw.Octave}
	return nil
}
