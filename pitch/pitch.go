// Package pitch models the twelve chromatic pitch classes, their sharp and
// flat spellings, and octave-aware notes tuned to A4 = 440 Hz.
package pitch

import "strings"

// Class is one of the 12 chromatic steps. C is 0.
type Class int

const (
	C Class = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

const NumClasses = 12

// Name is a spelled pitch class such as "C#" or "Db". The zero value means
// no name.
type Name string

var sharpNames = [NumClasses]Name{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatNames = [NumClasses]Name{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var nameToClass = func() map[Name]Class {
	m := make(map[Name]Class, 17)
	for i := 0; i < NumClasses; i++ {
		m[sharpNames[i]] = Class(i)
		m[flatNames[i]] = Class(i)
	}
	return m
}()

// Classes returns all pitch classes in chromatic order.
func Classes() []Class {
	res := make([]Class, NumClasses)
	for i := range res {
		res[i] = Class(i)
	}
	return res
}

// Mod reduces any integer to a pitch class.
func Mod(i int) Class {
	return Class(((i % NumClasses) + NumClasses) % NumClasses)
}

func (c Class) Valid() bool {
	return c >= 0 && c < NumClasses
}

// Sharp returns the canonical sharp spelling.
func (c Class) Sharp() Name {
	return sharpNames[c]
}

// Flat returns the spelling from the flat table. Naturals are the same in both.
func (c Class) Flat() Name {
	return flatNames[c]
}

func (c Class) IsAccidental() bool {
	return sharpNames[c] != flatNames[c]
}

func (c Class) String() string {
	if !c.Valid() {
		return "?"
	}
	return string(sharpNames[c])
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(text []byte) error {
	parsed, ok := ParseClass(string(text))
	if !ok {
		return &ParseError{Kind: "pitch class", Text: string(text)}
	}
	*c = parsed
	return nil
}

func (n Name) Class() Class {
	return nameToClass[n]
}

func (n Name) Valid() bool {
	_, ok := nameToClass[n]
	return ok
}

func (n Name) IsAccidental() bool {
	return len(n) == 2
}

func (n Name) IsFlat() bool {
	return len(n) == 2 && n[1] == 'b'
}

func (n Name) IsSharp() bool {
	return len(n) == 2 && n[1] == '#'
}

func (n Name) String() string {
	return string(n)
}

// ParseName accepts "C#", "Db", lower case letters and the unicode ♯/♭ signs.
func ParseName(s string) (Name, bool) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("♯", "#", "♭", "b").Replace(s)
	if s == "" {
		return "", false
	}
	n := Name(strings.ToUpper(s[:1]) + s[1:])
	if !n.Valid() {
		return "", false
	}
	return n, true
}

func ParseClass(s string) (Class, bool) {
	n, ok := ParseName(s)
	if !ok {
		return 0, false
	}
	return n.Class(), true
}

type ParseError struct {
	Kind string
	Text string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Kind + ": " + e.Text
}

// Interval is the ascending semitone distance from a to b, in [0,11].
func Interval(a, b Class) int {
	return int(Mod(int(b) - int(a)))
}

var intervalNames = [NumClasses]string{"P1", "m2", "M2", "m3", "M3", "P4", "TT", "P5", "m6", "M6", "m7", "M7"}

func IntervalName(semitones int) string {
	return intervalNames[Mod(semitones)]
}
