package audio

import (
	"time"

	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/pitch"
)

// Mode is what gets played from a board.
type Mode int

const (
	// AllHighlighted plays every highlighted cell from low to high.
	AllHighlighted Mode = iota
	// Ascending plays each selection note once at its lowest position.
	Ascending
)

// Timing returns the note length and gap for m.
func (m Mode) Timing() (time.Duration, time.Duration) {
	if m == Ascending {
		return 400 * time.Millisecond, 100 * time.Millisecond
	}
	return 200 * time.Millisecond, 50 * time.Millisecond
}

// Sequence lists the notes m plays from b. A board with no selection has
// nothing to play.
func Sequence(b fretboard.Board, m Mode) []pitch.Note {
	if b.Selection == nil {
		return nil
	}
	if m == Ascending {
		w := fretboard.Window{Min: b.MinFret, Max: b.MaxFret}
		return fretboard.LowestInstances(b.Instrument, *b.Selection, w)
	}
	return b.Highlighted()
}

func Frequencies(notes []pitch.Note) []float64 {
	res := make([]float64, len(notes))
	for i, n := range notes {
		res[i] = n.Frequency()
	}
	return res
}
