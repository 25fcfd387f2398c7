package midi

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/jsphweid/fretdex/pitch"
	"gitlab.com/gomidi/midi/v2/smf"
)

// KeyFor returns the MIDI key of n, clamped to 0..127.
func KeyFor(n pitch.Note) uint8 {
	key := n.MIDI()
	if key < 0 {
		return 0
	}
	if key > 127 {
		return 127
	}
	return uint8(key)
}

func NoteFor(key uint8) pitch.Note {
	return pitch.NoteFromMIDI(int(key))
}

// KeyForFrequency rounds freq to the nearest equal tempered key.
func KeyForFrequency(freq float64) uint8 {
	if freq <= 0 {
		return 0
	}
	key := math.Round(pitch.ReferenceMIDI + 12*math.Log2(freq/pitch.ReferenceFrequency))
	if key < 0 {
		return 0
	}
	if key > 127 {
		return 127
	}
	return uint8(key)
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file: %w", err)
	}

	return res, nil
}
