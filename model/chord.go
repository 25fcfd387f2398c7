package model

type Keys = []uint8

// Chord is a set of MIDI keys sounding together.
type Chord struct {
	// millis from the start of the file
	Offset uint32
	Keys   Keys
}
