// Package strum sends fretboard voicings to a string-actuator board over a
// serial line.
package strum

import (
	"fmt"

	"github.com/jsphweid/fretdex/fretboard"
)

const (
	OpenFret      = 255
	MaxStrings    = 6
	MaxFret       = 11
	CmdApplyFrame = 0x10
	SOF0          = 0xAA
	SOF1          = 0x55
)

// Frame is a full-state snapshot of all strings sent in one transfer.
type Frame struct {
	Fret      [MaxStrings]byte // 0-11 = fret number, 255 = open/muted
	StrumMask byte             // bit N set = strum string N
	ProfileID byte
	Duration  byte
	Seq       byte
}

// FrameFor converts a voicing (one fret per string, highest string first)
// into a frame. The board numbers strings from the lowest, so the order is
// reversed. Fret 0 is sounded open; muted strings are left out of the mask.
func FrameFor(frets []int, seq byte) (Frame, error) {
	if len(frets) > MaxStrings {
		return Frame{}, fmt.Errorf("voicing has %d strings, board drives %d", len(frets), MaxStrings)
	}
	f := EmptyFrame(seq)
	f.Duration = 20
	for i, fret := range frets {
		s := len(frets) - 1 - i
		switch {
		case fret == fretboard.Muted:
			continue
		case fret < 0 || fret > MaxFret:
			return Frame{}, fmt.Errorf("fret %d on string %d is out of reach", fret, i+1)
		case fret > 0:
			f.Fret[s] = byte(fret)
		}
		f.StrumMask |= 1 << s
	}
	return f, nil
}

// EmptyFrame returns an all-open, no-strum frame.
func EmptyFrame(seq byte) Frame {
	f := Frame{Seq: seq}
	for i := 0; i < MaxStrings; i++ {
		f.Fret[i] = OpenFret
	}
	return f
}

// Encode builds the on-wire representation:
//
//	[SOF0][SOF1][LEN][CMD][fret0..5][StrumMask][ProfileID][Duration][Seq][CKS]
func (f *Frame) Encode() []byte {
	payload := make([]byte, 0, 10)
	payload = append(payload, f.Fret[:]...)
	payload = append(payload, f.StrumMask, f.ProfileID, f.Duration, f.Seq)

	length := byte(len(payload) + 1) // +1 for CMD byte
	cks := length ^ CmdApplyFrame
	for _, b := range payload {
		cks ^= b
	}

	out := []byte{SOF0, SOF1, length, CmdApplyFrame}
	out = append(out, payload...)
	out = append(out, cks)
	return out
}
