// Package fretboard projects a tuning onto a grid of (string, fret) cells and
// marks which cells belong to the active chord or scale.
package fretboard

import (
	"sort"

	"github.com/jsphweid/fretdex/enharmonic"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theory"
	"github.com/jsphweid/fretdex/tuning"
	"github.com/jsphweid/fretdex/util"
)

type Cell struct {
	String int                `json:"string"`
	Fret   int                `json:"fret"`
	Note   pitch.Note         `json:"note"`
	Label  pitch.Name         `json:"label"`
	Member bool               `json:"member"`
	Degree *theory.DegreeInfo `json:"degree,omitempty"`
}

// Board holds one row of cells per string, in the instrument's string order.
type Board struct {
	Instrument tuning.Instrument `json:"instrument"`
	Selection  *theory.Selection `json:"selection,omitempty"`
	MinFret    int               `json:"minFret"`
	MaxFret    int               `json:"maxFret"`
	Rows       [][]Cell          `json:"rows"`
}

const (
	// MaxSpan is the widest window, in frets past Min.
	MaxSpan = 48
	// LastFret is the highest fret a window can reach.
	LastFret = 1 << 24
)

// Window is an inclusive fret range. Max below Min is raised to Min, and a
// window wider than MaxSpan or reaching past LastFret is cut short.
type Window struct {
	Min, Max int
}

// Normalize applies the bounds described on Window.
func (w Window) Normalize() Window {
	w.Min = util.Clamp(w.Min, 0, LastFret)
	if w.Max < w.Min {
		w.Max = w.Min
	}
	if w.Max-w.Min > MaxSpan {
		w.Max = w.Min + MaxSpan
	}
	w.Max = util.Min(w.Max, LastFret)
	return w
}

// Project fills every cell in the window. A nil selection highlights nothing.
func Project(inst tuning.Instrument, sel *theory.Selection, pref enharmonic.Preference, w Window) Board {
	w = w.Normalize()
	resolver := enharmonic.Resolver{Preference: pref}
	if sel != nil {
		resolver.Root = sel.Root().Sharp()
	}

	board := Board{
		Instrument: inst,
		Selection:  sel,
		MinFret:    w.Min,
		MaxFret:    w.Max,
		Rows:       make([][]Cell, len(inst.Strings)),
	}
	for s, str := range inst.Strings {
		row := make([]Cell, 0, w.Max-w.Min+1)
		for fret := w.Min; fret <= w.Max; fret++ {
			note := str.NoteAt(fret)
			cell := Cell{
				String: s,
				Fret:   fret,
				Note:   note,
				Label:  resolver.Spell(note.Class),
			}
			if sel != nil {
				if info, ok := sel.DegreeInfo(note.Class); ok {
					cell.Member = true
					cell.Degree = &info
				}
			}
			row = append(row, cell)
		}
		board.Rows[s] = row
	}
	return board
}

// Highlighted returns every member note on the board, every instance kept,
// sorted by frequency.
func (b Board) Highlighted() []pitch.Note {
	var res []pitch.Note
	for _, row := range b.Rows {
		for _, cell := range row {
			if cell.Member {
				res = append(res, cell.Note)
			}
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Frequency() < res[j].Frequency()
	})
	return res
}

// LowestInstances finds, for each selection note in degree order, its lowest
// sounding instance in the window. Notes with no instance are skipped.
func LowestInstances(inst tuning.Instrument, sel theory.Selection, w Window) []pitch.Note {
	w = w.Normalize()
	var res []pitch.Note
	for _, c := range sel.Notes() {
		var lowest *pitch.Note
		for _, str := range inst.Strings {
			for fret := w.Min; fret <= w.Max; fret++ {
				n := str.NoteAt(fret)
				if n.Class == c && (lowest == nil || n.MIDI() < lowest.MIDI()) {
					found := n
					lowest = &found
				}
			}
		}
		if lowest != nil {
			res = append(res, *lowest)
		}
	}
	return res
}

type Position struct {
	String int        `json:"string"`
	Fret   int        `json:"fret"`
	Note   pitch.Note `json:"note"`
}

// Positions lists every place c can be fretted in the window, string by string.
func Positions(inst tuning.Instrument, c pitch.Class, w Window) []Position {
	w = w.Normalize()
	var res []Position
	for s, str := range inst.Strings {
		first := w.Min + pitch.Interval(pitch.NoteAtFret(str.Open, str.Octave, w.Min).Class, c)
		for fret := first; fret <= w.Max; fret += pitch.NumClasses {
			res = append(res, Position{String: s, Fret: fret, Note: str.NoteAt(fret)})
		}
	}
	return res
}

// Muted marks a string left out of a voicing.
const Muted = -1

// Voicing picks at most one fret per string inside [min, min+span] so that
// every fretted note is a member of sel, preferring the lowest member fret on
// each string. Strings with no member in reach are Muted.
func Voicing(inst tuning.Instrument, sel theory.Selection, min, span int) []int {
	min = util.Clamp(min, 0, LastFret)
	w := Window{Min: min, Max: min + util.Clamp(span, 0, MaxSpan)}.Normalize()
	res := make([]int, len(inst.Strings))
	for s, str := range inst.Strings {
		res[s] = Muted
		for fret := w.Min; fret <= w.Max; fret++ {
			if sel.IsMember(str.NoteAt(fret).Class) {
				res[s] = fret
				break
			}
		}
	}
	return res
}
