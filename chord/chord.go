package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

func CreateChordKey(keys []uint8) string {
	sorted := append([]uint8(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, key := range sorted {
		res += fmt.Sprintf("%v", key)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

func getChord(pressed map[uint8]int64, offset int64) model.Chord {
	// storing it in millis, plenty for a fretboard
	c := model.Chord{Offset: uint32(offset / 1000)}
	c.Keys = util.GetKeys(pressed)
	return c
}

// GetChords returns every distinct set of keys held down at once, in time
// order. Sets that only differ by a later release are reported again.
func GetChords(s *smf.SMF) []model.Chord {
	var chords []model.Chord
	var order []int64
	timestampToChords := make(map[int64]model.Chord)
	pressed := make(map[uint8]int64)
	for _, evt := range midi.Events(s) {
		if evt.IsNoteOff {
			delete(pressed, evt.Key)
		} else {
			pressed[evt.Key] = evt.Offset
		}
		if _, ok := timestampToChords[evt.Offset]; !ok {
			order = append(order, evt.Offset)
		}
		timestampToChords[evt.Offset] = getChord(pressed, evt.Offset)
	}

	for _, offset := range order {
		c := timestampToChords[offset]
		if len(c.Keys) > 0 {
			chords = append(chords, c)
		}
	}
	return chords
}

// Classes reduces a chord to its distinct pitch classes, lowest key first.
func Classes(c model.Chord) []pitch.Class {
	var res []pitch.Class
	for _, key := range c.Keys {
		res = append(res, midi.NoteFor(key).Class)
	}
	return util.Dedupe(res)
}

// Distinct drops chords whose key set equals the one before it.
func Distinct(chords []model.Chord) []model.Chord {
	var res []model.Chord
	var prev string
	for _, c := range chords {
		key := CreateChordKey(c.Keys)
		if key != prev {
			res = append(res, c)
		}
		prev = key
	}
	return res
}
