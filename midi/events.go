package midi

import (
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Event is a note on or off with its absolute time in microseconds.
type Event struct {
	Offset    int64
	IsNoteOff bool
	Key       uint8
}

// Events flattens every track, sorted by time with note offs first at equal
// times.
func Events(s *smf.SMF) []Event {
	var res []Event
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, vel uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &vel):
				res = append(res, Event{Offset: s.TimeAt(absTicks), Key: key})
			case event.Message.GetNoteEnd(&channel, &key):
				res = append(res, Event{Offset: s.TimeAt(absTicks), Key: key, IsNoteOff: true})
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Offset != res[j].Offset {
			return res[i].Offset < res[j].Offset
		}
		return res[i].IsNoteOff && !res[j].IsNoteOff
	})
	return res
}
