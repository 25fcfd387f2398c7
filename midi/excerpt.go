package midi

import (
	"time"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Excerpt copies s from the given time on, keeping at most maxNotes note on
// and off events per track. Notes keep their original times, and a note off
// is only kept when its note on was. Other events before the start are moved
// to tick 0 so tempo changes still apply. maxNotes <= 0 keeps every note.
func Excerpt(s *smf.SMF, from time.Duration, maxNotes int) *smf.SMF {
	res := smf.New()
	res.TimeFormat = s.TimeFormat

	start := from.Microseconds()
	for _, track := range s.Tracks {
		var newTrack smf.Track
		var absTicks, lastKept int64
		var numNoteOnOff int
		started := make(map[uint8]bool)
	TrackEventLoop:
		for _, evt := range track {
			absTicks += int64(evt.Delta)
			var channel, key, vel uint8
			isStart := evt.Message.GetNoteStart(&channel, &key, &vel)
			isEnd := !isStart && evt.Message.GetNoteEnd(&channel, &key)
			switch {
			case isStart || isEnd:
				if s.TimeAt(absTicks) < start || (isEnd && !started[key]) {
					continue
				}
				if maxNotes > 0 && numNoteOnOff >= maxNotes {
					break TrackEventLoop
				}
				started[key] = isStart
			case evt.Message.Is(smf.MetaEndOfTrackMsg):
				continue
			case s.TimeAt(absTicks) < start:
				evt.Delta = 0
				newTrack = append(newTrack, evt)
				continue
			}
			evt.Delta = uint32(absTicks - lastKept)
			newTrack = append(newTrack, evt)
			lastKept = absTicks
			if isStart || isEnd {
				numNoteOnOff++
			}
		}
		newTrack.Close(0)
		res.Tracks = append(res.Tracks, newTrack)
	}
	return res
}
