package midi

import (
	"time"

	"github.com/jsphweid/fretdex/pitch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 960
	exportBPM       = 120
	velocity        = 100
)

// Export writes notes as a single track, one after another, each lasting dur
// followed by gap of silence.
func Export(notes []pitch.Note, dur, gap time.Duration) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(exportBPM))
	var pending uint32
	for _, n := range notes {
		key := KeyFor(n)
		tr.Add(pending, midi.NoteOn(0, key, velocity))
		tr.Add(durationToTicks(dur), midi.NoteOff(0, key))
		pending = durationToTicks(gap)
	}
	tr.Close(pending)
	s.Add(tr)
	return s
}

func durationToTicks(d time.Duration) uint32 {
	quarter := time.Minute / exportBPM
	return uint32(d * ticksPerQuarter / quarter)
}

// Notes lists the keys of every note-on in s, in time order across tracks.
func Notes(s *smf.SMF) []pitch.Note {
	var res []pitch.Note
	for _, ev := range Events(s) {
		if !ev.IsNoteOff {
			res = append(res, NoteFor(ev.Key))
		}
	}
	return res
}
