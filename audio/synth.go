package audio

import (
	"math"
	"time"
)

// Synth renders a plucked-ish triangle tone with an attack, decay, sustain
// and release envelope.
type Synth struct {
	SampleRate int
	Gain       float64
}

func NewSynth(sampleRate int) Synth {
	return Synth{SampleRate: sampleRate, Gain: 0.3}
}

const (
	attack       = 0.01
	decayEnd     = 0.1
	releaseLen   = 0.1
	peakLevel    = 0.8
	sustainLevel = 0.3
	floorLevel   = 0.01
)

// Envelope returns the amplitude at t seconds into a note of length dur.
func Envelope(t, dur float64) float64 {
	switch {
	case t < 0 || t >= dur:
		return 0
	case t < attack:
		return peakLevel * t / attack
	case t < decayEnd:
		return expRamp(peakLevel, sustainLevel, (t-attack)/(decayEnd-attack))
	case t < dur-releaseLen:
		return sustainLevel
	default:
		start := math.Max(dur-releaseLen, decayEnd)
		if dur <= start {
			return sustainLevel
		}
		return expRamp(sustainLevel, floorLevel, (t-start)/(dur-start))
	}
}

func expRamp(from, to, frac float64) float64 {
	return from * math.Pow(to/from, frac)
}

func triangle(phase float64) float64 {
	phase -= math.Floor(phase)
	return 4*math.Abs(phase-0.5) - 1
}

// Render returns mono float32 samples in [-1, 1].
func (s Synth) Render(freq float64, dur time.Duration) []float32 {
	secs := dur.Seconds()
	n := int(secs * float64(s.SampleRate))
	buf := make([]float32, n)
	for i := range buf {
		t := float64(i) / float64(s.SampleRate)
		buf[i] = float32(s.Gain * Envelope(t, secs) * triangle(freq*t))
	}
	return buf
}
