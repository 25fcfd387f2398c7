// Package audio plays frequencies produced by the theory core. The core never
// imports it; callers hand it plain frequencies and durations.
package audio

import (
	"context"
	"time"
)

const (
	DefaultDuration = 500 * time.Millisecond
	DefaultGap      = 100 * time.Millisecond
)

// Player produces audible tones.
type Player interface {
	// PlayTone starts a tone and returns without waiting for it to finish.
	PlayTone(ctx context.Context, freq float64, dur time.Duration) error
}

// PlaySequence plays freqs one after another, waiting dur+gap after each,
// and returns once the whole sequence has finished or ctx is done.
func PlaySequence(ctx context.Context, p Player, freqs []float64, dur, gap time.Duration) error {
	for _, f := range freqs {
		if err := p.PlayTone(ctx, f, dur); err != nil {
			return err
		}
		t := time.NewTimer(dur + gap)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}

// Recorder remembers what it was asked to play. It is used where no sound
// device is wanted, e.g. tests and dry runs.
type Recorder struct {
	Tones []Tone
}

type Tone struct {
	Frequency float64
	Duration  time.Duration
}

func (r *Recorder) PlayTone(ctx context.Context, freq float64, dur time.Duration) error {
	r.Tones = append(r.Tones, Tone{Frequency: freq, Duration: dur})
	return nil
}
