package audio

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// OtoPlayer plays synthesized tones on the default sound device.
type OtoPlayer struct {
	ctx   *oto.Context
	synth Synth

	mu      sync.Mutex
	playing []*oto.Player
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &OtoPlayer{ctx: ctx, synth: NewSynth(sampleRate)}, nil
}

func (o *OtoPlayer) PlayTone(ctx context.Context, freq float64, dur time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pcm := FloatBufferTo16BitLE(o.synth.Render(freq, dur), nil)
	p := o.ctx.NewPlayer(bytes.NewReader(pcm))
	p.Play()

	o.mu.Lock()
	defer o.mu.Unlock()
	o.reap()
	o.playing = append(o.playing, p)
	return nil
}

// reap closes players that have finished. Callers hold mu.
func (o *OtoPlayer) reap() {
	alive := o.playing[:0]
	for _, p := range o.playing {
		if p.IsPlaying() {
			alive = append(alive, p)
		} else {
			p.Close()
		}
	}
	o.playing = alive
}

// Wait blocks until every started tone has finished.
func (o *OtoPlayer) Wait(ctx context.Context) error {
	for {
		o.mu.Lock()
		o.reap()
		n := len(o.playing)
		o.mu.Unlock()
		if n == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (o *OtoPlayer) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, p := range o.playing {
		if err := p.Close(); err != nil {
			return fmt.Errorf("cannot close oto player: %w", err)
		}
	}
	o.playing = nil
	return nil
}
