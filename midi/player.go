package midi

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

// Player sends tones to a MIDI output port, rounding each frequency to the
// nearest key.
type Player struct {
	out     drivers.Out
	send    func(msg midi.Message) error
	channel uint8

	mu     sync.Mutex
	timers []*time.Timer
}

func OpenPlayer(portName string) (*Player, error) {
	out, err := midi.FindOutPort(portName)
	if err != nil {
		return nil, fmt.Errorf("can't find midi out port %q: %w", portName, err)
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("can't open midi out port %q: %w", portName, err)
	}
	return &Player{out: out, send: send}, nil
}

func (p *Player) PlayTone(ctx context.Context, freq float64, dur time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := KeyForFrequency(freq)
	if err := p.send(midi.NoteOn(p.channel, key, velocity)); err != nil {
		return fmt.Errorf("note on %d: %w", key, err)
	}
	p.mu.Lock()
	p.timers = append(p.timers, time.AfterFunc(dur, func() {
		p.send(midi.NoteOff(p.channel, key))
	}))
	p.mu.Unlock()
	return nil
}

// Close silences the channel and closes the port.
func (p *Player) Close() error {
	p.mu.Lock()
	for _, t := range p.timers {
		t.Stop()
	}
	p.timers = nil
	p.mu.Unlock()
	for key := uint8(0); key < 128; key++ {
		p.send(midi.NoteOff(p.channel, key))
	}
	return p.out.Close()
}

// InPortNames lists available input ports.
func InPortNames() []string {
	var res []string
	for _, in := range midi.GetInPorts() {
		res = append(res, in.String())
	}
	return res
}

func OutPortNames() []string {
	var res []string
	for _, out := range midi.GetOutPorts() {
		res = append(res, out.String())
	}
	return res
}

// Listen calls onKey for every note start on the named input port until ctx
// is done.
func Listen(ctx context.Context, portName string, onKey func(key, velocity uint8)) error {
	in, err := midi.FindInPort(portName)
	if err != nil {
		return fmt.Errorf("can't find midi in port %q: %w", portName, err)
	}
	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		if msg.GetNoteStart(&ch, &key, &vel) {
			onKey(key, vel)
		}
	})
	if err != nil {
		return fmt.Errorf("can't listen to %q: %w", portName, err)
	}
	<-ctx.Done()
	stop()
	return nil
}

func CloseDriver() {
	midi.CloseDriver()
}
