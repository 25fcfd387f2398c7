package strum

import (
	"fmt"
	"io"
	"log/slog"

	"go.bug.st/serial"
)

// Port writes frames to a serial device.
type Port struct {
	w io.WriteCloser
}

func OpenPort(name string, baud int) (*Port, error) {
	p, err := serial.Open(name, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("serial: failed to open %s: %w", name, err)
	}
	slog.Info("serial: port opened", "device", name, "baud", baud)
	return &Port{w: p}, nil
}

// NewPort wraps any writer, e.g. a pipe in tests.
func NewPort(w io.WriteCloser) *Port {
	return &Port{w: w}
}

func (p *Port) SendFrame(f Frame) error {
	data := f.Encode()
	n, err := p.w.Write(data)
	if err != nil {
		return fmt.Errorf("serial: write: %w", err)
	}
	slog.Debug("serial: frame sent", "bytes", n, "seq", f.Seq, "strum_mask", f.StrumMask)
	return nil
}

func (p *Port) Close() error {
	return p.w.Close()
}

// Ports lists serial devices on this machine.
func Ports() ([]string, error) {
	return serial.GetPortsList()
}
