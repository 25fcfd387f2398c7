package strum

import (
	"bytes"
	"testing"

	"github.com/jsphweid/fretdex/fretboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopCloser struct {
	bytes.Buffer
}

func (nopCloser) Close() error { return nil }

func TestFrameFor(t *testing.T) {
	// C major from the high E down: 0 1 0 2 3 x
	f, err := FrameFor([]int{0, 1, 0, 2, 3, fretboard.Muted}, 7)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([MaxStrings]byte{OpenFret, 3, 2, OpenFret, 1, OpenFret}, f.Fret)
	assert.Equal(byte(0b111110), f.StrumMask)
	assert.Equal(byte(7), f.Seq)
}

func TestFrameForRejects(t *testing.T) {
	_, err := FrameFor([]int{0, 0, 0, 0, 0, 0, 0}, 0)
	assert.Error(t, err)
	_, err = FrameFor([]int{12}, 0)
	assert.Error(t, err)
}

func TestEncodeChecksum(t *testing.T) {
	f := EmptyFrame(1)
	data := f.Encode()
	require.Len(t, data, 15)
	assert.Equal(t, []byte{SOF0, SOF1, 11, CmdApplyFrame}, data[:4])

	var cks byte
	for _, b := range data[2 : len(data)-1] {
		cks ^= b
	}
	assert.Equal(t, cks, data[len(data)-1])
}

func TestSendFrame(t *testing.T) {
	var w nopCloser
	p := NewPort(&w)
	f := EmptyFrame(3)
	require.NoError(t, p.SendFrame(f))
	assert.Equal(t, f.Encode(), w.Bytes())
	assert.NoError(t, p.Close())
}
