package audio

import (
	"encoding/binary"
	"math"
)

// FloatBufferTo16BitLE converts float samples to signed 16-bit little endian,
// clipping anything outside [-1, 1]. out is reused when it has capacity.
func FloatBufferTo16BitLE(buff []float32, out []byte) []byte {
	out = out[:0]
	var tmp [2]byte
	for _, v := range buff {
		var uv int16
		switch {
		case v < -1.0:
			uv = -math.MaxInt16
		case v > 1.0:
			uv = math.MaxInt16
		default:
			uv = int16(v * math.MaxInt16)
		}
		binary.LittleEndian.PutUint16(tmp[:], uint16(uv))
		out = append(out, tmp[:]...)
	}
	return out
}
