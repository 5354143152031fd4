package testsupport

import (
	"encoding/binary"
	"math"
)

// TonePCM returns interleaved s16le PCM of a sine at the given peak
// amplitude, repeated on every channel.
func TonePCM(frames, channels int, amplitude float64) []byte {
	if channels <= 0 {
		channels = 1
	}
	out := make([]byte, 0, frames*channels*2)
	for i := 0; i < frames; i++ {
		v := int16(math.Round(amplitude * math.Sin(2*math.Pi*float64(i)/64)))
		for c := 0; c < channels; c++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(v))
		}
	}
	return out
}
