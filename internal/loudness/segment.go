package loudness

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// FullScale is the largest magnitude a signed 16-bit sample can express.
const FullScale = 32768.0

// ErrSilent is returned when a gain target cannot be computed because the
// signal has no energy.
var ErrSilent = errors.New("audio is silent")

// Segment holds interleaved signed 16-bit samples.
type Segment struct {
	Samples    []int16
	Channels   int
	SampleRate int
}

// FromPCM decodes little-endian s16 PCM.
func FromPCM(pcm []byte, channels, sampleRate int) (Segment, error) {
	if channels <= 0 {
		return Segment{}, fmt.Errorf("invalid channel count %d", channels)
	}
	if len(pcm)%(2*channels) != 0 {
		return Segment{}, fmt.Errorf("pcm length %d is not a whole number of %d-channel frames", len(pcm), channels)
	}
	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[2*i:]))
	}
	return Segment{Samples: samples, Channels: channels, SampleRate: sampleRate}, nil
}

// PCM encodes the samples as little-endian s16 PCM.
func (s Segment) PCM() []byte {
	out := make([]byte, 2*len(s.Samples))
	for i, v := range s.Samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(v))
	}
	return out
}

// Frames returns the number of per-channel sample frames.
func (s Segment) Frames() int {
	if s.Channels <= 0 {
		return 0
	}
	return len(s.Samples) / s.Channels
}

// Peak returns the largest absolute sample value.
func (s Segment) Peak() int {
	peak := 0
	for _, v := range s.Samples {
		a := int(v)
		if a < 0 {
			a = -a
		}
		if a > peak {
			peak = a
		}
	}
	return peak
}

// RMS returns the root mean square over all samples.
func (s Segment) RMS() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.Samples {
		f := float64(v)
		sum += f * f
	}
	return math.Sqrt(sum / float64(len(s.Samples)))
}

// DBFS returns the RMS level relative to full scale. Silence is -Inf.
func (s Segment) DBFS() float64 {
	rms := s.RMS()
	if rms == 0 {
		return math.Inf(-1)
	}
	return RatioToDB(rms / FullScale)
}

// MaxDBFS returns the peak level relative to full scale. Silence is -Inf.
func (s Segment) MaxDBFS() float64 {
	peak := s.Peak()
	if peak == 0 {
		return math.Inf(-1)
	}
	return RatioToDB(float64(peak) / FullScale)
}

// ApplyGain returns a copy scaled by db decibels. Each product is floored and
// saturated to the int16 range, so the result never exceeds full scale.
func (s Segment) ApplyGain(db float64) Segment {
	factor := DBToRatio(db)
	out := Segment{
		Samples:    make([]int16, len(s.Samples)),
		Channels:   s.Channels,
		SampleRate: s.SampleRate,
	}
	for i, v := range s.Samples {
		out.Samples[i] = saturate(math.Floor(float64(v) * factor))
	}
	return out
}

// PeakGain returns the gain in dB that brings the peak to -headroom dBFS.
func PeakGain(s Segment, headroom float64) (float64, bool) {
	peak := s.Peak()
	if peak == 0 {
		return 0, false
	}
	target := FullScale * DBToRatio(-headroom)
	return RatioToDB(target / float64(peak)), true
}

// TargetGain returns the flat gain that moves the average level to target dBFS.
func TargetGain(s Segment, target float64) (float64, error) {
	level := s.DBFS()
	if math.IsInf(level, -1) {
		return 0, ErrSilent
	}
	return target - level, nil
}

// RatioToDB converts an amplitude ratio to decibels.
func RatioToDB(ratio float64) float64 {
	return 20 * math.Log10(ratio)
}

// DBToRatio converts decibels to an amplitude ratio.
func DBToRatio(db float64) float64 {
	return math.Pow(10, db/20)
}

func saturate(v float64) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	default:
		return int16(v)
	}
}
