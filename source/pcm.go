package source

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

const (
	scalePCMInt8  = 128.0
	scalePCMInt16 = 32768.0
	scalePCMInt32 = 2147483648.0
	maxPCMInt8    = 127
	maxPCMInt16   = 32767
	maxPCMInt32   = 2147483647
)

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// float32ToPCMInt scales a normalized sample to a signed integer of bitDepth bits.
func float32ToPCMInt(value float32, bitDepth int) int {
	value = clampFloat32(value, -1, 1)

	switch bitDepth {
	case 8:
		return clampScaledPCM(value, scalePCMInt8, maxPCMInt8)
	case 16:
		return clampScaledPCM(value, scalePCMInt16, maxPCMInt16)
	case 32:
		return clampScaledPCM(value, scalePCMInt32, maxPCMInt32)
	default:
		return 0
	}
}

func clampScaledPCM(value float32, scale float64, max int64) int {
	sample := min(int64(math.Round(float64(value)*scale)), max)

	if sample < int64(-scale) {
		sample = int64(-scale)
	}

	return int(sample)
}

func floatsToIntBuffer(data []float32, sampleRate, numChans, bitDepth int) (*audio.IntBuffer, error) {
	if !supportedBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChans, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(data)),
	}

	for i, v := range data {
		buf.Data[i] = float32ToPCMInt(v, bitDepth)
	}

	return buf, nil
}

// Rescale converts buf in place to bitDepth by shifting every sample, so a
// full scale input stays full scale. It is a no-op when the depths match.
func Rescale(buf *audio.IntBuffer, bitDepth int) error {
	if buf == nil {
		return ErrNilBuffer
	}

	if !supportedBitDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if buf.SourceBitDepth <= 0 || buf.SourceBitDepth > 32 {
		return fmt.Errorf("%w: source %d", ErrUnsupportedBitDepth, buf.SourceBitDepth)
	}

	shift := bitDepth - buf.SourceBitDepth

	switch {
	case shift > 0:
		for i := range buf.Data {
			buf.Data[i] <<= shift
		}
	case shift < 0:
		for i := range buf.Data {
			buf.Data[i] >>= -shift
		}
	}

	buf.SourceBitDepth = bitDepth

	return nil
}

func supportedBitDepth(bitDepth int) bool {
	return bitDepth == 8 || bitDepth == 16 || bitDepth == 32
}
