package wav

import (
	"fmt"
	"math"

	"github.com/go-audio/riff"
)

// DataChunk stores the PCM samples of a data chunk, one slice per channel.
type DataChunk struct {
	ID [4]byte
	// Size is the byte length of the sample payload.
	Size        uint32
	ChannelData [][]int32
}

// NewDataChunk builds a data chunk from per-channel samples. All channels
// must hold the same number of samples and every sample must fit the bit depth.
func NewDataChunk(channels [][]int32, bitsPerSample uint16) (DataChunk, error) {
	d := DataChunk{
		ID:          riff.DataFormatID,
		ChannelData: channels,
	}

	if !isSupportedBitDepth(bitsPerSample) {
		return DataChunk{}, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitsPerSample)
	}

	if len(channels) == 0 {
		return DataChunk{}, fmt.Errorf("%w: %d", ErrInvalidChannelCount, len(channels))
	}

	size := uint64(len(channels)) * uint64(len(channels[0])) * uint64(bytesPerSample(bitsPerSample))
	if size > math.MaxUint32-(headerSize-chunkHeaderSize) {
		return DataChunk{}, fmt.Errorf("%w: %d bytes of samples", ErrDataTooLarge, size)
	}

	d.Size = uint32(size)

	if err := d.validate(bitsPerSample); err != nil {
		return DataChunk{}, err
	}

	return d, nil
}

// NumFrames returns the number of samples per channel.
func (d DataChunk) NumFrames() int {
	if len(d.ChannelData) == 0 {
		return 0
	}

	return len(d.ChannelData[0])
}

func (d DataChunk) validate(bitsPerSample uint16) error {
	if len(d.ChannelData) == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannelCount, len(d.ChannelData))
	}

	frames := len(d.ChannelData[0])
	for ch, samples := range d.ChannelData {
		if len(samples) != frames {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrChannelLengthMismatch, ch, len(samples), frames)
		}
	}

	want := uint64(len(d.ChannelData)) * uint64(frames) * uint64(bytesPerSample(bitsPerSample))
	if uint64(d.Size) != want {
		return &ValueError{Err: ErrInvalidDataSize, Declared: uint64(d.Size), Expected: want}
	}

	lo, hi := sampleRange(bitsPerSample)
	for ch, samples := range d.ChannelData {
		for i, v := range samples {
			if v < lo || v > hi {
				return fmt.Errorf("%w: channel %d sample %d is %d, %d-bit range is [%d, %d]",
					ErrSampleOutOfRange, ch, i, v, bitsPerSample, lo, hi)
			}
		}
	}

	return nil
}

// sampleRange returns the signed range representable at a bit depth.
func sampleRange(bitsPerSample uint16) (int32, int32) {
	switch bitsPerSample {
	case 8:
		return math.MinInt8, math.MaxInt8
	case 16:
		return math.MinInt16, math.MaxInt16
	default:
		return math.MinInt32, math.MaxInt32
	}
}
