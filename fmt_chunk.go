package wav

import (
	"fmt"
	"math"

	"github.com/go-audio/riff"
)

// FmtChunk stores the canonical 16 byte PCM fmt chunk.
type FmtChunk struct {
	ID            [4]byte
	Size          uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// NewFmtChunk builds a PCM fmt chunk with the derived byte rate and block
// align computed from the passed parameters.
func NewFmtChunk(numChannels uint16, sampleRate uint32, bitsPerSample uint16) (FmtChunk, error) {
	f := FmtChunk{
		ID:            riff.FmtID,
		Size:          fmtChunkBodySize,
		AudioFormat:   FormatPCM,
		NumChannels:   numChannels,
		SampleRate:    sampleRate,
		BitsPerSample: bitsPerSample,
	}
	f.ByteRate = uint32(f.expectedByteRate())
	f.BlockAlign = uint16(f.expectedBlockAlign())

	if err := f.validate(); err != nil {
		return FmtChunk{}, err
	}

	return f, nil
}

// expectedByteRate and expectedBlockAlign are exact; the results may not fit
// the on-disk field widths.
func (f FmtChunk) expectedByteRate() uint64 {
	return uint64(f.SampleRate) * uint64(f.NumChannels) * uint64(f.BitsPerSample) / 8
}

func (f FmtChunk) expectedBlockAlign() uint64 {
	return uint64(f.NumChannels) * uint64(f.BitsPerSample) / 8
}

// checkDerived verifies the redundant byte rate and block align fields.
func (f FmtChunk) checkDerived() error {
	if want := f.expectedByteRate(); uint64(f.ByteRate) != want {
		return &ValueError{Err: ErrInvalidByteRate, Declared: uint64(f.ByteRate), Expected: want}
	}

	if want := f.expectedBlockAlign(); uint64(f.BlockAlign) != want {
		return &ValueError{Err: ErrInvalidBlockAlign, Declared: uint64(f.BlockAlign), Expected: want}
	}

	return nil
}

// checkDerivedRange rejects parameters whose derived fields can't be stored.
func (f FmtChunk) checkDerivedRange() error {
	if rate := f.expectedByteRate(); rate > math.MaxUint32 {
		return fmt.Errorf("%w: %d does not fit 32 bits", ErrInvalidByteRate, rate)
	}

	if align := f.expectedBlockAlign(); align > math.MaxUint16 {
		return fmt.Errorf("%w: %d does not fit 16 bits", ErrInvalidBlockAlign, align)
	}

	return nil
}

// validate checks a chunk is something the encoder can write.
func (f FmtChunk) validate() error {
	if f.AudioFormat != FormatPCM {
		return fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, f.AudioFormat)
	}

	if f.NumChannels == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannelCount, f.NumChannels)
	}

	if f.SampleRate == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, f.SampleRate)
	}

	if !isSupportedBitDepth(f.BitsPerSample) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, f.BitsPerSample)
	}

	if err := f.checkDerivedRange(); err != nil {
		return err
	}

	return f.checkDerived()
}
