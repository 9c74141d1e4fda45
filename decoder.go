package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// Decode parses a complete canonical PCM WAVE file held in data.
// The first failure aborts the parse; no partial WaveFile is returned.
func Decode(data []byte) (*WaveFile, error) {
	r := newByteReader(data)

	hdr, err := readRiffHeader(r, len(data))
	if err != nil {
		return nil, fmt.Errorf("riff header: %w", err)
	}

	fmtChunk, err := readFmtChunk(r)
	if err != nil {
		return nil, fmt.Errorf("fmt chunk: %w", err)
	}

	dataChunk, err := readDataChunk(r, fmtChunk)
	if err != nil {
		return nil, fmt.Errorf("data chunk: %w", err)
	}

	if n := r.remaining(); n > 0 {
		return nil, fmt.Errorf("%w: %d", ErrTrailingBytes, n)
	}

	return &WaveFile{Riff: hdr, Fmt: fmtChunk, Data: dataChunk}, nil
}

// DecodeReader buffers everything r has to offer and decodes it.
func DecodeReader(r io.Reader) (*WaveFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav data: %w", err)
	}

	return Decode(data)
}

func readRiffHeader(r *byteReader, totalLen int) (RiffHeader, error) {
	var (
		hdr RiffHeader
		err error
	)

	hdr.ID, err = r.tag(riff.RiffID)
	if err != nil {
		return RiffHeader{}, err
	}

	hdr.Size, err = r.u32()
	if err != nil {
		return RiffHeader{}, fmt.Errorf("failed to read file size: %w", err)
	}

	expected := uint64(totalLen) - chunkHeaderSize
	if uint64(hdr.Size) != expected {
		return RiffHeader{}, &ValueError{Err: ErrInvalidFileSize, Declared: uint64(hdr.Size), Expected: expected}
	}

	hdr.Format, err = r.tag(riff.WavFormatID)
	if err != nil {
		return RiffHeader{}, err
	}

	return hdr, nil
}

// readFmtChunk reads the fields in wire order and checks the derived ones.
func readFmtChunk(r *byteReader) (FmtChunk, error) {
	var (
		f   FmtChunk
		err error
	)

	f.ID, err = r.tag(riff.FmtID)
	if err != nil {
		return FmtChunk{}, err
	}

	if f.Size, err = r.u32(); err != nil {
		return FmtChunk{}, fmt.Errorf("failed to read chunk size: %w", err)
	}

	if f.AudioFormat, err = r.u16(); err != nil {
		return FmtChunk{}, fmt.Errorf("failed to read wav format: %w", err)
	}

	if f.NumChannels, err = r.u16(); err != nil {
		return FmtChunk{}, fmt.Errorf("failed to read channels: %w", err)
	}

	if f.SampleRate, err = r.u32(); err != nil {
		return FmtChunk{}, fmt.Errorf("failed to read sample rate: %w", err)
	}

	if f.ByteRate, err = r.u32(); err != nil {
		return FmtChunk{}, fmt.Errorf("failed to read byte rate: %w", err)
	}

	if f.BlockAlign, err = r.u16(); err != nil {
		return FmtChunk{}, fmt.Errorf("failed to read block align: %w", err)
	}

	if f.BitsPerSample, err = r.u16(); err != nil {
		return FmtChunk{}, fmt.Errorf("failed to read bit depth: %w", err)
	}

	if err := f.checkDerived(); err != nil {
		return FmtChunk{}, err
	}

	if f.AudioFormat != FormatPCM {
		return FmtChunk{}, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, f.AudioFormat)
	}

	return f, nil
}

// readDataChunk reads the frame-interleaved samples described by f.
func readDataChunk(r *byteReader, f FmtChunk) (DataChunk, error) {
	var (
		d   DataChunk
		err error
	)

	d.ID, err = r.tag(riff.DataFormatID)
	if err != nil {
		return DataChunk{}, err
	}

	if d.Size, err = r.u32(); err != nil {
		return DataChunk{}, fmt.Errorf("failed to read chunk size: %w", err)
	}

	readSample, err := r.sampleReadFunc(f.BitsPerSample)
	if err != nil {
		return DataChunk{}, err
	}

	if f.NumChannels == 0 {
		return DataChunk{}, fmt.Errorf("%w: %d", ErrInvalidChannelCount, f.NumChannels)
	}

	frameSize := uint32(f.NumChannels) * uint32(bytesPerSample(f.BitsPerSample))
	if d.Size%frameSize != 0 {
		return DataChunk{}, &ValueError{
			Err:      ErrMisalignedDataChunk,
			Declared: uint64(d.Size),
			Expected: uint64(d.Size - d.Size%frameSize),
		}
	}

	frames := int(d.Size / frameSize)
	if need := int(d.Size); need > r.remaining() {
		return DataChunk{}, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrUnexpectedEndOfInput, need, r.offset(), r.remaining())
	}

	d.ChannelData = make([][]int32, f.NumChannels)
	for ch := range d.ChannelData {
		d.ChannelData[ch] = make([]int32, frames)
	}

	for i := range frames {
		for ch := range d.ChannelData {
			d.ChannelData[ch][i], err = readSample()
			if err != nil {
				return DataChunk{}, fmt.Errorf("failed to read sample %d of channel %d: %w", i, ch, err)
			}
		}
	}

	return d, nil
}
