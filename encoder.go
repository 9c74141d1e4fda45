package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// Encode serializes w into a canonical PCM WAVE buffer. The fmt derived
// fields and every size field are recomputed from the samples, so stale
// values in w are never written.
func Encode(w *WaveFile) ([]byte, error) {
	if w == nil {
		return nil, ErrNilWaveFile
	}

	if w.Fmt.AudioFormat != FormatPCM {
		return nil, fmt.Errorf("fmt chunk: %w: format tag %d", ErrUnsupportedFormat, w.Fmt.AudioFormat)
	}

	fmtChunk, err := NewFmtChunk(w.Fmt.NumChannels, w.Fmt.SampleRate, w.Fmt.BitsPerSample)
	if err != nil {
		return nil, fmt.Errorf("fmt chunk: %w", err)
	}

	data, err := NewDataChunk(w.Data.ChannelData, fmtChunk.BitsPerSample)
	if err != nil {
		return nil, fmt.Errorf("data chunk: %w", err)
	}

	if len(data.ChannelData) != int(fmtChunk.NumChannels) {
		return nil, fmt.Errorf("%w: fmt declares %d, data holds %d",
			ErrInvalidChannelCount, fmtChunk.NumChannels, len(data.ChannelData))
	}

	e := newByteWriter(headerSize + int(data.Size))

	// riff header, its size is patched once the chunks are written
	e.tag(riff.RiffID)
	e.u32(0)
	e.tag(riff.WavFormatID)

	writeFmtChunk(e, fmtChunk)

	if err := writeDataChunk(e, data, fmtChunk.BitsPerSample); err != nil {
		return nil, err
	}

	e.putU32At(4, uint32(e.len()-chunkHeaderSize))

	return e.bytes(), nil
}

// WriteTo encodes w and writes the result to dst.
func (w *WaveFile) WriteTo(dst io.Writer) (int64, error) {
	buf, err := Encode(w)
	if err != nil {
		return 0, err
	}

	n, err := dst.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write wav data: %w", err)
	}

	return int64(n), nil
}

func writeFmtChunk(e *byteWriter, f FmtChunk) {
	e.tag(riff.FmtID)
	e.u32(fmtChunkBodySize)
	e.u16(f.AudioFormat)
	e.u16(f.NumChannels)
	e.u32(f.SampleRate)
	e.u32(f.ByteRate)
	e.u16(f.BlockAlign)
	e.u16(f.BitsPerSample)
}

// writeDataChunk writes the samples frame by frame, channel 0 first.
func writeDataChunk(e *byteWriter, d DataChunk, bitsPerSample uint16) error {
	writeSample, err := e.sampleWriteFunc(bitsPerSample)
	if err != nil {
		return err
	}

	e.tag(riff.DataFormatID)
	e.u32(d.Size)

	for i := range d.NumFrames() {
		for _, samples := range d.ChannelData {
			writeSample(samples[i])
		}
	}

	return nil
}
