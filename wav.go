package wav

import (
	"fmt"
	"time"

	"github.com/go-audio/riff"
)

// FormatPCM is the fmt audio format tag for linear PCM, the only one supported.
const FormatPCM = 1

const (
	chunkHeaderSize  = 8
	riffHeaderSize   = 12
	fmtChunkBodySize = 16
	// headerSize is the byte length of everything before the samples.
	headerSize = riffHeaderSize + chunkHeaderSize + fmtChunkBodySize + chunkHeaderSize
)

// RiffHeader is the 12 byte container header.
type RiffHeader struct {
	ID [4]byte
	// Size is the byte length of everything after this field.
	Size   uint32
	Format [4]byte
}

// WaveFile is a decoded canonical PCM WAVE file.
type WaveFile struct {
	Riff RiffHeader
	Fmt  FmtChunk
	Data DataChunk
}

// NewWaveFile assembles a WaveFile from a fmt and a data chunk and computes
// the RIFF header size from them.
func NewWaveFile(fmtChunk FmtChunk, data DataChunk) (*WaveFile, error) {
	if err := fmtChunk.validate(); err != nil {
		return nil, fmt.Errorf("fmt chunk: %w", err)
	}

	if len(data.ChannelData) != int(fmtChunk.NumChannels) {
		return nil, fmt.Errorf("%w: fmt declares %d, data holds %d",
			ErrInvalidChannelCount, fmtChunk.NumChannels, len(data.ChannelData))
	}

	if err := data.validate(fmtChunk.BitsPerSample); err != nil {
		return nil, fmt.Errorf("data chunk: %w", err)
	}

	w := &WaveFile{Fmt: fmtChunk, Data: data}
	w.Riff = w.riffHeader()

	return w, nil
}

// riffHeader computes the container header for the current chunks.
func (w *WaveFile) riffHeader() RiffHeader {
	return RiffHeader{
		ID:     riff.RiffID,
		Size:   uint32(w.encodedLen() - chunkHeaderSize),
		Format: riff.WavFormatID,
	}
}

func (w *WaveFile) encodedLen() int {
	return headerSize + int(w.Data.Size)
}

// NumChannels returns the channel count declared by the fmt chunk.
func (w *WaveFile) NumChannels() int {
	if w == nil {
		return 0
	}

	return int(w.Fmt.NumChannels)
}

// NumFrames returns the number of samples per channel.
func (w *WaveFile) NumFrames() int {
	if w == nil {
		return 0
	}

	return w.Data.NumFrames()
}

// Duration returns the playback length of the samples.
func (w *WaveFile) Duration() time.Duration {
	if w == nil || w.Fmt.SampleRate == 0 {
		return 0
	}

	return time.Duration(w.NumFrames()) * time.Second / time.Duration(w.Fmt.SampleRate)
}

// String implements the Stringer interface.
func (w *WaveFile) String() string {
	if w == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%d Hz @ %d bits, %d channel(s), %d avg bytes/sec, duration: %s",
		w.Fmt.SampleRate, w.Fmt.BitsPerSample, w.Fmt.NumChannels, w.Fmt.ByteRate, w.Duration())
}

func bytesPerSample(bitsPerSample uint16) int {
	return int(bitsPerSample) / 8
}

func isSupportedBitDepth(bitsPerSample uint16) bool {
	switch bitsPerSample {
	case 8, 16, 32:
		return true
	default:
		return false
	}
}
