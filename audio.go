package wav

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

// IntBuffer returns the samples as an interleaved go-audio buffer.
func (w *WaveFile) IntBuffer() *audio.IntBuffer {
	if w == nil {
		return nil
	}

	numChans := len(w.Data.ChannelData)
	frames := w.Data.NumFrames()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChans,
			SampleRate:  int(w.Fmt.SampleRate),
		},
		SourceBitDepth: int(w.Fmt.BitsPerSample),
		Data:           make([]int, numChans*frames),
	}

	for i := range frames {
		for ch, samples := range w.Data.ChannelData {
			buf.Data[i*numChans+ch] = int(samples[i])
		}
	}

	return buf
}

// FromIntBuffer builds a WaveFile from an interleaved go-audio buffer.
// buf.SourceBitDepth selects the sample width.
func FromIntBuffer(buf *audio.IntBuffer) (*WaveFile, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: buffer has no format", ErrInvalidChannelCount)
	}

	numChans := buf.Format.NumChannels
	if numChans <= 0 || numChans > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannelCount, numChans)
	}

	if buf.Format.SampleRate <= 0 || int64(buf.Format.SampleRate) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, buf.Format.SampleRate)
	}

	if buf.SourceBitDepth < 0 || buf.SourceBitDepth > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, buf.SourceBitDepth)
	}

	if len(buf.Data)%numChans != 0 {
		return nil, fmt.Errorf("%w: %d samples do not split into %d channels",
			ErrChannelLengthMismatch, len(buf.Data), numChans)
	}

	fmtChunk, err := NewFmtChunk(uint16(numChans), uint32(buf.Format.SampleRate), uint16(buf.SourceBitDepth))
	if err != nil {
		return nil, err
	}

	frames := len(buf.Data) / numChans
	channels := make([][]int32, numChans)

	for ch := range channels {
		channels[ch] = make([]int32, frames)
	}

	for i, v := range buf.Data {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("%w: sample %d is %d", ErrSampleOutOfRange, i, v)
		}

		channels[i%numChans][i/numChans] = int32(v)
	}

	data, err := NewDataChunk(channels, fmtChunk.BitsPerSample)
	if err != nil {
		return nil, err
	}

	return NewWaveFile(fmtChunk, data)
}
