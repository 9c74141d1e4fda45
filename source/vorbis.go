package source

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader used here.
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read fills p with interleaved samples and returns how many it wrote.
	Read(p []float32) (int, error)
}

// DecodeVorbis decodes an Ogg Vorbis stream and quantizes it to bitDepth.
func DecodeVorbis(r io.Reader, bitDepth int) (*audio.IntBuffer, error) {
	if !supportedBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open ogg vorbis stream: %w", err)
	}

	return readVorbis(dec, bitDepth)
}

func readVorbis(dec oggReader, bitDepth int) (*audio.IntBuffer, error) {
	numChans := dec.Channels()
	if numChans <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidStream, numChans)
	}

	var (
		data []float32
		buf  = make([]float32, 4096*numChans)
	)

	for {
		n, err := dec.Read(buf)
		data = append(data, buf[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg vorbis stream: %w", err)
		}
	}

	// drop a trailing partial frame
	data = data[:len(data)-len(data)%numChans]

	return floatsToIntBuffer(data, dec.SampleRate(), numChans, bitDepth)
}
