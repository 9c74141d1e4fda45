package source

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

// DecodeAIFF reads all PCM samples of an AIFF file. AIFF samples are
// signed at every bit depth, so the values map directly onto WAVE PCM.
func DecodeAIFF(r io.ReadSeeker) (*audio.IntBuffer, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind aiff input: %w", err)
	}

	dec = aiff.NewDecoder(r)

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode aiff samples: %w", err)
	}

	buf.Format = dec.Format()
	buf.SourceBitDepth = int(dec.BitDepth)

	return buf, nil
}
