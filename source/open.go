package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
)

// Open decodes the audio file at path, picking the decoder from the file
// extension. bitDepth is the output depth for formats that decode to
// floating point; integer formats keep their own depth.
func Open(path string, bitDepth int) (*audio.IntBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".aif", ".aiff":
		return DecodeAIFF(f)
	case ".mp3":
		return DecodeMP3(f)
	case ".ogg", ".oga":
		return DecodeVorbis(f, bitDepth)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}
