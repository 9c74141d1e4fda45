package source

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	gomp3 "github.com/hajimehoshi/go-mp3"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	mp3Channels = 2
	mp3BitDepth = 16
)

// mp3Reader is the part of gomp3.Decoder used here.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// DecodeMP3 decodes an MP3 stream into 16-bit stereo PCM.
func DecodeMP3(r io.Reader) (*audio.IntBuffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open mp3 stream: %w", err)
	}

	return readMP3(dec)
}

func readMP3(dec mp3Reader) (*audio.IntBuffer, error) {
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode mp3 frames: %w", err)
	}

	// drop a trailing partial frame
	frameSize := mp3Channels * mp3BitDepth / 8
	pcm = pcm[:len(pcm)-len(pcm)%frameSize]

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: mp3Channels, SampleRate: dec.SampleRate()},
		SourceBitDepth: mp3BitDepth,
		Data:           make([]int, len(pcm)/2),
	}

	for i := range buf.Data {
		buf.Data[i] = int(int16(binary.LittleEndian.Uint16(pcm[2*i:])))
	}

	return buf, nil
}
