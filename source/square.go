package source

import (
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

// SquareConfig describes a square wave test tone.
type SquareConfig struct {
	SampleRate  int
	NumChannels int
	BitDepth    int
	// NumSamples is the number of samples per channel. When zero it is
	// derived from Duration.
	NumSamples int
	Duration   time.Duration
	// HalfPeriod is the number of samples between two sign flips.
	HalfPeriod int
	Amplitude  int
}

// DefaultSquareConfig returns one second of a mono 16-bit 44.1kHz square
// wave at half scale flipping every 100 samples.
func DefaultSquareConfig() SquareConfig {
	return SquareConfig{
		SampleRate:  44100,
		NumChannels: 1,
		BitDepth:    16,
		NumSamples:  44100,
		HalfPeriod:  100,
		Amplitude:   16383,
	}
}

func (c SquareConfig) numSamples() int {
	if c.NumSamples > 0 {
		return c.NumSamples
	}

	return samplesNumFromDuration(c.Duration, c.SampleRate)
}

func (c SquareConfig) validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	case c.NumChannels <= 0:
		return fmt.Errorf("%w: %d channels", ErrInvalidConfig, c.NumChannels)
	case c.HalfPeriod <= 0:
		return fmt.Errorf("%w: half period %d", ErrInvalidConfig, c.HalfPeriod)
	case c.NumSamples < 0 || c.Duration < 0:
		return fmt.Errorf("%w: negative length", ErrInvalidConfig)
	}

	if !supportedBitDepth(c.BitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, c.BitDepth)
	}

	if maxAmp := int64(1)<<(c.BitDepth-1) - 1; c.Amplitude < 0 || int64(c.Amplitude) > maxAmp {
		return fmt.Errorf("%w: amplitude %d outside [0, %d]", ErrInvalidConfig, c.Amplitude, maxAmp)
	}

	return nil
}

// Square generates an interleaved square wave. Every channel carries the
// same signal: +Amplitude for HalfPeriod samples, then -Amplitude for
// HalfPeriod samples, starting high.
func Square(cfg SquareConfig) (*audio.IntBuffer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	n := cfg.numSamples()
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: cfg.NumChannels, SampleRate: cfg.SampleRate},
		SourceBitDepth: cfg.BitDepth,
		Data:           make([]int, n*cfg.NumChannels),
	}

	for i := range n {
		v := cfg.Amplitude
		if (i/cfg.HalfPeriod)%2 == 1 {
			v = -v
		}

		for ch := range cfg.NumChannels {
			buf.Data[i*cfg.NumChannels+ch] = v
		}
	}

	return buf, nil
}

func samplesNumFromDuration(dur time.Duration, sampleRate int) int {
	return int(int64(dur) * int64(sampleRate) / int64(time.Second))
}
