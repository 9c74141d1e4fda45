package main

import (
	"fmt"
	"log/slog"

	wav "github.com/cwbudde/pcmwave"
	"github.com/cwbudde/pcmwave/source"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var bitDepth int

	cmd := &cobra.Command{
		Use:   "convert <input> <output.wav>",
		Short: "Convert AIFF, MP3 or Ogg Vorbis input to WAVE",
		Long: `Convert an audio file to a canonical PCM WAVE file. The input format is
picked from the extension (.aif, .aiff, .mp3, .ogg, .oga).

Examples:
  # MP3 to 16-bit WAV
  wavtool convert input.mp3 output.wav

  # Ogg Vorbis to 32-bit WAV
  wavtool convert input.ogg output.wav --bits 32`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runConvert(args[0], args[1], bitDepth)
		},
	}

	cmd.Flags().IntVar(&bitDepth, "bits", 16, "Output bits per sample (8, 16 or 32)")

	return cmd
}

func runConvert(input, output string, bitDepth int) error {
	buf, err := source.Open(input, bitDepth)
	if err != nil {
		return err
	}

	slog.Debug("input decoded",
		"path", input,
		"sample_rate", buf.Format.SampleRate,
		"channels", buf.Format.NumChannels,
		"source_bits", buf.SourceBitDepth)

	if err := source.Rescale(buf, bitDepth); err != nil {
		return err
	}

	w, err := wav.FromIntBuffer(buf)
	if err != nil {
		return fmt.Errorf("failed to build wave file: %w", err)
	}

	if err := wav.WriteFile(output, w); err != nil {
		return err
	}

	slog.Info("conversion complete", "input", input, "output", output, "duration", w.Duration())

	return nil
}
