package main

import (
	"fmt"
	"log/slog"

	wav "github.com/cwbudde/pcmwave"
	"github.com/cwbudde/pcmwave/source"
	"github.com/spf13/cobra"
)

func newToneCmd() *cobra.Command {
	cfg := source.DefaultSquareConfig()

	var output string

	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Write a square wave test tone",
		Long: `Write a square wave alternating between +amplitude and -amplitude every
half-period samples. The defaults reproduce the reference tone: one second
of mono 16-bit audio at 44100 Hz, amplitude 16383, flipping every 100 samples.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("duration") && !cmd.Flags().Changed("samples") {
				cfg.NumSamples = 0
			}

			return runTone(cfg, output)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "out", "o", "tone.wav", "Output WAV file path")
	flags.IntVar(&cfg.SampleRate, "samplerate", cfg.SampleRate, "Sample rate in Hz")
	flags.IntVar(&cfg.NumChannels, "channels", cfg.NumChannels, "Number of channels")
	flags.IntVar(&cfg.BitDepth, "bits", cfg.BitDepth, "Bits per sample (8, 16 or 32)")
	flags.IntVar(&cfg.NumSamples, "samples", cfg.NumSamples, "Samples per channel")
	flags.DurationVar(&cfg.Duration, "duration", cfg.Duration, "Length of the tone, used when --samples is not set")
	flags.IntVar(&cfg.HalfPeriod, "half-period", cfg.HalfPeriod, "Samples between sign flips")
	flags.IntVar(&cfg.Amplitude, "amplitude", cfg.Amplitude, "Peak sample value")

	return cmd
}

func runTone(cfg source.SquareConfig, output string) error {
	buf, err := source.Square(cfg)
	if err != nil {
		return err
	}

	w, err := wav.FromIntBuffer(buf)
	if err != nil {
		return fmt.Errorf("failed to build wave file: %w", err)
	}

	if err := wav.WriteFile(output, w); err != nil {
		return err
	}

	slog.Info("tone written",
		"path", output,
		"sample_rate", cfg.SampleRate,
		"channels", cfg.NumChannels,
		"bits", cfg.BitDepth,
		"frames", w.NumFrames())

	return nil
}
