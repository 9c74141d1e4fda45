package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "wavtool",
		Short: "Inspect, generate and convert canonical PCM WAVE files",
		Long: `wavtool works on canonical PCM WAVE files: a RIFF header, a 16 byte
fmt chunk and a data chunk of 8, 16 or 32-bit signed samples.

Commands:
  - info: decode a file and print its chunks
  - tone: write a square wave test tone
  - convert: turn AIFF, MP3 or Ogg Vorbis input into WAVE
  - toaiff: turn a WAVE file into AIFF`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInfoCmd(),
		newToneCmd(),
		newConvertCmd(),
		newToAIFFCmd(),
	)

	return rootCmd
}
