package main

import (
	"fmt"
	"io"
	"log/slog"

	wav "github.com/cwbudde/pcmwave"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.wav>",
		Short: "Decode a WAVE file and print its chunks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0], cmd.OutOrStdout())
		},
	}
}

func runInfo(path string, out io.Writer) error {
	w, err := wav.ReadFile(path)
	if err != nil {
		return err
	}

	slog.Debug("wav decoded", "path", path, "frames", w.NumFrames())

	fmt.Fprintf(out, "RIFF: id=%q size=%d format=%q\n", w.Riff.ID[:], w.Riff.Size, w.Riff.Format[:])
	fmt.Fprintf(out, "fmt:  id=%q size=%d audioFormat=%d channels=%d sampleRate=%d byteRate=%d blockAlign=%d bitsPerSample=%d\n",
		w.Fmt.ID[:], w.Fmt.Size, w.Fmt.AudioFormat, w.Fmt.NumChannels, w.Fmt.SampleRate,
		w.Fmt.ByteRate, w.Fmt.BlockAlign, w.Fmt.BitsPerSample)
	fmt.Fprintf(out, "data: id=%q size=%d frames=%d\n", w.Data.ID[:], w.Data.Size, w.NumFrames())
	fmt.Fprintf(out, "duration: %s\n", w.Duration())

	return nil
}
