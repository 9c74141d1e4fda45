package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	wav "github.com/cwbudde/pcmwave"
	"github.com/go-audio/aiff"
	"github.com/spf13/cobra"
)

func newToAIFFCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "toaiff <file.wav>",
		Short: "Convert a WAVE file to AIFF",
		Long: `Convert a canonical PCM WAVE file to an AIFF file with the same samples.
Without --out the AIFF file is written next to the source with an .aif extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runToAIFF(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Output AIFF file path")

	return cmd
}

func runToAIFF(input, output string) error {
	w, err := wav.ReadFile(input)
	if err != nil {
		return err
	}

	if output == "" {
		output = input[:len(input)-len(filepath.Ext(input))] + ".aif"
	}

	outFile, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", output, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, int(w.Fmt.SampleRate), int(w.Fmt.BitsPerSample), int(w.Fmt.NumChannels))

	if err := encoder.Write(w.IntBuffer()); err != nil {
		return fmt.Errorf("failed to write aiff samples: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", output, err)
	}

	slog.Info("wav file converted", "input", input, "output", output)

	return nil
}
