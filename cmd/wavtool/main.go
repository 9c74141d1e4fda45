// Command wavtool inspects, generates and converts canonical PCM WAVE files.
package main

import (
	"os"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
