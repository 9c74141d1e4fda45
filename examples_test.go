package wav_test

import (
	"fmt"

	wav "github.com/cwbudde/pcmwave"
)

func ExampleEncode() {
	fmtChunk, err := wav.NewFmtChunk(1, 8000, 16)
	if err != nil {
		panic(err)
	}

	data, err := wav.NewDataChunk([][]int32{{0, 100, 200, 300, 400, 500, 600, 700}}, 16)
	if err != nil {
		panic(err)
	}

	w, err := wav.NewWaveFile(fmtChunk, data)
	if err != nil {
		panic(err)
	}

	buf, err := wav.Encode(w)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(buf), string(buf[:4]), string(buf[8:12]))
	// Output: 60 RIFF WAVE
}

func ExampleDecode() {
	fmtChunk, _ := wav.NewFmtChunk(2, 8000, 8)
	data, _ := wav.NewDataChunk([][]int32{make([]int32, 8), make([]int32, 8)}, 8)
	w, _ := wav.NewWaveFile(fmtChunk, data)
	buf, _ := wav.Encode(w)

	decoded, err := wav.Decode(buf)
	if err != nil {
		panic(err)
	}

	fmt.Println(decoded)
	// Output: 8000 Hz @ 8 bits, 2 channel(s), 16000 avg bytes/sec, duration: 1ms
}
