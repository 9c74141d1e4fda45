// Package source produces interleaved PCM for the wav encoder: a square
// wave test tone and decoders for AIFF, MP3 and Ogg Vorbis input.
//
// Every source returns a *audio.IntBuffer whose SourceBitDepth is the
// sample width of its Data, ready for wav.FromIntBuffer.
package source
