// Package wav decodes and encodes canonical PCM WAVE files.
//
// A canonical file holds exactly three chunks in this order: the RIFF
// header, a 16 byte PCM fmt chunk and a data chunk of frame-interleaved
// signed samples (8, 16 or 32-bit, little-endian). Decode validates the
// redundant header fields (RIFF size, byte rate, block align) against the
// values recomputed from the rest of the file and fails on the first
// mismatch. Encode recomputes every derived field, so the output is
// byte-identical to any other canonical writer for the same samples.
//
// Errors wrap the exported sentinels and can be matched with errors.Is.
// Field disagreements are reported as *ValueError and tag mismatches as
// *TagError, both usable with errors.As.
package wav
