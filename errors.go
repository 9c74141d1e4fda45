package wav

import (
	"errors"
	"fmt"
)

var (
	// ErrTagMismatch is returned when an expected chunk tag is not found at the cursor.
	ErrTagMismatch = errors.New("tag mismatch")
	// ErrInvalidFileSize is returned when the RIFF size differs from the buffer length minus 8.
	ErrInvalidFileSize = errors.New("invalid file size")
	// ErrInvalidByteRate is returned when the fmt byte rate disagrees with
	// sampleRate * numChannels * bitsPerSample / 8.
	ErrInvalidByteRate = errors.New("invalid byte rate")
	// ErrInvalidBlockAlign is returned when the fmt block align disagrees with
	// numChannels * bitsPerSample / 8.
	ErrInvalidBlockAlign = errors.New("invalid block align")
	// ErrUnsupportedFormat is returned for fmt audio formats other than PCM.
	ErrUnsupportedFormat = errors.New("unsupported wav format")
	// ErrUnsupportedBitDepth is returned for bit depths other than 8, 16 and 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrUnexpectedEndOfInput is returned when a read needs bytes past the end of the buffer.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	// ErrTrailingBytes is returned when bytes remain after the data chunk.
	ErrTrailingBytes = errors.New("trailing bytes after data chunk")
	// ErrMisalignedDataChunk is returned when the data size is not a whole number of frames.
	ErrMisalignedDataChunk = errors.New("data chunk size is not a multiple of the block align")

	// ErrInvalidChannelCount is returned when a chunk declares or receives no channels.
	ErrInvalidChannelCount = errors.New("invalid channel count")
	// ErrInvalidSampleRate is returned when the sample rate is zero.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	// ErrChannelLengthMismatch is returned when channels hold different sample counts.
	ErrChannelLengthMismatch = errors.New("channels have different sample counts")
	// ErrSampleOutOfRange is returned when a sample does not fit the bit depth.
	ErrSampleOutOfRange = errors.New("sample out of range for bit depth")
	// ErrInvalidDataSize is returned when a data chunk size disagrees with its samples.
	ErrInvalidDataSize = errors.New("invalid data chunk size")
	// ErrDataTooLarge is returned when the encoded file would not fit the 32-bit RIFF size.
	ErrDataTooLarge = errors.New("data exceeds wav length limit of 4 GiB")
	// ErrNilWaveFile is returned when encoding a nil WaveFile.
	ErrNilWaveFile = errors.New("can't encode a nil wave file")
)

// TagError reports a four byte tag that did not match the expected literal.
type TagError struct {
	Offset   int
	Expected [4]byte
	Actual   [4]byte
}

func (e *TagError) Error() string {
	return fmt.Sprintf("%v at offset %d: expected %q, got %q", ErrTagMismatch, e.Offset, e.Expected[:], e.Actual[:])
}

func (e *TagError) Unwrap() error {
	return ErrTagMismatch
}

// ValueError reports a header field whose declared value differs from the
// value recomputed from the rest of the file.
type ValueError struct {
	Err      error
	Declared uint64
	Expected uint64
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%v: declared %d, expected %d", e.Err, e.Declared, e.Expected)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
