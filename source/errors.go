package source

import "errors"

var (
	// ErrUnsupportedBitDepth is returned for output bit depths other than 8, 16 and 32.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrInvalidConfig is returned when a tone configuration can't produce samples.
	ErrInvalidConfig = errors.New("invalid tone configuration")
	// ErrNotAiffFile is returned when the input is not a readable AIFF file.
	ErrNotAiffFile = errors.New("not an AIFF file")
	// ErrUnknownFormat is returned when no decoder matches a file extension.
	ErrUnknownFormat = errors.New("unknown audio file format")
	// ErrNilBuffer is returned when a nil buffer is passed.
	ErrNilBuffer = errors.New("can't process a nil buffer")
	// ErrInvalidStream is returned when a decoded stream reports an unusable layout.
	ErrInvalidStream = errors.New("invalid audio stream")
)
