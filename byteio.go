package wav

import (
	"encoding/binary"
	"fmt"
)

// byteReader is a little-endian cursor over an in-memory buffer.
// A failed read leaves the cursor where it was.
type byteReader struct {
	buf []byte
	off int
}

func newByteReader(buf []byte) *byteReader {
	return &byteReader{buf: buf}
}

func (r *byteReader) offset() int {
	return r.off
}

func (r *byteReader) remaining() int {
	return len(r.buf) - r.off
}

func (r *byteReader) next(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrUnexpectedEndOfInput, n, r.off, r.remaining())
	}

	b := r.buf[r.off : r.off+n]
	r.off += n

	return b, nil
}

func (r *byteReader) u8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (r *byteReader) u16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b), nil
}

func (r *byteReader) u32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b), nil
}

func (r *byteReader) s8() (int32, error) {
	v, err := r.u8()
	return int32(int8(v)), err
}

func (r *byteReader) s16() (int32, error) {
	v, err := r.u16()
	return int32(int16(v)), err
}

func (r *byteReader) s32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

// tag consumes four bytes and compares them with expected. On mismatch the
// cursor is not advanced.
func (r *byteReader) tag(expected [4]byte) ([4]byte, error) {
	start := r.off

	b, err := r.next(4)
	if err != nil {
		return [4]byte{}, err
	}

	var actual [4]byte
	copy(actual[:], b)

	if actual != expected {
		r.off = start
		return actual, &TagError{Offset: start, Expected: expected, Actual: actual}
	}

	return actual, nil
}

// sampleReadFunc returns the signed sample reader for a PCM bit depth.
func (r *byteReader) sampleReadFunc(bitsPerSample uint16) (func() (int32, error), error) {
	switch bitsPerSample {
	case 8:
		return r.s8, nil
	case 16:
		return r.s16, nil
	case 32:
		return r.s32, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitsPerSample)
	}
}

// byteWriter appends little-endian values to a growing buffer.
type byteWriter struct {
	buf []byte
}

func newByteWriter(size int) *byteWriter {
	return &byteWriter{buf: make([]byte, 0, size)}
}

func (w *byteWriter) bytes() []byte {
	return w.buf
}

func (w *byteWriter) len() int {
	return len(w.buf)
}

func (w *byteWriter) tag(id [4]byte) {
	w.buf = append(w.buf, id[:]...)
}

func (w *byteWriter) u16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *byteWriter) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *byteWriter) s8(v int32) {
	w.buf = append(w.buf, byte(int8(v)))
}

func (w *byteWriter) s16(v int32) {
	w.u16(uint16(int16(v)))
}

func (w *byteWriter) s32(v int32) {
	w.u32(uint32(v))
}

// putU32At overwrites a previously reserved size field.
func (w *byteWriter) putU32At(pos int, v uint32) {
	binary.LittleEndian.PutUint32(w.buf[pos:pos+4], v)
}

func (w *byteWriter) sampleWriteFunc(bitsPerSample uint16) (func(int32), error) {
	switch bitsPerSample {
	case 8:
		return w.s8, nil
	case 16:
		return w.s16, nil
	case 32:
		return w.s32, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitsPerSample)
	}
}
