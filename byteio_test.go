package wav

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/go-audio/riff"
)

func TestByteReaderIntegers(t *testing.T) {
	r := newByteReader([]byte{
		0xFE,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0x80,
		0x00, 0x80,
		0x00, 0x00, 0x00, 0x80,
	})

	u8, err := r.u8()
	if err != nil || u8 != 0xFE {
		t.Fatalf("u8()=%#x, %v, want 0xfe", u8, err)
	}

	u16, err := r.u16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("u16()=%#x, %v, want 0x1234", u16, err)
	}

	u32, err := r.u32()
	if err != nil || u32 != 0x12345678 {
		t.Fatalf("u32()=%#x, %v, want 0x12345678", u32, err)
	}

	s8, err := r.s8()
	if err != nil || s8 != math.MinInt8 {
		t.Fatalf("s8()=%d, %v, want %d", s8, err, math.MinInt8)
	}

	s16, err := r.s16()
	if err != nil || s16 != math.MinInt16 {
		t.Fatalf("s16()=%d, %v, want %d", s16, err, math.MinInt16)
	}

	s32, err := r.s32()
	if err != nil || s32 != math.MinInt32 {
		t.Fatalf("s32()=%d, %v, want %d", s32, err, math.MinInt32)
	}

	if r.remaining() != 0 {
		t.Fatalf("remaining=%d, want 0", r.remaining())
	}
}

func TestByteReaderEndOfInput(t *testing.T) {
	r := newByteReader([]byte{1, 2, 3})

	if _, err := r.u16(); err != nil {
		t.Fatalf("u16: %v", err)
	}

	_, err := r.u32()
	if !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Fatalf("u32 error=%v, want ErrUnexpectedEndOfInput", err)
	}

	if r.offset() != 2 {
		t.Fatalf("offset=%d after failed read, want 2", r.offset())
	}

	if _, err := r.u8(); err != nil {
		t.Fatalf("u8 after failed read: %v", err)
	}

	if _, err := r.s8(); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Fatalf("s8 error=%v, want ErrUnexpectedEndOfInput", err)
	}
}

func TestByteReaderTag(t *testing.T) {
	r := newByteReader([]byte("RIFXWAVE"))

	_, err := r.tag(riff.RiffID)

	var tagErr *TagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("tag error=%v, want *TagError", err)
	}

	if !errors.Is(err, ErrTagMismatch) {
		t.Fatalf("tag error=%v does not match ErrTagMismatch", err)
	}

	if tagErr.Offset != 0 || string(tagErr.Expected[:]) != "RIFF" || string(tagErr.Actual[:]) != "RIFX" {
		t.Fatalf("tag error=%+v, want offset 0 expected RIFF actual RIFX", tagErr)
	}

	if r.offset() != 0 {
		t.Fatalf("offset=%d after mismatch, want 0", r.offset())
	}

	r.off = 4

	id, err := r.tag(riff.WavFormatID)
	if err != nil {
		t.Fatalf("tag(WAVE): %v", err)
	}

	if id != riff.WavFormatID {
		t.Fatalf("tag(WAVE)=%q", id[:])
	}

	if _, err := r.tag(riff.FmtID); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Fatalf("tag past end error=%v, want ErrUnexpectedEndOfInput", err)
	}
}

func TestSampleReadFunc(t *testing.T) {
	tests := []struct {
		bits uint16
		in   []byte
		want int32
	}{
		{8, []byte{0x7F}, 127},
		{8, []byte{0x80}, -128},
		{16, []byte{0xFF, 0x7F}, 32767},
		{16, []byte{0x01, 0x80}, -32767},
		{32, []byte{0xFF, 0xFF, 0xFF, 0xFF}, -1},
		{32, []byte{0x01, 0x00, 0x00, 0x00}, 1},
	}

	for _, tt := range tests {
		r := newByteReader(tt.in)

		read, err := r.sampleReadFunc(tt.bits)
		if err != nil {
			t.Fatalf("sampleReadFunc(%d): %v", tt.bits, err)
		}

		got, err := read()
		if err != nil || got != tt.want {
			t.Fatalf("%d-bit sample of %v=%d, %v, want %d", tt.bits, tt.in, got, err, tt.want)
		}
	}

	for _, bits := range []uint16{0, 4, 12, 24, 64} {
		_, err := newByteReader(nil).sampleReadFunc(bits)
		if !errors.Is(err, ErrUnsupportedBitDepth) {
			t.Fatalf("sampleReadFunc(%d) error=%v, want ErrUnsupportedBitDepth", bits, err)
		}
	}
}

func TestByteWriter(t *testing.T) {
	w := newByteWriter(0)
	w.tag(riff.DataFormatID)
	w.u32(0)
	w.u16(0xBEEF)
	w.s8(-1)
	w.s16(-2)
	w.s32(-3)
	w.putU32At(4, 0x01020304)

	want := []byte{
		'd', 'a', 't', 'a',
		0x04, 0x03, 0x02, 0x01,
		0xEF, 0xBE,
		0xFF,
		0xFE, 0xFF,
		0xFD, 0xFF, 0xFF, 0xFF,
	}

	if !bytes.Equal(w.bytes(), want) {
		t.Fatalf("bytes=% x, want % x", w.bytes(), want)
	}

	if w.len() != len(want) {
		t.Fatalf("len=%d, want %d", w.len(), len(want))
	}

	if _, err := w.sampleWriteFunc(24); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Fatalf("sampleWriteFunc(24) error=%v, want ErrUnsupportedBitDepth", err)
	}
}
