package binio

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Uint8(0xAB)
	w.Int8(-5)
	w.Uint16(0xBEEF)
	w.Int16(-12345)
	w.Uint32(0xDEADBEEF)
	w.Int32(-7)
	w.Uint64(1 << 40)
	w.Int64(-1 << 40)
	w.Bool(true)
	w.Bool(false)
	w.String("hello")
	w.String("")
	w.Bytes([]byte{1, 2, 3})
	if err := w.Err(); err != nil {
		t.Fatalf("write err: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if got := r.Uint8(); got != 0xAB {
		t.Errorf("Uint8 = %#x", got)
	}
	if got := r.Int8(); got != -5 {
		t.Errorf("Int8 = %d", got)
	}
	if got := r.Uint16(); got != 0xBEEF {
		t.Errorf("Uint16 = %#x", got)
	}
	if got := r.Int16(); got != -12345 {
		t.Errorf("Int16 = %d", got)
	}
	if got := r.Uint32(); got != 0xDEADBEEF {
		t.Errorf("Uint32 = %#x", got)
	}
	if got := r.Int32(); got != -7 {
		t.Errorf("Int32 = %d", got)
	}
	if got := r.Uint64(); got != 1<<40 {
		t.Errorf("Uint64 = %d", got)
	}
	if got := r.Int64(); got != -1<<40 {
		t.Errorf("Int64 = %d", got)
	}
	if got := r.Bool(); !got {
		t.Error("first Bool = false")
	}
	if got := r.Bool(); got {
		t.Error("second Bool = true")
	}
	if got := r.String(); got != "hello" {
		t.Errorf("String = %q", got)
	}
	if got := r.String(); got != "" {
		t.Errorf("empty String = %q", got)
	}
	if got := r.Bytes(3); !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("Bytes = %v", got)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("read err: %v", err)
	}
	if want := int64(buf.Len()); r.BytesRead() != want {
		t.Errorf("BytesRead = %d, want %d", r.BytesRead(), want)
	}
}

func TestReaderLatchesFirstError(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01}))
	_ = r.Uint32() // short
	if !errors.Is(r.Err(), ErrShortRead) {
		t.Fatalf("err = %v, want ErrShortRead", r.Err())
	}
	// further reads keep the latched error and return zero values
	if got := r.Uint8(); got != 0 {
		t.Errorf("Uint8 after error = %d, want 0", got)
	}
	if !errors.Is(r.Err(), ErrShortRead) {
		t.Errorf("err after more reads = %v", r.Err())
	}
}

func TestReaderCleanEOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	_ = r.Uint8()
	if !errors.Is(r.Err(), io.EOF) {
		t.Errorf("err = %v, want io.EOF", r.Err())
	}
}

func TestStringRejectsHugePrefix(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Uint32(1 << 30) // way past the prefix cap
	r := NewReader(bytes.NewReader(buf.Bytes()))
	_ = r.String()
	if !errors.Is(r.Err(), ErrPrefixTooLarge) {
		t.Errorf("err = %v, want ErrPrefixTooLarge", r.Err())
	}
}

func TestSkip(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	r.Skip(3)
	if got := r.Uint8(); got != 4 {
		t.Errorf("Uint8 after Skip = %d, want 4", got)
	}
	if r.BytesRead() != 4 {
		t.Errorf("BytesRead = %d, want 4", r.BytesRead())
	}
}
