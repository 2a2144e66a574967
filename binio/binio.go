// Package binio provides the primitive byte-level codec of the park save
// container: fixed-width little-endian integers, booleans, raw byte blocks
// and length-prefixed UTF-8 strings.
//
// Reader and Writer latch their first error internally so that a long
// decode or encode sequence can run without checking every call; callers
// check Err() once at the end. After an error every later call is a no-op
// returning zero values.
package binio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// all multi-byte values in the container are little endian,
// regardless of host architecture.
var byteOrder = binary.LittleEndian

var (
	// ErrShortRead indicates the stream ended in the middle of a value.
	ErrShortRead = errors.New("binio: short read")

	// ErrPrefixTooLarge indicates a length prefix beyond any sane payload.
	ErrPrefixTooLarge = errors.New("binio: length prefix too large")
)

// maxPrefix bounds a single length-prefixed allocation. A chunk payload
// larger than this cannot occur in practice.
const maxPrefix = 1 << 28 // 256 MiB

// Reader is a wrapper of io.Reader with an internal error.
type Reader struct {
	r   io.Reader
	n   int64
	err error

	scratch [8]byte
}

// NewReader constructs a Reader over r.
func NewReader(r io.Reader) *Reader { return &Reader{r: r} }

// Err returns the first error encountered, or nil.
func (er *Reader) Err() error { return er.err }

// BytesRead reports how many bytes have been consumed so far.
func (er *Reader) BytesRead() int64 { return er.n }

func (er *Reader) fill(p []byte) {
	if er.err != nil {
		return
	}
	n, err := io.ReadFull(er.r, p)
	er.n += int64(n)
	if err != nil {
		if err == io.EOF && n == 0 {
			// clean end of stream before this value started.
			er.err = io.EOF
		} else if err == io.EOF || err == io.ErrUnexpectedEOF {
			er.err = ErrShortRead
		} else {
			er.err = err
		}
	}
}

// Read implements io.Reader over the latched error.
// A full read is required; a partial one latches ErrShortRead.
func (er *Reader) Read(p []byte) (int, error) {
	er.fill(p)
	if er.err != nil {
		return 0, nil // error is latched, do nothing
	}
	return len(p), nil
}

func (er *Reader) Uint8() uint8 {
	b := er.scratch[:1]
	er.fill(b)
	if er.err != nil {
		return 0
	}
	return b[0]
}

func (er *Reader) Int8() int8 { return int8(er.Uint8()) }

func (er *Reader) Uint16() uint16 {
	b := er.scratch[:2]
	er.fill(b)
	if er.err != nil {
		return 0
	}
	return byteOrder.Uint16(b)
}

func (er *Reader) Int16() int16 { return int16(er.Uint16()) }

func (er *Reader) Uint32() uint32 {
	b := er.scratch[:4]
	er.fill(b)
	if er.err != nil {
		return 0
	}
	return byteOrder.Uint32(b)
}

func (er *Reader) Int32() int32 { return int32(er.Uint32()) }

func (er *Reader) Uint64() uint64 {
	b := er.scratch[:8]
	er.fill(b)
	if er.err != nil {
		return 0
	}
	return byteOrder.Uint64(b)
}

func (er *Reader) Int64() int64 { return int64(er.Uint64()) }

// Bool reads one byte; any nonzero value is true.
func (er *Reader) Bool() bool { return er.Uint8() != 0 }

// Bytes reads exactly n raw bytes.
func (er *Reader) Bytes(n int) []byte {
	if er.err != nil {
		return nil
	}
	if n < 0 || n > maxPrefix {
		er.err = fmt.Errorf("%w: %d bytes", ErrPrefixTooLarge, n)
		return nil
	}
	p := make([]byte, n)
	er.fill(p)
	if er.err != nil {
		return nil
	}
	return p
}

// String reads a u32 length prefix followed by that many UTF-8 bytes.
// There is no terminator.
func (er *Reader) String() string {
	n := er.Uint32()
	return string(er.Bytes(int(n)))
}

// Skip discards exactly n bytes.
func (er *Reader) Skip(n int) {
	if er.err != nil || n <= 0 {
		return
	}
	c, err := io.CopyN(io.Discard, er.r, int64(n))
	er.n += c
	if err != nil {
		if err == io.EOF {
			err = ErrShortRead
		}
		er.err = err
	}
}

// Writer is a wrapper of io.Writer with an internal error.
type Writer struct {
	w   io.Writer
	n   int64
	err error

	scratch [8]byte
}

// NewWriter constructs a Writer over w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Err returns the first error encountered, or nil.
func (ew *Writer) Err() error { return ew.err }

// BytesWritten reports how many bytes have been emitted so far.
func (ew *Writer) BytesWritten() int64 { return ew.n }

func (ew *Writer) emit(p []byte) {
	if ew.err != nil {
		return
	}
	n, err := ew.w.Write(p)
	ew.n += int64(n)
	ew.err = err
}

// Write implements io.Writer over the latched error.
func (ew *Writer) Write(p []byte) (int, error) {
	ew.emit(p)
	if ew.err != nil {
		return 0, nil // error is latched, do nothing
	}
	return len(p), nil
}

func (ew *Writer) Uint8(v uint8) {
	ew.scratch[0] = v
	ew.emit(ew.scratch[:1])
}

func (ew *Writer) Int8(v int8) { ew.Uint8(uint8(v)) }

func (ew *Writer) Uint16(v uint16) {
	byteOrder.PutUint16(ew.scratch[:2], v)
	ew.emit(ew.scratch[:2])
}

func (ew *Writer) Int16(v int16) { ew.Uint16(uint16(v)) }

func (ew *Writer) Uint32(v uint32) {
	byteOrder.PutUint32(ew.scratch[:4], v)
	ew.emit(ew.scratch[:4])
}

func (ew *Writer) Int32(v int32) { ew.Uint32(uint32(v)) }

func (ew *Writer) Uint64(v uint64) {
	byteOrder.PutUint64(ew.scratch[:8], v)
	ew.emit(ew.scratch[:8])
}

func (ew *Writer) Int64(v int64) { ew.Uint64(uint64(v)) }

// Bool writes one byte, 1 for true and 0 for false.
func (ew *Writer) Bool(v bool) {
	if v {
		ew.Uint8(1)
	} else {
		ew.Uint8(0)
	}
}

// Bytes writes p verbatim, with no prefix.
func (ew *Writer) Bytes(p []byte) { ew.emit(p) }

// String writes a u32 length prefix followed by the UTF-8 bytes of s.
func (ew *Writer) String(s string) {
	ew.Uint32(uint32(len(s)))
	ew.emit([]byte(s))
}
