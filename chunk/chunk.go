// Package chunk implements the framing layer of the park save container:
// a fixed header followed by a sequence of typed, length-prefixed chunks.
//
//	Header:  magic:u32  target_version:u32  min_version:u32
//	Chunk*:  type:u32   length:u32          payload[length]
//
// Readers that do not recognise a chunk type skip its payload and keep
// scanning; writers reserve a length placeholder and backfill it once the
// payload size is known.
package chunk

import (
	"errors"
	"fmt"
	"io"

	"github.com/mzki/parkfile/binio"
)

// HeaderSize is the fixed byte size of the container header.
const HeaderSize = 12

var (
	// ErrBadMagic indicates the stream does not start with the container magic.
	ErrBadMagic = errors.New("chunk: bad magic number")

	// ErrLengthMismatch indicates a chunk consumer did not consume exactly
	// the declared payload length. The format carries no error detection
	// for this, so it is treated as fatal corruption rather than ignored.
	ErrLengthMismatch = errors.New("chunk: payload length mismatch")
)

// Header is the container header, validated once per file before any
// chunk is processed.
type Header struct {
	Magic         uint32
	TargetVersion uint32
	MinVersion    uint32
}

// ReadHeader reads the container header from the start of rs.
func ReadHeader(rs io.ReadSeeker) (Header, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return Header{}, err
	}
	r := binio.NewReader(rs)
	h := Header{
		Magic:         r.Uint32(),
		TargetVersion: r.Uint32(),
		MinVersion:    r.Uint32(),
	}
	if err := r.Err(); err != nil {
		return Header{}, fmt.Errorf("chunk: reading header: %w", err)
	}
	return h, nil
}

// WriteHeader writes the container header at the start of ws.
func WriteHeader(ws io.WriteSeeker, h Header) error {
	if _, err := ws.Seek(0, io.SeekStart); err != nil {
		return err
	}
	w := binio.NewWriter(ws)
	w.Uint32(h.Magic)
	w.Uint32(h.TargetVersion)
	w.Uint32(h.MinVersion)
	return w.Err()
}

// Write appends one chunk of the given type at the current position of ws.
// fn produces the payload; the length field is backfilled afterwards.
func Write(ws io.WriteSeeker, typ uint32, fn func(w *binio.Writer) error) error {
	head := binio.NewWriter(ws)
	head.Uint32(typ)
	head.Uint32(0) // length, backfilled below
	if err := head.Err(); err != nil {
		return err
	}
	payloadStart, err := ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	w := binio.NewWriter(ws)
	if err := fn(w); err != nil {
		return err
	}
	if err := w.Err(); err != nil {
		return err
	}
	length := w.BytesWritten()

	if _, err := ws.Seek(payloadStart-4, io.SeekStart); err != nil {
		return err
	}
	patch := binio.NewWriter(ws)
	patch.Uint32(uint32(length))
	if err := patch.Err(); err != nil {
		return err
	}
	_, err = ws.Seek(payloadStart+length, io.SeekStart)
	return err
}

// Find scans the chunk sequence of rs for the first chunk of the given
// type, starting immediately after the header. On a match fn is invoked
// with a reader bounded to the declared payload length and Find reports
// found=true. Chunks of other types are skipped. If the stream ends
// without a match, Find reports found=false with no error; whether that
// is tolerable is the caller's decision.
//
// fn must consume exactly the declared length; any shortfall or overrun
// fails with ErrLengthMismatch.
func Find(rs io.ReadSeeker, typ uint32, fn func(r *binio.Reader) error) (bool, error) {
	return find(rs, typ, fn, true)
}

// FindPrefix is Find without the exact-consumption requirement: fn may
// read only a leading part of the payload and the rest is skipped. Meant
// for summary readers that index a file without decoding it fully.
func FindPrefix(rs io.ReadSeeker, typ uint32, fn func(r *binio.Reader) error) (bool, error) {
	return find(rs, typ, fn, false)
}

// Payload returns the raw payload of the first chunk of the given type,
// for codecs whose record count depends on the payload size itself.
func Payload(rs io.ReadSeeker, typ uint32) (payload []byte, found bool, err error) {
	if _, err := rs.Seek(HeaderSize, io.SeekStart); err != nil {
		return nil, false, err
	}
	for {
		head := binio.NewReader(rs)
		t := head.Uint32()
		length := head.Uint32()
		if err := head.Err(); err != nil {
			if err == io.EOF {
				return nil, false, nil
			}
			return nil, false, fmt.Errorf("chunk: reading chunk header: %w", err)
		}
		if t != typ {
			if _, err := rs.Seek(int64(length), io.SeekCurrent); err != nil {
				return nil, false, err
			}
			continue
		}
		buf := make([]byte, length)
		if _, err := io.ReadFull(rs, buf); err != nil {
			return nil, true, fmt.Errorf("chunk: reading chunk 0x%02x payload: %w", t, err)
		}
		return buf, true, nil
	}
}

func find(rs io.ReadSeeker, typ uint32, fn func(r *binio.Reader) error, exact bool) (bool, error) {
	if _, err := rs.Seek(HeaderSize, io.SeekStart); err != nil {
		return false, err
	}
	for {
		head := binio.NewReader(rs)
		t := head.Uint32()
		length := head.Uint32()
		if err := head.Err(); err != nil {
			if err == io.EOF {
				return false, nil // clean end of chunk sequence
			}
			return false, fmt.Errorf("chunk: reading chunk header: %w", err)
		}
		if t != typ {
			if _, err := rs.Seek(int64(length), io.SeekCurrent); err != nil {
				return false, err
			}
			continue
		}

		r := binio.NewReader(io.LimitReader(rs, int64(length)))
		if err := fn(r); err != nil {
			return true, err
		}
		if err := r.Err(); err != nil {
			return true, fmt.Errorf("chunk: decoding chunk 0x%02x: %w", t, err)
		}
		if got := r.BytesRead(); exact && got != int64(length) {
			return true, fmt.Errorf("chunk: type 0x%02x consumed %d of %d declared bytes: %w",
				t, got, length, ErrLengthMismatch)
		}
		return true, nil
	}
}
