package chunk

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mzki/parkfile/binio"
)

func tempFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "chunks.bin"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func writeTestFile(t *testing.T, f *os.File) {
	t.Helper()
	hdr := Header{Magic: 0x4B524150, TargetVersion: 6, MinVersion: 6}
	if err := WriteHeader(f, hdr); err != nil {
		t.Fatal(err)
	}
	if err := Write(f, 0x01, func(w *binio.Writer) error {
		w.Uint32(111)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := Write(f, 0x30, func(w *binio.Writer) error {
		w.String("tiles")
		w.Uint16(7)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	f := tempFile(t)
	want := Header{Magic: 0x4B524150, TargetVersion: 6, MinVersion: 2}
	if err := WriteHeader(f, want); err != nil {
		t.Fatal(err)
	}
	got, err := ReadHeader(f)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("header = %+v, want %+v", got, want)
	}
}

func TestFindSkipsUnknownChunks(t *testing.T) {
	f := tempFile(t)
	writeTestFile(t, f)

	found, err := Find(f, 0x30, func(r *binio.Reader) error {
		if got := r.String(); got != "tiles" {
			t.Errorf("payload string = %q", got)
		}
		if got := r.Uint16(); got != 7 {
			t.Errorf("payload u16 = %d", got)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Error("chunk 0x30 not found")
	}
}

func TestFindMissingChunk(t *testing.T) {
	f := tempFile(t)
	writeTestFile(t, f)

	found, err := Find(f, 0x55, func(r *binio.Reader) error { return nil })
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("found a chunk that was never written")
	}
}

func TestFindRejectsPartialConsumption(t *testing.T) {
	f := tempFile(t)
	writeTestFile(t, f)

	_, err := Find(f, 0x30, func(r *binio.Reader) error {
		_ = r.String() // leaves the trailing u16 unread
		return nil
	})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestFindPrefixAllowsPartialConsumption(t *testing.T) {
	f := tempFile(t)
	writeTestFile(t, f)

	found, err := FindPrefix(f, 0x30, func(r *binio.Reader) error {
		if got := r.String(); got != "tiles" {
			t.Errorf("payload string = %q", got)
		}
		return nil
	})
	if err != nil || !found {
		t.Errorf("FindPrefix = (%v, %v), want (true, nil)", found, err)
	}
}

func TestPayload(t *testing.T) {
	f := tempFile(t)
	writeTestFile(t, f)

	payload, found, err := Payload(f, 0x01)
	if err != nil || !found {
		t.Fatalf("Payload = (%v, %v)", found, err)
	}
	if !bytes.Equal(payload, []byte{111, 0, 0, 0}) {
		t.Errorf("payload = %v", payload)
	}
}

func TestWriteBackfillsLength(t *testing.T) {
	f := tempFile(t)
	writeTestFile(t, f)

	// re-read the raw chunk frame after the header
	raw, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	frame := raw[HeaderSize:]
	typ := uint32(frame[0]) | uint32(frame[1])<<8 | uint32(frame[2])<<16 | uint32(frame[3])<<24
	length := uint32(frame[4]) | uint32(frame[5])<<8 | uint32(frame[6])<<16 | uint32(frame[7])<<24
	if typ != 0x01 {
		t.Errorf("first chunk type = %#x, want 0x01", typ)
	}
	if length != 4 {
		t.Errorf("first chunk length = %d, want 4", length)
	}
}
