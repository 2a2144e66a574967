package parkfile

import (
	"bytes"
	"testing"

	"github.com/mzki/parkfile/binio"
)

func encodeStringTable(t *testing.T, entries ...string) *binio.Reader {
	t.Helper()
	if len(entries)%2 != 0 {
		t.Fatal("entries must be locale/value pairs")
	}
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	w.Uint32(uint32(len(entries) / 2))
	for _, s := range entries {
		w.String(s)
	}
	if err := w.Err(); err != nil {
		t.Fatal(err)
	}
	return binio.NewReader(bytes.NewReader(buf.Bytes()))
}

func TestReadStringTableExactMatch(t *testing.T) {
	r := encodeStringTable(t,
		"en-GB", "Roundabout",
		"ja-JP", "メリーゴーランド",
	)
	if got := readStringTable(r, "ja-JP"); got != "メリーゴーランド" {
		t.Errorf("value = %q", got)
	}
}

func TestReadStringTableLanguageFallback(t *testing.T) {
	// no exact en-US entry; en-GB is the closest language match
	r := encodeStringTable(t,
		"fr-FR", "Manège",
		"en-GB", "Carousel",
	)
	if got := readStringTable(r, "en-US"); got != "Carousel" {
		t.Errorf("value = %q", got)
	}
}

func TestReadStringTableFirstEntryFallback(t *testing.T) {
	r := encodeStringTable(t,
		"fr-FR", "Manège",
		"de-DE", "Karussell",
	)
	if got := readStringTable(r, "zh-CN"); got != "Manège" {
		t.Errorf("value = %q", got)
	}
}

func TestReadStringTableEmpty(t *testing.T) {
	r := encodeStringTable(t)
	if got := readStringTable(r, "en-GB"); got != "" {
		t.Errorf("value = %q", got)
	}
}

func TestReadStringTableBadLocaleTag(t *testing.T) {
	// unparseable tags fall back to the first entry rather than failing
	r := encodeStringTable(t,
		"not a locale", "first",
		"also bad", "second",
	)
	if got := readStringTable(r, "en-GB"); got != "first" {
		t.Errorf("value = %q", got)
	}
}

func TestWriteStringTableRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	writeStringTable(w, "en-GB", "Dinghy Slide")
	if err := w.Err(); err != nil {
		t.Fatal(err)
	}
	r := binio.NewReader(bytes.NewReader(buf.Bytes()))
	if got := readStringTable(r, "en-GB"); got != "Dinghy Slide" {
		t.Errorf("value = %q", got)
	}
}
