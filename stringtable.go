package parkfile

import (
	"golang.org/x/text/language"

	"github.com/mzki/parkfile/binio"
)

// String tables store user text in multiple locales as a list of
// (locale, value) pairs. Reading picks the entry best matching the
// preferred locale, falling back to the first entry; writing emits a
// single entry under the preferred locale.

func readStringTable(r *binio.Reader, locale string) string {
	count := r.Uint32()
	locales := make([]string, 0, count)
	values := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		locales = append(locales, r.String())
		values = append(values, r.String())
	}
	if len(values) == 0 {
		return ""
	}

	// exact match first, the common case for files this engine wrote
	for i, lc := range locales {
		if lc == locale {
			return values[i]
		}
	}

	want, err := language.Parse(locale)
	if err == nil {
		tags := make([]language.Tag, 0, len(locales))
		ok := true
		for _, lc := range locales {
			t, err := language.Parse(lc)
			if err != nil {
				ok = false
				break
			}
			tags = append(tags, t)
		}
		if ok {
			_, idx, conf := language.NewMatcher(tags).Match(want)
			if conf > language.No {
				return values[idx]
			}
		}
	}
	return values[0]
}

func writeStringTable(w *binio.Writer, locale, value string) {
	w.Uint32(1)
	w.String(locale)
	w.String(value)
}
