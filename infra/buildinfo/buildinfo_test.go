package buildinfo

import (
	"strings"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	// without -ldflags the placeholders apply
	got := Get()
	if got.Version != "dev" || got.CommitHash != "none" {
		t.Errorf("Get() = %+v, want dev/none placeholders", got)
	}
}

func TestFullVersion(t *testing.T) {
	full := FullVersion()
	bi := Get()
	if !strings.Contains(full, bi.Version) || !strings.Contains(full, bi.CommitHash) {
		t.Errorf("FullVersion() = %q, missing version or commit hash", full)
	}
}
