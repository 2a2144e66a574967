package parkfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOptionsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	want := Options{
		PreferredLocale:    "ja-JP",
		NetworkClient:      true,
		OmitTracklessRides: true,
		LogLevel:           "debug",
	}
	if err := SaveOptions(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadOptions(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("options = %+v, want %+v", got, want)
	}
}

func TestLoadOptionsFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	if err := os.WriteFile(path, []byte("network_client = true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadOptions(path)
	if err != nil {
		t.Fatal(err)
	}
	if !got.NetworkClient {
		t.Error("network_client not applied")
	}
	if got.PreferredLocale != DefaultPreferredLocale {
		t.Errorf("preferred locale = %q, want default", got.PreferredLocale)
	}
	if got.LogLevel != "info" {
		t.Errorf("log level = %q, want info", got.LogLevel)
	}
}

func TestLoadOptionsRejectsUnknownLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.toml")
	if err := os.WriteFile(path, []byte("log_level = \"verbose\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptions(path); err == nil {
		t.Error("expected an error for an unknown log level")
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestOptionsLocaleFallback(t *testing.T) {
	if got := (Options{}).Locale(); got != DefaultPreferredLocale {
		t.Errorf("Locale() = %q, want %q", got, DefaultPreferredLocale)
	}
	if got := (Options{PreferredLocale: "de-DE"}).Locale(); got != "de-DE" {
		t.Errorf("Locale() = %q, want de-DE", got)
	}
}
