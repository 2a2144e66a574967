package parkfile

import (
	"fmt"

	"github.com/mzki/parkfile/infra/serialize/toml"
	"github.com/mzki/parkfile/util/log"
)

// DefaultPreferredLocale is the locale picked from string tables when
// the options name none.
const DefaultPreferredLocale = "en-GB"

// Options configures engine behaviour that is not part of the format.
type Options struct {
	// PreferredLocale selects which string table entry to surface.
	PreferredLocale string `toml:"preferred_locale"`

	// NetworkClient applies the early-completion flag stored in saves
	// received over the network.
	NetworkClient bool `toml:"network_client"`

	// OmitTracklessRides is the default for Engine.OmitTracklessRides.
	OmitTracklessRides bool `toml:"omit_trackless_rides"`

	// LogLevel is "info" or "debug".
	LogLevel string `toml:"log_level"`
}

// DefaultOptions returns the options used when no file overrides them.
func DefaultOptions() Options {
	return Options{
		PreferredLocale: DefaultPreferredLocale,
		LogLevel:        "info",
	}
}

// LoadOptions reads a TOML options file, filling omitted fields with
// the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if err := toml.DecodeFile(path, &opts); err != nil {
		return opts, fmt.Errorf("parkfile: options %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// SaveOptions writes the options as TOML.
func SaveOptions(path string, opts Options) error {
	return toml.EncodeFile(path, opts)
}

// Validate checks field values and applies the log level.
func (o Options) Validate() error {
	switch o.LogLevel {
	case "", "info":
		log.SetLevel(log.InfoLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	default:
		return fmt.Errorf("parkfile: unknown log level %q", o.LogLevel)
	}
	if o.PreferredLocale == "" {
		return fmt.Errorf("parkfile: preferred locale must not be empty")
	}
	return nil
}

// Locale returns the preferred locale, falling back to the default.
func (o Options) Locale() string {
	if o.PreferredLocale == "" {
		return DefaultPreferredLocale
	}
	return o.PreferredLocale
}
