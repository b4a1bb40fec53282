package domain

// Config holds the grid engine configuration. It is built once at startup
// and read-only afterwards; concurrent requests may share it freely.
// Fields are ordered to minimize memory padding.
type Config struct {
	Columns  map[string]string   `toml:"columns"`  // column -> property overrides
	SortKeys map[string][]string `toml:"sortKeys"` // column -> sort key expansion overrides
	Locale   string              `toml:"locale"`   // BCP 47 tag for text ordering and labels
	Tenant   string              `toml:"tenant"`   // tenant IANA time zone
	Client   string              `toml:"client"`   // client IANA time zone
	Log      LogConfig           `toml:"log"`
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	Path  string `toml:"path"`  // log file path, empty disables file output
}

// NewDefaultConfig returns the configuration used when no config file exists.
// Client is left empty here; the loader backfills it from Tenant so that a
// file setting only the tenant zone moves both.
func NewDefaultConfig() *Config {
	return &Config{
		Locale: "en",
		Tenant: "UTC",
		Log:    LogConfig{Level: "info"},
	}
}
