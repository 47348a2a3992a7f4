package config

// Config is the optional run configuration file.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// Quiet suppresses the status lines around a run. Program output is
	// always written.
	Quiet bool `yaml:"quiet" toml:"quiet"`
}
