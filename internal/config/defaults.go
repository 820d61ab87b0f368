package config

// Default configuration values.
const (
	DefaultDialect   = "ansi"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultJobs      = 4
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config file names, searched in this order.
const (
	ConfigFileName    = "sqlseg.yaml"
	ConfigFileNameAlt = "sqlseg.yml"
)

// EnvPrefix prefixes every environment variable read by the loader.
// Nested keys use a double underscore: SQLSEG_LOG__LEVEL=debug.
const EnvPrefix = "SQLSEG_"

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Dialect:       DefaultDialect,
		DefaultQuotes: true,
		OutputFormat:  DefaultOutput,
		Jobs:          DefaultJobs,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// defaultsMap is the confmap layer loaded before any other source.
func defaultsMap() map[string]interface{} {
	return map[string]interface{}{
		"dialect":        DefaultDialect,
		"default_quotes": true,
		"output":         DefaultOutput,
		"verbose":        false,
		"jobs":           DefaultJobs,
		"log.level":      DefaultLogLevel,
		"log.format":     DefaultLogFormat,
	}
}
