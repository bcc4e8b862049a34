package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Commands CommandsConfig `json:"commands"`
	Logging  LoggingConfig  `json:"logging"`
}

type CommandsConfig struct {
	// Trusted directory prefixes for absolute command tokens.
	// Fixed at process start; the resolver never consults PATH.
	AllowedPrefixes []string `json:"allowed_prefixes"`

	// Name of the trusted script directory, relative to the program's
	// own location, used to resolve bare command tokens.
	LocalDir string `json:"local_dir"` // Default: "commands"

	// Command Execution
	MaxCommandOutputSize int64 `json:"max_command_output_size"` // Default: 10 * 1024 * 1024 (10MB)
	MaxAggregateSize     int64 `json:"max_aggregate_size"`      // Default: 100 * 1024 * 1024 (100MB)
}

type LoggingConfig struct {
	// Name of the log directory, relative to the program's own location.
	Dir string `json:"dir"` // Default: "logs"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Commands: CommandsConfig{
			AllowedPrefixes: []string{
				"/bin/",
				"/usr/bin/",
				"/usr/local/bin/",
				"/usr/opt/bin/",
			},
			LocalDir:             "commands",
			MaxCommandOutputSize: 10 * 1024 * 1024,
			MaxAggregateSize:     100 * 1024 * 1024,
		},
		Logging: LoggingConfig{
			Dir: "logs",
		},
	}
}
