package atlas

// Config holds atlas configuration.
type Config struct {
	// InitialSize is the width and height of the first page. Default: 256
	InitialSize int

	// MaxSize is the largest page size and so the largest symbol size.
	// Default: 2048
	MaxSize int

	// Space is the gap in pixels kept around every symbol. Default: 1
	Space int
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		InitialSize: 256,
		MaxSize:     2048,
		Space:       1,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.InitialSize < 1 {
		return &ConfigError{Field: "InitialSize", Reason: "must be at least 1"}
	}
	if c.MaxSize > 16384 {
		return &ConfigError{Field: "MaxSize", Reason: "must be at most 16384"}
	}
	if c.MaxSize < c.InitialSize {
		return &ConfigError{Field: "MaxSize", Reason: "must be at least InitialSize"}
	}
	if c.Space < 0 {
		return &ConfigError{Field: "Space", Reason: "must be non-negative"}
	}
	if c.Space >= c.MaxSize {
		return &ConfigError{Field: "Space", Reason: "must be less than MaxSize"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
