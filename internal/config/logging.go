package config

// LoggingConfig controls the diagnostic log stream. Command output and the
// single error line never go through it.
type LoggingConfig struct {
	Level     string `yaml:"level"`      // debug, info, warn, error
	Format    string `yaml:"format"`     // json, console
	File      string `yaml:"file"`       // empty: stderr
	DebugMode bool   `yaml:"debug_mode"` // off: no log lines at all

	// Categories switches individual categories off; unlisted ones follow
	// DebugMode.
	Categories map[string]bool `yaml:"categories,omitempty"`

	// Verbose mirrors --verbose. It is never read from or written to the
	// config file.
	Verbose bool `yaml:"-"`
}

// Active reports whether any log line can be written.
func (c *LoggingConfig) Active() bool {
	return c.DebugMode || c.Verbose
}

// EffectiveLevel is the configured level, forced to debug under --verbose.
func (c *LoggingConfig) EffectiveLevel() string {
	if c.Verbose {
		return "debug"
	}
	if c.Level == "" {
		return "info"
	}
	return c.Level
}

// IsCategoryEnabled reports whether category writes log lines. --verbose
// enables everything; otherwise debug_mode must be on and the category not
// switched off.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if c.Verbose {
		return true
	}
	if !c.DebugMode {
		return false
	}
	enabled, listed := c.Categories[category]
	return !listed || enabled
}
