package treecfg

import "errors"

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrEmptyFile is returned when no configuration file is set.
var ErrEmptyFile = errors.New("file must not be empty")

// Config holds the configuration for a tree module.
type Config struct {
	File      string
	Separator rune
	CacheSize int
	LogLevel  string
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.Separator == 0 {
		c.Separator = '/'
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.File == "" {
		return ErrEmptyFile
	}

	return nil
}
