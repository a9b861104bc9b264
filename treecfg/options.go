package treecfg

// Option defines a function type for configuring a tree module.
type Option func(*Config)

// WithFile sets the configuration file the module loads.
func WithFile(path string) Option {
	return func(cfg *Config) {
		cfg.File = path
	}
}

// WithSeparator sets the path separator for the bound tree.
func WithSeparator(sep rune) Option {
	return func(cfg *Config) {
		cfg.Separator = sep
	}
}

// WithCacheSize sets the lookup cache capacity for the bound tree.
func WithCacheSize(size int) Option {
	return func(cfg *Config) {
		cfg.CacheSize = size
	}
}

// WithLogLevel sets the level for the module's load diagnostics.
// Valid levels are: "debug", "info", "warn", "error".
func WithLogLevel(level string) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}
