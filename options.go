package stig

// DefaultCacheSize is the lookup accessor's cache capacity when none
// is configured.
const DefaultCacheSize = 128

// Options holds construction settings for paths and accessors.
type Options struct {
	Separator     rune
	CacheSize     int
	CacheDisabled bool
}

// Option defines a function type for applying construction options.
type Option func(*Options)

// WithSeparator sets the path separator. The default is '/'.
func WithSeparator(sep rune) Option {
	return func(opts *Options) {
		opts.Separator = sep
	}
}

// WithCacheSize sets the lookup accessor's cache capacity. Values
// below 1 fall back to DefaultCacheSize.
func WithCacheSize(size int) Option {
	return func(opts *Options) {
		opts.CacheSize = size
	}
}

// WithoutCache disables the lookup accessor's cache.
func WithoutCache() Option {
	return func(opts *Options) {
		opts.CacheDisabled = true
	}
}

func newOptions(opts []Option) Options {
	options := Options{
		Separator: DefaultSeparator,
		CacheSize: DefaultCacheSize,
	}

	for _, apply := range opts {
		apply(&options)
	}

	if options.Separator == 0 {
		options.Separator = DefaultSeparator
	}

	if options.CacheSize < 1 {
		options.CacheSize = DefaultCacheSize
	}

	return options
}
