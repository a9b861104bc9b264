package treecfg

import (
	"fmt"

	"github.com/0xalexb/stig"
)

// Parser defines an interface for deserializing raw configuration
// data into a generic mapping/sequence tree that a lookup accessor
// can walk. See NewYAMLParser for an implementation using
// goccy/go-yaml.
type Parser interface {
	Parse(data []byte) (any, error)
}

// Fetcher defines an interface for reading raw configuration data.
type Fetcher interface {
	Fetch() ([]byte, error)
}

// Provider returns a function that fetches, parses and binds a
// configuration tree, yielding its root bound path. The opts are
// applied to the lookup accessor (separator, cache size).
func Provider(opts ...stig.Option) func(Parser, Fetcher) (*stig.BoundPath, error) {
	return func(parser Parser, fetcher Fetcher) (*stig.BoundPath, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		tree, err := parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		return stig.FromLookup(tree, opts...), nil
	}
}
