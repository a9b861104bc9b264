package stig

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// FromYAML unmarshals a YAML document into a generic tree and wraps a
// LookupAccessor around it. JSON input works too, YAML being a
// superset. It fails with ErrEmptyData when the document is empty.
func FromYAML(data []byte, opts ...Option) (*BoundPath, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var root any

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return FromLookup(root, opts...), nil
}
