package treecfg

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// YAMLParser implements the Parser interface for YAML documents,
// decoding them into generic mapping/sequence trees. JSON documents
// parse too, YAML being a superset.
type YAMLParser struct{}

// NewYAMLParser creates a new YAML parser instance.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse unmarshals data into a generic tree.
func (p *YAMLParser) Parse(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var tree any

	err := yaml.Unmarshal(data, &tree)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return tree, nil
}
