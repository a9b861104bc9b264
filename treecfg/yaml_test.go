package treecfg_test

import (
	"testing"

	"github.com/0xalexb/stig/treecfg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLParser_Parse(t *testing.T) {
	t.Parallel()

	parser := treecfg.NewYAMLParser()

	tree, err := parser.Parse([]byte("api:\n  host: localhost\n"))
	require.NoError(t, err)

	mapping, ok := tree.(map[string]any)
	require.True(t, ok)

	api, ok := mapping["api"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "localhost", api["host"])
}

func TestYAMLParser_ParseJSON(t *testing.T) {
	t.Parallel()

	parser := treecfg.NewYAMLParser()

	tree, err := parser.Parse([]byte(`{"a": "b"}`))
	require.NoError(t, err)

	mapping, ok := tree.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "b", mapping["a"])
}

func TestYAMLParser_EmptyData(t *testing.T) {
	t.Parallel()

	parser := treecfg.NewYAMLParser()

	_, err := parser.Parse(nil)

	require.ErrorIs(t, err, treecfg.ErrEmptyData)
}

func TestYAMLParser_Invalid(t *testing.T) {
	t.Parallel()

	parser := treecfg.NewYAMLParser()

	_, err := parser.Parse([]byte("a: [unclosed"))

	require.Error(t, err)
}
