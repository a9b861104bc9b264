package stig_test

import (
	"testing"

	"github.com/0xalexb/stig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromYAML_Navigates(t *testing.T) {
	t.Parallel()

	data := []byte(`
api:
  permissions:
    admin:
      read: true
services:
  - name: auth
  - name: billing
`)

	root, err := stig.FromYAML(data)
	require.NoError(t, err)

	value, err := root.Join(stig.Key("api"), stig.Key("permissions"), stig.Key("admin"), stig.Key("read")).Value()
	require.NoError(t, err)
	assert.Equal(t, true, value)

	value, err = root.Join(stig.Key("services"), stig.Index(1), stig.Key("name")).Value()
	require.NoError(t, err)
	assert.Equal(t, "billing", value)
}

func TestFromYAML_JSONInput(t *testing.T) {
	t.Parallel()

	data := []byte(`{"parts": {"part2": {"name": "Part Two"}}}`)

	root, err := stig.FromYAML(data)
	require.NoError(t, err)

	value, err := root.Join(stig.Key("parts"), stig.Key("part2"), stig.Key("name")).Value()
	require.NoError(t, err)
	assert.Equal(t, "Part Two", value)
}

func TestFromYAML_EmptyData(t *testing.T) {
	t.Parallel()

	_, err := stig.FromYAML(nil)

	require.ErrorIs(t, err, stig.ErrEmptyData)
}

func TestFromYAML_InvalidDocument(t *testing.T) {
	t.Parallel()

	_, err := stig.FromYAML([]byte("a: [unclosed"))

	require.Error(t, err)
}

func TestFromYAML_CustomSeparator(t *testing.T) {
	t.Parallel()

	data := []byte("a:\n  b: 1\n")

	root, err := stig.FromYAML(data, stig.WithSeparator(':'))
	require.NoError(t, err)

	p := root.JoinPath(stig.Parse("a:b", stig.WithSeparator(':')))

	value, err := p.Value()
	require.NoError(t, err)
	assert.EqualValues(t, 1, value)
}
