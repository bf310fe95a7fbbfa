package namedargs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namedargs"
)

type serverOptions struct {
	Host     string
	Port     uint16
	Retries  int    `nargs:"retry_count"`
	Internal string `nargs:"-"`
	hidden   string
}

func TestUnmarshalStruct(t *testing.T) {
	opts := serverOptions{Host: "localhost", Port: 80, Internal: "keep"}

	err := namedargs.Unmarshal("port = 8080, retry_count = 3", &opts)
	require.NoError(t, err)

	assert.Equal(t, "localhost", opts.Host, "unbound fields keep their value")
	assert.Equal(t, uint16(8080), opts.Port)
	assert.Equal(t, 3, opts.Retries)
	assert.Equal(t, "keep", opts.Internal)
	assert.Empty(t, opts.hidden)
}

func TestUnmarshalTypeMismatchNamesField(t *testing.T) {
	var opts serverOptions

	err := namedargs.Unmarshal("port = 'http'", &opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, namedargs.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "setting field Port")

	err = namedargs.Unmarshal("port = 70000", &opts)
	assert.ErrorIs(t, err, namedargs.ErrTypeMismatch, "70000 does not fit uint16")
}

func TestUnmarshalStrict(t *testing.T) {
	var opts serverOptions

	err := namedargs.Unmarshal("hots = 'example.org'", &opts, namedargs.WithStrict())
	require.Error(t, err)
	assert.ErrorIs(t, err, namedargs.ErrUnknownKey)

	var e *namedargs.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "hots", e.Key)
	assert.Contains(t, e.Known, "host")

	err = namedargs.Unmarshal("internal = 'x'", &opts, namedargs.WithStrict())
	assert.ErrorIs(t, err, namedargs.ErrUnknownKey, "skipped fields are not known keys")
}

type endpoint struct {
	Host string
	Port int
}

type Limits struct {
	Retries int
}

func TestUnmarshalEmbeddedStructs(t *testing.T) {
	var opts struct {
		endpoint
		*Limits
		Port int `nargs:"port"`
		N    int
	}

	err := namedargs.Unmarshal("host = 'db', port = 5432, retries = 3, n = 2", &opts)
	require.NoError(t, err)

	assert.Equal(t, "db", opts.Host)
	assert.Equal(t, 5432, opts.Port)
	assert.Zero(t, opts.endpoint.Port, "the outer field hides the promoted one")
	require.NotNil(t, opts.Limits)
	assert.Equal(t, 3, opts.Retries)
	assert.Equal(t, 2, opts.N)
}

func TestUnmarshalEmbeddedTypeNameIsNotAKey(t *testing.T) {
	var opts struct {
		Limits
		N int
	}

	err := namedargs.Unmarshal("limits = 1, n = 2", &opts)
	require.NoError(t, err)
	assert.Equal(t, 2, opts.N)
	assert.Zero(t, opts.Retries)

	err = namedargs.Unmarshal("limits = 1, n = 2", &opts, namedargs.WithStrict())
	assert.ErrorIs(t, err, namedargs.ErrUnknownKey)
}

func TestUnmarshalMap(t *testing.T) {
	var m map[string]any

	err := namedargs.Unmarshal("a = 1, b = 'two'", &m, namedargs.WithStrict())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": int64(1), "b": "two"}, m)

	strs := map[string]string{}
	err = namedargs.Unmarshal("a = 'x', b = 2", &strs)
	assert.ErrorIs(t, err, namedargs.ErrTypeMismatch)
}

type custom struct {
	label string
	calls int
}

func (c *custom) UnmarshalArgs(a *namedargs.Accessor) error {
	c.calls++
	return namedargs.AssignOr(a, &c.label, "label", "none")
}

func TestUnmarshalUsesUnmarshaler(t *testing.T) {
	var c custom

	require.NoError(t, namedargs.Unmarshal("label = 'set'", &c))
	assert.Equal(t, "set", c.label)
	assert.Equal(t, 1, c.calls)

	require.NoError(t, namedargs.Unmarshal("", &c))
	assert.Equal(t, "none", c.label)
}

func TestUnmarshalInvalidDestination(t *testing.T) {
	var opts serverOptions
	assert.Error(t, namedargs.Unmarshal("a = 1", opts))
	assert.Error(t, namedargs.Unmarshal("a = 1", (*serverOptions)(nil)))

	n := 3
	assert.Error(t, namedargs.Unmarshal("a = 1", &n))
}

func TestUnmarshalParseErrorWins(t *testing.T) {
	var opts serverOptions
	err := namedargs.Unmarshal("port = 1, port = 2", &opts)
	assert.ErrorIs(t, err, namedargs.ErrDuplicateKey)
	assert.Zero(t, opts.Port, "nothing is assigned when parsing fails")
}
