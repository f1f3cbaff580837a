package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop() error { return nil }

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		fn      Func
		wantErr string
	}{
		{name: "valid", entry: "encode_simple", fn: noop},
		{name: "empty name", entry: "", fn: noop, wantErr: "name cannot be empty"},
		{name: "nil function", entry: "encode_simple", fn: nil, wantErr: "function cannot be nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.entry, tt.fn)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("a", noop))

	err := reg.Register("a", noop)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Equal(t, 1, reg.Len())

	assert.Panics(t, func() { reg.MustRegister("a", noop) })
}

func TestRegistry_KeepsRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	names := []string{"zeta", "alpha", "mid", "beta"}
	for _, n := range names {
		reg.MustRegister(n, noop)
	}

	var got []string
	for _, e := range reg.Entries() {
		got = append(got, e.Name)
	}
	assert.Equal(t, names, got)

	e, ok := reg.Get("mid")
	require.True(t, ok)
	assert.Equal(t, "mid", e.Name)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_Select(t *testing.T) {
	reg := NewRegistry()
	for _, n := range []string{"encode_a", "decode_a", "encode_b", "other"} {
		reg.MustRegister(n, noop)
	}

	tests := []struct {
		prefix   string
		expected []string
	}{
		{prefix: "", expected: []string{"encode_a", "decode_a", "encode_b", "other"}},
		{prefix: "encode", expected: []string{"encode_a", "encode_b"}},
		{prefix: "decode_", expected: []string{"decode_a"}},
		{prefix: "nothing", expected: nil},
	}

	for _, tt := range tests {
		t.Run("prefix="+tt.prefix, func(t *testing.T) {
			var got []string
			for _, e := range reg.Select(tt.prefix) {
				got = append(got, e.Name)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRegistry_EntriesIsACopy(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("a", noop)

	entries := reg.Entries()
	entries[0].Name = "changed"

	e, ok := reg.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", e.Name)
}
