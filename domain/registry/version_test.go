package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"1.2.3", "1.2.3", true},
		{"0.0.0", "0.0.0", true},
		{"1.2.3-rc.1", "1.2.3-rc.1", true},
		{"1.2.3-rc.1+build.5", "1.2.3-rc.1+build.5", true},
		{"1.2.3+build", "1.2.3+build", true},
		{"0.1", "", false},
		{"1", "", false},
		{"0.1.2.3", "", false},
		{"v1.2.3", "", false},
		{" 1.2.3", "", false},
		{"1.2.3 ", "", false},
		{"", "", false},
		{"not-a-version", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrMalformedVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestParseVersionComponents(t *testing.T) {
	v, err := ParseVersion("1.2.3-rc.1+build.5")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Major())
	assert.Equal(t, int64(2), v.Minor())
	assert.Equal(t, int64(3), v.Patch())
	assert.Equal(t, "rc.1", v.Pre())
	assert.Equal(t, "build.5", v.Build())
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"2.0.0", "1.9.9", 1},
		{"1.0.0", "1.0.1", -1},
		// A release outranks its own pre-releases.
		{"1.0.0", "1.0.0-rc.1", 1},
		{"1.0.0-rc.2", "1.0.0-rc.1", 1},
		{"1.0.0-alpha", "1.0.0-beta", -1},
		// Numeric pre-release identifiers compare numerically.
		{"1.0.0-rc.10", "1.0.0-rc.9", 1},
		// Build metadata does not participate in precedence.
		{"1.0.0+a", "1.0.0+b", 0},
	}
	for _, tt := range tests {
		a, err := ParseVersion(tt.a)
		require.NoError(t, err)
		b, err := ParseVersion(tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, a.Compare(b), "%s vs %s", tt.a, tt.b)
		assert.Equal(t, -tt.want, b.Compare(a), "%s vs %s reversed", tt.b, tt.a)
	}
}
