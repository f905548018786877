package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name  string
		json  bool
		debug bool
	}{
		{name: "console", json: false, debug: false},
		{name: "json debug", json: true, debug: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(tc.json, tc.debug)
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Equal(t, tc.debug, log.Core().Enabled(-1))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "abc", Truncate("  abc  ", 3))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
	assert.Equal(t, "né...", Truncate("névé", 2))
}
