package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumericCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateNumericCode(4)
		require.NoError(t, err)
		assert.Len(t, code, 4)
		assert.Regexp(t, `^[0-9]{4}$`, code)
	}
}

func TestParseDeadline(t *testing.T) {
	got, err := ParseDeadline("2026-12-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDeadline("2026-12-31T15:04:05+02:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 12, 31, 13, 4, 5, 0, time.UTC)))

	_, err = ParseDeadline("next friday")
	assert.Error(t, err)

	_, err = ParseDeadline("  ")
	assert.Error(t, err)
}
