package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		hour, minute, ok := ParseClock("08:30")
		require.True(t, ok)
		require.Equal(t, 8, hour)
		require.Equal(t, 30, minute)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		hour, minute, ok := ParseClock(" 23:59 ")
		require.True(t, ok)
		require.Equal(t, 23, hour)
		require.Equal(t, 59, minute)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, bad := range []string{"", "25:00", "08:60", "0830", "8:3a"} {
			_, _, ok := ParseClock(bad)
			require.False(t, ok, bad)
		}
	})
}

func TestJoinNames(t *testing.T) {
	require.Equal(t, "Ana, Marko", JoinNames([]string{"Ana", "", " ", "Marko"}, ", "))
	require.Equal(t, "", JoinNames(nil, ", "))
}
