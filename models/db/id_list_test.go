package dbmodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDList(t *testing.T) {
	t.Run("parse trims blanks and dedupes keeping order", func(t *testing.T) {
		list := ParseIDList(" a, b ,a,, c ,b")
		require.Equal(t, IDList{"a", "b", "c"}, list)
	})

	t.Run("parse empty", func(t *testing.T) {
		require.Equal(t, IDList{}, ParseIDList(""))
		require.Equal(t, IDList{}, ParseIDList("  , ,"))
	})

	t.Run("new from slice", func(t *testing.T) {
		require.Equal(t, IDList{"a", "b"}, NewIDList([]string{"a", "b", "a", ""}))
	})

	t.Run("contains", func(t *testing.T) {
		list := IDList{"a", "b"}
		require.True(t, list.Contains("a"))
		require.False(t, list.Contains("c"))
	})

	t.Run("equal is order sensitive", func(t *testing.T) {
		require.True(t, IDList{"a", "b"}.Equal(IDList{"a", "b"}))
		require.False(t, IDList{"a", "b"}.Equal(IDList{"b", "a"}))
		require.False(t, IDList{"a"}.Equal(IDList{"a", "b"}))
	})

	t.Run("value and scan round trip", func(t *testing.T) {
		list := IDList{"a", "b", "c"}
		raw, err := list.Value()
		require.Nil(t, err)
		require.Equal(t, "a,b,c", raw)

		var scanned IDList
		require.Nil(t, scanned.Scan(raw))
		require.True(t, list.Equal(scanned))

		require.Nil(t, scanned.Scan([]byte("x,y")))
		require.Equal(t, IDList{"x", "y"}, scanned)
	})
}
