package optional

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	t.Run("zero value is absent", func(t *testing.T) {
		var o Optional[int]
		require.False(t, o.IsPresent())
		require.Nil(t, o.Ptr())
		require.Equal(t, 7, o.Or(7))
	})

	t.Run("some", func(t *testing.T) {
		o := Some("x")
		v, ok := o.Get()
		require.True(t, ok)
		require.Equal(t, "x", v)
		require.Equal(t, "x", *o.Ptr())
		require.Equal(t, "x", o.Or("y"))
	})

	t.Run("none", func(t *testing.T) {
		o := None[string]()
		require.False(t, o.IsPresent())
		require.Empty(t, o.Value())
	})
}
