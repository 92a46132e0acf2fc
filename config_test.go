package remedian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		c, err := ParseConfig([]byte("base: 5\ndepth: 4\n"))
		require.NoError(t, err)
		assert.Equal(t, Config{Base: 5, Depth: 4}, c)

		e, err := NewBuilderFromConfig[float64](c).Build()
		require.NoError(t, err)
		assert.Equal(t, uint64(625), e.Capacity())
	})

	t.Run("defaults", func(t *testing.T) {
		c, err := ParseConfig([]byte("depth: 3\n"))
		require.NoError(t, err)

		e, err := NewBuilderFromConfig[float64](c).Build()
		require.NoError(t, err)
		assert.Equal(t, DefaultBase, e.Base())
		assert.Equal(t, 3, e.Depth())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseConfig([]byte("base: [3"))
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	t.Run("negative", func(t *testing.T) {
		c, err := ParseConfig([]byte("base: -3\n"))
		require.NoError(t, err)
		_, err = NewBuilderFromConfig[int](c).Build()
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})
}
