package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPow2(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{100, 128},
		{1023, 1024},
		{1024, 1024},
		{1025, 2048},
		{MaxCapacity, MaxCapacity},
		{MaxCapacity/2 + 1, MaxCapacity},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NextPow2(tt.in), "NextPow2(%d)", tt.in)
	}
}

func TestIsPow2(t *testing.T) {
	assert.False(t, IsPow2(0))
	assert.False(t, IsPow2(-4))
	assert.False(t, IsPow2(6))
	assert.True(t, IsPow2(1))
	assert.True(t, IsPow2(64))
	assert.True(t, IsPow2(MaxCapacity))
}

func TestDouble(t *testing.T) {
	t.Run("from unbacked", func(t *testing.T) {
		got, err := Double(0)
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("sequence", func(t *testing.T) {
		c := 1
		for i := 0; i < 20; i++ {
			next, err := Double(c)
			require.NoError(t, err)
			assert.Equal(t, c*2, next)
			c = next
		}
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Double(MaxCapacity)
		assert.ErrorIs(t, err, ErrCapacityOverflow)
	})
}

func TestExact(t *testing.T) {
	got, err := Exact(0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = Exact(100)
	require.NoError(t, err)
	assert.Equal(t, 128, got)

	_, err = Exact(MaxCapacity + 1)
	assert.ErrorIs(t, err, ErrCapacityOverflow)
}
