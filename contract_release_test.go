//go:build !debug

package xvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContract_ReleasePopBackEmpty(t *testing.T) {
	v, err := New[int]()
	require.NoError(t, err)
	assert.NotPanics(t, func() { v.PopBack() })
	assert.Zero(t, v.Len())
	assert.Equal(t, 1, v.Cap())
}
