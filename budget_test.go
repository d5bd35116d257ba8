package xvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/xvec/resource"
	"github.com/hupe1980/xvec/testutil"
)

func TestBudget_Exhaustion(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1024})
	v, err := New[int64](WithMemoryController(rc))
	require.NoError(t, err)

	var appendErr error
	for i := range 1000 {
		if appendErr = v.Append(int64(i)); appendErr != nil {
			break
		}
	}
	require.ErrorIs(t, appendErr, ErrAllocationFailed)
	require.ErrorIs(t, appendErr, resource.ErrMemoryLimitExceeded)

	// 64 slots (512 bytes) fit, but growing to 128 needs 1024 more while the
	// old buffer is still held.
	assert.Equal(t, 64, v.Len())
	assert.Equal(t, 64, v.Cap())
	assert.Equal(t, v.Stats().BytesReserved, rc.MemoryUsage())
	for i := range 64 {
		assert.Equal(t, int64(i), v.Get(i))
	}

	v.Free()
	assert.Zero(t, rc.MemoryUsage())
	assert.Equal(t, int64(256+512), rc.PeakMemoryUsage())
}

func TestBudget_SharedAcrossVectors(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 256})

	a, err := NewSized(16, int64(1), WithMemoryController(rc))
	require.NoError(t, err)
	assert.Equal(t, int64(128), rc.MemoryUsage())

	b, err := a.Clone()
	require.NoError(t, err, "clone inherits the controller")
	assert.Equal(t, int64(256), rc.MemoryUsage())

	_, err = a.Clone()
	require.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)

	err = a.Reserve(32)
	require.ErrorIs(t, err, ErrAllocationFailed)
	assert.Equal(t, 16, a.Cap())

	a.Swap(b)
	a.Free()
	assert.Equal(t, int64(128), rc.MemoryUsage())

	m := b.Move()
	b.Free()
	assert.Equal(t, int64(128), rc.MemoryUsage(), "moved buffer keeps its charge")
	m.Free()
	assert.Zero(t, rc.MemoryUsage())
}

func TestBudget_ShrinkReturnsMemory(t *testing.T) {
	rc := resource.NewController(resource.Config{})
	v, err := New[int32](WithMemoryController(rc))
	require.NoError(t, err)

	require.NoError(t, v.Reserve(1024))
	assert.Equal(t, int64(4096), rc.MemoryUsage())

	require.NoError(t, v.Append(1))
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, int64(4), rc.MemoryUsage())
	assert.Equal(t, int64(4096+4), rc.PeakMemoryUsage())
}

func TestBudget_FailedGrowthWithHooks(t *testing.T) {
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
	tr := testutil.NewTracker()
	v, err := New[testutil.Tracked](WithMemoryController(rc))
	require.NoError(t, err)
	for i := range 4 {
		require.NoError(t, v.Adopt(tr.New(i)))
	}
	usage := rc.MemoryUsage()

	tr.FailCopyAt(1)
	require.Error(t, v.Append(tr.New(9)))
	assert.Equal(t, usage, rc.MemoryUsage(), "rolled back buffer returns its charge")

	v.Free()
	assert.Zero(t, rc.MemoryUsage())
}
