package resource

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	// Test with limit
	c := NewController(Config{MemoryLimitBytes: 100})

	// Acquire 50
	err := c.AcquireMemory(50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), c.MemoryUsage())

	// Acquire 40
	err = c.AcquireMemory(40)
	require.NoError(t, err)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Acquire 20 (should fail - limit exceeded)
	err = c.AcquireMemory(20)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Release 50
	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	// Now Acquire 20 should succeed
	err = c.AcquireMemory(20)
	require.NoError(t, err)
	assert.Equal(t, int64(60), c.MemoryUsage())
	assert.Equal(t, int64(90), c.PeakMemoryUsage())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	err := c.AcquireMemory(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
}

func TestController_NonPositiveAmounts(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 10})
	assert.NoError(t, c.AcquireMemory(0))
	assert.NoError(t, c.AcquireMemory(-1))
	c.ReleaseMemory(-1)
	assert.Equal(t, int64(0), c.MemoryUsage())
}

func TestController_ConcurrentMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 1 << 20})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if err := c.AcquireMemory(64); err == nil {
					c.ReleaseMemory(64)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(0), c.MemoryUsage())
}

func TestController_MemoryLimit(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 1024})
	assert.Equal(t, int64(1024), c.MemoryLimit())

	c2 := NewController(Config{})
	assert.Equal(t, int64(0), c2.MemoryLimit())
}

func TestController_NilSafe(t *testing.T) {
	var c *Controller

	// All methods should be nil-safe
	assert.NoError(t, c.AcquireMemory(100))
	c.ReleaseMemory(100)
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, int64(0), c.PeakMemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())

	assert.NoError(t, c.AcquireIO(context.Background(), 100))
	assert.True(t, c.TryAcquireIO(100))
}

func TestController_IO(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1000}) // 1KB/s
	ctx := context.Background()

	// Small acquire
	err := c.AcquireIO(ctx, 100)
	assert.NoError(t, err)

	// Unlimited
	c2 := NewController(Config{})
	err = c2.AcquireIO(ctx, 1000000)
	assert.NoError(t, err)
}

func TestController_AcquireIOLargerThanBurst(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})

	// 1.5x the burst: one full burst available now plus a short wait.
	err := c.AcquireIO(context.Background(), (1<<20)+(1<<19))
	assert.NoError(t, err)
}

func TestController_TryAcquireIO(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1000})
	assert.True(t, c.TryAcquireIO(100))
	assert.False(t, c.TryAcquireIO(10000))
}

func TestRateLimitedWriter(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 10000})

	var buf bytes.Buffer
	w := NewRateLimitedWriter(context.Background(), &buf, c)

	n, err := w.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", buf.String())
}

func TestRateLimitedReader(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 10000})

	data := bytes.NewReader([]byte("hello world"))
	r := NewRateLimitedReader(context.Background(), data, c)

	buf := make([]byte, 5)
	n, err := r.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(buf))
}

func TestRateLimitedReader_ContextCanceled(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1}) // Very slow
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	data := bytes.NewReader([]byte("hello world"))
	r := NewRateLimitedReader(ctx, data, c)

	buf := make([]byte, 1000)
	_, err := r.Read(buf)
	assert.Error(t, err)
}

func TestRateLimitedWriter_Chunks(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 30})

	var buf bytes.Buffer
	w := NewRateLimitedWriter(context.Background(), &buf, c)

	payload := bytes.Repeat([]byte{0x42}, 3*ioChunk+17)
	n, err := w.Write(payload)
	assert.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.Equal(t, payload, buf.Bytes())
}

func TestRateLimitedWriter_ContextCanceled(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	w := NewRateLimitedWriter(ctx, &buf, c)
	n, err := w.Write([]byte("hello"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
	assert.Zero(t, buf.Len())
}

func TestRateLimitedReader_NilController(t *testing.T) {
	r := NewRateLimitedReader(context.Background(), bytes.NewReader([]byte("abc")), nil)
	buf := make([]byte, 8)
	n, err := r.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "abc", string(buf[:n]))
}
