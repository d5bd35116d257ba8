// Package resource implements a shared Controller for memory budgets and IO pacing.
//
// # Memory
//
// Vectors created with xvec.WithMemoryController charge every buffer they
// allocate against the controller and give it back when the buffer is
// released. Acquisition is non-blocking: when a buffer would push usage past
// the limit, AcquireMemory fails immediately with ErrMemoryLimitExceeded and
// the vector reports an allocation failure without changing its state.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB for all vectors sharing rc
//	})
//	v, err := xvec.New[float64](xvec.WithMemoryController(rc))
//
// # IO
//
// A token bucket paces snapshot IO performed by the codec package:
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 100 << 20, // 100MB/s
//	})
//	w := resource.NewRateLimitedWriter(ctx, file, rc)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one controller can
// budget many vectors owned by different goroutines.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully: they become no-ops.
package resource
