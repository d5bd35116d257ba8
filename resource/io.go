package resource

import (
	"context"
	"io"
)

// ioChunk bounds how many bytes a single limiter wait covers, so a large
// write makes progress at the configured rate instead of stalling first.
const ioChunk = 64 << 10

// RateLimitedWriter forwards writes once the controller's IO budget allows.
type RateLimitedWriter struct {
	w   io.Writer
	rc  *Controller
	ctx context.Context
}

// NewRateLimitedWriter wraps w. A nil controller or one without an IO limit
// passes writes through unthrottled.
func NewRateLimitedWriter(ctx context.Context, w io.Writer, rc *Controller) *RateLimitedWriter {
	return &RateLimitedWriter{w: w, rc: rc, ctx: ctx}
}

// Write forwards p in chunks of at most 64 KiB, waiting for budget before
// each chunk. On error it reports the bytes written so far.
func (lw *RateLimitedWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		chunk := p[:min(len(p), ioChunk)]
		if err := lw.rc.AcquireIO(lw.ctx, len(chunk)); err != nil {
			return written, err
		}
		n, err := lw.w.Write(chunk)
		written += n
		if err != nil {
			return written, err
		}
		p = p[n:]
	}
	return written, nil
}

// RateLimitedReader charges reads against the controller's IO budget.
type RateLimitedReader struct {
	r   io.Reader
	rc  *Controller
	ctx context.Context
}

// NewRateLimitedReader wraps r. A nil controller or one without an IO limit
// passes reads through unthrottled.
func NewRateLimitedReader(ctx context.Context, r io.Reader, rc *Controller) *RateLimitedReader {
	return &RateLimitedReader{r: r, rc: rc, ctx: ctx}
}

// Read reads into p, then waits for budget covering the bytes actually read.
func (lr *RateLimitedReader) Read(p []byte) (int, error) {
	if err := lr.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := lr.r.Read(p)
	if n > 0 {
		if werr := lr.rc.AcquireIO(lr.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
