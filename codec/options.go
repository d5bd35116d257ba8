package codec

import (
	"context"

	"github.com/hupe1980/xvec"
	"github.com/hupe1980/xvec/resource"
)

type options struct {
	compression Compression
	controller  *resource.Controller
	ctx         context.Context
	vectorOpts  []xvec.Option
}

// Option configures Encode and Decode.
type Option func(*options)

// WithCompression selects the payload compression for Encode. Decode reads
// the algorithm from the header and ignores this option.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithController throttles snapshot IO to rc's IO limit. On Decode the
// decoded vector is also charged against rc's memory budget.
func WithController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithContext sets the context that bounds waits for IO budget.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx == nil {
			ctx = context.Background()
		}
		o.ctx = ctx
	}
}

// WithVectorOptions passes options to the vector created by Decode.
func WithVectorOptions(opts ...xvec.Option) Option {
	return func(o *options) {
		o.vectorOpts = append(o.vectorOpts, opts...)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		compression: None,
		ctx:         context.Background(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
