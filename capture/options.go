package capture

import "github.com/cwbudde/algo-bandmeter/diag"

// Option configures a [Queue] or an [Accumulator].
type Option func(*options)

type options struct {
	sink diag.Sink
}

// WithSink reports overflow and empty-drain events to s.
func WithSink(s diag.Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.sink = diag.OrNop(o.sink)
	return o
}
