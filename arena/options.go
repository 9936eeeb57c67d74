package arena

import (
	"io"
	"log/slog"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures New.
type Option func(*options)

type options struct {
	backing Backing
	logger  *slog.Logger
}

// WithBacking selects where the root block comes from. The default is Heap.
func WithBacking(b Backing) Option {
	return func(o *options) {
		if b != nil {
			o.backing = b
		}
	}
}

// WithLogger routes lifecycle diagnostics (failed creation, double free,
// out-of-order release) to l. Temporaries inherit their parent's logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{backing: Heap, logger: discard}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
