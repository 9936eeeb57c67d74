package xfile

import (
	"io"
	"log/slog"
)

// Option configures Load.
type Option func(*options)

type options struct {
	encoding Encoding
	logger   *slog.Logger
}

// WithEncoding decodes the file from e before storing it.
func WithEncoding(e Encoding) Option {
	return func(o *options) { o.encoding = e }
}

// WithLogger reports load failures at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
