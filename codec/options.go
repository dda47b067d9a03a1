package codec

import "github.com/datatrails/go-datatrails-common/logger"

type Options struct {
	// Format selects the word layout. Defaults to FormatPlain.
	Format Format

	// MaxDepth bounds the number of nodes on any root to leaf path, for
	// both encoding and decoding. Zero means unlimited.
	MaxDepth int

	// Log receives debug level summaries. nil disables logging.
	Log logger.Logger
}

type Option func(*Options)

func WithFormat(format Format) Option {
	return func(o *Options) {
		o.Format = format
	}
}

func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}
