package matcher

import (
	"go.uber.org/zap"

	"go.dw1.io/x/regexbuilder/regexp"
)

type options struct {
	flags  regexp.Flags
	logger *zap.SugaredLogger
}

// Option configures a Matcher.
type Option func(*options)

// WithFlags passes engine flags such as [regexp.IgnoreCase] through to the
// matching engine. Flags never change group numbering.
func WithFlags(flags regexp.Flags) Option {
	return func(o *options) {
		o.flags = flags
	}
}

// WithLogger sets the logger used for debug output. A nil logger disables
// logging.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop().Sugar()
	}

	return o
}
