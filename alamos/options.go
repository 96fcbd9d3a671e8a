package alamos

import "go.uber.org/zap"

type Option func(*options)

type options struct {
	logger    *zap.Logger
	namespace string
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	mergeDefaultOptions(o)
	return o
}

func mergeDefaultOptions(o *options) {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.namespace == "" {
		o.namespace = "itimer"
	}
}

// WithLogger sets the logger used by the experiment and its metrics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithNamespace sets the namespace prefixed to exported Prometheus metrics.
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}
