package shortestpath

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// DefaultMaxPaths is the default limit on the number of paths
// AllShortestPaths will return. The number of equally short paths can grow
// exponentially with the size of the graph, so some limit is always wise.
const DefaultMaxPaths = 1 << 16

// Option configures a single call into this package.
type Option func(*options) error

type options struct {
	logger   hclog.Logger
	maxPaths int
	metrics  *Metrics
}

func newOptions(opts ...Option) (*options, error) {
	o := &options{
		logger:   hclog.L(),
		maxPaths: DefaultMaxPaths,
	}

	var buildErr error
	for _, opt := range opts {
		if err := opt(o); err != nil {
			buildErr = multierror.Append(buildErr, err)
		}
	}

	return o, buildErr
}

// WithLogger sets the logger. Everything is logged at trace level, so
// the default logger (hclog.L()) is silent unless its level is raised.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}

		o.logger = l
		return nil
	}
}

// WithMaxPaths limits the number of paths AllShortestPaths returns before
// failing with ErrTooManyPaths. Zero removes the limit.
func WithMaxPaths(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("max paths must not be negative, got %d", n)
		}

		o.maxPaths = n
		return nil
	}
}

// WithMetrics records the work done by the call in m. See NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) error {
		o.metrics = m
		return nil
	}
}
