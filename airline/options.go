package airline

import (
	"log/slog"
	"math/rand/v2"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/airnet/internal/logging"
	"github.com/katalvlaran/airnet/seating"
)

// Option configures a Registry.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	registry prometheus.Registerer
	seating  []seating.Option
}

func defaultOptions() options {
	return options{
		logger:   logging.Discard(),
		registry: prometheus.NewRegistry(),
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics registers the registry's collectors with reg. By default a
// private prometheus.Registry is used. A nil reg is ignored.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithRand makes every aircraft draw seats from r. A nil r is ignored.
func WithRand(r seating.RandSource) Option {
	return func(o *options) {
		if r != nil {
			o.seating = append(o.seating, seating.WithRand(r))
		}
	}
}

// WithSeed makes seat allocation reproducible. All aircraft share one
// generator seeded with seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seating = append(o.seating, seating.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
}
