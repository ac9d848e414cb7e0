package sim

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/antsim/internal/langton"
)

// ColonyFactory builds an independent colony for one seed.
type ColonyFactory func(seed int64) (*langton.Colony, error)

// Ensemble runs independent colonies over a range of seeds. Each colony is
// stepped by a single goroutine, so every run is reproducible from its seed.
type Ensemble struct {
	factory   ColonyFactory
	metrics   func() []Metric
	numRuns   int
	seedStart int64
	workers   int
	logger    log.FieldLogger
}

func NewEnsemble(factory ColonyFactory, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{
		factory:   factory,
		numRuns:   numRuns,
		seedStart: seedStart,
		logger:    log.StandardLogger(),
	}
}

// WithMetrics sets a constructor for fresh per-run metrics.
func (e *Ensemble) WithMetrics(fn func() []Metric) *Ensemble {
	e.metrics = fn
	return e
}

// WithWorkers bounds the number of concurrent runs. Zero means unbounded.
func (e *Ensemble) WithWorkers(n int) *Ensemble {
	e.workers = n
	return e
}

func (e *Ensemble) WithLogger(l log.FieldLogger) *Ensemble {
	if l != nil {
		e.logger = l
	}
	return e
}

// Run returns one result per seed, in seed order.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	if e.numRuns <= 0 {
		return nil, fmt.Errorf("ensemble needs at least one run, got %d", e.numRuns)
	}

	results := make([]*Result, e.numRuns)
	g, ctx := errgroup.WithContext(ctx)
	if e.workers > 0 {
		g.SetLimit(e.workers)
	}

	for i := 0; i < e.numRuns; i++ {
		idx := i
		g.Go(func() error {
			seed := e.seedStart + int64(idx)
			c, err := e.factory(seed)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}

			s := New(c)
			s.SetLogger(e.logger.WithField("seed", seed))
			if e.metrics != nil {
				for _, m := range e.metrics() {
					s.AddMetric(m)
				}
			}

			res, err := s.Run(ctx, cfg)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[idx] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
