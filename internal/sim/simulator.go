package sim

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/antsim/internal/langton"
)

type Simulator struct {
	colony    *langton.Colony
	metrics   []Metric
	observers []Observer
	logger    log.FieldLogger
}

func New(c *langton.Colony) *Simulator {
	return &Simulator{
		colony:    c,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    log.StandardLogger(),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// SetLogger replaces the default logrus standard logger.
func (s *Simulator) SetLogger(l log.FieldLogger) {
	if l != nil {
		s.logger = l
	}
}

func (s *Simulator) Colony() *langton.Colony { return s.colony }

// Run advances the colony cfg.Ticks times. On cancellation or a failed tick
// the partial result is returned together with the error.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	c := s.colony
	cells := float64(c.Size() * c.Size())
	result := &Result{
		Metrics:  make(map[string]float64),
		Coverage: make([]float64, 0, cfg.Ticks/cfg.SampleEvery+1),
	}

	for _, m := range s.metrics {
		m.Reset()
		m.Observe(c)
	}
	result.Coverage = append(result.Coverage, float64(c.Grid().Count())/cells)

	s.logger.WithFields(log.Fields{
		"size":  c.Size(),
		"rules": c.Rules().String(),
		"ants":  len(c.Ants()),
		"ticks": cfg.Ticks,
	}).Info("run started")

	var runErr error
	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
		}
		if runErr != nil {
			break
		}

		if err := c.Step(); err != nil {
			runErr = &StepError{Tick: c.Ticks() + 1, Wrapped: err}
			break
		}
		result.Ticks++

		for _, m := range s.metrics {
			m.Observe(c)
		}
		for _, obs := range s.observers {
			obs.OnTick(c)
		}

		if result.Ticks%cfg.SampleEvery == 0 {
			result.Coverage = append(result.Coverage, float64(c.Grid().Count())/cells)
		}
		if cfg.LogEvery > 0 && result.Ticks%cfg.LogEvery == 0 {
			s.logger.WithFields(log.Fields{
				"tick":  c.Ticks(),
				"count": c.Grid().Count(),
			}).Debug("progress")
		}
	}

	result.Checksum = c.Grid().Checksum()
	result.Count = c.Grid().Count()
	result.Ants = c.Ants()
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	entry := s.logger.WithFields(log.Fields{
		"tick":     c.Ticks(),
		"count":    result.Count,
		"checksum": fmt.Sprintf("%016x", result.Checksum),
	})
	if runErr != nil {
		entry.WithError(runErr).Warn("run stopped early")
		return result, runErr
	}
	entry.Info("run finished")
	return result, nil
}

// RunWithCallback steps until the callback returns false, the context is
// canceled, or a tick fails. The callback sees the colony after each tick.
func (s *Simulator) RunWithCallback(ctx context.Context, callback func(*langton.Colony) bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.colony.Step(); err != nil {
			return &StepError{Tick: s.colony.Ticks() + 1, Wrapped: err}
		}
		for _, obs := range s.observers {
			obs.OnTick(s.colony)
		}
		if !callback(s.colony) {
			return nil
		}
	}
}

func validateConfig(cfg Config) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", cfg.Ticks)
	}
	if cfg.SampleEvery <= 0 {
		return fmt.Errorf("sample interval must be positive, got %d", cfg.SampleEvery)
	}
	if cfg.LogEvery < 0 {
		return fmt.Errorf("log interval must not be negative, got %d", cfg.LogEvery)
	}
	return nil
}
