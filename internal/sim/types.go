package sim

import (
	"fmt"

	"github.com/san-kum/antsim/internal/langton"
)

// Observer is notified after every completed tick.
type Observer interface {
	OnTick(c *langton.Colony)
}

// Metric summarises a run. Observe is called once before the first tick and
// once after every tick.
type Metric interface {
	Name() string
	Observe(c *langton.Colony)
	Value() float64
	Reset()
}

type Config struct {
	Ticks       int
	SampleEvery int
	LogEvery    int
}

func DefaultConfig() Config {
	return Config{
		Ticks:       10000,
		SampleEvery: 10,
		LogEvery:    1000,
	}
}

type Result struct {
	Ticks    int
	Checksum uint64
	Count    int
	Metrics  map[string]float64
	// Coverage holds the fraction of non-zero cells, sampled every
	// SampleEvery ticks starting at tick 0.
	Coverage []float64
	Ants     []langton.Ant
}

// StepError wraps a failed tick with the tick it would have become.
type StepError struct {
	Tick    int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("tick %d: %v", e.Tick, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
