package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/san-kum/antsim/internal/langton"
)

func randomColony(seed int64) (*langton.Colony, error) {
	c, err := langton.New(31, "110", langton.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		if _, err := c.AddAnt(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func TestEnsembleRun(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := Config{Ticks: 300, SampleEvery: 30}

	ens := NewEnsemble(randomColony, 6, 100).
		WithWorkers(2).
		WithLogger(logger).
		WithMetrics(func() []Metric { return []Metric{&countingMetric{}} })

	results, err := ens.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 6 {
		t.Fatalf("expected 6 results, got %d", len(results))
	}

	for i, res := range results {
		c, _ := randomColony(100 + int64(i))
		s, _ := quietSimulator(c)
		want, err := s.Run(context.Background(), cfg)
		if err != nil {
			t.Fatal(err)
		}
		if res.Checksum != want.Checksum {
			t.Errorf("run %d not reproducible from its seed", i)
		}
		if res.Metrics["count"] != 301 {
			t.Errorf("run %d: metric = %v", i, res.Metrics["count"])
		}
	}
}

func TestEnsembleRun_FactoryError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	boom := errors.New("boom")
	factory := func(seed int64) (*langton.Colony, error) {
		if seed == 3 {
			return nil, boom
		}
		return randomColony(seed)
	}

	_, err := NewEnsemble(factory, 5, 0).WithLogger(logger).Run(context.Background(), Config{Ticks: 10, SampleEvery: 1})
	if !errors.Is(err, boom) {
		t.Errorf("expected factory error, got %v", err)
	}
}

func TestEnsembleRun_NoRuns(t *testing.T) {
	if _, err := NewEnsemble(randomColony, 0, 0).Run(context.Background(), DefaultConfig()); err == nil {
		t.Error("expected error for empty ensemble")
	}
}
