package analysis

import (
	"math"
	"testing"
)

func TestDominantPeriod(t *testing.T) {
	data := make([]float64, 256)
	for i := range data {
		data[i] = 3 + math.Sin(2*math.Pi*float64(i)/16)
	}

	period, ok := DominantPeriod(data)
	if !ok {
		t.Fatal("expected a period")
	}
	if math.Abs(period-16) > 1e-9 {
		t.Errorf("expected period 16, got %f", period)
	}
}

func TestDominantPeriod_NonPowerOfTwo(t *testing.T) {
	data := make([]float64, 300)
	for i := range data {
		data[i] = math.Cos(2 * math.Pi * float64(i) / 25)
	}
	period, ok := DominantPeriod(data)
	if !ok || math.Abs(period-25) > 1e-9 {
		t.Errorf("expected period 25, got %f (%v)", period, ok)
	}
}

func TestDominantPeriod_Flat(t *testing.T) {
	if _, ok := DominantPeriod([]float64{2, 2, 2, 2, 2, 2, 2, 2}); ok {
		t.Error("flat series has no period")
	}
	if _, ok := DominantPeriod([]float64{1}); ok {
		t.Error("single sample has no period")
	}
}

func TestPowerSpectrum_Length(t *testing.T) {
	ps := PowerSpectrum(make([]float64, 64))
	if len(ps) != 32 {
		t.Errorf("expected 32 bins, got %d", len(ps))
	}
}
