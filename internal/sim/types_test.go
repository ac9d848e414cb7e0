package sim

import (
	"errors"
	"testing"

	"github.com/san-kum/antsim/internal/langton"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Ticks <= 0 {
		t.Error("DefaultConfig has invalid Ticks")
	}
	if cfg.SampleEvery <= 0 {
		t.Error("DefaultConfig has invalid SampleEvery")
	}
	if err := validateConfig(cfg); err != nil {
		t.Errorf("DefaultConfig does not validate: %v", err)
	}
}

func TestStepError(t *testing.T) {
	err := &StepError{Tick: 150, Wrapped: langton.ErrInvalidRuleIndex}
	expected := "tick 150: langton: cell state outside rule string"
	if err.Error() != expected {
		t.Errorf("StepError.Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, langton.ErrInvalidRuleIndex) {
		t.Error("StepError should unwrap to its cause")
	}
}
