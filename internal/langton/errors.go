package langton

import "errors"

// Precondition violations. None of them are recoverable at runtime; they are
// reported at the boundary that first observes the bad value.
var (
	// ErrInvalidRuleIndex indicates a cell state outside [0, len(rules)).
	ErrInvalidRuleIndex = errors.New("langton: cell state outside rule string")

	// ErrInvalidHeading indicates a heading other than N, E, S or W.
	ErrInvalidHeading = errors.New("langton: invalid heading")

	// ErrInvalidGridSize indicates a non-positive grid side length.
	ErrInvalidGridSize = errors.New("langton: grid size must be positive")

	// ErrInvalidRuleString indicates an empty or non-binary rule string.
	ErrInvalidRuleString = errors.New("langton: rule string must be non-empty and binary")

	// ErrInvalidPosition indicates explicit ant coordinates off the grid.
	ErrInvalidPosition = errors.New("langton: position outside grid")
)
