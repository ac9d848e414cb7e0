package langton

import "fmt"

// Rules is a parsed rule string. Bit i decides the turn taken on a cell in
// state i, and the length is the number of states a cell cycles through.
type Rules struct {
	raw  string
	bits []uint8
}

// ParseRules validates s as a non-empty string of '0' and '1'.
func ParseRules(s string) (Rules, error) {
	if s == "" {
		return Rules{}, fmt.Errorf("%w: empty", ErrInvalidRuleString)
	}
	bits := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return Rules{}, fmt.Errorf("%w: %q at index %d", ErrInvalidRuleString, s[i], i)
		}
	}
	return Rules{raw: s, bits: bits}, nil
}

// Len is the number of cell states.
func (r Rules) Len() int { return len(r.bits) }

// Bit returns the turn bit for a cell state.
func (r Rules) Bit(state int) (uint8, error) {
	if state < 0 || state >= len(r.bits) {
		return 0, fmt.Errorf("%w: state %d with %d rules", ErrInvalidRuleIndex, state, len(r.bits))
	}
	return r.bits[state], nil
}

func (r Rules) String() string { return r.raw }
