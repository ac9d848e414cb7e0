package langton

import (
	"fmt"
	"strings"
)

// Heading is the compass direction an ant faces.
type Heading uint8

const (
	North Heading = iota
	East
	South
	West
)

const numHeadings = 4

// Axis selects the coordinate a move changes.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisCol
)

// ParseHeading accepts "N", "E", "S" or "W" in either case.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidHeading, s)
}

// Valid reports whether h is one of the four compass headings.
func (h Heading) Valid() bool { return h < numHeadings }

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// Turn returns the heading after a 90° rotation selected by a rule bit.
// Bit 0 maps N→W, W→S, S→E, E→N; bit 1 maps N→E, E→S, S→W, W→N.
func (h Heading) Turn(bit uint8) Heading {
	if bit == 0 {
		return (h + numHeadings - 1) % numHeadings
	}
	return (h + 1) % numHeadings
}

// Delta returns the axis a forward move changes and its sign. Rows grow
// northwards and columns grow eastwards.
func (h Heading) Delta() (Axis, int) {
	switch h {
	case North:
		return AxisRow, 1
	case South:
		return AxisRow, -1
	case East:
		return AxisCol, 1
	default:
		return AxisCol, -1
	}
}
