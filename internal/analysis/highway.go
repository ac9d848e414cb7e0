package analysis

import "github.com/san-kum/antsim/internal/sim"

// HighwayPeriod is the cycle length of the rule "10" highway.
const HighwayPeriod = 104

// Highway describes a path that, from Onset on, repeats every Period ticks
// shifted by Shift.
type Highway struct {
	Onset  int
	Period int
	Shift  sim.Point
}

// DetectHighway looks for a periodic tail in an unwrapped path. The tail must
// last to the end of the path and cover at least repeats full periods, and
// its drift must be non-zero. Onset is the earliest tick of that tail.
func DetectHighway(points []sim.Point, period, repeats int) (Highway, bool) {
	if period <= 0 || repeats <= 0 {
		return Highway{}, false
	}
	last := len(points) - 1 - period
	if last < 0 {
		return Highway{}, false
	}

	shift := diff(points[last+period], points[last])
	if shift == (sim.Point{}) {
		return Highway{}, false
	}

	onset := last
	for onset > 0 && diff(points[onset-1+period], points[onset-1]) == shift {
		onset--
	}
	if len(points)-1-onset < period*repeats {
		return Highway{}, false
	}
	return Highway{Onset: onset, Period: period, Shift: shift}, true
}

func diff(a, b sim.Point) sim.Point {
	return sim.Point{Row: a.Row - b.Row, Col: a.Col - b.Col}
}
