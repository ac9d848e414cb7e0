// Package analysis characterises the long-run behaviour of a colony.
//
//   - [DetectHighway]: onset, period and drift of a periodic ant path
//   - [DominantPeriod]: strongest period in a sampled series, via FFT
//   - [Symmetry]: rotational symmetry order of a grid about its centre
//
// # Highway Detection
//
// The classic rule "10" settles after roughly ten thousand ticks into a
// 104-tick cycle that drifts two cells diagonally per cycle:
//
//	trail := sim.NewTrail(c, 0)
//	s.AddObserver(trail)
//	s.Run(ctx, cfg)
//	if hw, ok := analysis.DetectHighway(trail.Points(), analysis.HighwayPeriod, 4); ok {
//	    fmt.Println("highway from tick", hw.Onset)
//	}
package analysis
