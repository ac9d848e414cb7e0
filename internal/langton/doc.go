// Package langton implements the Langton's Ant simulation kernel.
//
// A [Colony] owns an N×N toroidal [Grid] of cell states, a [Rules] string and
// an ordered list of [Ant] agents. Each call to [Colony.Step] advances the
// whole colony by one tick in three strictly ordered passes:
//
//   - Turn: every ant rotates 90° according to the rule bit of its cell
//   - Paint: every ant advances its cell state by one, modulo len(rules)
//   - Move: every ant steps forward one cell, wrapping at the edges
//
// Ants sharing a cell observe each other's paint within the same tick, but
// every turn is decided before any paint happens.
//
// # Example
//
//	c, _ := langton.New(101, "10")
//	c.AddAnt(langton.WithHeading(langton.East), langton.WithPosition(50, 50))
//	for i := 0; i < 500; i++ {
//		if err := c.Step(); err != nil {
//			return err
//		}
//	}
//
// # Thread Safety
//
// Colony instances are NOT thread-safe. Use one goroutine per colony; see
// the sim package for running many colonies side by side.
package langton
