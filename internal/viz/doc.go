// Package viz renders a colony in the terminal using the Bubble Tea framework.
//
// Two grid rows share one terminal line: each cell pair is drawn as an upper
// half block whose foreground is the top cell's colour and whose background
// is the bottom cell's. North is up. Ants are drawn in a marker colour.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single tick while paused
//	+/-   - Double/halve ticks per frame
//	R     - Rebuild the colony from its configuration
//	Q     - Quit
package viz
