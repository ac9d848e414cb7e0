package analysis

import "github.com/san-kum/antsim/internal/langton"

// Symmetry returns 4 if the grid is unchanged by a quarter turn about its
// centre, 2 if only by a half turn, and 1 otherwise.
func Symmetry(g *langton.Grid) int {
	n := g.Size()
	quarter, half := true, true
	for r := 0; r < n && (quarter || half); r++ {
		for c := 0; c < n; c++ {
			v := g.At(r, c)
			if quarter && g.At(c, n-1-r) != v {
				quarter = false
			}
			if half && g.At(n-1-r, n-1-c) != v {
				half = false
			}
		}
	}
	switch {
	case quarter:
		return 4
	case half:
		return 2
	}
	return 1
}
