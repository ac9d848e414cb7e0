package langton

import (
	"encoding/binary"
	"hash/fnv"
)

// Grid is a square toroidal board of cell states stored in row-major order.
// Cell (row, col) lives at index row*N + col.
type Grid struct {
	n     int
	cells []int
}

func newGrid(n int) *Grid {
	return &Grid{n: n, cells: make([]int, n*n)}
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.n }

// At returns the state of cell (row, col).
func (g *Grid) At(row, col int) int { return g.cells[g.index(row, col)] }

// Cells exposes the backing slice for renderers. Callers must not write to it.
func (g *Grid) Cells() []int { return g.cells }

// Rows returns a deep copy of the grid as N rows of N states.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.n)
	for r := range rows {
		rows[r] = make([]int, g.n)
		copy(rows[r], g.cells[r*g.n:(r+1)*g.n])
	}
	return rows
}

// Count returns the number of cells in a non-zero state.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Histogram counts cells per state for a rule string of length states.
// States outside [0, states) are ignored.
func (g *Grid) Histogram(states int) []int {
	h := make([]int, states)
	for _, v := range g.cells {
		if v >= 0 && v < states {
			h[v]++
		}
	}
	return h
}

// Checksum fingerprints the grid contents, including its size.
func (g *Grid) Checksum() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(g.n))
	h.Write(buf[:])
	for _, v := range g.cells {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (g *Grid) index(row, col int) int { return row*g.n + col }
