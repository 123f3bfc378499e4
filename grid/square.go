package grid

import (
	"github.com/milk9111/tilegrid/geom"
)

var (
	squareSides     = []geom.Cell{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	squareDiagonals = []geom.Cell{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	squareCorners   = []geom.Point{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
)

// SquareGrid is a grid of unit squares centred on integer coordinates. The
// zero value is an identity-transformed grid without diagonals.
type SquareGrid struct {
	cellGrid
	diagonals bool
}

type SquareOption func(*SquareGrid)

// WithDiagonals makes corner-touching cells adjacent.
func WithDiagonals(enabled bool) SquareOption {
	return func(g *SquareGrid) {
		g.diagonals = enabled
	}
}

func NewSquareGrid(opts ...SquareOption) *SquareGrid {
	g := &SquareGrid{cellGrid: newCellGrid()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *SquareGrid) Kind() Kind {
	return KindSquare
}

func (g *SquareGrid) Diagonals() bool {
	return g.diagonals
}

func (g *SquareGrid) SetDiagonals(enabled bool) {
	g.diagonals = enabled
}

// LocalToCell rounds each axis to the nearest cell. A point exactly on a
// cell border belongs to the lower/left cell.
func (g *SquareGrid) LocalToCell(p geom.Point) geom.Cell {
	return geom.Cell{X: geom.RoundHalfDown(p.X), Y: geom.RoundHalfDown(p.Y)}
}

func (g *SquareGrid) WorldToCell(w geom.WorldPoint) geom.Cell {
	return g.LocalToCell(g.WorldToLocal(w))
}

func (g *SquareGrid) CellCenter(c geom.Cell) geom.Point {
	return c.Point()
}

func (g *SquareGrid) Vertices(c geom.Cell) []geom.WorldPoint {
	return g.outline(g.CellCenter(c), squareCorners)
}

func (g *SquareGrid) Neighbors(c geom.Cell) []geom.Cell {
	out := make([]geom.Cell, 0, 8)
	for _, d := range squareSides {
		out = append(out, c.Add(d))
	}
	if g.diagonals {
		for _, d := range squareDiagonals {
			out = append(out, c.Add(d))
		}
	}
	return out
}

func (g *SquareGrid) IsAdjacent(a, b geom.Cell) bool {
	dx, dy := geom.Abs(a.X-b.X), geom.Abs(a.Y-b.Y)
	if dx > 1 || dy > 1 || dx+dy == 0 {
		return false
	}
	return g.diagonals || dx+dy == 1
}

func (g *SquareGrid) Clone() Grid {
	clone := *g
	return &clone
}
