package grid

import (
	"github.com/milk9111/tilegrid/geom"
)

// Hexagon corners relative to the cell centre. Rows are one unit apart and
// odd rows are pushed half a cell right, so every edge is the perpendicular
// bisector between two neighbouring centres.
var hexCorners = []geom.Point{
	{0, -0.625},
	{0.5, -0.375},
	{0.5, 0.375},
	{0, 0.625},
	{-0.5, 0.375},
	{-0.5, -0.375},
}

// HexGrid is an offset hex layout: rows stacked at unit spacing, odd rows
// (by absolute value, so -1 too) shifted right by half a cell. The zero
// value is an identity-transformed grid.
type HexGrid struct {
	cellGrid
}

func NewHexGrid() *HexGrid {
	return &HexGrid{cellGrid: newCellGrid()}
}

func (g *HexGrid) Kind() Kind {
	return KindHexagonal
}

func rowOffset(row int) float64 {
	if geom.IsOdd(row) {
		return 0.5
	}
	return 0
}

func (g *HexGrid) CellCenter(c geom.Cell) geom.Point {
	return geom.Point{X: float64(c.X) + rowOffset(c.Y), Y: float64(c.Y)}
}

// LocalToCell resolves the hex containing p.
//
// Rounding y and then the row-corrected x picks the cell whose bounding box
// holds p, but the hexagon's slanted edges give the corners of that box to
// the diagonal neighbours. The rounded cell is then checked against each
// neighbour's shared edge and the point moves across any edge it lies
// beyond. A point exactly on an edge stays with the lower row, then the
// lower column.
func (g *HexGrid) LocalToCell(p geom.Point) geom.Cell {
	row := geom.RoundHalfDown(p.Y)
	cell := geom.Cell{X: geom.RoundHalfDown(p.X - rowOffset(row)), Y: row}

	best := cell
	for _, n := range g.Neighbors(cell) {
		side := edgeSide(p, g.CellCenter(best), g.CellCenter(n))
		if side > 0 || (side == 0 && lowerLeft(n, best)) {
			best = n
		}
	}
	return best
}

func (g *HexGrid) WorldToCell(w geom.WorldPoint) geom.Cell {
	return g.LocalToCell(g.WorldToLocal(w))
}

func (g *HexGrid) Vertices(c geom.Cell) []geom.WorldPoint {
	return g.outline(g.CellCenter(c), hexCorners)
}

// Neighbors lists the six touching cells: right, the two above, left, the
// two below.
func (g *HexGrid) Neighbors(c geom.Cell) []geom.Cell {
	// columns of the diagonal neighbours relative to c.X
	left, right := -1, 0
	if geom.IsOdd(c.Y) {
		left, right = 0, 1
	}
	return []geom.Cell{
		{c.X + 1, c.Y},
		{c.X + right, c.Y + 1},
		{c.X + left, c.Y + 1},
		{c.X - 1, c.Y},
		{c.X + left, c.Y - 1},
		{c.X + right, c.Y - 1},
	}
}

func (g *HexGrid) IsAdjacent(a, b geom.Cell) bool {
	return containsCell(g.Neighbors(a), b)
}

func (g *HexGrid) Clone() Grid {
	clone := *g
	return &clone
}

// edgeSide is positive when p lies on b's side of the edge shared by the
// cells centred at a and b, zero on the edge and negative on a's side.
func edgeSide(p, a, b geom.Point) float64 {
	ab := b.Vec().Sub(a.Vec())
	mid := a.Vec().Lerp(b.Vec(), 0.5)
	return p.Vec().Sub(mid).Dot(ab)
}

func lowerLeft(a, b geom.Cell) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
