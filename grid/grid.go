// Package grid implements the per-layer grid geometries. Every grid owns a
// geom.Transform and maps between its local space and world space the same
// way; the square and hexagonal grids differ only in how a continuous point
// resolves to a cell and in which cells touch.
package grid

import (
	"github.com/milk9111/tilegrid/geom"
)

// Grid is the geometry of one layer.
type Grid interface {
	Kind() Kind

	// Transform returns a copy of the current transform parameters.
	Transform() geom.Transform
	SetScale(scale float64) error
	SetRotation(degrees float64) error
	SetXShift(shift float64) error
	SetYShift(shift float64) error

	LocalToWorld(p geom.Point) geom.WorldPoint
	WorldToLocal(w geom.WorldPoint) geom.Point
	// LocalToCell returns the cell containing a local point.
	LocalToCell(p geom.Point) geom.Cell
	// WorldToCell returns the cell containing a world point.
	WorldToCell(w geom.WorldPoint) geom.Cell

	// CellCenter returns the local coordinates of a cell's centre.
	CellCenter(c geom.Cell) geom.Point
	// Vertices returns the outline of a cell in world space,
	// counterclockwise in local space.
	Vertices(c geom.Cell) []geom.WorldPoint
	Neighbors(c geom.Cell) []geom.Cell
	IsAdjacent(a, b geom.Cell) bool

	Clone() Grid
}

// cellGrid carries the transform and the local/world mapping every grid
// shares.
type cellGrid struct {
	transform geom.Transform
}

func newCellGrid() cellGrid {
	return cellGrid{transform: geom.NewTransform()}
}

func (g *cellGrid) Transform() geom.Transform {
	return g.transform
}

func (g *cellGrid) SetScale(scale float64) error {
	return g.transform.SetScale(scale)
}

func (g *cellGrid) SetRotation(degrees float64) error {
	return g.transform.SetRotation(degrees)
}

func (g *cellGrid) SetXShift(shift float64) error {
	return g.transform.SetXShift(shift)
}

func (g *cellGrid) SetYShift(shift float64) error {
	return g.transform.SetYShift(shift)
}

func (g *cellGrid) LocalToWorld(p geom.Point) geom.WorldPoint {
	return g.transform.Forward(p)
}

func (g *cellGrid) WorldToLocal(w geom.WorldPoint) geom.Point {
	return g.transform.Inverse(w)
}

// outline maps cell-relative corner offsets around center into world space.
func (g *cellGrid) outline(center geom.Point, corners []geom.Point) []geom.WorldPoint {
	m := g.transform.Matrix()
	out := make([]geom.WorldPoint, 0, len(corners))
	for _, c := range corners {
		v := center.Vec().Add(c.Vec())
		out = append(out, geom.WorldFromVec(m.Point(v)))
	}
	return out
}

func containsCell(cells []geom.Cell, c geom.Cell) bool {
	for _, n := range cells {
		if n == c {
			return true
		}
	}
	return false
}
