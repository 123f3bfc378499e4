// Package geom holds the coordinate types shared by every grid and the
// scale/rotate/translate pipeline that maps a grid's local space into the
// world space all layers project into.
package geom

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Cell is an integer cell address within one grid.
type Cell struct {
	X, Y int
}

// Point is a fractional position in a grid's local space.
type Point struct {
	X, Y float64
}

// WorldPoint is a position in the continuous space shared by all layers.
type WorldPoint struct {
	X, Y float64
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{c.X + d.X, c.Y + d.Y}
}

// Point returns the cell address as a fractional local point.
func (c Cell) Point() Point {
	return Point{float64(c.X), float64(c.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Vec converts p into a chipmunk vector.
func (p Point) Vec() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

// Near reports whether p and q differ by at most tol on each axis.
func (p Point) Near(q Point, tol float64) bool {
	return near(p.X, q.X, tol) && near(p.Y, q.Y, tol)
}

func (w WorldPoint) String() string {
	return fmt.Sprintf("(%g,%g)", w.X, w.Y)
}

// Vec converts w into a chipmunk vector.
func (w WorldPoint) Vec() cp.Vector {
	return cp.Vector{X: w.X, Y: w.Y}
}

// Near reports whether w and v differ by at most tol on each axis.
func (w WorldPoint) Near(v WorldPoint, tol float64) bool {
	return near(w.X, v.X, tol) && near(w.Y, v.Y, tol)
}

// Distance is the euclidean distance between two world points.
func (w WorldPoint) Distance(v WorldPoint) float64 {
	return w.Vec().Distance(v.Vec())
}

// PointFromVec converts a chipmunk vector into a local point.
func PointFromVec(v cp.Vector) Point {
	return Point{v.X, v.Y}
}

// WorldFromVec converts a chipmunk vector into a world point.
func WorldFromVec(v cp.Vector) WorldPoint {
	return WorldPoint{v.X, v.Y}
}
