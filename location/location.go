// Package location pins a point to a layer and answers coordinate queries
// about it in the layer's own grid, in world space, and in the grid of any
// other layer.
//
// Nothing is cached. Every query goes through the current grid transforms,
// so a changed scale, rotation or shift shows up on the next call.
package location

import (
	"errors"
	"fmt"

	"github.com/milk9111/tilegrid/geom"
	"github.com/milk9111/tilegrid/layer"
)

var ErrUnboundLayer = errors.New("location has no layer")

// Location is a fractional position on one layer. The zero value is
// unbound and every coordinate call on it fails with ErrUnboundLayer.
type Location struct {
	layer *layer.Layer
	exact geom.Point
}

// New returns a location at the origin of l.
func New(l *layer.Layer) *Location {
	return &Location{layer: l}
}

// SetLayer moves the location to l, keeping its layer coordinates.
func (loc *Location) SetLayer(l *layer.Layer) {
	loc.layer = l
}

func (loc *Location) Layer() *layer.Layer {
	return loc.layer
}

// SetLayerCoordinates places the location at the centre of cell c.
func (loc *Location) SetLayerCoordinates(c geom.Cell) error {
	if err := loc.bound("set layer coordinates"); err != nil {
		return err
	}
	loc.exact = loc.layer.Grid().CellCenter(c)
	return nil
}

func (loc *Location) SetExactLayerCoordinates(p geom.Point) error {
	if err := loc.bound("set exact layer coordinates"); err != nil {
		return err
	}
	loc.exact = p
	return nil
}

func (loc *Location) SetElevationCoordinates(w geom.WorldPoint) error {
	if err := loc.bound("set elevation coordinates"); err != nil {
		return err
	}
	loc.exact = loc.layer.Grid().WorldToLocal(w)
	return nil
}

// LayerCoordinates returns the cell of the location's own layer that
// contains it.
func (loc *Location) LayerCoordinates() (geom.Cell, error) {
	if err := loc.bound("layer coordinates"); err != nil {
		return geom.Cell{}, err
	}
	return loc.layer.Grid().LocalToCell(loc.exact), nil
}

// LayerCoordinatesOn returns the cell of target that contains the location.
func (loc *Location) LayerCoordinatesOn(target *layer.Layer) (geom.Cell, error) {
	if target == loc.layer {
		return loc.LayerCoordinates()
	}
	w, err := loc.elevationFor(target, "layer coordinates")
	if err != nil {
		return geom.Cell{}, err
	}
	return target.Grid().WorldToCell(w), nil
}

func (loc *Location) ExactLayerCoordinates() (geom.Point, error) {
	if err := loc.bound("exact layer coordinates"); err != nil {
		return geom.Point{}, err
	}
	return loc.exact, nil
}

// ExactLayerCoordinatesOn returns the location in target's local space.
func (loc *Location) ExactLayerCoordinatesOn(target *layer.Layer) (geom.Point, error) {
	if target == loc.layer {
		return loc.ExactLayerCoordinates()
	}
	w, err := loc.elevationFor(target, "exact layer coordinates")
	if err != nil {
		return geom.Point{}, err
	}
	return target.Grid().WorldToLocal(w), nil
}

func (loc *Location) ElevationCoordinates() (geom.WorldPoint, error) {
	if err := loc.bound("elevation coordinates"); err != nil {
		return geom.WorldPoint{}, err
	}
	return loc.layer.Grid().LocalToWorld(loc.exact), nil
}

// Distance is the world-space distance between two locations.
func (loc *Location) Distance(other *Location) (float64, error) {
	if other == nil {
		return 0, fmt.Errorf("location: distance: nil other: %w", ErrUnboundLayer)
	}
	a, err := loc.ElevationCoordinates()
	if err != nil {
		return 0, err
	}
	b, err := other.ElevationCoordinates()
	if err != nil {
		return 0, err
	}
	return a.Distance(b), nil
}

// CellDistance is the world-space distance between the centres of the
// cells holding the two locations, each on its own layer.
func (loc *Location) CellDistance(other *Location) (float64, error) {
	if other == nil {
		return 0, fmt.Errorf("location: cell distance: nil other: %w", ErrUnboundLayer)
	}
	a, err := loc.cellCenter()
	if err != nil {
		return 0, err
	}
	b, err := other.cellCenter()
	if err != nil {
		return 0, err
	}
	return a.Distance(b), nil
}

func (loc *Location) String() string {
	if loc.layer == nil {
		return fmt.Sprintf("<unbound>%v", loc.exact)
	}
	return fmt.Sprintf("%s%v", loc.layer.Name(), loc.exact)
}

func (loc *Location) cellCenter() (geom.WorldPoint, error) {
	c, err := loc.LayerCoordinates()
	if err != nil {
		return geom.WorldPoint{}, err
	}
	g := loc.layer.Grid()
	return g.LocalToWorld(g.CellCenter(c)), nil
}

// elevationFor checks both ends of a cross-layer query and returns the
// location's world coordinates.
func (loc *Location) elevationFor(target *layer.Layer, op string) (geom.WorldPoint, error) {
	if target == nil {
		return geom.WorldPoint{}, fmt.Errorf("location: %s: nil target: %w", op, ErrUnboundLayer)
	}
	return loc.ElevationCoordinates()
}

func (loc *Location) bound(op string) error {
	if loc.layer == nil {
		return fmt.Errorf("location: %s: %w", op, ErrUnboundLayer)
	}
	return nil
}
