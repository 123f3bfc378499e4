// Package layer associates a name with the grid geometry that positions
// the layer's cells in world space.
package layer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/tilegrid/grid"
)

var (
	ErrInvalidLayer   = errors.New("layer needs a name and a grid")
	ErrDuplicateLayer = errors.New("duplicate layer name")
	ErrLayerNotFound  = errors.New("layer not found")
)

// Layer owns the grid geometry for a single layer. The grid keeps no
// reference back to its layer.
type Layer struct {
	name string
	grid grid.Grid
}

// New constructs a Layer from a name and its grid.
func New(name string, g grid.Grid) (*Layer, error) {
	name = strings.TrimSpace(name)
	if name == "" || g == nil {
		return nil, fmt.Errorf("layer: new %q: %w", name, ErrInvalidLayer)
	}
	return &Layer{name: name, grid: g}, nil
}

func (l *Layer) Name() string {
	return l.name
}

func (l *Layer) Grid() grid.Grid {
	return l.grid
}

func (l *Layer) String() string {
	return fmt.Sprintf("%s[%s %s]", l.name, l.grid.Kind(), l.grid.Transform())
}
