package location

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/tilegrid/geom"
	"github.com/milk9111/tilegrid/grid"
	"github.com/milk9111/tilegrid/layer"
)

type squarePair struct {
	grid1, grid2   *grid.SquareGrid
	layer1, layer2 *layer.Layer
	loc1, loc2     *Location
}

func newSquarePair(t *testing.T) *squarePair {
	t.Helper()
	p := &squarePair{grid1: grid.NewSquareGrid(), grid2: grid.NewSquareGrid()}
	var err error
	p.layer1, err = layer.New("layer1", p.grid1)
	require.NoError(t, err)
	p.layer2, err = layer.New("layer2", p.grid2)
	require.NoError(t, err)
	p.loc1 = New(p.layer1)
	p.loc2 = New(p.layer2)
	return p
}

func near(t *testing.T, want, got geom.WorldPoint) {
	t.Helper()
	assert.True(t, got.Near(want, geom.Tolerance), "got %v want %v", got, want)
}

func TestBasicMapping(t *testing.T) {
	p := newSquarePair(t)
	require.NoError(t, p.loc1.SetLayerCoordinates(geom.Cell{X: 5, Y: 5}))

	cell, err := p.loc1.LayerCoordinates()
	require.NoError(t, err)
	assert.Equal(t, geom.Cell{X: 5, Y: 5}, cell)

	exact, err := p.loc1.ExactLayerCoordinates()
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 5, Y: 5}, exact)

	world, err := p.loc1.ElevationCoordinates()
	require.NoError(t, err)
	assert.Equal(t, geom.WorldPoint{X: 5, Y: 5}, world)

	cell, err = p.loc1.LayerCoordinatesOn(p.layer2)
	require.NoError(t, err)
	assert.Equal(t, geom.Cell{X: 5, Y: 5}, cell)

	exact, err = p.loc1.ExactLayerCoordinatesOn(p.layer2)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 5, Y: 5}, exact)
}

func TestSquareGridScale(t *testing.T) {
	p := newSquarePair(t)
	require.NoError(t, p.grid2.SetScale(0.2))
	require.NoError(t, p.loc1.SetLayerCoordinates(geom.Cell{X: 5, Y: 5}))

	cell, err := p.loc1.LayerCoordinatesOn(p.layer2)
	require.NoError(t, err)
	assert.Equal(t, geom.Cell{X: 1, Y: 1}, cell)

	exact, err := p.loc1.ExactLayerCoordinatesOn(p.layer2)
	require.NoError(t, err)
	assert.True(t, exact.Near(geom.Point{X: 1, Y: 1}, geom.Tolerance), "got %v", exact)
}

func TestSquareGridTransforms(t *testing.T) {
	cases := []struct {
		name                    string
		scale, rotation, dx, dy float64
		cell                    geom.Cell
		want                    geom.WorldPoint
	}{
		{"rotation", 1, 90, 0, 0, geom.Cell{X: 3, Y: 3}, geom.WorldPoint{X: 3, Y: -3}},
		{"shifts", 1, 0, -3, -3, geom.Cell{X: 3, Y: 3}, geom.WorldPoint{X: 0, Y: 0}},
		// scale, then rotate, then translate
		{"combination", 5, 90, 2, 2, geom.Cell{X: 1, Y: 1}, geom.WorldPoint{X: 2.2, Y: 1.8}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newSquarePair(t)
			require.NoError(t, p.grid1.SetXShift(c.dx))
			require.NoError(t, p.grid1.SetYShift(c.dy))
			require.NoError(t, p.grid1.SetRotation(c.rotation))
			require.NoError(t, p.grid1.SetScale(c.scale))
			require.NoError(t, p.loc1.SetLayerCoordinates(c.cell))

			world, err := p.loc1.ElevationCoordinates()
			require.NoError(t, err)
			near(t, c.want, world)
		})
	}
}

func TestTransformChangesAreVisibleImmediately(t *testing.T) {
	p := newSquarePair(t)
	require.NoError(t, p.loc1.SetLayerCoordinates(geom.Cell{X: 4, Y: 2}))

	cell, err := p.loc1.LayerCoordinatesOn(p.layer2)
	require.NoError(t, err)
	assert.Equal(t, geom.Cell{X: 4, Y: 2}, cell)

	require.NoError(t, p.grid2.SetXShift(1))
	cell, err = p.loc1.LayerCoordinatesOn(p.layer2)
	require.NoError(t, err)
	assert.Equal(t, geom.Cell{X: 3, Y: 2}, cell)

	require.NoError(t, p.grid1.SetScale(0.5))
	world, err := p.loc1.ElevationCoordinates()
	require.NoError(t, err)
	near(t, geom.WorldPoint{X: 8, Y: 4}, world)
}

func TestCrossLayerConsistency(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	randomGrid := func(g grid.Grid) grid.Grid {
		require.NoError(t, g.SetScale(0.1+rnd.Float64()*5))
		require.NoError(t, g.SetRotation(rnd.Float64()*360))
		require.NoError(t, g.SetXShift(rnd.Float64()*40-20))
		require.NoError(t, g.SetYShift(rnd.Float64()*40-20))
		return g
	}

	for i := 0; i < 200; i++ {
		a, err := layer.New("a", randomGrid(grid.NewSquareGrid()))
		require.NoError(t, err)
		b, err := layer.New("b", randomGrid(grid.NewHexGrid()))
		require.NoError(t, err)

		loc := New(a)
		require.NoError(t, loc.SetExactLayerCoordinates(geom.Point{X: rnd.Float64()*60 - 30, Y: rnd.Float64()*60 - 30}))
		world, err := loc.ElevationCoordinates()
		require.NoError(t, err)

		onB, err := loc.ExactLayerCoordinatesOn(b)
		require.NoError(t, err)
		mirror := New(b)
		require.NoError(t, mirror.SetExactLayerCoordinates(onB))
		back, err := mirror.ElevationCoordinates()
		require.NoError(t, err)
		near(t, world, back)

		onA, err := mirror.ExactLayerCoordinatesOn(a)
		require.NoError(t, err)
		exact, err := loc.ExactLayerCoordinates()
		require.NoError(t, err)
		assert.True(t, onA.Near(exact, geom.Tolerance), "got %v want %v", onA, exact)
	}
}

func newHexLocation(t *testing.T) *Location {
	t.Helper()
	hexLayer, err := layer.New("hexlayer", grid.NewHexGrid())
	require.NoError(t, err)
	return New(hexLayer)
}

func TestHexGridRows(t *testing.T) {
	cases := []struct {
		name string
		in   geom.WorldPoint
		want geom.Cell
	}{
		{"row0_a", geom.WorldPoint{X: -2, Y: 0}, geom.Cell{X: -2, Y: 0}},
		{"row0_b", geom.WorldPoint{X: -1, Y: 0}, geom.Cell{X: -1, Y: 0}},
		{"row0_c", geom.WorldPoint{X: 0, Y: 0}, geom.Cell{X: 0, Y: 0}},
		{"row0_d", geom.WorldPoint{X: 1, Y: 0}, geom.Cell{X: 1, Y: 0}},
		{"row0_e", geom.WorldPoint{X: 2, Y: 0}, geom.Cell{X: 2, Y: 0}},
		{"row1_a", geom.WorldPoint{X: -1.1, Y: 1}, geom.Cell{X: -2, Y: 1}},
		{"row1_b", geom.WorldPoint{X: -0.5, Y: 1}, geom.Cell{X: -1, Y: 1}},
		{"row1_c", geom.WorldPoint{X: -0.1, Y: 1}, geom.Cell{X: -1, Y: 1}},
		{"row1_d", geom.WorldPoint{X: 0.1, Y: 1}, geom.Cell{X: 0, Y: 1}},
		{"rowm1_a", geom.WorldPoint{X: -1.1, Y: -1}, geom.Cell{X: -2, Y: -1}},
		{"rowm1_b", geom.WorldPoint{X: -0.5, Y: -1}, geom.Cell{X: -1, Y: -1}},
		{"rowm1_c", geom.WorldPoint{X: -0.1, Y: -1}, geom.Cell{X: -1, Y: -1}},
		{"rowm1_d", geom.WorldPoint{X: 0.1, Y: -1}, geom.Cell{X: 0, Y: -1}},
		{"edge_a", geom.WorldPoint{X: 0.5, Y: 0.5}, geom.Cell{X: 0, Y: 1}},
		{"edge_b", geom.WorldPoint{X: 0.1, Y: 0.4}, geom.Cell{X: 0, Y: 0}},
		{"edge_c", geom.WorldPoint{X: 0.1, Y: -0.4}, geom.Cell{X: 0, Y: 0}},
		{"edge_d", geom.WorldPoint{X: -0.5, Y: -0.5}, geom.Cell{X: -1, Y: -1}},
	}

	loc := newHexLocation(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.NoError(t, loc.SetElevationCoordinates(c.in))
			got, err := loc.LayerCoordinates()
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestHexToSquareLayer(t *testing.T) {
	loc := newHexLocation(t)
	square, err := layer.New("squarelayer", grid.NewSquareGrid())
	require.NoError(t, err)

	// odd row: the hex centre sits half a cell right, on the square border
	require.NoError(t, loc.SetLayerCoordinates(geom.Cell{X: 2, Y: 1}))
	exact, err := loc.ExactLayerCoordinatesOn(square)
	require.NoError(t, err)
	assert.True(t, exact.Near(geom.Point{X: 2.5, Y: 1}, geom.Tolerance), "got %v", exact)

	cell, err := loc.LayerCoordinatesOn(square)
	require.NoError(t, err)
	assert.Equal(t, geom.Cell{X: 2, Y: 1}, cell)

	require.NoError(t, loc.SetLayerCoordinates(geom.Cell{X: 2, Y: 2}))
	cell, err = loc.LayerCoordinatesOn(square)
	require.NoError(t, err)
	assert.Equal(t, geom.Cell{X: 2, Y: 2}, cell)
}

func TestHexSetGetCell(t *testing.T) {
	cases := []geom.Cell{
		{0, 0}, {0, 1}, {3, 1}, {-2, -1}, {-1, 1}, {4, 2}, {-3, -2}, {5, -3}, {-4, 3},
	}
	loc := newHexLocation(t)
	hexes := loc.Layer().Grid()
	for _, c := range cases {
		t.Run(c.String(), func(t *testing.T) {
			require.NoError(t, loc.SetLayerCoordinates(c))
			got, err := loc.LayerCoordinates()
			require.NoError(t, err)
			assert.Equal(t, c, got)

			exact, err := loc.ExactLayerCoordinates()
			require.NoError(t, err)
			assert.Equal(t, hexes.CellCenter(c), exact)
		})
	}

	// same answer through a rotated, scaled and shifted grid
	require.NoError(t, hexes.SetScale(3))
	require.NoError(t, hexes.SetRotation(30))
	require.NoError(t, hexes.SetXShift(-7))
	for _, c := range cases {
		require.NoError(t, loc.SetLayerCoordinates(c))
		w, err := loc.ElevationCoordinates()
		require.NoError(t, err)
		assert.Equal(t, c, hexes.WorldToCell(w), "cell %v via world %v", c, w)
	}
}

func TestUnboundLayer(t *testing.T) {
	var loc Location

	assert.ErrorIs(t, loc.SetLayerCoordinates(geom.Cell{X: 1}), ErrUnboundLayer)
	assert.ErrorIs(t, loc.SetExactLayerCoordinates(geom.Point{X: 1}), ErrUnboundLayer)
	assert.ErrorIs(t, loc.SetElevationCoordinates(geom.WorldPoint{X: 1}), ErrUnboundLayer)

	_, err := loc.LayerCoordinates()
	assert.ErrorIs(t, err, ErrUnboundLayer)
	_, err = loc.ExactLayerCoordinates()
	assert.ErrorIs(t, err, ErrUnboundLayer)
	_, err = loc.ElevationCoordinates()
	assert.ErrorIs(t, err, ErrUnboundLayer)

	other, lerr := layer.New("other", grid.NewSquareGrid())
	require.NoError(t, lerr)
	_, err = loc.LayerCoordinatesOn(other)
	assert.ErrorIs(t, err, ErrUnboundLayer)
	_, err = loc.ExactLayerCoordinatesOn(other)
	assert.ErrorIs(t, err, ErrUnboundLayer)

	bound := New(other)
	_, err = bound.LayerCoordinatesOn(nil)
	assert.ErrorIs(t, err, ErrUnboundLayer)
	_, err = bound.Distance(&loc)
	assert.ErrorIs(t, err, ErrUnboundLayer)
	_, err = bound.Distance(nil)
	assert.ErrorIs(t, err, ErrUnboundLayer)
	_, err = bound.CellDistance(nil)
	assert.ErrorIs(t, err, ErrUnboundLayer)
}

func TestDistances(t *testing.T) {
	p := newSquarePair(t)
	require.NoError(t, p.grid2.SetScale(0.5))
	require.NoError(t, p.loc1.SetExactLayerCoordinates(geom.Point{X: 0, Y: 0}))
	require.NoError(t, p.loc2.SetExactLayerCoordinates(geom.Point{X: 1.5, Y: 2}))

	d, err := p.loc1.Distance(p.loc2)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, geom.Tolerance)

	// cells (0,0) on layer1 and (1,2) on layer2, whose centre is world (2,4)
	d, err = p.loc1.CellDistance(p.loc2)
	require.NoError(t, err)
	assert.InDelta(t, 4.4721, d, geom.Tolerance)
}
