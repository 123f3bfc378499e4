package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"gonum.org/v1/gonum/floats/scalar"
)

var (
	ErrInvalidScale    = errors.New("scale must be a finite value greater than zero")
	ErrInvalidRotation = errors.New("rotation must be finite")
	ErrInvalidShift    = errors.New("shift must be finite")
)

// Transform maps a grid's local space into world space. The forward mapping
// always applies scale, then rotation, then translation; Inverse undoes the
// steps in reverse order.
//
// Scale is expressed in cells per world unit: a local offset of one cell
// covers 1/scale world units. Rotation is in degrees and turns the grid
// clockwise, so at 90 degrees local (x, y) lands on world (y, -x).
//
// The zero value is the identity transform.
type Transform struct {
	scale    float64
	rotation float64
	xShift   float64
	yShift   float64

	// unit vector for rotation, refreshed by SetRotation
	rot cp.Vector
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{scale: 1, rot: cp.Vector{X: 1, Y: 0}}
}

func (t Transform) Rotation() float64 { return t.rotation }
func (t Transform) XShift() float64   { return t.xShift }
func (t Transform) YShift() float64   { return t.yShift }

func (t Transform) Scale() float64 {
	scale, _ := t.params()
	return scale
}

// SetScale rejects non-positive and non-finite values, leaving the
// transform untouched.
func (t *Transform) SetScale(s float64) error {
	if !finite(s) || s <= 0 {
		return fmt.Errorf("geom: set scale %v: %w", s, ErrInvalidScale)
	}
	t.scale = s
	return nil
}

// SetRotation stores the angle normalized to [0, 360).
func (t *Transform) SetRotation(deg float64) error {
	if !finite(deg) {
		return fmt.Errorf("geom: set rotation %v: %w", deg, ErrInvalidRotation)
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	t.rotation = deg
	t.rot = rotationVector(deg)
	return nil
}

func (t *Transform) SetXShift(v float64) error {
	if !finite(v) {
		return fmt.Errorf("geom: set x shift %v: %w", v, ErrInvalidShift)
	}
	t.xShift = v
	return nil
}

func (t *Transform) SetYShift(v float64) error {
	if !finite(v) {
		return fmt.Errorf("geom: set y shift %v: %w", v, ErrInvalidShift)
	}
	t.yShift = v
	return nil
}

// Forward maps a local point into world space.
func (t Transform) Forward(p Point) WorldPoint {
	scale, rot := t.params()
	v := p.Vec().Mult(1 / scale)
	v = v.Unrotate(rot)
	return WorldFromVec(v.Add(t.shift()))
}

// Inverse maps a world point back into local space.
func (t Transform) Inverse(w WorldPoint) Point {
	scale, rot := t.params()
	v := w.Vec().Sub(t.shift())
	v = v.Rotate(rot)
	return PointFromVec(v.Mult(scale))
}

// Matrix returns the forward mapping as an affine matrix.
func (t Transform) Matrix() cp.Transform {
	scale, rot := t.params()
	s := 1 / scale
	scaling := cp.NewTransformScale(s, s)
	rotate := cp.NewTransformTranspose(
		rot.X, rot.Y, 0,
		-rot.Y, rot.X, 0,
	)
	translate := cp.NewTransformTranslate(t.shift())
	return translate.Mult(rotate.Mult(scaling))
}

// InverseMatrix returns the world to local mapping as an affine matrix.
func (t Transform) InverseMatrix() cp.Transform {
	return t.Matrix().Inverse()
}

// params returns the scale and rotation vector in effect. A zero scale or
// rotation vector only occurs in the zero value and reads as identity.
func (t Transform) params() (float64, cp.Vector) {
	scale, rot := t.scale, t.rot
	if scale == 0 {
		scale = 1
	}
	if rot == (cp.Vector{}) {
		rot = rotationVector(t.rotation)
	}
	return scale, rot
}

func (t Transform) shift() cp.Vector {
	return cp.Vector{X: t.xShift, Y: t.yShift}
}

func (t Transform) String() string {
	return fmt.Sprintf("scale=%g rotation=%g shift=(%g,%g)", t.Scale(), t.rotation, t.xShift, t.yShift)
}

// rotationVector returns (cos, sin) of deg. Quarter turns are exact so
// axis-aligned grids do not pick up rounding noise.
func rotationVector(deg float64) cp.Vector {
	q := deg / 90
	if r := math.Round(q); scalar.EqualWithinAbs(q, r, 1e-12) {
		k := int(math.Mod(r, 4))
		if k < 0 {
			k += 4
		}
		switch k {
		case 0:
			return cp.Vector{X: 1, Y: 0}
		case 1:
			return cp.Vector{X: 0, Y: 1}
		case 2:
			return cp.Vector{X: -1, Y: 0}
		default:
			return cp.Vector{X: 0, Y: -1}
		}
	}
	return cp.ForAngle(deg * math.Pi / 180)
}
