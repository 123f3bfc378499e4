package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/tilegrid/grid"
	"github.com/milk9111/tilegrid/layer"
)

var ErrKindChanged = errors.New("grid type cannot change on a live layer")

// Build creates the layers described by c, bottom first.
func Build(c *Config) (*layer.Stack, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	stack := layer.NewStack()
	for _, spec := range c.Layers {
		kind, _ := spec.Grid.Kind()
		g, err := grid.New(kind)
		if err != nil {
			return nil, fmt.Errorf("config: layer %q: %w", spec.Name, err)
		}
		if err := applyGrid(g, spec.Grid); err != nil {
			return nil, fmt.Errorf("config: layer %q: %w", spec.Name, err)
		}
		l, err := layer.New(spec.Name, g)
		if err != nil {
			return nil, err
		}
		if err := stack.Add(l); err != nil {
			return nil, err
		}
	}
	return stack, nil
}

// Apply pushes the grid parameters in c onto the matching layers of an
// existing stack. Every layer in c must already exist with the same grid
// type; nothing is changed unless all of them check out. Layers missing
// from c keep their current transform.
func Apply(c *Config, stack *layer.Stack) error {
	if err := c.Validate(); err != nil {
		return err
	}
	targets := make([]*layer.Layer, 0, len(c.Layers))
	for _, spec := range c.Layers {
		l, err := stack.Get(strings.TrimSpace(spec.Name))
		if err != nil {
			return fmt.Errorf("config: apply: %w", err)
		}
		kind, _ := spec.Grid.Kind()
		if l.Grid().Kind() != kind {
			return fmt.Errorf("config: apply %q: %s -> %s: %w", spec.Name, l.Grid().Kind(), kind, ErrKindChanged)
		}
		targets = append(targets, l)
	}
	for i, l := range targets {
		if err := applyGrid(l.Grid(), c.Layers[i].Grid); err != nil {
			return fmt.Errorf("config: apply %q: %w", l.Name(), err)
		}
	}
	return nil
}

// FromStack snapshots the current layers of a stack.
func FromStack(stack *layer.Stack) *Config {
	c := &Config{}
	for _, l := range stack.Layers() {
		t := l.Grid().Transform()
		scale := t.Scale()
		spec := GridSpec{
			Type:     l.Grid().Kind().String(),
			Scale:    &scale,
			Rotation: t.Rotation(),
			XShift:   t.XShift(),
			YShift:   t.YShift(),
		}
		if sq, ok := l.Grid().(*grid.SquareGrid); ok {
			spec.Diagonals = sq.Diagonals()
		}
		c.Layers = append(c.Layers, LayerSpec{Name: l.Name(), Grid: spec})
	}
	return c
}

func applyGrid(g grid.Grid, spec GridSpec) error {
	if err := g.SetScale(spec.ScaleOrDefault()); err != nil {
		return err
	}
	if err := g.SetRotation(spec.Rotation); err != nil {
		return err
	}
	if err := g.SetXShift(spec.XShift); err != nil {
		return err
	}
	if err := g.SetYShift(spec.YShift); err != nil {
		return err
	}
	if sq, ok := g.(*grid.SquareGrid); ok {
		sq.SetDiagonals(spec.Diagonals)
	}
	return nil
}
