package layer

import (
	"fmt"
)

// Stack is an ordered set of uniquely named layers, bottom first.
type Stack struct {
	layers []*Layer
	byName map[string]*Layer
}

func NewStack() *Stack {
	return &Stack{byName: map[string]*Layer{}}
}

// Add appends l on top of the stack.
func (s *Stack) Add(l *Layer) error {
	if l == nil {
		return fmt.Errorf("layer: add: %w", ErrInvalidLayer)
	}
	if _, ok := s.byName[l.Name()]; ok {
		return fmt.Errorf("layer: add %q: %w", l.Name(), ErrDuplicateLayer)
	}
	s.layers = append(s.layers, l)
	s.byName[l.Name()] = l
	return nil
}

func (s *Stack) Get(name string) (*Layer, error) {
	l, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("layer: get %q: %w", name, ErrLayerNotFound)
	}
	return l, nil
}

// Layers returns the layers bottom first. The slice is a copy.
func (s *Stack) Layers() []*Layer {
	out := make([]*Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

func (s *Stack) Len() int {
	return len(s.layers)
}
