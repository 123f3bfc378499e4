package grid

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("unknown grid type")

// Kind names a grid geometry.
type Kind string

const (
	KindSquare    Kind = "square"
	KindHexagonal Kind = "hexagonal"
)

func (k Kind) String() string {
	return string(k)
}

// ParseKind accepts the kind names plus the short form "hex".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square", "":
		return KindSquare, nil
	case "hexagonal", "hex":
		return KindHexagonal, nil
	}
	return "", fmt.Errorf("grid: parse %q: %w", s, ErrUnknownKind)
}

// New returns an identity-transformed grid of the given kind.
func New(k Kind) (Grid, error) {
	switch k {
	case KindSquare:
		return NewSquareGrid(), nil
	case KindHexagonal:
		return NewHexGrid(), nil
	}
	return nil, fmt.Errorf("grid: new %q: %w", k, ErrUnknownKind)
}
