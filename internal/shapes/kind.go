package shapes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownShape is returned for a shape name or tag that is not in the catalog.
var ErrUnknownShape = errors.New("unknown shape")

// Kind tags one of the built-in polyhedra.
type Kind int

const (
	Cube Kind = iota
	Tetrahedron
	Pyramid
	Octahedron
)

// Kinds returns every shape in menu order.
func Kinds() []Kind {
	return []Kind{Cube, Tetrahedron, Pyramid, Octahedron}
}

func (k Kind) String() string {
	if t, ok := catalog[k]; ok {
		return t.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Parse returns the Kind whose name matches s, ignoring case.
func Parse(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(catalog[k].name, strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownShape)
}

// Names returns the display names of all shapes in menu order.
func Names() []string {
	kinds := Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}
