package carve

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Algorithm carves passages into g in place, drawing randomness only
// from rng. Implementations touch links and nothing else: dimensions and
// neighbor slots stay as built.
type Algorithm interface {
	Apply(g *grid.Grid, rng *rand.Rand) error
}

// Kind names one of the supported algorithms.
type Kind int

const (
	// BinaryTree links every cell north or east.
	BinaryTree Kind = iota
	// AldousBroder performs an unbiased random walk.
	AldousBroder
	// RecursiveBacktracker performs a randomized depth-first search.
	RecursiveBacktracker
	// RecursiveDivision walls off a fully open grid recursively.
	RecursiveDivision
)

// Kinds lists every supported Kind.
var Kinds = []Kind{BinaryTree, AldousBroder, RecursiveBacktracker, RecursiveDivision}

// Perfect reports whether k always produces a spanning tree.
func (k Kind) Perfect() bool {
	return k == BinaryTree || k == AldousBroder || k == RecursiveBacktracker
}

func (k Kind) String() string {
	switch k {
	case BinaryTree:
		return "binary-tree"
	case AldousBroder:
		return "aldous-broder"
	case RecursiveBacktracker:
		return "recursive-backtracker"
	case RecursiveDivision:
		return "recursive-division"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a name to a Kind. Matching ignores case and accepts
// '_' or ' ' in place of '-'.
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for _, k := range Kinds {
		if k.String() == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Algorithm returns the default-configured implementation for k.
func (k Kind) Algorithm() (Algorithm, error) {
	switch k {
	case BinaryTree:
		return binaryTree{}, nil
	case AldousBroder:
		return aldousBroder{}, nil
	case RecursiveBacktracker:
		return recursiveBacktracker{}, nil
	case RecursiveDivision:
		return NewRecursiveDivision(), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
}

// check validates the common Apply inputs.
func check(g *grid.Grid, rng *rand.Rand) error {
	if g == nil {
		return ErrNilGrid
	}
	if rng == nil {
		return ErrNilRand
	}
	return nil
}
