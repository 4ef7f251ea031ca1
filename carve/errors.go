package carve

import "errors"

var (
	// ErrNilGrid is returned when Apply receives a nil grid.
	ErrNilGrid = errors.New("carve: grid is nil")
	// ErrNilRand is returned when Apply receives a nil random source.
	ErrNilRand = errors.New("carve: rng is nil")
	// ErrUnknownKind is returned for a Kind or name outside the supported set.
	ErrUnknownKind = errors.New("carve: unknown algorithm")
)
