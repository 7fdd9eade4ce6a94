package rtree

import (
	"errors"
	"fmt"
)

// ErrInvalidPlacement is returned by PlaceNear when its step sizes or box
// size would prevent the search from making progress.
var ErrInvalidPlacement = errors.New("invalid placement request")

// InvariantError describes a broken structural invariant of the tree. It is
// only ever raised as a panic value, since the tree can't be trusted once
// one has been detected.
type InvariantError struct {
	Op     string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("rtree: %s: %s", e.Op, e.Reason)
}
