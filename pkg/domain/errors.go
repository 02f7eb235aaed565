package domain

import "errors"

// ErrDuplicateState is returned when a state id is added twice to a graph.
var ErrDuplicateState = errors.New("duplicate state id")

// ErrUnknownState is returned when a transition endpoint does not resolve.
var ErrUnknownState = errors.New("transition references unknown state")

// ErrDuplicateTransition is returned when two transitions leaving the same
// state carry the same condition key.
var ErrDuplicateTransition = errors.New("duplicate condition key on state fan-out")
