// SPDX-License-Identifier: MIT
// Package kinematic plans motion on an integer lattice. A State carries
// position, velocity and the acceleration that produced it; each step picks
// a new bounded acceleration, so paths respect inertia.
//
// States are identified by Key, the canonical JSON of their three vectors.
// A Planner interns states by key, so two routes to the same state share
// one pointer and the search engine sees one node.
//
// Errors:
//
//	ErrDimension   - vectors of different lengths.
//	ErrBadLimits   - invalid Limits passed to NewPlanner.
//	ErrOutOfBounds - a position outside the planner's bounds.
//	ErrSpeedLimit  - a velocity component above MaxSpeed.
//	ErrNotNeighbor - Cost asked for a pair no single step connects.
package kinematic

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for kinematic operations.
var (
	ErrDimension   = errors.New("kinematic: dimension mismatch")
	ErrBadLimits   = errors.New("kinematic: invalid limits")
	ErrOutOfBounds = errors.New("kinematic: position out of bounds")
	ErrSpeedLimit  = errors.New("kinematic: velocity exceeds speed limit")
	ErrNotNeighbor = errors.New("kinematic: states are not one step apart")
)

// State is a point of the lattice in phase space. Treat it as immutable:
// Key is computed once at construction.
type State struct {
	Position     []int `json:"s"`
	Velocity     []int `json:"v"`
	Acceleration []int `json:"a"`

	key string
}

// NewState copies the vectors into a new State. A nil velocity or
// acceleration means zero in every axis.
func NewState(position, velocity, acceleration []int) (*State, error) {
	d := len(position)
	if d == 0 {
		return nil, fmt.Errorf("%w: empty position", ErrDimension)
	}
	if velocity == nil {
		velocity = make([]int, d)
	}
	if acceleration == nil {
		acceleration = make([]int, d)
	}
	if len(velocity) != d || len(acceleration) != d {
		return nil, fmt.Errorf("%w: s=%d v=%d a=%d", ErrDimension, d, len(velocity), len(acceleration))
	}
	s := &State{
		Position:     slices.Clone(position),
		Velocity:     slices.Clone(velocity),
		Acceleration: slices.Clone(acceleration),
	}
	// []int always marshals.
	b, _ := json.Marshal(s)
	s.key = string(b)
	return s, nil
}

// Key returns the canonical identity of s, e.g. {"s":[1,2],"v":[0,1],"a":[0,1]}.
func (s *State) Key() string { return s.key }

// Dim returns the number of axes.
func (s *State) Dim() int { return len(s.Position) }

// String returns Key.
func (s *State) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.key
}

// sameMotion reports whether s and o share position and velocity.
func (s *State) sameMotion(o *State) bool {
	return slices.Equal(s.Position, o.Position) && slices.Equal(s.Velocity, o.Velocity)
}

// Accelerations returns the acceleration applied to reach each state of path,
// derived from consecutive velocities. The first entry is the start's own
// Acceleration. Read these rather than State.Acceleration along a planned
// path: the last state is the interned goal, which keeps the goal's
// acceleration, not the one applied on the final step.
func Accelerations(path []*State) [][]int {
	out := make([][]int, len(path))
	for i, s := range path {
		if i == 0 {
			out[i] = slices.Clone(s.Acceleration)
			continue
		}
		prev := path[i-1]
		a := make([]int, len(s.Velocity))
		for j := range a {
			a[j] = s.Velocity[j] - prev.Velocity[j]
		}
		out[i] = a
	}
	return out
}

// Positions maps a path of states to their positions.
func Positions(path []*State) [][]int {
	out := make([][]int, len(path))
	for i, s := range path {
		out[i] = s.Position
	}
	return out
}
