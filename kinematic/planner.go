// SPDX-License-Identifier: MIT
package kinematic

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/pathfind/astar"
)

// Limits bound the motion of a Planner. Min and Max are inclusive position
// bounds per axis and fix the dimension.
type Limits struct {
	MaxAccel int // largest |acceleration| per axis per step, ≥ 1
	MaxSpeed int // largest |velocity| per axis, ≥ 1
	Min, Max []int
}

// Planner implements astar.Policy[*State] over the lattice bounded by its
// Limits. Every step costs 1, so paths minimise the number of steps.
// A Planner is safe for concurrent searches.
//
// Interned states are kept until Reset, so a long-lived Planner grows with
// every state any search has generated.
type Planner struct {
	lim Limits

	mu     sync.Mutex
	states map[string]*State // interned by Key
}

// NewPlanner validates lim and returns an empty Planner.
func NewPlanner(lim Limits) (*Planner, error) {
	if lim.MaxAccel < 1 || lim.MaxSpeed < 1 {
		return nil, fmt.Errorf("%w: MaxAccel=%d MaxSpeed=%d", ErrBadLimits, lim.MaxAccel, lim.MaxSpeed)
	}
	if len(lim.Min) == 0 || len(lim.Min) != len(lim.Max) {
		return nil, fmt.Errorf("%w: bounds of %d and %d axes", ErrBadLimits, len(lim.Min), len(lim.Max))
	}
	for i := range lim.Min {
		if lim.Min[i] > lim.Max[i] {
			return nil, fmt.Errorf("%w: axis %d min %d > max %d", ErrBadLimits, i, lim.Min[i], lim.Max[i])
		}
	}
	lim.Min, lim.Max = append([]int(nil), lim.Min...), append([]int(nil), lim.Max...)
	return &Planner{lim: lim, states: make(map[string]*State)}, nil
}

// Dim returns the number of axes.
func (p *Planner) Dim() int { return len(p.lim.Min) }

// Interned returns the number of distinct states seen so far.
func (p *Planner) Interned() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.states)
}

// Reset forgets every interned state. States already handed out stay valid
// but are no longer canonical, so do not call Reset while a search over p is
// running or mix pointers from before and after it in one search.
func (p *Planner) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.states)
}

// Intern returns the planner's canonical pointer for s's key, registering s
// if the key is new.
func (p *Planner) Intern(s *State) *State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if have, ok := p.states[s.key]; ok {
		return have
	}
	p.states[s.key] = s
	return s
}

// State builds, validates and interns a state with zero acceleration.
func (p *Planner) State(position, velocity []int) (*State, error) {
	s, err := NewState(position, velocity, nil)
	if err != nil {
		return nil, err
	}
	if err := p.validate(s); err != nil {
		return nil, err
	}
	return p.Intern(s), nil
}

func (p *Planner) validate(s *State) error {
	if s.Dim() != p.Dim() {
		return fmt.Errorf("%w: state has %d axes, planner %d", ErrDimension, s.Dim(), p.Dim())
	}
	for i := range s.Position {
		if s.Position[i] < p.lim.Min[i] || s.Position[i] > p.lim.Max[i] {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, s)
		}
		if abs(s.Velocity[i]) > p.lim.MaxSpeed {
			return fmt.Errorf("%w: %v", ErrSpeedLimit, s)
		}
	}
	return nil
}

// Neighbors implements astar.Policy: one state per acceleration vector in
// [-MaxAccel, MaxAccel]^d, in lexicographic order, that keeps the speed
// limit and the bounds. A successor with the goal's position and velocity
// is reported as goal itself, so its Acceleration is the goal's rather than
// the one applied; Accelerations recovers the applied values.
func (p *Planner) Neighbors(s, goal *State) ([]*State, error) {
	if s.Dim() != p.Dim() {
		return nil, fmt.Errorf("%w: state has %d axes, planner %d", ErrDimension, s.Dim(), p.Dim())
	}
	d, amax := p.Dim(), p.lim.MaxAccel
	accel := make([]int, d)
	for i := range accel {
		accel[i] = -amax
	}

	var out []*State
	pos, vel := make([]int, d), make([]int, d)
	for {
		ok := true
		for i := 0; i < d && ok; i++ {
			vel[i] = s.Velocity[i] + accel[i]
			pos[i] = s.Position[i] + vel[i]
			ok = abs(vel[i]) <= p.lim.MaxSpeed && pos[i] >= p.lim.Min[i] && pos[i] <= p.lim.Max[i]
		}
		if ok {
			next, err := NewState(pos, vel, accel)
			if err != nil {
				return nil, err
			}
			if goal != nil && next.sameMotion(goal) {
				out = append(out, goal)
			} else {
				out = append(out, p.Intern(next))
			}
		}

		// Odometer over accelerations, last axis fastest.
		i := d - 1
		for ; i >= 0 && accel[i] == amax; i-- {
			accel[i] = -amax
		}
		if i < 0 {
			return out, nil
		}
		accel[i]++
	}
}

// Cost implements astar.Policy: 1 when one bounded acceleration moves from
// to to, otherwise ErrNotNeighbor.
func (p *Planner) Cost(from, to *State) (float64, error) {
	if from.Dim() != p.Dim() || to.Dim() != p.Dim() {
		return 0, fmt.Errorf("%w: %v→%v", ErrDimension, from, to)
	}
	for i := range from.Position {
		a := to.Velocity[i] - from.Velocity[i]
		if abs(a) > p.lim.MaxAccel || to.Position[i] != from.Position[i]+to.Velocity[i] {
			return 0, fmt.Errorf("%w: %v→%v", ErrNotNeighbor, from, to)
		}
	}
	return 1, nil
}

// EstimateCost implements astar.Policy; see minSteps.
func (p *Planner) EstimateCost(s, goal *State) (float64, error) {
	if s.Dim() != goal.Dim() {
		return 0, fmt.Errorf("%w: %v→%v", ErrDimension, s, goal)
	}
	worst := 0
	for i := range s.Position {
		n := minSteps(goal.Position[i]-s.Position[i], s.Velocity[i], goal.Velocity[i], p.lim.MaxAccel, p.lim.MaxSpeed)
		worst = max(worst, n)
	}
	return float64(worst), nil
}

// Plan interns start and goal and searches for the fewest-step path.
// A nil Result.Path with a nil error means goal is unreachable within the
// bounds.
func (p *Planner) Plan(start, goal *State, opts ...astar.Option) (*astar.Result[*State], error) {
	for _, s := range []*State{start, goal} {
		if s == nil {
			return nil, fmt.Errorf("%w: nil state", ErrDimension)
		}
		if err := p.validate(s); err != nil {
			return nil, err
		}
	}
	return astar.Search[*State](p, p.Intern(start), p.Intern(goal), opts...)
}
