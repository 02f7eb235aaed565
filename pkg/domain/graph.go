package domain

import "fmt"

// Graph is an insertion-ordered set of states plus the transitions between
// them. State order is discovery order during extraction; the renderer
// relies on it for deterministic output.
type Graph struct {
	order       []string
	states      map[string]State
	transitions []Transition
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{states: make(map[string]State)}
}

// AddState appends a state. Ids must be unique within the graph.
func (g *Graph) AddState(s State) error {
	if _, exists := g.states[s.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateState, s.ID)
	}
	if s.DisplayName == "" {
		s.DisplayName = s.ID
	}
	g.order = append(g.order, s.ID)
	g.states[s.ID] = s
	return nil
}

// AddTransition appends a transition. Both endpoints must already exist,
// and the condition key must be unique among transitions leaving From.
func (g *Graph) AddTransition(t Transition) error {
	if _, ok := g.states[t.From]; !ok {
		return fmt.Errorf("%w: from %q", ErrUnknownState, t.From)
	}
	if _, ok := g.states[t.To]; !ok {
		return fmt.Errorf("%w: to %q", ErrUnknownState, t.To)
	}
	for _, existing := range g.transitions {
		if existing.From == t.From && existing.ConditionKey == t.ConditionKey {
			return fmt.Errorf("%w: %q on %q", ErrDuplicateTransition, t.ConditionKey, t.From)
		}
	}
	g.transitions = append(g.transitions, t)
	return nil
}

// Has reports whether a state id exists in the graph.
func (g *Graph) Has(id string) bool {
	_, ok := g.states[id]
	return ok
}

// State returns the state for id, if present.
func (g *Graph) State(id string) (State, bool) {
	s, ok := g.states[id]
	return s, ok
}

// States returns all states in insertion order.
func (g *Graph) States() []State {
	out := make([]State, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.states[id])
	}
	return out
}

// Transitions returns all transitions in insertion order.
func (g *Graph) Transitions() []Transition {
	out := make([]Transition, len(g.transitions))
	copy(out, g.transitions)
	return out
}

// Len returns the number of states.
func (g *Graph) Len() int {
	return len(g.order)
}

// Overlay returns a copy of the graph with display names replaced by the
// given id → friendly name mapping. Ids without an entry keep their
// current display name; entries for unknown ids are ignored (a
// human-edited override file may lag the flow). The receiver is never
// mutated, so callers can keep rendering the pre-overlay graph.
func (g *Graph) Overlay(names map[string]string) *Graph {
	out := &Graph{
		order:       make([]string, len(g.order)),
		states:      make(map[string]State, len(g.states)),
		transitions: make([]Transition, len(g.transitions)),
	}
	copy(out.order, g.order)
	copy(out.transitions, g.transitions)
	for id, s := range g.states {
		if name, ok := names[id]; ok && name != "" {
			s.DisplayName = name
		}
		out.states[id] = s
	}
	return out
}
