package nfa

import "slices"

// Epsilon labels transitions taken without consuming input. It is longer
// than one character so it never collides with a literal label.
const Epsilon = "<&epsilon;>"

// BaseID is the id of the first state allocated by a Registry.
const BaseID StateID = 1

type StateID int

// Transition groups the targets reachable from a state under one label.
type Transition struct {
	Label   string
	Targets []StateID
}

type State struct {
	ID          StateID
	Terminating bool
	Transitions []Transition
}

// Registry owns the states of a single compilation. Ids are dense and
// increase from BaseID, so a state lives at index id-BaseID.
type Registry struct {
	states []State
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Allocate appends a new state and returns its id.
func (r *Registry) Allocate(terminating bool) StateID {
	id := BaseID + StateID(len(r.states))
	r.states = append(r.states, State{ID: id, Terminating: terminating})
	return id
}

// AddTransition links from to to under label. Labels keep the order in
// which they were first used and a target is recorded once per label.
func (r *Registry) AddTransition(from StateID, label string, to StateID) {
	s := &r.states[from-BaseID]
	for i := range s.Transitions {
		t := &s.Transitions[i]
		if t.Label != label {
			continue
		}
		if !slices.Contains(t.Targets, to) {
			t.Targets = append(t.Targets, to)
		}
		return
	}
	s.Transitions = append(s.Transitions, Transition{Label: label, Targets: []StateID{to}})
}

// Len reports how many states have been allocated.
func (r *Registry) Len() int { return len(r.states) }

// Export snapshots the registry into a Graph starting at start. The graph
// shares no memory with the registry.
func (r *Registry) Export(start StateID) *Graph {
	states := make([]State, len(r.states))
	for i, s := range r.states {
		ts := make([]Transition, len(s.Transitions))
		for j, t := range s.Transitions {
			ts[j] = Transition{Label: t.Label, Targets: slices.Clone(t.Targets)}
		}
		states[i] = State{ID: s.ID, Terminating: s.Terminating, Transitions: ts}
	}
	return &Graph{Start: start, States: states}
}
