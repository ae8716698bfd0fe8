package nfa

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// StatePrefix precedes the numeric id in exported state names.
const StatePrefix = "S"

// Graph is the exported automaton. States are ordered by id and are not
// modified after export.
type Graph struct {
	Start  StateID
	States []State
}

// Name renders id as it appears in the exported shape, e.g. "S3".
func Name(id StateID) string {
	return StatePrefix + strconv.Itoa(int(id))
}

// Lookup returns the state with the given id.
func (g *Graph) Lookup(id StateID) (State, bool) {
	i := int(id - BaseID)
	if i < 0 || i >= len(g.States) {
		return State{}, false
	}
	return g.States[i], true
}

// Accepting returns the id of the terminating state.
func (g *Graph) Accepting() StateID {
	for _, s := range g.States {
		if s.Terminating {
			return s.ID
		}
	}
	return 0
}

// MarshalJSON writes the graph as
//
//	{"startingState": "S2", "S1": {"isTerminatingState": true, "<label>": ["S3"]}}
//
// keeping states in id order and labels in insertion order.
func (g *Graph) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"startingState":`)
	writeJSONString(&buf, Name(g.Start))
	for _, s := range g.States {
		buf.WriteByte(',')
		writeJSONString(&buf, Name(s.ID))
		buf.WriteString(`:{"isTerminatingState":`)
		buf.WriteString(strconv.FormatBool(s.Terminating))
		for _, t := range s.Transitions {
			buf.WriteByte(',')
			writeJSONString(&buf, t.Label)
			buf.WriteString(":[")
			for i, to := range t.Targets {
				if i > 0 {
					buf.WriteByte(',')
				}
				writeJSONString(&buf, Name(to))
			}
			buf.WriteByte(']')
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1) // Encode appends a newline
}

// MarshalYAML produces the same ordered shape as MarshalJSON.
func (g *Graph) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, str("startingState"), str(Name(g.Start)))
	for _, s := range g.States {
		state := &yaml.Node{Kind: yaml.MappingNode}
		state.Content = append(state.Content,
			str("isTerminatingState"),
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(s.Terminating)})
		for _, t := range s.Transitions {
			targets := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, to := range t.Targets {
				targets.Content = append(targets.Content, str(Name(to)))
			}
			state.Content = append(state.Content, str(t.Label), targets)
		}
		root.Content = append(root.Content, str(Name(s.ID)), state)
	}
	return root, nil
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
