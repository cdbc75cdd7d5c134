// SPDX-License-Identifier: MIT
package digraph

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the YAML layout of a graph:
//
//	heuristic: min-edge        # or zero; optional
//	vertices: [C, END]         # optional, for vertices without outgoing edges
//	edges:
//	  START: {A: 1, B: 3, C: 2}
//	  A: {A1: 1, A2: 2}
//
// Edges keep document order, which is also the order Neighbors yields them.
type document struct {
	Heuristic string    `yaml:"heuristic"`
	Vertices  []string  `yaml:"vertices"`
	Edges     yaml.Node `yaml:"edges"`
}

// LoadYAML builds a Graph from a YAML document. Options are applied before
// the document's heuristic, which takes precedence when present.
func LoadYAML(r io.Reader, opts ...GraphOption) (*Graph, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return NewGraph(opts...), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	g := NewGraph(opts...)
	if doc.Heuristic != "" {
		h, err := ParseHeuristic(doc.Heuristic)
		if err != nil {
			return nil, err
		}
		g.heuristic = h
	}

	for _, id := range doc.Vertices {
		if _, err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}

	if doc.Edges.Kind == 0 {
		return g, nil
	}
	if doc.Edges.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: edges must be a mapping", ErrBadDocument, doc.Edges.Line)
	}
	for i := 0; i+1 < len(doc.Edges.Content); i += 2 {
		from, targets := doc.Edges.Content[i], doc.Edges.Content[i+1]
		if _, err := g.AddVertex(from.Value); err != nil {
			return nil, fmt.Errorf("line %d: %w", from.Line, err)
		}
		if targets.Tag == "!!null" {
			continue
		}
		if targets.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: edges of %q must be a mapping", ErrBadDocument, targets.Line, from.Value)
		}
		for j := 0; j+1 < len(targets.Content); j += 2 {
			to, weightNode := targets.Content[j], targets.Content[j+1]
			var w float64
			if err := weightNode.Decode(&w); err != nil {
				return nil, fmt.Errorf("%w: line %d: weight of %s→%s: %v", ErrBadDocument, weightNode.Line, from.Value, to.Value, err)
			}
			if err := g.AddEdge(from.Value, to.Value, w); err != nil {
				return nil, fmt.Errorf("line %d: %w", to.Line, err)
			}
		}
	}
	return g, nil
}

// LoadFile reads a YAML graph document from path.
func LoadFile(path string, opts ...GraphOption) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("digraph: read %s: %w", path, err)
	}
	return LoadYAML(bytes.NewReader(data), opts...)
}

// MarshalYAML writes g back in the document layout, preserving edge order.
func (g *Graph) MarshalYAML() (any, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := &yaml.Node{Kind: yaml.MappingNode}
	var isolated []string
	for _, v := range g.order {
		out := g.adj[v]
		if len(out) == 0 {
			isolated = append(isolated, v.ID)
			continue
		}
		targets := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		for _, e := range out {
			var weight yaml.Node
			if err := weight.Encode(e.Weight); err != nil {
				return nil, err
			}
			targets.Content = append(targets.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: e.To.ID}, &weight)
		}
		edges.Content = append(edges.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: v.ID}, targets)
	}

	return struct {
		Heuristic string     `yaml:"heuristic"`
		Vertices  []string   `yaml:"vertices,omitempty,flow"`
		Edges     *yaml.Node `yaml:"edges"`
	}{
		Heuristic: g.heuristic.String(),
		Vertices:  isolated,
		Edges:     edges,
	}, nil
}
