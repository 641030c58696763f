// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"strings"
)

// Node is an option in a majority graph.
type Node struct {
	Index int     `json:"index"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// GraphEdge is a majority drawn from winner to loser.
type GraphEdge struct {
	Edge
	Accepted bool `json:"accepted"`
}

// Graph describes which majorities were locked in and which were skipped.
type Graph struct {
	Nodes []Node      `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// NewGraph builds the graph for a closure over the given options.
func NewGraph(options []string, c *Closure) *Graph {
	g := &Graph{Nodes: make([]Node, c.Size())}
	for i := range g.Nodes {
		g.Nodes[i] = Node{Index: i, Label: options[i], Score: float64(c.Reachable(i))}
	}

	g.Edges = make([]GraphEdge, 0, len(c.Accepted)+len(c.Skipped))
	a, s := 0, 0
	for a < len(c.Accepted) || s < len(c.Skipped) {
		if s == len(c.Skipped) || (a < len(c.Accepted) && c.Accepted[a].Rank < c.Skipped[s].Rank) {
			g.Edges = append(g.Edges, GraphEdge{Edge: c.Accepted[a], Accepted: true})
			a++
		} else {
			g.Edges = append(g.Edges, GraphEdge{Edge: c.Skipped[s]})
			s++
		}
	}
	return g
}

// DOT renders the graph in Graphviz syntax.
func (g *Graph) DOT() string {
	var b strings.Builder
	b.WriteString("digraph majorities {\n")
	b.WriteString("\trankdir=TB;\n")
	b.WriteString("\tnode [shape=box];\n")
	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "\tn%d [label=%s];\n", n.Index, dotQuote(fmt.Sprintf("%s (%g)", n.Label, n.Score)))
	}
	for _, e := range g.Edges {
		style := `style=solid, color=black`
		if !e.Accepted {
			style = `style=dashed, color=gray`
		}
		label := fmt.Sprintf("#%d %d-%d", e.Rank+1, e.For, e.Against)
		fmt.Fprintf(&b, "\tn%d -> n%d [label=%s, %s];\n", e.Winner, e.Loser, dotQuote(label), style)
	}
	b.WriteString("}\n")
	return b.String()
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote makes s a Graphviz quoted string. Only the quote and backslash
// are escaped; everything else, including non-ASCII, is passed through.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
