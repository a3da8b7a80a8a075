// Package wordgraph builds keyword co-occurrence graphs from analyzed
// text. Two keywords are connected when they appear in the same
// sentence; edge weight counts how many sentences they share. The graph
// backs the `coverforge analyze --graph` view.
package wordgraph

import (
	"github.com/coverforge/coverforge/pkg/textstat"
)

// Node is a keyword with its document frequency.
type Node struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Edge connects two keywords that co-occur in at least one sentence.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// Graph is a keyword co-occurrence graph. Node and edge order is
// deterministic: nodes follow keyword rank, edges follow first
// co-occurrence.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Build constructs the co-occurrence graph from analyzed features.
func Build(f textstat.Features) Graph {
	g := Graph{Nodes: make([]Node, 0, len(f.Keywords))}

	rank := make(map[string]int, len(f.Keywords))
	for i, kw := range f.Keywords {
		g.Nodes = append(g.Nodes, Node{Word: kw.Word, Count: kw.Count})
		rank[kw.Word] = i
	}

	type pair struct{ a, b int }
	weights := make(map[pair]int)
	var order []pair

	for _, sentence := range f.Sentences {
		present := make(map[int]bool)
		for _, tok := range textstat.Tokenize(sentence) {
			if i, ok := rank[tok]; ok {
				present[i] = true
			}
		}
		for a := 0; a < len(f.Keywords); a++ {
			if !present[a] {
				continue
			}
			for b := a + 1; b < len(f.Keywords); b++ {
				if !present[b] {
					continue
				}
				p := pair{a, b}
				if weights[p] == 0 {
					order = append(order, p)
				}
				weights[p]++
			}
		}
	}

	for _, p := range order {
		g.Edges = append(g.Edges, Edge{
			From:   f.Keywords[p.a].Word,
			To:     f.Keywords[p.b].Word,
			Weight: weights[p],
		})
	}
	return g
}
