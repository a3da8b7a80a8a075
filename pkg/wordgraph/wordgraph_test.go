package wordgraph

import (
	"strings"
	"testing"

	"github.com/coverforge/coverforge/pkg/textstat"
)

const sample = `The river meets the ocean near the forest.
The forest shades the river bank.
Nothing interesting here.`

func TestBuild(t *testing.T) {
	g := Build(textstat.Analyze(sample))

	if len(g.Nodes) == 0 {
		t.Fatal("no nodes built")
	}
	// Keywords are ranked by count: river and forest appear twice
	if g.Nodes[0].Word != "river" || g.Nodes[0].Count != 2 {
		t.Errorf("top node = %+v, want river(2)", g.Nodes[0])
	}

	find := func(a, b string) *Edge {
		for i := range g.Edges {
			e := &g.Edges[i]
			if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
				return e
			}
		}
		return nil
	}

	// river and forest share two sentences
	e := find("river", "forest")
	if e == nil {
		t.Fatal("missing river--forest edge")
	}
	if e.Weight != 2 {
		t.Errorf("river--forest weight = %d, want 2", e.Weight)
	}

	// ocean only co-occurs in the first sentence
	if e := find("river", "ocean"); e == nil || e.Weight != 1 {
		t.Errorf("river--ocean edge = %+v, want weight 1", e)
	}
}

func TestBuildDeterminism(t *testing.T) {
	f := textstat.Analyze(sample)
	g1 := Build(f)
	g2 := Build(f)

	if len(g1.Edges) != len(g2.Edges) {
		t.Fatal("edge counts differ")
	}
	for i := range g1.Edges {
		if g1.Edges[i] != g2.Edges[i] {
			t.Errorf("edge %d differs: %+v vs %+v", i, g1.Edges[i], g2.Edges[i])
		}
	}
}

func TestBuildEmptyText(t *testing.T) {
	g := Build(textstat.Analyze(""))
	if len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Errorf("empty text should yield an empty graph, got %+v", g)
	}
}

func TestToDOT(t *testing.T) {
	g := Graph{
		Nodes: []Node{{Word: "river", Count: 2}, {Word: "forest", Count: 1}},
		Edges: []Edge{{From: "river", To: "forest", Weight: 2}},
	}
	dot := ToDOT(g)

	for _, want := range []string{
		"graph G {",
		`"river" [label="river (2)"`,
		`"forest" [label="forest (1)"`,
		`"river" -- "forest" [penwidth=2];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestFontSizeCapped(t *testing.T) {
	if fontSize(1) != 18 {
		t.Errorf("fontSize(1) = %d, want 18", fontSize(1))
	}
	if fontSize(100) != 42 {
		t.Errorf("fontSize(100) = %d, want cap 42", fontSize(100))
	}
}
