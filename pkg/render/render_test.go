package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/eulertour/pkg/euler"
	"github.com/matzehuels/eulertour/pkg/graph"
)

func square(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.MustNew(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestToDOT(t *testing.T) {
	g := square(t)
	c, err := euler.Find(g)
	if err != nil {
		t.Fatal(err)
	}

	dot := ToDOT(g, Options{Circuit: c, Title: "square"})

	for _, want := range []string{
		"graph G {",
		`label="square";`,
		`0 [label="0", shape=doublecircle, penwidth=2];`,
		`1 [label="1"];`,
		`0 -- 1 [label="1"];`,
		`1 -- 2 [label="2"];`,
		`2 -- 3 [label="3"];`,
		`3 -- 0 [label="4"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Errorf("DOT not closed:\n%s", dot)
	}
}

func TestToDOTWithoutCircuit(t *testing.T) {
	g := graph.MustNew(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	dot := ToDOT(g, Options{HighlightOdd: true})

	if strings.Contains(dot, "doublecircle") {
		t.Error("start vertex marked without circuit")
	}
	if !strings.Contains(dot, "  0 -- 1;\n") {
		t.Errorf("unlabeled edge missing:\n%s", dot)
	}
	if got := strings.Count(dot, `fillcolor="#f4cccc"`); got != 2 {
		t.Errorf("highlighted %d vertices, want 2", got)
	}
}

func TestStepLabelsParallelEdges(t *testing.T) {
	g := graph.MustNew(2)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 0)
	_ = g.AddEdge(1, 1)

	labels := stepLabels(g, euler.Circuit{0, 1, 1, 0})
	want := map[int]int{0: 1, 2: 2, 1: 3}
	if len(labels) != len(want) {
		t.Fatalf("labels = %v, want %v", labels, want)
	}
	for id, step := range want {
		if labels[id] != step {
			t.Errorf("edge %d: step %d, want %d", id, labels[id], step)
		}
	}

	if got := stepLabels(g, euler.Circuit{0}); got != nil {
		t.Errorf("single-vertex circuit: got %v", got)
	}
}

func TestStepLabelsManyParallelEdges(t *testing.T) {
	const k = 2000
	g := graph.MustNew(2)
	c := euler.Circuit{0}
	for i := range k {
		_ = g.AddEdge(0, 1)
		c = append(c, (i+1)%2)
	}

	labels := stepLabels(g, c)
	if len(labels) != k {
		t.Fatalf("labelled %d edges, want %d", len(labels), k)
	}
	for id := range k {
		if labels[id] != id+1 {
			t.Fatalf("edge %d: step %d, want %d", id, labels[id], id+1)
		}
	}
}

func TestNewReport(t *testing.T) {
	g := square(t)
	c, _ := euler.Find(g)

	r := NewReport(g, euler.OutcomeCircuit, c)
	if r.Message != "Eulerian Circuit: 0 -> 1 -> 2 -> 3 -> 0" {
		t.Errorf("message = %q", r.Message)
	}

	data, err := RenderJSON(r)
	if err != nil {
		t.Fatal(err)
	}
	var back Report
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Outcome != euler.OutcomeCircuit || len(back.Circuit) != 5 || back.Graph.Vertices != 4 {
		t.Errorf("round trip = %+v", back)
	}
}

func TestNewReportOddDegree(t *testing.T) {
	g := graph.MustNew(3)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	r := NewReport(g, euler.OutcomeOddDegree, euler.Circuit{0, 1})
	if r.Circuit != nil {
		t.Errorf("circuit kept for failed search: %v", r.Circuit)
	}
	if len(r.OddVertices) != 2 || r.OddVertices[0] != 0 || r.OddVertices[1] != 2 {
		t.Errorf("odd vertices = %v", r.OddVertices)
	}
	if r.Message != euler.OutcomeOddDegree.Message() {
		t.Errorf("message = %q", r.Message)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg><g/></svg>")); string(got) != "<svg><g/></svg>" {
		t.Errorf("unchanged input altered: %s", got)
	}
}

func TestRenderUnknownEngine(t *testing.T) {
	if _, err := RenderSVG(t.Context(), "graph G {}", "fdp-nope"); err == nil {
		t.Error("expected error for unknown engine")
	}
}
