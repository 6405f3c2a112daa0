package render

import (
	"encoding/json"

	"github.com/matzehuels/eulertour/pkg/euler"
	"github.com/matzehuels/eulertour/pkg/graph"
)

// Report is the JSON document describing a graph and its circuit search.
type Report struct {
	Graph       graph.Document `json:"graph"`
	Outcome     euler.Outcome  `json:"outcome"`
	Message     string         `json:"message"`
	Circuit     []int          `json:"circuit,omitempty"`
	OddVertices []int          `json:"odd_vertices,omitempty"`
}

// NewReport assembles a Report. circuit is ignored unless outcome is
// [euler.OutcomeCircuit].
func NewReport(g *graph.Graph, outcome euler.Outcome, circuit euler.Circuit) Report {
	r := Report{
		Graph:   graph.ToDocument(g),
		Outcome: outcome,
		Message: outcome.Message(),
	}
	switch outcome {
	case euler.OutcomeCircuit:
		r.Circuit = circuit
		r.Message = "Eulerian Circuit: " + circuit.String()
	case euler.OutcomeOddDegree:
		r.OddVertices = euler.OddVertices(g)
	}
	return r
}

// RenderJSON encodes the report with two-space indentation.
func RenderJSON(r Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
