package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Wire Format
// =============================================================================

// Document is the JSON serialization of a [Graph].
//
// Edges are listed in insertion order. Replaying them with [Graph.AddEdge]
// reproduces the exact adjacency order, so circuits computed from a decoded
// graph match the ones computed from the original.
type Document struct {
	Vertices int    `json:"vertices"`
	Edges    []Edge `json:"edges"`
}

// ToDocument converts g to its serialization format.
func ToDocument(g *Graph) Document {
	edges := g.Edges()
	if edges == nil {
		edges = []Edge{}
	}
	return Document{Vertices: g.Order(), Edges: edges}
}

// FromDocument builds a Graph from its serialization format.
// Returns an error for a non-positive vertex count or out-of-range endpoints.
func FromDocument(d Document) (*Graph, error) {
	g, err := New(d.Vertices)
	if err != nil {
		return nil, err
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return g, nil
}

// =============================================================================
// Serialization API
// =============================================================================

// Marshal converts a graph to indented JSON bytes.
func Marshal(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a Graph.
func Unmarshal(data []byte) (*Graph, error) {
	return readFrom(bytes.NewReader(data))
}

// Write writes g as JSON to w.
func Write(g *Graph, w io.Writer) error {
	return writeTo(g, w)
}

// WriteFile writes g as JSON to path, creating or truncating it.
func WriteFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeTo(g, f)
}

// Read decodes a JSON graph from r.
func Read(r io.Reader) (*Graph, error) {
	return readFrom(r)
}

// ReadFile reads and decodes the JSON graph stored at path.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readFrom(f)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeTo(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readFrom(r io.Reader) (*Graph, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return FromDocument(d)
}
