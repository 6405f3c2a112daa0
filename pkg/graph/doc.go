// Package graph provides the undirected multigraph used by eulertour and its
// JSON wire format.
//
// # Model
//
// A [Graph] has a fixed number of vertices labelled 0..V-1 and a mutable
// multiset of undirected edges. Each vertex keeps an ordered neighbor list;
// the order is the order edges were added, and algorithms that break ties by
// "first neighbor" depend on it.
//
//	g, _ := graph.New(4)
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	g.Neighbors(1) // [0 2]
//
// Parallel edges and self loops are allowed. A self loop (u,u) adds u to its
// own list twice, so it counts two towards the degree.
//
// # Serialization
//
// Graphs are stored as a vertex count plus an edge list:
//
//	{
//	  "vertices": 3,
//	  "edges": [{"u": 0, "v": 1}, {"u": 1, "v": 2}, {"u": 2, "v": 0}]
//	}
//
// Use [Marshal]/[Unmarshal] for bytes, [Write]/[Read] for streams and
// [WriteFile]/[ReadFile] for files.
//
// # Concurrency
//
// Concurrent reads are safe. Mutation requires external synchronization.
package graph
