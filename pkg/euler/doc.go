// Package euler finds Eulerian circuits in undirected multigraphs.
//
// An Eulerian circuit is a closed walk that uses every edge exactly once.
// One exists iff all vertices of non-zero degree are connected and every
// vertex has even degree. [Check] tests both conditions; [Find] also builds
// the circuit with Hierholzer's algorithm:
//
//	c, err := euler.Find(g)
//	switch {
//	case euler.IsNonExistence(err):
//	    fmt.Println(err) // not connected, or odd degree
//	case err != nil:
//	    return err
//	default:
//	    fmt.Println("Eulerian Circuit:", c) // 0 -> 1 -> 2 -> 3 -> 0
//	}
//
// # Determinism
//
// The walk starts at the lowest vertex with edges and always follows the
// first unused edge in adjacency order, so the result depends only on the
// order edges were added.
//
// # Complexity
//
// Both the checks and the walk run in O(V+E) time and space. Neither recurses.
package euler
