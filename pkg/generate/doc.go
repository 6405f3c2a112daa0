// Package generate builds seeded random multigraphs for Eulerian-circuit
// experiments.
//
// Every generated graph starts as a ring over all vertices, so it is always
// connected and starts with every degree even. Extra random edges are then
// added until the requested edge count is reached:
//
//	g, err := generate.Generate(generate.Options{Vertices: 6, Edges: 9, Seed: 42})
//
// Random edges usually leave some vertices with odd degree, in which case no
// Eulerian circuit exists. [Options.Balance] repairs the parity afterwards.
package generate
