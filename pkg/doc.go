// Package pkg holds the eulertour libraries.
//
// # Overview
//
// eulertour builds seeded random undirected multigraphs and finds Eulerian
// circuits in them. The packages layer as follows:
//
//	[generate] seeded ring + random edges
//	     ↓
//	[graph] fixed-order multigraph, JSON form
//	     ↓
//	[euler] connectivity and degree checks, Hierholzer walk
//	     ↓
//	[render] DOT, SVG, PNG and JSON artifacts
//
// [pipeline] runs those stages with a [cache] in front of each and reports
// through [observability] hooks. [config] and [errors] are shared by the
// CLI and the HTTP API.
//
// # Quick Start
//
//	g, _ := generate.Generate(generate.Options{Vertices: 6, Edges: 9, Seed: 42, Balance: true})
//	c, err := euler.Find(g)
//	if err != nil {
//	    fmt.Println(euler.OutcomeOf(err).Message())
//	    return
//	}
//	fmt.Println("Eulerian Circuit: " + c.String())
//
// [generate]: github.com/matzehuels/eulertour/pkg/generate
// [graph]: github.com/matzehuels/eulertour/pkg/graph
// [euler]: github.com/matzehuels/eulertour/pkg/euler
// [render]: github.com/matzehuels/eulertour/pkg/render
// [pipeline]: github.com/matzehuels/eulertour/pkg/pipeline
// [cache]: github.com/matzehuels/eulertour/pkg/cache
// [observability]: github.com/matzehuels/eulertour/pkg/observability
// [config]: github.com/matzehuels/eulertour/pkg/config
// [errors]: github.com/matzehuels/eulertour/pkg/errors
package pkg
