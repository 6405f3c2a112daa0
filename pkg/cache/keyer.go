package cache

// GraphKeyOpts identifies a generated graph. Generation is deterministic, so
// these fields fully determine the cached bytes.
type GraphKeyOpts struct {
	Vertices int    `json:"vertices"`
	Edges    int    `json:"edges"`
	Seed     uint64 `json:"seed"`
	Balance  bool   `json:"balance,omitempty"`
}

// Keyer builds cache keys for each kind of cached entry.
type Keyer interface {
	// GraphKey addresses a generated graph.
	GraphKey(opts GraphKeyOpts) string
	// CircuitKey addresses the circuit outcome of the graph with the given hash.
	CircuitKey(graphHash string) string
	// ArtifactKey addresses a rendered artifact of the graph with the given hash.
	ArtifactKey(graphHash, format string) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GraphKey hashes the generator options.
func (DefaultKeyer) GraphKey(opts GraphKeyOpts) string {
	return hashKey("graph", opts)
}

// CircuitKey returns "circuit:<graphHash>".
func (DefaultKeyer) CircuitKey(graphHash string) string {
	return "circuit:" + graphHash
}

// ArtifactKey hashes the graph hash together with the format.
func (DefaultKeyer) ArtifactKey(graphHash, format string) string {
	return hashKey("artifact", graphHash, format)
}
