// Package fixture reads and writes decoding graphs and cluster states as
// YAML documents, so that query scenarios can be stored, shared and replayed
// by the command line tool and by tests.
//
// A fixture lists every node's slots in order:
//
//	max_degree: 3
//	nodes:
//	  - id: 0
//	    edges:
//	      - {boundary: true, weight: 36}
//	      - {to: 1, weight: 20, observables: 1}
//	  - id: 1
//	    edges:
//	      - {to: 0, weight: 20, observables: 1}
//	regions: [5]
//	claims:
//	  - {node: 0, region: 0, cached: 1}
//
// Each undirected edge appears on both endpoints with the same weight and
// observables. Graph rebuilds the slot tables exactly: it replays the edges
// in an order that puts every half-edge back into its listed slot.
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/querk/core"
)

// ErrFixture wraps every decoding and validation failure of this package.
var ErrFixture = errors.New("fixture: invalid fixture")

// Fixture is the YAML document.
type Fixture struct {
	Name      string   `yaml:"name,omitempty"`
	MaxDegree int      `yaml:"max_degree,omitempty"`
	Nodes     []Node   `yaml:"nodes"`
	Regions   []uint64 `yaml:"regions,omitempty"`
	Claims    []Claim  `yaml:"claims,omitempty"`
}

// Node lists the slots of one node in slot order.
type Node struct {
	ID    uint32 `yaml:"id"`
	Edges []Edge `yaml:"edges,omitempty"`
}

// Edge is one slot: either To or Boundary is set.
type Edge struct {
	To          *uint32 `yaml:"to,omitempty"`
	Boundary    bool    `yaml:"boundary,omitempty"`
	Weight      uint32  `yaml:"weight"`
	Observables uint64  `yaml:"observables,omitempty"`
}

// Claim assigns a node to a region with a wrapped radius cache.
type Claim struct {
	Node   uint32 `yaml:"node"`
	Region uint32 `yaml:"region"`
	Cached uint32 `yaml:"cached,omitempty"`
}

// Parse decodes a fixture, rejecting unknown keys.
func Parse(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("Parse: %v: %w", err, ErrFixture)
	}
	return &f, nil
}

// Load reads and parses the fixture at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	return f, nil
}

// Marshal encodes f as YAML.
func Marshal(f *Fixture) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes f to path.
func Save(path string, f *Fixture) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("Save(%s): %w", path, err)
	}
	return nil
}

// FromGraph captures g and s as a fixture. s must describe g's nodes.
func FromGraph(g *core.Graph, s core.Snapshot) (*Fixture, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGraph: %w", core.ErrNilGraph)
	}
	if s.NumNodes() != g.NumNodes() {
		return nil, fmt.Errorf("FromGraph: graph has %d nodes, snapshot %d: %w",
			g.NumNodes(), s.NumNodes(), ErrFixture)
	}

	f := &Fixture{
		MaxDegree: g.MaxDegree(),
		Nodes:     make([]Node, g.NumNodes()),
		Regions:   s.Regions(),
	}
	for u := range f.Nodes {
		id := core.NodeID(u)
		f.Nodes[u].ID = uint32(u)
		for _, e := range g.Edges(id) {
			fe := Edge{Weight: e.Weight, Observables: e.Observables}
			if e.IsBoundary() {
				fe.Boundary = true
			} else {
				to := uint32(e.Neighbor)
				fe.To = &to
			}
			f.Nodes[u].Edges = append(f.Nodes[u].Edges, fe)
		}
		if s.Claimed(id) {
			f.Claims = append(f.Claims, Claim{Node: uint32(u), Region: uint32(s.Region(id)), Cached: s.Cached(id)})
		}
	}

	return f, nil
}
