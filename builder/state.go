// SPDX-License-Identifier: MIT
// Package: querk/builder
//
// state.go - random cluster state for executor cross-validation.

package builder

import (
	"fmt"

	"github.com/katalvlaran/querk/core"
	"github.com/katalvlaran/querk/radius"
)

// RandomState draws a cluster state for g.
//
// Steps:
//  1. numRegions regions, each with a raw radius uniform in [0, maxRadius);
//     the two flag bits are therefore random too.
//  2. Each node is claimed with probability claimP by a uniform region,
//     with a uniform cache in 0..3.
//
// Requires an RNG (WithSeed/WithRand) and numRegions ≥ 1.
// Complexity: O(N + R).
func RandomState(g *core.Graph, numRegions int, opts ...BuilderOption) (*core.State, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", MethodRandomState, core.ErrNilGraph)
	}
	if numRegions < 1 {
		return nil, fmt.Errorf("%s: numRegions=%d < min=1: %w", MethodRandomState, numRegions, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", MethodRandomState, ErrNeedRandSource)
	}
	rng := cfg.rng

	s := core.NewState(g.NumNodes(), 0)
	for r := 0; r < numRegions; r++ {
		s.AddRegion(uint64(rng.Int63n(int64(cfg.maxRadius))))
	}
	for u := 0; u < g.NumNodes(); u++ {
		if rng.Float64() >= cfg.claimP {
			continue
		}
		region := core.RegionID(rng.Intn(numRegions))
		cached := uint32(rng.Intn(radius.MaxCached + 1))
		if err := s.Claim(core.NodeID(u), region, cached); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomState, err)
		}
	}

	return s, nil
}
