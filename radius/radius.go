// Package radius defines the composed growth radius consumed by the
// next-event query.
//
// A Radius is a ×4 fixed-point distance with two flag bits layered into its
// low bits:
//
//	bit0 - the owning region grows at half rate at this node (slow phase).
//	bit1 - the owning region is saturated at this node (blocked).
//
// The magnitude is always read through Magnitude (floor to a multiple of 4),
// so a radius carrying flag bits truncates exactly like the integer
// expression ((r >> 2) << 2). That truncation is part of the contract.
package radius

import "strconv"

// Radius is a composed radius: region.radius + (wrapped_radius_cached << 2).
// Layout: [magnitude/4 : 62][saturated : 1][slow : 1]
type Radius uint64

const (
	// FlagBits is the number of low bits reserved for flags.
	FlagBits = 2

	// SlowPhaseMask selects bit0.
	SlowPhaseMask Radius = 1

	// SaturatedMask selects bit1.
	SaturatedMask Radius = 2

	// Unclaimed is the composed radius of a node no region has reached.
	Unclaimed Radius = 0

	// MaxCached is the largest legal wrapped_radius_cached correction.
	MaxCached = 3
)

// Phase names the growth phase read from bit0.
type Phase uint8

const (
	// FastPhase means bit0 is clear: the region grows at normal rate.
	FastPhase Phase = iota
	// SlowPhase means bit0 is set: the region grows at half rate.
	SlowPhase
)

// String returns "fast" or "slow".
func (p Phase) String() string {
	if p == SlowPhase {
		return "slow"
	}
	return "fast"
}

// Compose builds the composed radius of a claimed node from its region's
// shared radius and the node's cache correction. The shift is done at the
// 32-bit width of the cache table before widening, as the kernel ABI does.
func Compose(regionRadius uint64, cached uint32) Radius {
	return Radius(regionRadius + uint64(cached<<FlagBits))
}

// Floor4 strips the two flag bits: (x >> 2) << 2.
func Floor4(x uint64) uint64 {
	return (x >> FlagBits) << FlagBits
}

// Magnitude returns the radius with its flag bits stripped.
func (r Radius) Magnitude() uint64 { return Floor4(uint64(r)) }

// IsSlowPhase reports bit0.
func (r Radius) IsSlowPhase() bool { return r&SlowPhaseMask != 0 }

// IsSaturated reports bit1.
func (r Radius) IsSaturated() bool { return r&SaturatedMask != 0 }

// Phase returns SlowPhase when bit0 is set, FastPhase otherwise.
func (r Radius) Phase() Phase {
	if r.IsSlowPhase() {
		return SlowPhase
	}
	return FastPhase
}

// WithSlowPhase returns r with bit0 set.
func (r Radius) WithSlowPhase() Radius { return r | SlowPhaseMask }

// WithSaturated returns r with bit1 set.
func (r Radius) WithSaturated() Radius { return r | SaturatedMask }

// Raw returns the underlying integer, flags included.
func (r Radius) Raw() uint64 { return uint64(r) }

// String renders "magnitude[+slow][+sat]", e.g. "12+slow".
// Only used by diagnostics and CLI output.
func (r Radius) String() string {
	s := strconv.FormatUint(r.Magnitude(), 10)
	if r.IsSlowPhase() {
		s += "+slow"
	}
	if r.IsSaturated() {
		s += "+sat"
	}
	return s
}
