package radius_test

import (
	"testing"

	"github.com/katalvlaran/querk/radius"
	"github.com/stretchr/testify/assert"
)

func TestFloor4(t *testing.T) {
	cases := []struct {
		in, want uint64
	}{
		{0, 0}, {1, 0}, {2, 0}, {3, 0},
		{4, 4}, {5, 4}, {7, 4}, {8, 8},
		{1<<64 - 1, 1<<64 - 4},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, radius.Floor4(c.in), "Floor4(%d)", c.in)
	}
}

func TestRadius_Flags(t *testing.T) {
	r := radius.Radius(12)
	assert.False(t, r.IsSlowPhase())
	assert.False(t, r.IsSaturated())
	assert.Equal(t, radius.FastPhase, r.Phase())
	assert.Equal(t, uint64(12), r.Magnitude())

	slow := r.WithSlowPhase()
	assert.True(t, slow.IsSlowPhase())
	assert.False(t, slow.IsSaturated())
	assert.Equal(t, radius.SlowPhase, slow.Phase())
	assert.Equal(t, uint64(12), slow.Magnitude(), "flag bits never change the magnitude")
	assert.Equal(t, uint64(13), slow.Raw())

	both := slow.WithSaturated()
	assert.True(t, both.IsSlowPhase())
	assert.True(t, both.IsSaturated())
	assert.Equal(t, uint64(15), both.Raw())
	assert.Equal(t, uint64(12), both.Magnitude())
}

func TestCompose(t *testing.T) {
	// region radius 9 (magnitude 8, slow), cache 2 adds 8.
	r := radius.Compose(9, 2)
	assert.Equal(t, radius.Radius(17), r)
	assert.True(t, r.IsSlowPhase())
	assert.Equal(t, uint64(16), r.Magnitude())

	// the cache correction shifts into the magnitude and leaves flags alone.
	for c := uint32(0); c <= radius.MaxCached; c++ {
		got := radius.Compose(2, c)
		assert.True(t, got.IsSaturated())
		assert.False(t, got.IsSlowPhase())
		assert.Equal(t, uint64(c)*4, got.Magnitude())
	}
}

func TestRadius_String(t *testing.T) {
	assert.Equal(t, "0", radius.Unclaimed.String())
	assert.Equal(t, "8+slow", radius.Radius(9).String())
	assert.Equal(t, "8+sat", radius.Radius(10).String())
	assert.Equal(t, "8+slow+sat", radius.Radius(11).String())
	assert.Equal(t, "slow", radius.SlowPhase.String())
	assert.Equal(t, "fast", radius.FastPhase.String())
}
