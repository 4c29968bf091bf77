package texture

import (
	"testing"

	"github.com/cosmcif/raytracer/types"
)

func TestCheckerboardAlternates(t *testing.T) {
	f := Checkerboard(types.Vec3{1, 1, 1}, types.Vec3{0, 0, 0}, 1)
	cases := []struct {
		uv   types.Vec2
		want types.Vec3
	}{
		{types.Vec2{0.1, 0.1}, types.Vec3{1, 1, 1}},
		{types.Vec2{1.1, 0.1}, types.Vec3{0, 0, 0}},
		{types.Vec2{0.1, 1.1}, types.Vec3{0, 0, 0}},
		{types.Vec2{1.1, 1.1}, types.Vec3{1, 1, 1}},
	}
	for _, c := range cases {
		if got := f(c.uv); got != c.want {
			t.Errorf("Checkerboard(%v) = %v, want %v", c.uv, got, c.want)
		}
	}
}

func TestValueNoiseIsDeterministic(t *testing.T) {
	f := ValueNoise(types.Vec3{1, 1, 1}, 4)
	uv := types.Vec2{0.37, 0.81}
	a := f(uv)
	b := f(uv)
	if a != b {
		t.Fatalf("expected repeated sampling at the same uv to be deterministic, got %v then %v", a, b)
	}
}

func TestValueNoiseStaysWithinUnitRange(t *testing.T) {
	f := ValueNoise(types.Vec3{1, 1, 1}, 3)
	for i := 0; i < 50; i++ {
		uv := types.Vec2{float32(i) * 0.137, float32(i) * 0.271}
		c := f(uv)
		for ch := 0; ch < 3; ch++ {
			if c[ch] < 0 || c[ch] > 1 {
				t.Fatalf("noise value out of [0,1] at uv=%v: %v", uv, c)
			}
		}
	}
}

func TestValueNoiseIsContinuousAtLatticePoints(t *testing.T) {
	f := ValueNoise(types.Vec3{1, 1, 1}, 1)
	// Sampling exactly on and just off a lattice point should not jump
	// discontinuously, since the underlying interpolation is bilinear.
	onLattice := f(types.Vec2{2, 3})
	nearLattice := f(types.Vec2{2.001, 3.001})
	for ch := 0; ch < 3; ch++ {
		d := onLattice[ch] - nearLattice[ch]
		if d < 0 {
			d = -d
		}
		if d > 0.01 {
			t.Fatalf("expected near-lattice samples to be close, got %v vs %v", onLattice, nearLattice)
		}
	}
}
