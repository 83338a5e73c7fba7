// Package random wraps a pseudo-random generator with the distributions
// used to drive particle systems and procedural layouts: uniform, Gaussian
// and Bernoulli sampling plus point-in-shape helpers.
//
// A Generator seeds itself from the operating system's entropy source, so
// sequences are not reproducible unless Seed is called explicitly.
// Generators are not safe for concurrent use.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/gogpu/arc"
	"golang.org/x/exp/constraints"
)

// Scalar is the set of types Uniform can sample.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Generator is a seeded source of random samples.
type Generator struct {
	src *rand.PCG
	rng *rand.Rand
}

// New returns a Generator seeded from crypto/rand.
func New() *Generator {
	g := &Generator{src: rand.NewPCG(0, 0)}
	g.rng = rand.New(g.src)
	g.Reseed()
	return g
}

// NewSeeded returns a Generator with a deterministic seed.
func NewSeeded(seed uint64) *Generator {
	g := &Generator{src: rand.NewPCG(0, 0)}
	g.rng = rand.New(g.src)
	g.Seed(seed)
	return g
}

// Seed resets the generator to a deterministic state.
func (g *Generator) Seed(seed uint64) {
	g.src.Seed(seed, seed^0x9e3779b97f4a7c15)
}

// Reseed resets the generator from the operating system's entropy source.
func (g *Generator) Reseed() {
	var b [16]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(b[:])
	g.src.Seed(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]))
}

// Rand exposes the underlying *rand.Rand for distributions not wrapped here.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// maxResample bounds the retries when narrowing a float sample rounds up
// onto hi.
const maxResample = 64

// Uniform returns a uniformly distributed value. Integers are drawn from
// the closed range [lo, hi]; floats from the half-open range [lo, hi).
//
// For integers hi < lo panics; for floats it yields a value in (hi, lo].
// NaN bounds yield NaN and infinite bounds an infinite or NaN result.
func Uniform[T Scalar](g *Generator, lo, hi T) T {
	if isFloat[T]() {
		return uniformFloat(g, lo, hi)
	}
	if isSigned[T]() {
		l, h := int64(lo), int64(hi)
		if h < l {
			panic("random: invalid range")
		}
		span := uint64(h) - uint64(l)
		if span == math.MaxUint64 {
			return T(int64(g.rng.Uint64()))
		}
		return T(int64(uint64(l) + g.rng.Uint64N(span+1)))
	}
	if hi < lo {
		panic("random: invalid range")
	}
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return T(g.rng.Uint64())
	}
	return T(uint64(lo) + g.rng.Uint64N(span+1))
}

// uniformFloat samples [lo, hi) in float64. The two-term form stays finite
// when hi-lo overflows.
func uniformFloat[T Scalar](g *Generator, lo, hi T) T {
	l, h := float64(lo), float64(hi)
	sample := func() T {
		r := g.rng.Float64()
		return T(l*(1-r) + h*r)
	}
	if !(h > l) || math.IsInf(l, 0) || math.IsInf(h, 0) {
		return sample()
	}
	for range maxResample {
		// narrowing to float32 can round up onto hi
		if v := sample(); v < hi {
			return v
		}
	}
	return lo
}

// isFloat reports whether T is a floating-point type.
func isFloat[T Scalar]() bool {
	half := 0.5
	return T(half) != 0
}

// isSigned reports whether T is a signed type.
func isSigned[T Scalar]() bool {
	var zero T
	return zero-1 < zero
}

// Offset returns a uniform sample in [center-offset, center+offset].
func Offset[T Scalar](g *Generator, center, offset T) T {
	return Uniform(g, center-offset, center+offset)
}

// Int returns a uniform integer in [lo, hi].
func (g *Generator) Int(lo, hi int) int { return Uniform(g, lo, hi) }

// Uint8 returns a uniform byte in [lo, hi].
func (g *Generator) Uint8(lo, hi uint8) uint8 { return Uniform(g, lo, hi) }

// Float32 returns a uniform float32 in [lo, hi).
func (g *Generator) Float32(lo, hi float32) float32 { return Uniform(g, lo, hi) }

// Float64 returns a uniform float64 in [lo, hi).
func (g *Generator) Float64(lo, hi float64) float64 { return Uniform(g, lo, hi) }

// Gaussian returns a normally distributed sample.
func (g *Generator) Gaussian(mean, stddev float64) float64 {
	return mean + stddev*g.rng.NormFloat64()
}

// Bernoulli returns true with probability p.
func (g *Generator) Bernoulli(p float64) bool {
	return g.rng.Float64() < p
}

// PointInRect returns a uniformly distributed point inside r.
func (g *Generator) PointInRect(r arc.Rect) arc.Vec2 {
	return arc.Vec2{
		X: arc.Lerp(r.Left, r.Right(), g.Float32(0, 1)),
		Y: arc.Lerp(r.Top, r.Bottom(), g.Float32(0, 1)),
	}
}

// PointInCircle returns a point relative to the origin whose distance lies
// in [minRadius, maxRadius) and whose angle lies in [minDegrees,
// maxDegrees). The radius is sampled uniformly, so points cluster towards
// the centre of a full disc.
func (g *Generator) PointInCircle(minRadius, maxRadius, minDegrees, maxDegrees float32) arc.Vec2 {
	return arc.UnitVector(g.Float32(minDegrees, maxDegrees)).Mul(g.Float32(minRadius, maxRadius))
}

// PointInLine returns a uniformly distributed point on the segment a-b.
func (g *Generator) PointInLine(a, b arc.Vec2) arc.Vec2 {
	return a.Lerp(b, g.Float32(0, 1))
}

// Color returns an opaque colour with uniformly random channels.
func (g *Generator) Color() arc.Color {
	return arc.RGB(g.Uint8(0, 255), g.Uint8(0, 255), g.Uint8(0, 255))
}
