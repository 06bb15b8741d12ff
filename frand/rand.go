// The frand subpackage generates pseudo-random [fixmath.Fixed]
// values. The sequences depend only on the seed, never on the
// platform or on floating point, so every peer of a lockstep
// simulation draws the same values in the same order.
//
// A Rand is not safe for concurrent use. Simulations typically
// own one per world, and snapshot it together with the rest of
// the state through [Rand.MarshalBinary].
package frand

import "strconv"

import "golang.org/x/exp/rand"

import "github.com/lockstepkit/fixmath"
import "github.com/lockstepkit/fixmath/geom"

// A deterministic generator of fixed point values, backed by
// a 128-bit PCG source.
type Rand struct {
	source *rand.PCGSource
	rng    *rand.Rand
}

// Creates a new generator initialized with the given seed.
func New(seed uint64) *Rand {
	source := &rand.PCGSource{}
	source.Seed(seed)
	return &Rand{ source: source, rng: rand.New(source) }
}

// Resets the generator to the state [New](seed) would create.
func (self *Rand) Seed(seed uint64) {
	self.rng.Seed(seed)
}

// Returns a value in [Zero, One).
func (self *Rand) Fixed() fixmath.Fixed {
	return fixmath.FromRaw(self.rng.Int31n(fixmath.Scale))
}

// Returns a value in [lo, hi). Panics if hi <= lo.
func (self *Rand) Range(lo, hi fixmath.Fixed) fixmath.Fixed {
	if hi.LessOrEqual(lo) {
		panic("frand: invalid range [" + lo.String() + ", " + hi.String() + ")")
	}
	span := int64(hi.Raw()) - int64(lo.Raw()) // up to 2^32 - 1
	return fixmath.FromRaw(int32(int64(lo.Raw()) + self.rng.Int63n(span)))
}

// Returns an int in [0, n). Panics if n <= 0.
func (self *Rand) Intn(n int) int {
	if n <= 0 { panic("frand: invalid argument to Intn: " + strconv.Itoa(n)) }
	return self.rng.Intn(n)
}

// Returns an angle in [-Pi, Pi), in radians.
func (self *Rand) Angle() fixmath.Fixed {
	return self.Range(fixmath.Pi.Neg(), fixmath.Pi)
}

// Returns either 1 or -1 with the same probability.
func (self *Rand) Sign() int {
	if self.rng.Uint64() >> 63 == 0 { return 1 }
	return -1
}

// Returns a vector pointing in a random direction, with
// a length of approximately [fixmath.One].
func (self *Rand) UnitVec() geom.Vec2 {
	return geom.FromAngle(self.Angle())
}

// Implements [encoding.BinaryMarshaler]. The 16 bytes encode
// the full generator state.
func (self *Rand) MarshalBinary() ([]byte, error) {
	return self.source.MarshalBinary()
}

// Implements [encoding.BinaryUnmarshaler]. Restores a state
// previously returned by [Rand.MarshalBinary].
func (self *Rand) UnmarshalBinary(data []byte) error {
	return self.source.UnmarshalBinary(data)
}
