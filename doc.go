// fixmath is a package for deterministic fixed point arithmetic,
// designed to replace floating point math in simulations, lockstep
// networked games and any other computation that must produce the
// exact same bits on every machine and compiler version.
//
// The whole package revolves around a single value type, [Fixed],
// which stores a signed 32-bit raw integer interpreted as raw / [Scale].
// Every operation, from multiplication to [Sin], is defined purely in
// terms of integer arithmetic:
//   speed := fixmath.FromInt(3)
//   angle := fixmath.MustParse("0.5236") // avoid float literals at runtime
//   dx := speed.Mul(fixmath.Cos(angle))
//   dy := speed.Mul(fixmath.Sin(angle))
//
// Arithmetic never wraps silently. The expression forms ([Fixed.Add],
// [Fixed.Mul], [Sqrt]...) panic with an [*Error] when a result doesn't
// fit, just like integer division by zero panics in Go. When the input
// comes from untrusted sources, use the Checked* variants instead, or
// wrap a whole computation with [Recover]:
//   func step(a, b fixmath.Fixed) (r fixmath.Fixed, err error) {
//       defer fixmath.Recover(&err)
//       return a.Mul(b).Add(fixmath.One), nil
//   }
//
// Transcendental functions are bounded-error approximations. Compare
// their results against a tolerance of a few raw units, never with ==.
//
// Subpackages:
//   - geom: Vec2 and Rect types built on [Fixed].
//   - efixed: conversions to and from golang.org/x/image/math/fixed.
//   - frand: deterministic pseudo-random fixed point values.
package fixmath
