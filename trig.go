package fixmath

// Trigonometric approximations. All angles are in radians. The
// results have a bounded error of a few raw units with respect to
// the true mathematical values, but they are bit-exact across
// platforms, which is what matters here.

// Approximates atan(z) for z in [-1, 1] with the quadratic
// polynomial (c1 + c2*z*z)*z. The maximum error is around 0.006
// radians. Results outside [-1, 1] are meaningless; use [Atan2]
// for arbitrary ratios.
func Atan(z Fixed) Fixed {
	return atanC1.Add(atanC2.Mul(z).Mul(z)).Mul(z)
}

// Returns the angle of the (x, y) vector, in [-Pi, Pi].
// Atan2(Zero, Zero) returns Zero, even if mathematically
// the angle is undefined.
//
// The precision of the result can fluctuate with the quadrant,
// but it stays within a few raw units of the true angle.
func Atan2(y, x Fixed) Fixed {
	if x.raw == 0 {
		switch {
		case y.raw > 0: return PiOver2
		case y.raw < 0: return PiOver2.Neg()
		default: return Zero
		}
	}

	if absRaw(x) > absRaw(y) {
		z := y.Div(x)
		if x.raw > 0 { return Atan(z) }
		if y.raw >= 0 { return Atan(z).Add(Pi) }
		return Atan(z).Sub(Pi)
	}

	// atan(y/x) = pi/2 - atan(x/y) when |y/x| >= 1
	z := x.Div(y)
	if y.raw > 0 { return PiOver2.Sub(Atan(z)) }
	return PiOver2.Neg().Sub(Atan(z))
}

// Approximates sin(x) with a fifth order polynomial. The result
// is always within [-One, One].
//
// Angles outside [-Pi, Pi] are reduced by whole multiples of
// [TwoPi], which is itself rounded to the scale, so the error
// against the true sine grows with the magnitude of the angle.
// The results are still exactly periodic over TwoPi.
func Sin(x Fixed) Fixed {
	x = wrapAngle(x)

	// fold into [-pi/2, pi/2] using sin(pi - x) == sin(x)
	if x.raw > PiOver2.raw {
		x = Pi.Sub(x)
	} else if x.raw < -PiOver2.raw {
		x = Pi.Neg().Sub(x)
	}

	a := Square(x.MulInt(2).Div(Pi))
	b := Pi.Sub(a.Mul(TwoPi.Sub(FromInt(5)).Sub(a.Mul(Pi.Sub(FromInt(3))))))
	result := x.Mul(b).Div(Pi) // multiplying first preserves precision
	return Clamp(result, One.Neg(), One)
}

// Approximates cos(x) as sin(x + Pi/2). Like [Sin], it never
// overflows, as the angle is wrapped before shifting it.
func Cos(x Fixed) Fixed {
	return Sin(wrapAngle(x).Add(PiOver2))
}

// Wraps the angle into [-Pi, Pi] by adding or subtracting whole
// multiples of TwoPi. A single remainder gives the same result as
// repeated subtraction, in constant time.
func wrapAngle(x Fixed) Fixed {
	if x.raw >= -Pi.raw && x.raw <= Pi.raw { return x }
	raw := x.raw % TwoPi.raw
	if raw > Pi.raw {
		raw -= TwoPi.raw
	} else if raw < -Pi.raw {
		raw += TwoPi.raw
	}
	return Fixed{raw: raw}
}

func absRaw(value Fixed) int64 {
	if value.raw < 0 { return -int64(value.raw) }
	return int64(value.raw)
}
