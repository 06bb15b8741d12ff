package fixmath

// Returns the absolute value. Panics with [ErrOverflow] for
// [MinFixed], whose absolute value is not representable.
func Abs(value Fixed) Fixed {
	return must(CheckedAbs(value))
}

func CheckedAbs(value Fixed) (Fixed, error) {
	if value.raw >= 0 { return value, nil }
	return narrow("Abs", -int64(value.raw))
}

// Returns the greater of a and b.
func Max(a, b Fixed) Fixed {
	if a.raw > b.raw { return a }
	return b
}

// Returns the lesser of a and b.
func Min(a, b Fixed) Fixed {
	if a.raw < b.raw { return a }
	return b
}

// Returns value limited to the [lo, hi] range. The behavior
// is undefined if lo > hi.
func Clamp(value, lo, hi Fixed) Fixed {
	if value.raw < lo.raw { return lo }
	if value.raw > hi.raw { return hi }
	return value
}

// Rounds the value to the nearest int. Ties (values exactly halfway
// between two integers) are rounded away from zero, so 2.5 becomes 3
// and -2.5 becomes -3.
func RoundToInt(value Fixed) int {
	quo, rem := value.raw / Scale, value.raw % Scale
	if rem >= Scale / 2 { return int(quo) + 1 }
	if rem <= -Scale / 2 { return int(quo) - 1 }
	return int(quo)
}

// Returns the square root of the value, truncated toward zero.
// Panics with [ErrDomain] if the value is negative.
func Sqrt(value Fixed) Fixed {
	return must(CheckedSqrt(value))
}

func CheckedSqrt(value Fixed) (Fixed, error) {
	if value.raw < 0 {
		return Zero, &Error{Op: "Sqrt", Raw: int64(value.raw), Err: ErrDomain}
	}
	if value.raw == 0 { return Zero, nil }

	// sqrt(raw/Scale)*Scale == sqrt(raw*Scale), and the root of
	// MaxRaw*Scale is far below MaxRaw, so this never overflows
	return Fixed{raw: int32(isqrt(int64(value.raw) * Scale))}, nil
}

// Returns the length of the (a, b) vector, sqrt(a*a + b*b).
//
// The squares are accumulated on the raw values in an int64, which
// avoids the overflow that squaring a and b as Fixed values would
// cause for any component above ~46. Panics with [ErrOverflow] if
// the sum of squares doesn't fit in an int64 or the result doesn't
// fit in a Fixed.
func Magnitude(a, b Fixed) Fixed {
	return must(CheckedMagnitude(a, b))
}

func CheckedMagnitude(a, b Fixed) (Fixed, error) {
	aa := int64(a.raw) * int64(a.raw)
	bb := int64(b.raw) * int64(b.raw)
	if aa > (1<<63 - 1) - bb { // both are non-negative
		return Zero, overflow("Magnitude", 1<<63 - 1)
	}
	sum := aa + bb
	if sum == 0 { return Zero, nil }
	return narrow("Magnitude", isqrt(sum))
}

// Integer square root with Newton's method, for num > 0. The
// sequence decreases monotonically until it reaches floor(sqrt(num)),
// so the loop always terminates.
func isqrt(num int64) int64 {
	n := num / 2 + 1
	n1 := (n + num / n) / 2
	for n1 < n {
		n = n1
		n1 = (n + num / n) / 2
	}
	return n
}
