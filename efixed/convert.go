package efixed

import "golang.org/x/image/math/fixed"

import "github.com/lockstepkit/fixmath"

// Conversions to 26.6 never overflow as long as the whole Fixed
// range fits in it. This breaks the build if the scale shrinks.
const _ uint = (1<<31 - 1) / 64 - (1<<31 - 1) / fixmath.Scale

// Converts a value to its fixed.Int26_6 representation. The part
// below 1/64 is truncated toward zero.
func ToInt26_6(value fixmath.Fixed) fixed.Int26_6 {
	return fixed.Int26_6(int64(value.Raw()) * 64 / fixmath.Scale)
}

// Converts a value to its fixed.Int52_12 representation. The part
// below 1/4096 is truncated toward zero.
func ToInt52_12(value fixmath.Fixed) fixed.Int52_12 {
	return fixed.Int52_12(int64(value.Raw()) * 4096 / fixmath.Scale)
}

// Converts a fixed.Int26_6 to the closest Fixed toward zero.
// Returns an error if the value is out of range.
func FromInt26_6(value fixed.Int26_6) (fixmath.Fixed, error) {
	return fromBinary("FromInt26_6", int64(value), 6)
}

// Converts a fixed.Int52_12 to the closest Fixed toward zero.
// Returns an error if the value is out of range.
func FromInt52_12(value fixed.Int52_12) (fixmath.Fixed, error) {
	return fromBinary("FromInt52_12", int64(value), 12)
}

// Converts value / 2^fractBits to raw units. The whole and
// fractional parts are scaled separately so even the extremes
// of Int52_12 can't overflow the int64 intermediate.
func fromBinary(op string, value int64, fractBits uint) (fixmath.Fixed, error) {
	one := int64(1) << fractBits
	whole, fract := value / one, value % one
	raw := whole * fixmath.Scale + fract * fixmath.Scale / one
	if raw > int64(fixmath.MaxRaw) || raw < int64(fixmath.MinRaw) {
		return fixmath.Zero, &fixmath.Error{ Op: op, Raw: raw, Err: fixmath.ErrOverflow }
	}
	return fixmath.FromRaw(int32(raw)), nil
}
