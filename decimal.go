package fixmath

import "github.com/shopspring/decimal"

// Exact decimal input and output. Unlike [FromFloat64], these
// conversions never touch floating point, so they are the
// recommended way to write fixed point literals.

// Digits of the scale, used to shift decimals into raw units.
const scaleDigits = 3

const _ uint = Scale - 1e3 // scaleDigits must match Scale
const _ uint = 1e3 - Scale

// Parses a decimal string like "3.1416", "-2.5" or "1e-3" into a
// Fixed. Digits beyond the precision of the scale are truncated
// toward zero. The error wraps [ErrOverflow] if the value is out
// of range.
func Parse(text string) (Fixed, error) {
	value, err := decimal.NewFromString(text)
	if err != nil { return Zero, err }
	return FromDecimal(value)
}

// Like [Parse], but panics on error. Intended for package level
// literals:
//   var gravity = fixmath.MustParse("9.81")
func MustParse(text string) Fixed {
	value, err := Parse(text)
	if err != nil { panic(err) }
	return value
}

// Converts a decimal to a Fixed, truncating toward zero.
func FromDecimal(value decimal.Decimal) (Fixed, error) {
	// cheap bounds before scaling, so huge exponents can't overflow
	// or make the rescaling compute huge powers of ten
	if value.IsZero() { return Zero, nil }
	magnitude := int64(value.Exponent()) + int64(value.NumDigits()) // |value| < 10^magnitude
	if magnitude <= -scaleDigits { return Zero, nil }
	if magnitude > 10 {
		return Zero, overflow("FromDecimal", int64(value.Sign()) * (1<<63 - 1))
	}

	scaled := value.Shift(scaleDigits).BigInt() // |scaled| < 10^13
	return narrow("FromDecimal", scaled.Int64())
}

// Returns the exact decimal representation of the value.
func (self Fixed) ToDecimal() decimal.Decimal {
	return decimal.New(int64(self.raw), -scaleDigits)
}
