package fixmath

import "golang.org/x/exp/constraints"

// Fixed point type used for deterministic arithmetic.
//
// A Fixed stores a single signed 32-bit raw value, and its logical
// value is raw / [Scale]. With the default scale of 1000, the raw value
// 1500 represents 1.5 and the smallest step between values is 0.001.
// The representable range is [MinFloat64, MaxFloat64].
//
// Fixed values are comparable with == and can be used as map keys:
// two values are equal if and only if their raw values are equal.
// The zero value is [Zero].
type Fixed struct {
	raw int32
}

// Creates a Fixed directly from its raw representation.
func FromRaw(raw int32) Fixed {
	return Fixed{raw: raw}
}

// Returns the raw representation of the value. This is the only
// state that needs to be persisted or sent over the network.
func (self Fixed) Raw() int32 {
	return self.raw
}

// Converts an int to its exact Fixed representation. It panics
// with [ErrOverflow] if the value is outside [MinInt, MaxInt].
// See [CheckedFromInt] for the error-returning variant.
func FromInt(value int) Fixed {
	return must(CheckedFromInt(value))
}

// Like [FromInt], but returning an error instead of panicking.
func CheckedFromInt(value int) (Fixed, error) {
	return FromInteger(value)
}

// Generic variant of [CheckedFromInt] that accepts any integer type.
func FromInteger[T constraints.Integer](value T) (Fixed, error) {
	if value < 0 {
		if int64(value) < int64(MinInt) {
			return Zero, overflow("FromInteger", int64(value))
		}
	} else if uint64(value) > uint64(MaxInt) {
		return Zero, overflow("FromInteger", clampInt64(uint64(value)))
	}
	return Fixed{raw: int32(int64(value) * Scale)}, nil
}

// Converts a float64 to a Fixed, truncating toward zero.
//
// This is the single entry point where floating point non-determinism
// can leak in: the result depends on the float value the platform
// computed. Use it only for values that are already identical on every
// machine (e.g. literals), or better, use [Parse]. NaN converts to zero,
// and values out of range saturate at [MinFixed] and [MaxFixed].
func FromFloat64(value float64) Fixed {
	if value != value { return Zero } // NaN
	scaled := value * Scale
	if scaled >= float64(MaxRaw) { return MaxFixed }
	if scaled <= float64(MinRaw) { return MinFixed }
	return Fixed{raw: int32(scaled)}
}

// Same as [FromFloat64], but for float32 values.
func FromFloat32(value float32) Fixed {
	return FromFloat64(float64(value))
}

// Converts the value to float64. Informational use only:
// float results must not feed back into deterministic code.
func (self Fixed) ToFloat64() float64 {
	return float64(self.raw) / Scale
}

// Converts the value to float32. The conversion may lose precision
// for values with more than 24 significant bits.
func (self Fixed) ToFloat32() float32 {
	return float32(self.raw) / Scale
}

// Generic variant of [Fixed.ToFloat64].
func ToFloat[T constraints.Float](value Fixed) T {
	return T(value.raw) / Scale
}

// Converts the value to an int, truncating toward zero.
func (self Fixed) ToInt() int {
	return int(self.raw / Scale)
}

// Converts the value to the largest int <= the value.
func (self Fixed) ToIntFloor() int {
	q, r := self.raw / Scale, self.raw % Scale
	if r < 0 { q -= 1 }
	return int(q)
}

// Converts the value to the smallest int >= the value.
func (self Fixed) ToIntCeil() int {
	q, r := self.raw / Scale, self.raw % Scale
	if r > 0 { q += 1 }
	return int(q)
}

// Returns whether the value has no fractional part.
func (self Fixed) IsWhole() bool {
	return self.raw % Scale == 0
}

// Returns whether the value is zero.
func (self Fixed) IsZero() bool {
	return self.raw == 0
}

// Returns -1, 0 or +1 depending on the sign of the value.
func (self Fixed) Sign() int {
	switch {
	case self.raw > 0: return +1
	case self.raw < 0: return -1
	default: return 0
	}
}

func clampInt64(value uint64) int64 {
	if value > 1<<63 - 1 { return 1<<63 - 1 }
	return int64(value)
}
