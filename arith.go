package fixmath

// Arithmetic core. Each operation comes in two flavors: a Checked*
// function returning an error, and an expression method that panics
// with the same [*Error]. All intermediates are widened to int64 and
// range checked before narrowing back to 32 bits.

// Returns self + other. Panics with [ErrOverflow] if the
// result is not representable.
func (self Fixed) Add(other Fixed) Fixed {
	return must(CheckedAdd(self, other))
}

// Returns self - other. Panics with [ErrOverflow] if the
// result is not representable.
func (self Fixed) Sub(other Fixed) Fixed {
	return must(CheckedSub(self, other))
}

// Returns -self. Panics with [ErrOverflow] for [MinFixed].
func (self Fixed) Neg() Fixed {
	return must(CheckedNeg(self))
}

// Returns self * other, truncated toward zero to the nearest
// representable value. Panics with [ErrOverflow] if the result
// is not representable.
func (self Fixed) Mul(other Fixed) Fixed {
	return must(CheckedMul(self, other))
}

// Returns self / other, truncated toward zero. Panics with
// [ErrDivideByZero] or [ErrOverflow].
func (self Fixed) Div(other Fixed) Fixed {
	return must(CheckedDiv(self, other))
}

// Returns self * n. No rescaling is involved, so the result
// is exact unless it overflows.
func (self Fixed) MulInt(n int) Fixed {
	return must(CheckedMulInt(self, n))
}

// Returns self / n, truncated toward zero.
func (self Fixed) DivInt(n int) Fixed {
	return must(CheckedDivInt(self, n))
}

// Returns self + [One].
func (self Fixed) Inc() Fixed {
	return must(CheckedAdd(self, One))
}

// Returns self - [One].
func (self Fixed) Dec() Fixed {
	return must(CheckedSub(self, One))
}

func CheckedAdd(a, b Fixed) (Fixed, error) {
	return narrow("Add", int64(a.raw) + int64(b.raw))
}

func CheckedSub(a, b Fixed) (Fixed, error) {
	return narrow("Sub", int64(a.raw) - int64(b.raw))
}

func CheckedNeg(a Fixed) (Fixed, error) {
	return narrow("Neg", -int64(a.raw))
}

func CheckedMul(a, b Fixed) (Fixed, error) {
	// the product of two int32 values always fits in an int64
	product := int64(a.raw) * int64(b.raw)
	return narrow("Mul", product / Scale)
}

func CheckedDiv(a, b Fixed) (Fixed, error) {
	if b.raw == 0 {
		return Zero, &Error{Op: "Div", Err: ErrDivideByZero}
	}
	return narrow("Div", int64(a.raw) * Scale / int64(b.raw))
}

func CheckedMulInt(a Fixed, n int) (Fixed, error) {
	if a.raw == 0 || n == 0 { return Zero, nil }
	// keeps the int64 product exact; anything this large overflows anyway
	if int64(n) >= 1<<32 || int64(n) <= -1<<32 {
		return Zero, overflow("MulInt", clampProduct(a.raw, n))
	}
	return narrow("MulInt", int64(a.raw) * int64(n))
}

func CheckedDivInt(a Fixed, n int) (Fixed, error) {
	if n == 0 {
		return Zero, &Error{Op: "DivInt", Err: ErrDivideByZero}
	}
	// MinRaw / -1 is the only quotient that doesn't fit
	return narrow("DivInt", int64(a.raw) / int64(n))
}

// Returns value * value.
func Square(value Fixed) Fixed {
	return must(CheckedMul(value, value))
}

// Saturated approximation of a product that doesn't even fit in
// an int64, used only to report the overflowing magnitude.
func clampProduct(raw int32, n int) int64 {
	if (raw < 0) == (n < 0) { return 1<<63 - 1 }
	return -1 << 63
}
