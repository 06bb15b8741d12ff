package fixmath

// Returns the largest whole value <= self. Panics with
// [ErrOverflow] if the value is below -[MaxInt].
func (self Fixed) Floor() Fixed {
	raw := int64(self.raw)
	return must(narrow("Floor", raw - floorMod(raw, Scale)))
}

// Returns the smallest whole value >= self. Panics with
// [ErrOverflow] if the value is above [MaxInt].
func (self Fixed) Ceil() Fixed {
	raw := int64(self.raw)
	rem := floorMod(raw, Scale)
	if rem == 0 { return self }
	return must(narrow("Ceil", raw - rem + Scale))
}

// Returns self - self.Floor(), which is always in [Zero, One),
// also for negative values.
func (self Fixed) Frac() Fixed {
	return Fixed{raw: int32(floorMod(int64(self.raw), Scale))}
}

// Quantizes the value to the closest multiple of step, rounding
// up in case of ties. Panics with [ErrDomain] if step is not
// positive, or with [ErrOverflow] if the result doesn't fit.
func (self Fixed) QuantizeUp(step Fixed) Fixed {
	return must(quantize("QuantizeUp", self, step, true))
}

// Like [Fixed.QuantizeUp], but rounding down in case of ties.
func (self Fixed) QuantizeDown(step Fixed) Fixed {
	return must(quantize("QuantizeDown", self, step, false))
}

func quantize(op string, value, step Fixed, tieUp bool) (Fixed, error) {
	if step.raw <= 0 {
		return Zero, &Error{Op: op, Raw: int64(step.raw), Err: ErrDomain}
	}
	raw, size := int64(value.raw), int64(step.raw)
	rem := floorMod(raw, size)
	quantized := raw - rem
	if rem*2 > size || (rem*2 == size && tieUp) {
		quantized += size
	}
	return narrow(op, quantized)
}

// Modulo with the sign of the divisor, so that for positive
// divisors the result is always in [0, divisor).
func floorMod(value, divisor int64) int64 {
	rem := value % divisor
	if rem < 0 { rem += divisor }
	return rem
}
