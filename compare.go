package fixmath

// Ordering is defined entirely by the raw value, which makes
// comparisons bit-exact on every platform. Equality can also be
// checked directly with ==.

// Returns -1 if self < other, 0 if they are equal and +1 otherwise.
func (self Fixed) Cmp(other Fixed) int {
	switch {
	case self.raw < other.raw: return -1
	case self.raw > other.raw: return +1
	default: return 0
	}
}

// Same as [Fixed.Cmp], in the shape expected by slices.SortFunc
// and friends.
func Compare(a, b Fixed) int { return a.Cmp(b) }

func (self Fixed) Eq(other Fixed) bool { return self.raw == other.raw }
func (self Fixed) Less(other Fixed) bool { return self.raw < other.raw }
func (self Fixed) Greater(other Fixed) bool { return self.raw > other.raw }
func (self Fixed) LessOrEqual(other Fixed) bool { return self.raw <= other.raw }
func (self Fixed) GreaterOrEqual(other Fixed) bool { return self.raw >= other.raw }
