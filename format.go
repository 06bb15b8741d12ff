package fixmath

import "fmt"
import "strconv"
import "strings"

// Returns a textual representation of the value (e.g.: "3.142",
// "-0.5", "12"). The conversion is exact and doesn't go through
// floating point, but the format is meant for humans: persist the
// [Fixed.Raw] value instead.
func (self Fixed) String() string {
	return string(self.appendDecimal(nil))
}

func (self Fixed) appendDecimal(buffer []byte) []byte {
	raw := int64(self.raw)
	if raw < 0 {
		buffer = append(buffer, '-')
		raw = -raw
	}
	buffer = strconv.AppendInt(buffer, raw / Scale, 10)
	frac := raw % Scale
	if frac == 0 { return buffer }

	buffer = append(buffer, '.')
	for unit := int64(Scale / 10); unit > 0 && frac > 0; unit /= 10 {
		buffer = append(buffer, byte('0' + frac / unit))
		frac %= unit
	}
	return buffer
}

// Implements [fmt.Formatter]. Supported verbs:
//   - %v, %s: same as [Fixed.String]. %+v appends the raw value.
//   - %#v: Go syntax, e.g. fixmath.FromRaw(3142).
//   - %d, %x, %X, %o, %b: the raw value as an integer.
//   - %f, %F, %e, %E, %g, %G: the value as a float64. Debug only.
func (self Fixed) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v':
		if state.Flag('#') {
			fmt.Fprintf(state, "fixmath.FromRaw(%d)", self.raw)
			return
		}
		if state.Flag('+') {
			fmt.Fprintf(state, "%s (raw %d)", self.String(), self.raw)
			return
		}
		fallthrough
	case 's':
		fmt.Fprintf(state, rebuildVerb(state, 's'), self.String())
	case 'd', 'x', 'X', 'o', 'b':
		fmt.Fprintf(state, rebuildVerb(state, verb), self.raw)
	case 'f', 'F', 'e', 'E', 'g', 'G':
		fmt.Fprintf(state, rebuildVerb(state, verb), self.ToFloat64())
	default:
		fmt.Fprintf(state, "%%!%c(fixmath.Fixed=%s)", verb, self.String())
	}
}

// Rebuilds the format directive with all the flags, width and
// precision that the state carries, but with the given verb.
func rebuildVerb(state fmt.State, verb rune) string {
	var directive strings.Builder
	directive.WriteByte('%')
	for _, flag := range "+- #0" {
		if state.Flag(int(flag)) { directive.WriteRune(flag) }
	}
	if width, ok := state.Width(); ok {
		directive.WriteString(strconv.Itoa(width))
	}
	if prec, ok := state.Precision(); ok {
		directive.WriteByte('.')
		directive.WriteString(strconv.Itoa(prec))
	}
	directive.WriteRune(verb)
	return directive.String()
}
