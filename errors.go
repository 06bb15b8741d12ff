package fixmath

import "errors"
import "strconv"

// Sentinel errors. Every failure reported by this package wraps
// exactly one of them, so they can be matched with [errors.Is].
var (
	ErrOverflow = errors.New("fixmath: result out of representable range")
	ErrDivideByZero = errors.New("fixmath: division by zero")
	ErrDomain = errors.New("fixmath: argument out of domain")
)

// Error describes a failed operation. Raw holds the offending
// intermediate value when there's one (the widened result for
// overflows, the argument for domain errors), and zero otherwise.
type Error struct {
	Op  string
	Raw int64
	Err error
}

func (self *Error) Error() string {
	switch self.Err {
	case ErrOverflow:
		return "fixmath: " + self.Op + ": raw value " + strconv.FormatInt(self.Raw, 10) + " is out of representable range"
	case ErrDomain:
		return "fixmath: " + self.Op + ": raw value " + strconv.FormatInt(self.Raw, 10) + " is out of domain"
	default:
		return "fixmath: " + self.Op + ": " + self.Err.Error()
	}
}

func (self *Error) Unwrap() error { return self.Err }

// Converts a panic raised by this package back into an error.
// It must be called directly by a deferred statement:
//   defer fixmath.Recover(&err)
// Panics that don't come from fixmath are re-raised untouched.
func Recover(err *error) {
	r := recover()
	if r == nil { return }
	if fe, ok := r.(*Error); ok {
		*err = fe
		return
	}
	panic(r)
}

func overflow(op string, raw int64) *Error {
	return &Error{Op: op, Raw: raw, Err: ErrOverflow}
}

// Narrows a widened intermediate back to a Fixed, or reports
// the overflow.
func narrow(op string, raw int64) (Fixed, error) {
	if raw > int64(MaxRaw) || raw < int64(MinRaw) {
		return Zero, overflow(op, raw)
	}
	return Fixed{raw: int32(raw)}, nil
}

func must(value Fixed, err error) Fixed {
	if err != nil { panic(err) }
	return value
}
