// efixed is a utility subpackage containing functions to convert
// [fixmath.Fixed] values to and from the binary fixed point types
// of [golang.org/x/image/math/fixed], which is what font rasterizers
// and vector tools in the x/image ecosystem expect.
//
// Fixed uses a decimal scale while the x/image types use 6 or 12
// fractional bits, so most conversions are inexact: they always
// truncate toward zero. Conversions toward fixmath return an error
// wrapping [fixmath.ErrOverflow] when the value is out of range.
package efixed
