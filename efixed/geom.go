package efixed

import "golang.org/x/image/math/fixed"

import "github.com/lockstepkit/fixmath/geom"

// Converts the vector to a fixed.Point26_6, truncating each
// coordinate toward zero.
func ToPoint26_6(vec geom.Vec2) fixed.Point26_6 {
	return fixed.Point26_6{ X: ToInt26_6(vec.X), Y: ToInt26_6(vec.Y) }
}

// Converts a fixed.Point26_6 to a vector, truncating each
// coordinate toward zero.
func FromPoint26_6(point fixed.Point26_6) (geom.Vec2, error) {
	x, err := FromInt26_6(point.X)
	if err != nil { return geom.Vec2{}, err }
	y, err := FromInt26_6(point.Y)
	if err != nil { return geom.Vec2{}, err }
	return geom.V(x, y), nil
}

// Converts the rect to a fixed.Rectangle26_6. Unlike
// [geom.Rect.ImageRect], coordinates are truncated toward zero,
// so the result is not guaranteed to contain the original rect.
func ToRect26_6(rect geom.Rect) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{ Min: ToPoint26_6(rect.Min), Max: ToPoint26_6(rect.Max) }
}

// Converts a fixed.Rectangle26_6 to a rect.
func FromRect26_6(rect fixed.Rectangle26_6) (geom.Rect, error) {
	min, err := FromPoint26_6(rect.Min)
	if err != nil { return geom.Rect{}, err }
	max, err := FromPoint26_6(rect.Max)
	if err != nil { return geom.Rect{}, err }
	return geom.Rect{ Min: min, Max: max }, nil
}
