package geom

import "image"

import "github.com/lockstepkit/fixmath"

// A pair of [fixmath.Fixed] coordinates. Used for positions,
// velocities and directions alike.
type Vec2 struct {
	X fixmath.Fixed
	Y fixmath.Fixed
}

// Creates a vector from a pair of fixed point values.
func V(x, y fixmath.Fixed) Vec2 {
	return Vec2{ X: x, Y: y }
}

// Creates a vector from a pair of ints.
func IntsToVec(x, y int) Vec2 {
	return Vec2{ X: fixmath.FromInt(x), Y: fixmath.FromInt(y) }
}

// Creates a vector from an [image.Point].
func FromImagePoint(point image.Point) Vec2 {
	return IntsToVec(point.X, point.Y)
}

// Creates a unit vector pointing in the given direction,
// in radians. The length is only approximately [fixmath.One].
func FromAngle(angle fixmath.Fixed) Vec2 {
	return Vec2{ X: fixmath.Cos(angle), Y: fixmath.Sin(angle) }
}

// Returns the result of adding the two vectors.
func (self Vec2) Add(other Vec2) Vec2 {
	self.X = self.X.Add(other.X)
	self.Y = self.Y.Add(other.Y)
	return self
}

// Returns the result of subtracting other from the vector.
func (self Vec2) Sub(other Vec2) Vec2 {
	self.X = self.X.Sub(other.X)
	self.Y = self.Y.Sub(other.Y)
	return self
}

func (self Vec2) Neg() Vec2 {
	return Vec2{ X: self.X.Neg(), Y: self.Y.Neg() }
}

// Returns the vector with both coordinates multiplied by factor.
func (self Vec2) Scale(factor fixmath.Fixed) Vec2 {
	return Vec2{ X: self.X.Mul(factor), Y: self.Y.Mul(factor) }
}

// Returns the vector with both coordinates multiplied by n.
func (self Vec2) MulInt(n int) Vec2 {
	return Vec2{ X: self.X.MulInt(n), Y: self.Y.MulInt(n) }
}

// Returns the vector with both coordinates divided by n.
// Panics if n is zero.
func (self Vec2) DivInt(n int) Vec2 {
	return Vec2{ X: self.X.DivInt(n), Y: self.Y.DivInt(n) }
}

// Returns the dot product of the two vectors.
func (self Vec2) Dot(other Vec2) fixmath.Fixed {
	return self.X.Mul(other.X).Add(self.Y.Mul(other.Y))
}

// Returns the z component of the 3D cross product of the two
// vectors. Positive when other is counter-clockwise from self.
func (self Vec2) Cross(other Vec2) fixmath.Fixed {
	return self.X.Mul(other.Y).Sub(self.Y.Mul(other.X))
}

// Returns the length of the vector. The squares are accumulated
// in 64 bits, so this works for any coordinates whose length fits
// in a Fixed.
func (self Vec2) Length() fixmath.Fixed {
	return fixmath.Magnitude(self.X, self.Y)
}

// Returns the distance between the two points.
func (self Vec2) Dist(other Vec2) fixmath.Fixed {
	return other.Sub(self).Length()
}

// Returns a vector with the same direction and a length of
// approximately [fixmath.One]. The zero vector stays zero.
func (self Vec2) Normalize() Vec2 {
	length := self.Length()
	if length.IsZero() { return self } // also covers raw lengths that truncate to zero
	return Vec2{ X: self.X.Div(length), Y: self.Y.Div(length) }
}

// Returns the angle of the vector in radians, in [-Pi, Pi].
func (self Vec2) Angle() fixmath.Fixed {
	return fixmath.Atan2(self.Y, self.X)
}

// Returns the vector rotated counter-clockwise by the given
// angle, in radians.
func (self Vec2) Rotate(angle fixmath.Fixed) Vec2 {
	cos, sin := fixmath.Cos(angle), fixmath.Sin(angle)
	return Vec2{
		X: self.X.Mul(cos).Sub(self.Y.Mul(sin)),
		Y: self.X.Mul(sin).Add(self.Y.Mul(cos)),
	}
}

// Returns whether the current point is inside the given [Rect].
func (self Vec2) In(rect Rect) bool {
	return self.X.GreaterOrEqual(rect.Min.X) && self.X.Less(rect.Max.X) &&
		self.Y.GreaterOrEqual(rect.Min.Y) && self.Y.Less(rect.Max.Y)
}

// Converts the vector coordinates to ints and returns
// them as an [image.Point] stdlib value. Coordinates are
// rounded to the nearest int, with ties away from zero.
func (self Vec2) ImagePoint() image.Point {
	return image.Pt(fixmath.RoundToInt(self.X), fixmath.RoundToInt(self.Y))
}

// Returns the vector coordinates as a pair of float64s.
// Only for debugging and rendering, never feed them back.
func (self Vec2) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Returns a textual representation of the vector (e.g.: "(2.5, -4)").
func (self Vec2) String() string {
	return "(" + self.X.String() + ", " + self.Y.String() + ")"
}
