package geom

import "image"

import "github.com/lockstepkit/fixmath"

// A pair of [Vec2] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle. The behavior for malformed rectangles
// is undefined.
type Rect struct {
	Min Vec2
	Max Vec2
}

// Creates a rect from a set of four fixed point values.
func R(minX, minY, maxX, maxY fixmath.Fixed) Rect {
	return Rect{
		Min: Vec2{ X: minX, Y: minY },
		Max: Vec2{ X: maxX, Y: maxY },
	}
}

// Creates a rect from a set of four integers.
func IntsToRect(minX, minY, maxX, maxY int) Rect {
	return Rect{ Min: IntsToVec(minX, minY), Max: IntsToVec(maxX, maxY) }
}

// Creates a rect from an [image.Rectangle].
func FromImageRect(rect image.Rectangle) Rect {
	return IntsToRect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
}

// Converts the rect coordinates to ints and returns them as
// an [image.Rectangle]. Min is floored and Max is ceiled, so
// the returned rectangle always contains the original one.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(
		self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(),
		self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil(),
	)
}

// Returns the width of the rect.
func (self Rect) Width() fixmath.Fixed {
	return self.Max.X.Sub(self.Min.X)
}

// Returns the height of the rect.
func (self Rect) Height() fixmath.Fixed {
	return self.Max.Y.Sub(self.Min.Y)
}

// Returns whether the rect is empty or not.
func (self Rect) Empty() bool {
	return self.Min.X.GreaterOrEqual(self.Max.X) || self.Min.Y.GreaterOrEqual(self.Max.Y)
}

// Returns whether the rect contains the given point or not.
//
// Remember that point == Rect.Min is included, but point == Rect.Max
// is not.
func (self Rect) Contains(point Vec2) bool {
	return point.In(self)
}

// Returns the center of the rect, truncated toward Min.
func (self Rect) Center() Vec2 {
	return self.Min.Add(Vec2{ X: self.Width().DivInt(2), Y: self.Height().DivInt(2) })
}

// Returns the result of translating the rect by the given offset.
func (self Rect) Translate(offset Vec2) Rect {
	return Rect{ Min: self.Min.Add(offset), Max: self.Max.Add(offset) }
}

// Returns the largest rect contained by both rects. If the
// two rects don't overlap, the zero rect is returned.
func (self Rect) Intersect(other Rect) Rect {
	self.Min.X = fixmath.Max(self.Min.X, other.Min.X)
	self.Min.Y = fixmath.Max(self.Min.Y, other.Min.Y)
	self.Max.X = fixmath.Min(self.Max.X, other.Max.X)
	self.Max.Y = fixmath.Min(self.Max.Y, other.Max.Y)
	if self.Empty() { return Rect{} }
	return self
}

// Returns the smallest rect that contains both rects. Empty
// rects are ignored.
func (self Rect) Union(other Rect) Rect {
	if self.Empty() { return other }
	if other.Empty() { return self }
	self.Min.X = fixmath.Min(self.Min.X, other.Min.X)
	self.Min.Y = fixmath.Min(self.Min.Y, other.Min.Y)
	self.Max.X = fixmath.Max(self.Max.X, other.Max.X)
	self.Max.Y = fixmath.Max(self.Max.Y, other.Max.Y)
	return self
}

// Returns a textual representation of the rect (e.g.: "(0, 0)-(1.5, 8.5)").
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}
