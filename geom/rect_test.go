package geom

import "image"
import "testing"

import "github.com/lockstepkit/fixmath"

func TestRectContains(t *testing.T) {
	rect := IntsToRect(0, 0, 10, 10)
	tests := []struct {
		point  Vec2
		inside bool
	}{
		{IntsToVec(0, 0), true}, {IntsToVec(5, 5), true},
		{raws(9999, 9999), true}, {IntsToVec(10, 5), false},
		{IntsToVec(5, 10), false}, {raws(-1, 0), false},
	}
	for i, test := range tests {
		if rect.Contains(test.point) != test.inside {
			t.Fatalf("test #%d: %s in %s expected %t", i, test.point, rect, test.inside)
		}
	}

	if !IntsToRect(1, 1, 1, 5).Empty() || !IntsToRect(1, 1, 5, 0).Empty() || rect.Empty() {
		t.Fatalf("unexpected Empty results")
	}
	if rect.Width() != fixmath.FromInt(10) || IntsToRect(0, -2, 1, 3).Height() != fixmath.FromInt(5) {
		t.Fatalf("unexpected size")
	}
}

func TestRectOps(t *testing.T) {
	if got := IntsToRect(0, 0, 3, 3).Center(); got != raws(1500, 1500) {
		t.Fatalf("expected (1.5, 1.5), got %s", got)
	}
	if got := IntsToRect(-1, -1, 0, 0).Center(); got != raws(-500, -500) {
		t.Fatalf("expected (-0.5, -0.5), got %s", got)
	}
	if got := IntsToRect(0, 0, 1, 1).Translate(IntsToVec(2, -2)); got != IntsToRect(2, -2, 3, -1) {
		t.Fatalf("unexpected translation %s", got)
	}

	a, b := IntsToRect(0, 0, 10, 10), IntsToRect(5, 5, 20, 20)
	if got := a.Intersect(b); got != IntsToRect(5, 5, 10, 10) {
		t.Fatalf("unexpected intersection %s", got)
	}
	if got := a.Intersect(IntsToRect(10, 0, 20, 10)); got != (Rect{}) {
		t.Fatalf("expected empty intersection, got %s", got)
	}
	if got := a.Union(b); got != IntsToRect(0, 0, 20, 20) {
		t.Fatalf("unexpected union %s", got)
	}
	if got := a.Union(Rect{}); got != a {
		t.Fatalf("union with an empty rect must be a no-op, got %s", got)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Fatalf("union with an empty rect must be a no-op, got %s", got)
	}
}

func TestRectConversions(t *testing.T) {
	rect := R(fixmath.FromRaw(500), fixmath.FromRaw(-500), fixmath.FromRaw(2500), fixmath.FromRaw(3001))
	if got := rect.ImageRect(); got != image.Rect(0, -1, 3, 4) {
		t.Fatalf("expected the int rect to contain the fixed one, got %v", got)
	}
	imgRect := image.Rect(-4, 2, 8, 9)
	if got := FromImageRect(imgRect).ImageRect(); got != imgRect {
		t.Fatalf("expected %v, got %v", imgRect, got)
	}

	rect = R(fixmath.Zero, fixmath.Zero, fixmath.MustParse("1.5"), fixmath.MustParse("8.5"))
	if rect.String() != "(0, 0)-(1.5, 8.5)" {
		t.Fatalf("expected (0, 0)-(1.5, 8.5), got %s", rect.String())
	}
}
