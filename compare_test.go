package fixmath

import "slices"
import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b int32
		cmp  int
	}{
		{0, 0, 0}, {1, 0, 1}, {0, 1, -1}, {-1, 0, -1},
		{MaxRaw, MinRaw, 1}, {MinRaw, MaxRaw, -1}, {-5, -5, 0},
	}

	for i, test := range tests {
		a, b := FromRaw(test.a), FromRaw(test.b)
		if a.Cmp(b) != test.cmp || Compare(a, b) != test.cmp {
			t.Fatalf("test #%d: %d cmp %d expected %d, got %d", i, test.a, test.b, test.cmp, a.Cmp(b))
		}
		if a.Eq(b) != (test.cmp == 0) || (a == b) != (test.cmp == 0) {
			t.Fatalf("test #%d: equality mismatch", i)
		}
		if a.Less(b) != (test.cmp < 0) || a.Greater(b) != (test.cmp > 0) {
			t.Fatalf("test #%d: strict order mismatch", i)
		}
		if a.LessOrEqual(b) != (test.cmp <= 0) || a.GreaterOrEqual(b) != (test.cmp >= 0) {
			t.Fatalf("test #%d: order mismatch", i)
		}
	}
}

func TestSortAndMapKeys(t *testing.T) {
	values := []Fixed{Pi, One.Neg(), Zero, MustParse("0.001"), MinFixed, MaxFixed}
	slices.SortFunc(values, Compare)
	expected := []Fixed{MinFixed, One.Neg(), Zero, FromRaw(1), Pi, MaxFixed}
	if !slices.Equal(values, expected) {
		t.Fatalf("expected %v, got %v", expected, values)
	}

	seen := make(map[Fixed]int)
	seen[FromInt(2)] += 1
	seen[One.MulInt(2)] += 1
	if len(seen) != 1 || seen[MustParse("2")] != 2 {
		t.Fatalf("equal values must map to the same key: %v", seen)
	}
}
