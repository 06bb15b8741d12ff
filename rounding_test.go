package fixmath

import "errors"
import "testing"

func TestFloorCeilFrac(t *testing.T) {
	tests := []struct {
		in    int32
		floor int32
		ceil  int32
		frac  int32
	}{
		{1500, 1000, 2000, 500}, {-1500, -2000, -1000, 500},
		{2000, 2000, 2000, 0}, {-2000, -2000, -2000, 0},
		{-1, -1000, 0, 999}, {1, 0, 1000, 1}, {0, 0, 0, 0},
		{MaxRaw - 1000, 2147482000, 2147483000, 647},
	}

	for i, test := range tests {
		value := FromRaw(test.in)
		if got := value.Floor(); got.Raw() != test.floor {
			t.Fatalf("test #%d: Floor(%s) expected raw %d, got %d", i, value, test.floor, got.Raw())
		}
		if got := value.Ceil(); got.Raw() != test.ceil {
			t.Fatalf("test #%d: Ceil(%s) expected raw %d, got %d", i, value, test.ceil, got.Raw())
		}
		if got := value.Frac(); got.Raw() != test.frac {
			t.Fatalf("test #%d: Frac(%s) expected raw %d, got %d", i, value, test.frac, got.Raw())
		}
		if value.Floor().Add(value.Frac()) != value {
			t.Fatalf("test #%d: Floor + Frac != value for %s", i, value)
		}
	}

	if got := MinFixed.Frac(); got.Raw() != 352 {
		t.Fatalf("Frac(MinFixed): expected raw 352, got %d", got.Raw())
	}
	if got := MaxFixed.Floor(); got.Raw() != 2147483000 {
		t.Fatalf("Floor(MaxFixed): expected raw 2147483000, got %d", got.Raw())
	}

	expectOverflow := func(name string, fn func() Fixed) {
		var err error
		func() {
			defer Recover(&err)
			fn()
		}()
		if !errors.Is(err, ErrOverflow) {
			t.Fatalf("%s: expected overflow, got %v", name, err)
		}
	}
	expectOverflow("Floor(MinFixed)", MinFixed.Floor)
	expectOverflow("Ceil(MaxFixed)", MaxFixed.Ceil)
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		step int32
		in   int32
		up   int32
		down int32
	}{
		{250, 1100, 1000, 1000}, {250, 1125, 1250, 1000}, {250, 1200, 1250, 1250},
		{250, -1125, -1000, -1250}, {250, -1100, -1000, -1000}, {250, 1250, 1250, 1250},
		{3000, 4000, 3000, 3000}, {3000, 5000, 6000, 6000}, {3000, -4500, -3000, -6000},
		{1, 12345, 12345, 12345}, {2, 7, 8, 6}, {5, 62, 60, 60}, {5, 63, 65, 65},
	}

	for i, test := range tests {
		value, step := FromRaw(test.in), FromRaw(test.step)
		if got := value.QuantizeUp(step); got.Raw() != test.up {
			t.Fatalf("test #%d: %d.QuantizeUp(%d) expected %d, got %d", i, test.in, test.step, test.up, got.Raw())
		}
		if got := value.QuantizeDown(step); got.Raw() != test.down {
			t.Fatalf("test #%d: %d.QuantizeDown(%d) expected %d, got %d", i, test.in, test.step, test.down, got.Raw())
		}
	}

	if _, err := quantize("QuantizeUp", One, Zero, true); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected domain error for a zero step, got %v", err)
	}
	if _, err := quantize("QuantizeUp", One, One.Neg(), true); !errors.Is(err, ErrDomain) {
		t.Fatalf("expected domain error for a negative step, got %v", err)
	}
	if _, err := quantize("QuantizeUp", MaxFixed, FromInt(2000), true); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
}
