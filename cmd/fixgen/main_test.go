package main

import "bytes"
import "os"
import "testing"

func TestDerive(t *testing.T) {
	tests := []struct {
		scale  int64
		pi, twoPi, piOver2 int64
		c1, c2 int64
	}{
		{1000, 3142, 6283, 1571, 972, -192},
		{10000, 31416, 62832, 15708, 9724, -1919},
		{65536, 205887, 411775, 102944, 63727, -12580},
		{10, 31, 63, 16, 10, -2},
	}

	for i, test := range tests {
		consts, err := derive("fixmath", test.scale)
		if err != nil {
			t.Fatalf("test #%d: unexpected error: %v", i, err)
		}
		if consts.Pi != test.pi || consts.TwoPi != test.twoPi || consts.PiOver2 != test.piOver2 {
			t.Fatalf("test #%d: unexpected angle constants %+v", i, consts)
		}
		if consts.AtanC1 != test.c1 || consts.AtanC2 != test.c2 {
			t.Fatalf("test #%d: unexpected atan coefficients %+v", i, consts)
		}
	}

	for _, scale := range []int64{0, 1, -1000, 1 << 30} {
		if _, err := derive("fixmath", scale); err == nil {
			t.Fatalf("expected scale %d to be rejected", scale)
		}
	}
}

func TestCommittedFileIsUpToDate(t *testing.T) {
	consts, err := derive("fixmath", 1000)
	if err != nil { t.Fatal(err) }
	source, err := render(consts)
	if err != nil { t.Fatal(err) }

	committed, err := os.ReadFile("../../trig_constants.go")
	if err != nil { t.Fatal(err) }
	if !bytes.Equal(source, committed) {
		t.Fatalf("trig_constants.go is stale, run go generate. Expected:\n%s", source)
	}
}
