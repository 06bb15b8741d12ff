package fixmath

//go:generate go run ./cmd/fixgen -scale 1000 -o trig_constants.go

// Number of raw units per logical unit. All values share this scale.
//
// Changing the scale requires regenerating trig_constants.go, which
// holds Pi and the polynomial coefficients derived for this value.
const Scale = 1000

// Minimum and maximum constants.
const (
	MaxRaw int32 = +0x7FFFFFFF
	MinRaw int32 = -0x7FFFFFFF - 1
	MaxInt int = int(MaxRaw) / Scale
	MinInt int = int(MinRaw) / Scale
	Epsilon float64 = 1.0 / Scale
	MaxFloat64 float64 = float64(MaxRaw) / Scale
	MinFloat64 float64 = float64(MinRaw) / Scale
)

var (
	Zero = Fixed{}
	One = Fixed{raw: Scale}
	Half = Fixed{raw: Scale / 2}
	MaxFixed = Fixed{raw: MaxRaw}
	MinFixed = Fixed{raw: MinRaw}
)
