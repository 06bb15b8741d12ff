// Package accuracy measures how far the fixmath approximations
// drift from their float64 counterparts over ranges of inputs.
package accuracy

import "context"
import "errors"
import "fmt"
import "math"

import "golang.org/x/sync/errgroup"

import "github.com/lockstepkit/fixmath"

// Functions that can be swept.
const (
	FuncSin = "sin"
	FuncCos = "cos"
	FuncAtan = "atan"
	FuncAtan2 = "atan2" // sweeps both axes over the same range
	FuncSqrt = "sqrt"
	FuncPythagorean = "pythagorean" // sin^2 + cos^2 against One
)

// Inputs are checked every this many samples for cancellation.
const cancelCheckInterval = 4096

var ErrInvalidSweep = errors.New("accuracy: invalid sweep")

// A Sweep evaluates Func for every input in [From, To], advancing
// Step raw units at a time. Errors are measured in raw units.
type Sweep struct {
	Func      string        `yaml:"func"`
	From      fixmath.Fixed `yaml:"from"`
	To        fixmath.Fixed `yaml:"to"`
	Step      int32         `yaml:"step"`
	Tolerance float64       `yaml:"tolerance"`
}

// The result of a [Sweep]. For atan2, WorstInput is the y
// coordinate and WorstX the x coordinate.
type Report struct {
	Func       string
	Samples    int
	MaxError   float64
	WorstInput fixmath.Fixed
	WorstX     fixmath.Fixed
	Failed     bool
}

// Returns an error wrapping [ErrInvalidSweep] if the sweep can't
// be evaluated.
func (self Sweep) Validate() error {
	switch self.Func {
	case FuncSin, FuncCos, FuncAtan, FuncAtan2, FuncPythagorean:
	case FuncSqrt:
		if self.From.Sign() < 0 {
			return fmt.Errorf("%w: sqrt sweep starts at negative value %s", ErrInvalidSweep, self.From)
		}
	default:
		return fmt.Errorf("%w: unknown function %q", ErrInvalidSweep, self.Func)
	}
	if self.Step <= 0 {
		return fmt.Errorf("%w: %s step must be positive, got %d", ErrInvalidSweep, self.Func, self.Step)
	}
	if self.To.Less(self.From) {
		return fmt.Errorf("%w: %s range [%s, %s] is reversed", ErrInvalidSweep, self.Func, self.From, self.To)
	}
	if self.Tolerance < 0 {
		return fmt.Errorf("%w: %s tolerance is negative", ErrInvalidSweep, self.Func)
	}
	return nil
}

// Evaluates the sweeps concurrently, with at most limit of them
// running at once (no limit if limit <= 0). Reports are returned
// in the same order as the sweeps. Sweeps failing their tolerance
// are not an error; check [Report.Failed].
func Run(ctx context.Context, sweeps []Sweep, limit int) ([]Report, error) {
	for _, sweep := range sweeps {
		if err := sweep.Validate(); err != nil { return nil, err }
	}

	reports := make([]Report, len(sweeps))
	group, ctx := errgroup.WithContext(ctx)
	if limit > 0 { group.SetLimit(limit) }
	for i, sweep := range sweeps {
		i, sweep := i, sweep
		group.Go(func() error {
			report, err := evaluate(ctx, sweep)
			reports[i] = report
			return err
		})
	}
	if err := group.Wait(); err != nil { return nil, err }
	return reports, nil
}

func evaluate(ctx context.Context, sweep Sweep) (Report, error) {
	report := Report{ Func: sweep.Func }
	record := func(err float64, input, x fixmath.Fixed) {
		report.Samples += 1
		if err > report.MaxError {
			report.MaxError = err
			report.WorstInput, report.WorstX = input, x
		}
	}

	var loopErr error
	if sweep.Func == FuncAtan2 {
		loopErr = forEach(ctx, sweep, func(y fixmath.Fixed) error {
			return forEach(ctx, sweep, func(x fixmath.Fixed) error {
				if x.IsZero() && y.IsZero() { return nil } // undefined angle
				want := math.Atan2(y.ToFloat64(), x.ToFloat64())
				record(rawError(fixmath.Atan2(y, x), want), y, x)
				return nil
			})
		})
	} else {
		fn := scalarFuncs[sweep.Func]
		loopErr = forEach(ctx, sweep, func(input fixmath.Fixed) error {
			got, want := fn(input)
			record(rawError(got, want), input, fixmath.Zero)
			return nil
		})
	}

	report.Failed = report.MaxError > sweep.Tolerance
	return report, loopErr
}

var scalarFuncs = map[string]func(fixmath.Fixed) (fixmath.Fixed, float64){
	FuncSin: func(x fixmath.Fixed) (fixmath.Fixed, float64) {
		return fixmath.Sin(x), math.Sin(x.ToFloat64())
	},
	FuncCos: func(x fixmath.Fixed) (fixmath.Fixed, float64) {
		return fixmath.Cos(x), math.Cos(x.ToFloat64())
	},
	FuncAtan: func(x fixmath.Fixed) (fixmath.Fixed, float64) {
		return fixmath.Atan(x), math.Atan(x.ToFloat64())
	},
	FuncSqrt: func(x fixmath.Fixed) (fixmath.Fixed, float64) {
		return fixmath.Sqrt(x), math.Sqrt(x.ToFloat64())
	},
	FuncPythagorean: func(x fixmath.Fixed) (fixmath.Fixed, float64) {
		sin, cos := fixmath.Sin(x), fixmath.Cos(x)
		return fixmath.Square(sin).Add(fixmath.Square(cos)), 1
	},
}

// Calls fn for every input of the sweep range, stopping early if
// the context is cancelled.
func forEach(ctx context.Context, sweep Sweep, fn func(fixmath.Fixed) error) error {
	count := 0
	for raw := int64(sweep.From.Raw()); raw <= int64(sweep.To.Raw()); raw += int64(sweep.Step) {
		count += 1
		if count % cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil { return err }
		}
		if err := fn(fixmath.FromRaw(int32(raw))); err != nil { return err }
	}
	return ctx.Err()
}

// Returns the distance between got and want, in raw units.
func rawError(got fixmath.Fixed, want float64) float64 {
	return math.Abs(float64(got.Raw()) - want * fixmath.Scale)
}
