// Command fixcheck sweeps the fixmath approximations over ranges
// of inputs, compares them with their float64 counterparts and
// prints the maximum errors found. It exits with status 1 if any
// sweep exceeds its tolerance.
//
// Usage:
//
//	fixcheck [-config sweeps.yaml] [-lang en] [-parallel n]
package main

import "context"
import "flag"
import "io"
import "log"
import "os"
import "os/signal"

import "golang.org/x/text/language"
import "golang.org/x/text/message"

import "github.com/lockstepkit/fixmath/internal/accuracy"

func main() {
	log.Default().SetFlags(log.Lshortfile)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code, err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		log.Fatalln(err)
	}
	os.Exit(code)
}

// Runs the checker and returns the process exit code.
func run(ctx context.Context, args []string, out io.Writer) (int, error) {
	flags := flag.NewFlagSet("fixcheck", flag.ContinueOnError)
	flags.SetOutput(out)
	configPath := flags.String("config", "", "YAML file with the sweeps to run (default: built-in sweeps)")
	lang := flags.String("lang", "en", "language used to format the report numbers")
	parallel := flags.Int("parallel", 0, "maximum number of concurrent sweeps (default: config value)")
	if err := flags.Parse(args); err != nil {
		return 2, nil
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		return 0, err
	}
	config, err := LoadConfig(*configPath)
	if err != nil {
		return 0, err
	}
	if *parallel > 0 { config.Parallel = *parallel }

	reports, err := accuracy.Run(ctx, config.Sweeps, config.Parallel)
	if err != nil {
		return 0, err
	}

	printer := message.NewPrinter(tag)
	printer.Fprintf(out, "%-12s %16s %12s %10s %10s  %s\n", "func", "range", "samples", "max err", "tolerance", "worst input")
	failures := 0
	for i, report := range reports {
		sweep := config.Sweeps[i]
		status := "ok"
		if report.Failed {
			status = "FAIL"
			failures += 1
		}
		worst := report.WorstInput.String()
		if report.Func == accuracy.FuncAtan2 {
			worst = "(" + report.WorstInput.String() + ", " + report.WorstX.String() + ")"
		}
		printer.Fprintf(out, "%-12s %16s %12d %10.3f %10.1f  %s %s\n",
			report.Func, "[" + sweep.From.String() + ", " + sweep.To.String() + "]",
			report.Samples, report.MaxError, sweep.Tolerance, worst, status)
	}
	printer.Fprintf(out, "%d of %d sweeps failed\n", failures, len(reports))

	if failures > 0 { return 1, nil }
	return 0, nil
}
