package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ssta/circuit"
	"github.com/katalvlaran/ssta/netlist"
	"github.com/katalvlaran/ssta/results"
	"github.com/katalvlaran/ssta/rv"
)

// version is the tool version printed in the startup banner.
const version = "0.1.0"

// Exit codes, stable for wrapper scripts.
const (
	exitOK       = 0
	exitError    = 1
	exitInternal = 2
	exitUnknown  = 3
)

// run is the whole program behind main: parse options, load inputs, build
// the circuit, emit the requested reports in fixed order. It returns the
// process exit code and never panics.
func run(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				fmt.Fprintln(stderr, err.Error())
				code = exitInternal
				return
			}
			fmt.Fprintln(stderr, "unknown error")
			code = exitUnknown
		}
	}()

	opt, err := parseOptions(args)
	if err != nil {
		usage(stderr)
		return exitError
	}

	if !opt.quiet {
		fmt.Fprintf(stderr, "ssta %s (%s)\n", version, time.Now().Format(time.ANSIC))
	}

	if err = opt.check(stderr); err != nil {
		return exitError
	}

	if err = analyze(opt, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err.Error())
		return exitError
	}

	if !opt.quiet {
		fmt.Fprintln(stderr, "OK")
	}

	return exitOK
}

// analyze performs the parse → build → report pipeline.
func analyze(opt *options, stdout, stderr io.Writer) error {
	log := zerolog.Nop()
	if opt.verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.TimeOnly, NoColor: true}).
			With().Timestamp().Logger()
	}

	space := rv.NewSpace()

	start := time.Now()
	gates, err := netlist.LoadDlib(opt.dlib, space)
	if err != nil {
		return err
	}
	log.Debug().Str("file", opt.dlib).Int("gates", len(gates)).
		Dur("took", time.Since(start)).Msg("dlib loaded")

	start = time.Now()
	bench, err := netlist.LoadBench(opt.bench, gates)
	if err != nil {
		return err
	}
	log.Debug().Str("file", opt.bench).
		Int("inputs", len(bench.Inputs)).
		Int("outputs", len(bench.Outputs)).
		Int("nets", len(bench.Lines)).
		Int("dffs", len(bench.DFFOutputs)).
		Dur("took", time.Since(start)).Msg("bench loaded")

	start = time.Now()
	graph, err := circuit.Build(space, gates, bench)
	if err != nil {
		return err
	}
	log.Debug().Int("signals", len(graph.SignalNames())).
		Int("instances", len(graph.InstanceNames())).
		Dur("took", time.Since(start)).Msg("circuit resolved")

	return report(opt, graph, stdout, log)
}

// report writes the requested blocks in deterministic order: LAT,
// correlation, critical paths, sensitivity.
func report(opt *options, graph *circuit.Graph, stdout io.Writer, log zerolog.Logger) error {
	if opt.lat {
		rows, err := results.LAT(graph)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(stdout); err != nil {
			return err
		}
		if err = results.WriteLAT(stdout, rows); err != nil {
			return err
		}
	}

	if opt.correlation {
		start := time.Now()
		c, err := results.Correlation(graph)
		if err != nil {
			return err
		}
		log.Debug().Int("signals", c.Len()).
			Dur("took", time.Since(start)).Msg("correlation matrix computed")
		if _, err = fmt.Fprintln(stdout); err != nil {
			return err
		}
		if err = results.WriteCorrelation(stdout, c); err != nil {
			return err
		}
	}

	if opt.paths {
		paths, err := results.CriticalPaths(graph, opt.pathCount)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(stdout); err != nil {
			return err
		}
		if err = results.WriteCriticalPaths(stdout, paths); err != nil {
			return err
		}
	}

	if opt.sensitivity {
		res, err := results.Sensitivity(graph, opt.topN)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(stdout); err != nil {
			return err
		}
		if err = results.WriteSensitivity(stdout, res); err != nil {
			return err
		}
	}

	return nil
}
