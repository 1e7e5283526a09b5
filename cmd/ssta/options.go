package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// defaultTopN is the path count when -p carries no number and the endpoint
// count when -n is absent.
const defaultTopN = 5

// errUsage aborts option handling and maps to the usage text + exit 1.
var errUsage = errors.New("usage")

// options is the parsed command line.
type options struct {
	dlib  string
	bench string

	lat         bool
	correlation bool
	paths       bool
	pathCount   int
	sensitivity bool
	topN        int

	quiet   bool
	verbose bool
}

// parseOptions walks the argument list by hand: the grammar is tiny and
// "-p [N]" takes an optional count, which the flag package cannot model.
func parseOptions(args []string) (*options, error) {
	opt := &options{pathCount: defaultTopN, topN: defaultTopN}

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-h", "--help":
			return nil, errUsage

		case "-d", "--dlib":
			v, next, err := argValue(args, i)
			if err != nil {
				return nil, err
			}
			opt.dlib, i = v, next

		case "-b", "--bench":
			v, next, err := argValue(args, i)
			if err != nil {
				return nil, err
			}
			opt.bench, i = v, next

		case "-l", "--lat":
			opt.lat = true

		case "-c", "--correlation":
			opt.correlation = true

		case "-p", "--path":
			opt.paths = true
			if n, ok := optionalCount(args, i); ok {
				opt.pathCount = n
				i++
			}

		case "-s", "--sensitivity":
			opt.sensitivity = true

		case "-n":
			v, next, err := argValue(args, i)
			if err != nil {
				return nil, err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return nil, errUsage
			}
			opt.topN, i = n, next

		case "-q", "--quiet":
			opt.quiet = true

		case "-v", "--verbose":
			opt.verbose = true

		default:
			return nil, errUsage
		}
	}

	return opt, nil
}

// argValue returns the mandatory value following args[i].
func argValue(args []string, i int) (string, int, error) {
	if i+1 >= len(args) {
		return "", i, errUsage
	}

	return args[i+1], i + 1, nil
}

// optionalCount peeks at args[i+1] for a non-negative integer.
func optionalCount(args []string, i int) (int, bool) {
	if i+1 >= len(args) {
		return 0, false
	}
	n, err := strconv.Atoi(args[i+1])
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// check validates the required options, writing one line per miss — the
// historical behavior the wrapper scripts expect.
func (opt *options) check(stderr io.Writer) error {
	missing := false
	if opt.dlib == "" {
		fmt.Fprintln(stderr, "error: please specify `-d' properly")
		missing = true
	}
	if opt.bench == "" {
		fmt.Fprintln(stderr, "error: please specify `-b' properly")
		missing = true
	}
	if missing {
		return errConfig
	}

	return nil
}

// errConfig marks a missing required option; it is reported by check
// itself, so the top level only maps it to the exit code.
var errConfig = errors.New("configuration")

// usage prints the option summary.
func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: ssta")
	fmt.Fprintln(w, " -d, --dlib         specifies .dlib file")
	fmt.Fprintln(w, " -b, --bench        specifies .bench file")
	fmt.Fprintln(w, " -l, --lat          prints all LAT data")
	fmt.Fprintln(w, " -c, --correlation  prints correlation matrix of LAT")
	fmt.Fprintln(w, " -p, --path [N]     prints top-N critical paths (default 5)")
	fmt.Fprintln(w, " -s, --sensitivity  prints sensitivity report")
	fmt.Fprintln(w, " -n N               endpoint count for sensitivity (default 5)")
	fmt.Fprintln(w, " -q, --quiet        suppresses the banner")
	fmt.Fprintln(w, " -v, --verbose      enables diagnostic logging")
	fmt.Fprintln(w, " -h, --help         gives this help")
}
