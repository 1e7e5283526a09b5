// Command ssta runs statistical static timing analysis over a gate
// library (.dlib) and a structural netlist (.bench), reporting per-signal
// arrival statistics, correlations, critical paths, and gate-delay
// sensitivities.
//
// Usage:
//
//	ssta -d lib.dlib -b circuit.bench [-l] [-c] [-p [N]] [-s] [-n N]
//
// Exit codes: 0 success, 1 handled error, 2 unexpected internal error,
// 3 unknown panic.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
