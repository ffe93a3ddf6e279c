// Command reconstruct is the CLI surface of the single-head equivalence
// engine: it analyzes a clause formula given on the command line, or
// drives a labeled test script, printing the simplified formula,
// whether it is already single-head, and — if one exists — a
// constructed single-head G.
package main

import (
	"os"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

const usage = `usage:
	reconstruct -h
	reconstruct -f CLAUSE CLAUSE ...
	reconstruct -t FILE
	reconstruct FILE

	clause: ab->c | ab=c | -a-bc (= not a or not b or c) | ()
	a bare clause may hold at most one positive literal.
	&name; wraps a multi-character variable name; "-" negates a literal.

	-v, -vv     raise progress verbosity (levels 1 and 2 of the nested trace)
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	ui := &cli.BasicUi{Reader: os.Stdin, Writer: stdout, ErrorWriter: stderr}

	args, verbosity := extractVerbosity(args)
	log := hclog.New(&hclog.LoggerOptions{
		Name:   "reconstruct",
		Level:  verbosityLevel(verbosity),
		Output: stderr,
	})

	if len(args) == 0 || args[0] == "-h" {
		if len(args) == 0 {
			ui.Output("no argument")
		}
		ui.Output(usage)
		return 0
	}

	switch args[0] {
	case "-f":
		if _, err := analyzeCmdline(args[1:], ui, log); err != nil {
			ui.Error(err.Error())
			return 1
		}
		return 0
	case "-t":
		if len(args) < 2 {
			ui.Error("missing test file")
			return 1
		}
		return runTestScript(args[1], ui, log)
	default:
		return runTestScript(args[0], ui, log)
	}
}

// extractVerbosity pulls every -v/-vv/-vvv-style flag out of args
// (anywhere in the list) and returns the remaining args plus the
// verbosity count.
func extractVerbosity(args []string) ([]string, int) {
	var rest []string
	v := 0
	for _, a := range args {
		if strings.HasPrefix(a, "-v") && strings.Trim(a[1:], "v") == "" {
			v += len(a) - 1
			continue
		}
		rest = append(rest, a)
	}
	return rest, v
}

func verbosityLevel(v int) hclog.Level {
	switch {
	case v >= 2:
		return hclog.Trace
	case v == 1:
		return hclog.Debug
	default:
		return hclog.Info
	}
}
