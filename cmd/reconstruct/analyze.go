package main

import (
	"fmt"
	"strings"

	"github.com/clauselogic/singlehead/pkg/clause"
	"github.com/clauselogic/singlehead/pkg/parser"
	"github.com/clauselogic/singlehead/pkg/reconstruct"
	"github.com/clauselogic/singlehead/pkg/resolution"
	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
)

// analyzeCmdline parses a `-f CLAUSE ...` argument list into one formula
// and analyzes it, with no expected outcome to compare against.
func analyzeCmdline(specs []string, ui cli.Ui, log hclog.Logger) (bool, error) {
	f, err := parser.Formula(specs)
	if err != nil {
		return false, err
	}
	analyze(ui, log, "cmdline formula", strings.Join(specs, " "), f, nil)
	return true, nil
}

// analyze runs one labeled formula through the engine and prints its
// result in a line-oriented report. expect is nil for an untested
// analysis, or a pointer to the expected TRUE/FALSE verdict for a normal
// test case. Check-only cases are reported by analyzeCheck instead.
func analyze(ui cli.Ui, log hclog.Logger, label, rawSource string, f clause.Formula, expect *bool) (passed bool) {
	ui.Output(fmt.Sprintf("## %s ##", label))
	ui.Output("formula: " + rawSource)

	simplified := clause.FromSet(resolution.Minimal(f.Detautologize().Set(), nil))
	log.Debug("clausal", "formula", f.String())
	ui.Output("simplified: " + simplified.String())
	ui.Output(fmt.Sprintf("single head: %t", simplified.IsSingleHead()))

	g, ok, stats := reconstruct.Reconstruct(f, reconstruct.Options{Logger: log})
	log.Info("stats",
		"iterations", stats.Iterations,
		"subiterations", stats.SubIterations,
		"maxsubiterations", stats.MaxSubIteration,
		"combinations", stats.Combinations,
		"notautology", stats.NoTautology,
		"equalp", stats.EqualPrecond,
		"comparisons", stats.Comparisons,
	)

	if !ok {
		ui.Output("not single-head equivalent")
		ui.Output("FALSE")
	} else {
		ui.Output("single-head form: " + g.String())
		ui.Output(fmt.Sprintf("single-head: %t", g.IsSingleHead()))
		ui.Output(fmt.Sprintf("equivalent: %t", resolution.Equivalent(g.Set(), simplified.Set())))
		ui.Output("TRUE")
	}

	if expect != nil {
		if ok == *expect {
			ui.Output("TEST PASSED")
			passed = true
		} else {
			ui.Output("*** TEST FAILED ***")
			passed = false
		}
	} else {
		passed = true
	}
	ui.Output("")
	return passed
}

// analyzeCheck prints the check-only report: simplification and the
// single-head test, with no reconstruction attempt.
func analyzeCheck(ui cli.Ui, log hclog.Logger, label, rawSource string, f clause.Formula) {
	ui.Output(fmt.Sprintf("## %s ##", label))
	ui.Output("formula: " + rawSource)
	simplified := clause.FromSet(resolution.Minimal(f.Detautologize().Set(), nil))
	ui.Output("clausal: " + f.String())
	ui.Output("simplified: " + simplified.String())
	ui.Output(fmt.Sprintf("single head: %t", simplified.IsSingleHead()))
	ui.Output("")
}
