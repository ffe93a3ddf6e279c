package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/clauselogic/singlehead/pkg/parser"
	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
)

// testCase is one `CASE "label" EXPECT {TRUE|FALSE|CHECK}` paragraph of a
// test script.
type testCase struct {
	label   string
	expect  *bool // nil when check is true
	check   bool
	clauses []string
}

// parseTestScript parses the textual test-script format: one case per
// paragraph, started by a CASE line, followed by clause lines up to the
// next CASE or end of input.
func parseTestScript(text string) ([]testCase, error) {
	var cases []testCase
	var cur *testCase
	var errs *multierror.Error

	for i, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "CASE") {
			if cur != nil {
				cases = append(cases, *cur)
			}
			label, expect, check, err := parseCaseHeader(line)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("line %d: %w", i+1, err))
				cur = nil
				continue
			}
			cur = &testCase{label: label, expect: expect, check: check}
			continue
		}
		if cur == nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: clause %q outside any CASE", i+1, line))
			continue
		}
		cur.clauses = append(cur.clauses, line)
	}
	if cur != nil {
		cases = append(cases, *cur)
	}
	return cases, errs.ErrorOrNil()
}

// parseCaseHeader parses `CASE "label" EXPECT {TRUE|FALSE|CHECK}`.
func parseCaseHeader(line string) (label string, expect *bool, check bool, err error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "CASE"))
	if !strings.HasPrefix(rest, `"`) {
		return "", nil, false, fmt.Errorf("expected quoted label after CASE in %q", line)
	}
	rest = rest[1:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", nil, false, fmt.Errorf("unterminated label in %q", line)
	}
	label = rest[:end]
	rest = strings.TrimSpace(rest[end+1:])

	verb, arg, found := strings.Cut(rest, " ")
	if !found || verb != "EXPECT" {
		return "", nil, false, fmt.Errorf("expected EXPECT TRUE|FALSE|CHECK in %q", line)
	}
	switch strings.TrimSpace(arg) {
	case "TRUE":
		v := true
		return label, &v, false, nil
	case "FALSE":
		v := false
		return label, &v, false, nil
	case "CHECK":
		return label, nil, true, nil
	default:
		return "", nil, false, fmt.Errorf("unknown EXPECT value in %q", line)
	}
}

// runTestScript reads path, parses it as a test script, and runs every
// case in order, printing PASSED/FAILED for each. The process exit code
// is 0 as long as the script itself parsed — test failures are logical
// outcomes, not errors — and non-zero only if the file cannot be read or
// the script is malformed.
func runTestScript(path string, ui cli.Ui, log hclog.Logger) int {
	data, err := os.ReadFile(path)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	cases, err := parseTestScript(string(data))
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	for _, tc := range cases {
		f, err := parser.Formula(tc.clauses)
		if err != nil {
			ui.Error(fmt.Sprintf("case %q: %s", tc.label, err))
			return 1
		}
		raw := strings.Join(tc.clauses, ", ")
		if tc.check {
			analyzeCheck(ui, log, tc.label, raw, f)
			continue
		}
		analyze(ui, log, tc.label, raw, f, tc.expect)
	}
	return 0
}
