// Package parser implements the textual clause syntax accepted on the
// command line and in test scripts. It is the only part of the engine
// that touches the ad-hoc input grammar; everything downstream works on
// clause.Formula.
package parser

import (
	"fmt"
	"strings"

	"github.com/clauselogic/singlehead/pkg/clause"
	"github.com/hashicorp/go-multierror"
)

// ParseError reports a malformed clause, identified by its position in
// the submitted argument list.
type ParseError struct {
	Index int
	Text  string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("clause %d (%q): %s", e.Index, e.Text, e.Msg)
}

// Formula parses a whole clause submission — the argument list of
// `reconstruct -f CLAUSE CLAUSE ...`, or one test-script case's clause
// lines — into a single clause.Formula. Every malformed clause is
// collected before returning, via github.com/hashicorp/go-multierror,
// rather than stopping at the first error, since analysis is never
// attempted when any clause is malformed and the caller wants the full
// list of problems in one report.
func Formula(specs []string) (clause.Formula, error) {
	var result *multierror.Error
	clauses := make([]clause.Clause, 0, len(specs))
	for i, s := range specs {
		cs, err := Clause(s)
		if err != nil {
			result = multierror.Append(result, &ParseError{Index: i, Text: s, Msg: err.Error()})
			continue
		}
		clauses = append(clauses, cs...)
	}
	if result != nil {
		return clause.Formula{}, result.ErrorOrNil()
	}
	return clause.NewFormula(clauses...), nil
}

// Clause parses one clause specification in any of its four accepted
// forms: "()", "BODY->HEADS", "L=R", or a bare disjunctive clause.
// BODY->HEADS expands to one Horn clause per head variable.
func Clause(s string) ([]clause.Clause, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "()":
		return []clause.Clause{clause.Empty}, nil
	case strings.Contains(s, "="):
		return parseEquivalence(s)
	case strings.Contains(s, "->"):
		return parseImplication(s)
	default:
		c, err := parseDisjunctive(s)
		if err != nil {
			return nil, err
		}
		return []clause.Clause{c}, nil
	}
}

func parseEquivalence(s string) ([]clause.Clause, error) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("malformed equivalence %q", s)
	}
	forward, err := parseImplication(parts[0] + "->" + parts[1])
	if err != nil {
		return nil, err
	}
	backward, err := parseImplication(parts[1] + "->" + parts[0])
	if err != nil {
		return nil, err
	}
	return append(forward, backward...), nil
}

func parseImplication(s string) ([]clause.Clause, error) {
	parts := strings.SplitN(s, "->", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed implication %q", s)
	}
	bodyLits, err := literalSet(parts[0])
	if err != nil {
		return nil, err
	}
	headLits, err := literalSet(parts[1])
	if err != nil {
		return nil, err
	}

	var body []string
	for _, l := range bodyLits {
		body = append(body, l.Var)
	}

	if len(headLits) == 0 {
		return []clause.Clause{clause.Headless(body)}, nil
	}
	clauses := make([]clause.Clause, 0, len(headLits))
	for _, h := range headLits {
		if h.Negated {
			return nil, fmt.Errorf("negative literal %q not allowed as a head in %q", h, s)
		}
		clauses = append(clauses, clause.New(h.Var, body))
	}
	return clauses, nil
}

// parseDisjunctive parses a bare clause with no "->"/"=": a disjunction of
// literals, each an implicit positive literal unless prefixed with "-".
// A disjunctive clause carrying more than one positive literal is non-Horn
// and rejected as malformed input rather than given an arbitrary head.
func parseDisjunctive(s string) (clause.Clause, error) {
	lits, err := literalSet(s)
	if err != nil {
		return clause.Clause{}, err
	}
	var head string
	var hasHead bool
	var body []string
	for _, l := range lits {
		if l.Negated {
			body = append(body, l.Var)
			continue
		}
		if hasHead {
			return clause.Clause{}, fmt.Errorf("non-Horn clause %q: more than one positive literal", s)
		}
		head, hasHead = l.Var, true
	}
	if !hasHead {
		return clause.Headless(body), nil
	}
	return clause.New(head, body), nil
}

// literalSet tokenizes a BODY or HEADS (or bare-clause) string into its
// literals, handling single-character variables (ASCII letters and
// digits), &name; multi-character variables, and "-" negation prefixes.
// Any other character is reported as an error.
func literalSet(s string) ([]clause.Literal, error) {
	var lits []clause.Literal
	negated := false
	var name strings.Builder
	inName := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inName:
			if c == ';' {
				if name.Len() == 0 {
					return nil, fmt.Errorf("empty &...; variable in %q", s)
				}
				lits = append(lits, clause.Literal{Var: name.String(), Negated: negated})
				name.Reset()
				inName = false
				negated = false
			} else {
				name.WriteByte(c)
			}
		case c == '&':
			inName = true
		case c == '-':
			negated = true
		default:
			if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
				return nil, fmt.Errorf("unexpected character %q in %q", c, s)
			}
			lits = append(lits, clause.Literal{Var: string(c), Negated: negated})
			negated = false
		}
	}
	if inName {
		return nil, fmt.Errorf("unterminated &...; variable in %q", s)
	}
	return lits, nil
}
