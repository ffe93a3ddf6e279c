// Package clause implements literals, Horn clauses, and formulas over a
// small alphabet of propositional variables. Clauses are canonicalized
// into a sorted, comparable encoding rather than a prefixed-string
// representation, so that clause.Clause can be used directly as the
// element type of a github.com/hashicorp/go-set/v3 Set.
package clause

import (
	"sort"
)

// Literal is a signed propositional atom. Negated is true for a body
// literal (-v); false for a head literal (+v). Var is the interned
// variable token (a single letter/digit or an &name; multi-character
// name, without the surrounding decoration).
type Literal struct {
	Var     string
	Negated bool
}

// Pos returns the positive literal for v.
func Pos(v string) Literal { return Literal{Var: v, Negated: false} }

// Neg returns the negative literal for v.
func Neg(v string) Literal { return Literal{Var: v, Negated: true} }

// Complement returns the literal's opposite sign on the same variable.
func (l Literal) Complement() Literal {
	return Literal{Var: l.Var, Negated: !l.Negated}
}

// String renders a literal in the pretty textual form used by the parser
// and the CLI: "-v" for a negative literal, "v" for a positive one.
func (l Literal) String() string {
	if l.Negated {
		return "-" + l.Var
	}
	return l.Var
}

func sortedUnique(vs []string) []string {
	if len(vs) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

const bodySep = ","
