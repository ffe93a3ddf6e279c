// Package resolution implements component B: binary resolution between
// two Horn clauses, minimality filtering of a clause set, the full
// resolution closure, and an equivalence oracle built on top of it
// (component G).
package resolution

import (
	"github.com/clauselogic/singlehead/pkg/clause"
	"github.com/hashicorp/go-set/v3"
)

// Resolve scans a and b for a complementary literal pair and returns the
// resolvent. Only the first complementary pair found is used: in the Horn
// setting (at most one positive literal per clause) this is the unique
// non-tautological resolvent when one exists. Returns ok == false when a
// and b share no complementary literal, or when the only resolvent would
// be a tautology.
func Resolve(a, b clause.Clause) (clause.Clause, bool) {
	for _, x := range a.Literals() {
		y := x.Complement()
		if !hasLiteral(b, y) {
			continue
		}
		r := combine(a, b, x, y)
		if r.IsTautology() {
			return clause.Clause{}, false
		}
		return r, true
	}
	return clause.Clause{}, false
}

func hasLiteral(c clause.Clause, l clause.Literal) bool {
	if !l.Negated {
		h, ok := c.Head()
		return ok && h == l.Var
	}
	for _, v := range c.Body() {
		if v == l.Var {
			return true
		}
	}
	return false
}

// combine builds (a \ {x}) ∪ (b \ {y}), where x ∈ a and y = complement(x) ∈ b.
func combine(a, b clause.Clause, x, y clause.Literal) clause.Clause {
	body := make([]string, 0, len(a.Body())+len(b.Body()))
	var head string
	var hasHead bool

	addFrom := func(c clause.Clause, skip clause.Literal) {
		if h, ok := c.Head(); ok && !(!skip.Negated && h == skip.Var) {
			head, hasHead = h, true
		}
		for _, v := range c.Body() {
			if skip.Negated && v == skip.Var {
				continue
			}
			body = append(body, v)
		}
	}
	addFrom(a, x)
	addFrom(b, y)

	if !hasHead {
		return clause.Headless(body)
	}
	return clause.New(head, body)
}

// Minimal keeps only the clauses of s that have no strict subset among
// s ∪ e, where e is a background set of already-known clauses (never
// itself filtered). Ties (identical clauses) are preserved.
func Minimal(s *set.Set[clause.Clause], e *set.Set[clause.Clause]) *set.Set[clause.Clause] {
	all := s
	if e != nil && e.Size() > 0 {
		all = s.Union(e)
	}
	allSlice := all.Slice()
	result := set.New[clause.Clause](s.Size())
	for _, c := range s.Slice() {
		minimal := true
		for _, d := range allSlice {
			if d.StrictSubset(c) {
				minimal = false
				break
			}
		}
		if minimal {
			result.Insert(c)
		}
	}
	return result
}

// Close computes the resolution closure of s: repeatedly extend by every
// resolvent of every pair, minimize, and halt at the fixpoint.
//
// This uses a worklist rather than a full rescan each round: only pairs
// involving at least one clause new since the previous round are
// resolved.
func Close(s *set.Set[clause.Clause]) *set.Set[clause.Clause] {
	known := Minimal(s, nil)
	fresh := known.Slice()

	for len(fresh) > 0 {
		knownSlice := known.Slice()
		added := set.New[clause.Clause](0)

		for _, a := range fresh {
			for _, b := range knownSlice {
				if r, ok := Resolve(a, b); ok && !known.Contains(r) {
					added.Insert(r)
				}
			}
		}
		for _, a := range fresh {
			for _, b := range fresh {
				if r, ok := Resolve(a, b); ok && !known.Contains(r) {
					added.Insert(r)
				}
			}
		}

		if added.Size() == 0 {
			break
		}
		known = Minimal(known.Union(added), nil)
		fresh = freshSince(known, knownSlice)
	}
	return known
}

// freshSince returns the members of known that are not in prior.
func freshSince(known *set.Set[clause.Clause], prior []clause.Clause) []clause.Clause {
	priorSet := set.From(prior)
	var fresh []clause.Clause
	for _, c := range known.Slice() {
		if !priorSet.Contains(c) {
			fresh = append(fresh, c)
		}
	}
	return fresh
}

// Equivalent reports whether s and r have identical resolution closures
// after tautology removal and minimization.
func Equivalent(s, r *set.Set[clause.Clause]) bool {
	ds := detaut(s)
	dr := detaut(r)
	return Minimal(Close(ds), nil).Equal(Minimal(Close(dr), nil))
}

func detaut(s *set.Set[clause.Clause]) *set.Set[clause.Clause] {
	out := set.New[clause.Clause](s.Size())
	for _, c := range s.Slice() {
		if !c.IsTautology() {
			out.Insert(c)
		}
	}
	return out
}
