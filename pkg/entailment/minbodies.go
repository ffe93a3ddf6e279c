package entailment

import (
	"sort"

	"github.com/clauselogic/singlehead/pkg/clause"
	"github.com/hashicorp/go-set/v3"
)

// MinBodies implements component E: from minbcl (a head-restricted closure
// from HClose) and uclscl (the already-used sub-formula intersected with
// the precondition's UCL), return the set of minimal bodies reachable by
// a guided back-chaining walk.
//
// For each starting clause b of minbcl not yet finalized, the walk tries
// to rewrite b by picking a clause c of uclscl whose body is a subset of
// body(b), and a companion clause bc of minbcl containing -head(c), such
// that resolving bc with c on head(c) yields exactly b. If such a bc
// exists, is not already in the local trace, was not finalized by an
// earlier walk, and its body is not already collected, the walk continues
// from bc; otherwise body(b) is committed to the result. The trace breaks
// cycles; the walk terminates because the clause space is finite. Both
// inputs are walked in sorted clause order, so the result is reproducible.
func MinBodies(minbcl *set.Set[clause.Clause], uclscl *set.Set[clause.Clause]) *set.Set[string] {
	done := set.New[clause.Clause](0)
	minKeys := set.New[string](0)

	minbclSlice := minbcl.Slice()
	uclsclSlice := uclscl.Slice()
	byString := func(cs []clause.Clause) func(i, j int) bool {
		return func(i, j int) bool { return cs[i].String() < cs[j].String() }
	}
	sort.Slice(minbclSlice, byString(minbclSlice))
	sort.Slice(uclsclSlice, byString(uclsclSlice))

	for _, start := range minbclSlice {
		if done.Contains(start) || minKeys.Contains(clause.BodyKey(start.Body())) {
			continue
		}

		b := start
		trace := set.From([]clause.Clause{b})
		done.Insert(b)

		for {
			next, found := step(b, minbclSlice, uclsclSlice, trace, done, minKeys)
			if !found {
				minKeys.Insert(clause.BodyKey(b.Body()))
				break
			}
			b = next
			trace.Insert(b)
			done.Insert(b)
		}
	}
	return minKeys
}

// step looks for a single back-chaining rewrite of b, returning the
// companion clause to continue from, or found == false if none applies
// (at which point the walk commits body(b)).
func step(b clause.Clause, minbcl, uclscl []clause.Clause, trace, done *set.Set[clause.Clause], minKeys *set.Set[string]) (clause.Clause, bool) {
	bBody := set.From(b.Body())
	for _, c := range uclscl {
		if !set.From(c.Body()).Subset(bBody) {
			continue
		}
		ch, ok := c.Head()
		if !ok {
			continue
		}
		bc, matched := findCompanion(b, c, ch, minbcl)
		if !matched {
			continue
		}
		if trace.Contains(bc) {
			continue
		}
		if done.Contains(bc) || minKeys.Contains(clause.BodyKey(bc.Body())) {
			// Already resolved by a previous walk or already minimal:
			// this branch cannot make further progress.
			continue
		}
		return bc, true
	}
	return clause.Clause{}, false
}

// findCompanion looks for bc in minbcl whose body contains ch (i.e. bc has
// -ch as a literal) such that resolving bc with c on ch reproduces b
// exactly: b == (bc ∪ c) \ {ch, -ch}.
func findCompanion(b, c clause.Clause, ch string, minbcl []clause.Clause) (clause.Clause, bool) {
	for _, bc := range minbcl {
		if !hasBodyVar(bc, ch) {
			continue
		}
		if resolvesTo(bc, c, ch, b) {
			return bc, true
		}
	}
	return clause.Clause{}, false
}

func hasBodyVar(c clause.Clause, v string) bool {
	for _, x := range c.Body() {
		if x == v {
			return true
		}
	}
	return false
}

// resolvesTo reports whether resolving bc with c on variable ch (bc
// contains -ch, c's head is ch) yields exactly want.
func resolvesTo(bc, c clause.Clause, ch string, want clause.Clause) bool {
	bodyVars := set.New[string](0)
	for _, v := range bc.Body() {
		if v != ch {
			bodyVars.Insert(v)
		}
	}
	for _, v := range c.Body() {
		bodyVars.Insert(v)
	}
	resultHead, hasHead := bc.Head()
	wantHead, wantHasHead := want.Head()
	if hasHead != wantHasHead || (hasHead && resultHead != wantHead) {
		return false
	}
	return clause.BodyKey(bodyVars.Slice()) == clause.BodyKey(want.Body())
}
