package entailment

import (
	"github.com/clauselogic/singlehead/pkg/clause"
	"github.com/clauselogic/singlehead/pkg/resolution"
	"github.com/hashicorp/go-set/v3"
)

// HClose computes the minimal clauses derivable from usable by repeated
// resolution, restricted to those whose head lies in heads and that are
// not tautologies (component D).
//
// Seeded with the head-restricted subset of usable, it then repeatedly
// resolves each not-yet-processed closure member against every clause of
// usable, keeping only resolvents whose head matches the parent's head
// (body-side resolution only), until no new clause is added. Only clauses
// newly added since the previous round are re-examined.
func HClose(heads *set.Set[string], usable *set.Set[clause.Clause]) *set.Set[clause.Clause] {
	seed := set.New[clause.Clause](0)
	for _, c := range usable.Slice() {
		if h, ok := c.Head(); ok && heads.Contains(h) {
			seed.Insert(c)
		}
	}
	closure := resolution.Minimal(seed, nil)
	resolved := set.New[clause.Clause](0)

	toResolve := unprocessed(closure, resolved)
	for len(toResolve) > 0 {
		added := set.New[clause.Clause](0)
		for _, c := range toResolve {
			wantHead, _ := c.Head()
			for _, u := range usable.Slice() {
				r, ok := resolution.Resolve(c, u)
				if !ok {
					continue
				}
				if h, hasHead := r.Head(); hasHead && h == wantHead && !r.IsTautology() {
					added.Insert(r)
				}
			}
		}
		for _, c := range toResolve {
			resolved.Insert(c)
		}
		closure = resolution.Minimal(closure.Union(added), nil)
		toResolve = unprocessed(closure, resolved)
	}
	return closure
}

func unprocessed(closure, resolved *set.Set[clause.Clause]) []clause.Clause {
	var out []clause.Clause
	for _, c := range closure.Slice() {
		if !resolved.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
