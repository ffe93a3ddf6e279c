// Package entailment implements components C, D, and E of the engine: the
// reachable-consequence / usable-clause fixed point (RCN/UCL), the
// head-restricted resolution closure (HCLOSE), and the minimal-bodies
// back-chaining search (MINBODIES).
package entailment

import (
	"github.com/clauselogic/singlehead/pkg/clause"
	"github.com/clauselogic/singlehead/pkg/resolution"
	"github.com/hashicorp/go-set/v3"
)

// RCNUCL computes (heads, usable) as the least fixpoint of: for every
// clause c of f whose body is a subset of b ∪ heads, add head(c) to heads
// and c to usable. usable is minimized before being returned.
//
// Like Close, this uses a worklist: only clauses not yet usable are
// re-examined each round, since a clause already in usable never needs
// reconsideration.
func RCNUCL(b *set.Set[string], f *clause.Formula) (heads *set.Set[string], usable *set.Set[clause.Clause]) {
	heads = set.New[string](0)
	usable = set.New[clause.Clause](0)

	candidates := f.Clauses()
	for {
		grew := false
		reach := b.Union(heads)
		var remaining []clause.Clause
		for _, c := range candidates {
			if set.From(c.Body()).Subset(reach) {
				if h, ok := c.Head(); ok && !heads.Contains(h) {
					heads.Insert(h)
					grew = true
				}
				usable.Insert(c)
			} else {
				remaining = append(remaining, c)
			}
		}
		candidates = remaining
		if !grew {
			break
		}
	}
	return heads, resolution.Minimal(usable, nil)
}
