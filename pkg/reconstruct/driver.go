// Package reconstruct implements component F, the reconstruction driver:
// the outer loop over preconditions that either builds a single-head
// formula G equivalent to F, or determines that none exists.
package reconstruct

import (
	"sort"

	"github.com/clauselogic/singlehead/pkg/clause"
	"github.com/clauselogic/singlehead/pkg/entailment"
	"github.com/clauselogic/singlehead/pkg/resolution"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-set/v3"
)

// Stats accumulates per-call progress counters. They are returned
// alongside G rather than mutated through package state, so that
// concurrent Reconstruct calls never interfere with one another.
type Stats struct {
	Iterations      int
	SubIterations   int
	MaxSubIteration int
	Combinations    int
	NoTautology     int
	EqualPrecond    int
	Comparisons     int
}

// Options configures a Reconstruct call.
type Options struct {
	// Logger receives the driver's progress trace: Debug messages for the
	// simplified input, each committed construction, and the reason for a
	// failure, and one Trace message per selected precondition. Individual
	// combinations are not logged. A nil Logger discards all progress output.
	Logger hclog.Logger

	// Workers bounds the goroutine fan-out used for the two
	// embarrassingly-parallel steps of reconstruction: the per-body
	// RCN/UCL precompute, and the combination search below. Workers <= 1
	// runs the combination search sequentially, in a fixed deterministic
	// order, which is what test fixtures rely on for reproducibility. The
	// precompute runs sequentially only when Workers == 1; Workers <= 0
	// spreads it over runtime.NumCPU() goroutines, which does not change
	// its result.
	Workers int
}

// Reconstruct attempts to build a single-head formula G logically
// equivalent to f. ok is false when no such G exists ("not single-head
// equivalent"); g is the zero Formula in that case.
func Reconstruct(f clause.Formula, opts Options) (g clause.Formula, ok bool, stats Stats) {
	log := opts.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	f = f.Detautologize()
	f = clause.FromSet(resolution.Minimal(f.Set(), nil))
	log.Debug("simplified", "formula", f.String())
	log.Debug("single head", "value", f.IsSingleHead())

	rcn, ucl := precomputeRCNUCL(f, opts)

	constructed := clause.EmptyFormula()
	cbodies := set.New[string](0)     // variables appearing in bodies of G
	bodied := set.New[string](0)      // heads already used in G
	used := set.New[clause.Clause](0) // clauses of F consumed so far

	preconditions := f.Bodies()

	for preconditions.Size() > 0 {
		stats.Iterations++

		p := selectPrecondition(preconditions, rcn)
		pVars := clause.BodySet(clause.BodyVars(p))
		pReach := rcn[p].Union(pVars)
		remaining := set.New[string](0)
		for _, t := range preconditions.Slice() {
			if !clause.BodySet(clause.BodyVars(t)).Subset(pReach) {
				remaining.Insert(t)
			}
		}
		preconditions = remaining

		log.Trace("precondition", "p", p, "rcn", rcn[p].Slice())

		pheads := set.New[string](0)
		for _, h := range rcn[p].Slice() {
			if !bodied.Contains(h) {
				pheads.Insert(h)
			}
		}

		maxitHeads, _ := entailment.RCNUCL(pVars.Union(pheads), &constructed)
		maxit := pheads.Union(maxitHeads)
		if !rcn[p].Subset(maxit) {
			log.Debug("insufficient heads", "p", p)
			return clause.Formula{}, false, stats
		}

		headbodies := clause.FromSet(entailment.HClose(pheads, ucl[p]))
		pbodies := entailment.MinBodies(headbodies.Set(), ucl[p].Intersect(used))
		inbodies := varsOfBodies(headbodies).Difference(cbodies)

		alreadyBodied := set.New[string](0)
		for _, h := range rcn[p].Slice() {
			if bodied.Contains(h) {
				alreadyBodied.Insert(h)
			}
		}
		headless := clause.FromSet(entailment.HClose(alreadyBodied, ucl[p]))
		headlessbodies := varsOfBodies(headless).Difference(cbodies).Difference(inbodies)
		if headlessbodies.Size() > 0 {
			log.Debug("unachievable bodies", "vars", headlessbodies.Slice())
			return clause.Formula{}, false, stats
		}

		target := headbodies.Set().Union(headless.Set())
		if target.Size() == 0 {
			continue
		}

		headsList := pheads.Slice()
		orderHardestFirst(headsList, inbodies.Union(headlessbodies))
		bodyOptions := pbodies.Slice()
		sort.Strings(bodyOptions)

		it, allBodies, found := searchCombination(combinationSearch{
			pheads:         headsList,
			bodyOptions:    bodyOptions,
			inbodies:       inbodies,
			headlessbodies: headlessbodies,
			p:              pVars,
			rcnP:           rcn[p],
			target:         target,
			constructed:    constructed,
			opts:           opts,
			stats:          &stats,
		})
		if !found {
			return clause.Formula{}, false, stats
		}

		used = used.Union(ucl[p])
		bodied = bodied.Union(pheads)
		cbodies = cbodies.Union(allBodies)
		constructed = constructed.Union(it)
		log.Debug("constructed", "formula", constructed.String())
	}

	return constructed, true, stats
}

// varsOfBodies returns the union, across every distinct body occurring in
// f, of the variables in that body.
func varsOfBodies(f clause.Formula) *set.Set[string] {
	out := set.New[string](0)
	for _, key := range f.Bodies().Slice() {
		for _, v := range clause.BodyVars(key) {
			out.Insert(v)
		}
	}
	return out
}
