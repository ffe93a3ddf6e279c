package reconstruct

import (
	"sort"

	"github.com/clauselogic/singlehead/pkg/clause"
	"github.com/clauselogic/singlehead/pkg/entailment"
	"github.com/clauselogic/singlehead/internal/parallel"
	"github.com/hashicorp/go-set/v3"
)

// precomputeRCNUCL computes rcn[B] and ucl[B] for every body B occurring
// in f, once, before the main loop. The computation is independent
// across bodies, so it is the first of the engine's two embarrassingly
// parallel steps.
func precomputeRCNUCL(f clause.Formula, opts Options) (map[string]*set.Set[string], map[string]*set.Set[clause.Clause]) {
	bodies := f.Bodies().Slice()
	rcn := make(map[string]*set.Set[string], len(bodies))
	ucl := make(map[string]*set.Set[clause.Clause], len(bodies))

	type result struct {
		key   string
		heads *set.Set[string]
		used  *set.Set[clause.Clause]
	}

	results := parallel.Map(opts.Workers, bodies, func(key string) result {
		b := clause.BodySet(clause.BodyVars(key))
		heads, used := entailment.RCNUCL(b, &f)
		return result{key: key, heads: heads, used: used}
	})
	for _, r := range results {
		rcn[r.key] = r.heads
		ucl[r.key] = r.used
	}
	return rcn, ucl
}

// selectPrecondition picks the precondition p minimizing rcn[p] ∪ p under
// strict set inclusion. Ties are broken by the first candidate
// encountered in a sorted traversal, keeping the result reproducible
// across runs even though multiple incomparable minima may exist.
func selectPrecondition(preconditions *set.Set[string], rcn map[string]*set.Set[string]) string {
	keys := preconditions.Slice()
	sort.Strings(keys)
	p := keys[0]
	reach := func(k string) *set.Set[string] {
		return rcn[k].Union(clause.BodySet(clause.BodyVars(k)))
	}
	pReach := reach(p)
	for _, t := range keys[1:] {
		tReach := reach(t)
		if tReach.Size() < pReach.Size() && tReach.Subset(pReach) {
			p, pReach = t, tReach
		}
	}
	return p
}

// orderHardestFirst sorts heads so that those whose variable also appears
// in the must-cover set are tried first, giving the combination search in
// searchCombination the best chance to prune early.
func orderHardestFirst(heads []string, mustCover *set.Set[string]) {
	sort.Slice(heads, func(i, j int) bool {
		hi, hj := mustCover.Contains(heads[i]), mustCover.Contains(heads[j])
		if hi != hj {
			return hi
		}
		return heads[i] < heads[j]
	})
}

type combinationSearch struct {
	pheads         []string
	bodyOptions    []string // candidate body keys (pbodies)
	inbodies       *set.Set[string]
	headlessbodies *set.Set[string]
	p              *set.Set[string] // precondition's own body vars
	rcnP           *set.Set[string]
	target         *set.Set[clause.Clause]
	constructed    clause.Formula
	opts           Options
	stats          *Stats
}

// searchCombination enumerates pbodies^|pheads|, assigning one body to
// each head, and accepts the first tuple whose synthesized clauses pass
// all three validations. Runs
// sequentially when cs.opts.Workers <= 1 (the reproducible order fixtures
// rely on); otherwise fans candidate tuples out across a worker pool and
// cancels the rest on first success.
func searchCombination(cs combinationSearch) (it clause.Formula, allBodies *set.Set[string], ok bool) {
	if len(cs.pheads) == 0 {
		return clause.EmptyFormula(), set.New[string](0), true
	}

	tuples := allTuples(len(cs.pheads), len(cs.bodyOptions))

	type outcome struct {
		it        clause.Formula
		allBodies *set.Set[string]
		ok        bool
	}
	eval := func(idx []int) outcome {
		cs.stats.SubIterations++
		if cs.stats.SubIterations > cs.stats.MaxSubIteration {
			cs.stats.MaxSubIteration = cs.stats.SubIterations
		}
		it, allBodies, ok := tryTuple(cs, idx)
		return outcome{it, allBodies, ok}
	}

	if cs.opts.Workers > 1 {
		for _, r := range parallel.MapFirst(cs.opts.Workers, tuples, eval, func(o outcome) bool { return o.ok }) {
			return r.it, r.allBodies, true
		}
		return clause.Formula{}, nil, false
	}

	for _, idx := range tuples {
		r := eval(idx)
		if r.ok {
			return r.it, r.allBodies, true
		}
	}
	return clause.Formula{}, nil, false
}

// tryTuple builds the candidate clauses for one assignment of bodies to
// heads and runs the three validations required to accept it.
func tryTuple(cs combinationSearch, idx []int) (clause.Formula, *set.Set[string], bool) {
	allBodies := set.New[string](0)
	bodyVarsByHead := make([][]string, len(cs.pheads))
	for i, choice := range idx {
		vars := clause.BodyVars(cs.bodyOptions[choice])
		bodyVarsByHead[i] = vars
		for _, v := range vars {
			allBodies.Insert(v)
		}
	}
	if !cs.inbodies.Union(cs.headlessbodies).Subset(allBodies) {
		return clause.Formula{}, nil, false
	}
	cs.stats.Combinations++

	clauses := make([]clause.Clause, 0, len(cs.pheads))
	for i, h := range cs.pheads {
		body := bodyVarsByHead[i]
		for _, v := range body {
			if v == h {
				return clause.Formula{}, nil, false // would-be tautology
			}
		}
		clauses = append(clauses, clause.New(h, body))
	}
	cs.stats.NoTautology++

	it := clause.NewFormula(clauses...)
	candidate := cs.constructed.Union(it)

	gitHeads, gitUsed := entailment.RCNUCL(cs.p, &candidate)
	if !gitHeads.Equal(cs.rcnP) {
		return clause.Formula{}, nil, false
	}
	cs.stats.EqualPrecond++

	for _, key := range cs.bodyOptions {
		b := clause.BodySet(clause.BodyVars(key))
		bHeads, _ := entailment.RCNUCL(b, &candidate)
		if !bHeads.Equal(cs.rcnP) {
			return clause.Formula{}, nil, false
		}
	}

	cs.stats.Comparisons++
	closure := entailment.HClose(gitHeads, gitUsed)
	if !closure.Equal(cs.target) {
		return clause.Formula{}, nil, false
	}

	return it, allBodies, true
}

// allTuples returns every index tuple of length n over an alphabet of
// size k, in lexicographic (odometer) order.
func allTuples(n, k int) [][]int {
	if k == 0 {
		if n == 0 {
			return [][]int{{}}
		}
		return nil
	}
	total := 1
	for i := 0; i < n; i++ {
		total *= k
	}
	tuples := make([][]int, 0, total)
	idx := make([]int, n)
	for c := 0; c < total; c++ {
		cur := make([]int, n)
		copy(cur, idx)
		tuples = append(tuples, cur)
		for pos := n - 1; pos >= 0; pos-- {
			idx[pos]++
			if idx[pos] < k {
				break
			}
			idx[pos] = 0
		}
	}
	return tuples
}
