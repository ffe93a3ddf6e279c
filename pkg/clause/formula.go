package clause

import (
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Formula is an unordered set of clauses. It is the representation F (and
// G, and every intermediate clause set the engine computes).
type Formula struct {
	clauses *set.Set[Clause]
}

// NewFormula builds a formula from zero or more clauses, deduplicating.
func NewFormula(clauses ...Clause) Formula {
	return Formula{clauses: set.From(clauses)}
}

// EmptyFormula is the formula with no clauses.
func EmptyFormula() Formula { return NewFormula() }

// Set exposes the underlying clause set for callers in sibling packages
// that need go-set's algebra directly (resolution, closures).
func (f Formula) Set() *set.Set[Clause] {
	if f.clauses == nil {
		return set.New[Clause](0)
	}
	return f.clauses
}

// FromSet wraps an existing clause set as a Formula.
func FromSet(s *set.Set[Clause]) Formula {
	if s == nil {
		s = set.New[Clause](0)
	}
	return Formula{clauses: s}
}

// Size returns the number of clauses in the formula.
func (f Formula) Size() int { return f.Set().Size() }

// Clauses returns the formula's clauses as a slice, in no particular
// order; callers that need a stable order should sort the result.
func (f Formula) Clauses() []Clause { return f.Set().Slice() }

// Contains reports whether c is a member of the formula.
func (f Formula) Contains(c Clause) bool { return f.Set().Contains(c) }

// Union returns the union of f and g.
func (f Formula) Union(g Formula) Formula { return FromSet(f.Set().Union(g.Set())) }

// Equal reports whether f and g contain exactly the same clauses.
func (f Formula) Equal(g Formula) bool { return f.Set().Equal(g.Set()) }

// Heads returns the multiset of head variables, one entry per clause that
// has a head (duplicates retained — this is exactly what lets
// IsSingleHead detect duplicate heads).
func (f Formula) Heads() []string {
	var hs []string
	for _, c := range f.Clauses() {
		if h, ok := c.Head(); ok {
			hs = append(hs, h)
		}
	}
	return hs
}

// IsSingleHead reports whether every variable appears as the head of at
// most one clause of f.
func (f Formula) IsSingleHead() bool {
	hs := f.Heads()
	seen := make(map[string]struct{}, len(hs))
	for _, h := range hs {
		if _, dup := seen[h]; dup {
			return false
		}
		seen[h] = struct{}{}
	}
	return true
}

// Bodies returns the set of distinct clause bodies occurring in f, each
// represented as a body-key set of variables.
func (f Formula) Bodies() *set.Set[string] {
	keys := set.New[string](0)
	for _, c := range f.Clauses() {
		keys.Insert(BodyKey(c.Body()))
	}
	return keys
}

// BodyKey canonicalizes a slice of variables into the comma-joined,
// sorted key used to identify a body independent of the clause it came
// from (two clauses with the same body share a BodyKey).
func BodyKey(vars []string) string {
	return strings.Join(sortedUnique(vars), bodySep)
}

// BodyVars expands a BodyKey back into its variable slice.
func BodyVars(key string) []string {
	if key == "" {
		return nil
	}
	return strings.Split(key, bodySep)
}

// BodySet wraps a variable slice as a go-set, the representation used by
// RCN/UCL/HCLOSE for the "B" and "H" arguments.
func BodySet(vars []string) *set.Set[string] {
	return set.From(sortedUnique(vars))
}

// Detautologize returns f with every tautological clause removed.
func (f Formula) Detautologize() Formula {
	kept := set.New[Clause](f.Size())
	for _, c := range f.Clauses() {
		if !c.IsTautology() {
			kept.Insert(c)
		}
	}
	return FromSet(kept)
}

// String renders the formula as a space-separated list of pretty clauses
// in a stable (sorted) order, for reproducible CLI output.
func (f Formula) String() string {
	strs := make([]string, 0, f.Size())
	for _, c := range f.Clauses() {
		strs = append(strs, c.String())
	}
	sort.Strings(strs)
	return strings.Join(strs, " ")
}
