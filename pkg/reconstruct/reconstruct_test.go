package reconstruct

import (
	"testing"

	"github.com/clauselogic/singlehead/pkg/clause"
	"github.com/clauselogic/singlehead/pkg/parser"
	"github.com/clauselogic/singlehead/pkg/resolution"
)

func mustParse(t *testing.T, specs ...string) clause.Formula {
	t.Helper()
	f, err := parser.Formula(specs)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return f
}

// minimalOf mirrors the detautologize-then-minimal simplification
// Reconstruct applies internally, for tests that need to compare a
// constructed formula against the fully simplified input.
func minimalOf(f clause.Formula) clause.Formula {
	return clause.FromSet(resolution.Minimal(f.Detautologize().Set(), nil))
}

func TestReconstructSingleHeadEquivalent(t *testing.T) {
	f := mustParse(t, "a->b", "b->a", "b->c", "a->d", "a->e", "c->d")

	g, ok, _ := Reconstruct(f, Options{})
	if !ok {
		t.Fatal("expected a single-head equivalent to exist")
	}
	if !g.IsSingleHead() {
		t.Fatalf("constructed formula is not single-head: %v", g)
	}
	if !resolution.Equivalent(g.Set(), minimalOf(f).Set()) {
		t.Fatalf("constructed formula %v is not equivalent to the input", g)
	}
}

func TestReconstructNotSingleHeadEquivalent(t *testing.T) {
	f := mustParse(t, "a->b", "b->a", "b->c", "a->d", "a->e", "c->d", "f->d")

	_, ok, _ := Reconstruct(f, Options{})
	if ok {
		t.Fatal("d has two independent derivations (from c and from f); no single-head equivalent should exist")
	}
}

func TestReconstructAlreadySingleHead(t *testing.T) {
	f := mustParse(t, "a->b", "a->c")
	g, ok, _ := Reconstruct(f, Options{})
	if !ok {
		t.Fatal("an already single-head formula should reconstruct successfully")
	}
	if !resolution.Equivalent(g.Set(), f.Set()) {
		t.Fatalf("reconstructed formula %v should be equivalent to the already single-head input", g)
	}
}

func TestReconstructTautologyOnly(t *testing.T) {
	f := mustParse(t, "a->a")
	g, ok, _ := Reconstruct(f, Options{})
	if !ok {
		t.Fatal("a formula consisting only of a tautology should trivially reconstruct")
	}
	if g.Size() != 0 {
		t.Fatalf("the tautology should simplify away entirely, got %v", g)
	}
}

func TestReconstructEmptyFormula(t *testing.T) {
	g, ok, stats := Reconstruct(clause.EmptyFormula(), Options{})
	if !ok {
		t.Fatal("the empty formula is trivially single-head")
	}
	if g.Size() != 0 {
		t.Fatalf("expected an empty result, got %v", g)
	}
	if stats.Iterations != 0 {
		t.Fatalf("no preconditions means no loop iterations, got %d", stats.Iterations)
	}
}

func TestReconstructDuplicateClauses(t *testing.T) {
	f := mustParse(t, "a->b", "a->b", "b->c")
	g, ok, _ := Reconstruct(f, Options{})
	if !ok {
		t.Fatal("duplicate clauses should not affect single-head equivalence")
	}
	if !resolution.Equivalent(g.Set(), f.Set()) {
		t.Fatalf("reconstructed formula %v should be equivalent to the input with duplicates", g)
	}
}

func TestReconstructMultiVariablePrecondition(t *testing.T) {
	f := mustParse(t, "ab->c", "c->a", "c->b")
	g, ok, _ := Reconstruct(f, Options{})
	if !ok {
		t.Fatal("expected a single-head equivalent for the ab->c, c->a, c->b scenario")
	}
	if !g.IsSingleHead() {
		t.Fatalf("constructed formula is not single-head: %v", g)
	}
	if !resolution.Equivalent(g.Set(), minimalOf(f).Set()) {
		t.Fatalf("constructed formula %v is not equivalent to the input", g)
	}
}

func TestReconstructRedundantClauseDropped(t *testing.T) {
	f := mustParse(t, "a->c", "ab->c")

	simplified := minimalOf(f)
	if simplified.Size() != 1 {
		t.Fatalf("ab->c is a strict literal-superset of a->c and should be dropped, got %v", simplified)
	}

	g, ok, _ := Reconstruct(f, Options{})
	if !ok {
		t.Fatal("expected a single-head equivalent to exist")
	}
	if !resolution.Equivalent(g.Set(), simplified.Set()) {
		t.Fatalf("constructed formula %v is not equivalent to the minimized input %v", g, simplified)
	}
}

func TestReconstructParallelMatchesSequential(t *testing.T) {
	f := mustParse(t, "a->b", "b->a", "b->c", "a->d", "a->e", "c->d")

	seq, seqOK, _ := Reconstruct(f, Options{Workers: 1})
	par, parOK, _ := Reconstruct(f, Options{Workers: 4})

	if seqOK != parOK {
		t.Fatalf("sequential and parallel runs disagree on feasibility: %v vs %v", seqOK, parOK)
	}
	if seqOK && !resolution.Equivalent(seq.Set(), par.Set()) {
		t.Fatalf("sequential result %v and parallel result %v are not equivalent", seq, par)
	}
}
