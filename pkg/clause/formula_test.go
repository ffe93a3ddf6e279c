package clause

import "testing"

func TestFormulaIsSingleHead(t *testing.T) {
	single := NewFormula(New("b", []string{"a"}), New("c", []string{"a"}))
	if !single.IsSingleHead() {
		t.Error("a->b, a->c should be single-head (distinct heads)")
	}

	duplicate := NewFormula(New("b", []string{"a"}), New("b", []string{"c"}))
	if duplicate.IsSingleHead() {
		t.Error("a->b, c->b should not be single-head (duplicate head b)")
	}

	headless := NewFormula(Headless([]string{"a", "b"}))
	if !headless.IsSingleHead() {
		t.Error("a formula with only headless clauses is trivially single-head")
	}
}

func TestFormulaDetautologize(t *testing.T) {
	f := NewFormula(
		New("a", []string{"a", "b"}), // tautology
		New("c", []string{"b"}),
	)
	simplified := f.Detautologize()
	if simplified.Size() != 1 {
		t.Fatalf("Detautologize() kept %d clauses, want 1", simplified.Size())
	}
	if !simplified.Contains(New("c", []string{"b"})) {
		t.Error("Detautologize() should keep the non-tautological clause")
	}
}

func TestFormulaUnionAndEqual(t *testing.T) {
	a := NewFormula(New("b", []string{"a"}))
	b := NewFormula(New("c", []string{"a"}))
	u := a.Union(b)
	if u.Size() != 2 {
		t.Fatalf("Union size = %d, want 2", u.Size())
	}
	if !u.Equal(NewFormula(New("b", []string{"a"}), New("c", []string{"a"}))) {
		t.Error("Union did not produce the expected combined formula")
	}
	if a.Equal(b) {
		t.Error("distinct formulas should not compare equal")
	}
}

func TestFormulaBodiesAndBodyKey(t *testing.T) {
	f := NewFormula(New("b", []string{"a", "c"}), New("d", []string{"c", "a"}))
	bodies := f.Bodies()
	if bodies.Size() != 1 {
		t.Fatalf("Bodies() size = %d, want 1 (both clauses share body {a,c})", bodies.Size())
	}
	key := BodyKey([]string{"c", "a", "a"})
	if key != "a,c" {
		t.Fatalf("BodyKey = %q, want \"a,c\"", key)
	}
	if got := BodyVars(key); len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("BodyVars(%q) = %v, want [a c]", key, got)
	}
}

func TestFormulaHeadsRetainsDuplicates(t *testing.T) {
	f := NewFormula(New("b", []string{"a"}), New("b", []string{"c"}), New("d", []string{"a"}))
	heads := f.Heads()
	if len(heads) != 3 {
		t.Fatalf("Heads() returned %d entries, want 3 (one per clause with a head)", len(heads))
	}
}
