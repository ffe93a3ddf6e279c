package clause

import "testing"

func TestClauseHeadBody(t *testing.T) {
	c := New("d", []string{"a", "c", "a"})
	h, ok := c.Head()
	if !ok || h != "d" {
		t.Fatalf("Head() = (%q, %v), want (\"d\", true)", h, ok)
	}
	body := c.Body()
	if len(body) != 2 || body[0] != "a" || body[1] != "c" {
		t.Fatalf("Body() = %v, want [a c] (sorted, deduplicated)", body)
	}
}

func TestHeadlessHasNoHead(t *testing.T) {
	c := Headless([]string{"a", "b"})
	if _, ok := c.Head(); ok {
		t.Fatal("Headless clause reported a head")
	}
}

func TestEmptyClause(t *testing.T) {
	c := Headless(nil)
	if c != Empty {
		t.Fatalf("Headless(nil) = %v, want Empty", c)
	}
	if c.String() != "()" {
		t.Fatalf("Empty.String() = %q, want \"()\"", c.String())
	}
}

func TestHeadlessNotTautology(t *testing.T) {
	if Headless([]string{"a"}).IsTautology() {
		t.Error("a headless clause should never be a tautology")
	}
}

func TestIsTautology(t *testing.T) {
	tautology := New("a", []string{"a", "b"})
	if !tautology.IsTautology() {
		t.Error("a clause whose head also occurs in its body should be a tautology")
	}

	notTautology := New("a", []string{"b", "c"})
	if notTautology.IsTautology() {
		t.Error("a->bc should not be a tautology")
	}

	headless := Headless([]string{"a", "b"})
	if headless.IsTautology() {
		t.Error("a headless clause can never be a tautology under the Horn representation")
	}
}

func TestSubset(t *testing.T) {
	small := New("c", []string{"a"})
	big := New("c", []string{"a", "b"})

	if !small.Subset(big) {
		t.Error("a->c should be a subset of ab->c")
	}
	if big.Subset(small) {
		t.Error("ab->c should not be a subset of a->c")
	}
	if !small.Subset(small) {
		t.Error("a clause should be a subset of itself")
	}
	if small.StrictSubset(small) {
		t.Error("a clause should not be a strict subset of itself")
	}

	differentHead := New("d", []string{"a"})
	if small.Subset(differentHead) {
		t.Error("clauses with different heads should never be subsets")
	}
}

func TestStringRoundTripsMultiCharVariable(t *testing.T) {
	c := New("head", []string{"x1", "x2"})
	s := c.String()
	want := "&x1;&x2;->&head;"
	if s != want {
		t.Fatalf("String() = %q, want %q", s, want)
	}
}

func TestStringSingleCharVariable(t *testing.T) {
	c := New("c", []string{"a", "b"})
	if got := c.String(); got != "ab->c" {
		t.Fatalf("String() = %q, want %q", got, "ab->c")
	}
}
