package clause

import "strings"

// Clause is an immutable, comparable Horn clause: a body of negative
// literals (unsigned variables) plus at most one positive literal, its
// head. A clause with no head (HasHead() == false) is a pure constraint —
// including the empty clause, contradiction itself.
//
// Clause is deliberately just a struct of comparable fields (a head string
// and a canonical body key) so that it satisfies the `comparable`
// constraint required by set.Set[Clause]; nothing about this type needs a
// pointer receiver or a custom Hash method.
type Clause struct {
	head    string
	hasHead bool
	bodyKey string // body variables, sorted, joined by bodySep
}

// New builds the clause body -> head from a body variable list and an
// optional head ("" means no head). Duplicate body variables collapse.
func New(head string, body []string) Clause {
	sorted := sortedUnique(body)
	return Clause{
		head:    head,
		hasHead: head != "",
		bodyKey: strings.Join(sorted, bodySep),
	}
}

// Headless builds a clause with no positive literal at all: a pure
// negative constraint over body.
func Headless(body []string) Clause {
	return New("", body)
}

// Empty is the empty clause: no literals at all. It represents a direct
// contradiction and is the canonical result of resolving a unit clause
// with its own negation.
var Empty = Clause{}

// Head returns the clause's head variable and whether it has one.
func (c Clause) Head() (string, bool) {
	return c.head, c.hasHead
}

// Body returns the clause's body variables as a sorted slice. Callers that
// need set operations should wrap the result with set.From.
func (c Clause) Body() []string {
	if c.bodyKey == "" {
		return nil
	}
	return strings.Split(c.bodyKey, bodySep)
}

// Literals returns every literal of the clause: one negative literal per
// body variable, plus the head as a positive literal if present.
func (c Clause) Literals() []Literal {
	body := c.Body()
	lits := make([]Literal, 0, len(body)+1)
	for _, v := range body {
		lits = append(lits, Neg(v))
	}
	if c.hasHead {
		lits = append(lits, Pos(c.head))
	}
	return lits
}

// IsTautology reports whether the clause contains a literal and its
// complement. Since a Clause's body is strictly negative and it carries
// at most one positive literal, this reduces to: the head variable also
// occurs in the body.
func (c Clause) IsTautology() bool {
	if !c.hasHead {
		return false
	}
	for _, v := range c.Body() {
		if v == c.head {
			return true
		}
	}
	return false
}

// Subset reports whether c's literal set is a subset of d's.
func (c Clause) Subset(d Clause) bool {
	if c.hasHead && (!d.hasHead || c.head != d.head) {
		return false
	}
	cb, db := c.Body(), d.Body()
	if len(cb) > len(db) {
		return false
	}
	dset := make(map[string]struct{}, len(db))
	for _, v := range db {
		dset[v] = struct{}{}
	}
	for _, v := range cb {
		if _, ok := dset[v]; !ok {
			return false
		}
	}
	return true
}

// StrictSubset reports whether c is a proper subset of d.
func (c Clause) StrictSubset(d Clause) bool {
	return c != d && c.Subset(d)
}

// String renders the clause in the pretty BODY->HEAD form used throughout
// the CLI and test fixtures. A clause with no head prints as BODY-> (an
// integrity constraint); the empty clause prints as "()".
func (c Clause) String() string {
	if c == Empty {
		return "()"
	}
	var b strings.Builder
	for _, v := range c.Body() {
		b.WriteString(formatVar(v))
	}
	b.WriteString("->")
	if c.hasHead {
		b.WriteString(formatVar(c.head))
	}
	return b.String()
}

// formatVar renders a variable token, wrapping multi-character names back
// into &name; form so the output re-parses to the same variable.
func formatVar(v string) string {
	if len(v) == 1 {
		return v
	}
	return "&" + v + ";"
}
