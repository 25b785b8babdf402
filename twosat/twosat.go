package twosat

import (
	"github.com/katalvlaran/graphkit/components"
	"github.com/katalvlaran/graphkit/graph"
)

// Literal is one occurrence of a 1-based variable number, Positive
// false for a negated occurrence — the same shape as dimacs.Literal,
// kept independent here since twosat has no structural dependency on
// dimacs.
type Literal struct {
	Var      int
	Positive bool
}

// Clause is a disjunction of exactly one or two literals.
type Clause []Literal

// literalNode maps a literal to its implication-graph vertex: variable
// v's two literals occupy adjacent integers 2(v-1) (positive) and
// 2(v-1)+1 (negative).
func literalNode(l Literal) int {
	base := 2 * (l.Var - 1)
	if l.Positive {
		return base
	}

	return base + 1
}

func negate(l Literal) Literal {
	return Literal{Var: l.Var, Positive: !l.Positive}
}

// Solve builds the implication graph for clauses over numVars
// variables and reports satisfiability: for each clause (a ∨ b), it
// adds implications ¬a => b and ¬b => a (a unit clause (a) becomes
// ¬a => a). It is unsatisfiable iff some variable's two literals fall
// in the same strongly connected component. When satisfiable,
// assignment[v] (1-based) holds the forced or free truth value,
// derived from components.SCC's completion order: Tarjan finishes a
// sink component of the condensation first, so a lower comps-index is
// sink-ward; a variable is true exactly when its positive literal's
// component is reached first (more sink-ward) than its negative
// literal's.
func Solve(numVars int, clauses []Clause) (assignment map[int]bool, ok bool) {
	g, err := graph.New[int](graph.WithDirected(true))
	if err != nil {
		return nil, false
	}
	for i := 0; i < 2*numVars; i++ {
		if _, err := g.AddVertex(i); err != nil {
			return nil, false
		}
	}

	addImplication := func(from, to Literal) {
		u, v := literalNode(from), literalNode(to)
		if g.HasEdge(u, v) {
			return
		}
		_ = g.SetEdge(u, v, graph.UnitWeight)
	}

	for _, clause := range clauses {
		switch len(clause) {
		case 1:
			a := clause[0]
			addImplication(negate(a), a)
		case 2:
			a, b := clause[0], clause[1]
			addImplication(negate(a), b)
			addImplication(negate(b), a)
		default:
			// twosat only accepts unit and binary clauses; longer clauses
			// are out of contract.
			return nil, false
		}
	}

	comps := components.SCC[int](g)
	compIndex := make(map[int]int, 2*numVars)
	for i, comp := range comps {
		for _, node := range comp {
			compIndex[node] = i
		}
	}

	assignment = make(map[int]bool, numVars)
	for v := 1; v <= numVars; v++ {
		pos := literalNode(Literal{Var: v, Positive: true})
		neg := literalNode(Literal{Var: v, Positive: false})
		if compIndex[pos] == compIndex[neg] {
			return nil, false
		}
		assignment[v] = compIndex[pos] < compIndex[neg]
	}

	return assignment, true
}
