package npc

import "github.com/katalvlaran/graphkit/graph"

// Literal is one occurrence of a 1-based variable number, Positive
// false for a negated occurrence. Independent of dimacs.Literal and
// twosat.Literal: npc keeps its own copy rather than importing either,
// since it has no structural dependency on either package.
type Literal struct {
	Var      int
	Positive bool
}

// Clause is a disjunction of literals.
type Clause []Literal

// SATInstance is a general CNF formula over NumVars boolean variables.
type SATInstance struct {
	NumVars int
	Clauses []Clause
}

// ThreeSATInstance is a CNF formula every clause of which has exactly
// three literals.
type ThreeSATInstance struct {
	NumVars int
	Clauses [][3]Literal
}

// ILPConstraint demands sum(Coeffs[i] * x[Vars[i]]) >= Bound over
// 0/1-valued variables.
type ILPConstraint struct {
	Vars   []int
	Coeffs []int
	Bound  int
}

// ILPInstance is a 0/1 integer program: NumVars boolean variables,
// each Constraints entry a linear inequality all of which must hold.
type ILPInstance struct {
	NumVars     int
	Constraints []ILPConstraint
}

// CliqueInstance asks whether G has a clique of size >= K.
type CliqueInstance[V comparable] struct {
	G graph.Graph[V]
	K int
}

// IndependentSetInstance asks whether G has an independent set of
// size >= K.
type IndependentSetInstance[V comparable] struct {
	G graph.Graph[V]
	K int
}

// VertexCoverInstance asks whether G has a vertex cover of size <= K.
type VertexCoverInstance[V comparable] struct {
	G graph.Graph[V]
	K int
}

// SetCoverInstance asks whether Sets (each a slice of indices into a
// universe of size Universe) has a sub-collection of size <= K whose
// union is the whole universe.
type SetCoverInstance struct {
	Universe int
	Sets     [][]int
	K        int
}

// FeedbackVertexSetInstance asks whether G has a set of <= K vertices
// whose removal leaves an acyclic graph.
type FeedbackVertexSetInstance[V comparable] struct {
	G graph.Graph[V]
	K int
}

// DirectedHamiltonianCycleInstance asks whether G (directed) has a
// cycle visiting every vertex exactly once.
type DirectedHamiltonianCycleInstance[V comparable] struct {
	G graph.Graph[V]
}

// UndirectedHamiltonianCycleInstance asks whether G (undirected) has a
// cycle visiting every vertex exactly once.
type UndirectedHamiltonianCycleInstance[V comparable] struct {
	G graph.Graph[V]
}
