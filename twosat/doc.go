// Package twosat solves 2-SAT instances via the implication-graph
// construction: each clause (a ∨ b) contributes two implications
// (¬a => b) and (¬b => a); a variable x is forced false if x and ¬x
// fall in the same strongly connected component, which is detected by
// reusing components.SCC rather than a bespoke low-link pass — 2-SAT
// stands alone algorithmically but is naturally built from the shared
// SCC primitive.
package twosat
