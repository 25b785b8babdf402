// Package npc implements Karp's 1972 chain of polynomial-time
// reductions between NP-complete problems: SAT -> ILP,
// SAT -> 3-SAT -> Clique -> Independent-Set -> Vertex-Cover ->
// {Set-Cover, Feedback-Vertex-Set, Directed-Hamiltonian-Cycle} ->
// Undirected-Hamiltonian-Cycle. Every reduction is a pure function
// from one small instance struct to another; every problem also
// exposes a polynomial-time certificate verifier, so soundness can be
// checked by applying a reduction and confirming the target verifier
// agrees with the source verifier on the constructed witness.
//
// Each reduction is built from the canonical construction in Karp's
// paper, written as pure functions over small instance/witness structs
// in the module's sentinel-error idiom. The one exception is
// Vertex-Cover -> Directed-Hamiltonian-Cycle: see hamiltonian.go's doc
// comment and
// DESIGN.md for why that leg routes through a fresh SAT encoding and a
// from-scratch variable-strip construction instead of the classical
// direct gadget.
package npc
