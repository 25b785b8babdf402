package npc

// VerifySAT reports whether assignment (indexed by Var, 1-based;
// index 0 is unused) satisfies every clause of inst.
func VerifySAT(inst SATInstance, assignment []bool) bool {
	for _, c := range inst.Clauses {
		if !clauseSatisfied(c, assignment) {
			return false
		}
	}
	return true
}

func clauseSatisfied(c Clause, assignment []bool) bool {
	for _, lit := range c {
		if lit.Var <= 0 || lit.Var >= len(assignment) {
			continue
		}
		v := assignment[lit.Var]
		if lit.Positive == v {
			return true
		}
	}
	return false
}

// SATToThreeSAT rewrites a general CNF formula into an equisatisfiable
// 3-CNF formula (Karp's standard padding/splitting transformation):
//
//   - a 1-literal clause (a) is padded with two fresh auxiliary
//     variables p, q into (a, p, q), (a, p, !q), (a, !p, q), (a, !p, !q);
//   - a 2-literal clause (a, b) is padded with one fresh variable p
//     into (a, b, p), (a, b, !p);
//   - a clause of exactly 3 literals is kept as-is;
//   - a clause of k > 3 literals (l1,...,lk) is split using k-3 fresh
//     variables y1,...,y(k-3): (l1, l2, y1), (!y1, l3, y2), ...,
//     (!y(k-3), l(k-1), lk).
//
// Every added variable is fresh (numbered above inst.NumVars), so the
// transformation is a reduction, not merely a rewrite: the original
// instance is satisfiable iff the 3-CNF instance is.
func SATToThreeSAT(inst SATInstance) ThreeSATInstance {
	nextVar := inst.NumVars + 1
	fresh := func() int {
		v := nextVar
		nextVar++
		return v
	}

	var out [][3]Literal
	for _, c := range inst.Clauses {
		switch len(c) {
		case 0:
			// An empty clause is unsatisfiable; force it via a variable
			// and its negation appearing together, which no assignment
			// can satisfy.
			p := fresh()
			out = append(out,
				[3]Literal{{Var: p, Positive: true}, {Var: p, Positive: true}, {Var: p, Positive: false}},
			)
		case 1:
			p, q := fresh(), fresh()
			a := c[0]
			out = append(out,
				[3]Literal{a, {Var: p, Positive: true}, {Var: q, Positive: true}},
				[3]Literal{a, {Var: p, Positive: true}, {Var: q, Positive: false}},
				[3]Literal{a, {Var: p, Positive: false}, {Var: q, Positive: true}},
				[3]Literal{a, {Var: p, Positive: false}, {Var: q, Positive: false}},
			)
		case 2:
			p := fresh()
			out = append(out,
				[3]Literal{c[0], c[1], {Var: p, Positive: true}},
				[3]Literal{c[0], c[1], {Var: p, Positive: false}},
			)
		case 3:
			out = append(out, [3]Literal{c[0], c[1], c[2]})
		default:
			ys := make([]int, len(c)-3)
			for i := range ys {
				ys[i] = fresh()
			}
			out = append(out, [3]Literal{c[0], c[1], {Var: ys[0], Positive: true}})
			for i := 1; i < len(ys); i++ {
				out = append(out, [3]Literal{
					{Var: ys[i-1], Positive: false}, c[i+1], {Var: ys[i], Positive: true},
				})
			}
			out = append(out, [3]Literal{
				{Var: ys[len(ys)-1], Positive: false}, c[len(c)-2], c[len(c)-1],
			})
		}
	}

	return ThreeSATInstance{NumVars: nextVar - 1, Clauses: out}
}

// VerifyThreeSAT is VerifySAT specialized to a ThreeSATInstance.
func VerifyThreeSAT(inst ThreeSATInstance, assignment []bool) bool {
	for _, c := range inst.Clauses {
		if !clauseSatisfied(Clause(c[:]), assignment) {
			return false
		}
	}
	return true
}
