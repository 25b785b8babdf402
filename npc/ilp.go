package npc

// SATToILP rewrites a CNF formula as a 0/1 integer program: one
// boolean variable per SAT variable, one >= 1 constraint per clause
// (literal l contributes +1*x_v if positive, or the constant 1 minus
// x_v if negated, folded into the constraint's Bound). A clause
// (a, !b, c) becomes x_a + (1-x_b) + x_c >= 1, i.e. x_a - x_b + x_c >=
// 0 after folding the constant into Bound.
func SATToILP(inst SATInstance) ILPInstance {
	constraints := make([]ILPConstraint, 0, len(inst.Clauses))
	for _, c := range inst.Clauses {
		vars := make([]int, len(c))
		coeffs := make([]int, len(c))
		bound := 1
		for i, lit := range c {
			vars[i] = lit.Var
			if lit.Positive {
				coeffs[i] = 1
			} else {
				coeffs[i] = -1
				bound--
			}
		}
		constraints = append(constraints, ILPConstraint{Vars: vars, Coeffs: coeffs, Bound: bound})
	}
	return ILPInstance{NumVars: inst.NumVars, Constraints: constraints}
}

// VerifyILP reports whether assignment (0/1 per variable, indexed by
// variable number, index 0 unused) satisfies every constraint of inst.
func VerifyILP(inst ILPInstance, assignment []int) bool {
	for _, ct := range inst.Constraints {
		sum := 0
		for i, v := range ct.Vars {
			if v <= 0 || v >= len(assignment) {
				continue
			}
			sum += ct.Coeffs[i] * assignment[v]
		}
		if sum < ct.Bound {
			return false
		}
	}
	return true
}
