package dimacs_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/graphkit/dimacs"
	"github.com/stretchr/testify/require"
)

func TestRead_S6Scenario(t *testing.T) {
	src := `c comment line, ignored
p cnf 3 4
1 2 0
-1 3 0
-2 3 0
-3 0
`
	cnf, err := dimacs.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, cnf.NumVars)
	require.Equal(t, 4, cnf.NumClauses)
	require.Len(t, cnf.Clauses, 4)
	require.Equal(t, dimacs.Clause{{Var: 1, Positive: true}, {Var: 2, Positive: true}}, cnf.Clauses[0])
	require.Equal(t, dimacs.Clause{{Var: 3, Positive: false}}, cnf.Clauses[3])
}

func TestRead_NoProblemLine(t *testing.T) {
	_, err := dimacs.Read(strings.NewReader("c only comments\nc more comments\n"))
	require.ErrorIs(t, err, dimacs.ErrNoProblemLine)
}

func TestRead_MalformedProblemLine(t *testing.T) {
	_, err := dimacs.Read(strings.NewReader("p cnf 3\n"))
	require.ErrorIs(t, err, dimacs.ErrMalformedProblemLine)
}

func TestRead_ClauseSpanningLines(t *testing.T) {
	src := "p cnf 2 1\n1\n-2\n0\n"
	cnf, err := dimacs.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, cnf.Clauses, 1)
	require.Equal(t, dimacs.Clause{{Var: 1, Positive: true}, {Var: 2, Positive: false}}, cnf.Clauses[0])
}
