package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Literal is one occurrence of a variable in a clause: Var is the
// 1-based DIMACS variable number, Positive is false for a negated
// occurrence.
type Literal struct {
	Var      int
	Positive bool
}

// Clause is a disjunction of literals.
type Clause []Literal

// CNF is a parsed DIMACS CNF formula.
type CNF struct {
	NumVars    int
	NumClauses int
	Clauses    []Clause
}

// Read parses a DIMACS CNF formula: everything up to the first line
// beginning with "p" is skipped; that line must have four
// whitespace-separated tokens, the fourth being the clause count m.
// Every subsequent integer token is a literal (negative k => (k,
// false), positive k => (k, true)) until a 0 terminates the current
// clause, decrementing the outstanding clause count; reading stops
// once m clauses have been closed or the input is exhausted.
func Read(r io.Reader) (*CNF, error) {
	scanner := bufio.NewScanner(r)

	var pLine string
	found := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "p") {
			pLine = line
			found = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoProblemLine
	}

	fields := strings.Fields(pLine)
	if len(fields) != 4 {
		return nil, ErrMalformedProblemLine
	}
	numVars, err1 := strconv.Atoi(fields[1])
	numClauses, err2 := strconv.Atoi(fields[3])
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedProblemLine, pLine)
	}

	cnf := &CNF{NumVars: numVars, NumClauses: numClauses}

	var current Clause
	outstanding := numClauses
	for outstanding > 0 && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLiteral, tok)
			}
			if n == 0 {
				cnf.Clauses = append(cnf.Clauses, current)
				current = nil
				outstanding--
				if outstanding == 0 {
					break
				}
				continue
			}
			if n > 0 {
				current = append(current, Literal{Var: n, Positive: true})
			} else {
				current = append(current, Literal{Var: -n, Positive: false})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		cnf.Clauses = append(cnf.Clauses, current)
	}

	return cnf, nil
}
