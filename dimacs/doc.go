// Package dimacs reads CNF formulas in DIMACS format, the standard file
// format for 2-SAT and 3-SAT instances, using a plain bufio.Scanner +
// strconv reader with no external parser dependency. No other package
// of the module imports it.
package dimacs
