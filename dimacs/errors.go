package dimacs

import "errors"

// ErrNoProblemLine indicates the input had no line beginning with "p".
var ErrNoProblemLine = errors.New("dimacs: no problem line found")

// ErrMalformedProblemLine indicates the "p" line did not have four
// whitespace-separated tokens, or its numeric fields failed to parse.
var ErrMalformedProblemLine = errors.New("dimacs: malformed problem line")

// ErrMalformedLiteral indicates a clause token failed to parse as a
// signed integer.
var ErrMalformedLiteral = errors.New("dimacs: malformed literal")
