package npc

import "errors"

// ErrInvalidInstance indicates a reduction's input instance violates a
// precondition of the problem it claims to be (e.g. a 3-SAT instance
// with a clause of the wrong length).
var ErrInvalidInstance = errors.New("npc: invalid problem instance")
