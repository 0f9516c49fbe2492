package domain

import "errors"

// Domain operations report violated preconditions by wrapping one of these
// sentinels; callers match them with errors.Is. There is no retry or recovery
// for a pure value type, every violation surfaces at the offending call.

// ErrInvalidArgument indicates an input that violates a domain invariant.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNilOperand indicates a required operand was absent.
var ErrNilOperand = errors.New("nil operand")

// ErrInvalidOperation indicates an operation between incompatible values.
var ErrInvalidOperation = errors.New("invalid operation")
