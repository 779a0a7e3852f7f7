package ordtrees

import "errors"

var (
	// ErrInvalidArgument signals a violated precondition on an argument,
	// e.g. a reversed range.
	ErrInvalidArgument = errors.New("ordtrees: invalid argument")
	// ErrIndexOutOfBounds signals an invalid positional index. Errors
	// flagging it always wrap ErrInvalidArgument as well.
	ErrIndexOutOfBounds = errors.New("ordtrees: index out of bounds")
	// ErrUnsupportedOperation signals an operation the container has not
	// been configured for, e.g. lazy range updates on a min tree.
	ErrUnsupportedOperation = errors.New("ordtrees: unsupported operation")
	// ErrIncompatibleOperands signals an operation across two containers
	// which do not fit together.
	ErrIncompatibleOperands = errors.New("ordtrees: incompatible operands")
	// ErrCorrupted is reported by invariant checkers.
	ErrCorrupted = errors.New("ordtrees: invariant violated")
)
