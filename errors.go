package fe1

import (
	"errors"
	"fmt"
)

// Kind discriminates the two disjoint failure modes Encrypt and Decrypt can
// report: a caller mistake (KindInvalidArgument) versus a well-formed input
// the algorithm cannot proceed with (KindFPEError).
type Kind int

const (
	// KindInvalidArgument means the caller-supplied arguments violate the
	// documented contract (nil n or x, empty key, nil/empty tweak, x out
	// of range, or n too large to represent). Raised before any
	// cryptographic work runs.
	KindInvalidArgument Kind = iota + 1

	// KindFPEError means the arguments are well-formed but the algorithm
	// cannot proceed: the modulus n is prime and has no nontrivial
	// factorization. Raised during or after factorization.
	KindFPEError
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindFPEError:
		return "fpe error"
	default:
		return "unknown"
	}
}

// Error is returned by Encrypt and Decrypt on failure. It carries a Kind so
// callers can distinguish their own mistakes from algorithmic impossibility
// without parsing the error string.
type Error struct {
	Kind Kind
	Op   string // "fe1.Encrypt" or "fe1.Decrypt"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func invalidArgument(op string, err error) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Err: err}
}

func fpeError(op string, err error) *Error {
	return &Error{Kind: KindFPEError, Op: op, Err: err}
}

// IsInvalidArgument reports whether err is an *Error of KindInvalidArgument.
func IsInvalidArgument(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInvalidArgument
}

// IsFPEError reports whether err is an *Error of KindFPEError.
func IsFPEError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindFPEError
}
