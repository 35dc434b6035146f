package errs

import "errors"

// Kind classifies an error for callers that need to react to its category
// rather than its concrete type, e.g. to pick a transport status code.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindNotFound
	KindNoChange
	KindInvalidStatus
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindNoChange:
		return "no_change"
	case KindInvalidStatus:
		return "invalid_status"
	case KindConflict:
		return "conflict"
	case KindInternal:
		return "internal"
	default:
		return "internal"
	}
}

// KindOf returns the Kind of err. Nil and unclassified errors are KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrNoChange):
		return KindNoChange
	case errors.Is(err, ErrStatusIsInvalid):
		return KindInvalidStatus
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrVersionIsInvalid):
		return KindConflict
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidInput
	default:
		return KindInternal
	}
}
