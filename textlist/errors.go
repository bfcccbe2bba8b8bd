package textlist

import "errors"

// Sentinel errors returned by Collection operations and the Split parsers.
//
// Every error returned by this package wraps exactly one of these, so
// callers can classify failures with [errors.Is]:
//
//	if _, err := c.Get(99); errors.Is(err, textlist.ErrOutOfRange) {
//	    // index outside the collection
//	}
var (
	// ErrOutOfRange is returned when an index or count parameter falls
	// outside its valid domain (element access, insert position, Join
	// bounds, Split startIndex/count).
	ErrOutOfRange = errors.New("textlist: index or count out of range")

	// ErrEmptyCollection is returned by First and Last when the
	// collection has no elements.
	ErrEmptyCollection = errors.New("textlist: operation on empty collection")

	// ErrInvalidArgument is returned when an operation receives an
	// argument of the wrong kind, such as an undefined comparison mode.
	ErrInvalidArgument = errors.New("textlist: invalid argument")
)
