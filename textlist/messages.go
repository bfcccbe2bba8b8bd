package textlist

import "fmt"

// Messages renders the human-readable detail text attached to collection
// errors. The collection only selects the error kind and supplies the
// parameters; how those parameters become text is this collaborator's
// job, so applications can swap in their own (for example localized)
// renderer via [Collection.SetMessages].
type Messages interface {
	// OutOfRange describes an index or count parameter outside its valid
	// domain. param names the offending parameter, value is what the
	// caller passed, and limit is the boundary that was violated.
	OutOfRange(param string, value, limit int) string

	// EmptyCollection describes an operation that requires at least one
	// element.
	EmptyCollection(op string) string

	// InvalidArgument describes an argument of the wrong kind.
	InvalidArgument(param string, value any) string

	// NotFound describes a by-value lookup that matched no element.
	NotFound(value string) string
}

// DefaultMessages returns the built-in English message renderer.
func DefaultMessages() Messages { return defaultMessages{} }

type defaultMessages struct{}

func (defaultMessages) OutOfRange(param string, value, limit int) string {
	return fmt.Sprintf("%s %d is outside the valid range (limit %d)", param, value, limit)
}

func (defaultMessages) EmptyCollection(op string) string {
	return fmt.Sprintf("%s requires a non-empty collection", op)
}

func (defaultMessages) InvalidArgument(param string, value any) string {
	return fmt.Sprintf("%s has invalid value %v", param, value)
}

func (defaultMessages) NotFound(value string) string {
	return fmt.Sprintf("value %q not found (index -1)", value)
}
