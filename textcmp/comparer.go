package textcmp

import (
	"hash/fnv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Direction selects the sort order applied by [Comparer.Compare].
type Direction int

const (
	// None means "do not reorder". For Compare it behaves exactly like
	// Ascending: only Descending flips the comparison sign.
	None Direction = iota

	// Ascending sorts smaller ordinal values first.
	Ascending

	// Descending sorts larger ordinal values first.
	Descending
)

// String returns the direction name: "None", "Ascending" or "Descending".
func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	}
	return "Direction(?)"
}

// Mode selects the equality semantics for operations that accept an
// explicit comparison mode (Contains, Remove, Intersection variants).
type Mode int

const (
	// ModeOrdinal compares codepoint-wise, case-sensitive.
	ModeOrdinal Mode = iota

	// ModeOrdinalIgnoreCase compares codepoint-wise after folding both
	// operands to their invariant upper form.
	ModeOrdinalIgnoreCase
)

// Valid reports whether m is one of the defined comparison modes.
func (m Mode) Valid() bool {
	return m == ModeOrdinal || m == ModeOrdinalIgnoreCase
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeOrdinal:
		return "Ordinal"
	case ModeOrdinalIgnoreCase:
		return "OrdinalIgnoreCase"
	}
	return "Mode(?)"
}

// Equal reports whether a and b are equal under the mode's semantics.
// An invalid mode compares ordinally.
func (m Mode) Equal(a, b string) bool {
	if m == ModeOrdinalIgnoreCase {
		return Fold(a) == Fold(b)
	}
	return a == b
}

// Fold returns s in its invariant (culture-independent) upper form.
//
// This is a full Unicode case mapping, so one-to-many foldings apply:
// Fold("straße") == "STRASSE".
func Fold(s string) string {
	// A cases.Caser is stateful and not safe for shared use, so one is
	// created per call.
	return cases.Upper(language.Und).String(s)
}

// Comparer is the order-and-equality policy for two text values.
//
// It is a pure value type: copy it freely, compare instances with ==.
type Comparer struct {
	// Direction flips the sign of Compare when set to Descending.
	Direction Direction

	// IgnoreCase folds both operands to invariant upper form before
	// comparing or hashing.
	IgnoreCase bool
}

// Compare returns -1, 0 or 1 ordering a relative to b.
//
// The comparison is ordinal. With IgnoreCase set, both operands are
// folded first. The sign is inverted only when Direction is Descending;
// None and Ascending produce identical results.
func (c Comparer) Compare(a, b string) int {
	if c.IgnoreCase {
		a, b = Fold(a), Fold(b)
	}
	r := strings.Compare(a, b)
	if c.Direction == Descending {
		r = -r
	}
	return r
}

// Equal reports ordinal equality of a and b, folded when IgnoreCase is
// set. Direction has no effect on equality.
func (c Comparer) Equal(a, b string) bool {
	if c.IgnoreCase {
		return Fold(a) == Fold(b)
	}
	return a == b
}

// Hash returns a bucket hash of s consistent with [Comparer.Equal]:
// values that compare equal hash identically.
//
// Empty and whitespace-only input always hashes to 0.
func (c Comparer) Hash(s string) uint32 {
	if strings.TrimSpace(s) == "" {
		return 0
	}
	if c.IgnoreCase {
		s = Fold(s)
	}
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
