// Package textcmp provides the ordering and equality policy used by the
// textlist package: a small [Comparer] value type parameterized by sort
// direction and case sensitivity, and a [Mode] enum for the comparison
// semantics accepted by mode-parameterized collection operations.
//
// # Comparer
//
// A Comparer is a pure value type. Two Comparers are equal (==) exactly
// when their Direction and IgnoreCase fields match:
//
//	c := textcmp.Comparer{Direction: textcmp.Ascending, IgnoreCase: true}
//	c.Compare("apple", "Banana") // → -1
//	c.Equal("straße", "STRASSE") // → true (invariant upper folding)
//	c.Hash("apple")              // → FNV-1a bucket hash
//
// Comparison is always ordinal (codepoint-wise, not culture-aware). When
// IgnoreCase is set, both operands are first folded to their invariant
// upper form via golang.org/x/text. Direction only flips the sign of
// Compare when it is [Descending]; [None] compares the same as
// [Ascending].
//
// # Hashing
//
// Hash exists so a Comparer can double as an equality+hash pair for
// set-like use. It is a fast non-cryptographic bucket hash: empty or
// whitespace-only input hashes to the fixed sentinel 0, and two values
// for which Equal reports true always hash identically.
package textcmp
