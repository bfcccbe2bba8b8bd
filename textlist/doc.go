// Package textlist provides a sortable, order-preserving collection of
// strings with synchronous change notifications, distinct-insertion
// semantics, and helpers for splitting, joining, padding and rendering
// delimited text.
//
// # Overview
//
// The central type is [Collection], a mutable ordered string list meant
// to be embedded wherever an application needs more than a bare
// []string:
//
//	c := textlist.Split("alpha, beta, gamma", ',')
//	c.Add("delta")
//	c.Sort(textcmp.Ascending)
//	s, _ := c.Join(", ", 0, -1) // → "alpha, beta, delta, gamma"
//
// # Change notifications
//
// Every structural change delivers an immutable [Notification] to the
// observers registered with [Collection.Subscribe], synchronously and
// in registration order. The per-operation delivery rules — including
// the deliberate asymmetries around empty values and missed removals —
// are tabulated in notify.go. Observers must not mutate the collection
// they observe; range-oriented operations may be mid-iteration when the
// callback runs.
//
// # Distinct insertion
//
// Seeding constructors ([New], [From], [FromSeq], [Collection.Clone])
// and the Distinct method variants use add-if-absent semantics keyed by
// ordinal equality. Plain Add, Insert and the range variants permit
// duplicates.
//
// # Empty values
//
// With [Collection.SetIgnoreEmpty] enabled, Add and the padding
// operations treat "" as a no-op. Insert is deliberately exempt and
// stores empty values regardless.
//
// # Errors
//
// Failures wrap one of three sentinels — [ErrOutOfRange],
// [ErrEmptyCollection], [ErrInvalidArgument] — classified with
// errors.Is. The detail text is rendered by an injectable [Messages]
// collaborator ([Collection.SetMessages]), keeping wording and
// localization out of the core.
//
// # Concurrency
//
// A Collection is single-threaded by design: no internal locking, and
// synchronous observer delivery on the mutating goroutine. Sharing an
// instance across goroutines requires an external lock.
package textlist
