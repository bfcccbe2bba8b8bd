package textlist

import (
	"fmt"
	"iter"
	"sort"

	"github.com/hasbyte1/go-text-collections/textcmp"
)

// NotFound is the sentinel index returned where no valid position exists:
// a missed lookup, or an Add suppressed by the ignore-empty flag.
const NotFound = -1

// Collection is a sortable, order-preserving, observable list of strings.
//
// Unlike a bare []string it tracks distinct insertion, reports every
// structural change to registered observers, and carries the splitting,
// joining, padding and rendering helpers that delimited-text handling
// needs. Duplicates are allowed unless a Distinct variant is used;
// insertion order is significant and preserved except across [Collection.Sort].
//
// # Creating a collection
//
//	c := textlist.New("a", "b", "c")
//	c := textlist.From([]string{"a", "b"})
//	c := textlist.Split("a, b, c", ',')
//
// All seeding constructors use distinct insertion: duplicate seed values
// collapse to their first occurrence.
//
// # Observing changes
//
//	id := c.Subscribe(func(n textlist.Notification) {
//	    fmt.Println(n) // e.g. Add("d")
//	})
//	defer c.Unsubscribe(id)
//
// # Concurrency
//
// A Collection is not safe for concurrent use. Notification delivery is
// synchronous and runs on the mutating goroutine; callers sharing one
// instance across goroutines must serialize access with their own lock.
type Collection struct {
	items        []string
	ignoreEmpty  bool
	comparer     textcmp.Comparer
	observers    []observer
	nextObserver int
	msgs         Messages
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection distinct-seeded from the given values.
func New(values ...string) *Collection {
	c := Empty()
	c.AddRangeDistinct(values...)
	return c
}

// From creates a Collection distinct-seeded from a slice.
// The slice is not retained.
func From(values []string) *Collection {
	return New(values...)
}

// FromSeq creates a Collection distinct-seeded from any finite ordered
// sequence of strings. Another collection feeds in via [Collection.Values]:
//
//	copy := textlist.FromSeq(c.Values())
func FromSeq(seq iter.Seq[string]) *Collection {
	c := Empty()
	c.AddSeqDistinct(seq)
	return c
}

// Empty creates an empty Collection.
func Empty() *Collection {
	return &Collection{msgs: DefaultMessages()}
}

// Clone returns a distinct-seeded copy of c. The copy carries c's
// ignore-empty flag and comparer but not its observers.
func (c *Collection) Clone() *Collection {
	out := Empty()
	out.ignoreEmpty = c.ignoreEmpty
	out.comparer = c.comparer
	out.msgs = c.msgs
	for _, v := range c.items {
		out.AddDistinct(v)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Configuration
// ─────────────────────────────────────────────────────────────────────────────

// SetIgnoreEmpty controls whether Add, AddRange, PadStart and PadEnd
// treat an empty value as a no-op. Insert is exempt: it stores empty
// values regardless.
func (c *Collection) SetIgnoreEmpty(ignore bool) { c.ignoreEmpty = ignore }

// IgnoresEmpty reports whether empty values are skipped by Add and the
// padding operations.
func (c *Collection) IgnoresEmpty() bool { return c.ignoreEmpty }

// Comparer returns the comparer currently attached to the collection.
// Its direction reflects the most recent [Collection.Sort] call.
func (c *Collection) Comparer() textcmp.Comparer { return c.comparer }

// SetIgnoreCase controls whether the attached comparer folds case when
// sorting.
func (c *Collection) SetIgnoreCase(ignore bool) { c.comparer.IgnoreCase = ignore }

// SetMessages replaces the error-message renderer. A nil m restores the
// default renderer.
func (c *Collection) SetMessages(m Messages) {
	if m == nil {
		m = DefaultMessages()
	}
	c.msgs = m
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors & iteration
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements.
func (c *Collection) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no elements.
func (c *Collection) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one element.
func (c *Collection) IsNotEmpty() bool { return len(c.items) > 0 }

// All returns a copy of the elements as a plain slice.
func (c *Collection) All() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

// Values returns an iterator over the elements in order. The collection
// must not be mutated while iterating.
func (c *Collection) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range c.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Each calls fn(value, index) for every element in order.
func (c *Collection) Each(fn func(string, int)) {
	for i, v := range c.items {
		fn(v, i)
	}
}

// Get returns the element at index, or [ErrOutOfRange] when index is
// outside [0, Count()).
func (c *Collection) Get(index int) (string, error) {
	if index < 0 || index >= len(c.items) {
		return "", fmt.Errorf("%w: %s", ErrOutOfRange, c.msgs.OutOfRange("index", index, len(c.items)))
	}
	return c.items[index], nil
}

// First returns the first element, or [ErrEmptyCollection].
func (c *Collection) First() (string, error) {
	if len(c.items) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyCollection, c.msgs.EmptyCollection("First"))
	}
	return c.items[0], nil
}

// Last returns the last element, or [ErrEmptyCollection].
func (c *Collection) Last() (string, error) {
	if len(c.items) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyCollection, c.msgs.EmptyCollection("Last"))
	}
	return c.items[len(c.items)-1], nil
}

// FirstOrDefault returns the first element, or "" when the collection is
// empty.
func (c *Collection) FirstOrDefault() string {
	if len(c.items) == 0 {
		return ""
	}
	return c.items[0]
}

// LastOrDefault returns the last element, or "" when the collection is
// empty.
func (c *Collection) LastOrDefault() string {
	if len(c.items) == 0 {
		return ""
	}
	return c.items[len(c.items)-1]
}

// IndexOf returns the position of the first element ordinally equal to
// value, or [NotFound].
func (c *Collection) IndexOf(value string) int {
	for i, v := range c.items {
		if v == value {
			return i
		}
	}
	return NotFound
}

// Contains reports whether the collection holds an element ordinally
// equal to value.
func (c *Collection) Contains(value string) bool {
	return c.IndexOf(value) != NotFound
}

// ContainsWith reports membership under the given comparison mode.
// An undefined mode yields [ErrInvalidArgument].
func (c *Collection) ContainsWith(value string, mode textcmp.Mode) (bool, error) {
	if !mode.Valid() {
		return false, fmt.Errorf("%w: %s", ErrInvalidArgument, c.msgs.InvalidArgument("mode", mode))
	}
	for _, v := range c.items {
		if mode.Equal(v, value) {
			return true, nil
		}
	}
	return false, nil
}

// ContentEquals reports whether c and other have the same count and
// every element of c is a member of other under ordinal comparison.
//
// This is membership, not multiset equality: duplicates are not counted,
// so {"a","a","b"} and {"a","b","b"} compare equal. A nil other is never
// equal.
func (c *Collection) ContentEquals(other *Collection) bool {
	if other == nil || len(c.items) != len(other.items) {
		return false
	}
	for _, v := range c.items {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Intersection returns a new collection of the elements present in both
// c and other under ordinal comparison. See [Collection.IntersectionWith].
func (c *Collection) Intersection(other *Collection) *Collection {
	out, _ := c.IntersectionWith(other, textcmp.ModeOrdinal)
	return out
}

// IntersectionWith returns a new collection of the elements present in
// both c and other under the given mode. The smaller side is iterated
// and the larger side probed, so element order follows the smaller
// side; the result is distinct-inserted and never holds duplicates.
//
// A nil other yields a distinct copy of c. An undefined mode yields
// [ErrInvalidArgument].
func (c *Collection) IntersectionWith(other *Collection, mode textcmp.Mode) (*Collection, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, c.msgs.InvalidArgument("mode", mode))
	}
	out := Empty()
	if other == nil {
		for _, v := range c.items {
			out.AddDistinct(v)
		}
		return out, nil
	}
	source, lookup := c, other
	if other.Count() < c.Count() {
		source, lookup = other, c
	}
	for _, v := range source.items {
		if found, _ := lookup.ContainsWith(v, mode); found {
			out.AddDistinct(v)
		}
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Adding
// ─────────────────────────────────────────────────────────────────────────────

// Add appends value and returns its new index. When value is empty and
// the ignore-empty flag is set, nothing is stored, no notification is
// delivered, and [NotFound] is returned.
func (c *Collection) Add(value string) int {
	if value == "" && c.ignoreEmpty {
		return NotFound
	}
	c.items = append(c.items, value)
	c.notify(OpAdd, value)
	return len(c.items) - 1
}

// AddDistinct appends value unless an ordinally equal element already
// exists, in which case the existing element's index is returned and no
// notification is delivered.
func (c *Collection) AddDistinct(value string) int {
	if i := c.IndexOf(value); i != NotFound {
		return i
	}
	return c.Add(value)
}

// AddRange appends each value in order via [Collection.Add].
func (c *Collection) AddRange(values ...string) {
	for _, v := range values {
		c.Add(v)
	}
}

// AddRangeDistinct appends each value in order via [Collection.AddDistinct].
func (c *Collection) AddRangeDistinct(values ...string) {
	for _, v := range values {
		c.AddDistinct(v)
	}
}

// AddSeq appends every element of seq in order via [Collection.Add].
func (c *Collection) AddSeq(seq iter.Seq[string]) {
	for v := range seq {
		c.Add(v)
	}
}

// AddSeqDistinct appends every element of seq in order via
// [Collection.AddDistinct].
func (c *Collection) AddSeqDistinct(seq iter.Seq[string]) {
	for v := range seq {
		c.AddDistinct(v)
	}
}

// Assign replaces the contents with values: the current elements are
// cleared without per-element notifications, then each value is added
// via [Collection.Add].
func (c *Collection) Assign(values ...string) {
	c.items = c.items[:0]
	c.AddRange(values...)
}

// AssignSeq replaces the contents with the elements of seq. See
// [Collection.Assign].
func (c *Collection) AssignSeq(seq iter.Seq[string]) {
	c.items = c.items[:0]
	c.AddSeq(seq)
}

// ─────────────────────────────────────────────────────────────────────────────
// Inserting & updating
// ─────────────────────────────────────────────────────────────────────────────

// Insert places value at index, shifting later elements right, and
// notifies Insert. index must lie in [0, Count()].
//
// Insert stores empty values even when the ignore-empty flag is set;
// only Add and the padding operations honor that flag.
func (c *Collection) Insert(index int, value string) error {
	if index < 0 || index > len(c.items) {
		return fmt.Errorf("%w: %s", ErrOutOfRange, c.msgs.OutOfRange("index", index, len(c.items)))
	}
	c.items = append(c.items, "")
	copy(c.items[index+1:], c.items[index:])
	c.items[index] = value
	c.notify(OpInsert, value)
	return nil
}

// InsertRange inserts each value in order starting at index, advancing
// the insertion point after each so the source order is preserved. One
// Insert notification is delivered per element.
func (c *Collection) InsertRange(index int, values ...string) error {
	if index < 0 || index > len(c.items) {
		return fmt.Errorf("%w: %s", ErrOutOfRange, c.msgs.OutOfRange("index", index, len(c.items)))
	}
	for i, v := range values {
		if err := c.Insert(index+i, v); err != nil {
			return err
		}
	}
	return nil
}

// Set overwrites the element at index and notifies Update. index must
// lie in [0, Count()).
func (c *Collection) Set(index int, value string) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%w: %s", ErrOutOfRange, c.msgs.OutOfRange("index", index, len(c.items)))
	}
	c.items[index] = value
	c.notify(OpUpdate, value)
	return nil
}

// Find returns the stored element ordinally equal to value. A miss is
// reported as [ErrOutOfRange], the fault produced by resolving the
// lookup to index -1.
func (c *Collection) Find(value string) (string, error) {
	i := c.IndexOf(value)
	if i == NotFound {
		return "", fmt.Errorf("%w: %s", ErrOutOfRange, c.msgs.NotFound(value))
	}
	return c.items[i], nil
}

// Replace overwrites the first element ordinally equal to oldValue with
// newValue and notifies Update. A miss is reported as [ErrOutOfRange],
// as for [Collection.Find].
func (c *Collection) Replace(oldValue, newValue string) error {
	i := c.IndexOf(oldValue)
	if i == NotFound {
		return fmt.Errorf("%w: %s", ErrOutOfRange, c.msgs.NotFound(oldValue))
	}
	c.items[i] = newValue
	c.notify(OpUpdate, newValue)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Removing
// ─────────────────────────────────────────────────────────────────────────────

// Remove deletes the first element ordinally equal to value and reports
// whether anything was deleted. A Remove notification is delivered
// whether or not a match existed.
func (c *Collection) Remove(value string) bool {
	removed, _ := c.RemoveWith(value, textcmp.ModeOrdinal, true)
	return removed
}

// RemoveWith removes value using mode for the existence check. An
// undefined mode yields [ErrInvalidArgument].
//
// When ignoreNonExisting is false the call is a complete no-op: no
// search, no notification, no removal. Otherwise a Remove notification
// is always delivered — on the found and not-found paths alike — and
// the structural removal then targets the first *ordinal* match
// regardless of mode, so a case-insensitive hit may notify without
// removing anything.
func (c *Collection) RemoveWith(value string, mode textcmp.Mode, ignoreNonExisting bool) (bool, error) {
	if !mode.Valid() {
		return false, fmt.Errorf("%w: %s", ErrInvalidArgument, c.msgs.InvalidArgument("mode", mode))
	}
	if !ignoreNonExisting {
		return false, nil
	}
	c.notify(OpRemove, value)
	if i := c.IndexOf(value); i != NotFound {
		c.items = append(c.items[:i], c.items[i+1:]...)
		return true, nil
	}
	return false, nil
}

// RemoveRange applies [Collection.Remove] to each value in order.
func (c *Collection) RemoveRange(values ...string) {
	for _, v := range values {
		c.Remove(v)
	}
}

// RemoveSeq applies [Collection.Remove] to every element of seq.
func (c *Collection) RemoveSeq(seq iter.Seq[string]) {
	for v := range seq {
		c.Remove(v)
	}
}

// RemoveEmpty deletes every empty element, preserving the relative
// order of the survivors, and returns the number removed. The scan runs
// from the end backward and delivers one Remove notification per
// deleted element, before each deletion.
func (c *Collection) RemoveEmpty() int {
	removed := 0
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i] != "" {
			continue
		}
		c.notify(OpRemove, c.items[i])
		c.items = append(c.items[:i], c.items[i+1:]...)
		removed++
	}
	return removed
}

// ─────────────────────────────────────────────────────────────────────────────
// Padding & sorting
// ─────────────────────────────────────────────────────────────────────────────

// PadStart prepends value until the collection holds at least length
// elements, notifying Insert per element. The whole call is a no-op
// when value is empty and the ignore-empty flag is set; the flag is
// checked once, not per iteration.
func (c *Collection) PadStart(length int, value string) {
	if value == "" && c.ignoreEmpty {
		return
	}
	for len(c.items) < length {
		c.items = append(c.items, "")
		copy(c.items[1:], c.items)
		c.items[0] = value
		c.notify(OpInsert, value)
	}
}

// PadEnd appends value until the collection holds at least length
// elements. Padding always reports Insert, even though PadEnd grows the
// tail. The empty-value no-op rule matches [Collection.PadStart].
func (c *Collection) PadEnd(length int, value string) {
	if value == "" && c.ignoreEmpty {
		return
	}
	for len(c.items) < length {
		c.items = append(c.items, value)
		c.notify(OpInsert, value)
	}
}

// Sort orders the elements by the attached comparer after storing
// direction on it. The sort is stable. [textcmp.None] sorts exactly as
// [textcmp.Ascending]: only [textcmp.Descending] flips the comparison.
func (c *Collection) Sort(direction textcmp.Direction) {
	c.comparer.Direction = direction
	sort.SliceStable(c.items, func(i, j int) bool {
		return c.comparer.Compare(c.items[i], c.items[j]) < 0
	})
}
