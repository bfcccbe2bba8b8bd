package textlist

import "fmt"

// Operation identifies the kind of mutation described by a [Notification].
type Operation int

const (
	// OpAdd is an append through Add or one of the range/seeding paths.
	OpAdd Operation = iota

	// OpInsert is a positional insert, including PadStart and PadEnd.
	OpInsert

	// OpUpdate is an overwrite of an existing slot (Set, Replace).
	OpUpdate

	// OpRemove is a removal, delivered even when nothing matched (see
	// the policy table below).
	OpRemove
)

// String returns the operation name: "Add", "Insert", "Update" or "Remove".
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpInsert:
		return "Insert"
	case OpUpdate:
		return "Update"
	case OpRemove:
		return "Remove"
	}
	return "Operation(?)"
}

// Notification is the immutable record of a single mutation. A fresh
// value is constructed per event and never retained by the collection.
type Notification struct {
	// Value is the text involved in the mutation, as the caller passed
	// it. For a Remove that matched nothing it still carries the
	// requested value.
	Value string

	// Op is the kind of mutation.
	Op Operation
}

// String returns a human-readable form: "Add(\"value\")".
func (n Notification) String() string {
	return fmt.Sprintf("%s(%q)", n.Op, n.Value)
}

// ObserverFunc receives one [Notification] per structural change.
// Delivery is synchronous; the callback must not mutate the collection
// it observes.
type ObserverFunc func(Notification)

type observer struct {
	id int
	fn ObserverFunc
}

// Notification policy, per operation. The asymmetries are deliberate and
// load-bearing for existing observers; keep this table in sync with the
// mutation methods rather than "fixing" an entry in place.
//
//	Add        skipped entirely (no notify, no mutate) for "" + ignoreEmpty;
//	           otherwise mutate, then notify.
//	AddDistinct silent when the value already exists.
//	Insert     always notifies, even for "" + ignoreEmpty; mutate, then notify.
//	Pad*       one Insert notification per grown slot (PadEnd appends but
//	           still reports Insert); whole call silent for "" + ignoreEmpty.
//	Set/Replace mutate, then notify Update.
//	Remove*    notify first, then mutate; notifies even when nothing
//	           matched. ignoreNonExisting=false suppresses everything.
//	Assign     the clear step is silent; re-adds notify as Add.
//	Sort       silent.

// Subscribe registers fn to receive every future notification and
// returns an id for [Collection.Unsubscribe]. Observers are invoked
// synchronously, in registration order. A nil fn is not registered and
// yields id -1.
func (c *Collection) Subscribe(fn ObserverFunc) int {
	if fn == nil {
		return NotFound
	}
	c.nextObserver++
	c.observers = append(c.observers, observer{id: c.nextObserver, fn: fn})
	return c.nextObserver
}

// Unsubscribe removes the observer registered under id and reports
// whether it was found.
func (c *Collection) Unsubscribe(id int) bool {
	for i, o := range c.observers {
		if o.id == id {
			c.observers = append(c.observers[:i], c.observers[i+1:]...)
			return true
		}
	}
	return false
}

// notify builds the payload and delivers it to every observer in
// registration order.
func (c *Collection) notify(op Operation, value string) {
	if len(c.observers) == 0 {
		return
	}
	n := Notification{Value: value, Op: op}
	for _, o := range c.observers {
		o.fn(n)
	}
}
