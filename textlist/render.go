package textlist

import (
	"fmt"
	"strings"
)

// String returns the elements joined with a single space.
// It implements [fmt.Stringer].
func (c *Collection) String() string {
	return c.Text(" ")
}

// Text returns the elements joined with delimiter.
//
// An empty delimiter does not produce a contiguous join: it falls back
// to a generic representation of the collection object itself, not its
// contents. Callers wanting an unseparated join should render via
// [Collection.All] and strings.Join.
func (c *Collection) Text(delimiter string) string {
	if delimiter == "" {
		return fmt.Sprintf("%T(%d)", c, len(c.items))
	}
	return c.TextRange(0, len(c.items), delimiter)
}

// TextRange joins the elements in [max(0, startIndex), min(count, Count()))
// with delimiter.
//
// Note that count is an absolute exclusive upper bound on the index, not
// the number of elements taken from startIndex: TextRange(1, 3, ",") on
// five elements renders indices 1 and 2.
func (c *Collection) TextRange(startIndex, count int, delimiter string) string {
	return c.TextRangeEnclosed(startIndex, count, delimiter, "", "")
}

// TextQuoted joins the full range with delimiter, wrapping every element
// in quotation on both sides.
func (c *Collection) TextQuoted(delimiter, quotation string) string {
	return c.TextRangeEnclosed(0, len(c.items), delimiter, quotation, quotation)
}

// TextEnclosed joins the full range with delimiter, wrapping every
// element in begin and end.
func (c *Collection) TextEnclosed(delimiter, begin, end string) string {
	return c.TextRangeEnclosed(0, len(c.items), delimiter, begin, end)
}

// TextRangeEnclosed joins the elements in [max(0, startIndex),
// min(count, Count())) with delimiter, wrapping every element in begin
// and end. The range rule matches [Collection.TextRange]: count is an
// exclusive upper bound, not an element count.
func (c *Collection) TextRangeEnclosed(startIndex, count int, delimiter, begin, end string) string {
	lo := max(0, startIndex)
	hi := min(count, len(c.items))
	if lo >= hi {
		return ""
	}
	var b strings.Builder
	for i := lo; i < hi; i++ {
		if i > lo {
			b.WriteString(delimiter)
		}
		b.WriteString(begin)
		b.WriteString(c.items[i])
		b.WriteString(end)
	}
	return b.String()
}

// ToArray materializes the range into a fixed slice of exactly count
// slots. Only indices in [startIndex, min(count, Count())) are filled
// from the collection; slots below startIndex keep the zero value "".
// count must be non-negative.
func (c *Collection) ToArray(startIndex, count int) []string {
	out := make([]string, count)
	hi := min(count, len(c.items))
	for i := max(0, startIndex); i < hi; i++ {
		out[i] = c.items[i]
	}
	return out
}

// ToList materializes the elements in [max(0, startIndex),
// min(count, Count())) into a compact slice. As with
// [Collection.TextRange], count is an exclusive upper bound on the
// index, not an element count.
func (c *Collection) ToList(startIndex, count int) []string {
	lo := max(0, startIndex)
	hi := min(count, len(c.items))
	if lo >= hi {
		return []string{}
	}
	out := make([]string, hi-lo)
	copy(out, c.items[lo:hi])
	return out
}

// Join returns the elements in [startIndex, startIndex+count-1] joined
// with delimiter, or the whole tail from startIndex when count is -1.
// An empty collection joins to "" regardless of the other arguments.
//
// startIndex must lie in [0, Count()]. A count other than -1 must be
// non-negative and satisfy startIndex+count < Count() — strictly less,
// so the largest accepted count stops one element short of the tail:
// on three elements, Join(",", 2, 1) is rejected with [ErrOutOfRange]
// while Join(",", 1, 0) is valid (and joins nothing).
func (c *Collection) Join(delimiter string, startIndex, count int) (string, error) {
	if len(c.items) == 0 {
		return "", nil
	}
	if startIndex < 0 || startIndex > len(c.items) {
		return "", fmt.Errorf("%w: %s", ErrOutOfRange, c.msgs.OutOfRange("startIndex", startIndex, len(c.items)))
	}
	end := len(c.items) - 1
	if count != -1 {
		if count < 0 || startIndex+count >= len(c.items) {
			return "", fmt.Errorf("%w: %s", ErrOutOfRange, c.msgs.OutOfRange("count", count, len(c.items)))
		}
		end = startIndex + count - 1
	}
	if startIndex > end {
		return "", nil
	}
	return strings.Join(c.items[startIndex:end+1], delimiter), nil
}
