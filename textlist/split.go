package textlist

import (
	"fmt"
	"strings"
)

// Split builds a Collection from expression by scanning for delimiter,
// with the default window (startIndex 1, unlimited count). Segments are
// trimmed of surrounding whitespace:
//
//	textlist.Split("a, b, c", ',') // → {"a", "b", "c"}
//
// An empty expression yields an empty collection.
func Split(expression string, delimiter rune) *Collection {
	c, _ := SplitRange(expression, delimiter, 1, -1)
	return c
}

// SplitDistinct is [Split] with every segment inserted via distinct
// insertion, so repeated segments collapse to their first occurrence.
func SplitDistinct(expression string, delimiter rune) *Collection {
	c, _ := SplitRangeDistinct(expression, delimiter, 1, -1)
	return c
}

// SplitRange builds a Collection from a windowed scan of expression.
//
// Counting is 1-based: startIndex must be >= 1 ([ErrOutOfRange]
// otherwise) and count must be >= -1, where -1 means unlimited.
//
// The scanner walks expression rune by rune, accumulating a segment. At
// each delimiter the segment is emitted — trimmed — only when the
// running segment index has reached startIndex and fewer than count
// segments have been emitted. A delimiter hit outside that window
// swallows the accumulated characters *without advancing the segment
// index or the emitted count*, so consecutive out-of-window delimiters
// collapse silently, and a startIndex above 1 keeps the gate shut for
// the entire scan. The final trailing segment is always appended,
// trimmed, regardless of the window. An empty expression produces an
// empty collection rather than a single empty segment.
func SplitRange(expression string, delimiter rune, startIndex, count int) (*Collection, error) {
	return splitRange(expression, delimiter, startIndex, count, (*Collection).Add)
}

// SplitRangeDistinct is [SplitRange] with every emitted segment —
// including the trailing one — inserted via distinct insertion.
func SplitRangeDistinct(expression string, delimiter rune, startIndex, count int) (*Collection, error) {
	return splitRange(expression, delimiter, startIndex, count, (*Collection).AddDistinct)
}

func splitRange(expression string, delimiter rune, startIndex, count int, add func(*Collection, string) int) (*Collection, error) {
	c := Empty()
	if startIndex <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, c.msgs.OutOfRange("startIndex", startIndex, 1))
	}
	if count <= -2 {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, c.msgs.OutOfRange("count", count, -1))
	}
	if expression == "" {
		return c, nil
	}
	var segment strings.Builder
	segmentIndex := 1
	emitted := 0
	for _, r := range expression {
		if r != delimiter {
			segment.WriteRune(r)
			continue
		}
		if segmentIndex >= startIndex && (count == -1 || emitted < count) {
			add(c, strings.TrimSpace(segment.String()))
			segmentIndex++
			emitted++
		}
		segment.Reset()
	}
	add(c, strings.TrimSpace(segment.String()))
	return c, nil
}
