package textlist_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-text-collections/textlist"
)

func TestStringJoinsWithSpace(t *testing.T) {
	if got := list("a", "b", "c").String(); got != "a b c" {
		t.Fatalf("String() = %q; want \"a b c\"", got)
	}
}

func TestText(t *testing.T) {
	c := list("a", "b", "c")
	if got := c.Text(", "); got != "a, b, c" {
		t.Fatalf("Text = %q", got)
	}
	if got := textlist.Empty().Text(","); got != "" {
		t.Fatalf("Text on empty = %q; want \"\"", got)
	}
}

func TestTextEmptyDelimiterFallsBackToObjectForm(t *testing.T) {
	c := list("a", "b")
	want := "*textlist.Collection(2)"
	if got := c.Text(""); got != want {
		t.Fatalf("Text(\"\") = %q; want %q", got, want)
	}
}

func TestTextRangeCountIsUpperBound(t *testing.T) {
	c := list("a", "b", "c", "d", "e")
	// count is an exclusive upper bound on the index, not an element
	// count: indices 1 and 2 only.
	if got := c.TextRange(1, 3, ","); got != "b,c" {
		t.Fatalf("TextRange(1, 3) = %q; want \"b,c\"", got)
	}
	if got := c.TextRange(-2, 2, ","); got != "a,b" {
		t.Fatalf("TextRange(-2, 2) = %q; want \"a,b\"", got)
	}
	if got := c.TextRange(0, 99, ","); got != "a,b,c,d,e" {
		t.Fatalf("TextRange(0, 99) = %q", got)
	}
	if got := c.TextRange(3, 2, ","); got != "" {
		t.Fatalf("inverted range = %q; want \"\"", got)
	}
}

func TestTextQuoted(t *testing.T) {
	c := list("a", "b")
	if got := c.TextQuoted(",", `"`); got != `"a","b"` {
		t.Fatalf("TextQuoted = %q", got)
	}
	if got := c.TextEnclosed(", ", "<", ">"); got != "<a>, <b>" {
		t.Fatalf("TextEnclosed = %q", got)
	}
	if got := c.TextRangeEnclosed(1, 2, ",", "[", "]"); got != "[b]" {
		t.Fatalf("TextRangeEnclosed = %q", got)
	}
}

func TestToArrayLeavesLowSlotsZero(t *testing.T) {
	c := list("a", "b", "c", "d")
	got := c.ToArray(2, 4)
	// Allocated to count, filled only from startIndex up.
	assertSlice(t, got, []string{"", "", "c", "d"})
	got = c.ToArray(0, 2)
	assertSlice(t, got, []string{"a", "b"})
	// count past the end: tail slots stay zero-valued.
	got = c.ToArray(3, 6)
	assertSlice(t, got, []string{"", "", "", "d", "", ""})
}

func TestToList(t *testing.T) {
	c := list("a", "b", "c", "d")
	assertSlice(t, c.ToList(1, 3), []string{"b", "c"})
	assertSlice(t, c.ToList(0, 99), []string{"a", "b", "c", "d"})
	assertSlice(t, c.ToList(3, 2), []string{})
	assertSlice(t, c.ToList(-1, 2), []string{"a", "b"})
}

func TestJoin(t *testing.T) {
	c := list("a", "b", "c")
	got, err := c.Join(",", 0, -1)
	if err != nil || got != "a,b,c" {
		t.Fatalf("Join(0, -1) = %q, %v", got, err)
	}
	got, err = c.Join(",", 1, -1)
	if err != nil || got != "b,c" {
		t.Fatalf("Join(1, -1) = %q, %v", got, err)
	}
	got, err = c.Join(",", 0, 2)
	if err != nil || got != "a,b" {
		t.Fatalf("Join(0, 2) = %q, %v", got, err)
	}
}

func TestJoinEmptyCollection(t *testing.T) {
	got, err := textlist.Empty().Join(",", 99, 99)
	if err != nil || got != "" {
		t.Fatalf("Join on empty = %q, %v; want \"\", nil", got, err)
	}
}

func TestJoinBounds(t *testing.T) {
	c := list("a", "b", "c")

	// startIndex+count must be strictly below Count(): 1+0 < 3 is valid
	// (and joins nothing)…
	got, err := c.Join(",", 1, 0)
	if err != nil || got != "" {
		t.Fatalf("Join(1, 0) = %q, %v; want \"\", nil", got, err)
	}
	// …while 2+1 == 3 is rejected.
	if _, err := c.Join(",", 2, 1); !errors.Is(err, textlist.ErrOutOfRange) {
		t.Fatalf("Join(2, 1) err = %v; want ErrOutOfRange", err)
	}
	if _, err := c.Join(",", -1, -1); !errors.Is(err, textlist.ErrOutOfRange) {
		t.Fatalf("Join(-1, -1) err = %v; want ErrOutOfRange", err)
	}
	if _, err := c.Join(",", 4, -1); !errors.Is(err, textlist.ErrOutOfRange) {
		t.Fatalf("Join(4, -1) err = %v; want ErrOutOfRange", err)
	}
	if _, err := c.Join(",", 0, -2); !errors.Is(err, textlist.ErrOutOfRange) {
		t.Fatalf("Join(0, -2) err = %v; want ErrOutOfRange", err)
	}
	// startIndex == Count() with the whole-tail count joins nothing.
	got, err = c.Join(",", 3, -1)
	if err != nil || got != "" {
		t.Fatalf("Join(3, -1) = %q, %v; want \"\", nil", got, err)
	}
}

func TestSetMessages(t *testing.T) {
	c := list("a")
	c.SetMessages(shoutyMessages{})
	_, err := c.Get(9)
	if !errors.Is(err, textlist.ErrOutOfRange) {
		t.Fatalf("err = %v; want ErrOutOfRange", err)
	}
	if want := "textlist: index or count out of range: INDEX 9"; err.Error() != want {
		t.Fatalf("err text = %q; want %q", err.Error(), want)
	}
}

// shoutyMessages is a minimal Messages stand-in proving the renderer is
// injectable.
type shoutyMessages struct{}

func (shoutyMessages) OutOfRange(param string, value, limit int) string {
	return "INDEX 9"
}
func (shoutyMessages) EmptyCollection(op string) string { return "EMPTY" }

func (shoutyMessages) InvalidArgument(param string, v any) string { return "BAD" }

func (shoutyMessages) NotFound(value string) string { return "MISSING" }
