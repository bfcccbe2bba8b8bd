package textcmp_test

import (
	"testing"

	"github.com/hasbyte1/go-text-collections/textcmp"
)

func TestCompareOrdinal(t *testing.T) {
	c := textcmp.Comparer{}
	cases := []struct {
		a, b string
		want int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "a", 0},
		{"", "a", -1},
		{"Banana", "apple", -1}, // 'B' < 'a' ordinally
		{"a", "ab", -1},
	}
	for _, tc := range cases {
		if got := c.Compare(tc.a, tc.b); got != tc.want {
			t.Fatalf("Compare(%q, %q) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCompareIgnoreCase(t *testing.T) {
	c := textcmp.Comparer{IgnoreCase: true}
	if got := c.Compare("apple", "Banana"); got != -1 {
		t.Fatalf("Compare(apple, Banana) ignore-case = %d; want -1", got)
	}
	if got := c.Compare("HELLO", "hello"); got != 0 {
		t.Fatalf("Compare(HELLO, hello) ignore-case = %d; want 0", got)
	}
}

func TestCompareDescendingFlipsSign(t *testing.T) {
	c := textcmp.Comparer{Direction: textcmp.Descending}
	if got := c.Compare("a", "b"); got != 1 {
		t.Fatalf("descending Compare(a, b) = %d; want 1", got)
	}
	if got := c.Compare("a", "a"); got != 0 {
		t.Fatalf("descending Compare(a, a) = %d; want 0", got)
	}
}

func TestCompareNoneBehavesAsAscending(t *testing.T) {
	none := textcmp.Comparer{Direction: textcmp.None}
	asc := textcmp.Comparer{Direction: textcmp.Ascending}
	for _, pair := range [][2]string{{"a", "b"}, {"b", "a"}, {"x", "x"}} {
		if none.Compare(pair[0], pair[1]) != asc.Compare(pair[0], pair[1]) {
			t.Fatalf("None and Ascending disagree on (%q, %q)", pair[0], pair[1])
		}
	}
}

func TestEqual(t *testing.T) {
	c := textcmp.Comparer{}
	if !c.Equal("a", "a") || c.Equal("a", "A") {
		t.Fatal("ordinal Equal failed")
	}
	ci := textcmp.Comparer{IgnoreCase: true}
	if !ci.Equal("a", "A") {
		t.Fatal("ignore-case Equal failed")
	}
	if !ci.Equal("straße", "STRASSE") {
		t.Fatal("ignore-case Equal should apply full invariant folding")
	}
}

func TestEqualIgnoresDirection(t *testing.T) {
	desc := textcmp.Comparer{Direction: textcmp.Descending}
	if !desc.Equal("a", "a") || desc.Equal("a", "b") {
		t.Fatal("Equal must not be affected by Direction")
	}
}

func TestHashSentinel(t *testing.T) {
	c := textcmp.Comparer{}
	for _, s := range []string{"", " ", "\t\n", "   "} {
		if got := c.Hash(s); got != 0 {
			t.Fatalf("Hash(%q) = %d; want sentinel 0", s, got)
		}
	}
	if c.Hash("a") == 0 {
		t.Fatal("Hash of non-blank text should not be the sentinel")
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	ci := textcmp.Comparer{IgnoreCase: true}
	if ci.Hash("Hello") != ci.Hash("HELLO") {
		t.Fatal("equal values must hash identically")
	}
	c := textcmp.Comparer{}
	if c.Hash("a") == c.Hash("b") {
		t.Fatal("distinct short values should not collide")
	}
}

func TestComparerValueEquality(t *testing.T) {
	a := textcmp.Comparer{Direction: textcmp.Ascending, IgnoreCase: true}
	b := textcmp.Comparer{Direction: textcmp.Ascending, IgnoreCase: true}
	if a != b {
		t.Fatal("comparers with matching fields must be equal")
	}
	b.Direction = textcmp.Descending
	if a == b {
		t.Fatal("comparers with differing direction must not be equal")
	}
}

func TestModeValid(t *testing.T) {
	if !textcmp.ModeOrdinal.Valid() || !textcmp.ModeOrdinalIgnoreCase.Valid() {
		t.Fatal("defined modes must be valid")
	}
	if textcmp.Mode(42).Valid() {
		t.Fatal("undefined mode must be invalid")
	}
}

func TestModeEqual(t *testing.T) {
	if !textcmp.ModeOrdinal.Equal("a", "a") || textcmp.ModeOrdinal.Equal("a", "A") {
		t.Fatal("ModeOrdinal.Equal failed")
	}
	if !textcmp.ModeOrdinalIgnoreCase.Equal("a", "A") {
		t.Fatal("ModeOrdinalIgnoreCase.Equal failed")
	}
}

func TestFold(t *testing.T) {
	cases := map[string]string{
		"hello":  "HELLO",
		"straße": "STRASSE",
		"":       "",
		"ABC":    "ABC",
	}
	for in, want := range cases {
		if got := textcmp.Fold(in); got != want {
			t.Fatalf("Fold(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	if textcmp.Ascending.String() != "Ascending" || textcmp.Descending.String() != "Descending" || textcmp.None.String() != "None" {
		t.Fatal("Direction.String failed")
	}
	if textcmp.ModeOrdinal.String() != "Ordinal" || textcmp.ModeOrdinalIgnoreCase.String() != "OrdinalIgnoreCase" {
		t.Fatal("Mode.String failed")
	}
}
