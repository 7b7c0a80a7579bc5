package seq

import (
	"errors"
	"maps"
	"slices"
	"strconv"
	"testing"
)

type point struct{ x, y int }

func (p *point) String() string {
	return strconv.Itoa(p.x) + ":" + strconv.Itoa(p.y)
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name   string
		items  []int
		opts   JoinOptions
		want   string
		wantOK bool
	}{
		{"Empty", []int{}, JoinOptions{}, "", true},
		{"Nil", nil, JoinOptions{}, "", true},
		{"Empty returns nil", []int{}, JoinOptions{NilIfEmpty: true}, "", false},
		{"Nil returns nil", nil, JoinOptions{NilIfEmpty: true}, "", false},
		{"Single", []int{7}, JoinOptions{}, "7", true},
		{"Comma", []int{1, 2, 3}, JoinOptions{}, "1,2,3", true},
		{"Comma and space", []int{1, 2, 3}, JoinOptions{SpaceAfterComma: true}, "1, 2, 3", true},
		{"Non-empty ignores NilIfEmpty", []int{1}, JoinOptions{NilIfEmpty: true}, "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Join(tt.items, tt.opts)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Join(%v) = (%q, %v), want (%q, %v)", tt.items, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestJoinPreservesEmptyStrings(t *testing.T) {
	got, ok := Join([]string{"", "1", "", "4", ""}, JoinOptions{})
	if !ok || got != ",1,,4," {
		t.Errorf("Join = (%q, %v), want (\",1,,4,\", true)", got, ok)
	}
}

func TestJoinWhere(t *testing.T) {
	tests := []struct {
		name   string
		items  []int
		keep   func(int) bool
		opts   JoinOptions
		want   string
		wantOK bool
	}{
		{"Greater than two", []int{1, 2, 3}, func(x int) bool { return x > 2 }, JoinOptions{}, "3", true},
		{"Even with space", []int{1, 2, 3, 4}, func(x int) bool { return x%2 == 0 }, JoinOptions{SpaceAfterComma: true}, "2, 4", true},
		// The empty check runs before filtering.
		{"Nothing kept", []int{1, 2}, func(int) bool { return false }, JoinOptions{NilIfEmpty: true}, "", true},
		{"Empty source", []int{}, func(int) bool { return true }, JoinOptions{NilIfEmpty: true}, "", false},
		{"Nil filter keeps all", []int{1, 2}, nil, JoinOptions{}, "1,2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := JoinWhere(tt.items, tt.keep, tt.opts)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("JoinWhere(%v) = (%q, %v), want (%q, %v)", tt.items, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestJoinFunc(t *testing.T) {
	double := func(x int) int { return x * 2 }
	odd := func(x int) bool { return x%2 == 1 }

	tests := []struct {
		name    string
		keep    func(int) bool
		project func(int) int
		opts    JoinOptions
		want    string
	}{
		{"Projection only", nil, double, JoinOptions{}, "2,4,6"},
		{"Filter and projection", odd, double, JoinOptions{SpaceAfterComma: true}, "2, 6"},
		{"Neither", nil, nil, JoinOptions{}, "1,2,3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := JoinFunc([]int{1, 2, 3}, tt.keep, tt.project, tt.opts)
			if !ok || got != tt.want {
				t.Errorf("JoinFunc = (%q, %v), want (%q, true)", got, ok, tt.want)
			}
		})
	}
}

func TestJoinFuncProjectionToString(t *testing.T) {
	names := []string{"ada", "bob"}
	got, _ := JoinFunc(names, nil, func(s string) string { return s + "!" }, JoinOptions{})
	if got != "ada!,bob!" {
		t.Errorf("got %q, want %q", got, "ada!,bob!")
	}
}

func TestJoinNaturalStringForms(t *testing.T) {
	var nilPoint *point

	got, _ := Join([]*point{{1, 2}, nilPoint, {3, 4}}, JoinOptions{})
	if got != "1:2,,3:4" {
		t.Errorf("pointers: got %q, want %q", got, "1:2,,3:4")
	}

	got, _ = Join([]error{errors.New("a"), nil}, JoinOptions{})
	if got != "a," {
		t.Errorf("errors: got %q, want %q", got, "a,")
	}

	got, _ = Join([]any{1.5, true, nil, "s"}, JoinOptions{})
	if got != "1.5,true,,s" {
		t.Errorf("any: got %q, want %q", got, "1.5,true,,s")
	}
}

func TestJoinSeq(t *testing.T) {
	set := map[string]bool{"b": true, "a": true, "c": false}
	keys := slices.Sorted(maps.Keys(set))

	got, ok := JoinSeq[string, string](slices.Values(keys), func(k string) bool { return set[k] }, nil, JoinOptions{SpaceAfterComma: true})
	if !ok || got != "a, b" {
		t.Errorf("JoinSeq = (%q, %v), want (\"a, b\", true)", got, ok)
	}

	got, ok = JoinSeq[int, int](nil, nil, nil, JoinOptions{NilIfEmpty: true})
	if ok || got != "" {
		t.Errorf("JoinSeq(nil) = (%q, %v), want (\"\", false)", got, ok)
	}

	got, ok = JoinSeq(maps.Keys(map[int]bool{}), nil, func(k int) string { return "x" }, JoinOptions{})
	if !ok || got != "" {
		t.Errorf("JoinSeq(empty map) = (%q, %v), want (\"\", true)", got, ok)
	}
}

func TestJoinParseRoundTrip(t *testing.T) {
	inputs := [][]int{
		{0},
		{1, 2, 3},
		{42, 0, 42, 7},
		{2147483647, 1},
	}

	for _, in := range inputs {
		joined, _ := Join(in, JoinOptions{})
		out, err := ParseInts(joined, ParseOptions{})
		if err != nil {
			t.Fatalf("ParseInts(%q) error: %v", joined, err)
		}
		if !slices.Equal(in, out) {
			t.Errorf("round trip %v -> %q -> %v", in, joined, out)
		}

		spaced, _ := Join(in, JoinOptions{SpaceAfterComma: true})
		out, err = ParseInts(spaced, ParseOptions{})
		if err != nil || !slices.Equal(in, out) {
			t.Errorf("spaced round trip %v -> %q -> %v (%v)", in, spaced, out, err)
		}
	}
}
