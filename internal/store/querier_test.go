package store

import (
	"sort"
	"strconv"
	"strings"
	"testing"
)

func TestEq(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{2024, "eq.2024"},
		{"KC", "eq.KC"},
		{false, "eq.false"},
	}
	for _, tt := range tests {
		if got := Eq(tt.in); got != tt.want {
			t.Errorf("Eq(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInList(t *testing.T) {
	got := InList([]int{5, 1, 9})

	if !strings.HasPrefix(got, "in.(") || !strings.HasSuffix(got, ")") {
		t.Fatalf("InList = %q, want in.(...) form", got)
	}
	inner := got[len("in.(") : len(got)-1]
	var ids []int
	for _, part := range strings.Split(inner, ",") {
		id, err := strconv.Atoi(part)
		if err != nil {
			t.Fatalf("non-numeric member %q in %q", part, got)
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	want := []int{1, 5, 9}
	if len(ids) != len(want) {
		t.Fatalf("got %d members, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("member set = %v, want %v", ids, want)
			break
		}
	}
}

func TestInListEmpty(t *testing.T) {
	if got := InList(nil); got != "in.()" {
		t.Errorf("InList(nil) = %q, want in.()", got)
	}
}
