package stack

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func items[T any](s *Stack[T]) []T {
	var out []T
	for _, v := range s.All() {
		out = append(out, v)
	}
	return out
}

func TestStack_LIFO(t *testing.T) {
	for _, s := range []*Stack[string]{New[string](), NewBounded[string](3)} {
		for _, v := range []string{"a", "b", "c"} {
			s.Push(v)
		}
		var got []string
		for !s.Empty() {
			got = append(got, s.Pop())
		}
		if diff := cmp.Diff([]string{"c", "b", "a"}, got); diff != "" {
			t.Fatalf("bounded=%v pop order (-want +got):\n%s", s.Bounded(), diff)
		}
	}
}

func TestStack_Of(t *testing.T) {
	s := Of(1, 2, 3)
	if s.Top() != 3 {
		t.Fatalf("Top() = %d, want 3", s.Top())
	}
	if diff := cmp.Diff([]int{3, 2, 1}, items(s)); diff != "" {
		t.Fatalf("All (-want +got):\n%s", diff)
	}
	if s.String() != "[3, 2, 1]" {
		t.Fatalf("String() = %q", s.String())
	}
}

func TestStack_Bounded(t *testing.T) {
	s := NewBounded[int](2)
	if s.MaxSize() != 2 || s.Full() {
		t.Fatalf("MaxSize()=%d Full()=%v", s.MaxSize(), s.Full())
	}
	s.Push(1)
	s.Push(2)
	if !s.Full() {
		t.Fatal("stack at capacity is not Full")
	}
	if s.Pop() != 2 || s.Len() != 1 {
		t.Fatalf("Pop left Len()=%d", s.Len())
	}
	s.Push(5)
	if diff := cmp.Diff([]int{5, 1}, items(s)); diff != "" {
		t.Fatalf("All (-want +got):\n%s", diff)
	}
}

func TestStack_Growable(t *testing.T) {
	s := New[int]()
	for i := range 1000 {
		s.Push(i)
	}
	if s.Full() || s.Len() != 1000 || s.Top() != 999 {
		t.Fatalf("Full()=%v Len()=%d Top()=%d", s.Full(), s.Len(), s.Top())
	}
	if s.Cap() < s.Len() || s.Reallocs() == 0 || s.Reallocs() > 20 {
		t.Fatalf("Cap()=%d Reallocs()=%d", s.Cap(), s.Reallocs())
	}
}

func TestStack_Clear(t *testing.T) {
	for _, s := range []*Stack[int]{Of(1, 2), NewBounded[int](4)} {
		s.Push(9)
		s.Clear()
		if !s.Empty() {
			t.Fatalf("bounded=%v: not empty after Clear", s.Bounded())
		}
		s.Push(4)
		if s.Top() != 4 {
			t.Fatalf("bounded=%v: Top() = %d after Clear+Push", s.Bounded(), s.Top())
		}
	}
}

func TestStack_Clone(t *testing.T) {
	b := NewBounded[int](3)
	b.Push(1)
	b.Push(2)
	for _, s := range []*Stack[int]{Of(1, 2), b} {
		c := s.Clone()
		c.Push(3)
		if s.Len() != 2 || c.Len() != 3 || c.Bounded() != s.Bounded() {
			t.Fatalf("Clone shares state: src %v clone %v", s, c)
		}
		if !slices.Equal(items(c), []int{3, 2, 1}) {
			t.Fatalf("clone = %v", c)
		}
	}
}

func TestStack_ZeroValue(t *testing.T) {
	var s Stack[int]
	if !s.Empty() || s.Bounded() {
		t.Fatal("zero Stack is not an empty growable stack")
	}
	s.Push(1)
	if s.Pop() != 1 {
		t.Fatal("zero Stack round trip")
	}
}
