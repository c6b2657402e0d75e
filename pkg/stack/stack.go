// Package stack provides a LIFO stack over a growable Vector or a bounded
// fixed Array.
package stack

import (
	"fmt"
	"iter"
	"strings"

	"github.com/haivivi/containers/pkg/array"
	"github.com/haivivi/containers/pkg/precond"
	"github.com/haivivi/containers/pkg/vector"
)

// Stack is a last-in first-out container. The zero value is an empty
// growable stack.
type Stack[T any] struct {
	vec *vector.Vector[T]

	// bounded stacks keep elements in arr[:n]
	arr *array.Array[T]
	n   int
}

// New creates an empty growable stack.
func New[T any](opts ...vector.Option) *Stack[T] {
	return &Stack[T]{vec: vector.New[T](opts...)}
}

// NewBounded creates an empty stack that holds at most capacity elements.
func NewBounded[T any](capacity int) *Stack[T] {
	return &Stack[T]{arr: array.New[T](capacity)}
}

// Of creates a growable stack by pushing vs in order, so the last argument
// ends up on top.
func Of[T any](vs ...T) *Stack[T] {
	s := New[T]()
	for _, v := range vs {
		s.Push(v)
	}
	return s
}

// Clone returns a copy of s with the same kind of storage.
func (s *Stack[T]) Clone() *Stack[T] {
	if s.arr != nil {
		c := NewBounded[T](s.arr.Len())
		copy(c.arr.Data(), s.arr.Data()[:s.n])
		c.n = s.n
		return c
	}
	return &Stack[T]{vec: s.vector().Clone()}
}

func (s *Stack[T]) vector() *vector.Vector[T] {
	if s.vec == nil {
		s.vec = vector.New[T]()
	}
	return s.vec
}

// Bounded reports whether the stack has a fixed capacity.
func (s *Stack[T]) Bounded() bool {
	return s.arr != nil
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int {
	if s.arr != nil {
		return s.n
	}
	return s.vector().Len()
}

// Empty reports whether the stack has no elements.
func (s *Stack[T]) Empty() bool {
	return s.Len() == 0
}

// Full reports whether a bounded stack is at capacity. Growable stacks are
// never full.
func (s *Stack[T]) Full() bool {
	return s.arr != nil && s.n == s.arr.Len()
}

// MaxSize returns the fixed capacity of a bounded stack, or the largest
// length a growable stack can reach.
func (s *Stack[T]) MaxSize() int {
	if s.arr != nil {
		return s.arr.Len()
	}
	return s.vector().MaxSize()
}

// Cap returns the fixed capacity of a bounded stack, or the allocated
// capacity of a growable one.
func (s *Stack[T]) Cap() int {
	if s.arr != nil {
		return s.arr.Len()
	}
	return s.vector().Cap()
}

// Reallocs returns how many times a growable stack has reallocated its
// storage. Bounded stacks never do.
func (s *Stack[T]) Reallocs() int {
	if s.arr != nil {
		return 0
	}
	return s.vector().Reallocs()
}

// Push places v on top. Pushing onto a full bounded stack is a precondition
// violation.
func (s *Stack[T]) Push(v T) {
	if s.arr != nil {
		precond.Check(s.n < s.arr.Len(), "stack.Push", "bounded stack is full")
		s.arr.Data()[s.n] = v
		s.n++
		return
	}
	s.vector().PushBack(v)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() T {
	if s.arr != nil {
		precond.NotEmpty("stack.Pop", s.n)
		s.n--
		slot := s.arr.Ref(s.n)
		v := *slot
		var zero T
		*slot = zero
		return v
	}
	precond.NotEmpty("stack.Pop", s.vector().Len())
	return s.vec.PopBack()
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() T {
	precond.NotEmpty("stack.Top", s.Len())
	if s.arr != nil {
		return s.arr.At(s.n - 1)
	}
	return s.vec.Back()
}

// Clear removes every element.
func (s *Stack[T]) Clear() {
	if s.arr != nil {
		clear(s.arr.Data()[:s.n])
		s.n = 0
		return
	}
	s.vector().Clear()
}

// All iterates from the top of the stack to the bottom. The index counts
// from the top.
func (s *Stack[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, j := 0, s.Len()-1; j >= 0; i, j = i+1, j-1 {
			if !yield(i, s.at(j)) {
				return
			}
		}
	}
}

func (s *Stack[T]) at(i int) T {
	if s.arr != nil {
		return s.arr.At(i)
	}
	return s.vec.At(i)
}

// String formats the stack top first, as [top, ..., bottom].
func (s *Stack[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range s.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
