// Package array provides a fixed-capacity array whose size is chosen at
// construction and never changes.
//
// Array is a thin bounds-checked wrapper over an owned block. It is the
// storage behind bounded stacks and the source for bounded queues built from
// existing data.
package array

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/haivivi/containers/pkg/buffer"
	"github.com/haivivi/containers/pkg/precond"
)

// Array is a fixed-size sequence of elements. The zero value is an array of
// size zero. It is not safe for concurrent use.
type Array[T any] struct {
	buf *buffer.Buffer[T]
}

// New creates an array of n zero-valued elements.
func New[T any](n int) *Array[T] {
	precond.Check(n >= 0, "array.New", "negative size "+strconv.Itoa(n))
	buf := buffer.N[T](n)
	buf.SetLen(n)
	return &Array[T]{buf: buf}
}

// Filled creates an array of n copies of v.
func Filled[T any](v T, n int) *Array[T] {
	a := New[T](n)
	a.Fill(v)
	return a
}

// Of creates an array holding vs in order.
func Of[T any](vs ...T) *Array[T] {
	a := New[T](len(vs))
	copy(a.Data(), vs)
	return a
}

// Convert creates an array of size n from src, converting element-wise with
// fn. Extra source elements are dropped; missing ones are zero.
func Convert[T, U any](src []U, n int, fn func(U) T) *Array[T] {
	a := New[T](n)
	dst := a.Data()
	for i := 0; i < min(n, len(src)); i++ {
		dst[i] = fn(src[i])
	}
	return a
}

func (a *Array[T]) elems() []T {
	if a.buf == nil {
		return nil
	}
	return a.buf.Elems()
}

// Len returns the fixed size.
func (a *Array[T]) Len() int {
	return len(a.elems())
}

// MaxSize returns the fixed size; an array never holds more.
func (a *Array[T]) MaxSize() int {
	return a.Len()
}

// Empty reports whether the array has size zero.
func (a *Array[T]) Empty() bool {
	return a.Len() == 0
}

// At returns the element at i.
func (a *Array[T]) At(i int) T {
	e := a.elems()
	precond.Index("array.At", i, len(e))
	return e[i]
}

// Set replaces the element at i.
func (a *Array[T]) Set(i int, v T) {
	e := a.elems()
	precond.Index("array.Set", i, len(e))
	e[i] = v
}

// Ref returns a pointer to the element at i.
func (a *Array[T]) Ref(i int) *T {
	e := a.elems()
	precond.Index("array.Ref", i, len(e))
	return &e[i]
}

// Front returns the first element.
func (a *Array[T]) Front() T {
	e := a.elems()
	precond.NotEmpty("array.Front", len(e))
	return e[0]
}

// Back returns the last element.
func (a *Array[T]) Back() T {
	e := a.elems()
	precond.NotEmpty("array.Back", len(e))
	return e[len(e)-1]
}

// Data returns the elements. The slice aliases the array.
func (a *Array[T]) Data() []T {
	return a.elems()
}

// Fill overwrites every element with v.
func (a *Array[T]) Fill(v T) {
	e := a.elems()
	for i := range e {
		e[i] = v
	}
}

// Reset overwrites every element with the zero value.
func (a *Array[T]) Reset() {
	clear(a.elems())
}

// All iterates front to back.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.elems() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward iterates back to front.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		e := a.elems()
		for i := len(e) - 1; i >= 0; i-- {
			if !yield(i, e[i]) {
				return
			}
		}
	}
}

// String formats the array as [a, b, c].
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.elems() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

