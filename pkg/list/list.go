// Package list provides a doubly linked list closed into a ring by a sentinel
// node.
//
// The sentinel never holds a value. Its next link is the first element and
// its prev link the last, so it serves as the end position in both
// directions and an empty list is a sentinel linked to itself.
//
// Nodes live in a per-list arena and link to each other by slot index; the
// sentinel is slot 0. Erased slots are recycled through a free list. Every
// allocation stamps the slot with a fresh sequence number and iterators carry
// the number they were issued with, so an iterator to an erased node is
// detected even after its slot has been reused.
//
// Iterators stay valid across inserts and erases of other nodes. Pointers
// returned by Ptr, Emplace and EmplaceBack point into the arena and are
// invalidated when an insert grows it.
package list

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/haivivi/containers/pkg/buffer"
	"github.com/haivivi/containers/pkg/precond"
	"github.com/haivivi/containers/pkg/vector"
)

// sentinel is the arena slot of the sentinel node.
const sentinel = 0

type node[T any] struct {
	prev, next int
	seq        uint64 // zero while the slot is free
	value      T
}

// List is a sentinel-anchored doubly linked list. The zero value is an empty
// list. It is not safe for concurrent use.
type List[T any] struct {
	nodes *vector.Vector[node[T]]
	free  int // first free slot, chained through next; 0 when none
	seq   uint64
	n     int
}

// New creates an empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.init()
	return l
}

// Filled creates a list of n copies of v.
func Filled[T any](v T, n int) *List[T] {
	l := New[T]()
	l.Resize(n)
	l.Fill(v)
	return l
}

// Of creates a list holding vs in order.
func Of[T any](vs ...T) *List[T] {
	l := New[T]()
	for _, v := range vs {
		l.PushBack(v)
	}
	return l
}

// Convert creates a list from src, converting element-wise with fn.
func Convert[T, U any](src *List[U], fn func(U) T) *List[T] {
	l := New[T]()
	for _, v := range src.All() {
		l.PushBack(fn(v))
	}
	return l
}

// Clone returns a copy of l.
func (l *List[T]) Clone() *List[T] {
	return Convert(l, func(v T) T { return v })
}

// init lazily creates the arena with a self-linked sentinel.
func (l *List[T]) init() {
	if l.nodes != nil {
		return
	}
	l.nodes = vector.New[node[T]]()
	l.nodes.PushBack(node[T]{prev: sentinel, next: sentinel})
}

func (l *List[T]) at(i int) *node[T] {
	return l.nodes.Ref(i)
}

// alloc takes a slot from the free list, or appends one to the arena, and
// stamps it with a fresh sequence number.
func (l *List[T]) alloc(v T) int {
	var i int
	if l.free != sentinel {
		i = l.free
		l.free = l.at(i).next
	} else {
		i = l.nodes.Len()
		l.nodes.EmplaceBack()
	}
	l.seq++
	nd := l.at(i)
	nd.seq = l.seq
	nd.value = v
	return i
}

// release returns slot i to the free list and drops its value.
func (l *List[T]) release(i int) {
	nd := l.at(i)
	*nd = node[T]{next: l.free}
	l.free = i
}

// link splices slot i immediately before slot pos.
func (l *List[T]) link(i, pos int) {
	prev := l.at(pos).prev
	nd := l.at(i)
	nd.prev = prev
	nd.next = pos
	l.at(prev).next = i
	l.at(pos).prev = i
	l.n++
}

// unlink removes slot i from the ring and returns its successor.
func (l *List[T]) unlink(i int) int {
	nd := l.at(i)
	prev, next := nd.prev, nd.next
	l.at(prev).next = next
	l.at(next).prev = prev
	l.n--
	return next
}

func (l *List[T]) iterAt(i int) Iter[T] {
	return Iter[T]{l: l, idx: i, seq: l.at(i).seq}
}

// check validates that it is a live position of l. The sentinel is accepted
// only when allowEnd is set.
func (l *List[T]) check(op string, it Iter[T], allowEnd bool) {
	if !precond.Enabled() {
		return
	}
	precond.Check(it.l == l, op, "iterator does not belong to this list")
	if it.idx == sentinel {
		precond.Check(allowEnd, op, "iterator is at the sentinel")
		return
	}
	precond.Check(it.idx > 0 && it.idx < l.nodes.Len() && l.at(it.idx).seq == it.seq,
		op, "iterator refers to an erased node")
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.n
}

// MaxSize returns the largest length a list can reach: the largest arena of
// nodes that can be allocated, less the sentinel.
func (l *List[T]) MaxSize() int {
	return buffer.MaxCap[node[T]]() - 1
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.n == 0
}

// Begin returns the first element, or End when the list is empty.
func (l *List[T]) Begin() Iter[T] {
	l.init()
	return l.iterAt(l.at(sentinel).next)
}

// End returns the sentinel position.
func (l *List[T]) End() Iter[T] {
	l.init()
	return l.iterAt(sentinel)
}

// Insert places v immediately before pos and returns its position. Inserting
// before End appends; inserting before Begin prepends.
func (l *List[T]) Insert(pos Iter[T], v T) Iter[T] {
	l.init()
	l.check("list.Insert", pos, true)
	i := l.alloc(v)
	l.link(i, pos.idx)
	return l.iterAt(i)
}

// Emplace inserts a zero value before pos and returns its position and a
// pointer for in-place construction.
func (l *List[T]) Emplace(pos Iter[T]) (Iter[T], *T) {
	l.init()
	l.check("list.Emplace", pos, true)
	var zero T
	i := l.alloc(zero)
	l.link(i, pos.idx)
	return l.iterAt(i), &l.at(i).value
}

// Erase removes the element at pos and returns the position that followed it.
// Erasing End is a precondition violation.
func (l *List[T]) Erase(pos Iter[T]) Iter[T] {
	l.init()
	l.check("list.Erase", pos, false)
	next := l.unlink(pos.idx)
	l.release(pos.idx)
	return l.iterAt(next)
}

// EraseRange removes the elements in [first, last) and returns last.
func (l *List[T]) EraseRange(first, last Iter[T]) Iter[T] {
	l.init()
	l.check("list.EraseRange", first, true)
	l.check("list.EraseRange", last, true)
	for !first.Equal(last) {
		first = l.Erase(first)
	}
	return first
}

// PushBack appends v.
func (l *List[T]) PushBack(v T) {
	l.Insert(l.End(), v)
}

// PushFront prepends v.
func (l *List[T]) PushFront(v T) {
	l.Insert(l.Begin(), v)
}

// EmplaceBack appends a zero value and returns a pointer to it.
func (l *List[T]) EmplaceBack() *T {
	_, p := l.Emplace(l.End())
	return p
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() T {
	precond.NotEmpty("list.PopBack", l.n)
	last := l.End().Prev()
	v := last.Value()
	l.Erase(last)
	return v
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() T {
	precond.NotEmpty("list.PopFront", l.n)
	first := l.Begin()
	v := first.Value()
	l.Erase(first)
	return v
}

// Front returns the first element.
func (l *List[T]) Front() T {
	precond.NotEmpty("list.Front", l.n)
	return l.at(l.at(sentinel).next).value
}

// Back returns the last element.
func (l *List[T]) Back() T {
	precond.NotEmpty("list.Back", l.n)
	return l.at(l.at(sentinel).prev).value
}

// At returns element i, walking from whichever end is closer.
func (l *List[T]) At(i int) T {
	precond.Index("list.At", i, l.n)
	return l.at(l.slot(i)).value
}

func (l *List[T]) slot(i int) int {
	if i < l.n/2 {
		s := l.at(sentinel).next
		for ; i > 0; i-- {
			s = l.at(s).next
		}
		return s
	}
	s := l.at(sentinel).prev
	for j := l.n - 1; j > i; j-- {
		s = l.at(s).prev
	}
	return s
}

// Resize appends zero values or erases trailing elements until the length is
// n.
func (l *List[T]) Resize(n int) {
	precond.Check(n >= 0, "list.Resize", "negative length "+strconv.Itoa(n))
	precond.Check(n <= l.MaxSize(), "list.Resize", "length "+strconv.Itoa(n)+" exceeds the maximum size")
	l.init()
	var zero T
	for l.n < n {
		l.link(l.alloc(zero), sentinel)
	}
	for l.n > n {
		last := l.at(sentinel).prev
		l.unlink(last)
		l.release(last)
	}
}

// Clear erases every element. Afterwards the sentinel links to itself and the
// arena holds only the sentinel slot.
func (l *List[T]) Clear() {
	l.init()
	l.EraseRange(l.Begin(), l.End())
	l.nodes.Resize(1)
	l.free = sentinel
	s := l.at(sentinel)
	s.prev, s.next = sentinel, sentinel
}

// Splice moves every element of other before pos, leaving other empty.
func (l *List[T]) Splice(pos Iter[T], other *List[T]) {
	l.init()
	l.check("list.Splice", pos, true)
	precond.Check(other != l, "list.Splice", "cannot splice a list into itself")
	for !other.Empty() {
		l.link(l.alloc(other.PopFront()), pos.idx)
	}
}

// Fill overwrites every element with v.
func (l *List[T]) Fill(v T) {
	l.init()
	for s := l.at(sentinel).next; s != sentinel; s = l.at(s).next {
		l.at(s).value = v
	}
}

// Reset overwrites every element with the zero value.
func (l *List[T]) Reset() {
	var zero T
	l.Fill(zero)
}

// All iterates front to back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.init()
		i := 0
		for s := l.at(sentinel).next; s != sentinel; s = l.at(s).next {
			if !yield(i, l.at(s).value) {
				return
			}
			i++
		}
	}
}

// Backward iterates back to front.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.init()
		i := l.n - 1
		for s := l.at(sentinel).prev; s != sentinel; s = l.at(s).prev {
			if !yield(i, l.at(s).value) {
				return
			}
			i--
		}
	}
}

// String formats the list as [a, b, c].
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
