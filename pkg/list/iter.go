package list

import "github.com/haivivi/containers/pkg/precond"

// Iter is a position in a List: an element or the sentinel (End).
//
// An Iter is a small value; copying it is cheap. It remains valid until the
// element it refers to is erased. Using an invalid Iter is a precondition
// violation.
type Iter[T any] struct {
	l   *List[T]
	idx int
	seq uint64
}

// IsEnd reports whether the iterator is at the sentinel.
func (it Iter[T]) IsEnd() bool {
	return it.idx == sentinel
}

// Equal reports whether both iterators refer to the same position.
func (it Iter[T]) Equal(o Iter[T]) bool {
	return it.l == o.l && it.idx == o.idx && it.seq == o.seq
}

func (it Iter[T]) list(op string, allowEnd bool) *List[T] {
	precond.Check(it.l != nil, op, "iterator is not attached to a list")
	it.l.check(op, it, allowEnd)
	return it.l
}

// Next returns the following position. Advancing past End is a precondition
// violation.
func (it Iter[T]) Next() Iter[T] {
	l := it.list("list.Iter.Next", false)
	return l.iterAt(l.at(it.idx).next)
}

// Prev returns the preceding position. End.Prev is the last element;
// retreating before the first element is a precondition violation.
func (it Iter[T]) Prev() Iter[T] {
	l := it.list("list.Iter.Prev", true)
	prev := l.at(it.idx).prev
	precond.Check(prev != sentinel, "list.Iter.Prev", "retreating before the first element")
	return l.iterAt(prev)
}

// Value returns the element at the iterator.
func (it Iter[T]) Value() T {
	l := it.list("list.Iter.Value", false)
	return l.at(it.idx).value
}

// Set replaces the element at the iterator.
func (it Iter[T]) Set(v T) {
	l := it.list("list.Iter.Set", false)
	l.at(it.idx).value = v
}

// Ptr returns a pointer to the element at the iterator. The pointer is
// invalidated when an insert grows the arena.
func (it Iter[T]) Ptr() *T {
	l := it.list("list.Iter.Ptr", false)
	return &l.at(it.idx).value
}
