// Package queue provides a FIFO queue stored in a circular buffer.
//
// Logical element i of a queue lives at physical slot (head+i) mod capacity,
// so enqueue and dequeue are O(1) and the occupied slots may wrap past the end
// of the block. A bounded queue has a fixed capacity and treats an enqueue
// into a full queue as a precondition violation. A growable queue instead
// re-linearizes into a larger block: the run [head, capacity) is moved to the
// start of the new block, the run [0, head) right after it, and head resets to
// zero, preserving the logical order.
//
// Growth invalidates every slice and pointer previously derived from the
// queue's storage. Logical indexes passed to At stay valid.
package queue

import (
	"fmt"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/haivivi/containers/pkg/array"
	"github.com/haivivi/containers/pkg/buffer"
	"github.com/haivivi/containers/pkg/precond"
	"github.com/haivivi/containers/pkg/vector"
)

const (
	// DefaultGrowthFactor is the growth factor of a new growable queue.
	DefaultGrowthFactor = vector.DefaultGrowthFactor

	// MinGrowthFactor is the smallest accepted growth factor.
	MinGrowthFactor = vector.MinGrowthFactor

	// MinCapacity is the smallest capacity allocated on growth.
	MinCapacity = vector.MinCapacity
)

// Option configures a growable queue.
type Option func(*options)

type options struct {
	growthFactor float64
	capacity     int
	logger       *slog.Logger
}

// WithGrowthFactor sets the growth factor, clamped to at least MinGrowthFactor.
func WithGrowthFactor(f float64) Option {
	return func(o *options) {
		o.growthFactor = f
	}
}

// WithCapacity sets the initial capacity. The block is allocated with exactly
// this many slots.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithLogger reports reallocations to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Queue is a FIFO queue over a circular buffer. The zero value is an empty
// growable queue. It is not safe for concurrent use.
type Queue[T any] struct {
	buf          *buffer.Buffer[T]
	head         int
	count        int
	bounded      bool
	growthFactor float64
}

// New creates an empty growable queue.
func New[T any](opts ...Option) *Queue[T] {
	o := options{growthFactor: DefaultGrowthFactor}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	precond.Check(o.capacity >= 0, "queue.New", "negative capacity "+strconv.Itoa(o.capacity))
	q := &Queue[T]{
		buf:          buffer.N[T](o.capacity),
		growthFactor: vector.ClampGrowthFactor(o.growthFactor),
	}
	q.buf.SetLogger(o.logger)
	return q
}

// NewBounded creates an empty queue that holds at most capacity elements.
func NewBounded[T any](capacity int) *Queue[T] {
	precond.Check(capacity >= 0, "queue.NewBounded", "negative capacity "+strconv.Itoa(capacity))
	return &Queue[T]{
		buf:     buffer.N[T](capacity),
		bounded: true,
	}
}

// Of creates a growable queue holding xs, xs[0] at the front.
func Of[T any](xs ...T) *Queue[T] {
	q := New[T](WithCapacity(len(xs)))
	for _, x := range xs {
		q.Enqueue(x)
	}
	return q
}

// FromArray creates a full bounded queue whose capacity is the array size and
// whose front is the array's first element.
func FromArray[T any](a *array.Array[T]) *Queue[T] {
	q := NewBounded[T](a.Len())
	for _, x := range a.All() {
		q.Enqueue(x)
	}
	return q
}

// FromVector creates a growable queue holding the vector's elements, front
// first, with the vector's growth factor.
func FromVector[T any](v *vector.Vector[T]) *Queue[T] {
	q := New[T](WithCapacity(v.Len()), WithGrowthFactor(v.GrowthFactor()))
	for _, x := range v.All() {
		q.Enqueue(x)
	}
	return q
}

// Clone returns a copy with the same capacity, boundedness and growth factor.
// The copy is linear: its head is zero.
func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{
		buf:          buffer.N[T](q.Cap()),
		bounded:      q.bounded,
		growthFactor: q.growthFactor,
	}
	for _, x := range q.All() {
		c.Enqueue(x)
	}
	return c
}

func (q *Queue[T]) storage() *buffer.Buffer[T] {
	if q.buf == nil {
		q.buf = buffer.N[T](0)
	}
	return q.buf
}

// SetLogger reports reallocations to l at debug level.
func (q *Queue[T]) SetLogger(l *slog.Logger) {
	q.storage().SetLogger(l)
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.count
}

// Cap returns the number of slots in the ring.
func (q *Queue[T]) Cap() int {
	return q.storage().Cap()
}

// MaxSize returns the capacity of a bounded queue, or the largest block of T
// that can be allocated for a growable one.
func (q *Queue[T]) MaxSize() int {
	if q.bounded {
		return q.Cap()
	}
	return buffer.MaxCap[T]()
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.count == 0
}

// Full reports whether a bounded queue is at capacity. A growable queue is
// never full.
func (q *Queue[T]) Full() bool {
	return q.bounded && q.count == q.Cap()
}

// Bounded reports whether the queue has a fixed capacity.
func (q *Queue[T]) Bounded() bool {
	return q.bounded
}

// Reallocs returns how many times the ring has been reallocated.
func (q *Queue[T]) Reallocs() int {
	return q.storage().Reallocs()
}

// GrowthFactor returns the growth factor of a growable queue.
func (q *Queue[T]) GrowthFactor() float64 {
	if q.growthFactor == 0 {
		return DefaultGrowthFactor
	}
	return q.growthFactor
}

// slot maps logical index i to its physical slot.
func (q *Queue[T]) slot(i int) int {
	return (q.head + i) % q.Cap()
}

// Enqueue appends x at the back. A full bounded queue is a precondition
// violation; a full growable queue grows first.
func (q *Queue[T]) Enqueue(x T) {
	if q.count == q.Cap() {
		precond.Check(!q.bounded, "queue.Enqueue", "bounded queue is full at capacity "+strconv.Itoa(q.Cap()))
		q.grow()
	}
	q.storage().Slots()[q.slot(q.count)] = x
	q.count++
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() T {
	precond.NotEmpty("queue.Dequeue", q.count)
	slots := q.storage().Slots()
	x := slots[q.head]
	var zero T
	slots[q.head] = zero
	q.head = (q.head + 1) % len(slots)
	q.count--
	return x
}

// Front returns the front element without removing it.
func (q *Queue[T]) Front() T {
	precond.NotEmpty("queue.Front", q.count)
	return q.storage().Slots()[q.head]
}

// Back returns the most recently enqueued element.
func (q *Queue[T]) Back() T {
	precond.NotEmpty("queue.Back", q.count)
	return q.storage().Slots()[q.slot(q.count-1)]
}

// At returns logical element i, counted from the front.
func (q *Queue[T]) At(i int) T {
	precond.Index("queue.At", i, q.count)
	return q.storage().Slots()[q.slot(i)]
}

// Clear removes every element. The capacity is retained and head returns to
// slot zero.
func (q *Queue[T]) Clear() {
	a, b := q.runs()
	slots := q.storage().Slots()
	clear(slots[q.head : q.head+a])
	clear(slots[:b])
	q.head = 0
	q.count = 0
}

// runs splits the occupied slots into the run starting at head and the
// wrapped run starting at slot zero, returning their lengths.
func (q *Queue[T]) runs() (a, b int) {
	a = min(q.count, q.Cap()-q.head)
	return a, q.count - a
}

// grow re-linearizes the ring into a block of ceil(cap*factor) slots, at least
// MinCapacity and at least one more than the current capacity.
func (q *Queue[T]) grow() {
	c := q.Cap()
	precond.Check(c < q.MaxSize(), "queue.Enqueue", "queue is at its maximum size")
	q.relinearize(vector.NextCapacity(c, q.GrowthFactor(), q.MaxSize(), true))
}

// relinearize moves the queued elements into a new block of capacity slots in
// logical order. Run A, the a elements from offset head, lands at offset 0;
// run B, the b elements from offset 0, lands at offset a. Both are
// element-wise copies.
func (q *Queue[T]) relinearize(capacity int) {
	buf := q.storage()
	old := buf.Slots()
	a, b := q.runs()
	next := make([]T, capacity)
	copy(next[:a], old[q.head:q.head+a])
	copy(next[a:a+b], old[:b])
	buf.Adopt(next, 0)
	q.head = 0
}

// All iterates front to back, yielding logical indexes.
func (q *Queue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < q.count; i++ {
			if !yield(i, q.storage().Slots()[q.slot(i)]) {
				return
			}
		}
	}
}

// Backward iterates back to front, yielding logical indexes.
func (q *Queue[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := q.count - 1; i >= 0; i-- {
			if !yield(i, q.storage().Slots()[q.slot(i)]) {
				return
			}
		}
	}
}

// String formats the queue front to back as [a, b, c].
func (q *Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range q.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}
