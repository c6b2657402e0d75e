// Package vector provides a growable array with amortized constant-time
// append.
//
// A Vector keeps its elements in the occupied prefix of a single owned
// buffer. When an append finds the buffer full, the capacity is multiplied by
// the growth factor (1.5 by default, never below 1.1) and the elements are
// moved to the new block, so N appends trigger O(log N) reallocations.
//
// Pointers returned by Ref, EmplaceBack and Emplace, and slices returned by
// Data, are valid only until the next reallocation. Indexes stay valid across
// growth.
package vector

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/haivivi/containers/pkg/buffer"
	"github.com/haivivi/containers/pkg/precond"
)

const (
	// DefaultGrowthFactor is the growth factor of a new Vector.
	DefaultGrowthFactor = 1.5

	// MinGrowthFactor is the smallest accepted growth factor.
	MinGrowthFactor = 1.1

	// MinCapacity is the smallest capacity allocated on growth.
	MinCapacity = 4
)

// Option configures a Vector.
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

// WithCapacity reserves capacity up front.
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

// Vector is a growable array. The zero value is an empty vector with the
// default growth factor. It is not safe for concurrent use.
type Vector[T any] struct {
	buf          *buffer.Buffer[T]
	growthFactor float64
}

// New creates an empty vector.
func New[T any](opts ...Option) *Vector[T] {
	o := options{growthFactor: DefaultGrowthFactor}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	v := &Vector[T]{buf: buffer.N[T](0)}
	v.SetGrowthFactor(o.growthFactor)
	v.buf.SetLogger(o.logger)
	if o.capacity > 0 {
		v.Reserve(o.capacity)
	}
	return v
}

// Filled creates a vector of n copies of x.
func Filled[T any](x T, n int, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	v.Resize(n)
	v.Fill(x)
	return v
}

// Of creates a vector holding xs in order.
func Of[T any](xs ...T) *Vector[T] {
	v := New[T]()
	v.Resize(len(xs))
	copy(v.Data(), xs)
	return v
}

// Convert creates a vector from src, converting element-wise with fn. The new
// vector inherits the growth factor of src.
func Convert[T, U any](src *Vector[U], fn func(U) T) *Vector[T] {
	v := New[T](WithGrowthFactor(src.GrowthFactor()))
	v.Resize(src.Len())
	dst := v.Data()
	for i, x := range src.Data() {
		dst[i] = fn(x)
	}
	return v
}

// Clone returns a copy of v with the same growth factor.
func (v *Vector[T]) Clone() *Vector[T] {
	return Convert(v, func(x T) T { return x })
}

func (v *Vector[T]) storage() *buffer.Buffer[T] {
	if v.buf == nil {
		v.buf = buffer.N[T](0)
	}
	return v.buf
}

// SetLogger reports reallocations to l at debug level. A nil logger disables
// reporting.
func (v *Vector[T]) SetLogger(l *slog.Logger) {
	v.storage().SetLogger(l)
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.storage().Len()
}

// Cap returns the allocated capacity.
func (v *Vector[T]) Cap() int {
	return v.storage().Cap()
}

// MaxSize returns the largest length a vector can reach: the largest block of
// T that can be allocated.
func (v *Vector[T]) MaxSize() int {
	return buffer.MaxCap[T]()
}

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// Reallocs returns how many times the storage has been reallocated.
func (v *Vector[T]) Reallocs() int {
	return v.storage().Reallocs()
}

// GrowthFactor returns the growth factor.
func (v *Vector[T]) GrowthFactor() float64 {
	if v.growthFactor == 0 {
		return DefaultGrowthFactor
	}
	return v.growthFactor
}

// SetGrowthFactor sets the growth factor, clamped to at least MinGrowthFactor.
// NaN is replaced by MinGrowthFactor.
func (v *Vector[T]) SetGrowthFactor(f float64) {
	v.growthFactor = ClampGrowthFactor(f)
}

// ClampGrowthFactor returns f, or MinGrowthFactor when f is smaller or NaN.
func ClampGrowthFactor(f float64) float64 {
	if !(f >= MinGrowthFactor) {
		return MinGrowthFactor
	}
	return f
}

// ValidGrowthFactor reports whether f is a finite factor of at least
// MinGrowthFactor.
func ValidGrowthFactor(f float64) bool {
	return f >= MinGrowthFactor && !math.IsInf(f, 1)
}

// NextCapacity returns the capacity that follows c when growing by factor f
// without exceeding limit. It grows by at least one slot, never returns less
// than MinCapacity, and saturates at limit. With ceil set the product is
// rounded up instead of truncated.
func NextCapacity(c int, f float64, limit int, ceil bool) int {
	p := float64(c) * f
	if ceil {
		p = math.Ceil(p)
	}
	if !(p < float64(limit)) {
		return limit
	}
	return min(max(int(p), c+1, MinCapacity), limit)
}

func (v *Vector[T]) next(c int) int {
	return NextCapacity(c, v.GrowthFactor(), v.MaxSize(), false)
}

// Reserve ensures the capacity is at least n without changing the length.
// When a reallocation is needed the new capacity is max(n, MinCapacity).
// Reserving past MaxSize is a precondition violation.
func (v *Vector[T]) Reserve(n int) {
	buf := v.storage()
	if n <= buf.Cap() {
		return
	}
	precond.Check(n <= v.MaxSize(), "vector.Reserve", "capacity "+strconv.Itoa(n)+" exceeds the maximum size")
	buf.Realloc(min(max(n, MinCapacity), v.MaxSize()))
}

// Resize sets the length to n. Growing multiplies the capacity, starting from
// max(Cap(), MinCapacity), until it covers n; new elements are zero. Shrinking
// only reduces the length.
func (v *Vector[T]) Resize(n int) {
	precond.Check(n >= 0, "vector.Resize", "negative length "+strconv.Itoa(n))
	precond.Check(n <= v.MaxSize(), "vector.Resize", "length "+strconv.Itoa(n)+" exceeds the maximum size")
	buf := v.storage()
	if n > buf.Cap() {
		c := max(buf.Cap(), MinCapacity)
		for c < n {
			c = v.next(c)
		}
		v.Reserve(min(c, v.MaxSize()))
	}
	buf.SetLen(n)
}

// ShrinkToFit reallocates the storage to exactly Len() slots.
func (v *Vector[T]) ShrinkToFit() {
	buf := v.storage()
	buf.Realloc(buf.Len())
}

// grow makes room for one more element.
func (v *Vector[T]) grow(op string) {
	buf := v.storage()
	if buf.Len() == buf.Cap() {
		precond.Check(buf.Cap() < v.MaxSize(), op, "vector is at its maximum size")
		v.Reserve(v.next(buf.Cap()))
	}
}

// PushBack appends x.
func (v *Vector[T]) PushBack(x T) {
	*v.EmplaceBack() = x
}

// EmplaceBack appends a zero value and returns a pointer to it for in-place
// construction. The pointer is invalidated by the next reallocation.
func (v *Vector[T]) EmplaceBack() *T {
	v.grow("vector.EmplaceBack")
	buf := v.storage()
	n := buf.Len()
	buf.SetLen(n + 1)
	return &buf.Elems()[n]
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() T {
	buf := v.storage()
	n := buf.Len()
	precond.NotEmpty("vector.PopBack", n)
	x := buf.Elems()[n-1]
	buf.SetLen(n - 1)
	return x
}

// Insert places x before position pos, shifting the suffix right, and returns
// pos. A pos equal to Len() appends.
func (v *Vector[T]) Insert(pos int, x T) int {
	precond.Position("vector.Insert", pos, v.Len())
	*v.emplace("vector.Insert", pos) = x
	return pos
}

// Emplace inserts a zero value before pos and returns a pointer to it. The
// pointer is invalidated by the next reallocation.
func (v *Vector[T]) Emplace(pos int) *T {
	precond.Position("vector.Emplace", pos, v.Len())
	return v.emplace("vector.Emplace", pos)
}

func (v *Vector[T]) emplace(op string, pos int) *T {
	v.grow(op)
	buf := v.storage()
	n := buf.Len()
	buf.SetLen(n + 1)
	e := buf.Elems()
	copy(e[pos+1:], e[pos:n])
	var zero T
	e[pos] = zero
	return &e[pos]
}

// Erase removes the element at pos, shifting the tail left, and returns pos,
// which now indexes the element that followed the erased one.
func (v *Vector[T]) Erase(pos int) int {
	precond.Index("vector.Erase", pos, v.Len())
	return v.erase(pos, pos+1)
}

// EraseRange removes the elements in [first, last) and returns first.
func (v *Vector[T]) EraseRange(first, last int) int {
	precond.Range("vector.EraseRange", first, last, v.Len())
	return v.erase(first, last)
}

func (v *Vector[T]) erase(first, last int) int {
	if first == last {
		return first
	}
	buf := v.storage()
	e := buf.Elems()
	clear(e[first:last])
	copy(e[first:], e[last:])
	buf.SetLen(len(e) - (last - first))
	return first
}

// Clear removes every element and keeps the capacity.
func (v *Vector[T]) Clear() {
	v.storage().SetLen(0)
}

// Fill overwrites every element with x.
func (v *Vector[T]) Fill(x T) {
	e := v.Data()
	for i := range e {
		e[i] = x
	}
}

// Reset overwrites every element with the zero value.
func (v *Vector[T]) Reset() {
	clear(v.Data())
}

// At returns the element at i.
func (v *Vector[T]) At(i int) T {
	e := v.Data()
	precond.Index("vector.At", i, len(e))
	return e[i]
}

// Unchecked returns the element at i without reporting a precondition
// violation. An out-of-range i still triggers the runtime bounds panic.
func (v *Vector[T]) Unchecked(i int) T {
	return v.storage().Elems()[i]
}

// Set replaces the element at i.
func (v *Vector[T]) Set(i int, x T) {
	e := v.Data()
	precond.Index("vector.Set", i, len(e))
	e[i] = x
}

// Ref returns a pointer to the element at i. The pointer is invalidated by the
// next reallocation.
func (v *Vector[T]) Ref(i int) *T {
	e := v.Data()
	precond.Index("vector.Ref", i, len(e))
	return &e[i]
}

// Front returns the first element.
func (v *Vector[T]) Front() T {
	e := v.Data()
	precond.NotEmpty("vector.Front", len(e))
	return e[0]
}

// Back returns the last element.
func (v *Vector[T]) Back() T {
	e := v.Data()
	precond.NotEmpty("vector.Back", len(e))
	return e[len(e)-1]
}

// Data returns the elements. The slice aliases the storage and is invalidated
// by the next reallocation.
func (v *Vector[T]) Data() []T {
	return v.storage().Elems()
}

// All iterates front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.Unchecked(i)) {
				return
			}
		}
	}
}

// Backward iterates back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, v.Unchecked(i)) {
				return
			}
		}
	}
}

// String formats the vector as [a, b, c].
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.Data() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}
