package buffer

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"unsafe"

	"github.com/haivivi/containers/pkg/precond"
)

// maxBytes bounds the size of one block. The runtime cannot allocate more on
// any supported platform.
const maxBytes = min(uint64(1)<<47, uint64(math.MaxInt))

// MaxCap returns the largest capacity a Buffer of T can be given.
func MaxCap[T any]() int {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	return int(maxBytes / size)
}

func checkCap[T any](op string, capacity int) {
	if limit := MaxCap[T](); capacity > limit {
		precond.Check(false, op, "capacity "+strconv.Itoa(capacity)+" exceeds "+strconv.Itoa(limit))
	}
}

// Buffer is an owned, contiguous block of element slots.
//
// The block has a fixed capacity between reallocations. The first Len() slots
// are the occupied prefix; every slot past the prefix holds the zero value of
// T. Owners that treat the block as a ring (see package queue) address slots
// through Slots and keep their own bookkeeping, leaving the prefix length at
// zero.
type Buffer[T any] struct {
	block []T
	n     int

	reallocs int
	logger   *slog.Logger
}

// N creates a new Buffer with the specified capacity and an empty prefix.
//
// A capacity of zero creates a buffer with no block; the block is allocated on
// the first growth demand.
func N[T any](capacity int) *Buffer[T] {
	precond.Check(capacity >= 0, "buffer.N", "negative capacity "+strconv.Itoa(capacity))
	checkCap[T]("buffer.N", capacity)
	b := &Buffer[T]{}
	if capacity > 0 {
		b.block = make([]T, capacity)
	}
	return b
}

// SetLogger sets the logger used to report reallocations at debug level. A nil
// logger disables reporting.
func (b *Buffer[T]) SetLogger(l *slog.Logger) {
	b.logger = l
}

// Len returns the length of the occupied prefix.
func (b *Buffer[T]) Len() int {
	return b.n
}

// Cap returns the number of allocated slots.
func (b *Buffer[T]) Cap() int {
	return len(b.block)
}

// Reallocs returns how many times the block has been replaced.
func (b *Buffer[T]) Reallocs() int {
	return b.reallocs
}

// Elems returns the occupied prefix. The slice aliases the block and is
// invalidated by the next reallocation.
func (b *Buffer[T]) Elems() []T {
	return b.block[:b.n]
}

// Slots returns the whole block, including slots past the occupied prefix. The
// slice aliases the block and is invalidated by the next reallocation.
func (b *Buffer[T]) Slots() []T {
	return b.block
}

// SetLen sets the length of the occupied prefix. Newly exposed slots hold the
// zero value; vacated slots are zeroed. The block is never reallocated.
func (b *Buffer[T]) SetLen(n int) {
	precond.Position("buffer.SetLen", n, len(b.block))
	if n < b.n {
		clear(b.block[n:b.n])
	}
	b.n = n
}

// Reserve ensures the capacity is at least capacity. It reports whether the
// block was reallocated.
func (b *Buffer[T]) Reserve(capacity int) bool {
	if capacity <= len(b.block) {
		return false
	}
	b.Realloc(capacity)
	return true
}

// Realloc replaces the block with one of exactly capacity slots, moving the
// occupied prefix across. The capacity must not be smaller than Len(). A
// capacity of zero releases the block.
func (b *Buffer[T]) Realloc(capacity int) {
	precond.Check(capacity >= b.n, "buffer.Realloc",
		"capacity "+strconv.Itoa(capacity)+" below length "+strconv.Itoa(b.n))
	checkCap[T]("buffer.Realloc", capacity)
	if capacity == len(b.block) {
		return
	}
	var next []T
	if capacity > 0 {
		next = make([]T, capacity)
		copy(next, b.block[:b.n])
	}
	b.replace(next)
}

// Adopt replaces the block with next and sets the occupied prefix to n. The
// caller has already moved the live elements into next; the old block is
// zeroed and dropped.
func (b *Buffer[T]) Adopt(next []T, n int) {
	precond.Position("buffer.Adopt", n, len(next))
	b.n = n
	b.replace(next)
}

// Release drops the block and empties the prefix.
func (b *Buffer[T]) Release() {
	if b.block == nil {
		return
	}
	b.n = 0
	b.replace(nil)
}

func (b *Buffer[T]) replace(next []T) {
	from := len(b.block)
	clear(b.block)
	b.block = next
	b.reallocs++
	if b.logger != nil && b.logger.Enabled(context.Background(), slog.LevelDebug) {
		b.logger.Debug("buffer realloc", "from", from, "to", len(next), "len", b.n, "reallocs", b.reallocs)
	}
}
