// Package buffer provides the owned storage block shared by the container
// packages.
//
// A Buffer is a contiguous block of element slots with an allocated capacity
// and a logically occupied prefix length. It never grows on its own: owners
// decide when to reallocate and by how much. The growable array keeps its
// elements in the occupied prefix, while the circular queue addresses the whole
// block as a ring and keeps its own head and count.
//
// Reallocation allocates a new block, moves every live element across in order
// and zeroes the old slots, so element types holding pointers do not keep
// garbage alive through an abandoned block. Slices and pointers obtained from a
// Buffer are invalid after the next reallocation; indexes remain meaningful.
//
// Buffers are not safe for concurrent use.
//
// Example usage:
//
//	buf := buffer.N[int](4)
//	buf.SetLen(2)
//	buf.Elems()[0] = 1
//
//	// Grow to eight slots, keeping the occupied prefix
//	buf.Reserve(8)
//
//	// Char-like contents convert to text
//	s := buffer.Text([]byte("hi\x00junk")) // "hi"
package buffer
