package buffer

import (
	"strings"
	"unsafe"
)

// Char is the set of character-like element types that convert to text.
type Char interface {
	~byte | ~rune
}

// Text converts a sequence of characters into a string, stopping at the first
// NUL. Byte elements are copied verbatim; rune elements are UTF-8 encoded.
func Text[T Char](s []T) string {
	var zero T
	var sb strings.Builder
	sb.Grow(len(s))
	for _, c := range s {
		if c == 0 {
			break
		}
		if unsafe.Sizeof(zero) == 1 {
			sb.WriteByte(byte(c))
		} else {
			sb.WriteRune(rune(c))
		}
	}
	return sb.String()
}
