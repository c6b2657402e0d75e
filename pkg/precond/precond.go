// Package precond reports contract violations raised by the container
// packages.
//
// A violation is a caller bug: an index out of range, an operation on an empty
// container, an enqueue past a fixed capacity, or an erase of a list sentinel.
// Violations are never returned as errors. The failing operation panics with a
// *Violation instead.
//
// Checks are compiled in by default. Building with the "unchecked" tag removes
// them; behaviour on a violated precondition is then unspecified.
package precond

import (
	"errors"
	"strconv"
)

// ErrViolation is wrapped by every *Violation.
var ErrViolation = errors.New("precondition violation")

// Violation describes a failed precondition.
type Violation struct {
	// Op is the operation that detected the violation, e.g. "vector.At".
	Op string

	// Msg describes the broken condition.
	Msg string
}

func (v *Violation) Error() string {
	return v.Op + ": " + ErrViolation.Error() + ": " + v.Msg
}

func (v *Violation) Unwrap() error {
	return ErrViolation
}

// Enabled reports whether precondition checks are compiled in.
func Enabled() bool {
	return enabled
}

// Check panics with a Violation for op when cond is false.
func Check(cond bool, op, msg string) {
	if enabled && !cond {
		panic(&Violation{Op: op, Msg: msg})
	}
}

// Index checks 0 <= i < n.
func Index(op string, i, n int) {
	if enabled && (i < 0 || i >= n) {
		panic(&Violation{Op: op, Msg: "index " + strconv.Itoa(i) + " out of range [0, " + strconv.Itoa(n) + ")"})
	}
}

// Position checks 0 <= i <= n. It is used where one-past-the-end is a valid
// position, such as an insert that appends.
func Position(op string, i, n int) {
	if enabled && (i < 0 || i > n) {
		panic(&Violation{Op: op, Msg: "position " + strconv.Itoa(i) + " out of range [0, " + strconv.Itoa(n) + "]"})
	}
}

// Range checks 0 <= first <= last <= n.
func Range(op string, first, last, n int) {
	if enabled && (first < 0 || first > last || last > n) {
		panic(&Violation{Op: op, Msg: "range [" + strconv.Itoa(first) + ", " + strconv.Itoa(last) + ") out of range [0, " + strconv.Itoa(n) + "]"})
	}
}

// NotEmpty checks n > 0.
func NotEmpty(op string, n int) {
	if enabled && n <= 0 {
		panic(&Violation{Op: op, Msg: "container is empty"})
	}
}

// Recover converts a Violation panic into an error stored in *errp. Any other
// panic is propagated. It must be called directly by a deferred statement:
//
//	func step() (err error) {
//		defer precond.Recover(&err)
//		...
//	}
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if v, ok := r.(*Violation); ok {
		*errp = v
		return
	}
	panic(r)
}
