//go:build !unchecked

package precond

import (
	"errors"
	"strings"
	"testing"
)

func mustViolate(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		v, ok := r.(*Violation)
		if !ok {
			t.Fatalf("recovered %v (%T), want *Violation", r, r)
		}
		if v.Op != op {
			t.Fatalf("Op = %q, want %q", v.Op, op)
		}
	}()
	fn()
}

func TestCheck(t *testing.T) {
	Check(true, "test.Op", "never")
	mustViolate(t, "test.Op", func() { Check(false, "test.Op", "broken") })
}

func TestIndex(t *testing.T) {
	Index("test.Index", 0, 1)
	Index("test.Index", 4, 5)
	mustViolate(t, "test.Index", func() { Index("test.Index", 5, 5) })
	mustViolate(t, "test.Index", func() { Index("test.Index", -1, 5) })
	mustViolate(t, "test.Index", func() { Index("test.Index", 0, 0) })
}

func TestPositionAndRange(t *testing.T) {
	Position("test.Position", 3, 3)
	mustViolate(t, "test.Position", func() { Position("test.Position", 4, 3) })

	Range("test.Range", 0, 0, 0)
	Range("test.Range", 1, 3, 3)
	mustViolate(t, "test.Range", func() { Range("test.Range", 2, 1, 3) })
	mustViolate(t, "test.Range", func() { Range("test.Range", 0, 4, 3) })
}

func TestNotEmpty(t *testing.T) {
	NotEmpty("test.Pop", 1)
	mustViolate(t, "test.Pop", func() { NotEmpty("test.Pop", 0) })
}

func TestViolationError(t *testing.T) {
	v := &Violation{Op: "vector.At", Msg: "index 3 out of range [0, 2)"}
	if !errors.Is(v, ErrViolation) {
		t.Fatal("errors.Is(v, ErrViolation) = false")
	}
	want := "vector.At: precondition violation: index 3 out of range [0, 2)"
	if v.Error() != want {
		t.Fatalf("Error() = %q, want %q", v.Error(), want)
	}
}

func TestRecover(t *testing.T) {
	step := func() (err error) {
		defer Recover(&err)
		NotEmpty("stack.Pop", 0)
		return nil
	}
	err := step()
	var v *Violation
	if !errors.As(err, &v) {
		t.Fatalf("err = %v, want *Violation", err)
	}
	if !strings.Contains(err.Error(), "container is empty") {
		t.Fatalf("err = %q", err)
	}

	ok := func() (err error) {
		defer Recover(&err)
		return nil
	}
	if err := ok(); err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
}

func TestRecoverPropagatesOtherPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("recovered %v, want boom", r)
		}
	}()
	func() (err error) {
		defer Recover(&err)
		panic("boom")
	}()
}

func TestEnabled(t *testing.T) {
	if !Enabled() {
		t.Fatal("Enabled() = false in a checked build")
	}
}
