//go:build !unchecked

package stack

import (
	"errors"
	"testing"

	"github.com/haivivi/containers/pkg/precond"
)

func TestStack_Preconditions(t *testing.T) {
	tests := []struct {
		name string
		op   string
		fn   func()
	}{
		{"push full", "stack.Push", func() {
			s := NewBounded[int](1)
			s.Push(1)
			s.Push(2)
		}},
		{"pop empty", "stack.Pop", func() { New[int]().Pop() }},
		{"pop empty bounded", "stack.Pop", func() { NewBounded[int](2).Pop() }},
		{"top empty", "stack.Top", func() { NewBounded[int](2).Top() }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				err, _ := recover().(error)
				var pv *precond.Violation
				if !errors.As(err, &pv) || pv.Op != tc.op {
					t.Fatalf("recovered %v, want violation in %s", err, tc.op)
				}
			}()
			tc.fn()
		})
	}
}
