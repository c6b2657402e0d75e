//go:build !unchecked

package script

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/haivivi/containers/pkg/precond"
)

func TestRunner_Demos(t *testing.T) {
	for _, name := range Demos() {
		t.Run(name, func(t *testing.T) {
			s, err := Demo(name)
			if err != nil {
				t.Fatalf("Demo error: %v", err)
			}
			rep, err := (&Runner{}).Run(context.Background(), s)
			if err != nil {
				t.Fatalf("Run error: %v", err)
			}
			for _, st := range rep.Failed() {
				t.Errorf("step %d (%s %v): %s", st.Index, st.Op, st.Args, st.Error)
			}
		})
	}
}

func TestRunner_Violations(t *testing.T) {
	s := mustParse(t, `
kind: bounded-queue
capacity: 1
steps:
  - op: dequeue
  - op: enqueue
    args: [a]
    fails: true
  - op: enqueue
    args: [b]
    fails: true
    expect: .items == ["a"]
`)
	rep, err := (&Runner{}).Run(context.Background(), s)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	steps := rep.Steps
	if steps[0].Violation == "" || !strings.Contains(steps[0].Error, "unexpected") {
		t.Errorf("step 1 = %+v, want an unexpected violation", steps[0])
	}
	if steps[1].Violation != "" || !strings.Contains(steps[1].Error, "expected a precondition violation") {
		t.Errorf("step 2 = %+v, want a missing violation", steps[1])
	}
	if !strings.Contains(steps[2].Violation, "queue.Enqueue") || steps[2].Error != "" {
		t.Errorf("step 3 = %+v, want an expected violation", steps[2])
	}
	if rep.Passed {
		t.Error("run passed despite failed steps")
	}
}

func TestApply_SizeBeyondAllocation(t *testing.T) {
	ops := newTarget(KindVector, 0, 0, nil).ops()
	for _, name := range []string{"reserve", "resize"} {
		t.Run(name, func(t *testing.T) {
			_, err := apply(ops[name], args{strconv.Itoa(math.MaxInt)})
			var pv *precond.Violation
			if !errors.As(err, &pv) {
				t.Fatalf("apply error = %v, want *precond.Violation", err)
			}
			if want := "vector." + strings.ToUpper(name[:1]) + name[1:]; pv.Op != want {
				t.Errorf("Op = %q, want %q", pv.Op, want)
			}
		})
	}
}
