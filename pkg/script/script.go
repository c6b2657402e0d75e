// Package script drives containers from declarative step lists.
//
// A script names a container kind and a sequence of operations. The Runner
// builds a container of strings, applies each step, snapshots the container
// after every step and checks the step's jq expectation against the
// snapshot. Precondition violations are recorded on the step rather than
// aborting the run, so a script can assert that an operation is rejected.
//
//	name: bounded queue wraps
//	kind: bounded-queue
//	capacity: 4
//	steps:
//	  - op: enqueue
//	    args: [a, b, c, d]
//	  - op: enqueue
//	    args: [e]
//	    fails: true
//	  - op: dequeue
//	    expect: .result == "a" and .len == 3
package script

import (
	"errors"
	"fmt"
	"slices"

	"github.com/itchyny/gojq"

	"github.com/haivivi/containers/pkg/cli"
	"github.com/haivivi/containers/pkg/vector"
)

var (
	// ErrInvalid is returned for scripts that fail validation.
	ErrInvalid = errors.New("script: invalid script")

	// ErrUnknownOp is returned for steps naming an operation the kind
	// does not support.
	ErrUnknownOp = errors.New("script: unknown operation")
)

// MaxSize bounds a script's capacity and the size arguments of resize and
// reserve.
const MaxSize = 1 << 24

// Kind names a container kind.
type Kind string

const (
	KindVector       Kind = "vector"
	KindList         Kind = "list"
	KindQueue        Kind = "queue"
	KindBoundedQueue Kind = "bounded-queue"
	KindStack        Kind = "stack"
	KindBoundedStack Kind = "bounded-stack"
	KindArray        Kind = "array"
)

// Kinds lists every supported kind.
var Kinds = []Kind{
	KindVector, KindList, KindQueue, KindBoundedQueue,
	KindStack, KindBoundedStack, KindArray,
}

// fixed reports whether the kind's capacity is set once at construction.
func (k Kind) fixed() bool {
	return k == KindBoundedQueue || k == KindBoundedStack || k == KindArray
}

// Script is a container kind plus the steps to run against it.
type Script struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	Kind Kind   `yaml:"kind" json:"kind"`

	// Capacity is the fixed size of bounded kinds and arrays, or the
	// initial capacity of growable ones.
	Capacity int `yaml:"capacity,omitempty" json:"capacity,omitempty"`

	// GrowthFactor overrides the growth factor of growable kinds.
	GrowthFactor float64 `yaml:"growth_factor,omitempty" json:"growth_factor,omitempty"`

	Steps []Step `yaml:"steps" json:"steps"`
}

// Step is one operation.
type Step struct {
	Op   string   `yaml:"op" json:"op"`
	Args []string `yaml:"args,omitempty" json:"args,omitempty"`

	// Expect is a jq expression evaluated against the snapshot taken after
	// the step. The step fails unless its first output is true.
	Expect string `yaml:"expect,omitempty" json:"expect,omitempty"`

	// Fails marks a step that must be rejected with a precondition
	// violation.
	Fails bool `yaml:"fails,omitempty" json:"fails,omitempty"`
}

// Load reads a script from a YAML or JSON file; "-" reads stdin.
func Load(path string) (*Script, error) {
	var s Script
	if err := cli.LoadInput(path, &s); err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Parse decodes a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := cli.ParseInput(data, "script.yaml", &s); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the kind, sizes, every step's operation and arguments,
// and every expectation's syntax.
func (s *Script) Validate() error {
	if !slices.Contains(Kinds, s.Kind) {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalid, s.Kind)
	}
	if s.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalid, s.Capacity)
	}
	if s.Capacity > MaxSize {
		return fmt.Errorf("%w: capacity %d exceeds %d", ErrInvalid, s.Capacity, MaxSize)
	}
	if s.GrowthFactor != 0 {
		if s.Kind.fixed() {
			return fmt.Errorf("%w: %s does not grow", ErrInvalid, s.Kind)
		}
		if !vector.ValidGrowthFactor(s.GrowthFactor) {
			return fmt.Errorf("%w: growth factor %v is not a finite number of at least %v",
				ErrInvalid, s.GrowthFactor, vector.MinGrowthFactor)
		}
	}

	ops := newTarget(s.Kind, 0, 0, nil).ops()
	for i, st := range s.Steps {
		o, ok := ops[st.Op]
		if !ok {
			return fmt.Errorf("%w: step %d: %s has no %q", ErrUnknownOp, i+1, s.Kind, st.Op)
		}
		if err := o.check(st.Args); err != nil {
			return fmt.Errorf("%w: step %d (%s): %v", ErrInvalid, i+1, st.Op, err)
		}
		if st.Expect != "" {
			if _, err := gojq.Parse(st.Expect); err != nil {
				return fmt.Errorf("%w: step %d expect: %v", ErrInvalid, i+1, err)
			}
		}
	}
	return nil
}
