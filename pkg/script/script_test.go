package script

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
name: tiny
kind: queue
capacity: 2
growth_factor: 2
steps:
  - op: enqueue
    args: [a, b]
    expect: .len == 2
  - op: dequeue
`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if s.Kind != KindQueue || s.Capacity != 2 || s.GrowthFactor != 2 || len(s.Steps) != 2 {
		t.Fatalf("script = %+v", s)
	}
	if s.Steps[0].Args[1] != "b" || s.Steps[0].Expect != ".len == 2" {
		t.Errorf("step 0 = %+v", s.Steps[0])
	}
}

func TestParse_NaNGrowthFactor(t *testing.T) {
	_, err := Parse([]byte("kind: vector\ngrowth_factor: .nan\nsteps:\n  - op: push_back\n    args: [a]\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Parse error = %v, want %v", err, ErrInvalid)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	data := `{"kind": "stack", "steps": [{"op": "push", "args": ["a"]}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.Kind != KindStack || s.Steps[0].Op != "push" {
		t.Errorf("script = %+v", s)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Script
		want error
	}{
		{"unknown kind", Script{Kind: "heap"}, ErrInvalid},
		{"negative capacity", Script{Kind: KindArray, Capacity: -1}, ErrInvalid},
		{"growth on fixed kind", Script{Kind: KindBoundedQueue, Capacity: 2, GrowthFactor: 2}, ErrInvalid},
		{"growth too small", Script{Kind: KindVector, GrowthFactor: 1.01}, ErrInvalid},
		{"growth NaN", Script{Kind: KindVector, GrowthFactor: math.NaN()}, ErrInvalid},
		{"growth infinite", Script{Kind: KindQueue, GrowthFactor: math.Inf(1)}, ErrInvalid},
		{"capacity too large", Script{Kind: KindArray, Capacity: MaxSize + 1}, ErrInvalid},
		{"reserve too large", Script{Kind: KindVector, Steps: []Step{{Op: "reserve", Args: []string{"9223372036854775807"}}}}, ErrInvalid},
		{"resize too large", Script{Kind: KindList, Steps: []Step{{Op: "resize", Args: []string{"16777217"}}}}, ErrInvalid},
		{"negative resize is a runtime check", Script{Kind: KindVector, Steps: []Step{{Op: "resize", Args: []string{"-1"}, Fails: true}}}, nil},
		{"unknown op", Script{Kind: KindStack, Steps: []Step{{Op: "enqueue"}}}, ErrUnknownOp},
		{"missing arg", Script{Kind: KindVector, Steps: []Step{{Op: "at"}}}, ErrInvalid},
		{"extra arg", Script{Kind: KindVector, Steps: []Step{{Op: "pop_back", Args: []string{"x"}}}}, ErrInvalid},
		{"non-integer", Script{Kind: KindVector, Steps: []Step{{Op: "at", Args: []string{"one"}}}}, ErrInvalid},
		{"variadic needs one", Script{Kind: KindList, Steps: []Step{{Op: "push_back"}}}, ErrInvalid},
		{"splice position", Script{Kind: KindList, Steps: []Step{{Op: "splice", Args: []string{"x", "y"}}}}, ErrInvalid},
		{"bad expect", Script{Kind: KindVector, Steps: []Step{{Op: "clear", Expect: ".len =="}}}, ErrInvalid},
		{"ok", Script{Kind: KindList, Steps: []Step{{Op: "splice", Args: []string{"0", "a", "b"}}}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDemos(t *testing.T) {
	names := Demos()
	if len(names) != len(Kinds) {
		t.Fatalf("Demos() = %v, want one per kind", names)
	}
	for _, k := range Kinds {
		s, err := Demo(string(k))
		if err != nil {
			t.Fatalf("Demo(%s) error: %v", k, err)
		}
		if s.Kind != k {
			t.Errorf("Demo(%s).Kind = %s", k, s.Kind)
		}
	}
	if _, err := Demo("heap"); err == nil {
		t.Error("Demo(heap) should fail")
	}
}
