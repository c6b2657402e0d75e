package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/haivivi/containers/pkg/cli"
	"github.com/haivivi/containers/pkg/precond"
)

// Snapshot is the observable state of a container after a step.
type Snapshot struct {
	Kind     Kind     `yaml:"kind" json:"kind"`
	Len      int      `yaml:"len" json:"len"`
	Cap      int      `yaml:"cap" json:"cap"`
	Reallocs int      `yaml:"reallocs" json:"reallocs"`
	Items    []string `yaml:"items" json:"items"`
	Result   any      `yaml:"result,omitempty" json:"result,omitempty"`
}

// String formats the items as [a, b, c].
func (s Snapshot) String() string {
	return "[" + strings.Join(s.Items, ", ") + "]"
}

// value returns the snapshot as a jq input.
func (s Snapshot) value() map[string]any {
	items := make([]any, len(s.Items))
	for i, it := range s.Items {
		items[i] = it
	}
	return map[string]any{
		"kind":     string(s.Kind),
		"len":      s.Len,
		"cap":      s.Cap,
		"reallocs": s.Reallocs,
		"items":    items,
		"result":   s.Result,
	}
}

// StepResult records one executed step.
type StepResult struct {
	Index int      `yaml:"index" json:"index"`
	Op    string   `yaml:"op" json:"op"`
	Args  []string `yaml:"args,omitempty" json:"args,omitempty"`

	// Violation is the precondition violation the step raised, if any.
	Violation string `yaml:"violation,omitempty" json:"violation,omitempty"`

	// Error explains why the step failed: an unexpected violation, a
	// missing expected one, or a false expectation.
	Error string `yaml:"error,omitempty" json:"error,omitempty"`

	Snapshot Snapshot `yaml:"snapshot" json:"snapshot"`
}

// Report is the outcome of a run.
type Report struct {
	RunID  string       `yaml:"run_id" json:"run_id"`
	Name   string       `yaml:"name,omitempty" json:"name,omitempty"`
	Kind   Kind         `yaml:"kind" json:"kind"`
	Passed bool         `yaml:"passed" json:"passed"`
	Steps  []StepResult `yaml:"steps" json:"steps"`
	Final  Snapshot     `yaml:"final" json:"final"`

	// Trace holds log lines captured by the caller during the run.
	Trace []string `yaml:"trace,omitempty" json:"trace,omitempty"`
}

// Columns implements cli.Boxed: the final container, drawn first item on
// top.
func (r *Report) Columns() []cli.Column {
	return []cli.Column{{
		Title: fmt.Sprintf("%s len=%d cap=%d", r.Kind, r.Final.Len, r.Final.Cap),
		Cells: r.Final.Items,
	}}
}

// String formats the final container.
func (r *Report) String() string {
	return r.Final.String()
}

// Failed returns the steps that did not pass.
func (r *Report) Failed() []StepResult {
	var out []StepResult
	for _, st := range r.Steps {
		if st.Error != "" {
			out = append(out, st)
		}
	}
	return out
}

// Runner executes scripts.
type Runner struct {
	// Logger receives run progress and, at debug level, container
	// reallocations. Nil discards.
	Logger *slog.Logger

	// GrowthFactor applies to growable kinds when the script sets none.
	GrowthFactor float64
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// Run validates s and executes its steps in order. Step failures are
// reported in the returned Report; the error is non-nil only for an invalid
// script or a cancelled context.
func (r *Runner) Run(ctx context.Context, s *Script) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	log := r.logger().With("run_id", id)

	gf := s.GrowthFactor
	if gf == 0 && !s.Kind.fixed() {
		gf = r.GrowthFactor
	}
	t := newTarget(s.Kind, s.Capacity, gf, log)
	ops := t.ops()

	log.Info("script start", "name", s.Name, "kind", s.Kind, "steps", len(s.Steps))
	rep := &Report{RunID: id, Name: s.Name, Kind: s.Kind, Passed: true, Steps: []StepResult{}}
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		res, err := r.step(ctx, ops[st.Op], t, i, st)
		if err != nil {
			return rep, err
		}
		if res.Error != "" {
			rep.Passed = false
			log.Warn("step failed", "index", res.Index, "op", st.Op, "error", res.Error)
		}
		rep.Steps = append(rep.Steps, res)
	}
	rep.Final = t.snapshot()
	log.Info("script done", "passed", rep.Passed, "len", rep.Final.Len, "cap", rep.Final.Cap, "reallocs", rep.Final.Reallocs)
	return rep, nil
}

func (r *Runner) step(ctx context.Context, o op, t target, i int, st Step) (StepResult, error) {
	res := StepResult{Index: i + 1, Op: st.Op, Args: st.Args}

	out, err := apply(o, st.Args)
	var v *precond.Violation
	switch {
	case errors.As(err, &v):
		res.Violation = v.Error()
		if !st.Fails {
			res.Error = "unexpected precondition violation"
		}
	case err != nil:
		return res, err
	case st.Fails && precond.Enabled():
		res.Error = "expected a precondition violation"
	}

	res.Snapshot = t.snapshot()
	res.Snapshot.Result = out

	if st.Expect != "" && res.Error == "" {
		ok, err := Expect(ctx, st.Expect, res.Snapshot)
		if err != nil {
			res.Error = err.Error()
		} else if !ok {
			res.Error = "expectation is false: " + st.Expect
		}
	}
	return res, nil
}
