package script

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// Expect evaluates the jq expression expr against snap and reports whether
// its first output is true.
func Expect(ctx context.Context, expr string, snap Snapshot) (bool, error) {
	out, err := run(ctx, expr, snap.value())
	if err != nil {
		return false, err
	}
	if len(out) == 0 {
		return false, nil
	}
	b, ok := out[0].(bool)
	return ok && b, nil
}

// Query evaluates the jq expression expr against v, which is first
// normalized through its JSON form, and returns every output.
func Query(ctx context.Context, expr string, v any) ([]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("script: query input: %w", err)
	}
	var in any
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("script: query input: %w", err)
	}
	return run(ctx, expr, in)
}

func run(ctx context.Context, expr string, in any) ([]any, error) {
	q, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("script: parse %q: %w", expr, err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("script: compile %q: %w", expr, err)
	}

	var out []any
	iter := code.RunWithContext(ctx, in)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return out, fmt.Errorf("script: %q: %w", expr, err)
		}
		out = append(out, v)
	}
	return out, nil
}
