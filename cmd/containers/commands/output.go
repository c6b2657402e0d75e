package commands

import (
	"context"
	"os"

	"github.com/haivivi/containers/pkg/cli"
	"github.com/haivivi/containers/pkg/script"
)

// printResult writes v using the --format flag, falling back to the
// configured format. With --query, the jq outputs are written instead of v.
func printResult(ctx context.Context, v any) error {
	opts := cli.OutputOptions{
		Format: cli.OutputFormat(formatOutput),
		File:   outputFile,
	}
	if outputFile == "" {
		opts.Writer = os.Stdout
	}
	if cfg, err := GetConfig(); err == nil {
		if opts.Format == "" {
			opts.Format = cfg.Format
		}
		opts.Theme = cfg.Theme
	}

	if queryExpr != "" {
		out, err := script.Query(ctx, queryExpr, v)
		if err != nil {
			return err
		}
		if len(out) == 1 {
			v = out[0]
		} else {
			v = out
		}
	}
	return cli.Output(v, opts)
}
