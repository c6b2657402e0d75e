// Package cli provides the pieces shared by the containers command-line
// tool.
//
// This package includes:
//   - Settings loading and saving (YAML)
//   - Output formatting (YAML, JSON, raw, boxed columns)
//   - Input document loading (YAML/JSON, file or stdin)
//   - A bounded log capture for showing recent log lines in reports
//
// Example usage:
//
//	cfg, err := cli.LoadConfig(path)
//
//	cli.Output(report, cli.OutputOptions{
//	    Format: cli.FormatBox,
//	    Theme:  cfg.Theme,
//	})
package cli
