package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/haivivi/containers/pkg/cli"
	"github.com/haivivi/containers/pkg/script"
)

var (
	runFile  string
	runTrace int
)

var runScriptCmd = &cobra.Command{
	Use:   "run -f <file>",
	Short: "Run a container script",
	Long: `Run a container script defined in a YAML or JSON file. Use '-' to read
from stdin.

A script names a kind and a list of steps. Each step may carry a jq
expectation evaluated against the container snapshot taken after the step,
and may be marked 'fails: true' when it must be rejected.

  kind: bounded-stack
  capacity: 2
  steps:
    - op: push
      args: [a, b]
      expect: .items == ["b", "a"]
    - op: push
      args: [c]
      fails: true

Examples:
  containers run -f script.yaml
  containers run -f script.yaml --format box
  containers run -f script.yaml --trace 20 --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if runFile == "" {
			return fmt.Errorf("flag -f is required")
		}
		s, err := script.Load(runFile)
		if err != nil {
			return err
		}
		return runScript(cmd, s)
	},
}

// runScript runs s, prints the report and fails when any step failed.
func runScript(cmd *cobra.Command, s *script.Script) error {
	r := &script.Runner{Logger: slog.Default()}
	if cfg, err := GetConfig(); err == nil {
		r.GrowthFactor = cfg.GrowthFactor
	}

	var trace *cli.LogWriter
	if runTrace > 0 {
		trace = cli.NewLogWriter(runTrace)
		r.Logger = slog.New(slog.NewTextHandler(trace, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	rep, err := r.Run(cmd.Context(), s)
	if err != nil {
		return err
	}

	if trace != nil {
		rep.Trace = trace.Lines()
	}
	if err := printResult(cmd.Context(), rep); err != nil {
		return err
	}
	if n := len(rep.Failed()); n > 0 {
		return fmt.Errorf("script failed: %d step(s) did not pass", n)
	}
	return nil
}

func init() {
	runScriptCmd.Flags().StringVarP(&runFile, "file", "f", "", "script file ('-' for stdin)")
	runScriptCmd.Flags().IntVar(&runTrace, "trace", 0, "include the last N debug log lines in the report")
	rootCmd.AddCommand(runScriptCmd)
}
