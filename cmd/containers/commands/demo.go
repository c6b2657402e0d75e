package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haivivi/containers/pkg/script"
)

var demoCmd = &cobra.Command{
	Use:   "demo [kind]",
	Short: "Run a built-in script",
	Long: `Run the built-in script for a container kind. Without a kind, list them.

Examples:
  containers demo
  containers demo list
  containers demo bounded-queue --format box`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(script.Demos(), "\n"))
			return nil
		}
		s, err := script.Demo(args[0])
		if err != nil {
			return err
		}
		return runScript(cmd, s)
	},
}

func init() {
	demoCmd.Flags().IntVar(&runTrace, "trace", 0, "include the last N debug log lines in the report")
	rootCmd.AddCommand(demoCmd)
}
