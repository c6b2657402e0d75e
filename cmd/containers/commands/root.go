package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/containers/cmd/containers/internal/config"
	"github.com/haivivi/containers/pkg/cli"
)

var (
	// Global flags
	verbose      bool
	formatOutput string
	outputFile   string
	queryExpr    string

	// Global configuration (loaded at init time)
	globalConfig *cli.Config
)

var rootCmd = &cobra.Command{
	Use:   "containers",
	Short: "Exercise generic containers from scripts",
	Long: `containers - run scripted operations against generic containers.

Kinds:
  vector         growable array
  list           sentinel-anchored doubly linked list
  queue          growable circular queue
  bounded-queue  fixed-capacity circular queue
  stack          growable stack
  bounded-stack  fixed-capacity stack
  array          fixed-size array

Settings are stored in the OS config directory:
  macOS:   ~/Library/Application Support/containers/
  Linux:   ~/.config/containers/
  Windows: %AppData%/containers/

Examples:
  containers demo queue --format box
  containers run -f script.yaml --query '.final.items'
  containers config set growth_factor 2`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (logs container reallocations)")
	rootCmd.PersistentFlags().StringVar(&formatOutput, "format", "", "output format: yaml, json, raw, box (default from config, else yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().StringVarP(&queryExpr, "query", "q", "", "jq expression applied to the result before output")
}

// configLoadErr stores the error from config.Load() for deferred reporting.
var configLoadErr error

func initConfig() {
	cfg, err := config.Load()
	if err != nil {
		configLoadErr = err
		return
	}
	globalConfig = cfg
}

// GetConfig returns the global configuration.
func GetConfig() (*cli.Config, error) {
	if globalConfig == nil {
		if configLoadErr != nil {
			return nil, fmt.Errorf("config not available: %w", configLoadErr)
		}
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("config not available: %w", err)
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}
