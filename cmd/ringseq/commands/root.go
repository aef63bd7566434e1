package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/ringseq/pkg/cli"
)

const appName = "ringseq"

var (
	// Global flags
	cfgFile     string
	contextName string
	outputFile  string
	inputFile   string
	outputJSON  bool
	jqQuery     string
	verbose     bool

	// Global configuration
	globalConfig *cli.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ringseq",
	Short: "Fixed-capacity ring buffer playground",
	Long: `ringseq - A command line interface for exploring ring sequences.

A ring sequence keeps at most N values; pushing onto a full ring evicts the
oldest one. Both the contiguous array backend and the linked list backend
can be driven from scripts.

Configuration is stored in ~/.ringseq/ and supports multiple contexts,
similar to kubectl's context management.

Examples:
  # Run the reference scenario on both backends
  ringseq demo --backend array
  ringseq demo --backend list

  # Replay a script and query the result
  ringseq run -f pushes.yaml --jq '.values'

  # Keep ring defaults in a context
  ringseq config add-context small --backend list --capacity 3
  ringseq -c small show -f pushes.yaml
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command returns the root cobra command for mounting into a parent CLI.
func Command() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "", "", "config file (default is ~/.ringseq/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&contextName, "context", "c", "", "context name to use")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "file", "f", "", "input script file (YAML or JSON, '-' for stdin)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON (for piping)")
	rootCmd.PersistentFlags().StringVar(&jqQuery, "jq", "", "jq expression applied to the result")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(showCmd)
}

func initConfig() {
	setupLogging(os.Stderr)

	var err error
	globalConfig, err = cli.LoadConfigWithPath(appName, cfgFile)
	if err != nil {
		// Log but don't exit so commands that need no config still work.
		fmt.Fprintf(os.Stderr, "Warning: %s config: %v\n", appName, err)
	}
}

// setupLogging installs the default slog handler based on the verbose flag
func setupLogging(w io.Writer) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

// getConfig returns the global configuration
func getConfig() (*cli.Config, error) {
	if globalConfig == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return globalConfig, nil
}

// getContext returns the context configuration to use. Without a config
// file or a current context the returned context carries no defaults.
func getContext() (*cli.Context, error) {
	cfg, err := getConfig()
	if err != nil {
		if contextName == "" {
			return &cli.Context{}, nil
		}
		return nil, err
	}
	return cfg.ResolveContext(contextName)
}

// outputResult writes result using the format from --json, the context
// default, or YAML, in that order.
func outputResult(result any) error {
	format := cli.FormatYAML
	if ctx, err := getContext(); err == nil && ctx.Output != "" {
		format = cli.OutputFormat(ctx.Output)
	}
	if outputJSON {
		format = cli.FormatJSON
	}
	return cli.Output(result, cli.OutputOptions{
		Format: format,
		File:   outputFile,
		Query:  jqQuery,
		Writer: outputWriter,
	})
}

// outputWriter overrides stdout when set; used by tests.
var outputWriter io.Writer
