package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/ringseq/pkg/cli"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `Manage ringseq CLI configuration.

Configuration is stored in ~/.ringseq/config.yaml.
Multiple contexts can be defined, each holding ring defaults.`,
}

var configAddContextCmd = &cobra.Command{
	Use:   "add-context <name>",
	Short: "Add a new context",
	Long: `Add a new context with ring defaults. An existing context with the
same name is replaced.

Examples:
  ringseq config add-context small --backend list --capacity 3
  ringseq config add-context wide --capacity 64 --output json --log-lines 20`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		backend, _ := cmd.Flags().GetString("backend")
		capacity, _ := cmd.Flags().GetInt("capacity")
		output, _ := cmd.Flags().GetString("output-format")
		logLines, _ := cmd.Flags().GetInt("log-lines")

		cfg, err := getConfig()
		if err != nil {
			return err
		}
		ctx := &cli.Context{
			Name:     name,
			Backend:  backend,
			Capacity: capacity,
			Output:   output,
			LogLines: logLines,
		}
		if err := cfg.AddContext(name, ctx); err != nil {
			return err
		}

		cli.PrintSuccess("Context '%s' added successfully", name)
		return nil
	},
}

var configDeleteContextCmd = &cobra.Command{
	Use:   "delete-context <name>",
	Short: "Delete a context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		if err := cfg.DeleteContext(name); err != nil {
			return err
		}
		cli.PrintSuccess("Context '%s' deleted", name)
		return nil
	},
}

var configUseContextCmd = &cobra.Command{
	Use:   "use-context <name>",
	Short: "Set the default context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		if err := cfg.UseContext(name); err != nil {
			return err
		}
		cli.PrintSuccess("Switched to context '%s'", name)
		return nil
	},
}

var configGetContextsCmd = &cobra.Command{
	Use:   "get-contexts",
	Short: "List all contexts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if len(cfg.Contexts) == 0 {
			fmt.Fprintln(w, "No contexts configured")
			return nil
		}

		for _, name := range cfg.ListContexts() {
			marker := "  "
			if name == cfg.CurrentContext {
				marker = "* "
			}
			ctx := cfg.Contexts[name]
			fmt.Fprintf(w, "%s%s\tbackend=%s capacity=%d\n", marker, name, ctx.RingBackend(), ctx.Capacity)
		}
		return nil
	},
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "View full configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		return outputResult(cfg)
	},
}

func init() {
	// add-context flags
	configAddContextCmd.Flags().StringP("backend", "b", "", "backend: array or list (default: array)")
	configAddContextCmd.Flags().IntP("capacity", "n", 0, "ring capacity")
	configAddContextCmd.Flags().String("output-format", "", "default output format: yaml, json or raw")
	configAddContextCmd.Flags().Int("log-lines", 0, "log lines kept by show (default: 50)")

	configCmd.AddCommand(configAddContextCmd)
	configCmd.AddCommand(configDeleteContextCmd)
	configCmd.AddCommand(configUseContextCmd)
	configCmd.AddCommand(configGetContextsCmd)
	configCmd.AddCommand(configViewCmd)
}
