// Package cmd provides the CLI commands for triedo.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/triedo/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
}

// NewRootCmd creates the root command for the triedo CLI.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "triedo",
		Short: "Tagged to-do list with prefix search",
		Long: `triedo executes to-do list commands (add, done, search) read line by line.

Run 'triedo run' to read commands from stdin, or 'triedo batch' to execute
job files from a local directory, S3 or MinIO.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newRunCmd(g))
	cmd.AddCommand(newBatchCmd(g))
	cmd.AddCommand(newConfigCmd(g))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// load reads the config file and applies the global flags.
func (g *globalFlags) load() (*config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// indexFlags are the list flags shared by run and batch.
type indexFlags struct {
	backend   string
	engine    string
	purgeTags bool
	format    string
}

func (f *indexFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.backend, "backend", "", "Trie backend (map, nibble, radix)")
	cmd.Flags().StringVar(&f.engine, "engine", "", "Search engine (indexed, linear)")
	cmd.Flags().BoolVar(&f.purgeTags, "purge-tags", false, "Remove completed items from the tag index")
	cmd.Flags().StringVar(&f.format, "format", "", "Output format (text, json)")
}

// apply overrides cfg with the flags that were set explicitly.
func (f *indexFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if f.backend != "" {
		cfg.Index.Backend = f.backend
	}
	if f.engine != "" {
		cfg.Index.Engine = f.engine
	}
	if cmd.Flags().Changed("purge-tags") {
		cfg.Index.PurgeTags = f.purgeTags
	}
	if f.format != "" {
		cfg.Batch.Format = f.format
	}
	return cfg.Validate()
}
