package service

import (
	"fmt"
	"log/slog"
	"os"

	"scribbles/config"

	"github.com/spf13/cobra"
)

// Version is reported by the version command.
var Version = "1.0.0"

// RootOptions holds global flags and the state loaded before every command.
type RootOptions struct {
	ConfigPath string
	Driver     string

	Config *config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the scribbles CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "scribbles",
		Short: "Ghibli Scribbles blog backend",
		Long:  "Serve and administer the Ghibli Scribbles blog: posts, comments and categories kept as JSON collections in a key-value store.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config (overrides CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "storage driver override (badger|sqlite|redis|memory)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewBackupCommand(opts))
	cmd.AddCommand(NewRestoreCommand(opts))
	cmd.AddCommand(NewCleanCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func (o *RootOptions) load() error {
	if o.ConfigPath != "" {
		if err := os.Setenv("CONFIG_PATH", o.ConfigPath); err != nil {
			return err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.Driver != "" {
		cfg.Storage.Driver = o.Driver
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: validate: %w", err)
		}
	}
	o.Config = cfg
	o.Logger = NewLogger(cfg.Log)
	return nil
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// Skip config loading.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scribbles version %s\n", Version)
		},
	}
}
