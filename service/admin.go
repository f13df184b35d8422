package service

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scribbles/config"

	"github.com/spf13/cobra"
)

// confirm asks a yes/no question on the command's streams.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	answer = strings.TrimSpace(answer)
	return answer == "y" || answer == "Y"
}

// NewBackupCommand creates the backup command.
func NewBackupCommand(opts *RootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create a badger backup of the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openBadger(opts.Config)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create backup directory: %w", err)
			}
			backupFile := filepath.Join(dir, fmt.Sprintf("backup_%d.db", time.Now().Unix()))
			f, err := os.Create(backupFile)
			if err != nil {
				return fmt.Errorf("create backup file: %w", err)
			}
			defer f.Close()

			if _, err := store.Backup(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Store backed up to %s\n", backupFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "data/backups", "backup directory")
	return cmd
}

// NewRestoreCommand creates the restore command.
func NewRestoreCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace the store with a badger backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return restore(cmd, opts.Config, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "replace existing data without asking")
	return cmd
}

func restore(cmd *cobra.Command, cfg *config.Config, backupFile string, yes bool) error {
	f, err := os.Open(backupFile)
	if err != nil {
		return fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat backup file: %w", err)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("backup file is empty: %s", backupFile)
	}

	store, err := openBadger(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if !yes && !confirm(cmd, "Existing data will be replaced. Continue?") {
		fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled")
		return nil
	}
	if err := store.DropAll(); err != nil {
		return err
	}
	if err := store.Load(f); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Store restored successfully")
	return nil
}

// NewCleanCommand creates the clean command.
func NewCleanCommand(opts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the on-disk store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return clean(cmd, opts.Config.Storage, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "remove without asking")
	return cmd
}

func clean(cmd *cobra.Command, cfg config.StorageConfig, yes bool) error {
	out := cmd.OutOrStdout()
	if cfg.Driver != config.DriverBadger && cfg.Driver != config.DriverSQLite {
		return fmt.Errorf("clean applies to file-backed drivers only (configured: %s)", cfg.Driver)
	}
	if _, err := os.Stat(cfg.Path); os.IsNotExist(err) {
		fmt.Fprintln(out, "Store is already clean (does not exist)")
		return nil
	}
	if !yes && !confirm(cmd, "Are you sure you want to clean the store? This cannot be undone.") {
		fmt.Fprintln(out, "Operation cancelled")
		return nil
	}
	if err := os.RemoveAll(cfg.Path); err != nil {
		return fmt.Errorf("clean store: %w", err)
	}
	fmt.Fprintln(out, "Store cleaned successfully")
	return nil
}
