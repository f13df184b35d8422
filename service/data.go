package service

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"scribbles/app/repositories"

	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate an empty store with demo content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository(opts.Config, opts.Logger)
			if err != nil {
				return err
			}
			defer repo.Close()

			seeded, err := repo.Seed()
			if err != nil {
				return err
			}
			if seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "Store seeded with demo content")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Store already has content, nothing seeded")
			}
			return nil
		},
	}
}

// NewExportCommand creates the export command.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all collections as one JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository(opts.Config, opts.Logger)
			if err != nil {
				return err
			}
			defer repo.Close()

			dump, err := repo.Export()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
				w = f
			}
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(dump)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

// NewImportCommand creates the import command.
func NewImportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all collections with an exported JSON document",
		Long: `Replace all collections with a document written by export.
Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open import file: %w", err)
				}
				defer f.Close()
				r = f
			}

			var dump repositories.Dump
			if err := json.NewDecoder(r).Decode(&dump); err != nil {
				return fmt.Errorf("decode import file: %w", err)
			}

			repo, err := openRepository(opts.Config, opts.Logger)
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := repo.Import(&dump); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d categories, %d posts, %d comments\n",
				len(dump.Categories), len(dump.Posts), len(dump.Comments))
			return nil
		},
	}
}
