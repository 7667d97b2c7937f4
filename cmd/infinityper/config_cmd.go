package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/san-kum/infinityper/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration as YAML",
		Example: heredoc.Doc(`
			# Save the current flags to $HOME/.infinityper.yaml
			$ infinityper config init -c --palette ocean

			# Write to a specific file
			$ infinityper config init ./typer.yaml
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			path, _, err := opts.configPath()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				if path, err = homedir.Expand(args[0]); err != nil {
					return err
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.Save(path, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			log.Info("wrote config", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
