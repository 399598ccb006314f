// Copyright (c) 2026 Listkit Team
// Listkit - ordered container toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/sdk6/listkit/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the listkit configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	var system bool
	var path string
	write := &cobra.Command{
		Use:   "write",
		Short: "Write the resolved configuration to listkit.yaml",
		Long:  "Writes to the user config directory, the system one with --system, or --path.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := path
			if target == "" {
				var err error
				if target, err = config.GetConfigPath(system); err != nil {
					return err
				}
			}
			if err := config.WriteConfigFileTo(&a.cfg, target); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), target)
			return err
		},
	}
	write.Flags().BoolVar(&system, "system", false, "write the system-wide file")
	write.Flags().StringVar(&path, "path", "", "write to this file")

	cmd.AddCommand(show, write)
	return cmd
}
