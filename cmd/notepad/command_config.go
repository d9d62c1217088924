package main

import (
	"github.com/spf13/cobra"
)

func newConfigCommand(w commandWiring, root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSessionConfig(w, root)
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return err
			}
			_, err = w.stdout.Write(data)
			return err
		},
	}
}
