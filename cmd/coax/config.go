package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/coax/internal/config"
	"github.com/jackzampolin/coax/internal/svcctx"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage coax configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to the home directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs := svcctx.ServicesFrom(cmd.Context())
		h := svcs.Home

		if err := h.EnsureExists(); err != nil {
			return err
		}
		if h.ConfigExists() && !configForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", h.ConfigPath())
		}

		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", h.ConfigPath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs := svcctx.ServicesFrom(cmd.Context())
		return output(svcs.Config.Get())
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
