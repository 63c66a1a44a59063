package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/coax/internal/svcctx"
)

// providerInfo is the per-provider row printed by the providers command.
type providerInfo struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Model   string `json:"model" yaml:"model"`
	Default bool   `json:"default" yaml:"default"`
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List configured LLM providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs := svcctx.ServicesFrom(cmd.Context())
		cfg := svcs.Config.Get()

		infos := make([]providerInfo, 0, len(svcs.Registry.List()))
		for _, name := range svcs.Registry.List() {
			info := providerInfo{
				Name:    name,
				Default: name == cfg.Defaults.Provider,
			}
			if pc, ok := cfg.LLMProviders[name]; ok {
				info.Type = pc.Type
				info.Model = pc.Model
			}
			infos = append(infos, info)
		}
		return output(infos)
	},
}
