package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/coax/internal/config"
	"github.com/jackzampolin/coax/internal/home"
	"github.com/jackzampolin/coax/internal/providers"
	"github.com/jackzampolin/coax/internal/svcctx"
	"github.com/jackzampolin/coax/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "coax",
	Short: "Schema-constrained structured output from LLMs",
	Long: `Coax turns natural-language instructions into validated structured data
using schema-constrained LLM calls.

Declare the shape you want, give an instruction, and get back a JSON
instance that is guaranteed to satisfy the schema:
  - Every invocation issues exactly one model call
  - Responses are parsed and validated before they reach you
  - Failures are explicit: transport errors or schema violations, never
    silently malformed data`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.coax/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "coax home directory (default: ~/.coax)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		setOutputFormat(outputFormat)

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
			TimeFormat: time.Kitchen,
			Level:      level,
		}))

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}

		cfgPath := cfgFile
		if cfgPath == "" && h.ConfigExists() {
			cfgPath = h.ConfigPath()
		}
		mgr, err := config.NewManager(cfgPath)
		if err != nil {
			return err
		}

		registry := providers.NewRegistryFromConfig(mgr.Get().ToRegistryConfig())
		registry.SetLogger(logger)

		// Hot-reload providers when the config file changes
		mgr.OnChange(func(cfg *config.Config) {
			registry.Reload(cfg.ToRegistryConfig())
		})
		mgr.WatchConfig()

		cmd.SetContext(svcctx.WithServices(cmd.Context(), &svcctx.Services{
			Registry: registry,
			Config:   mgr,
			Logger:   logger,
			Home:     h,
		}))
		return nil
	}

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(examplesCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
