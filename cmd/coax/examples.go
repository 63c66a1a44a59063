package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/coax/internal/extract"
	"github.com/jackzampolin/coax/internal/svcctx"
	"github.com/jackzampolin/coax/internal/toolgen"
)

var (
	examplesToolFile    string
	examplesCount       int
	examplesProvider    string
	examplesModel       string
	examplesTemperature float64
	examplesMaxTokens   int
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Generate example invocations for a tool definition",
	Long: `Examples generates synthetic user requests that exercise a tool.

The tool file is a JSON function definition with name, description, and
a JSON Schema parameters block. The model produces exactly the requested
number of examples, each pairing a user utterance with the tool call
that satisfies it.

Examples:
  coax examples --tool weather.json --count 5
  coax examples --tool search.json --count 10 --provider openai -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svcs := svcctx.ServicesFrom(ctx)

		tool, err := toolgen.LoadToolFile(examplesToolFile)
		if err != nil {
			return err
		}

		client, defaults, err := resolveClient(svcs, examplesProvider)
		if err != nil {
			return err
		}

		model := examplesModel
		if model == "" {
			model = defaults.Model
		}
		maxTokens := examplesMaxTokens
		if !cmd.Flags().Changed("max-tokens") {
			maxTokens = defaults.MaxTokens
		}

		gen := toolgen.NewGenerator(
			extract.New(client, extract.WithLogger(svcs.Logger)),
			toolgen.GeneratorConfig{
				Model:       model,
				Temperature: examplesTemperature,
				MaxTokens:   maxTokens,
			},
		)

		examples, err := gen.Generate(ctx, *tool, examplesCount)
		if err != nil {
			return err
		}
		return output(examples)
	},
}

func init() {
	examplesCmd.Flags().StringVar(&examplesToolFile, "tool", "", "tool definition file (JSON)")
	examplesCmd.Flags().IntVarP(&examplesCount, "count", "n", 5, "number of examples to generate")
	examplesCmd.Flags().StringVarP(&examplesProvider, "provider", "p", "", "provider name (default from config)")
	examplesCmd.Flags().StringVarP(&examplesModel, "model", "m", "", "model override")
	examplesCmd.Flags().Float64VarP(&examplesTemperature, "temperature", "t", 0.7, "sampling temperature")
	examplesCmd.Flags().IntVar(&examplesMaxTokens, "max-tokens", 0, "completion token limit")
	examplesCmd.MarkFlagRequired("tool")
}
