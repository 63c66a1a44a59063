package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/coax/internal/config"
	"github.com/jackzampolin/coax/internal/extract"
	"github.com/jackzampolin/coax/internal/providers"
	"github.com/jackzampolin/coax/internal/schema"
	"github.com/jackzampolin/coax/internal/svcctx"
)

var (
	extractSchemaFile  string
	extractProvider    string
	extractModel       string
	extractTemperature float64
	extractMaxTokens   int
	extractSystem      string
	extractWithMeta    bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [instruction]",
	Short: "Extract structured data matching a schema",
	Long: `Extract runs one schema-constrained model call for the given instruction
and prints the validated instance.

The schema file is YAML or JSON describing the output shape:

  name: person
  fields:
    - name: name
      type: string
    - name: age
      type: integer

Examples:
  coax extract "Describe the ideal company mascot" --schema person.yaml
  coax extract "List 5 rivers" --schema rivers.yaml --provider openai -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svcs := svcctx.ServicesFrom(ctx)

		def, err := schema.LoadFile(extractSchemaFile)
		if err != nil {
			return err
		}

		client, defaults, err := resolveClient(svcs, extractProvider)
		if err != nil {
			return err
		}

		model := extractModel
		if model == "" {
			model = defaults.Model
		}
		temperature := extractTemperature
		if !cmd.Flags().Changed("temperature") {
			temperature = defaults.Temperature
		}
		maxTokens := extractMaxTokens
		if !cmd.Flags().Changed("max-tokens") {
			maxTokens = defaults.MaxTokens
		}

		extractor := extract.New(client, extract.WithLogger(svcs.Logger))
		result, err := extractor.Extract(ctx, extract.Request{
			Instruction:  args[0],
			Schema:       def,
			Model:        model,
			Temperature:  temperature,
			MaxTokens:    maxTokens,
			SystemPrompt: extractSystem,
		})
		if err != nil {
			return err
		}

		var doc any
		if err := json.Unmarshal(result.Raw, &doc); err != nil {
			return fmt.Errorf("failed to decode result: %w", err)
		}

		if extractWithMeta {
			return output(map[string]any{
				"data":       doc,
				"provider":   result.Provider,
				"model":      result.Model,
				"request_id": result.RequestID,
				"usage":      result.Usage,
				"elapsed":    result.Elapsed.String(),
			})
		}
		return output(doc)
	},
}

// resolveClient picks the LLM client by flag, falling back to the configured
// default provider.
func resolveClient(svcs *svcctx.Services, name string) (providers.LLMClient, config.DefaultsCfg, error) {
	cfg := svcs.Config.Get()
	if name == "" {
		name = cfg.Defaults.Provider
	}
	client, err := svcs.Registry.Get(name)
	if err != nil {
		return nil, config.DefaultsCfg{}, err
	}
	return client, cfg.Defaults, nil
}

func init() {
	extractCmd.Flags().StringVarP(&extractSchemaFile, "schema", "s", "", "schema file (YAML or JSON)")
	extractCmd.Flags().StringVarP(&extractProvider, "provider", "p", "", "provider name (default from config)")
	extractCmd.Flags().StringVarP(&extractModel, "model", "m", "", "model override")
	extractCmd.Flags().Float64VarP(&extractTemperature, "temperature", "t", 0, "sampling temperature")
	extractCmd.Flags().IntVar(&extractMaxTokens, "max-tokens", 0, "completion token limit")
	extractCmd.Flags().StringVar(&extractSystem, "system", "", "system prompt override")
	extractCmd.Flags().BoolVar(&extractWithMeta, "with-meta", false, "include provider and usage metadata")
	extractCmd.MarkFlagRequired("schema")
}
