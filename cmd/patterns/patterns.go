// Package patterns contains the command for inspecting the pattern bank.
package patterns

import (
	"encoding/json"
	"fmt"

	"github.com/4rgc/bsparser/cmd/root"
	"github.com/4rgc/bsparser/internal/logging"
	"github.com/4rgc/bsparser/internal/patternbank"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	showKeys       bool
	showCategories bool
	outputFormat   string
)

// Cmd is the patterns command.
var Cmd = &cobra.Command{
	Use:   "patterns",
	Short: "Inspect the pattern bank",
	Long: `Patterns prints the contents of the pattern bank: the learned
description patterns, their keys, and the category tree they map to.`,
	RunE: patternsFunc,
}

func init() {
	Cmd.Flags().BoolVar(&showKeys, "keys", false, "List every key in the bank")
	Cmd.Flags().BoolVar(&showCategories, "categories", false, "List the category tree")
	Cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text, json or yaml")
}

func patternsFunc(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)

	bank := patternbank.New(root.Cfg.Patterns.File, logger)
	if err := bank.Load(); err != nil {
		return fmt.Errorf("loading pattern bank: %w", err)
	}

	var data interface{}
	switch {
	case showKeys:
		data = bank.AllKeys()
	case showCategories:
		data = bank.AllCategories()
	default:
		data = bank.Patterns()
	}

	switch outputFormat {
	case "json":
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding patterns as JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "yaml":
		out, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("encoding patterns as YAML: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
	case "text":
		printText(cmd, bank)
	default:
		return fmt.Errorf("unknown output format %q: must be text, json or yaml", outputFormat)
	}
	return nil
}

func printText(cmd *cobra.Command, bank *patternbank.Bank) {
	out := cmd.OutOrStdout()
	switch {
	case showKeys:
		for _, key := range bank.AllKeys() {
			fmt.Fprintln(out, key)
		}
	case showCategories:
		for _, cat := range bank.AllCategories() {
			fmt.Fprintln(out, cat.Name)
			for _, sub := range cat.Subcategories {
				fmt.Fprintf(out, "  %s\n", sub)
			}
		}
	default:
		for _, p := range bank.Patterns() {
			fmt.Fprintf(out, "%s (%s", p.Contents, p.MainCategory)
			if p.SubCategory != "" {
				fmt.Fprintf(out, " / %s", p.SubCategory)
			}
			fmt.Fprintf(out, "): %v\n", p.Key)
		}
	}
}
