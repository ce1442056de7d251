// Package root contains the root command for the application.
package root

import (
	"github.com/4rgc/bsparser/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the application configuration, populated before any command runs.
	Cfg *config.Config

	// PatternsFile optionally overrides the configured pattern bank path.
	PatternsFile string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:           "bsparser",
		Short:         "A CLI tool to turn bank statement exports into a categorized ledger.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `bsparser converts raw bank and credit-card statement exports (date,
description, amount rows) into a normalized, categorized ledger file. Each
transaction description is matched against a persisted bank of substring
patterns; unmatched transactions are classified interactively and the answer
is remembered for future runs.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bsparser!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			if PatternsFile != "" {
				Cfg.Patterns.File = PatternsFile
			}
		},
	}
)

// Init initializes the root command's persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&PatternsFile, "patterns", "p", "", "Pattern bank file (default from config)")
}
