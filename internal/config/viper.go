// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Patterns struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"patterns" yaml:"patterns"`

	Output struct {
		File   string `mapstructure:"file" yaml:"file"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"output" yaml:"output"`

	// Labels are the literal strings written into the ledger for the
	// run-level account and the income/expense flag. The defaults keep the
	// Japanese household-ledger wording the pattern files were built for.
	Labels struct {
		CreditAccount string `mapstructure:"credit_account" yaml:"credit_account"`
		DebitAccount  string `mapstructure:"debit_account" yaml:"debit_account"`
		Income        string `mapstructure:"income" yaml:"income"`
		Expense       string `mapstructure:"expense" yaml:"expense"`
	} `mapstructure:"labels" yaml:"labels"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bsparser")
	v.AddConfigPath(".bsparser")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BSPARSER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A malformed config file should not be silently ignored.
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine, defaults and env vars apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("patterns.file", "patterns.json")

	v.SetDefault("output.file", "out.tsv")
	v.SetDefault("output.format", "tsv")

	v.SetDefault("labels.credit_account", "クレジットカード")
	v.SetDefault("labels.debit_account", "デビットカード")
	v.SetDefault("labels.income", "収入")
	v.SetDefault("labels.expense", "支出")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Output.Format != "csv" && config.Output.Format != "tsv" {
		return fmt.Errorf("invalid output format: %s (must be 'csv' or 'tsv')", config.Output.Format)
	}

	if config.Patterns.File == "" {
		return fmt.Errorf("patterns.file must not be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig builds a logrus logger from the Log section.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
