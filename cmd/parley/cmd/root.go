// File: root.go
// Title: Parley Root Command
// Description: Root cobra command: configuration loading, logger setup
//              and interpreter construction shared by the subcommands.
//              Running parley without a subcommand starts the shell.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/parley"
	"github.com/msto63/parley/apps/notebook"
	"github.com/msto63/parley/core/config"
	"github.com/msto63/parley/core/log"
)

const (
	defaultConfigPath = "./configs/parley.toml"
	envPrefix         = "PARLEY"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "parley - near-natural-language command interpreter",
	Long: `parley interprets short English-like statements against pluggable
applications. Without a subcommand it starts the interactive shell.

Statements look like:

  create notebook as n
  use n
  add note "buy milk" and tag "errands"
  list notes
  exit`,
	RunE: runRepl,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: "+defaultConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose logging")
}

// loadConfig loads the configuration file. A missing default file is
// fine; an explicitly named file must exist.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); os.IsNotExist(err) {
			cfg := config.New()
			cfg.SetEnvPrefix(envPrefix)
			return cfg, nil
		}
		path = defaultConfigPath
	}

	return config.LoadWithOptions(path, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: envPrefix,
	})
}

// buildLogger derives the logger from config and flags.
func buildLogger(cfg *config.Config) *log.Logger {
	level := log.DefaultLevel()
	if parsed, err := log.ParseLevel(cfg.GetString("log.level", "")); err == nil {
		level = parsed
	}
	if verbose {
		level = log.LevelDebug
	}

	output := os.Stderr
	logger := log.NewWithConfig(log.Config{
		Level:  level,
		Format: log.FormatText,
		Output: output,
		Name:   "parley",
	})
	return logger
}

// buildInterpreter wires the interpreter with the registered
// applications.
func buildInterpreter() (*parley.Interpreter, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	return parley.New(parley.Options{
		Logger: buildLogger(cfg),
		Apps: map[string]parley.Factory{
			"notebook": notebook.Factory(cfg.GetString("notebook.path", "")),
		},
		MaxStatementLength: cfg.GetInt("interpreter.max_statement_length", 0),
		RenderWidth:        cfg.GetInt("render.width", 0),
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
