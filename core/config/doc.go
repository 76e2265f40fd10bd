// File: doc.go
// Title: Package Documentation for config
// Description: Provides configuration management for parley with TOML and
//              YAML file support and environment variable overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package config provides configuration management for parley.
//
// Configuration files may be written in TOML (default) or YAML; the
// format is detected from the file extension. Keys are accessed with
// dot notation and typed getters:
//
//	cfg, err := config.Load("parley.toml")
//	if err != nil {
//		return err
//	}
//	prompt := cfg.GetString("shell.prompt", "parley> ")
//	maxLen := cfg.GetInt("interpreter.max_statement_length", 1024)
//
// Environment variables override file values. With the prefix PARLEY,
// the key shell.prompt is overridden by PARLEY_SHELL_PROMPT.
package config
