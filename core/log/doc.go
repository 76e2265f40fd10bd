// File: doc.go
// Title: Package Documentation for log
// Description: Provides structured logging for the parley interpreter with
//              levels, formats, contextual fields and performance timers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package log provides structured logging for the parley interpreter.
//
// The package supports multiple log levels (trace through fatal), three
// output formats (JSON, text and colored console) and contextual fields
// that are attached to every entry of a derived logger. Loggers are
// immutable: the With* methods return configured copies, so a logger can
// be narrowed per statement without affecting the parent.
//
// Basic usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Name:   "parley",
//	})
//
//	logger.Info("statement evaluated", log.Fields{
//		"candidates": 4,
//	})
//
// Timers measure and log operation durations:
//
//	timer := logger.StartTimer("evaluate")
//	// ... work ...
//	timer.Stop()
package log
