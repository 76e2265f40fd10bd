// File: doc.go
// Title: stringx Package Documentation
// Description: Package documentation for the parley string utilities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

// Package stringx provides string helpers used across the parley
// interpreter: blank detection, truncation, fallbacks and line splitting.
// The package has no dependencies beyond the standard library and is safe
// for concurrent use; all functions are pure.
package stringx
