// File: main.go
// Title: Parley CLI Entry Point
// Description: Starts the parley command line interface.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package main

import (
	"os"

	"github.com/msto63/parley/cmd/parley/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
