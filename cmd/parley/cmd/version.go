// File: version.go
// Title: Parley Version Command
// Description: Prints the parley version.
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

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the parley version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("parley %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
