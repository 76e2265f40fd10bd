// File: repl.go
// Title: Parley REPL Command
// Description: Starts the interactive shell. This is also the default
//              when parley runs without a subcommand.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/parley/internal/shell"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive shell",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	in, err := buildInterpreter()
	if err != nil {
		printError("starting interpreter", err)
		return err
	}

	if err := shell.Run(in); err != nil {
		printError("session ended", err)
		return err
	}
	return nil
}
