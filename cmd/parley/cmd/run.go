// File: run.go
// Title: Parley Run Command
// Description: Evaluates a script file statement by statement. A parse
//              error aborts the script; failed statements are reported
//              and the script continues.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/parley"
	"github.com/msto63/parley/parser"
	"github.com/msto63/parley/utils/stringx"
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run a parley script",
	Long: `Evaluates the statements of a script file, one per line. Blank
lines and # comments are skipped. A parse error aborts the script with
a nonzero exit; other failed statements print a diagnostic and the
script continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	in, err := buildInterpreter()
	if err != nil {
		printError("starting interpreter", err)
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		printError("opening script", err)
		return err
	}
	defer file.Close()

	ctx := context.Background()
	scanner := bufio.NewScanner(file)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		statement := scanner.Text()

		res, err := in.Eval(ctx, statement)
		switch {
		case errors.Is(err, parley.ErrSessionEnd):
			return nil

		case err != nil:
			var parseErr *parser.ParseError
			if errors.As(err, &parseErr) {
				printError(fmt.Sprintf("line %d", lineNo), parseErr)
				return parseErr
			}
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)

		default:
			if !stringx.IsBlank(res.Output) {
				fmt.Println(res.Output)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		printError("reading script", err)
		return err
	}
	return nil
}
