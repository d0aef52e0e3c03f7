package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// exec [line]...: run each line as if typed into the shell.
func execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec [command line]...",
		Short: "Run command lines and print their results",
		Long: "Runs each argument as one command line. With no arguments, " +
			"lines are read from standard input. Stops at the first failure.",
		Example: `  addressbook exec "add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2" list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				var err error
				if lines, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			for _, line := range lines {
				if strings.TrimSpace(line) == "" {
					continue
				}
				feedback, err := wire.Logic.Execute(line)
				if err != nil {
					return fmt.Errorf("%s: %w", line, err)
				}
				fmt.Fprintln(out, feedback)
			}
			return nil
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read commands: %w", err)
	}
	return lines, nil
}
