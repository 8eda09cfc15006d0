package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/hupe1980/markbook/command"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive transcription loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		session, restored, err := loadSession(ctx)
		if err != nil {
			return err
		}

		in := bufio.NewScanner(os.Stdin)
		out := cmd.OutOrStdout()

		if !restored {
			fmt.Fprintln(out, "No saved book. Enter one student per line, finish with an empty line:")
			var names []string
			for in.Scan() {
				line := in.Text()
				if line == "" {
					break
				}
				names = append(names, line)
			}
			if err := in.Err(); err != nil {
				return err
			}
			if err := session.InitStudents(ctx, strings.Join(names, "\n")); err != nil {
				return err
			}
		}

		fmt.Fprint(out, session.View())
		fmt.Fprintln(out, "Type a name to search, <lhs>=<marks> to record, :export, :clear or :quit.")

		for {
			fmt.Fprint(out, "> ")
			if !in.Scan() {
				return in.Err()
			}
			line := in.Text()
			if line == ":quit" {
				return nil
			}

			// Query lines only re-sort; show the reorder instead of executing.
			if parsed, err := command.Parse(line); err == nil && parsed.Kind == command.KindQuery {
				session.Query(ctx, parsed.Query)
				fmt.Fprint(out, session.View())
				continue
			}

			res, err := session.Exec(ctx, line)
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			fmt.Fprint(out, res.Output)
		}
	},
}
