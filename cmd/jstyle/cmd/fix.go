package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func fixCommand() *cli.Command {
	return &cli.Command{
		Name:      "fix",
		Usage:     "Fix auto-fixable violations in Java files",
		ArgsUsage: "[PATH...]",
		Flags: append(configFlags(),
			&cli.BoolFlag{
				Name:    "unsafe-fixes",
				Usage:   "Also apply fixes that may change behavior in edge cases",
				Sources: cli.EnvVars("JSTYLE_UNSAFE_FIXES"),
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report what would change without writing files",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			runner, err := newRunner(cmd)
			if err != nil {
				return err
			}
			files, err := expandArgs(cmd)
			if err != nil {
				return err
			}

			applied, skipped, changedFiles := 0, 0, 0
			for _, file := range files {
				if err := ctx.Err(); err != nil {
					return err
				}
				content, err := os.ReadFile(file)
				if err != nil {
					return err
				}

				result := runner.Fix(file, content)
				if result.ParseFailed {
					fmt.Fprintf(os.Stderr, "%s: parse failed, skipped\n", file)
					continue
				}
				applied += result.Applied
				skipped += result.Skipped
				if !result.Changed() {
					continue
				}
				changedFiles++
				if cmd.Bool("dry-run") {
					continue
				}
				if err := os.WriteFile(file, result.Source, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", file, err)
				}
			}

			verb := "Fixed"
			if cmd.Bool("dry-run") {
				verb = "Would fix"
			}
			fmt.Printf("%s %d violations in %d files (%d skipped due to conflicts)\n",
				verb, applied, changedFiles, skipped)
			return nil
		},
	}
}
