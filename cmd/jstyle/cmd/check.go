package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/wharflab/jstyle/internal/config"
	"github.com/wharflab/jstyle/internal/discovery"
	"github.com/wharflab/jstyle/internal/linter"
	"github.com/wharflab/jstyle/internal/reporter"
	"github.com/wharflab/jstyle/internal/rules"
	_ "github.com/wharflab/jstyle/internal/rules/all" // Register all rules.
	"github.com/wharflab/jstyle/internal/version"
)

func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to checkstyle.xml (default: auto-discover)",
			Sources: cli.EnvVars("JSTYLE_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "overlay",
			Usage:   "Path to jstyle.toml overlay (default: auto-discover)",
			Sources: cli.EnvVars("JSTYLE_OVERLAY"),
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Usage:   "Number of files linted concurrently (default: number of CPUs)",
			Sources: cli.EnvVars("JSTYLE_JOBS"),
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check Java files for violations",
		ArgsUsage: "[PATH...]",
		Flags: append(configFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, sarif",
				Sources: cli.EnvVars("JSTYLE_FORMAT"),
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := reporter.ParseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			runner, err := newRunner(cmd)
			if err != nil {
				return err
			}
			files, err := expandArgs(cmd)
			if err != nil {
				return err
			}

			results, err := runner.CheckFiles(ctx, files, jobs(cmd))
			if err != nil {
				return err
			}

			sources := make(map[string][]byte, len(files))
			for _, file := range files {
				// Results came from these very files moments ago; a read
				// race here only degrades snippet positions.
				content, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				sources[file] = content
			}

			findings := reporter.Locate(results, sources)
			reporter.Sort(findings)

			if err := report(format, findings); err != nil {
				return err
			}
			if len(findings) > 0 {
				os.Exit(1)
			}
			return nil
		},
	}
}

func report(format reporter.Format, findings []reporter.Finding) error {
	switch format {
	case reporter.FormatJSON:
		return reporter.NewJSONReporter(os.Stdout).Report(findings)
	case reporter.FormatSARIF:
		return reporter.NewSARIFReporter(os.Stdout, version.Version()).Report(findings)
	default:
		return reporter.NewTextReporter(os.Stdout).Report(findings)
	}
}

// newRunner loads the merged configuration and instantiates the rules.
func newRunner(cmd *cli.Command) (*linter.Runner, error) {
	loader := config.Loader{
		CheckstylePath: cmd.String("config"),
		OverlayPath:    cmd.String("overlay"),
	}
	merged, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Bool("unsafe-fixes") {
		merged.UnsafeFixes = true
	}
	return linter.New(merged, rules.DefaultRegistry()), nil
}

func expandArgs(cmd *cli.Command) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		args = []string{"."}
	}
	files, err := discovery.Expand(args, discovery.Options{})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no Java files found in %v", args)
	}
	return files, nil
}

func jobs(cmd *cli.Command) int {
	if n := int(cmd.Int("jobs")); n > 0 {
		return n
	}
	return runtime.NumCPU()
}
