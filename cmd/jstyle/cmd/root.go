package cmd

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wharflab/jstyle/internal/version"
)

// NewApp creates the CLI application.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "jstyle",
		Usage:   "A fast Java linter with checkstyle-compatible rules and auto-fix",
		Version: version.Version(),
		Description: `jstyle checks Java sources against a checkstyle.xml configuration and
can rewrite files to resolve auto-fixable violations.

Examples:
  jstyle check src/
  jstyle check --config config/checkstyle/checkstyle.xml Main.java
  jstyle fix src/
  jstyle fix --unsafe-fixes src/`,
		Commands: []*cli.Command{
			checkCommand(),
			fixCommand(),
			versionCommand(),
		},
	}
}

// Execute runs the CLI application.
func Execute() error {
	return NewApp().Run(context.Background(), os.Args)
}
