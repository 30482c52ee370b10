// Command jstyle is a fast, checkstyle-compatible Java linter.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/wharflab/jstyle/cmd/jstyle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(2)
	}
}
