package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/docgraph/plugin/visibility"
)

type rootFlags struct {
	config    string
	logLevel  string
	logFormat string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns process exit code
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		missing := &visibility.MissingDocumentationError{}
		if errors.As(err, &missing) {
			fmt.Fprint(stdout, missing.Report())
			return 1
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "docgraph",
		Short:         "Builds the published declaration graph of a documentation project",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "config file URL (.yaml or .toml)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(newBuildCmd(flags))
	root.AddCommand(newWatchCmd(flags))
	root.AddCommand(newVersionCmd())
	return root
}
