package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/docgraph/pipeline"
	"github.com/viant/docgraph/plugin/visibility"
)

func newWatchCmd(root *rootFlags) *cobra.Command {
	flags := &buildFlags{}
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the manifest whenever the input changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			env, err := newEnvironment(ctx, cmd, root, flags)
			if err != nil {
				return err
			}
			session := env.pipeline.NewSession(pipeline.NewAnalyzer(env.options, env.fs))
			reports := &reporter{w: cmd.OutOrStdout()}
			err = session.Watch(ctx, interval, func(result *pipeline.Result, err error) {
				missing := &visibility.MissingDocumentationError{}
				switch {
				case errors.As(err, &missing):
					reports.report(missing)
				case err != nil:
					env.logger.Error(err, "cycle failed")
				default:
					reports.reset()
					if err := env.publish(ctx, result); err != nil {
						env.logger.Error(err, "failed to publish")
					}
				}
			})
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "input polling interval")
	return cmd
}

// reporter prints missing documentation reports, a report identical to the previous one is skipped
type reporter struct {
	w      io.Writer
	digest uint64
}

func (r *reporter) report(err *visibility.MissingDocumentationError) bool {
	digest := err.Digest()
	if digest != 0 && digest == r.digest {
		return false
	}
	r.digest = digest
	fmt.Fprint(r.w, err.Report())
	return true
}

func (r *reporter) reset() {
	r.digest = 0
}
