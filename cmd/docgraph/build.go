package main

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/docgraph/config"
	"github.com/viant/docgraph/pipeline"
	"github.com/viant/docgraph/render"
	"github.com/viant/docgraph/repository"
)

type buildFlags struct {
	input             string
	output            string
	sourceRoot        string
	language          string
	strict            bool
	includeUnexported bool
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "source directory or YAML declaration snapshot")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "manifest URL")
	cmd.Flags().StringVar(&f.sourceRoot, "source-root", "", "first-party source root, detected from input by default")
	cmd.Flags().StringVar(&f.language, "language", "", "source language: go or typescript, detected from input by default")
	cmd.Flags().BoolVar(&f.strict, "strict", true, "fail on undocumented exported declarations")
	cmd.Flags().BoolVar(&f.includeUnexported, "unexported", false, "include unexported Go identifiers")
}

// environment represents state shared by build and watch
type environment struct {
	options  *config.Options
	logger   logr.Logger
	fs       afs.Service
	pipeline *pipeline.Pipeline
}

func newEnvironment(ctx context.Context, cmd *cobra.Command, root *rootFlags, flags *buildFlags) (*environment, error) {
	fs := afs.New()
	options := config.Default()
	if root.config != "" {
		loaded, err := config.Load(ctx, fs, root.config)
		if err != nil {
			return nil, err
		}
		options = loaded
	}
	changed := cmd.Flags().Changed
	if changed("input") {
		options.Input = flags.input
	}
	if changed("output") {
		options.Output = flags.output
	}
	if changed("source-root") {
		options.SourceRoot = flags.sourceRoot
	}
	if changed("language") {
		options.Language = flags.language
	}
	if changed("strict") {
		options.Strict = flags.strict
	}
	if changed("unexported") {
		options.IncludeUnexported = flags.includeUnexported
	}
	if root.logLevel != "" {
		options.Log.Level = root.logLevel
	}
	if root.logFormat != "" {
		options.Log.Format = root.logFormat
	}
	if err := options.Init(ctx, repository.New()); err != nil {
		return nil, err
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), options.Log)
	if err != nil {
		return nil, err
	}
	logger.V(1).Info("options resolved", "input", options.Input, "sourceRoot", options.SourceRoot, "strict", options.Strict)
	return &environment{
		options:  options,
		logger:   logger,
		fs:       fs,
		pipeline: pipeline.New(pipeline.WithLogger(logger), pipeline.WithOptions(options)),
	}, nil
}

// publish writes manifest of the completed cycle
func (e *environment) publish(ctx context.Context, result *pipeline.Result) error {
	manifest, err := render.NewManifest(result.Project, result.URLs)
	if err != nil {
		return err
	}
	if err = manifest.Write(ctx, e.fs, e.options.Output); err != nil {
		return err
	}
	e.logger.Info("manifest written", "url", e.options.Output, "documents", len(manifest.Pages), "anchors", len(manifest.Anchors))
	return nil
}

func newBuildCmd(root *rootFlags) *cobra.Command {
	flags := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run one conversion cycle and write the URL manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := newEnvironment(ctx, cmd, root, flags)
			if err != nil {
				return err
			}
			analyzer := pipeline.NewAnalyzer(env.options, env.fs)
			result, err := env.pipeline.Run(ctx, analyzer)
			if err != nil {
				return err
			}
			if err = env.publish(ctx, result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d documents written to %s\n", result.Project.Name, len(result.URLs), env.options.Output)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
