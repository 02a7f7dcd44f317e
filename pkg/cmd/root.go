// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"

	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bborbe/next-version/pkg/classify"
	"github.com/bborbe/next-version/pkg/config"
	"github.com/bborbe/next-version/pkg/git"
	"github.com/bborbe/next-version/pkg/logging"
	"github.com/bborbe/next-version/pkg/nextversion"
	"github.com/bborbe/next-version/pkg/resolve"
	"github.com/bborbe/next-version/pkg/version"
)

// NewRootCommand creates the next-version root command.
func NewRootCommand(versionGetter version.Getter) *cobra.Command {
	var target string
	var release bool
	var output string

	rootCmd := &cobra.Command{
		Use:   "next-version",
		Short: "Calculate the next semantic version from git history",
		Long: `next-version inspects the commit history since the last release tag,
classifies each commit subject and prints the next semantic version.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			outputFormat := Output(output)
			if err := outputFormat.Validate(ctx); err != nil {
				return errors.Wrap(ctx, err, "validate output")
			}
			rt, err := newRuntime(ctx, cmd)
			if err != nil {
				return err
			}
			defer rt.close()
			result, err := rt.calculator.Calculate(ctx, nextversion.Request{
				Revision: target,
				Release:  release,
			})
			if err != nil {
				return err
			}
			return WriteResult(ctx, cmd.OutOrStdout(), result, outputFormat)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "path to config file (default .next-version.yaml)")
	rootCmd.PersistentFlags().String("log-level", logging.LogLevelInfo, "log level (debug, info, warn, error, none)")
	rootCmd.Flags().StringVar(&target, "target", "HEAD", "revision to calculate the version for")
	rootCmd.Flags().BoolVar(&release, "release", false, "print the bare version without prerelease suffix")
	rootCmd.Flags().StringVar(&output, "output", OutputPlain.String(), "output format (plain, json, yaml)")

	rootCmd.AddCommand(
		newReleaseCmd(),
		newVersionCmd(versionGetter),
	)

	return rootCmd
}

// runtime bundles the collaborators built from config.
type runtime struct {
	cfg        config.Config
	logger     *zap.Logger
	gitter     git.Gitter
	calculator nextversion.Calculator
}

// newRuntime builds the object graph for one command invocation.
func newRuntime(ctx context.Context, cmd *cobra.Command) (*runtime, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, errors.Wrap(ctx, err, "get config flag")
	}
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, errors.Wrap(ctx, err, "get log-level flag")
	}
	logger, err := logging.GetLogger(ctx, logLevel)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "get logger")
	}
	cfg, err := config.NewLoader(configPath).Load(ctx)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "load config")
	}
	gitter, err := newGitter(ctx, cfg.Engine)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "create gitter")
	}
	resolver, err := resolve.NewResolver(ctx, gitter, cfg.TagPrefixPattern, cfg.TagSuffixPattern, logger)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "create resolver")
	}
	rules, err := classify.NewRules(ctx, cfg.MajorTokens, cfg.MinorTokens, cfg.PatchTokens, cfg.IgnoreTokens)
	if err != nil {
		return nil, errors.Wrap(ctx, err, "create rules")
	}
	return &runtime{
		cfg:    cfg,
		logger: logger,
		gitter: gitter,
		calculator: nextversion.NewCalculator(
			gitter,
			resolver,
			classify.NewClassifier(rules, logger),
			cfg.DetectDirty,
			logger,
		),
	}, nil
}

func (r *runtime) close() {
	_ = r.logger.Sync()
}

func newGitter(ctx context.Context, engine config.Engine) (git.Gitter, error) {
	switch engine {
	case config.EngineExec:
		return git.NewExecGitter(), nil
	case config.EngineGogit:
		return git.NewGogitGitter("."), nil
	default:
		return nil, errors.Wrapf(ctx, validation.Error, "unknown engine '%s'", engine)
	}
}
