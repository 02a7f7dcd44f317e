// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bborbe/errors"
	"github.com/spf13/cobra"

	"github.com/bborbe/next-version/pkg/git"
	"github.com/bborbe/next-version/pkg/nextversion"
	"github.com/bborbe/next-version/pkg/semver"
)

// ReleaseRequest selects how the release tag is created.
type ReleaseRequest struct {
	Revision string
	Push     bool
	Force    bool
	Message  string
}

// ReleaseCommand executes the release subcommand.
type ReleaseCommand interface {
	Run(ctx context.Context, request ReleaseRequest) error
}

// releaseCommand implements ReleaseCommand.
type releaseCommand struct {
	out        io.Writer
	calculator nextversion.Calculator
	tagger     git.Tagger
	remote     string
}

// NewReleaseCommand creates a new ReleaseCommand.
func NewReleaseCommand(
	out io.Writer,
	calculator nextversion.Calculator,
	tagger git.Tagger,
	remote string,
) ReleaseCommand {
	return &releaseCommand{
		out:        out,
		calculator: calculator,
		tagger:     tagger,
		remote:     remote,
	}
}

// Run calculates the next version, creates the tag and optionally pushes it.
func (r *releaseCommand) Run(ctx context.Context, request ReleaseRequest) error {
	result, err := r.calculator.Calculate(ctx, nextversion.Request{
		Revision: request.Revision,
		Release:  true,
	})
	if err != nil {
		return errors.Wrap(ctx, err, "calculate next version")
	}

	// Nothing bumped the version, a new tag would duplicate the last one.
	if result.Bump == semver.BumpIgnore && !request.Force {
		return errors.Errorf(ctx, "no release needed, version stays %s", result.Version)
	}

	name := "v" + result.Version.String()
	message := request.Message
	if message == "" {
		message = fmt.Sprintf("release %s", name)
	}

	if err := r.tagger.CreateTag(ctx, name, request.Revision, message); err != nil {
		return errors.Wrapf(ctx, err, "create tag %s", name)
	}

	if request.Push {
		if err := r.tagger.PushTag(ctx, r.remote, name); err != nil {
			return errors.Wrapf(ctx, err, "push tag %s", name)
		}
	}

	if _, err := fmt.Fprintln(r.out, name); err != nil {
		return errors.Wrap(ctx, err, "write tag name")
	}
	return nil
}

// newReleaseCmd wires the release subcommand.
func newReleaseCmd() *cobra.Command {
	var target string
	var push bool
	var force bool
	var message string

	releaseCmd := &cobra.Command{
		Use:   "release",
		Short: "Tag the target revision with the next version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := newRuntime(ctx, cmd)
			if err != nil {
				return err
			}
			defer rt.close()
			releaseCommand := NewReleaseCommand(
				cmd.OutOrStdout(),
				rt.calculator,
				git.NewExecTagger(),
				rt.cfg.Remote,
			)
			return releaseCommand.Run(ctx, ReleaseRequest{
				Revision: target,
				Push:     push,
				Force:    force,
				Message:  message,
			})
		},
	}

	releaseCmd.Flags().StringVar(&target, "target", "HEAD", "revision to tag")
	releaseCmd.Flags().BoolVar(&push, "push", false, "push the created tag to the remote")
	releaseCmd.Flags().BoolVar(&force, "force", false, "create the tag even if nothing bumped the version")
	releaseCmd.Flags().StringVar(&message, "message", "", "tag message (default release <tag>)")

	return releaseCmd
}
