// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/bborbe/errors"
)

// execTagger implements Tagger via the git binary.
type execTagger struct{}

// NewExecTagger creates a Tagger that runs the git binary in the
// current working directory.
func NewExecTagger() Tagger {
	return &execTagger{}
}

// CreateTag creates an annotated tag at the revision.
func (e *execTagger) CreateTag(ctx context.Context, name string, revision string, message string) error {
	// #nosec G204 -- tag name is generated by version bumping
	cmd := exec.CommandContext(ctx, "git", "tag", "-a", name, "-m", message, revision)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(ctx, err, "run git tag: %s", strings.TrimSpace(stderr.String()))
	}
	return nil
}

// PushTag pushes a tag to the remote.
func (e *execTagger) PushTag(ctx context.Context, remote string, name string) error {
	// #nosec G204 -- remote comes from config, tag name is generated by version bumping
	cmd := exec.CommandContext(ctx, "git", "push", remote, name)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(ctx, err, "run git push tag: %s", strings.TrimSpace(stderr.String()))
	}
	return nil
}
