// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nextversion

import (
	"context"

	"github.com/bborbe/errors"
	"go.uber.org/zap"

	"github.com/bborbe/next-version/pkg/classify"
	"github.com/bborbe/next-version/pkg/git"
	"github.com/bborbe/next-version/pkg/resolve"
)

// Calculator computes the next semantic version for a revision.
//
//counterfeiter:generate -o ../../mocks/calculator.go --fake-name Calculator . Calculator
type Calculator interface {
	Calculate(ctx context.Context, request Request) (Result, error)
}

// calculator implements Calculator.
type calculator struct {
	gitter      git.Gitter
	resolver    resolve.Resolver
	classifier  classify.Classifier
	detectDirty bool
	logger      *zap.Logger
}

// NewCalculator creates a Calculator.
func NewCalculator(
	gitter git.Gitter,
	resolver resolve.Resolver,
	classifier classify.Classifier,
	detectDirty bool,
	logger *zap.Logger,
) Calculator {
	return &calculator{
		gitter:      gitter,
		resolver:    resolver,
		classifier:  classifier,
		detectDirty: detectDirty,
		logger:      logger,
	}
}

// Calculate resolves the last tag, classifies all commits between the
// tag and the requested revision and applies the aggregated bump.
func (c *calculator) Calculate(ctx context.Context, request Request) (Result, error) {
	tag, err := c.resolver.Resolve(ctx, request.Revision)
	if err != nil {
		return Result{}, errors.Wrap(ctx, err, "resolve last tag")
	}

	subjects, err := c.gitter.LogSubjects(ctx, git.Range(tag.Name, request.Revision))
	if err != nil {
		return Result{}, errors.Wrap(ctx, err, "list commit subjects")
	}

	bump, err := c.classifier.ClassifyAll(ctx, subjects)
	if err != nil {
		return Result{}, errors.Wrap(ctx, err, "classify commits")
	}

	dirty := false
	if c.detectDirty {
		dirty, err = c.gitter.HasUncommittedChanges(ctx)
		if err != nil {
			return Result{}, errors.Wrap(ctx, err, "detect uncommitted changes")
		}
	}

	result := Result{
		Version:  tag.Version.Next(bump),
		Previous: tag.Version,
		Bump:     bump,
		Tag:      tag,
		Release:  request.Release,
		Dirty:    dirty,
	}
	c.logger.Debug(
		"calculated next version",
		zap.String("tag", tag.Name),
		zap.String("previous", result.Previous.String()),
		zap.String("bump", bump.String()),
		zap.String("version", result.String()),
	)
	return result, nil
}
