// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classify

import (
	"context"
	stderrors "errors"
	"regexp"

	"github.com/bborbe/errors"
	"go.uber.org/zap"

	"github.com/bborbe/next-version/pkg/semver"
)

// Per-commit classification errors. Callers scanning a commit range treat
// affected commits as BumpIgnore instead of aborting.
var (
	ErrInvalidFormat = stderrors.New("invalid commit format")
	ErrUnknownType   = stderrors.New("unknown commit type")
)

// Subjects look like "type: message" or "type(scope): message".
var subjectRegexp = regexp.MustCompile(`^([a-z]+)(\([a-z]+\))?: `)

// Classifier maps commit subjects to bump severities.
//
//counterfeiter:generate -o ../../mocks/classifier.go --fake-name Classifier . Classifier
type Classifier interface {
	Classify(ctx context.Context, subject string) (semver.Bump, error)
	ClassifyAll(ctx context.Context, subjects []string) (semver.Bump, error)
}

// classifier implements Classifier.
type classifier struct {
	rules  Rules
	logger *zap.Logger
}

// NewClassifier creates a Classifier using the given rules.
func NewClassifier(rules Rules, logger *zap.Logger) Classifier {
	return &classifier{
		rules:  rules,
		logger: logger,
	}
}

// Classify extracts the leading type token from a subject and maps it to
// a bump severity.
func (c *classifier) Classify(ctx context.Context, subject string) (semver.Bump, error) {
	matches := subjectRegexp.FindStringSubmatch(subject)
	if matches == nil {
		return semver.BumpIgnore, errors.Wrapf(ctx, ErrInvalidFormat, "subject '%s'", subject)
	}
	bump, ok := c.rules.Lookup(matches[1])
	if !ok {
		return semver.BumpIgnore, errors.Wrapf(ctx, ErrUnknownType, "type '%s' in subject '%s'", matches[1], subject)
	}
	return bump, nil
}

// ClassifyAll folds all subjects to the maximum severity. An empty range
// yields BumpIgnore. Subjects that fail classification are logged as
// warnings and count as BumpIgnore.
func (c *classifier) ClassifyAll(ctx context.Context, subjects []string) (semver.Bump, error) {
	result := semver.BumpIgnore
	for _, subject := range subjects {
		bump, err := c.Classify(ctx, subject)
		if err != nil {
			c.logger.Warn(
				"classify commit failed, counting as ignore",
				zap.String("subject", subject),
				zap.Error(err),
			)
			continue
		}
		result = result.Max(bump)
	}
	return result, nil
}
