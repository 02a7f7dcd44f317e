// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging exposes a simple zap logger, with log levels.
package logging

import (
	"context"

	"github.com/bborbe/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelInfo sets the log level to info
	LogLevelInfo = "info"

	// LogLevelDebug sets the log level to debug
	LogLevelDebug = "debug"

	// LogLevelNone disables logging
	LogLevelNone = "none"
)

// GetLogger returns a zap logger with the specified level.
func GetLogger(ctx context.Context, logLevel string) (*zap.Logger, error) {
	if logLevel == LogLevelNone {
		return zap.NewNop(), nil
	}
	zapConfig := zap.NewProductionConfig()
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, errors.Wrapf(ctx, err, "parse log level '%s'", logLevel)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, errors.Wrap(ctx, err, "build logger")
	}
	return logger, nil
}

// MustGetLogger returns a zap logger with the specified level or panics.
func MustGetLogger(ctx context.Context, logLevel string) *zap.Logger {
	logger, err := GetLogger(ctx, logLevel)
	if err != nil {
		panic(err)
	}
	return logger
}
