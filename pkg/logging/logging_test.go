// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"

	"github.com/bborbe/next-version/pkg/logging"
)

var _ = Describe("GetLogger", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("returns a nop logger for level none", func() {
		logger, err := logging.GetLogger(ctx, logging.LogLevelNone)
		Expect(err).NotTo(HaveOccurred())
		Expect(logger).NotTo(BeNil())
		Expect(logger.Core().Enabled(zapcore.ErrorLevel)).To(BeFalse())
	})

	It("returns a debug logger for level debug", func() {
		logger, err := logging.GetLogger(ctx, logging.LogLevelDebug)
		Expect(err).NotTo(HaveOccurred())
		Expect(logger.Core().Enabled(zapcore.DebugLevel)).To(BeTrue())
	})

	It("returns an info logger for level info", func() {
		logger, err := logging.GetLogger(ctx, logging.LogLevelInfo)
		Expect(err).NotTo(HaveOccurred())
		Expect(logger.Core().Enabled(zapcore.DebugLevel)).To(BeFalse())
		Expect(logger.Core().Enabled(zapcore.InfoLevel)).To(BeTrue())
	})

	It("returns an error for unknown level", func() {
		_, err := logging.GetLogger(ctx, "loud")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("parse log level"))
	})
})

var _ = Describe("MustGetLogger", func() {
	It("panics for unknown level", func() {
		Expect(func() {
			logging.MustGetLogger(context.Background(), "loud")
		}).To(Panic())
	})

	It("returns a logger for valid level", func() {
		logger := logging.MustGetLogger(context.Background(), logging.LogLevelInfo)
		Expect(logger).NotTo(BeNil())
	})
})
