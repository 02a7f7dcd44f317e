// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"

	"github.com/bborbe/collection"
	"github.com/bborbe/errors"
	"github.com/bborbe/validation"
)

// Engine defines how repository history is read.
const (
	EngineExec  Engine = "exec"
	EngineGogit Engine = "gogit"
)

// AvailableEngines contains all valid engine values.
var AvailableEngines = Engines{EngineExec, EngineGogit}

// Engine is a string-based enum for history engines.
type Engine string

func (e Engine) String() string {
	return string(e)
}

func (e Engine) Validate(ctx context.Context) error {
	if !AvailableEngines.Contains(e) {
		return errors.Wrapf(ctx, validation.Error, "unknown engine '%s'", e)
	}
	return nil
}

func (e Engine) Ptr() *Engine {
	return &e
}

// Engines is a collection of Engine values.
type Engines []Engine

func (e Engines) Contains(engine Engine) bool {
	return collection.Contains(e, engine)
}
