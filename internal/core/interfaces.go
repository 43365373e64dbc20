// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"context"

	"github.com/toeirei/passgen/internal/db"
	"github.com/toeirei/passgen/internal/generator"
)

// Recorder receives a history entry after each successful generation.
// *db.Store implements it.
type Recorder interface {
	Record(ctx context.Context, e db.Entry) error
}

// RandFactory returns a freshly seeded randomness source.
type RandFactory func() (generator.Rand, error)
