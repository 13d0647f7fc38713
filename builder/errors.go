// SPDX-License-Identifier: MIT
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrNegativeOrder indicates a negative target order.
var ErrNegativeOrder = errors.New("builder: negative order")

// ErrGraphNil indicates GrowGraph/GrowTo received a nil graph.
var ErrGraphNil = errors.New("builder: graph is nil")

// ErrOracleNil indicates GrowGraph/GrowTo received a nil square oracle.
var ErrOracleNil = errors.New("builder: square oracle is nil")
