// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import (
	"context"

	"golang.org/x/exp/constraints"
)

// Transformer maps a value to another value of the same type. Transformers are
// the basic composable unit of this package. Implementations hold only the
// parameters they were constructed with and must not mutate them so that a
// Transformer is safe to call from any number of goroutines.
type Transformer[T any] interface {
	Transform(value T) T
}

// Formatter renders a value as a string. The primary use case is attaching a
// unit to the output of a Transformer.
type Formatter[T any] interface {
	Format(value T) string
}

// Number covers all built-in integer and floating point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signal represents a named source of values that change over time. The
// general expectation is that a Signal reports the raw measurement and that
// any scaling or shaping is done by wrapping it in a SignalMapped.
type Signal interface {
	// Name of the signal or metric being tracked.
	Name(ctx context.Context) string
	// Value is the current reading of the signal.
	Value(ctx context.Context) float64
}

// Appender is implemented by signals that are fed from the outside, such as
// SignalWindow.
type Appender interface {
	Append(ctx context.Context, value float64)
}
