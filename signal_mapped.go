// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import (
	"context"
)

// SignalMapped passes the value of a Signal through a Transformer. The result
// is itself a Signal so mapped signals may be layered.
type SignalMapped struct {
	Signal
	Transformer Transformer[float64]
}

// NewSignalMapped composes the given transformers, in order, using Flow. No
// transformers results in a signal that reports the underlying value without
// modifying it.
func NewSignalMapped(signal Signal, transformers ...Transformer[float64]) *SignalMapped {
	return &SignalMapped{
		Signal:      signal,
		Transformer: NewFlow(transformers...),
	}
}

// NewSignalInterpolate maps a signal across breakpoints using Interpolate.
func NewSignalInterpolate(signal Signal, input []float64, output []float64, easing ...Transformer[float64]) *SignalMapped {
	return &SignalMapped{
		Signal:      signal,
		Transformer: NewInterpolate(input, output, easing...),
	}
}

func (self *SignalMapped) Value(ctx context.Context) float64 {
	return self.Transformer.Transform(self.Signal.Value(ctx))
}

// Raw returns the value of the underlying signal without transformation.
func (self *SignalMapped) Raw(ctx context.Context) float64 {
	return self.Signal.Value(ctx)
}

// Append forwards to the underlying signal if it accepts values and otherwise
// drops the value.
func (self *SignalMapped) Append(ctx context.Context, value float64) {
	if a, ok := self.Signal.(Appender); ok {
		a.Append(ctx, value)
	}
}

var _ Signal = &SignalMapped{}
var _ Appender = &SignalMapped{}
