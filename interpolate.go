// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

// Interpolate maps values piecewise across a series of breakpoints. Input
// holds the breakpoints in ascending order and Output holds the value produced
// at each breakpoint. Values between two breakpoints are mapped linearly
// between the matching outputs:
//
//	f(x) = x <= Input[0] ? Output[0] : x >= Input[n] ? Output[n] : lerp(Output[i-1], Output[i], progress(x))
//
// Easing is optional. When present it must hold one transformer per segment,
// or len(Input)-1 entries, and the progress within a segment is passed through
// the segment's easing before the output is computed.
//
// Transform does not check that the breakpoints are well formed. Mismatched or
// empty slices result in an index panic. Use Validate to check a configuration
// ahead of time.
type Interpolate struct {
	Input  []float64
	Output []float64
	Easing []Transformer[float64]
}

func NewInterpolate(input []float64, output []float64, easing ...Transformer[float64]) *Interpolate {
	return &Interpolate{
		Input:  input,
		Output: output,
		Easing: easing,
	}
}

func (self *Interpolate) Transform(value float64) float64 {
	final := len(self.Input) - 1
	if value <= self.Input[0] {
		return self.Output[0]
	}
	if value >= self.Input[final] {
		return self.Output[final]
	}

	// Find the first breakpoint above the value. The segment runs from the
	// breakpoint before it.
	i := 0
	for ; i < len(self.Input); i = i + 1 {
		if self.Input[i] > value || i == final {
			break
		}
	}

	progress := ProgressFromValue(self.Input[i-1], self.Input[i], value)
	if len(self.Easing) > 0 {
		progress = self.Easing[i-1].Transform(progress)
	}
	return ValueFromProgress(self.Output[i-1], self.Output[i], progress)
}

// Validate reports whether the breakpoints can be interpolated. The returned
// error, if not nil, is always an *InvalidInterpolateError.
func (self *Interpolate) Validate() error {
	if len(self.Input) < 2 {
		return newInvalidInterpolateError("input", "must have at least 2 breakpoints, got %d", len(self.Input))
	}
	if len(self.Output) != len(self.Input) {
		return newInvalidInterpolateError("output", "must have %d values to match input, got %d", len(self.Input), len(self.Output))
	}
	for i := 1; i < len(self.Input); i = i + 1 {
		if self.Input[i] < self.Input[i-1] {
			return newInvalidInterpolateError("input", "must be in ascending order: input[%d] = %v < input[%d] = %v", i, self.Input[i], i-1, self.Input[i-1])
		}
	}
	if len(self.Easing) > 0 && len(self.Easing) != len(self.Input)-1 {
		return newInvalidInterpolateError("easing", "must have one entry per segment (%d), got %d", len(self.Input)-1, len(self.Easing))
	}
	for i, e := range self.Easing {
		if e == nil {
			return newInvalidInterpolateError("easing", "easing[%d] is nil", i)
		}
	}
	return nil
}

var _ Transformer[float64] = &Interpolate{}
