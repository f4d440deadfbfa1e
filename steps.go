// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

// Steps converts a value to its progress between Min and Max and then
// quantizes that progress into Count evenly spaced positions using
// StepProgress. The output is a progress value, not a value from the original
// range. Values outside of the range are not clamped beyond what StepProgress
// does.
type Steps struct {
	Count int
	Min   float64
	Max   float64
}

func NewSteps(count int, min float64, max float64) *Steps {
	return &Steps{
		Count: count,
		Min:   min,
		Max:   max,
	}
}

func (self *Steps) Transform(value float64) float64 {
	progress := ProgressFromValue(self.Min, self.Max, value)
	return StepProgress(self.Count, progress)
}

var _ Transformer[float64] = &Steps{}
