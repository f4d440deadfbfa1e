// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import "math"

// ProgressFromValue reports where value sits between from and to as a linear
// progress value. from maps to 0 and to maps to 1. Values outside of the range
// produce progress below 0 or above 1. An empty range always reports 1.
func ProgressFromValue(from float64, to float64, value float64) float64 {
	r := to - from
	if r == 0 {
		return 1
	}
	return (value - from) / r
}

// ValueFromProgress is the inverse of ProgressFromValue and returns the value
// found at the given progress between from and to.
func ValueFromProgress(from float64, to float64, progress float64) float64 {
	return -progress*from + progress*to + from
}

// StepProgress quantizes progress to one of steps evenly spaced positions
// between 0 and 1, inclusive. Progress is rounded to the nearest position with
// halfway values rounding up. Progress greater than 1 is treated as 1 while
// negative progress is passed through unclamped.
//
// There must be at least two steps. Fewer steps produce meaningless results.
func StepProgress(steps int, progress float64) float64 {
	segment := 1 / float64(steps-1)
	subsegment := 1 / float64(2*(steps-1))
	subsegments := math.Min(progress, 1) / subsegment
	segments := math.Floor((subsegments + 1) / 2)
	return segments * segment
}
