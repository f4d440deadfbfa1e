// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import (
	"golang.org/x/exp/constraints"
)

// ClampOver enforces a floor. Values below Min are raised to Min.
type ClampOver[T constraints.Ordered] struct {
	Min T
}

func NewClampOver[T constraints.Ordered](min T) *ClampOver[T] {
	return &ClampOver[T]{Min: min}
}

func (self *ClampOver[T]) Transform(value T) T {
	return max(value, self.Min)
}

// ClampUnder enforces a ceiling. Values above Max are lowered to Max.
type ClampUnder[T constraints.Ordered] struct {
	Max T
}

func NewClampUnder[T constraints.Ordered](max T) *ClampUnder[T] {
	return &ClampUnder[T]{Max: max}
}

func (self *ClampUnder[T]) Transform(value T) T {
	return min(value, self.Max)
}

// NewClamp restricts values to the range [min, max] by applying the floor and
// then the ceiling. If min is greater than max then every value becomes max.
func NewClamp[T constraints.Ordered](min T, max T) *Flow[T] {
	return NewFlow[T](NewClampOver(min), NewClampUnder(max))
}

var _ Transformer[float64] = &ClampOver[float64]{}
var _ Transformer[float64] = &ClampUnder[float64]{}
