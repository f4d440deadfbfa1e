// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import (
	"math"
)

// Normalize maps a value onto the unit range based on the following formula:
//
//	f(x) = x < LOWER ? 0 : x > UPPER ? 1 : ((x - LOWER) / (UPPER - LOWER) )^EXPONENT
//
// The result is a linear interpolation of the value between the upper and
// lower limits, optionally modified by some exponent. An Exponent of 1 is
// equivalent to NewInterpolate([]float64{Lower, Upper}, []float64{0, 1}).
type Normalize struct {
	Upper    float64
	Lower    float64
	Exponent float64
}

func NewNormalize(lower float64, upper float64, exponent float64) *Normalize {
	return &Normalize{
		Upper:    upper,
		Lower:    lower,
		Exponent: exponent,
	}
}

func (self *Normalize) Transform(value float64) float64 {
	if value < self.Lower {
		return 0
	}
	if value > self.Upper {
		return 1
	}
	line := ProgressFromValue(self.Lower, self.Upper, value)
	if self.Exponent != 1 {
		return math.Pow(line, self.Exponent)
	}
	return line
}

// EasingPower raises progress to a fixed exponent. Exponents above 1 ease in
// and exponents between 0 and 1 ease out.
func EasingPower(exponent float64) TransformerFN[float64] {
	return func(progress float64) float64 {
		return math.Pow(progress, exponent)
	}
}

var _ Transformer[float64] = &Normalize{}
