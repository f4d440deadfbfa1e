// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import (
	"math"
	"strconv"
)

// AppendUnit renders a number followed immediately by a unit. For example:
//
//	NewAppendUnit[int]("px").Format(20) // "20px"
//
// Numbers are written in their shortest decimal form. Floating point values
// switch to exponent notation only below 1e-6 or at and above 1e21.
type AppendUnit[T Number] struct {
	Unit string
}

func NewAppendUnit[T Number](unit string) *AppendUnit[T] {
	return &AppendUnit[T]{Unit: unit}
}

func (self *AppendUnit[T]) Format(value T) string {
	return formatNumber(value) + self.Unit
}

func formatNumber[T Number](value T) string {
	half := 0.5
	if T(half) == 0 {
		if value < 0 {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatUint(uint64(value), 10)
	}
	bits := 64
	if _, ok := any(value).(float32); ok {
		bits = 32
	}
	return formatFloat(float64(value), bits)
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	b := strconv.AppendFloat(nil, f, format, -1, bits)
	if format == 'e' {
		// e-07 becomes e-7
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return string(b)
}

var _ Formatter[float64] = &AppendUnit[float64]{}
