// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

// TransformerFN is an adapter for simple transforming functions. For example:
//
//	TransformerFN[float64](func(value float64) float64 { return value * 2 })
type TransformerFN[T any] func(value T) T

func (self TransformerFN[T]) Transform(value T) T {
	return self(value)
}

var _ Transformer[float64] = TransformerFN[float64](nil)
