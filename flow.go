// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

// Flow composes a series of transformers into a single transformer. Each
// transformer is given the output of the one before it. An empty Flow returns
// every value unchanged.
//
// Flow does not recover from panics in any of its transformers.
type Flow[T any] struct {
	Transformers []Transformer[T]
}

func NewFlow[T any](transformers ...Transformer[T]) *Flow[T] {
	return &Flow[T]{
		Transformers: transformers,
	}
}

func (self *Flow[T]) Transform(value T) T {
	for _, t := range self.Transformers {
		value = t.Transform(value)
	}
	return value
}

var _ Transformer[float64] = &Flow[float64]{}
