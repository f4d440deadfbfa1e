// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import (
	"context"
	"time"

	"github.com/kevinconway/rolling/v3"
)

type OptionWindow func(*SignalWindow)

// OptionWindowReduction sets the reduction method used when calculating the
// value of the window of data. The default value is an average function.
func OptionWindowReduction(r WindowReduction) OptionWindow {
	return func(sw *SignalWindow) {
		sw.reduction = r
	}
}

func OptionWindowBuckets(count int) OptionWindow {
	return func(sw *SignalWindow) {
		sw.buckets = count
	}
}

func OptionWindowBucketDuration(d time.Duration) OptionWindow {
	return func(sw *SignalWindow) {
		sw.bucketDuration = d
	}
}

func OptionWindowBucketSizeHint(size int) OptionWindow {
	return func(sw *SignalWindow) {
		sw.bucketSizeHint = size
	}
}

// OptionWindowMinimumPoints causes the window to report 0 until it holds at
// least the given number of samples.
func OptionWindowMinimumPoints(min int) OptionWindow {
	return func(sw *SignalWindow) {
		sw.minimumPoints = min
	}
}

func OptionWindowName(name string) OptionWindow {
	return func(sw *SignalWindow) {
		sw.name = name
	}
}

// SignalWindow collects samples over a window of time and reports a single
// value that summarizes them. Combined with a SignalMapped this smooths out a
// noisy measurement before it is shaped by a Transformer.
//
// By default, the value is calculated by taking an average of samples within
// the window. You can provide an alternative calculation using the
// OptionWindowReduction option.
//
// The window is a rolling window. The default size of the window is 1s with
// each bucket representing 10ms. Both of these values can be modified using
// constructor options.
type SignalWindow struct {
	name           string
	window         sampleWindow
	buckets        int
	bucketDuration time.Duration
	bucketSizeHint int
	minimumPoints  int
	reduction      WindowReduction
}

func NewSignalWindow(options ...OptionWindow) *SignalWindow {
	s := &SignalWindow{
		name:           defaultNameWindow,
		buckets:        100,
		bucketDuration: 10 * time.Millisecond,
		bucketSizeHint: 0,
		minimumPoints:  0,
		reduction:      rolling.Avg[float64],
	}
	for _, option := range options {
		option(s)
	}
	if s.minimumPoints > 0 {
		s.reduction = rolling.MinimumPoints[float64](s.minimumPoints, s.reduction)
	}
	w := rolling.NewPreallocatedWindow[float64](s.buckets, s.bucketSizeHint)
	s.window = rolling.NewTimePolicyConcurrent[float64](w, s.bucketDuration)
	return s
}

func (self *SignalWindow) Name(context.Context) string {
	return self.name
}

// Append adds a sample to the underlying window.
func (self *SignalWindow) Append(ctx context.Context, value float64) {
	self.window.Append(ctx, value)
}

func (self *SignalWindow) Value(ctx context.Context) float64 {
	return self.window.Reduce(ctx, self.reduction)
}

type WindowReduction = rolling.Reduction[float64]

type sampleWindow interface {
	Append(ctx context.Context, v float64)
	Reduce(ctx context.Context, r rolling.Reduction[float64]) float64
}

const defaultNameWindow string = "WINDOW"

var _ Signal = &SignalWindow{}
var _ Appender = &SignalWindow{}
