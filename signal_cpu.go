// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import (
	"context"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/shirou/gopsutil/cpu"
)

type OptionCPU func(*SignalCPU)

// OptionCPUInterval sets how long each measurement observes the CPU. The
// default of 0 compares against the previous call which makes Value
// non-blocking.
func OptionCPUInterval(d time.Duration) OptionCPU {
	return func(sc *SignalCPU) {
		sc.interval = d
	}
}

func OptionCPUName(name string) OptionCPU {
	return func(sc *SignalCPU) {
		sc.name = name
	}
}

func OptionCPULogger(logger l.Wrapper) OptionCPU {
	return func(sc *SignalCPU) {
		if logger != nil {
			sc.logger = logger
		}
	}
}

// SignalCPU reports the utilization of all host CPUs as a value between 0
// and 1. Measurement failures are logged and reported as 0.
type SignalCPU struct {
	name     string
	interval time.Duration
	logger   l.Wrapper
	percent  func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)
}

func NewSignalCPU(options ...OptionCPU) *SignalCPU {
	s := &SignalCPU{
		name:     defaultNameCPU,
		interval: 0,
		logger:   l.NewNopLoggerWrapper(),
		percent:  cpu.PercentWithContext,
	}
	for _, option := range options {
		option(s)
	}
	s.logger = s.logger.WithFields(l.StringField(l.ClsKey, "SignalCPU"))
	return s
}

func (self *SignalCPU) Name(context.Context) string {
	return self.name
}

func (self *SignalCPU) Value(ctx context.Context) float64 {
	percents, err := self.percent(ctx, self.interval, false)
	if err != nil {
		self.logger.WithFields(l.ErrorField(err), l.StringField("name", self.name)).Error("cpu percent unavailable")
		return 0
	}
	if len(percents) == 0 {
		return 0
	}
	return percents[0] / 100
}

const defaultNameCPU string = "CPU"

var _ Signal = &SignalCPU{}
