// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import (
	"context"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/routineman"
)

type OptionSampler func(*Sampler)

func OptionSamplerInterval(d time.Duration) OptionSampler {
	return func(s *Sampler) {
		s.interval = d
	}
}

func OptionSamplerLogger(logger l.Wrapper) OptionSampler {
	return func(s *Sampler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Sampler polls a Signal on an interval and appends each reading to an
// Appender. The most common use is feeding a SignalWindow from a signal that
// is only a point in time measurement, such as SignalCPU:
//
//	window := NewSignalWindow(OptionWindowBucketDuration(time.Second))
//	sampler := NewSampler(NewSignalCPU(), window)
//	sampler.Start()
//	defer sampler.Wait()
//	defer sampler.TriggerStop()
//
// The default interval is 100ms.
type Sampler struct {
	source     Signal
	sink       Appender
	interval   time.Duration
	logger     l.Wrapper
	routineMan routineman.RoutineMan
}

func NewSampler(source Signal, sink Appender, options ...OptionSampler) *Sampler {
	s := &Sampler{
		source:   source,
		sink:     sink,
		interval: defaultSamplerInterval,
		logger:   l.NewNopLoggerWrapper(),
	}
	for _, option := range options {
		option(s)
	}
	if s.interval <= 0 {
		s.interval = defaultSamplerInterval
	}
	s.logger = s.logger.WithFields(l.StringField(l.ClsKey, "Sampler"))
	s.routineMan = routineman.NewRoutineMan(context.Background(), s.logger)
	return s
}

// Start begins sampling in the background. Start must be called at most once.
func (self *Sampler) Start() {
	self.routineMan.StartRoutine(self.sampleRoutine, "sampleRoutine")
}

// TriggerStop signals the background routine to exit without waiting.
func (self *Sampler) TriggerStop() {
	self.routineMan.TriggerStop()
}

// Wait blocks until the background routine exits.
func (self *Sampler) Wait() {
	self.routineMan.Wait()
}

func (self *Sampler) sampleRoutine(ctx context.Context, _ func() bool) {
	name := self.source.Name(ctx)
	self.logger.WithFields(l.StringField("signal", name)).Debug("enter")
	defer self.logger.WithFields(l.StringField("signal", name)).Debug("leave")

	ticker := time.NewTicker(self.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			self.sink.Append(ctx, self.source.Value(ctx))
		}
	}
}

const defaultSamplerInterval = 100 * time.Millisecond
