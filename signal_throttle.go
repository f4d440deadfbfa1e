// SPDX-FileCopyrightText: © 2024 Kevin Conway
// SPDX-FileCopyrightText: © 2017 Atlassian Pty Ltd
// SPDX-License-Identifier: Apache-2.0

package rangemap

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// SignalThrottle is a wrapper for other Signal implementations that limits
// the number of times the underlying value is calculated within a period of
// time. This exists to help amortize the cost of expensive measurements, such
// as SignalCPU, when it is safe or desireable to do so.
type SignalThrottle struct {
	Signal
	duration time.Duration
	lock     *sync.Mutex
	cache    *cache.Cache
}

func NewSignalThrottle(wrapped Signal, duration time.Duration) *SignalThrottle {
	return &SignalThrottle{
		Signal:   wrapped,
		duration: duration,
		lock:     &sync.Mutex{},
		cache:    cache.New(duration, 0),
	}
}

// Value returns from an internal cache until a duration has expired at which
// point it calls the wrapped Signal to get a new value. A non-positive
// duration disables the cache.
func (self *SignalThrottle) Value(ctx context.Context) float64 {
	if self.duration <= 0 {
		return self.Signal.Value(ctx)
	}
	self.lock.Lock()
	defer self.lock.Unlock()
	if v, ok := self.cache.Get(throttleCacheKey); ok {
		return v.(float64)
	}
	v := self.Signal.Value(ctx)
	self.cache.Set(throttleCacheKey, v, self.duration)
	return v
}

// Append forwards to the wrapped signal if it accepts values.
func (self *SignalThrottle) Append(ctx context.Context, value float64) {
	if a, ok := self.Signal.(Appender); ok {
		a.Append(ctx, value)
	}
}

const throttleCacheKey string = "value"

var _ Signal = &SignalThrottle{}
