// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source so timer-driven state
// (the copy acknowledgment window) can be tested without sleeping.
//
// Production code uses Real(); tests use Fake() and call Advance to fire
// pending timers deterministically.
package clock

import "time"

// Clock abstracts the time operations used by tokenpage.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for d, then calls f. The returned Timer can cancel
	// the pending call with Stop.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a cancellable handle to a scheduled callback.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the Timer from firing. Returns true if the call stopped
// the timer, false if it had already fired or been stopped.
func (t *Timer) Stop() bool { return t.stopFunc() }

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) *Timer {
	timer := time.AfterFunc(d, f)
	return &Timer{stopFunc: timer.Stop}
}
