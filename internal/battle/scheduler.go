package battle

import (
	"time"
)

// Scheduler runs a continuation after a delay. It is how the enemy's reply is
// deferred without putting timers inside the state machine.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) (cancel func())
}

// Immediate runs every continuation synchronously, ignoring the delay
type Immediate struct{}

// Schedule runs fn before returning
func (Immediate) Schedule(_ time.Duration, fn func()) func() {
	fn()
	return func() {}
}

// Timer runs continuations on their own goroutine once the delay elapses
type Timer struct{}

// Schedule arms a time.AfterFunc; cancel stops it if it has not fired
func (Timer) Schedule(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() {
		t.Stop()
	}
}

var (
	_ Scheduler = Immediate{}
	_ Scheduler = Timer{}
)
