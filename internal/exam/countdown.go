package exam

import (
	"sync"
	"time"
)

// Countdown is a cancellable one-second ticker owned by a running exam.
// It is acquired on entering RUNNING and must be released on every exit
// path; Stop is safe to call from any of them, any number of times.
type Countdown struct {
	C    <-chan time.Time
	stop chan struct{}
	once sync.Once
	tick *time.Ticker
}

// NewCountdown starts a ticker at the given interval. interval <= 0
// falls back to one second.
func NewCountdown(interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	return &Countdown{
		C:    t.C,
		stop: make(chan struct{}),
		tick: t,
	}
}

// Stop halts the ticker and closes Done. Idempotent.
func (c *Countdown) Stop() {
	c.once.Do(func() {
		c.tick.Stop()
		close(c.stop)
	})
}

// Done is closed when the countdown has been stopped.
func (c *Countdown) Done() <-chan struct{} {
	return c.stop
}
