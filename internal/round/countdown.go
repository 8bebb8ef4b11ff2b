package round

import (
	"sync"
	"time"
)

// Countdown drives Controller.Tick from a real clock. Each tick carries the
// word sequence it was started for, so a tick that outlives its word can be
// recognized and dropped. Stop is synchronous: once it returns no further
// tick is delivered.
type Countdown struct {
	interval time.Duration
	out      chan int

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewCountdown creates a stopped countdown that ticks every interval.
func NewCountdown(interval time.Duration) *Countdown {
	return &Countdown{interval: interval, out: make(chan int)}
}

// C delivers the word sequence number on every tick.
func (c *Countdown) C() <-chan int { return c.out }

// Start (re)starts ticking for word seq, stopping any previous run first.
func (c *Countdown) Start(seq int) {
	c.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	stop := make(chan struct{})
	done := make(chan struct{})
	c.stop, c.done = stop, done

	go func() {
		defer close(done)
		t := time.NewTicker(c.interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				select {
				case c.out <- seq:
				case <-stop:
					return
				}
			}
		}
	}()
}

// Stop halts ticking and waits for the ticking goroutine to exit.
func (c *Countdown) Stop() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.stop, c.done = nil, nil
	c.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}
