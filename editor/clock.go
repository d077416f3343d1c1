package editor

import (
	"sync"
	"sync/atomic"
	"time"
)

type (
	// Clock creates the repeating timers used by the gestures that keep
	// moving the view while the pointer is held still.
	Clock interface {
		// Every calls f every d until the returned Timer is stopped. f must be
		// called on the goroutine owning the Timeline, and never after Stop
		// has returned.
		Every(d time.Duration, f func()) Timer
	}

	Timer interface {
		Stop()
	}

	brokerClock struct {
		broker *Broker
	}

	brokerTimer struct {
		stopped  atomic.Bool
		pending  atomic.Bool
		stopOnce sync.Once
		done     chan struct{}
	}
)

// BrokerClock returns a Clock whose ticks are posted as messages to
// broker.ToModel. A tick is only posted when the previous one has been
// processed, so a busy model goroutine does not get flooded.
func BrokerClock(broker *Broker) Clock { return brokerClock{broker: broker} }

func (c brokerClock) Every(d time.Duration, f func()) Timer {
	t := &brokerTimer{done: make(chan struct{})}
	tick := func() {
		t.pending.Store(false)
		if !t.stopped.Load() {
			f()
		}
	}
	go func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if t.pending.CompareAndSwap(false, true) {
					if !TrySend(c.broker.ToModel, MsgToModel{Data: tick}) {
						t.pending.Store(false)
					}
				}
			case <-t.done:
				return
			}
		}
	}()
	return t
}

func (t *brokerTimer) Stop() {
	t.stopped.Store(true)
	t.stopOnce.Do(func() { close(t.done) })
}
