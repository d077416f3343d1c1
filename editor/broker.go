package editor

import (
	"time"
)

type (
	// Broker is the message broker of the editor. Goroutines other than the
	// one owning the Timeline (timers, asset loaders, track loaders, network
	// bridges) never touch the Timeline directly; instead they send messages
	// to ToModel, which the owner drains and feeds to Timeline.ProcessMsg.
	//
	// For closing the GUI goroutine, the broker has two channels: CloseGUI
	// and FinishedGUI. CloseGUI has a capacity of 1, so you can always send
	// an empty message (struct{}{}) to it without blocking. If the channel is
	// already full, someone else has already requested the closure, so
	// dropping the message is fine. FinishedGUI is closed by the GUI when it
	// is done; wait on it with a timeout to avoid deadlocks:
	//    select {
	//      case <-FinishedGUI:
	//      case <-time.After(3 * time.Second):
	//    }
	Broker struct {
		ToModel chan MsgToModel

		CloseGUI    chan struct{}
		FinishedGUI chan struct{}
	}

	// MsgToModel is a message sent to the model. Data is either a func(),
	// which is executed on the model goroutine, or an Alert, which is added
	// to the alerts of the model.
	MsgToModel struct {
		Data any
	}
)

func NewBroker() *Broker {
	return &Broker{
		ToModel:     make(chan MsgToModel, 1024),
		CloseGUI:    make(chan struct{}, 1),
		FinishedGUI: make(chan struct{}),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Return true if the value was sent, false
// otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}

// TimeoutReceive is a helper function to block until a value is received from a
// channel, or timing out after t. ok will be false if the timeout occurred or
// if the channel is closed.
func TimeoutReceive[T any](c <-chan T, t time.Duration) (v T, ok bool) {
	select {
	case v, ok = <-c:
		return v, ok
	case <-time.After(t):
		return v, false
	}
}

// ProcessMsg handles a message received from the broker. It must be called
// on the goroutine owning the Timeline.
func (t *Timeline) ProcessMsg(msg MsgToModel) {
	switch d := msg.Data.(type) {
	case func():
		d()
	case Alert:
		t.alerts.AddAlert(d)
	case nil:
	default:
		t.alerts.Add("Unknown message received", Warning)
	}
}

// Post schedules f to be run on the goroutine owning the Timeline. It blocks
// if the message queue is full.
func (t *Timeline) Post(f func()) {
	t.broker.ToModel <- MsgToModel{Data: f}
}

// Drain processes all messages currently queued in the broker without
// blocking, returning the number of messages processed. Headless hosts
// (tests, command line tools) call it instead of running an event loop.
func (t *Timeline) Drain() int {
	n := 0
	for {
		select {
		case msg := <-t.broker.ToModel:
			t.ProcessMsg(msg)
			n++
		default:
			return n
		}
	}
}
