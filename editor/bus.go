package editor

import (
	"log"
	"slices"
)

type (
	// EventName identifies the events emitted by the Timeline.
	EventName string

	// Event is passed to the listeners. Time is set for EventTimeUpdate and
	// EventJump; Track is set for EventAddTrack and EventRemoveTrack.
	Event struct {
		Name  EventName
		Time  float64
		Track TextTrack
	}

	// Bus is a synchronous publish/subscribe hub. Listeners are called in the
	// order they subscribed, on the goroutine that emits the event.
	Bus struct {
		listeners map[EventName][]*listener
	}

	listener struct {
		fn func(Event)
	}
)

const (
	EventAddTrack       EventName = "addtrack"
	EventRemoveTrack    EventName = "removetrack"
	EventTimeUpdate     EventName = "timeupdate"
	EventJump           EventName = "jump"
	EventRepeatEnabled  EventName = "abRepeatEnabled"
	EventRepeatDisabled EventName = "abRepeatDisabled"
)

// On subscribes fn to the events with the given name. Calling the returned
// function unsubscribes; calling it more than once is harmless.
func (b *Bus) On(name EventName, fn func(Event)) (off func()) {
	if b.listeners == nil {
		b.listeners = map[EventName][]*listener{}
	}
	l := &listener{fn: fn}
	b.listeners[name] = append(b.listeners[name], l)
	return func() {
		ls := b.listeners[name]
		if i := slices.Index(ls, l); i >= 0 {
			b.listeners[name] = slices.Delete(slices.Clone(ls), i, i+1)
		}
	}
}

// Emit calls the listeners of e.Name. A panicking listener is logged and
// does not prevent the rest of the listeners from being called.
func (b *Bus) Emit(e Event) {
	// the slice is never modified in place, so listeners can (un)subscribe
	// while we iterate
	for _, l := range b.listeners[e.Name] {
		b.call(l, e)
	}
}

func (b *Bus) call(l *listener, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("editor: %s listener panicked: %v", e.Name, r)
		}
	}()
	l.fn(e)
}

// On subscribes fn to the events of the timeline with the given name.
func (t *Timeline) On(name EventName, fn func(Event)) (off func()) {
	return t.bus.On(name, fn)
}

func (t *Timeline) emit(name EventName, time float64, track TextTrack) {
	t.bus.Emit(Event{Name: name, Time: time, Track: track})
}
