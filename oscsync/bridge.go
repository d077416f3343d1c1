// Package oscsync connects a Timeline to other programs over OSC: the
// position of the time marker is published as it changes, and remote
// programs can seek, pick the tool mode and set or clear the AB repeat.
package oscsync

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"

	"github.com/hypebeast/go-osc/osc"
	"github.com/vsariola/timeline/editor"
)

type (
	// Sender sends OSC packets; *osc.Client is one.
	Sender interface {
		Send(packet osc.Packet) error
	}

	// Bridge publishes the events of a Timeline and handles the incoming
	// control messages. The incoming messages are applied on the goroutine
	// owning the Timeline, via the broker.
	Bridge struct {
		tl         *editor.Timeline
		sender     Sender
		dispatcher *osc.StandardDispatcher
		offs       []func()
	}
)

const (
	AddrTime        = "/timeline/time"
	AddrJump        = "/timeline/jump"
	AddrRepeat      = "/timeline/repeat"
	AddrSeek        = "/timeline/seek"
	AddrTool        = "/timeline/tool"
	AddrSetRepeat   = "/timeline/setRepeat"
	AddrClearRepeat = "/timeline/clearRepeat"
)

var ErrBadArguments = errors.New("bad OSC arguments")

// NewClient returns a Sender sending to host:port over UDP.
func NewClient(host string, port int) Sender { return osc.NewClient(host, port) }

// New creates a bridge. sender may be nil, in which case nothing is
// published.
func New(tl *editor.Timeline, sender Sender) *Bridge {
	b := &Bridge{tl: tl, sender: sender, dispatcher: osc.NewStandardDispatcher()}
	b.handle(AddrSeek, func(msg *osc.Message) error {
		t, err := floatArg(msg, 0)
		if err != nil {
			return err
		}
		tl.Post(func() { tl.SetCurrentTime(t) })
		return nil
	})
	b.handle(AddrTool, func(msg *osc.Message) error {
		s, err := stringArg(msg, 0)
		if err != nil {
			return err
		}
		mode, err := editor.ParseToolMode(s)
		if err != nil {
			return err
		}
		tl.Post(func() { tl.SetTool(mode) })
		return nil
	})
	b.handle(AddrSetRepeat, func(msg *osc.Message) error {
		a, err := floatArg(msg, 0)
		if err != nil {
			return err
		}
		c, err := floatArg(msg, 1)
		if err != nil {
			return err
		}
		tl.Post(func() { tl.SetRepeat(a, c) })
		return nil
	})
	b.handle(AddrClearRepeat, func(msg *osc.Message) error {
		tl.Post(tl.ClearRepeat)
		return nil
	})
	if sender != nil {
		b.offs = append(b.offs,
			tl.On(editor.EventTimeUpdate, func(e editor.Event) { b.send(AddrTime, float32(e.Time)) }),
			tl.On(editor.EventJump, func(e editor.Event) { b.send(AddrJump, float32(e.Time)) }),
			tl.On(editor.EventRepeatEnabled, func(editor.Event) { b.send(AddrRepeat, int32(1)) }),
			tl.On(editor.EventRepeatDisabled, func(editor.Event) { b.send(AddrRepeat, int32(0)) }),
		)
	}
	return b
}

// Dispatcher returns the dispatcher handling the incoming messages.
func (b *Bridge) Dispatcher() *osc.StandardDispatcher { return b.dispatcher }

// Serve listens for OSC messages on the UDP address until ctx is done.
func (b *Bridge) Serve(ctx context.Context, addr string) error {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return fmt.Errorf("oscsync: %w", err)
	}
	go func() {
		<-ctx.Done()
		conn.Close()
	}()
	server := &osc.Server{Addr: addr, Dispatcher: b.dispatcher}
	err = server.Serve(conn)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Close stops publishing the events of the timeline. It must be called on
// the goroutine owning the Timeline.
func (b *Bridge) Close() {
	for _, off := range b.offs {
		off()
	}
	b.offs = nil
}

func (b *Bridge) handle(addr string, f func(msg *osc.Message) error) {
	err := b.dispatcher.AddMsgHandler(addr, func(msg *osc.Message) {
		if err := f(msg); err != nil {
			log.Printf("oscsync: %s: %v", addr, err)
		}
	})
	if err != nil {
		panic(err)
	}
}

func (b *Bridge) send(addr string, args ...any) {
	if err := b.sender.Send(osc.NewMessage(addr, args...)); err != nil {
		log.Printf("oscsync: sending %s: %v", addr, err)
	}
}

func floatArg(msg *osc.Message, i int) (float64, error) {
	if i >= len(msg.Arguments) {
		return 0, fmt.Errorf("%w: missing argument %d", ErrBadArguments, i)
	}
	switch v := msg.Arguments[i].(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%w: argument %d is %T, want a number", ErrBadArguments, i, msg.Arguments[i])
}

func stringArg(msg *osc.Message, i int) (string, error) {
	if i >= len(msg.Arguments) {
		return "", fmt.Errorf("%w: missing argument %d", ErrBadArguments, i)
	}
	s, ok := msg.Arguments[i].(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %d is %T, want a string", ErrBadArguments, i, msg.Arguments[i])
	}
	return s, nil
}
