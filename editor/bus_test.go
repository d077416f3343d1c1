package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vsariola/timeline/editor"
)

func TestBusPanickingListener(t *testing.T) {
	var b editor.Bus
	var got []int
	b.On(editor.EventJump, func(editor.Event) { got = append(got, 1) })
	b.On(editor.EventJump, func(editor.Event) { panic("boom") })
	b.On(editor.EventJump, func(editor.Event) { got = append(got, 3) })
	assert.NotPanics(t, func() { b.Emit(editor.Event{Name: editor.EventJump}) })
	assert.Equal(t, []int{1, 3}, got)
}

func TestBusOff(t *testing.T) {
	var b editor.Bus
	n := 0
	off := b.On(editor.EventTimeUpdate, func(editor.Event) { n++ })
	b.Emit(editor.Event{Name: editor.EventTimeUpdate})
	b.Emit(editor.Event{Name: editor.EventJump})
	off()
	off()
	b.Emit(editor.Event{Name: editor.EventTimeUpdate})
	assert.Equal(t, 1, n)
}

func TestBusUnsubscribeWhileEmitting(t *testing.T) {
	var b editor.Bus
	var calls []string
	var offB func()
	b.On(editor.EventJump, func(editor.Event) { calls = append(calls, "a"); offB() })
	offB = b.On(editor.EventJump, func(editor.Event) { calls = append(calls, "b") })
	b.Emit(editor.Event{Name: editor.EventJump})
	b.Emit(editor.Event{Name: editor.EventJump})
	assert.Equal(t, []string{"a", "b", "a"}, calls)
}
