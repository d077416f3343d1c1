package editor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vsariola/timeline/editor"
)

func TestAlertsFadeOut(t *testing.T) {
	var a editor.Alerts
	a.AddAlert(editor.Alert{Message: "hello", Duration: time.Second})
	assert.True(t, a.Update(time.Second))
	assert.True(t, a.Update(100*time.Millisecond))
	assert.False(t, a.Update(time.Second))
	assert.Equal(t, 0, a.Len())
}

func TestAlertsReplaceByName(t *testing.T) {
	var a editor.Alerts
	a.AddNamed("x", "first", editor.Info)
	a.Add("other", editor.Info)
	a.AddNamed("x", "second", editor.Warning)
	var msgs []string
	for _, al := range a.Iterate {
		msgs = append(msgs, al.Message)
	}
	assert.Equal(t, []string{"second", "other"}, msgs)
}

func TestProcessMsg(t *testing.T) {
	tl, _, _ := newTimeline(t)
	called := false
	tl.ProcessMsg(editor.MsgToModel{Data: func() { called = true }})
	tl.ProcessMsg(editor.MsgToModel{Data: editor.Alert{Message: "hi", Duration: time.Second}})
	tl.ProcessMsg(editor.MsgToModel{})
	tl.ProcessMsg(editor.MsgToModel{Data: 42})
	assert.True(t, called)
	assert.Equal(t, 2, tl.Alerts().Len())
}
