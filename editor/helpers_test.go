package editor_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vsariola/timeline"
	"github.com/vsariola/timeline/editor"
	"github.com/vsariola/timeline/editor/raster"
)

// With the default parameters, the view [0, 60] spans 600 pixels, i.e. one
// pixel is 0.1 seconds. The ruler is y < 35, the i:th track band is
// [35+60i, 85+60i] and the slider is the bottom 25 pixels.
const testWidth = 600

type (
	fakeClock struct {
		timers []*fakeTimer
	}

	fakeTimer struct {
		d       time.Duration
		f       func()
		stopped bool
	}

	eventLog struct {
		events []editor.Event
	}
)

func (c *fakeClock) Every(d time.Duration, f func()) editor.Timer {
	t := &fakeTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() { t.stopped = true }

// Tick fires every running timer n times.
func (c *fakeClock) Tick(n int) {
	for range n {
		for _, t := range slices.Clone(c.timers) {
			if !t.stopped {
				t.f()
			}
		}
	}
}

func (c *fakeClock) Running() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func record(tl *editor.Timeline, names ...editor.EventName) *eventLog {
	l := &eventLog{}
	for _, n := range names {
		tl.On(n, func(e editor.Event) { l.events = append(l.events, e) })
	}
	return l
}

func (l *eventLog) names() []editor.EventName {
	var ret []editor.EventName
	for _, e := range l.events {
		ret = append(ret, e.Name)
	}
	return ret
}

func (l *eventLog) reset() { l.events = nil }

func newTimeline(t *testing.T) (*editor.Timeline, *raster.Mount, *fakeClock) {
	t.Helper()
	return newTimelineWith(t, editor.Params{})
}

func newTimelineWith(t *testing.T, p editor.Params) (*editor.Timeline, *raster.Mount, *fakeClock) {
	t.Helper()
	m := raster.NewMount(testWidth)
	clock := &fakeClock{}
	if p.Clock == nil {
		p.Clock = clock
	}
	tl, err := editor.New(m, p)
	require.NoError(t, err)
	return tl, m, clock
}

func addTrack(t *testing.T, tl *editor.Timeline, id string, cues ...timeline.Cue) *editor.CueTrack {
	t.Helper()
	require.NoError(t, tl.AddTrackData(timeline.TrackData{Label: id, Cues: cues}, false))
	track, ok := tl.Track(id)
	require.True(t, ok)
	return track.(*editor.CueTrack)
}

func ids(tracks []editor.TextTrack) []string {
	var ret []string
	for _, tr := range tracks {
		ret = append(ret, tr.ID())
	}
	return ret
}

func bandY(i int) float64 { return 35 + 60*float64(i) + 25 }

func pt(x, y float64) editor.Point { return editor.Point{X: x, Y: y} }

// constant returns n samples of value v.
func constant(n int, v float32) []float32 {
	ret := make([]float32, n)
	for i := range ret {
		ret[i] = v
	}
	return ret
}
