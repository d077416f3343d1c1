package editor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vsariola/timeline"
	"github.com/vsariola/timeline/editor"
)

func TestSetCurrentTime(t *testing.T) {
	tl, _, _ := newTimeline(t)
	a := addTrack(t, tl, "a", timeline.Cue{ID: "x", Start: 1, End: 3})
	events := record(tl, editor.EventTimeUpdate, editor.EventJump)
	tl.SetCurrentTime(2)
	assert.Equal(t, 2.0, a.Cues().CurrentTime())
	assert.Len(t, a.Cues().Active(), 1)
	assert.Equal(t, "0:00:02.000", tl.TimeCode())
	tl.SetCurrentTime(2) // no change, no event
	assert.Len(t, events.events, 1)
	assert.Equal(t, editor.EventTimeUpdate, events.events[0].Name)
}

func TestSetCurrentTimeClamps(t *testing.T) {
	tl, _, _ := newTimeline(t)
	tl.SetCurrentTime(-5)
	assert.Equal(t, 0.0, tl.CurrentTime())
	tl.SetCurrentTime(5000)
	assert.Equal(t, 1800.0, tl.CurrentTime())
	tl.SetCurrentTime(math.NaN())
	assert.Equal(t, 1800.0, tl.CurrentTime())
}

func TestViewFollowsMarker(t *testing.T) {
	tl, _, _ := newTimeline(t)
	tl.SetCurrentTime(100)
	assert.Equal(t, 100.0, tl.View().Start())
	assert.Equal(t, 160.0, tl.View().End())
	tl.SetCurrentTime(130) // inside, view stays
	assert.Equal(t, 100.0, tl.View().Start())
	tl.SetCurrentTime(10)
	assert.Equal(t, 10.0, tl.View().Start())
	assert.Equal(t, 70.0, tl.View().End())
}

func TestNewTracksFollowMarker(t *testing.T) {
	tl, _, _ := newTimeline(t)
	tl.SetCurrentTime(42)
	a := addTrack(t, tl, "a")
	assert.Equal(t, 42.0, a.Cues().CurrentTime())
}

func TestSetLengthClampsMarker(t *testing.T) {
	tl, _, _ := newTimeline(t)
	tl.SetCurrentTime(100)
	tl.SetLength(50)
	assert.Equal(t, 50.0, tl.CurrentTime())
	assert.LessOrEqual(t, tl.View().End(), tl.Length())
}

func TestSetLengthContractsView(t *testing.T) {
	tl, _, _ := newTimeline(t)
	tl.View().SetWindow(20, 60)
	tl.SetLength(30)
	assert.Equal(t, 0.0, tl.View().Start())
	assert.Equal(t, 30.0, tl.View().End())

	tl.SetLength(1000)
	tl.View().SetWindow(100, 160)
	tl.SetLength(130)
	assert.Equal(t, 70.0, tl.View().Start())
	assert.Equal(t, 130.0, tl.View().End())

	tl.View().SetWindow(120, 200) // past the end, shifted back
	assert.Equal(t, 50.0, tl.View().Start())
	assert.Equal(t, 130.0, tl.View().End())
}
