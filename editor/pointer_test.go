package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/timeline/editor"
)

func TestScrub(t *testing.T) {
	tl, _, _ := newTimeline(t)
	addTrack(t, tl, "a")
	events := record(tl, editor.EventJump, editor.EventTimeUpdate)
	tl.PointerDown(pt(100, 10))
	assert.InDelta(t, 10, tl.CurrentTime(), 1e-9)
	require.Len(t, events.events, 2)
	assert.Equal(t, editor.EventJump, events.events[0].Name)
	assert.InDelta(t, 10, events.events[0].Time, 1e-9)
	assert.Equal(t, editor.EventTimeUpdate, events.events[1].Name)
	tl.PointerMove(pt(200, 10))
	assert.InDelta(t, 20, tl.CurrentTime(), 1e-9)
	tl.PointerUp(pt(200, 10))
	tl.PointerMove(pt(300, 10))
	assert.InDelta(t, 20, tl.CurrentTime(), 1e-9, "moving without a press should not seek")
}

func TestReorder(t *testing.T) {
	tl, _, _ := newTimeline(t)
	addTrack(t, tl, "a")
	addTrack(t, tl, "b")
	addTrack(t, tl, "c")
	tl.SetTool(editor.Order)
	tl.PointerDown(pt(10, bandY(0)))
	tl.PointerMove(pt(10, bandY(1)))
	assert.Equal(t, []string{"b", "a", "c"}, ids(tl.Tracks()))
	tl.PointerMove(pt(10, bandY(1)-27)) // padding between bands
	tl.PointerMove(pt(10, bandY(2)))
	assert.Equal(t, []string{"b", "c", "a"}, ids(tl.Tracks()))
	tl.PointerUp(pt(10, bandY(2)))
	tl.PointerMove(pt(10, bandY(0)))
	assert.Equal(t, []string{"b", "c", "a"}, ids(tl.Tracks()))
	assert.Equal(t, 155.0, tl.TrackTop("a"))
	assert.Equal(t, 35.0, tl.TrackTop("b"))
}

func TestAutoScroll(t *testing.T) {
	tl, _, clock := newTimeline(t)
	addTrack(t, tl, "a")
	tl.SetTool(editor.Scroll)
	tl.PointerDown(pt(600, bandY(0)))
	require.Equal(t, 1, clock.Running())
	clock.Tick(2) // 10 * 0.5 * 0.1 seconds per tick
	assert.InDelta(t, 1.0, tl.View().Start(), 1e-9)
	assert.InDelta(t, 61.0, tl.View().End(), 1e-9)
	tl.PointerMove(pt(300, bandY(0)))
	clock.Tick(2)
	assert.InDelta(t, 1.0, tl.View().Start(), 1e-9, "no scrolling with the pointer in the middle")
	tl.PointerUp(pt(300, bandY(0)))
	assert.Equal(t, 0, clock.Running())
}

func TestAutoScrollStopsAtStart(t *testing.T) {
	tl, _, clock := newTimeline(t)
	addTrack(t, tl, "a")
	tl.SetTool(editor.Scroll)
	tl.PointerDown(pt(0, bandY(0)))
	clock.Tick(10)
	assert.Equal(t, 0.0, tl.View().Start())
	assert.Equal(t, 60.0, tl.View().End())
	tl.PointerLeave(pt(0, bandY(0)))
	assert.Equal(t, 0, clock.Running())
}

func TestToolChangeStopsTimer(t *testing.T) {
	tl, _, clock := newTimeline(t)
	addTrack(t, tl, "a")
	tl.SetTool(editor.Scroll)
	tl.PointerDown(pt(600, bandY(0)))
	require.Equal(t, 1, clock.Running())
	tl.SetTool(editor.Select)
	assert.Equal(t, 0, clock.Running())
	assert.False(t, tl.Gesturing())
	start := tl.View().Start()
	clock.Tick(5)
	assert.Equal(t, start, tl.View().Start())
}

func TestAutoResize(t *testing.T) {
	tl, _, clock := newTimeline(t)
	addTrack(t, tl, "a")
	tl.SetTool(editor.Scroll)
	// the thumb spans x = 0..20, so a press right of it moves the end
	tl.PointerDown(pt(320, 110))
	require.Equal(t, 1, clock.Running())
	clock.Tick(1) // dx = 300 px, 300 * 0.1 / 10 = 3 seconds
	assert.InDelta(t, 63, tl.View().End(), 1e-9)
	assert.Equal(t, 0.0, tl.View().Start())
	tl.PointerUp(pt(320, 110))
	assert.Equal(t, 0, clock.Running())
}

func TestWheelZoomKeepsAnchor(t *testing.T) {
	tl, _, _ := newTimeline(t)
	addTrack(t, tl, "a")
	tl.Wheel(pt(300, bandY(0)), 1)
	assert.InDelta(t, 3, tl.View().Start(), 1e-9)
	assert.InDelta(t, 57, tl.View().End(), 1e-9)
	assert.InDelta(t, 30, tl.View().PixelToTime(300), 1e-9)
	tl.Wheel(pt(300, bandY(0)), -1)
	assert.InDelta(t, 0.3, tl.View().Start(), 1e-9)
	assert.InDelta(t, 59.7, tl.View().End(), 1e-9)
}

func TestWheelOverRulerSeeks(t *testing.T) {
	tl, _, _ := newTimeline(t)
	events := record(tl, editor.EventJump)
	tl.Wheel(pt(10, 10), 5)
	assert.InDelta(t, 0.5, tl.CurrentTime(), 1e-9)
	assert.Len(t, events.events, 1)
	tl.Wheel(pt(10, 10), -10)
	assert.Equal(t, 0.0, tl.CurrentTime())
}

func TestWheelOverSliderPans(t *testing.T) {
	tl, _, _ := newTimeline(t)
	tl.Wheel(pt(300, 50), 3) // x = 3 px on the slider is 9 seconds
	assert.InDelta(t, 9, tl.View().Start(), 1e-9)
	assert.InDelta(t, 69, tl.View().End(), 1e-9)
}

func TestSliderRecenterAndDrag(t *testing.T) {
	tl, _, _ := newTimeline(t)
	addTrack(t, tl, "a")
	tl.View().SetWindow(0, 300) // thumb x = 0..100
	tl.PointerDown(pt(300, 110))
	assert.InDelta(t, 750, tl.View().Start(), 1e-9)
	assert.InDelta(t, 1050, tl.View().End(), 1e-9)
	assert.True(t, tl.Slider().Dragging())
	tl.PointerMove(pt(310, 110))
	assert.InDelta(t, 780, tl.View().Start(), 1e-9)
	assert.InDelta(t, 1080, tl.View().End(), 1e-9)
	tl.PointerUp(pt(310, 110))
	assert.False(t, tl.Slider().Dragging())
}

func TestSliderHandleResizes(t *testing.T) {
	tl, _, _ := newTimeline(t)
	addTrack(t, tl, "a")
	tl.View().SetWindow(300, 600) // thumb x = 100..200
	tl.PointerDown(pt(195, 110))
	tl.PointerMove(pt(250, 110))
	assert.InDelta(t, 300, tl.View().Start(), 1e-9)
	assert.InDelta(t, 750, tl.View().End(), 1e-9)
	tl.PointerUp(pt(250, 110))
}

func TestCursorGlyphs(t *testing.T) {
	tl, m, _ := newTimeline(t)
	addTrack(t, tl, "a")
	tl.View().SetWindow(300, 600)
	tests := []struct {
		tool editor.ToolMode
		p    editor.Point
		want editor.Glyph
	}{
		{editor.Select, pt(10, 10), editor.GlyphSkip},
		{editor.Select, pt(150, 110), editor.GlyphMove},
		{editor.Select, pt(102, 110), editor.GlyphResizeL},
		{editor.Select, pt(198, 110), editor.GlyphResizeR},
		{editor.Select, pt(10, bandY(0)), editor.GlyphPointer},
		{editor.Order, pt(10, bandY(0)), editor.GlyphOrder},
		{editor.Create, pt(10, bandY(0)), editor.GlyphCreate},
		{editor.Repeat, pt(10, bandY(0)), editor.GlyphRepeatA},
		{editor.Scroll, pt(10, bandY(0)), editor.GlyphMove},
		{editor.Scroll, pt(10, 90), editor.GlyphResizeL},
		{editor.Scroll, pt(500, 90), editor.GlyphResizeR},
	}
	for _, tt := range tests {
		tl.SetTool(tt.tool)
		tl.PointerMove(tt.p)
		assert.Equal(t, tt.want, tl.Cursor(), "%v at %v", tt.tool, tt.p)
		assert.Equal(t, tl.Cursors().Lookup(tt.want), m.Cursor())
	}
}
