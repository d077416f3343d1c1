package editor_test

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/timeline/editor"
)

type (
	// pollImages are assets that only answer Complete.
	pollImages struct{ complete bool }

	// notifyImages are assets that also announce when they are ready.
	notifyImages struct{ ready chan struct{} }
)

func (p *pollImages) Complete() bool { return p.complete }

func (n *notifyImages) Complete() bool {
	select {
	case <-n.ready:
		return true
	default:
		return false
	}
}

func (n *notifyImages) Ready() <-chan struct{} { return n.ready }

func TestRulerIncrement(t *testing.T) {
	measure := func(w float64) func(int) float64 {
		return func(d int) float64 { return w + 7*float64(d) }
	}
	tests := []struct {
		width, zoom float64
		inc         float64
		decimals    int
	}{
		{40, 0.1, 4, 0},
		{40, 1, 64, 0},
		{40, 0.01, 0.5, 1},
		{40, 0.012, 1, 0},      // 0.5 s would be 42 px, too narrow for the 47 px label
		{40, 0.001, 0.0625, 3}, // capped to three decimals
	}
	for _, tt := range tests {
		inc, d := editor.RulerIncrement(measure(tt.width), tt.zoom)
		assert.Equal(t, tt.inc, inc, "width %v zoom %v", tt.width, tt.zoom)
		assert.Equal(t, tt.decimals, d, "width %v zoom %v", tt.width, tt.zoom)
	}
}

func TestRulerIncrementMonotonic(t *testing.T) {
	measure := func(d int) float64 { return 45 + 6*float64(d) }
	prev := 0.0
	for zoom := 1e-5; zoom < 1e3; zoom *= 1.07 {
		inc, _ := editor.RulerIncrement(measure, zoom)
		assert.GreaterOrEqual(t, inc, prev, "zoom %v", zoom)
		prev = inc
	}
}

func TestRulerTicks(t *testing.T) {
	assert.Equal(t, []float64{4, 8, 12, 16}, editor.RulerTicks(5, 20, 4))
	assert.Equal(t, []float64{0, 0.5}, editor.RulerTicks(0, 1, 0.5))
	assert.Nil(t, editor.RulerTicks(0, 1, 0))
}

func TestRenderPaintsBackgroundAndMarker(t *testing.T) {
	tl, m, _ := newTimeline(t)
	addTrack(t, tl, "a")
	tl.SetCurrentTime(30)
	assert.NotEqual(t, color.RGBA{}, m.Main().At(500, 100))
	marker := tl.Colors().TimeMarker
	assert.Equal(t, color.RGBA{R: marker.R, G: marker.G, B: marker.B, A: 255}, m.Main().At(299, 60))
}

func TestRenderWaitsForReadyNotifier(t *testing.T) {
	images := &notifyImages{ready: make(chan struct{})}
	tl, m, clock := newTimelineWith(t, editor.Params{Images: images})
	assert.True(t, tl.RenderPending())
	tl.Render()
	tl.Render()
	assert.Equal(t, 0, clock.Running(), "a ready notifier should not need polling")
	assert.Equal(t, color.RGBA{}, m.Main().At(10, 50))
	close(images.ready)
	msg, ok := editor.TimeoutReceive(tl.Broker().ToModel, 2*time.Second)
	require.True(t, ok)
	tl.ProcessMsg(msg)
	assert.False(t, tl.RenderPending())
	assert.NotEqual(t, color.RGBA{}, m.Main().At(10, 50))
	_, ok = editor.TimeoutReceive(tl.Broker().ToModel, 50*time.Millisecond)
	assert.False(t, ok, "several Render calls should result in one deferred render")
}

func TestRenderPollsImages(t *testing.T) {
	images := &pollImages{}
	tl, m, clock := newTimelineWith(t, editor.Params{Images: images})
	tl.Render()
	assert.Equal(t, 1, clock.Running())
	clock.Tick(3)
	assert.True(t, tl.RenderPending())
	images.complete = true
	clock.Tick(1)
	assert.False(t, tl.RenderPending())
	assert.Equal(t, 0, clock.Running())
	assert.NotEqual(t, color.RGBA{}, m.Main().At(10, 50))
}

func TestRenderGivesUp(t *testing.T) {
	tl, _, clock := newTimelineWith(t, editor.Params{Images: &pollImages{}})
	clock.Tick(999)
	assert.True(t, tl.RenderPending())
	assert.Equal(t, 0, tl.Alerts().Len())
	clock.Tick(1)
	assert.False(t, tl.RenderPending())
	assert.Equal(t, 0, clock.Running())
	assert.Equal(t, 1, tl.Alerts().Len())
}

func TestSetWidthResizes(t *testing.T) {
	tl, m, _ := newTimeline(t)
	tl.SetWidth(800)
	assert.Equal(t, 800, m.Main().Width())
	assert.Equal(t, 800, m.OverlayCanvas().Width())
	assert.InDelta(t, 60.0/800, tl.View().Zoom(), 1e-12)
}
