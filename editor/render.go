package editor

import (
	"log"
	"time"
)

const (
	renderRetryInterval = 10 * time.Millisecond
	maxRenderRetries    = 1000
)

type readyWait struct {
	cancel chan struct{}
}

func (w *readyWait) Stop() { close(w.cancel) }

// Render repaints the whole timeline. While the image assets are still
// loading, the repaint is deferred until they are complete; any number of
// Render calls made in the meantime result in one repaint.
func (t *Timeline) Render() {
	if !t.images.Complete() {
		t.deferRender()
		return
	}
	t.cancelDeferredRender()
	t.renderBackground()
	t.renderKey()
	for _, track := range t.tracks {
		track.Render()
	}
	t.overlay.ClearRect(Rect{W: float64(t.width), H: t.height})
	for _, id := range t.audioOrder {
		t.audio[id].track.Render()
	}
	t.renderABRepeat()
	t.renderTimeMarker()
	t.slider.Render()
}

// RenderTrack repaints a single track, along with the parts of the AB
// repeat band and the time marker overlapping it.
func (t *Timeline) RenderTrack(track TextTrack) {
	i := t.indexOf(track)
	if i < 0 || !t.images.Complete() {
		return
	}
	track.Render()
	b := t.band(i)
	t.renderABRepeatIn(b)
	t.renderTimeMarkerIn(b)
}

// renderAudioFor repaints the waveform bound to the i:th track.
func (t *Timeline) renderAudioFor(i int) {
	t.overlay.ClearRect(t.band(i))
	if e, ok := t.audio[t.tracks[i].AudioID()]; ok {
		e.track.Render()
	}
}

// RedrawAudio drops the cached waveforms and paints them again.
func (t *Timeline) RedrawAudio() {
	for _, id := range t.audioOrder {
		t.audio[id].track.Redraw()
	}
}

// deferRender arranges a Render once the images are complete. At most one
// deferred render is pending at any time.
func (t *Timeline) deferRender() {
	if t.renderWait != nil {
		return
	}
	if n, ok := t.images.(ReadyNotifier); ok {
		w := &readyWait{cancel: make(chan struct{})}
		t.renderWait = w
		ready := n.Ready()
		render := func() {
			if t.renderWait == w {
				t.renderWait = nil
				t.Render()
			}
		}
		go func() {
			select {
			case <-ready:
				select {
				case t.broker.ToModel <- MsgToModel{Data: render}:
				case <-w.cancel:
				}
			case <-w.cancel:
			}
		}()
		return
	}
	retries := 0
	t.renderWait = t.clock.Every(renderRetryInterval, func() {
		if t.images.Complete() {
			t.Render()
			return
		}
		if retries++; retries >= maxRenderRetries {
			t.cancelDeferredRender()
			log.Printf("editor: images did not load in %v, giving up rendering", renderRetryInterval*maxRenderRetries)
			t.alerts.AddNamed("ImagesNotLoaded", "Images did not load, the timeline is not drawn", Warning)
		}
	})
}

func (t *Timeline) cancelDeferredRender() {
	if t.renderWait != nil {
		t.renderWait.Stop()
		t.renderWait = nil
	}
}

// RenderPending reports whether a deferred render is waiting for the images.
func (t *Timeline) RenderPending() bool { return t.renderWait != nil }

func (t *Timeline) backgroundStops() []GradientStop {
	c := t.colors
	return []GradientStop{
		{Offset: 0, Color: c.BgTop.NRGBA()},
		{Offset: 0.5, Color: c.BgMid.NRGBA()},
		{Offset: 1, Color: c.BgBottom.NRGBA()},
	}
}

func (t *Timeline) renderBackground() {
	r := Rect{W: float64(t.width), H: t.height}
	t.canvas.ClearRect(r)
	t.canvas.FillGradient(r, t.backgroundStops()...)
}

// renderBackgroundIn repaints the part r of the background, with the
// gradient stops remapped so that the result matches a full repaint.
func (t *Timeline) renderBackgroundIn(r Rect) {
	if r.H <= 0 || t.height <= 0 {
		return
	}
	full := t.backgroundStops()
	stops := []GradientStop{{Offset: 0, Color: GradientAt(full, r.Y/t.height)}}
	for _, s := range full {
		if y := s.Offset * t.height; y > r.Y && y < r.Y+r.H {
			stops = append(stops, GradientStop{Offset: (y - r.Y) / r.H, Color: s.Color})
		}
	}
	stops = append(stops, GradientStop{Offset: 1, Color: GradientAt(full, (r.Y+r.H)/t.height)})
	t.canvas.ClearRect(r)
	t.canvas.FillGradient(r, stops...)
}

func (t *Timeline) repeatRect() (Rect, bool) {
	if !t.repeat.set {
		return Rect{}, false
	}
	a := t.view.TimeToPixel(t.repeat.a)
	b := t.view.TimeToPixel(t.repeat.b)
	return Rect{X: min(a, b), Y: 0, W: max(a, b) - min(a, b), H: t.height}, true
}

func (t *Timeline) renderABRepeat() { t.renderABRepeatIn(Rect{W: float64(t.width), H: t.height}) }

func (t *Timeline) renderABRepeatIn(clip Rect) {
	r, ok := t.repeatRect()
	if !ok {
		return
	}
	r = intersect(r, clip)
	if r.W <= 0 || r.H <= 0 {
		return
	}
	col := t.colors.ABRepeat
	if !t.repeat.on {
		col = t.colors.ABRepeatLight
	}
	t.canvas.FillRect(r, col.NRGBA())
}

func (t *Timeline) renderTimeMarker() { t.renderTimeMarkerIn(Rect{W: float64(t.width), H: t.height}) }

func (t *Timeline) renderTimeMarkerIn(clip Rect) {
	x := t.view.TimeToPixel(t.timeMarkerPos) - 1
	if x < -2 || x > float64(t.width) {
		return
	}
	r := intersect(Rect{X: x, Y: 0, W: 2, H: t.height}, clip)
	if r.W <= 0 || r.H <= 0 {
		return
	}
	t.canvas.FillRect(r, t.colors.TimeMarker.NRGBA())
}

func intersect(a, b Rect) Rect {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.W, b.X+b.W), min(a.Y+a.H, b.Y+b.H)
	return Rect{X: x0, Y: y0, W: max(x1-x0, 0), H: max(y1-y0, 0)}
}
