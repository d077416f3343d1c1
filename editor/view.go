package editor

import "math"

// View is the visible time window [Start, End] of the timeline, mapped on
// the width of the canvas.
type View struct {
	start, end float64
	limit      float64 // end of the media, 0 if unbounded
	width      int
}

// minWindow is the shortest window the view can be zoomed in to, in seconds.
const minWindow = 0.01

func NewView(start, end float64, width int) *View {
	v := &View{width: width}
	v.SetWindow(start, end)
	return v
}

func (v *View) Start() float64 { return v.start }
func (v *View) End() float64   { return v.end }
func (v *View) Width() int     { return v.width }

// Length returns the duration of the window.
func (v *View) Length() float64 { return v.end - v.start }

// Zoom returns the number of seconds per pixel.
func (v *View) Zoom() float64 {
	if v.width <= 0 {
		return 0
	}
	return (v.end - v.start) / float64(v.width)
}

func (v *View) TimeToPixel(t float64) float64 {
	z := v.Zoom()
	if z == 0 {
		return 0
	}
	return (t - v.start) / z
}

func (v *View) PixelToTime(x float64) float64 {
	return x*v.Zoom() + v.start
}

// SetWindow sets the window. start is kept at or after 0 and the window is
// never shorter than minWindow. A window running past the end of the media
// is shifted back, keeping its length when possible.
func (v *View) SetWindow(start, end float64) {
	if math.IsNaN(start) || math.IsNaN(end) {
		return
	}
	v.start = max(start, 0)
	v.end = max(end, v.start+minWindow)
	if v.limit > 0 && v.end > v.limit {
		d := v.end - v.start
		v.end = v.limit
		v.start = max(0, v.limit-d)
	}
}

func (v *View) SetStart(start float64) { v.SetWindow(min(start, v.end-minWindow), v.end) }
func (v *View) SetEnd(end float64)     { v.SetWindow(v.start, end) }

// Move pans the window by delta seconds, keeping it within [0, length].
func (v *View) Move(delta, length float64) {
	if v.start+delta < 0 {
		delta = -v.start
	}
	if v.end+delta > length {
		delta = max(length-v.end, -v.start)
	}
	v.start += delta
	v.end += delta
}

func (v *View) setWidth(w int) { v.width = w }

// setLimit bounds the window to [0, length], contracting it if needed.
func (v *View) setLimit(length float64) {
	v.limit = length
	v.SetWindow(v.start, v.end)
}
