package editor

// Slider is the navigation bar at the bottom of the timeline. The whole
// width of the bar spans the length of the media and the thumb spans the
// visible window; dragging the thumb pans the view and dragging its handles
// moves either end of the window.
type Slider struct {
	tl     *Timeline
	drag   sliderDrag
	offset float64 // pointer x minus the thumb start, while moving
}

type sliderDrag int

const (
	sliderIdle sliderDrag = iota
	sliderMoving
	sliderResizingL
	sliderResizingR
)

func (s *Slider) top() float64 { return s.tl.height - SliderHeight }

func (s *Slider) scale() float64 {
	if s.tl.length <= 0 {
		return 0
	}
	return float64(s.tl.width) / s.tl.length
}

// StartX returns the x coordinate of the left end of the thumb.
func (s *Slider) StartX() float64 { return s.tl.view.Start() * s.scale() }

// EndX returns the x coordinate of the right end of the thumb.
func (s *Slider) EndX() float64 { return s.tl.view.End() * s.scale() }

func (s *Slider) Middle() float64 { return (s.StartX() + s.EndX()) / 2 }

func (s *Slider) Bounds() Rect {
	return Rect{X: 0, Y: s.top(), W: float64(s.tl.width), H: SliderHeight}
}

// handleWidth is the width of one handle; thumbs too narrow for two full
// handles are split in the middle.
func (s *Slider) handleWidth() float64 {
	return min(SliderHandleWidth, (s.EndX()-s.StartX())/2)
}

// OnHandle returns -1 if p is over the left handle, 1 if over the right
// handle and 0 otherwise.
func (s *Slider) OnHandle(p Point) int {
	if p.Y < s.top() || p.Y > s.tl.height {
		return 0
	}
	hw := s.handleWidth()
	switch {
	case p.X >= s.StartX() && p.X <= s.StartX()+hw:
		return -1
	case p.X >= s.EndX()-hw && p.X <= s.EndX():
		return 1
	}
	return 0
}

func (s *Slider) ContainsPoint(p Point) bool {
	return p.Y >= s.top() && p.Y <= s.tl.height && p.X >= s.StartX() && p.X <= s.EndX()
}

// SetMiddle centers the thumb at x, keeping the window length and the
// window within the media.
func (s *Slider) SetMiddle(x float64) {
	sc := s.scale()
	if sc == 0 {
		return
	}
	v := s.tl.view
	d := v.Length()
	start := min(max(x/sc-d/2, 0), max(s.tl.length-d, 0))
	v.SetWindow(start, start+d)
}

func (s *Slider) MouseDown(p Point) {
	switch s.OnHandle(p) {
	case -1:
		s.drag = sliderResizingL
	case 1:
		s.drag = sliderResizingR
	default:
		s.drag = sliderMoving
		s.offset = p.X - s.StartX()
	}
}

func (s *Slider) MouseMove(p Point) {
	sc := s.scale()
	if sc == 0 {
		return
	}
	v := s.tl.view
	t := min(max(p.X/sc, 0), s.tl.length)
	switch s.drag {
	case sliderMoving:
		d := v.Length()
		start := min(max((p.X-s.offset)/sc, 0), max(s.tl.length-d, 0))
		v.SetWindow(start, start+d)
	case sliderResizingL:
		v.SetStart(t)
	case sliderResizingR:
		v.SetEnd(max(t, v.Start()+minWindow))
	default:
		return
	}
	s.tl.Render()
}

func (s *Slider) MouseUp(p Point) { s.drag = sliderIdle }

func (s *Slider) Dragging() bool { return s.drag != sliderIdle }

func (s *Slider) Render() {
	c := s.tl.canvas
	colors := s.tl.colors
	b := s.Bounds()
	c.FillRect(b, colors.Slider.NRGBA())
	thumb := Rect{X: s.StartX(), Y: b.Y, W: s.EndX() - s.StartX(), H: b.H}
	c.FillRect(thumb, colors.SliderThumb.NRGBA())
	hw := s.handleWidth()
	left := Rect{X: thumb.X, Y: b.Y, W: hw, H: b.H}
	right := Rect{X: thumb.X + thumb.W - hw, Y: b.Y, W: hw, H: b.H}
	img := s.tl.bitmaps()
	if img != nil && img.SliderLeft != nil {
		c.DrawImage(img.SliderLeft, left)
	} else {
		c.FillRect(left, colors.SliderHandle.NRGBA())
	}
	if img != nil && img.SliderRight != nil {
		c.DrawImage(img.SliderRight, right)
	} else {
		c.FillRect(right, colors.SliderHandle.NRGBA())
	}
}
