package editor

// PointerDown handles a pointer press at p. What it starts depends on where
// p is: the slider band, the ruler, or the tracks, where the tool mode
// decides.
func (t *Timeline) PointerDown(p Point) {
	t.endGesture(t.state.pos)
	t.state.downPos, t.state.pos = p, p
	switch {
	case p.Y > t.height-SliderHeight-TrackPadding:
		switch {
		case t.slider.ContainsPoint(p):
			t.startSliderDrag(p)
		case t.state.tool == Scroll:
			t.startAutoResize()
		default:
			t.slider.SetMiddle(p.X)
			t.Render()
			if p.Y > t.slider.top() {
				t.startSliderDrag(p)
			}
		}
	case p.Y < KeyHeight+TrackPadding:
		t.beginGesture(gesture{kind: gestureScrub})
		t.seek(p.X)
	default:
		switch t.state.tool {
		case Repeat:
			t.beginGesture(gesture{kind: gestureRepeat})
			t.repeat.dragging = true
			if t.repeat.on {
				t.updateABPoints(p)
			} else {
				t.resetABPoints(p)
			}
		case Scroll:
			t.startAutoScroll()
		case Order:
			if i := t.IndexAt(p); i >= 0 {
				t.beginGesture(gesture{kind: gestureReorder, index: i})
			}
		default:
			if track := t.TrackAt(p); track != nil {
				if el := track.MouseDown(p); el != nil {
					t.beginGesture(gesture{kind: gestureElement, element: el, owner: track.ID()})
				}
			}
		}
	}
}

// PointerMove handles the pointer moving to p, pressed or not.
func (t *Timeline) PointerMove(p Point) {
	t.state.pos = p
	moveTable[t.state.gesture.kind](t, p)
}

// PointerUp handles the release of the pointer at p and ends the gesture.
func (t *Timeline) PointerUp(p Point) {
	t.state.pos = p
	t.endGesture(p)
}

// PointerLeave handles the pointer leaving the mount; it is treated as a
// release.
func (t *Timeline) PointerLeave(p Point) { t.PointerUp(p) }

// Wheel handles the wheel turning by notches over p; positive notches are
// away from the user. Over the slider it pans by a pixel per notch, over the
// ruler it seeks by a pixel per notch and elsewhere it zooms around p by 10%
// per notch.
func (t *Timeline) Wheel(p Point, notches int) {
	if notches == 0 {
		return
	}
	t.state.pos = p
	switch {
	case p.Y > t.height-SliderHeight-TrackPadding:
		t.slider.SetMiddle(t.slider.Middle() + float64(notches))
	case p.Y < KeyHeight+TrackPadding:
		cur := t.timeMarkerPos
		tm := min(max(cur+float64(notches)*t.view.Zoom(), 0), t.length)
		if tm != cur {
			t.emit(EventJump, tm, nil)
			t.SetCurrentTime(tm)
		}
	default:
		d := float64(notches) / 10
		v := t.view
		pt := v.PixelToTime(p.X)
		start := max(v.Start()+d*(pt-v.Start()), 0)
		end := min(v.End()+d*(pt-v.End()), t.length)
		v.SetWindow(start, end)
	}
	t.Render()
}

// seek moves the time marker to the time at x, announcing it with a jump
// event first.
func (t *Timeline) seek(x float64) {
	tm := min(max(t.view.PixelToTime(x), 0), t.length)
	t.emit(EventJump, tm, nil)
	t.SetCurrentTime(tm)
}

func (t *Timeline) startSliderDrag(p Point) {
	t.beginGesture(gesture{kind: gestureSlider})
	t.slider.MouseDown(p)
	t.setCursor(GlyphMove)
}

// startAutoScroll pans the view while the pointer is held: the further the
// pointer is from the middle of the timeline, the faster.
func (t *Timeline) startAutoScroll() {
	t.setCursor(GlyphMove)
	t.beginGesture(gesture{kind: gestureAutoScroll, timer: t.clock.Every(motionInterval, func() {
		delta := t.state.pos.X/float64(t.width) - .5
		if delta == 0 {
			return
		}
		t.view.Move(10*delta*t.view.Zoom(), t.length)
		t.Render()
	})})
}

// startAutoResize moves the end of the window on the side of the press
// towards the pointer while it is held.
func (t *Timeline) startAutoResize() {
	diff := t.state.downPos.X - t.slider.Middle()
	var step func()
	switch {
	case diff < 0:
		t.setCursor(GlyphResizeL)
		step = func() {
			dx := t.state.pos.X - t.slider.StartX()
			if dx == 0 {
				return
			}
			t.view.SetStart(min(max(t.view.Start()+dx*t.view.Zoom()/10, 0), t.length))
			t.Render()
		}
	case diff > 0:
		t.setCursor(GlyphResizeR)
		step = func() {
			dx := t.state.pos.X - t.slider.EndX()
			if dx == 0 {
				return
			}
			t.view.SetEnd(min(t.view.End()+dx*t.view.Zoom()/10, t.length))
			t.Render()
		}
	default:
		return
	}
	t.beginGesture(gesture{kind: gestureAutoResize, timer: t.clock.Every(motionInterval, step)})
}

// reorderTo swaps the dragged track with the track under p.
func (t *Timeline) reorderTo(p Point) {
	i := t.IndexAt(p)
	g := &t.state.gesture
	if i < 0 || i == g.index {
		return
	}
	t.swapTracks(g.index, i)
	g.index = i
	t.Render()
}
