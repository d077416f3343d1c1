package editor

// CursorAt returns the glyph the cursor should show over p, given the tool
// mode and the repeat state.
func (t *Timeline) CursorAt(p Point) Glyph {
	switch t.slider.OnHandle(p) {
	case -1:
		return GlyphResizeL
	case 1:
		return GlyphResizeR
	}
	if t.slider.ContainsPoint(p) {
		return GlyphMove
	}
	if p.Y < KeyHeight+TrackPadding {
		return GlyphSkip
	}
	switch t.state.tool {
	case Repeat:
		if !(t.repeat.on || t.repeat.dragging) || p.X < t.view.TimeToPixel((t.repeat.a+t.repeat.b)/2) {
			return GlyphRepeatA
		}
		return GlyphRepeatB
	case Scroll:
		if p.Y < t.height-SliderHeight-TrackPadding {
			return GlyphMove
		}
		if p.X < t.slider.Middle() {
			return GlyphResizeL
		}
		return GlyphResizeR
	}
	if track := t.TrackAt(p); track != nil {
		if t.state.tool == Order {
			return GlyphOrder
		}
		return track.Cursor(p)
	}
	return GlyphPointer
}

// Cursor returns the glyph currently shown.
func (t *Timeline) Cursor() Glyph { return t.state.cursor }

func (t *Timeline) updateCursor(p Point) { t.setCursor(t.CursorAt(p)) }

func (t *Timeline) setCursor(g Glyph) {
	if g == t.state.cursor {
		return
	}
	t.state.cursor = g
	t.mount.SetCursor(t.cursors.Lookup(g))
}
