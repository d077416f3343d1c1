package editor

import (
	"image"
	"strconv"

	"github.com/vsariola/timeline"
)

type (
	// CueTrack is a TextTrack of cues, drawn as segments. Depending on the
	// tool mode, segments can be selected, moved, resized, created and
	// deleted with the pointer; all edits are undoable.
	CueTrack struct {
		tl       *Timeline
		id       string
		label    string
		kind     string
		lang     string
		audioID  string
		active   bool
		cues     *timeline.CueList
		selected map[string]bool
		nextID   int
	}

	// segmentDrag moves a segment, or one of its ends.
	segmentDrag struct {
		track    *CueTrack
		orig     timeline.Cue
		cur      timeline.Cue
		edge     int // -1 left end, 1 right end, 0 the whole segment
		downTime float64
	}

	// segmentCreate drags out a new segment.
	segmentCreate struct {
		track   *CueTrack
		start   float64
		cue     timeline.Cue
		created bool
	}
)

const minCueLength = 0.01

func NewCueTrack(tl *Timeline, data timeline.TrackData) *CueTrack {
	c := &CueTrack{
		tl:       tl,
		id:       data.ID,
		label:    data.Label,
		kind:     data.Kind,
		lang:     data.Lang,
		active:   true,
		cues:     timeline.NewCueList(),
		selected: map[string]bool{},
	}
	if c.id == "" {
		c.id = c.label
	}
	for _, cue := range data.Cues {
		c.Add(cue, false)
	}
	return c
}

func (c *CueTrack) ID() string              { return c.id }
func (c *CueTrack) Label() string           { return c.label }
func (c *CueTrack) Kind() string            { return c.kind }
func (c *CueTrack) Lang() string            { return c.lang }
func (c *CueTrack) AudioID() string         { return c.audioID }
func (c *CueTrack) SetAudioID(id string)    { c.audioID = id }
func (c *CueTrack) Active() bool            { return c.active }
func (c *CueTrack) Cues() *timeline.CueList { return c.cues }

// SetActive shows or hides the waveform in the band of the track.
func (c *CueTrack) SetActive(active bool) {
	if c.active == active {
		return
	}
	c.active = active
	if i := c.tl.indexOf(c); i >= 0 {
		c.tl.renderAudioFor(i)
	}
}

// Data returns the serializable form of the track.
func (c *CueTrack) Data() timeline.TrackData {
	return timeline.TrackData{ID: c.id, Label: c.label, Kind: c.kind, Lang: c.lang, Cues: c.cues.Cues()}
}

func (c *CueTrack) Serialize(f timeline.Format) ([]byte, error) {
	return f.Marshal(c.Data())
}

// Add adds a cue, giving it an id if it has none.
func (c *CueTrack) Add(cue timeline.Cue, selected bool) {
	if cue.ID == "" {
		cue.ID = c.newID()
	}
	c.cues.Add(cue)
	if selected {
		if !c.tl.multi {
			clear(c.selected)
		}
		c.selected[cue.ID] = true
	}
}

// Selected returns the selected cues, in time order.
func (c *CueTrack) Selected() []timeline.Cue {
	var ret []timeline.Cue
	for _, cue := range c.cues.Cues() {
		if c.selected[cue.ID] {
			ret = append(ret, cue)
		}
	}
	return ret
}

func (c *CueTrack) IsSelected(id string) bool { return c.selected[id] }

func (c *CueTrack) newID() string {
	for {
		c.nextID++
		id := strconv.Itoa(c.nextID)
		if _, ok := c.cues.Get(id); !ok {
			return id
		}
	}
}

func (c *CueTrack) Render() {
	tl := c.tl
	i := tl.indexOf(c)
	if i < 0 {
		return
	}
	b := tl.band(i)
	cv := tl.canvas
	tl.renderBackgroundIn(b)
	cv.FillRect(b, tl.colors.Track.NRGBA())
	active := map[string]bool{}
	for _, cue := range c.cues.Active() {
		active[cue.ID] = true
	}
	img := tl.bitmaps()
	for _, cue := range c.cues.Between(tl.view.Start(), tl.view.End()) {
		r := c.segmentRect(cue, b)
		col := tl.colors.Segment
		var bmp image.Image
		switch {
		case c.selected[cue.ID]:
			col = tl.colors.SegmentSelected
			if img != nil {
				bmp = img.SegmentSelected
			}
		case active[cue.ID]:
			col = tl.colors.SegmentActive
		case img != nil:
			bmp = img.Segment
		}
		if bmp != nil {
			cv.DrawImage(bmp, r)
		} else {
			cv.FillRect(r, col.NRGBA())
		}
		text := fitText(cv, cue.Text, tl.fonts.Segment, r.W-2*SegmentTextPadding)
		if text != "" {
			cv.FillText(text, r.X+SegmentTextPadding, r.Y+SegmentTextPadding, tl.fonts.Segment, tl.fonts.SegmentText.NRGBA(), AlignLeft)
		}
	}
	labelY := b.Y + b.H - tl.fonts.Label.Size - 2
	if tl.mount.RightToLeft() {
		cv.FillText(c.label, b.W-4, labelY, tl.fonts.Label, tl.fonts.LabelText.NRGBA(), AlignRight)
	} else {
		cv.FillText(c.label, 4, labelY, tl.fonts.Label, tl.fonts.LabelText.NRGBA(), AlignLeft)
	}
}

func (c *CueTrack) segmentRect(cue timeline.Cue, band Rect) Rect {
	v := c.tl.view
	x0 := max(v.TimeToPixel(cue.Start), 0)
	x1 := min(v.TimeToPixel(cue.End), float64(c.tl.width))
	return Rect{X: x0, Y: band.Y, W: max(x1-x0, 1), H: band.H}
}

// segmentAt returns the topmost cue under p.
func (c *CueTrack) segmentAt(p Point) (timeline.Cue, bool) {
	i := c.tl.indexOf(c)
	if i < 0 {
		return timeline.Cue{}, false
	}
	b := c.tl.band(i)
	cues := c.cues.Between(c.tl.view.Start(), c.tl.view.End())
	for j := len(cues) - 1; j >= 0; j-- {
		if c.segmentRect(cues[j], b).Contains(p) {
			return cues[j], true
		}
	}
	return timeline.Cue{}, false
}

// edgeAt tells whether p is over the left (-1) or right (1) end of the
// segment, or neither (0).
func (c *CueTrack) edgeAt(cue timeline.Cue, p Point) int {
	v := c.tl.view
	x0, x1 := v.TimeToPixel(cue.Start), v.TimeToPixel(cue.End)
	handle := min(SegmentTextPadding, (x1-x0)/3)
	switch {
	case p.X-x0 <= handle:
		return -1
	case x1-p.X <= handle:
		return 1
	}
	return 0
}

func (c *CueTrack) Cursor(p Point) Glyph {
	cue, ok := c.segmentAt(p)
	switch c.tl.Tool() {
	case Select:
		if ok {
			return GlyphSelect
		}
	case Move:
		if ok {
			switch c.edgeAt(cue, p) {
			case -1:
				return GlyphResizeSegL
			case 1:
				return GlyphResizeSegR
			}
			return GlyphMoveSegment
		}
	case Create:
		return GlyphCreate
	case Delete:
		if ok {
			return GlyphRemove
		}
	}
	return GlyphPointer
}

func (c *CueTrack) MouseDown(p Point) Element {
	tl := c.tl
	switch tl.Tool() {
	case Select:
		cue, ok := c.segmentAt(p)
		switch {
		case !ok:
			if !tl.multi {
				clear(c.selected)
			}
		case tl.multi:
			c.selected[cue.ID] = !c.selected[cue.ID]
		default:
			clear(c.selected)
			c.selected[cue.ID] = true
		}
		tl.RenderTrack(c)
	case Move:
		cue, ok := c.segmentAt(p)
		if !ok {
			return nil
		}
		if tl.autoSelect && !c.selected[cue.ID] {
			if !tl.multi {
				clear(c.selected)
			}
			c.selected[cue.ID] = true
			tl.RenderTrack(c)
		}
		return &segmentDrag{track: c, orig: cue, cur: cue, edge: c.edgeAt(cue, p), downTime: tl.view.PixelToTime(p.X)}
	case Create:
		return &segmentCreate{track: c, start: tl.pointTime(p)}
	case Delete:
		if cue, ok := c.segmentAt(p); ok {
			c.removeCue(cue)
			tl.stack.Push(Command{
				Name:    "DeleteCue",
				TrackID: c.id,
				Undo:    func() { c.cues.Add(cue); tl.RenderTrack(c) },
				Redo:    func() { c.removeCue(cue) },
			})
		}
	}
	return nil
}

func (c *CueTrack) removeCue(cue timeline.Cue) {
	c.cues.Remove(cue.ID)
	delete(c.selected, cue.ID)
	c.tl.RenderTrack(c)
}

func (c *CueTrack) updateCue(cue timeline.Cue) {
	c.cues.Update(cue)
	c.tl.RenderTrack(c)
}

func (d *segmentDrag) MouseMove(p Point) {
	tl := d.track.tl
	dt := tl.view.PixelToTime(p.X) - d.downTime
	cue := d.orig
	switch d.edge {
	case -1:
		cue.Start = min(max(cue.Start+dt, 0), cue.End-minCueLength)
	case 1:
		cue.End = min(max(cue.End+dt, cue.Start+minCueLength), tl.length)
	default:
		dt = min(max(dt, -cue.Start), tl.length-cue.End)
		cue.Start += dt
		cue.End += dt
	}
	if cue == d.cur {
		return
	}
	d.cur = cue
	d.track.updateCue(cue)
}

func (d *segmentDrag) MouseUp(p Point) {
	d.MouseMove(p)
	if d.cur == d.orig {
		return
	}
	c, orig, cur := d.track, d.orig, d.cur
	c.tl.stack.Push(Command{
		Name:    "MoveCue",
		TrackID: c.id,
		Undo:    func() { c.updateCue(orig) },
		Redo:    func() { c.updateCue(cur) },
	})
}

func (s *segmentCreate) MouseMove(p Point) {
	c := s.track
	end := c.tl.pointTime(p)
	cue := s.cue
	cue.Start, cue.End = min(s.start, end), max(s.start, end)
	if !s.created {
		if cue.End-cue.Start < minCueLength {
			return
		}
		cue.ID = c.newID()
		s.cue = cue
		s.created = true
		c.cues.Add(cue)
		c.tl.RenderTrack(c)
		return
	}
	s.cue = cue
	c.updateCue(cue)
}

func (s *segmentCreate) MouseUp(p Point) {
	s.MouseMove(p)
	if !s.created {
		return
	}
	c, cue := s.track, s.cue
	if cue.End-cue.Start < minCueLength {
		c.removeCue(cue)
		return
	}
	if c.tl.autoSelect {
		if !c.tl.multi {
			clear(c.selected)
		}
		c.selected[cue.ID] = true
		c.tl.RenderTrack(c)
	}
	c.tl.stack.Push(Command{
		Name:    "CreateCue",
		TrackID: c.id,
		Undo:    func() { c.removeCue(cue) },
		Redo:    func() { c.cues.Add(cue); c.tl.RenderTrack(c) },
	})
}
