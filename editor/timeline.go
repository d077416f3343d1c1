package editor

import (
	"fmt"
	"math"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/vsariola/timeline"
)

type (
	// Timeline is the controller of the timeline editor. See the package
	// documentation for an overview.
	Timeline struct {
		mount   Mount
		canvas  Canvas
		overlay Canvas

		fonts   *Fonts
		colors  *Colors
		images  ImageAssets
		cursors Cursors

		width         int
		length        float64
		height        float64
		timeMarkerPos float64
		multi         bool
		autoSelect    bool

		stack      CommandStack
		clock      Clock
		loader     TrackLoader
		broker     *Broker
		exportName *template.Template

		tracks       []TextTrack
		trackIndices map[string]int
		audio        map[string]*audioEntry
		audioOrder   []string

		view       *View
		slider     *Slider
		repeat     repeatState
		state      interaction
		renderWait Timer

		bus    Bus
		alerts Alerts
	}

	audioEntry struct {
		track      AudioTrack
		references int
	}
)

// Sizes of the parts of the timeline, in pixels.
const (
	KeyTop             = 0
	KeyHeight          = 25
	TrackHeight        = 50
	TrackPadding       = 10
	SliderHeight       = 25
	SliderHandleWidth  = 10
	SegmentTextPadding = 5
)

// New creates a Timeline drawing on the canvases of mount. It fails with
// ErrInvalidMount if the mount or its canvases are missing.
func New(mount Mount, p Params) (*Timeline, error) {
	if mount == nil || mount.Canvas() == nil || mount.Overlay() == nil {
		return nil, ErrInvalidMount
	}
	t := &Timeline{
		mount:        mount,
		canvas:       mount.Canvas(),
		overlay:      mount.Overlay(),
		fonts:        p.Fonts,
		colors:       p.Colors,
		images:       p.Images,
		cursors:      p.Cursors,
		width:        p.Width,
		length:       p.Length,
		multi:        p.Multi,
		autoSelect:   p.AutoSelect == nil || *p.AutoSelect,
		stack:        p.Stack,
		clock:        p.Clock,
		loader:       p.Loader,
		broker:       p.Broker,
		trackIndices: map[string]int{},
		audio:        map[string]*audioEntry{},
	}
	theme := DefaultTheme()
	if t.fonts == nil {
		t.fonts = &theme.Fonts
	}
	if t.colors == nil {
		t.colors = &theme.Colors
	}
	if t.cursors == nil {
		t.cursors = theme.Cursors
	}
	if t.images == nil {
		t.images = NoImages()
	}
	if t.width <= 0 {
		t.width = mount.AvailableWidth()
	}
	if t.length <= 0 || math.IsNaN(t.length) {
		t.length = defaultLength
	}
	if t.stack == nil {
		t.stack = NewHistory()
	}
	if t.broker == nil {
		t.broker = NewBroker()
	}
	if t.clock == nil {
		t.clock = BrokerClock(t.broker)
	}
	if t.loader == nil {
		t.loader = &FileLoader{}
	}
	name := p.ExportName
	if name == "" {
		name = defaultExportName
	}
	tmpl, err := template.New("exportName").Funcs(sprig.TxtFuncMap()).Parse(name)
	if err != nil {
		return nil, fmt.Errorf("export name template: %w", err)
	}
	t.exportName = tmpl
	start, end := p.Start, p.End
	if end <= start {
		start, end = 0, defaultWindow
	}
	t.view = NewView(start, end, t.width)
	t.view.setLimit(t.length)
	t.slider = &Slider{tl: t}
	t.state.tool = p.Tool
	if p.Tool < 0 || p.Tool >= NumTools {
		t.state.tool = Select
	}
	t.setHeight(KeyHeight + TrackPadding + SliderHeight)
	t.Render()
	return t, nil
}

func (t *Timeline) Mount() Mount        { return t.mount }
func (t *Timeline) View() *View         { return t.view }
func (t *Timeline) Slider() *Slider     { return t.slider }
func (t *Timeline) Broker() *Broker     { return t.broker }
func (t *Timeline) Stack() CommandStack { return t.stack }
func (t *Timeline) Width() int          { return t.width }
func (t *Timeline) Height() float64     { return t.height }
func (t *Timeline) Length() float64     { return t.length }
func (t *Timeline) Multi() bool         { return t.multi }
func (t *Timeline) AutoSelect() bool    { return t.autoSelect }
func (t *Timeline) Fonts() *Fonts       { return t.fonts }
func (t *Timeline) Colors() *Colors     { return t.colors }
func (t *Timeline) Images() ImageAssets { return t.images }
func (t *Timeline) Cursors() Cursors    { return t.cursors }

// SetWidth resizes the canvases and keeps the visible window.
func (t *Timeline) SetWidth(w int) {
	if w <= 0 || w == t.width {
		return
	}
	t.width = w
	t.view.setWidth(w)
	t.resizeCanvases()
	for _, id := range t.audioOrder {
		t.audio[id].track.SetWidth(w)
	}
	t.Render()
}

// SetLength sets the length of the media. The current time, the AB repeat
// range and the visible window are kept within it.
func (t *Timeline) SetLength(length float64) {
	if length <= 0 || math.IsNaN(length) || length == t.length {
		return
	}
	t.length = length
	t.view.setLimit(length)
	if t.repeat.set {
		t.repeat.a = min(t.repeat.a, length)
		t.repeat.b = min(t.repeat.b, length)
		t.checkRepeatOn()
	}
	if t.timeMarkerPos > length {
		t.SetCurrentTime(length)
	}
	t.Render()
}

func (t *Timeline) SetMulti(multi bool)           { t.multi = multi }
func (t *Timeline) SetAutoSelect(autoSelect bool) { t.autoSelect = autoSelect }

func (t *Timeline) SetFonts(f *Fonts) {
	if f != nil {
		t.fonts = f
		t.Render()
	}
}

func (t *Timeline) SetColors(c *Colors) {
	if c != nil {
		t.colors = c
		t.Render()
	}
}

func (t *Timeline) SetImages(im ImageAssets) {
	if im == nil {
		im = NoImages()
	}
	t.images = im
	t.cancelDeferredRender()
	t.Render()
}

func (t *Timeline) SetCursors(c Cursors) {
	if c != nil {
		t.cursors = c
		t.state.cursor = ""
		t.updateCursor(t.state.pos)
	}
}

// SetTheme sets the fonts, colors and cursors at once.
func (t *Timeline) SetTheme(th Theme) {
	t.fonts = &th.Fonts
	t.colors = &th.Colors
	t.SetCursors(th.Cursors)
	t.Render()
}

func (t *Timeline) setHeight(h float64) {
	t.height = h
	t.resizeCanvases()
}

func (t *Timeline) resizeCanvases() {
	h := int(math.Ceil(t.height))
	t.canvas.Resize(t.width, h)
	t.overlay.Resize(t.width, h)
}

// bitmaps returns the decoded images, or nil if the image assets carry none.
func (t *Timeline) bitmaps() *Images {
	if im, ok := t.images.(*Images); ok && im.Complete() {
		return im
	}
	return nil
}

// TimeCode returns the current time formatted as H:MM:SS.mmm.
func (t *Timeline) TimeCode() string { return timeline.TimeCode(t.timeMarkerPos) }
