package raster

import (
	"image"
	"image/draw"

	"github.com/vsariola/timeline/editor"
)

// Mount is an editor.Mount with two raster canvases.
type Mount struct {
	main, overlay *Canvas
	width         int
	cursor        string
	rtl           bool
}

var _ editor.Mount = (*Mount)(nil)

// NewMount returns a mount offering the given width to the timeline.
func NewMount(width int) *Mount {
	return &Mount{
		main:    NewCanvas(width, 0),
		overlay: NewCanvas(width, 0),
		width:   width,
	}
}

func (m *Mount) Canvas() editor.Canvas   { return m.main }
func (m *Mount) Overlay() editor.Canvas  { return m.overlay }
func (m *Mount) Main() *Canvas           { return m.main }
func (m *Mount) OverlayCanvas() *Canvas  { return m.overlay }
func (m *Mount) AvailableWidth() int     { return m.width }
func (m *Mount) SetAvailableWidth(w int) { m.width = w }
func (m *Mount) SetCursor(cursor string) { m.cursor = cursor }
func (m *Mount) Cursor() string          { return m.cursor }
func (m *Mount) RightToLeft() bool       { return m.rtl }
func (m *Mount) SetRightToLeft(rtl bool) { m.rtl = rtl }

// Generation changes whenever either canvas changes.
func (m *Mount) Generation() uint64 { return m.main.generation + m.overlay.generation }

// Composite returns the overlay drawn over the main canvas.
func (m *Mount) Composite() *image.RGBA {
	b := m.main.img.Bounds()
	ret := image.NewRGBA(b)
	draw.Draw(ret, b, m.main.img, b.Min, draw.Src)
	draw.Draw(ret, b, m.overlay.img, b.Min, draw.Over)
	return ret
}
