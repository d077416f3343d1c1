// Package raster implements the drawing surfaces of the editor on top of
// image.RGBA, for headless rendering and for hosts that blit images.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/vsariola/timeline/editor"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// Canvas is an editor.Canvas drawing into an *image.RGBA. Every change bumps
// its generation, so hosts can tell when to upload the image again.
type Canvas struct {
	img        *image.RGBA
	generation uint64
	widths     map[textKey]float64
}

type textKey struct {
	s    string
	face font.Face
}

var _ editor.Canvas = (*Canvas)(nil)

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		widths: map[textKey]float64{},
	}
}

func (c *Canvas) Image() *image.RGBA     { return c.img }
func (c *Canvas) Generation() uint64     { return c.generation }
func (c *Canvas) Width() int             { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int            { return c.img.Bounds().Dy() }
func (c *Canvas) At(x, y int) color.RGBA { return c.img.RGBAAt(x, y) }

func (c *Canvas) Resize(width, height int) {
	c.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	c.generation++
}

func (c *Canvas) ClearRect(r editor.Rect) {
	draw.Draw(c.img, r.Image(), image.Transparent, image.Point{}, draw.Src)
	c.generation++
}

func (c *Canvas) FillRect(r editor.Rect, col color.NRGBA) {
	draw.Draw(c.img, r.Image(), image.NewUniform(col), image.Point{}, draw.Over)
	c.generation++
}

func (c *Canvas) FillGradient(r editor.Rect, stops ...editor.GradientStop) {
	rect := r.Image().Intersect(c.img.Bounds())
	if rect.Empty() || r.H <= 0 {
		return
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		o := (float64(y) + 0.5 - r.Y) / r.H
		row := image.Rect(rect.Min.X, y, rect.Max.X, y+1)
		draw.Draw(c.img, row, image.NewUniform(editor.GradientAt(stops, o)), image.Point{}, draw.Over)
	}
	c.generation++
}

// StrokeLine draws a one pixel wide line.
func (c *Canvas) StrokeLine(from, to editor.Point, col color.NRGBA) {
	dx, dy := to.X-from.X, to.Y-from.Y
	steps := int(math.Ceil(max(math.Abs(dx), math.Abs(dy))))
	src := image.NewUniform(col)
	for i := 0; i <= steps; i++ {
		f := 0.0
		if steps > 0 {
			f = float64(i) / float64(steps)
		}
		x := int(math.Floor(from.X + dx*f))
		y := int(math.Floor(from.Y + dy*f))
		draw.Draw(c.img, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
	}
	c.generation++
}

func (c *Canvas) FillText(s string, x, y float64, f editor.Font, col color.NRGBA, align editor.TextAlign) {
	face := faceFor(f)
	if align == editor.AlignRight {
		x -= c.measure(s, face)
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y*64) + face.Metrics().Ascent},
	}
	d.DrawString(s)
	c.generation++
}

func (c *Canvas) MeasureText(s string, f editor.Font) float64 {
	return c.measure(s, faceFor(f))
}

func (c *Canvas) measure(s string, face font.Face) float64 {
	k := textKey{s: s, face: face}
	if w, ok := c.widths[k]; ok {
		return w
	}
	w := float64(font.MeasureString(face, s)) / 64
	if len(c.widths) > 4096 {
		clear(c.widths)
	}
	c.widths[k] = w
	return w
}

// DrawImage scales img to r.
func (c *Canvas) DrawImage(img image.Image, r editor.Rect) {
	xdraw.ApproxBiLinear.Scale(c.img, r.Image(), img, img.Bounds(), xdraw.Over, nil)
	c.generation++
}

// faceFor picks the bitmap face closest to the requested size; the family is
// not used.
func faceFor(f editor.Font) font.Face {
	if f.Size >= 14 {
		return inconsolata.Regular8x16
	}
	return basicfont.Face7x13
}
