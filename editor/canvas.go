package editor

import (
	"image"
	"image/color"
	"math"
)

type (
	Point struct{ X, Y float64 }

	// Rect is an axis aligned rectangle; X, Y is the top left corner.
	Rect struct{ X, Y, W, H float64 }

	// Canvas is a 2D drawing surface, in pixels. Text is drawn with its top
	// at y.
	Canvas interface {
		Width() int
		Height() int
		// Resize changes the size of the canvas, clearing its contents.
		Resize(width, height int)
		ClearRect(r Rect)
		FillRect(r Rect, c color.NRGBA)
		// FillGradient fills r with a vertical gradient.
		FillGradient(r Rect, stops ...GradientStop)
		StrokeLine(from, to Point, c color.NRGBA)
		FillText(s string, x, y float64, f Font, c color.NRGBA, align TextAlign)
		MeasureText(s string, f Font) float64
		DrawImage(img image.Image, r Rect)
	}

	GradientStop struct {
		Offset float64 // 0 = top, 1 = bottom
		Color  color.NRGBA
	}

	// TextAlign tells which end of the text x refers to.
	TextAlign int

	// Mount is the host surface of the timeline: a main canvas, an overlay
	// canvas stacked on top of it, and a settable pointer cursor.
	Mount interface {
		Canvas() Canvas
		Overlay() Canvas
		// AvailableWidth is the width the timeline should use when none is
		// given explicitly.
		AvailableWidth() int
		SetCursor(cursor string)
		RightToLeft() bool
	}
)

const (
	AlignLeft TextAlign = iota
	AlignRight
)

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Image returns the pixel rectangle covering r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(math.Floor(r.X)), int(math.Floor(r.Y)), int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)))
}

// fitText shortens s with an ellipsis until it fits in width.
func fitText(c Canvas, s string, f Font, width float64) string {
	if width <= 0 {
		return ""
	}
	if c.MeasureText(s, f) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[:len(r)-1]
		if t := string(r) + "..."; c.MeasureText(t, f) <= width {
			return t
		}
	}
	return ""
}

// GradientAt returns the color of the gradient at offset o. The stops must
// be ordered by offset.
func GradientAt(stops []GradientStop, o float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if o <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if o <= b.Offset {
			if b.Offset == a.Offset {
				return b.Color
			}
			return Lerp(a.Color, b.Color, (o-a.Offset)/(b.Offset-a.Offset))
		}
	}
	return stops[len(stops)-1].Color
}
