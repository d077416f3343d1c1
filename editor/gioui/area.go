package gioui

import (
	"image"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/vsariola/timeline/editor"
	"github.com/vsariola/timeline/editor/raster"
)

// TimelineArea shows the canvases of a raster mount and passes the pointer
// events over it to the timeline.
type TimelineArea struct {
	mount      *raster.Mount
	imageOp    paint.ImageOp
	generation uint64
	painted    bool
	last       editor.Point
	pressed    bool
}

func NewTimelineArea(mount *raster.Mount) *TimelineArea {
	return &TimelineArea{mount: mount}
}

func (a *TimelineArea) Layout(gtx C, tl *editor.Timeline) D {
	if w := gtx.Constraints.Max.X; w > 0 && w != a.mount.AvailableWidth() {
		a.mount.SetAvailableWidth(w)
		tl.SetWidth(w)
	}
	a.update(gtx, tl)
	if g := a.mount.Generation(); !a.painted || g != a.generation {
		a.imageOp = paint.NewImageOp(a.mount.Composite())
		a.generation = g
		a.painted = true
	}
	size := image.Pt(tl.Width(), int(tl.Height()))
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, a)
	cursorFor(a.mount.Cursor()).Add(gtx.Ops)
	a.imageOp.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	return D{Size: size}
}

func (a *TimelineArea) update(gtx C, tl *editor.Timeline) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  a,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Move | pointer.Scroll | pointer.Leave | pointer.Cancel,
			ScrollY: pointer.ScrollRange{Min: -1e6, Max: 1e6},
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		p := editor.Point{X: float64(e.Position.X), Y: float64(e.Position.Y)}
		switch e.Kind {
		case pointer.Press:
			if e.Buttons&pointer.ButtonPrimary == 0 {
				continue
			}
			a.pressed = true
			tl.PointerDown(p)
		case pointer.Drag, pointer.Move:
			tl.PointerMove(p)
		case pointer.Release:
			if a.pressed {
				a.pressed = false
				tl.PointerUp(p)
			}
		case pointer.Cancel:
			if a.pressed {
				a.pressed = false
				tl.PointerUp(a.last)
			}
		case pointer.Leave:
			if !a.pressed {
				tl.PointerLeave(p)
			}
		case pointer.Scroll:
			switch {
			case e.Scroll.Y < 0:
				tl.Wheel(p, 1)
			case e.Scroll.Y > 0:
				tl.Wheel(p, -1)
			}
		}
		a.last = p
	}
}
