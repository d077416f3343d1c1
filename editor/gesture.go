package editor

import "time"

type (
	// interaction is the pointer state of the timeline: the tool mode and
	// the gesture started by the last press.
	interaction struct {
		tool    ToolMode
		gesture gesture
		downPos Point
		pos     Point
		cursor  Glyph
	}

	gestureKind int

	// gesture is the drag in progress. Only the fields of its kind are used.
	gesture struct {
		kind    gestureKind
		element Element // gestureElement
		owner   string  // gestureElement: id of the track owning element
		index   int     // gestureReorder: index of the dragged track
		timer   Timer   // gestureAutoScroll, gestureAutoResize
	}
)

const (
	gestureNone gestureKind = iota
	gestureSlider
	gestureScrub
	gestureElement
	gestureReorder
	gestureRepeat
	gestureAutoScroll
	gestureAutoResize
	numGestures
)

const motionInterval = 10 * time.Millisecond

var (
	moveTable = [numGestures]func(t *Timeline, p Point){
		gestureNone:       (*Timeline).updateCursor,
		gestureSlider:     func(t *Timeline, p Point) { t.slider.MouseMove(p) },
		gestureScrub:      func(t *Timeline, p Point) { t.seek(p.X) },
		gestureElement:    func(t *Timeline, p Point) { t.state.gesture.element.MouseMove(p) },
		gestureReorder:    (*Timeline).reorderTo,
		gestureRepeat:     func(t *Timeline, p Point) { t.updateABPoints(p); t.updateCursor(p) },
		gestureAutoScroll: func(t *Timeline, p Point) {},
		gestureAutoResize: func(t *Timeline, p Point) {},
	}

	upTable = [numGestures]func(t *Timeline, g gesture, p Point){
		gestureNone:       func(t *Timeline, g gesture, p Point) {},
		gestureSlider:     func(t *Timeline, g gesture, p Point) { t.slider.MouseUp(p); t.RedrawAudio() },
		gestureScrub:      func(t *Timeline, g gesture, p Point) { t.updateCursor(p) },
		gestureElement:    func(t *Timeline, g gesture, p Point) { g.element.MouseUp(p) },
		gestureReorder:    func(t *Timeline, g gesture, p Point) {},
		gestureRepeat:     func(t *Timeline, g gesture, p Point) { t.repeat.dragging = false; t.checkRepeatOn() },
		gestureAutoScroll: func(t *Timeline, g gesture, p Point) { t.RedrawAudio() },
		gestureAutoResize: func(t *Timeline, g gesture, p Point) { t.RedrawAudio() },
	}
)

// Tool returns the current tool mode.
func (t *Timeline) Tool() ToolMode { return t.state.tool }

// SetTool changes the tool mode. A gesture in progress is finished as if
// the pointer was released where it last was, so no timer outlives the mode
// that started it.
func (t *Timeline) SetTool(mode ToolMode) {
	if mode < 0 || mode >= NumTools || mode == t.state.tool {
		return
	}
	t.endGesture(t.state.pos)
	t.state.tool = mode
	t.state.cursor = ""
	t.updateCursor(t.state.pos)
}

func (t *Timeline) beginGesture(g gesture) {
	t.endGesture(t.state.pos)
	t.state.gesture = g
}

// endGesture runs the release handler of the current gesture, stops its
// timer and returns to gestureNone.
func (t *Timeline) endGesture(p Point) {
	g := t.state.gesture
	if g.kind == gestureNone {
		return
	}
	if g.timer != nil {
		g.timer.Stop()
	}
	t.state.gesture = gesture{}
	upTable[g.kind](t, g, p)
}

// dropTrackGesture abandons an element drag belonging to the given track,
// without running its release handler.
func (t *Timeline) dropTrackGesture(trackID string) {
	if g := t.state.gesture; g.kind == gestureElement && g.owner == trackID {
		t.state.gesture = gesture{}
	}
}

// Gesturing reports whether a drag is in progress.
func (t *Timeline) Gesturing() bool { return t.state.gesture.kind != gestureNone }
