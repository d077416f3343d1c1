package editor

type (
	// Action describes a user action that can be performed on the timeline,
	// which can be initiated by calling the Do() method. It is usually
	// initiated by a button press or a menu item. Action advertises whether it
	// is enabled, so UI can e.g. gray out buttons when the underlying action is
	// not allowed. The underlying Doer can optionally implement the Enabler
	// interface to decide if the action is enabled or not; if it does not
	// implement the Enabler interface, the action is always allowed.
	Action struct {
		doer Doer
	}

	// Doer is an interface that defines a single Do() method, which is called
	// when an action is performed.
	Doer interface {
		Do()
	}

	// Enabler is an interface that defines a single Enabled() method, which
	// is used by the UI to check if an Action is enabled or not.
	Enabler interface {
		Enabled() bool
	}

	// DoFunc is a Doer that calls itself.
	DoFunc func()
)

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

func (a Action) Do() {
	e, ok := a.doer.(Enabler)
	if ok && !e.Enabled() {
		return
	}
	if a.doer != nil {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false // no doer, not allowed
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true // not enabler, always allowed
	}
	return e.Enabled()
}

func (f DoFunc) Do() { f() }

// clearRepeat
type clearRepeat Timeline

func (t *Timeline) ClearRepeatAction() Action { return MakeAction((*clearRepeat)(t)) }
func (t *clearRepeat) Enabled() bool          { return t.repeat.set }
func (t *clearRepeat) Do()                    { (*Timeline)(t).ClearRepeat() }

// selectTool
type selectTool struct {
	t    *Timeline
	mode ToolMode
}

// SelectTool returns an Action switching to the given tool mode. It is
// disabled while the mode is already selected.
func (t *Timeline) SelectTool(mode ToolMode) Action {
	return MakeAction(selectTool{t: t, mode: mode})
}
func (s selectTool) Enabled() bool { return s.t.state.tool != s.mode }
func (s selectTool) Do()           { s.t.SetTool(s.mode) }

// zoomToFit
type zoomToFit Timeline

// ZoomToFit returns an Action that shows the whole length of the timeline.
func (t *Timeline) ZoomToFit() Action { return MakeAction((*zoomToFit)(t)) }
func (t *zoomToFit) Enabled() bool {
	return t.view.Start() > 0 || t.view.End() < t.length
}
func (t *zoomToFit) Do() {
	t.view.SetWindow(0, t.length)
	(*Timeline)(t).Render()
}
