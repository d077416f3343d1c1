// Package gioui is the desktop and browser front end of the timeline
// editor, built on Gio. The Timeline draws on a raster mount; Editor paints
// the composited canvases and feeds the pointer and keyboard input back.
package gioui

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/vsariola/timeline/editor"
	"github.com/vsariola/timeline/editor/raster"
)

type (
	Editor struct {
		Theme      *material.Theme
		Toolbar    *Toolbar
		Area       *TimelineArea
		PopupAlert *AlertsState
		Explorer   *explorer.Explorer
		Exploring  bool
		Title      string

		preferences Preferences

		*editor.Timeline
	}

	loadAction   Editor
	exportAction Editor

	C = layout.Context
	D = layout.Dimensions
)

var disabledColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// NewEditor creates the front end for a timeline drawing on mount.
func NewEditor(tl *editor.Timeline, mount *raster.Mount) *Editor {
	e := &Editor{
		Theme:      material.NewTheme(),
		Area:       NewTimelineArea(mount),
		PopupAlert: NewAlertsState(),
		Title:      "Timeline",
		Timeline:   tl,
	}
	e.Theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	e.Toolbar = NewToolbar(e)
	var err error
	if e.preferences, err = MakePreferences(); err != nil {
		tl.Alerts().AddAlert(editor.Alert{
			Priority: editor.Warning,
			Message:  err.Error(),
			Duration: 10 * time.Second,
		})
	}
	return e
}

// Main runs the window until it is closed, processing the messages of the
// broker in between the frames. It must be called on the goroutine owning
// the Timeline.
func (e *Editor) Main() {
	var ops op.Ops
	w := new(app.Window)
	w.Option(app.Title(e.Title), app.Size(e.preferences.WindowSize()))
	if e.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	e.Explorer = explorer.NewExplorer(w)
	acks := make(chan struct{})
	events := make(chan event.Event)
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()
	broker := e.Broker()
F:
	for {
		select {
		case msg := <-broker.ToModel:
			e.ProcessMsg(msg)
			w.Invalidate()
		case <-broker.CloseGUI:
			w.Perform(system.ActionClose)
		case ev := <-events:
			e.Explorer.ListenEvents(ev)
			switch ev := ev.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				break F
			case app.FrameEvent:
				gtx := app.NewContext(&ops, ev)
				e.Layout(gtx)
				ev.Frame(gtx.Ops)
			}
			acks <- struct{}{}
		}
	}
	close(broker.FinishedGUI)
}

func (e *Editor) Layout(gtx C) D {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, e.Theme.Palette.Bg)
	event.Op(gtx.Ops, e)
	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D { return e.Toolbar.Layout(gtx, e) }),
		layout.Rigid(func(gtx C) D {
			return layout.Inset{Left: 8, Right: 8}.Layout(gtx, material.Body2(e.Theme, e.TimeCode()).Layout)
		}),
		layout.Flexed(1, func(gtx C) D { return e.Area.Layout(gtx, e.Timeline) }),
	)
	alerts := Alerts(e.Alerts(), e.Theme, e.PopupAlert)
	alerts.Layout(gtx)
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "", Optional: key.ModShift | key.ModShortcut},
		)
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			e.keyEvent(ke)
		}
	}
	return D{Size: gtx.Constraints.Max}
}

func (e *Editor) keyEvent(ke key.Event) {
	switch {
	case ke.Modifiers.Contain(key.ModShortcut) && ke.Name == "Z":
		if ke.Modifiers.Contain(key.ModShift) {
			e.History().Redo().Do()
		} else {
			e.History().Undo().Do()
		}
	case ke.Modifiers.Contain(key.ModShortcut) && ke.Name == "O":
		e.LoadAction().Do()
	case ke.Modifiers.Contain(key.ModShortcut) && ke.Name == "S":
		e.ExportAction().Do()
	case ke.Name == key.NameEscape:
		e.ClearRepeatAction().Do()
	case len(ke.Name) == 1 && ke.Name[0] >= '1' && ke.Name[0] < '1'+byte(editor.NumTools):
		e.SelectTool(editor.ToolMode(ke.Name[0] - '1')).Do()
	}
}

// LoadAction returns an Action asking the user for a track file to load.
func (e *Editor) LoadAction() editor.Action { return editor.MakeAction((*loadAction)(e)) }
func (e *loadAction) Enabled() bool         { return !e.Exploring }
func (e *loadAction) Do() {
	ed := (*Editor)(e)
	ed.Exploring = true
	go func() {
		file, err := ed.Explorer.ChooseFile(".json", ".yml", ".yaml")
		ed.Post(func() {
			ed.Exploring = false
			if err != nil {
				if err != explorer.ErrUserDecline {
					ed.Alerts().Add(err.Error(), editor.Error)
				}
				return
			}
			ed.LoadTextTrack(editor.ReaderSource(fileName(file), file), "", "", "")
		})
	}()
}

// ExportAction returns an Action saving every track in the preferred
// format, asking the user where to save each of them.
func (e *Editor) ExportAction() editor.Action { return editor.MakeAction((*exportAction)(e)) }
func (e *exportAction) Enabled() bool         { return !e.Exploring && len(e.Tracks()) > 0 }
func (e *exportAction) Do() {
	ed := (*Editor)(e)
	exports, err := ed.ExportTracks(ed.preferences.ExportFormat)
	if err != nil {
		ed.Alerts().Add(err.Error(), editor.Error)
		return
	}
	ed.Exploring = true
	broker := ed.Broker()
	go func() {
		defer ed.Post(func() { ed.Exploring = false })
		for _, ex := range exports {
			if err := save(ed.Explorer, ex); err != nil {
				if err != explorer.ErrUserDecline {
					broker.ToModel <- editor.MsgToModel{Data: editor.Alert{Priority: editor.Error, Message: err.Error(), Duration: 3 * time.Second}}
				}
				return
			}
		}
		broker.ToModel <- editor.MsgToModel{Data: editor.Alert{
			Priority: editor.Info,
			Message:  fmt.Sprintf("Exported %d track(s)", len(exports)),
			Duration: 3 * time.Second,
		}}
	}()
}

func save(ex *explorer.Explorer, e editor.Export) error {
	w, err := ex.CreateFile(e.Name)
	if err != nil {
		return err
	}
	if _, err := w.Write(e.Data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func fileName(r io.ReadCloser) string {
	if f, ok := r.(interface{ Name() string }); ok {
		return filepath.Base(f.Name())
	}
	return ""
}
