package gioui

import (
	"log"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/vsariola/timeline/editor"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	// Toolbar has a button per tool mode, followed by the buttons of the
	// other actions of the editor.
	Toolbar struct {
		toolBtns [editor.NumTools]widget.Clickable
		actions  []toolbarAction
	}

	toolbarAction struct {
		btn    widget.Clickable
		icon   []byte
		tip    string
		action func() editor.Action
	}
)

var toolIcons = [editor.NumTools]struct {
	icon []byte
	tip  string
}{
	editor.Select: {icons.ActionTouchApp, "Select (1)"},
	editor.Order:  {icons.ActionSwapVert, "Reorder tracks (2)"},
	editor.Move:   {icons.ActionOpenWith, "Move segments (3)"},
	editor.Create: {icons.ContentAddBox, "Create segments (4)"},
	editor.Delete: {icons.ActionDelete, "Delete segments (5)"},
	editor.Repeat: {icons.AVRepeat, "AB repeat (6)"},
	editor.Scroll: {icons.ActionSwapHoriz, "Scroll (7)"},
}

var iconCache = map[*byte]*widget.Icon{}

// widgetForIcon returns a widget for IconVG data, but caching the results
func widgetForIcon(icon []byte) *widget.Icon {
	if widget, ok := iconCache[&icon[0]]; ok {
		return widget
	}
	widget, err := widget.NewIcon(icon)
	if err != nil {
		log.Fatal(err)
	}
	iconCache[&icon[0]] = widget
	return widget
}

func NewToolbar(e *Editor) *Toolbar {
	t := &Toolbar{}
	t.add(icons.ContentUndo, "Undo (Ctrl+Z)", e.History().Undo)
	t.add(icons.ContentRedo, "Redo (Ctrl+Shift+Z)", e.History().Redo)
	t.add(icons.ContentClear, "Clear AB repeat (Esc)", e.ClearRepeatAction)
	t.add(icons.EditorFormatAlignJustify, "Zoom to fit", e.ZoomToFit)
	t.add(icons.FileFolderOpen, "Load track (Ctrl+O)", e.LoadAction)
	t.add(icons.ContentSave, "Export tracks (Ctrl+S)", e.ExportAction)
	return t
}

func (t *Toolbar) add(icon []byte, tip string, action func() editor.Action) {
	t.actions = append(t.actions, toolbarAction{icon: icon, tip: tip, action: action})
}

func (t *Toolbar) Layout(gtx C, e *Editor) D {
	for i := range t.toolBtns {
		for t.toolBtns[i].Clicked(gtx) {
			e.SelectTool(editor.ToolMode(i)).Do()
		}
	}
	for i := range t.actions {
		for t.actions[i].btn.Clicked(gtx) {
			t.actions[i].action().Do()
		}
	}
	children := make([]layout.FlexChild, 0, len(t.toolBtns)+len(t.actions))
	for i := range t.toolBtns {
		mode := editor.ToolMode(i)
		children = append(children, layout.Rigid(func(gtx C) D {
			style := iconButton(e.Theme, &t.toolBtns[i], toolIcons[i].icon, toolIcons[i].tip, true)
			if e.Tool() == mode {
				style.Background = e.Theme.Palette.ContrastBg
				style.Color = e.Theme.Palette.ContrastFg
			}
			return style.Layout(gtx)
		}))
	}
	for i := range t.actions {
		a := &t.actions[i]
		children = append(children, layout.Rigid(func(gtx C) D {
			return iconButton(e.Theme, &a.btn, a.icon, a.tip, a.action().Enabled()).Layout(gtx)
		}))
	}
	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
}

func iconButton(th *material.Theme, w *widget.Clickable, icon []byte, tip string, enabled bool) material.IconButtonStyle {
	ret := material.IconButton(th, w, widgetForIcon(icon), tip)
	ret.Background = th.Palette.Bg
	ret.Inset = layout.UniformInset(unit.Dp(6))
	ret.Size = unit.Dp(20)
	if enabled {
		ret.Color = th.Palette.Fg
	} else {
		ret.Color = disabledColor
	}
	return ret
}
