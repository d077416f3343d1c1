package gioui

import "gioui.org/io/pointer"

// cursors maps the CSS cursor names of the theme to Gio cursors.
var cursors = map[string]pointer.Cursor{
	"default":     pointer.CursorDefault,
	"pointer":     pointer.CursorPointer,
	"crosshair":   pointer.CursorCrosshair,
	"move":        pointer.CursorAllScroll,
	"grab":        pointer.CursorGrab,
	"grabbing":    pointer.CursorGrabbing,
	"not-allowed": pointer.CursorNotAllowed,
	"col-resize":  pointer.CursorColResize,
	"row-resize":  pointer.CursorRowResize,
	"ns-resize":   pointer.CursorNorthSouthResize,
	"ew-resize":   pointer.CursorEastWestResize,
	"w-resize":    pointer.CursorWestResize,
	"e-resize":    pointer.CursorEastResize,
	"text":        pointer.CursorText,
	"wait":        pointer.CursorWait,
}

func cursorFor(name string) pointer.Cursor {
	if c, ok := cursors[name]; ok {
		return c
	}
	return pointer.CursorDefault
}
