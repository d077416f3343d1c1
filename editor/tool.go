package editor

import (
	"fmt"
	"strings"
)

type (
	// ToolMode decides how pointer input over the tracks is interpreted.
	ToolMode int

	// Glyph is an abstract cursor shape; the Cursors of the timeline map
	// glyphs to the cursor names understood by the Mount.
	Glyph string
)

const (
	Select ToolMode = iota
	Order
	Move
	Create
	Delete
	Repeat
	Scroll
	NumTools
)

var toolNames = [NumTools]string{"select", "order", "move", "create", "delete", "repeat", "scroll"}

const (
	GlyphPointer Glyph = "pointer"
	GlyphResizeL Glyph = "resizeL"
	GlyphResizeR Glyph = "resizeR"
	GlyphMove    Glyph = "move"
	GlyphSkip    Glyph = "skip"
	GlyphRepeatA Glyph = "repeatA"
	GlyphRepeatB Glyph = "repeatB"
	GlyphOrder   Glyph = "order"

	// glyphs reported by the tracks
	GlyphSelect      Glyph = "select"
	GlyphCreate      Glyph = "create"
	GlyphRemove      Glyph = "remove"
	GlyphMoveSegment Glyph = "moveSegment"
	GlyphResizeSegL  Glyph = "resizeSegL"
	GlyphResizeSegR  Glyph = "resizeSegR"
)

func (m ToolMode) String() string {
	if m < 0 || m >= NumTools {
		return fmt.Sprintf("ToolMode(%d)", int(m))
	}
	return toolNames[m]
}

func ParseToolMode(s string) (ToolMode, error) {
	for i, n := range toolNames {
		if strings.EqualFold(n, s) {
			return ToolMode(i), nil
		}
	}
	return Select, fmt.Errorf("unknown tool mode %q", s)
}

func (m ToolMode) MarshalText() ([]byte, error) {
	if m < 0 || m >= NumTools {
		return nil, fmt.Errorf("invalid tool mode %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *ToolMode) UnmarshalText(b []byte) error {
	v, err := ParseToolMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
