package editor_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/timeline/editor"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}},
		{"#00ff0080", color.NRGBA{G: 255, A: 128}},
		{" #0000ff ", color.NRGBA{B: 255, A: 255}},
	}
	for _, c := range cases {
		got, err := editor.ParseColor(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got.NRGBA(), c.in)
	}
	_, err := editor.ParseColor("red")
	assert.Error(t, err)
	c, _ := editor.ParseColor("#ff174440")
	assert.Equal(t, "#ff174440", c.String())
}

func TestLoadThemeOverridesDefaults(t *testing.T) {
	th, err := editor.LoadTheme(strings.NewReader("colors:\n  timeMarker: \"#00ff00\"\ncursors:\n  create: cell\n"))
	require.NoError(t, err)
	def := editor.DefaultTheme()
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, th.Colors.TimeMarker.NRGBA())
	assert.Equal(t, def.Colors.Segment, th.Colors.Segment)
	assert.Equal(t, "cell", th.Cursors.Lookup(editor.GlyphCreate))
	assert.Equal(t, def.Cursors.Lookup(editor.GlyphMove), th.Cursors.Lookup(editor.GlyphMove))

	_, err = editor.LoadTheme(strings.NewReader("colours: {}\n"))
	assert.Error(t, err)
}

func TestCursorLookupFallsBack(t *testing.T) {
	c := editor.Cursors{editor.GlyphPointer: "default"}
	assert.Equal(t, "default", c.Lookup(editor.GlyphRepeatA))
	assert.Equal(t, "default", editor.Cursors{}.Lookup(editor.GlyphRepeatA))
}

func TestDefaultConfig(t *testing.T) {
	p := editor.DefaultConfig().Params()
	assert.Equal(t, 1800.0, p.Length)
	assert.Equal(t, 60.0, p.End)
	assert.Equal(t, editor.Select, p.Tool)
	require.NotNil(t, p.AutoSelect)
	assert.True(t, *p.AutoSelect)
	tl, _, _ := newTimelineWith(t, p)
	assert.Equal(t, 1800.0, tl.Length())
}

func TestToolModeText(t *testing.T) {
	for m := editor.Select; m < editor.NumTools; m++ {
		got, err := editor.ParseToolMode(strings.ToUpper(m.String()))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := editor.ParseToolMode("lasso")
	assert.Error(t, err)
}
