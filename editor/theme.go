package editor

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

type (
	Font struct {
		Family string  `yaml:"family"`
		Size   float64 `yaml:"size"`
	}

	// Color is a color.NRGBA written as #rgb, #rrggbb or #rrggbbaa in yaml.
	Color color.NRGBA

	Fonts struct {
		Key         Font  `yaml:"key"`
		KeyText     Color `yaml:"keyText"`
		Segment     Font  `yaml:"segment"`
		SegmentText Color `yaml:"segmentText"`
		Label       Font  `yaml:"label"`
		LabelText   Color `yaml:"labelText"`
	}

	Colors struct {
		BgTop           Color `yaml:"bgTop"`
		BgMid           Color `yaml:"bgMid"`
		BgBottom        Color `yaml:"bgBottom"`
		Track           Color `yaml:"track"`
		Segment         Color `yaml:"segment"`
		SegmentSelected Color `yaml:"segmentSelected"`
		SegmentActive   Color `yaml:"segmentActive"`
		Waveform        Color `yaml:"waveform"`
		ABRepeat        Color `yaml:"abRepeat"`
		ABRepeatLight   Color `yaml:"abRepeatLight"`
		TimeMarker      Color `yaml:"timeMarker"`
		Slider          Color `yaml:"slider"`
		SliderThumb     Color `yaml:"sliderThumb"`
		SliderHandle    Color `yaml:"sliderHandle"`
	}

	// Cursors maps the glyphs to the cursor names of the mount.
	Cursors map[Glyph]string

	Theme struct {
		Fonts   Fonts   `yaml:"fonts"`
		Colors  Colors  `yaml:"colors"`
		Cursors Cursors `yaml:"cursors"`
	}
)

//go:embed theme.yml
var defaultTheme []byte

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	var t Theme
	dec := yaml.NewDecoder(bytes.NewReader(defaultTheme))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		panic(fmt.Errorf("failed to decode the default theme: %w", err))
	}
	return t
}

// LoadTheme reads a theme from r. Anything r does not set is taken from the
// default theme.
func LoadTheme(r io.Reader) (Theme, error) {
	t := DefaultTheme()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && err != io.EOF {
		return Theme{}, fmt.Errorf("yaml.Decode: %w", err)
	}
	return t, nil
}

// Lookup returns the cursor name of g, falling back to the pointer glyph
// and finally to "default".
func (c Cursors) Lookup(g Glyph) string {
	if s, ok := c[g]; ok {
		return s
	}
	if s, ok := c[GlyphPointer]; ok {
		return s
	}
	return "default"
}

func (c Color) NRGBA() color.NRGBA { return color.NRGBA(c) }

func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

func (c Color) String() string {
	hex := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
	if c.A != 255 {
		hex += fmt.Sprintf("%02x", c.A)
	}
	return hex
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Color) MarshalYAML() (any, error) { return c.String(), nil }

// Lerp interpolates between a and b in the CIE-L*a*b* space; alpha is
// interpolated linearly.
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t + 0.5)}
}
