package editor

import (
	"math"
	"strconv"

	"github.com/vsariola/timeline"
)

// minRulerPower bounds the tick increment from below to 2^minRulerPower
// seconds.
const minRulerPower = -10

// RulerIncrement returns the time between two ruler ticks and the number of
// decimals their labels need. measure(d) is the width of the widest label
// with d decimals and zoom is in seconds per pixel.
//
// The increment is the smallest power of two seconds that spans the width of
// a whole-second label. Sub-second increments get one decimal per halving,
// up to three; if the label with decimals does not fit between the ticks,
// the increment is doubled and one decimal dropped.
func RulerIncrement(measure func(decimals int) float64, zoom float64) (increment float64, decimals int) {
	power := math.Ceil(math.Log2(measure(0) * zoom))
	if math.IsNaN(power) || power < minRulerPower {
		power = minRulerPower
	}
	increment = math.Exp2(power)
	if power < 0 {
		decimals = int(-power)
		if power < -2 {
			decimals = 3
		}
		if increment/zoom < measure(decimals) {
			increment *= 2
			decimals--
		}
	}
	return increment, decimals
}

// RulerTicks returns the tick times from the last multiple of increment at
// or before start, up to but not including end.
func RulerTicks(start, end, increment float64) []float64 {
	if increment <= 0 || end <= start {
		return nil
	}
	first := start - math.Mod(start, increment)
	var ret []float64
	for i := 0; ; i++ {
		t := first + float64(i)*increment
		if t >= end {
			return ret
		}
		ret = append(ret, t)
	}
}

// rulerLabelTemplate is the widest label with the given number of decimals.
func rulerLabelTemplate(decimals int) string {
	return " 0:00:0" + strconv.FormatFloat(0, 'f', decimals, 64)
}

func (t *Timeline) renderKey() {
	c := t.canvas
	font := t.fonts.Key
	col := t.fonts.KeyText.NRGBA()
	zoom := t.view.Zoom()
	if zoom <= 0 {
		return
	}
	increment, decimals := RulerIncrement(func(d int) float64 {
		return c.MeasureText(rulerLabelTemplate(d), font)
	}, zoom)
	rtl := t.mount.RightToLeft()
	for _, tick := range RulerTicks(t.view.Start(), t.view.End(), increment) {
		x := t.view.TimeToPixel(tick)
		c.StrokeLine(Point{X: x, Y: KeyTop}, Point{X: x, Y: KeyTop + KeyHeight}, col)
		label := timeline.FormatTime(tick, decimals)
		if rtl {
			c.FillText(label, x-2, KeyTop+2, font, col, AlignRight)
		} else {
			c.FillText(label, x+2, KeyTop+2, font, col, AlignLeft)
		}
	}
}
