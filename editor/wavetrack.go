package editor

import (
	"github.com/viterin/vek/vek32"
)

type (
	// WaveTrack is an AudioTrack drawing the waveform of mono samples as the
	// minimum and maximum sample of each pixel column.
	WaveTrack struct {
		tl         *Timeline
		id         string
		samples    []float32
		sampleRate int
		width      int

		peaks   []peak
		peakKey peakKey
	}

	peak struct{ min, max float32 }

	peakKey struct {
		start, end float64
		width      int
	}
)

func NewWaveTrack(tl *Timeline, id string, samples []float32, sampleRate int) *WaveTrack {
	return &WaveTrack{tl: tl, id: id, samples: samples, sampleRate: sampleRate, width: tl.width}
}

func (w *WaveTrack) ID() string { return w.id }

func (w *WaveTrack) SetWidth(width int) {
	w.width = width
	w.peaks = nil
}

// Duration returns the length of the audio, in seconds.
func (w *WaveTrack) Duration() float64 {
	if w.sampleRate <= 0 {
		return 0
	}
	return float64(len(w.samples)) / float64(w.sampleRate)
}

func (w *WaveTrack) Redraw() {
	w.peaks = nil
	w.Render()
}

// Render draws the waveform in the bands of the active tracks bound to it.
func (w *WaveTrack) Render() {
	tl := w.tl
	var peaks []peak
	for i, track := range tl.tracks {
		if track.AudioID() != w.id || !track.Active() {
			continue
		}
		if peaks == nil {
			peaks = w.computePeaks()
		}
		b := tl.band(i)
		tl.overlay.ClearRect(b)
		mid := b.Y + b.H/2
		col := tl.colors.Waveform.NRGBA()
		for x, pk := range peaks {
			if pk.min == 0 && pk.max == 0 {
				continue
			}
			y0 := mid - float64(min(pk.max, 1))*b.H/2
			y1 := mid - float64(max(pk.min, -1))*b.H/2
			tl.overlay.FillRect(Rect{X: float64(x), Y: y0, W: 1, H: max(y1-y0, 1)}, col)
		}
	}
}

// computePeaks returns the peaks of the visible window, one per pixel
// column, reusing the previous result if the window has not changed.
func (w *WaveTrack) computePeaks() []peak {
	v := w.tl.view
	key := peakKey{start: v.Start(), end: v.End(), width: w.width}
	if w.peaks != nil && key == w.peakKey {
		return w.peaks
	}
	peaks := make([]peak, max(w.width, 0))
	rate := float64(w.sampleRate)
	n := len(w.samples)
	for x := range peaks {
		s0 := int(v.PixelToTime(float64(x)) * rate)
		s1 := int(v.PixelToTime(float64(x+1)) * rate)
		s0, s1 = min(max(s0, 0), n), min(max(s1, 0), n)
		if s1 <= s0 {
			if s0 >= n {
				continue
			}
			s1 = s0 + 1
		}
		seg := w.samples[s0:s1]
		peaks[x] = peak{min: vek32.Min(seg), max: vek32.Max(seg)}
	}
	w.peaks, w.peakKey = peaks, key
	return peaks
}
