package editor_test

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/timeline"
	"github.com/vsariola/timeline/editor"
)

func TestNewRejectsMissingMount(t *testing.T) {
	_, err := editor.New(nil, editor.Params{})
	assert.ErrorIs(t, err, editor.ErrInvalidMount)
}

func TestNewDefaults(t *testing.T) {
	tl, _, _ := newTimeline(t)
	assert.Equal(t, testWidth, tl.Width())
	assert.Equal(t, 1800.0, tl.Length())
	assert.Equal(t, 0.0, tl.View().Start())
	assert.Equal(t, 60.0, tl.View().End())
	assert.Equal(t, editor.Select, tl.Tool())
	assert.True(t, tl.AutoSelect())
	assert.Equal(t, 60.0, tl.Height())
}

func TestTrackLayout(t *testing.T) {
	tl, m, _ := newTimeline(t)
	addTrack(t, tl, "a")
	addTrack(t, tl, "b")
	addTrack(t, tl, "c")
	assert.Equal(t, []string{"a", "b", "c"}, ids(tl.Tracks()))
	assert.Equal(t, 240.0, tl.Height())
	assert.Equal(t, 240, m.Main().Height())
	for i, id := range []string{"a", "b", "c"} {
		assert.Equal(t, 35+60*float64(i), tl.TrackTop(id))
	}
	tl.RemoveTextTrack("b")
	assert.Equal(t, []string{"a", "c"}, ids(tl.Tracks()))
	assert.Equal(t, 95.0, tl.TrackTop("c"))
	assert.True(t, math.IsNaN(tl.TrackTop("b")))
	assert.Equal(t, 180.0, tl.Height())
	tl.RemoveTextTrack("b") // unknown ids are ignored
	assert.Len(t, tl.Tracks(), 2)
}

func TestIndexAt(t *testing.T) {
	tl, _, _ := newTimeline(t)
	addTrack(t, tl, "a")
	addTrack(t, tl, "b")
	tests := []struct {
		y    float64
		want int
	}{
		{10, -1}, {34, -1}, {35, 0}, {85, 0}, {90, -1}, {95, 1}, {145, 1}, {150, -1}, {500, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tl.IndexAt(pt(10, tt.y)), "y=%v", tt.y)
	}
	assert.Nil(t, tl.TrackAt(pt(10, 90)))
	assert.Equal(t, "b", tl.TrackAt(pt(10, 100)).ID())
}

func TestDuplicateTrack(t *testing.T) {
	tl, _, _ := newTimeline(t)
	addTrack(t, tl, "a")
	addTrack(t, tl, "b")
	err := tl.AddTrackData(timeline.TrackData{Label: "a"}, false)
	require.True(t, errors.Is(err, editor.ErrDuplicateIdentifier))
	events := record(tl, editor.EventAddTrack, editor.EventRemoveTrack)
	replacement := editor.NewCueTrack(tl, timeline.TrackData{Label: "a", Cues: []timeline.Cue{{Start: 1, End: 2}}})
	require.NoError(t, tl.AddTextTrack(replacement, true))
	assert.Equal(t, []editor.EventName{editor.EventRemoveTrack, editor.EventAddTrack}, events.names())
	assert.Equal(t, []string{"a", "b"}, ids(tl.Tracks()))
	got, _ := tl.Track("a")
	assert.Same(t, replacement, got)
	assert.Equal(t, 180.0, tl.Height())
}

func TestAudioReferences(t *testing.T) {
	tl, _, _ := newTimeline(t)
	addTrack(t, tl, "a")
	addTrack(t, tl, "b")
	require.NoError(t, tl.AddWaveform("w", constant(48000, 0.5), 8000))
	assert.ErrorIs(t, tl.AddWaveform("w", nil, 8000), editor.ErrDuplicateIdentifier)

	tl.SetAudioTrack("a", "w")
	tl.SetAudioTrack("b", "w")
	tl.SetAudioTrack("b", "w") // binding twice does not count twice
	refs, ok := tl.AudioReferences("w")
	require.True(t, ok)
	assert.Equal(t, 2, refs)

	tl.UnsetAudioTrack("a")
	refs, _ = tl.AudioReferences("w")
	assert.Equal(t, 1, refs)

	tl.RemoveTextTrack("b")
	refs, _ = tl.AudioReferences("w")
	assert.Equal(t, 0, refs)

	tl.SetAudioTrack("a", "missing")
	a, _ := tl.Track("a")
	assert.Equal(t, "missing", a.AudioID())
}

func TestBindBeforeAudioIsAdded(t *testing.T) {
	tl, _, _ := newTimeline(t)
	addTrack(t, tl, "a")
	require.NoError(t, tl.AddWaveform("v", constant(100, 0.5), 10))
	tl.SetAudioTrack("a", "v")
	tl.SetAudioTrack("a", "w") // w is not loaded yet, v is released
	refs, _ := tl.AudioReferences("v")
	assert.Equal(t, 0, refs)
	a, _ := tl.Track("a")
	assert.Equal(t, "w", a.AudioID())

	require.NoError(t, tl.AddWaveform("w", constant(100, 0.5), 10))
	refs, ok := tl.AudioReferences("w")
	require.True(t, ok)
	assert.Equal(t, 1, refs)
}

func TestAudioReattach(t *testing.T) {
	tl, _, _ := newTimeline(t)
	addTrack(t, tl, "a")
	require.NoError(t, tl.AddWaveform("w", constant(100, 0.5), 10))
	tl.SetAudioTrack("a", "w")
	tl.RemoveAudioTrack("w")
	_, ok := tl.AudioReferences("w")
	assert.False(t, ok)
	a, _ := tl.Track("a")
	assert.Equal(t, "w", a.AudioID())
	require.NoError(t, tl.AddWaveform("w", constant(100, 0.5), 10))
	refs, _ := tl.AudioReferences("w")
	assert.Equal(t, 1, refs)
}

func TestOverwriteMovesReference(t *testing.T) {
	tl, _, _ := newTimeline(t)
	addTrack(t, tl, "a")
	require.NoError(t, tl.AddWaveform("w", nil, 10))
	require.NoError(t, tl.AddWaveform("v", nil, 10))
	tl.SetAudioTrack("a", "w")
	replacement := editor.NewCueTrack(tl, timeline.TrackData{Label: "a"})
	replacement.SetAudioID("v")
	require.NoError(t, tl.AddTextTrack(replacement, true))
	w, _ := tl.AudioReferences("w")
	v, _ := tl.AudioReferences("v")
	assert.Equal(t, 0, w)
	assert.Equal(t, 1, v)
}

func TestWaveformOnOverlay(t *testing.T) {
	tl, m, _ := newTimeline(t)
	addTrack(t, tl, "a")
	require.NoError(t, tl.AddWaveform("w", constant(60*100, 0.5), 100))
	tl.SetAudioTrack("a", "w")
	// band 0 is y = 35..85, so the peak at 0.5 is drawn at y = 60-12.5
	assert.NotEqual(t, color.RGBA{}, m.OverlayCanvas().At(10, 47))
	tl.RemoveAudioTrack("w")
	assert.Equal(t, color.RGBA{}, m.OverlayCanvas().At(10, 47))
}

func TestAddSegment(t *testing.T) {
	tl, _, _ := newTimeline(t)
	a := addTrack(t, tl, "a")
	tl.AddSegment("a", timeline.Cue{Start: 1, End: 2, Text: "hi"}, true)
	tl.AddSegment("missing", timeline.Cue{Start: 1, End: 2}, true)
	require.Equal(t, 1, a.Cues().Len())
	assert.Len(t, a.Selected(), 1)
	assert.NotEmpty(t, a.Cues().Cues()[0].ID)
}
