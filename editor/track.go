package editor

import "github.com/vsariola/timeline"

type (
	// TextTrack is a track of timed text drawn in its own band of the
	// timeline.
	TextTrack interface {
		ID() string
		Label() string
		Kind() string
		Lang() string
		// AudioID is the id of the audio track the track is bound to, or ""
		// if it is not bound.
		AudioID() string
		SetAudioID(id string)
		// Active tracks show the waveform of their audio track.
		Active() bool
		Cues() *timeline.CueList
		// Render draws the track into its band of the main canvas.
		Render()
		// MouseDown is called when the pointer is pressed over the track in
		// one of the tool modes SELECT, MOVE, CREATE or DELETE. The returned
		// Element, if any, receives the rest of the drag.
		MouseDown(p Point) Element
		Cursor(p Point) Glyph
		Serialize(f timeline.Format) ([]byte, error)
		Add(c timeline.Cue, selected bool)
	}

	// Element is the part of a track being dragged.
	Element interface {
		MouseMove(p Point)
		MouseUp(p Point)
	}

	// AudioTrack draws the waveform of an audio source on the overlay
	// canvas, in the bands of the active tracks bound to it.
	AudioTrack interface {
		ID() string
		SetWidth(w int)
		Render()
		// Redraw drops any cached drawing state and renders again.
		Redraw()
	}
)
