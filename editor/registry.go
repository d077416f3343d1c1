package editor

import (
	"fmt"
	"math"
	"slices"

	"github.com/vsariola/timeline"
)

// Tracks returns the text tracks, top to bottom.
func (t *Timeline) Tracks() []TextTrack { return slices.Clone(t.tracks) }

func (t *Timeline) Track(id string) (TextTrack, bool) {
	i, ok := t.trackIndices[id]
	if !ok {
		return nil, false
	}
	return t.tracks[i], true
}

func (t *Timeline) AudioTrack(id string) (AudioTrack, bool) {
	e, ok := t.audio[id]
	if !ok {
		return nil, false
	}
	return e.track, true
}

// AudioReferences returns the number of text tracks bound to the audio track.
func (t *Timeline) AudioReferences(id string) (int, bool) {
	e, ok := t.audio[id]
	if !ok {
		return 0, false
	}
	return e.references, true
}

// AddTextTrack adds track at the bottom of the timeline. If a track with the
// same id exists, it is replaced in place when overwrite is true; otherwise
// ErrDuplicateIdentifier is returned.
func (t *Timeline) AddTextTrack(track TextTrack, overwrite bool) error {
	id := track.ID()
	if i, ok := t.trackIndices[id]; ok {
		if !overwrite {
			return fmt.Errorf("%w: track %q", ErrDuplicateIdentifier, id)
		}
		t.swapTrack(i, track)
		return nil
	}
	track.Cues().SetCurrentTime(t.timeMarkerPos)
	t.trackIndices[id] = len(t.tracks)
	t.tracks = append(t.tracks, track)
	t.retain(track.AudioID())
	t.setHeight(t.height + TrackHeight + TrackPadding)
	t.Render()
	t.emit(EventAddTrack, 0, track)
	return nil
}

// AddTrackData creates a CueTrack from data and adds it. The id of the new
// track is the label of the data; duplicates are checked against it.
func (t *Timeline) AddTrackData(data timeline.TrackData, overwrite bool) error {
	if data.Label == "" {
		data.Label = data.ID
	}
	data.ID = data.Label
	if _, ok := t.trackIndices[data.ID]; ok && !overwrite {
		return fmt.Errorf("%w: track %q", ErrDuplicateIdentifier, data.ID)
	}
	return t.AddTextTrack(NewCueTrack(t, data), overwrite)
}

func (t *Timeline) swapTrack(i int, track TextTrack) {
	old := t.tracks[i]
	t.release(old.AudioID())
	t.retain(track.AudioID())
	track.Cues().SetCurrentTime(t.timeMarkerPos)
	t.tracks[i] = track
	t.dropTrackGesture(old.ID())
	t.stack.RemoveEvents(old.ID())
	t.RenderTrack(track)
	t.renderAudioFor(i)
	t.emit(EventRemoveTrack, 0, old)
	t.emit(EventAddTrack, 0, track)
}

// RemoveTextTrack removes the track with the given id. Unknown ids are
// ignored.
func (t *Timeline) RemoveTextTrack(id string) {
	i, ok := t.trackIndices[id]
	if !ok {
		return
	}
	track := t.tracks[i]
	t.release(track.AudioID())
	t.tracks = slices.Delete(t.tracks, i, i+1)
	delete(t.trackIndices, id)
	for j := i; j < len(t.tracks); j++ {
		t.trackIndices[t.tracks[j].ID()] = j
	}
	t.dropTrackGesture(id)
	if t.state.gesture.kind == gestureReorder {
		t.endGesture(t.state.pos)
	}
	t.stack.RemoveEvents(id)
	t.setHeight(t.height - TrackHeight - TrackPadding)
	t.Render()
	t.emit(EventRemoveTrack, 0, track)
}

// AddAudioTrack registers an audio track. Text tracks already bound to its id
// start referencing it.
func (t *Timeline) AddAudioTrack(track AudioTrack) error {
	id := track.ID()
	if _, ok := t.audio[id]; ok {
		return fmt.Errorf("%w: audio track %q", ErrDuplicateIdentifier, id)
	}
	refs := 0
	for _, tr := range t.tracks {
		if tr.AudioID() == id {
			refs++
		}
	}
	track.SetWidth(t.width)
	t.audio[id] = &audioEntry{track: track, references: refs}
	t.audioOrder = append(t.audioOrder, id)
	t.Render()
	return nil
}

// AddWaveform registers a WaveTrack for the given mono samples.
func (t *Timeline) AddWaveform(id string, samples []float32, sampleRate int) error {
	return t.AddAudioTrack(NewWaveTrack(t, id, samples, sampleRate))
}

// RemoveAudioTrack unregisters an audio track, clearing its waveform from the
// overlay. The text tracks stay bound to the id.
func (t *Timeline) RemoveAudioTrack(id string) {
	e, ok := t.audio[id]
	if !ok {
		return
	}
	if e.references > 0 {
		for i, tr := range t.tracks {
			if tr.AudioID() == id {
				t.overlay.ClearRect(t.band(i))
			}
		}
	}
	delete(t.audio, id)
	t.audioOrder = slices.DeleteFunc(t.audioOrder, func(s string) bool { return s == id })
}

// SetAudioTrack binds the text track to the audio track, releasing a
// previous binding first. The audio track does not have to be added yet; the
// binding takes effect when it is.
func (t *Timeline) SetAudioTrack(trackID, audioID string) {
	i, ok := t.trackIndices[trackID]
	if !ok {
		return
	}
	track := t.tracks[i]
	if track.AudioID() == audioID {
		return
	}
	t.release(track.AudioID())
	track.SetAudioID(audioID)
	t.overlay.ClearRect(t.band(i))
	if e, ok := t.audio[audioID]; ok {
		e.references++
		e.track.Render()
	}
}

// UnsetAudioTrack unbinds the text track from its audio track.
func (t *Timeline) UnsetAudioTrack(trackID string) {
	i, ok := t.trackIndices[trackID]
	if !ok {
		return
	}
	track := t.tracks[i]
	if track.AudioID() == "" {
		return
	}
	t.release(track.AudioID())
	track.SetAudioID("")
	t.overlay.ClearRect(t.band(i))
}

// AddSegment adds a cue to the track and repaints it.
func (t *Timeline) AddSegment(trackID string, c timeline.Cue, selected bool) {
	track, ok := t.Track(trackID)
	if !ok {
		return
	}
	track.Add(c, selected)
	t.RenderTrack(track)
}

func (t *Timeline) retain(audioID string) {
	if e, ok := t.audio[audioID]; ok {
		e.references++
	}
}

func (t *Timeline) release(audioID string) {
	if e, ok := t.audio[audioID]; ok && e.references > 0 {
		e.references--
	}
}

// TrackTop returns the y coordinate of the top of the track, or NaN if there
// is no such track.
func (t *Timeline) TrackTop(id string) float64 {
	i, ok := t.trackIndices[id]
	if !ok {
		return math.NaN()
	}
	return trackTop(i)
}

func trackTop(i int) float64 {
	return KeyHeight + TrackPadding + float64(i)*(TrackHeight+TrackPadding)
}

// band returns the rectangle of the i:th track.
func (t *Timeline) band(i int) Rect {
	return Rect{X: 0, Y: trackTop(i), W: float64(t.width), H: TrackHeight}
}

// IndexAt returns the index of the track whose band contains p, or -1.
func (t *Timeline) IndexAt(p Point) int {
	rel := p.Y - trackTop(0)
	if rel < 0 {
		return -1
	}
	i := int(rel / (TrackHeight + TrackPadding))
	if i >= len(t.tracks) || rel-float64(i)*(TrackHeight+TrackPadding) > TrackHeight {
		return -1
	}
	return i
}

// TrackAt returns the track whose band contains p, or nil.
func (t *Timeline) TrackAt(p Point) TextTrack {
	if i := t.IndexAt(p); i >= 0 {
		return t.tracks[i]
	}
	return nil
}

func (t *Timeline) indexOf(track TextTrack) int {
	if i, ok := t.trackIndices[track.ID()]; ok && t.tracks[i] == track {
		return i
	}
	return -1
}

// swapTracks exchanges the positions of two tracks.
func (t *Timeline) swapTracks(i, j int) {
	t.tracks[i], t.tracks[j] = t.tracks[j], t.tracks[i]
	t.trackIndices[t.tracks[i].ID()] = i
	t.trackIndices[t.tracks[j].ID()] = j
}
