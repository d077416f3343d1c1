package editor

import (
	"fmt"
	"strings"

	"github.com/vsariola/timeline"
)

type (
	// Export is one serialized track.
	Export struct {
		Collection string
		Format     string
		Name       string
		Data       []byte
	}

	// ExportNameData is the dot of the export name template.
	ExportNameData struct {
		ID, Label, Kind, Lang string
		Ext, MIME, Format     string
	}
)

// ExportTracks serializes the tracks with the given ids, or all the tracks
// if no ids are given, in the given format (a name, MIME type or extension).
func (t *Timeline) ExportTracks(format string, ids ...string) ([]Export, error) {
	f, err := timeline.LookupFormat(format)
	if err != nil {
		return nil, err
	}
	tracks := t.tracks
	if len(ids) > 0 {
		tracks = make([]TextTrack, 0, len(ids))
		for _, id := range ids {
			track, ok := t.Track(id)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownTrack, id)
			}
			tracks = append(tracks, track)
		}
	}
	ret := make([]Export, 0, len(tracks))
	for _, track := range tracks {
		data, err := track.Serialize(f)
		if err != nil {
			return nil, fmt.Errorf("serializing track %q: %w", track.ID(), err)
		}
		name, err := t.exportFileName(track, f)
		if err != nil {
			return nil, err
		}
		ret = append(ret, Export{Collection: "tracks", Format: format, Name: name, Data: data})
	}
	return ret, nil
}

func (t *Timeline) exportFileName(track TextTrack, f timeline.Format) (string, error) {
	var b strings.Builder
	err := t.exportName.Execute(&b, ExportNameData{
		ID:     track.ID(),
		Label:  track.Label(),
		Kind:   track.Kind(),
		Lang:   track.Lang(),
		Ext:    f.Ext,
		MIME:   f.MIME,
		Format: f.Name,
	})
	if err != nil {
		return "", fmt.Errorf("export name template: %w", err)
	}
	return b.String(), nil
}
