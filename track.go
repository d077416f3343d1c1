package timeline

import "slices"

// TrackData is the serialized form of a text track: its identity, the kind
// of text it carries (subtitles, captions, chapters...), its language and the
// cues.
type TrackData struct {
	ID    string `yaml:"id,omitempty" json:"id,omitempty"`
	Label string `yaml:"label" json:"label"`
	Kind  string `yaml:"kind,omitempty" json:"kind,omitempty"`
	Lang  string `yaml:"lang,omitempty" json:"lang,omitempty"`
	Cues  []Cue  `yaml:"cues" json:"cues"`
}

func (t *TrackData) Copy() TrackData {
	return TrackData{
		ID:    t.ID,
		Label: t.Label,
		Kind:  t.Kind,
		Lang:  t.Lang,
		Cues:  slices.Clone(t.Cues),
	}
}

// Length returns the end time of the last ending cue.
func (t *TrackData) Length() float64 {
	var ret float64
	for _, c := range t.Cues {
		ret = max(ret, c.End)
	}
	return ret
}
