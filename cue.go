package timeline

import (
	"slices"
	"sort"
)

type (
	// Cue is a single timed text segment of a track. Start and End are in
	// seconds from the beginning of the media.
	Cue struct {
		ID    string  `yaml:"id,omitempty" json:"id,omitempty"`
		Start float64 `yaml:"start" json:"start"`
		End   float64 `yaml:"end" json:"end"`
		Text  string  `yaml:"text" json:"text"`
	}

	// CueList keeps the cues of a track ordered by (Start, End) and remembers
	// the current playback position, so that the cues active at that position
	// can be queried.
	CueList struct {
		cues        []Cue
		currentTime float64
	}
)

func (c Cue) Duration() float64 { return c.End - c.Start }

// Contains reports whether t is within [Start, End).
func (c Cue) Contains(t float64) bool { return t >= c.Start && t < c.End }

func (c Cue) Overlaps(start, end float64) bool { return c.Start < end && c.End > start }

func NewCueList(cues ...Cue) *CueList {
	l := &CueList{}
	for _, c := range cues {
		l.Add(c)
	}
	return l
}

func (l *CueList) Len() int { return len(l.cues) }

// Cues returns a copy of the cues, in order.
func (l *CueList) Cues() []Cue { return slices.Clone(l.cues) }

func (l *CueList) Add(c Cue) {
	i := sort.Search(len(l.cues), func(i int) bool {
		o := l.cues[i]
		return o.Start > c.Start || (o.Start == c.Start && o.End > c.End)
	})
	l.cues = slices.Insert(l.cues, i, c)
}

// Remove removes the cue with the given ID and returns it. ok is false if
// no such cue exists.
func (l *CueList) Remove(id string) (c Cue, ok bool) {
	i := l.index(id)
	if i < 0 {
		return Cue{}, false
	}
	c = l.cues[i]
	l.cues = slices.Delete(l.cues, i, i+1)
	return c, true
}

// Update replaces the cue having the same ID as c, keeping the list sorted.
func (l *CueList) Update(c Cue) bool {
	if _, ok := l.Remove(c.ID); !ok {
		return false
	}
	l.Add(c)
	return true
}

func (l *CueList) Get(id string) (Cue, bool) {
	i := l.index(id)
	if i < 0 {
		return Cue{}, false
	}
	return l.cues[i], true
}

// At returns the cues containing t.
func (l *CueList) At(t float64) []Cue {
	var ret []Cue
	for _, c := range l.cues {
		if c.Start > t {
			break
		}
		if c.Contains(t) {
			ret = append(ret, c)
		}
	}
	return ret
}

// Between returns the cues overlapping the interval [start, end).
func (l *CueList) Between(start, end float64) []Cue {
	var ret []Cue
	for _, c := range l.cues {
		if c.Start >= end {
			break
		}
		if c.Overlaps(start, end) {
			ret = append(ret, c)
		}
	}
	return ret
}

func (l *CueList) SetCurrentTime(t float64) { l.currentTime = t }

func (l *CueList) CurrentTime() float64 { return l.currentTime }

// Active returns the cues containing the current time.
func (l *CueList) Active() []Cue { return l.At(l.currentTime) }

func (l *CueList) index(id string) int {
	return slices.IndexFunc(l.cues, func(c Cue) bool { return c.ID == id })
}
