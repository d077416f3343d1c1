package timeline

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Format describes a serialization format for text tracks. Unmarshal is nil
// for formats that can only be written.
type Format struct {
	Name      string
	MIME      string
	Ext       string
	Marshal   func(TrackData) ([]byte, error)
	Unmarshal func([]byte) (TrackData, error)
}

var ErrUnsupportedFormat = errors.New("unsupported format")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	formatsMu sync.RWMutex
	formats   = map[string]Format{}
)

func init() {
	RegisterFormat(Format{Name: "vtt", MIME: "text/vtt", Ext: "vtt", Marshal: marshalVTT})
	RegisterFormat(Format{Name: "srt", MIME: "application/x-subrip", Ext: "srt", Marshal: marshalSRT})
	RegisterFormat(Format{Name: "json", MIME: "application/json", Ext: "json", Marshal: marshalJSON, Unmarshal: unmarshalJSON})
	RegisterFormat(Format{Name: "yaml", MIME: "application/yaml", Ext: "yml", Marshal: marshalYAML, Unmarshal: unmarshalYAML})
}

// RegisterFormat makes f available by its name, MIME type and extension.
// Registering a format with an existing key replaces the old one.
func RegisterFormat(f Format) {
	formatsMu.Lock()
	defer formatsMu.Unlock()
	for _, k := range []string{f.Name, f.MIME, f.Ext} {
		if k != "" {
			formats[strings.ToLower(k)] = f
		}
	}
}

// LookupFormat finds a format by name, MIME type or file extension (with or
// without the leading dot).
func LookupFormat(s string) (Format, error) {
	formatsMu.RLock()
	defer formatsMu.RUnlock()
	if f, ok := formats[strings.ToLower(strings.TrimPrefix(s, "."))]; ok {
		return f, nil
	}
	return Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatForFile picks the format based on the extension of the file name.
func FormatForFile(name string) (Format, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return Format{}, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, name)
	}
	return LookupFormat(ext)
}

func (f Format) CanRead() bool { return f.Unmarshal != nil }

// FileName returns base with the format extension appended.
func (f Format) FileName(base string) string {
	if f.Ext == "" {
		return base
	}
	return base + "." + f.Ext
}

func marshalVTT(t TrackData) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("WEBVTT\n")
	for _, c := range t.Cues {
		b.WriteString("\n")
		if c.ID != "" {
			b.WriteString(c.ID + "\n")
		}
		fmt.Fprintf(&b, "%s --> %s\n%s\n", clockTime(c.Start, "."), clockTime(c.End, "."), c.Text)
	}
	return b.Bytes(), nil
}

func marshalSRT(t TrackData) ([]byte, error) {
	var b bytes.Buffer
	for i, c := range t.Cues {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n", i+1, clockTime(c.Start, ","), clockTime(c.End, ","), c.Text)
	}
	return b.Bytes(), nil
}

func marshalJSON(t TrackData) ([]byte, error) {
	if t.Cues == nil {
		t.Cues = []Cue{}
	}
	return json.MarshalIndent(t, "", "  ")
}

func unmarshalJSON(b []byte) (TrackData, error) {
	var t TrackData
	if err := json.Unmarshal(b, &t); err != nil {
		return TrackData{}, fmt.Errorf("json.Unmarshal: %w", err)
	}
	return t, nil
}

func marshalYAML(t TrackData) ([]byte, error) {
	return yaml.Marshal(t)
}

func unmarshalYAML(b []byte) (TrackData, error) {
	var t TrackData
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return TrackData{}, fmt.Errorf("yaml.Decode: %w", err)
	}
	return t, nil
}
