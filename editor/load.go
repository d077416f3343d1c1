package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vsariola/timeline"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type (
	// Source locates a track document: an http(s) URL or a file path, or an
	// already opened reader. Name is used to pick the format and the label
	// when reading from Reader.
	Source struct {
		URL    string
		Name   string
		Reader io.ReadCloser
	}

	// TrackLoader fetches and decodes a track document. kind, lang and name
	// override what the document says; empty values are ignored.
	TrackLoader interface {
		Load(ctx context.Context, src Source, kind, lang, name string) (timeline.TrackData, error)
	}

	// FileLoader loads tracks from files and http(s) URLs. The format is
	// picked by the file extension; documents without a known extension are
	// tried as json and then as yaml.
	FileLoader struct {
		Client *http.Client // default: http.DefaultClient
	}
)

const defaultKind = "subtitles"

func URLSource(u string) Source { return Source{URL: u} }

func ReaderSource(name string, r io.ReadCloser) Source { return Source{Name: name, Reader: r} }

func (s Source) String() string {
	if s.Reader != nil {
		return s.Name
	}
	return s.URL
}

func (l *FileLoader) Load(ctx context.Context, src Source, kind, lang, name string) (timeline.TrackData, error) {
	r, fileName, err := l.open(ctx, src)
	if err != nil {
		return timeline.TrackData{}, err
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return timeline.TrackData{}, fmt.Errorf("reading %s: %w", src, err)
	}
	data, err := decodeTrack(fileName, b)
	if err != nil {
		return timeline.TrackData{}, err
	}
	return labelTrack(data, fileName, kind, lang, name)
}

func (l *FileLoader) open(ctx context.Context, src Source) (io.ReadCloser, string, error) {
	if src.Reader != nil {
		return src.Reader, src.Name, nil
	}
	u, err := url.Parse(src.URL)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		client := l.Client
		if client == nil {
			client = http.DefaultClient
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
		if err != nil {
			return nil, "", err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, "", err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, "", fmt.Errorf("GET %s: %s", src.URL, resp.Status)
		}
		return resp.Body, path.Base(u.Path), nil
	}
	f, err := os.Open(src.URL)
	if err != nil {
		return nil, "", err
	}
	return f, filepath.Base(src.URL), nil
}

func decodeTrack(fileName string, b []byte) (timeline.TrackData, error) {
	if f, err := timeline.FormatForFile(fileName); err == nil {
		if !f.CanRead() {
			return timeline.TrackData{}, fmt.Errorf("%w: %s cannot be read", timeline.ErrUnsupportedFormat, f.Name)
		}
		return f.Unmarshal(b)
	}
	var errs []error
	for _, name := range []string{"json", "yaml"} {
		f, _ := timeline.LookupFormat(name)
		data, err := f.Unmarshal(b)
		if err == nil {
			return data, nil
		}
		errs = append(errs, err)
	}
	return timeline.TrackData{}, fmt.Errorf("%w: %s: %w", timeline.ErrUnsupportedFormat, fileName, errors.Join(errs...))
}

// labelTrack applies the overrides. Without a name, the label is taken from
// the document or else from the file name, followed by the name of the
// language in the language itself.
func labelTrack(data timeline.TrackData, fileName, kind, lang, name string) (timeline.TrackData, error) {
	if kind != "" {
		data.Kind = kind
	}
	if data.Kind == "" {
		data.Kind = defaultKind
	}
	data.Kind = cases.Lower(language.Und).String(data.Kind)
	if lang != "" {
		tag, err := language.Parse(lang)
		if err != nil {
			return timeline.TrackData{}, fmt.Errorf("language %q: %w", lang, err)
		}
		data.Lang = tag.String()
	}
	switch {
	case name != "":
		data.Label = name
	case data.Label == "":
		data.Label = strings.TrimSuffix(fileName, filepath.Ext(fileName))
		if tag, err := language.Parse(data.Lang); err == nil && data.Lang != "" {
			if n := display.Self.Name(tag); n != "" {
				data.Label += " (" + n + ")"
			}
		}
	}
	data.ID = data.Label
	return data, nil
}

// LoadTextTrack loads a track in the background and adds it to the timeline
// on the goroutine owning the Timeline. Failures are reported as alerts.
func (t *Timeline) LoadTextTrack(src Source, kind, lang, name string) {
	go func() {
		data, err := t.loader.Load(context.Background(), src, kind, lang, name)
		t.Post(func() { t.addLoaded(src, data, err) })
	}()
}

// LoadTextTracks loads the tracks concurrently, adding each on the goroutine
// owning the Timeline as soon as it has loaded. It returns after all the
// loads have finished, with the errors of the failed ones. It must not be
// called on the goroutine owning the Timeline, or it deadlocks when the
// message queue fills up.
func (t *Timeline) LoadTextTracks(ctx context.Context, kind, lang string, srcs ...Source) error {
	var g errgroup.Group
	g.SetLimit(4)
	errs := make([]error, len(srcs))
	for i, src := range srcs {
		g.Go(func() error {
			data, err := t.loader.Load(ctx, src, kind, lang, "")
			if err != nil {
				errs[i] = fmt.Errorf("%w: %s: %w", ErrLoadFailure, src, err)
			}
			select {
			case t.broker.ToModel <- MsgToModel{Data: func() { t.addLoaded(src, data, err) }}:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func (t *Timeline) addLoaded(src Source, data timeline.TrackData, err error) {
	if err != nil {
		log.Printf("editor: loading %s: %v", src, err)
		t.alerts.Add("There was an error loading the track.", Error)
		return
	}
	if err := t.AddTrackData(data, false); err != nil {
		t.alerts.Add(err.Error(), Error)
	}
}
