package editor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsariola/timeline/editor"
)

const talkJSON = `{"label": "", "cues": [{"start": 1, "end": 2, "text": "hallo"}]}`

func writeTrack(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestFileLoaderLabels(t *testing.T) {
	fn := writeTrack(t, "talk.json", talkJSON)
	var l editor.FileLoader
	data, err := l.Load(context.Background(), editor.URLSource(fn), "", "de", "")
	require.NoError(t, err)
	assert.Equal(t, "talk (Deutsch)", data.Label)
	assert.Equal(t, data.Label, data.ID)
	assert.Equal(t, "subtitles", data.Kind)
	assert.Equal(t, "de", data.Lang)
	require.Len(t, data.Cues, 1)

	data, err = l.Load(context.Background(), editor.URLSource(fn), "CHAPTERS", "", "Intro")
	require.NoError(t, err)
	assert.Equal(t, "Intro", data.Label)
	assert.Equal(t, "chapters", data.Kind)

	_, err = l.Load(context.Background(), editor.URLSource(fn), "", "not a language", "")
	assert.Error(t, err)
}

func TestFileLoaderSniffsFormat(t *testing.T) {
	fn := writeTrack(t, "talk", "label: Talk\ncues:\n  - start: 1\n    end: 2\n    text: hi\n")
	var l editor.FileLoader
	data, err := l.Load(context.Background(), editor.URLSource(fn), "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Talk", data.Label)

	fn = writeTrack(t, "talk.vtt", "WEBVTT\n")
	_, err = l.Load(context.Background(), editor.URLSource(fn), "", "", "")
	assert.ErrorIs(t, err, editor.ErrUnsupportedFormat)
}

func TestFileLoaderHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tracks/talk.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(talkJSON))
	}))
	defer srv.Close()
	l := editor.FileLoader{Client: srv.Client()}
	data, err := l.Load(context.Background(), editor.URLSource(srv.URL+"/tracks/talk.json"), "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "talk", data.Label)
	_, err = l.Load(context.Background(), editor.URLSource(srv.URL+"/missing.json"), "", "", "")
	assert.Error(t, err)
}

func TestLoadTextTrack(t *testing.T) {
	tl, _, _ := newTimeline(t)
	added := record(tl, editor.EventAddTrack)
	tl.LoadTextTrack(editor.URLSource(writeTrack(t, "talk.json", talkJSON)), "", "", "")
	msg, ok := editor.TimeoutReceive(tl.Broker().ToModel, 5*time.Second)
	require.True(t, ok)
	tl.ProcessMsg(msg)
	_, ok = tl.Track("talk")
	assert.True(t, ok)
	assert.Len(t, added.events, 1)

	tl.LoadTextTrack(editor.URLSource(filepath.Join(t.TempDir(), "missing.json")), "", "", "")
	msg, ok = editor.TimeoutReceive(tl.Broker().ToModel, 5*time.Second)
	require.True(t, ok)
	tl.ProcessMsg(msg)
	assert.Equal(t, 1, tl.Alerts().Len())
	assert.Len(t, tl.Tracks(), 1)
}

func TestLoadTextTracks(t *testing.T) {
	tl, _, _ := newTimeline(t)
	good := writeTrack(t, "talk.json", talkJSON)
	err := tl.LoadTextTracks(context.Background(), "captions", "",
		editor.URLSource(good), editor.URLSource(filepath.Join(t.TempDir(), "missing.json")))
	assert.ErrorIs(t, err, editor.ErrLoadFailure)
	assert.Equal(t, 2, tl.Drain())
	require.Len(t, tl.Tracks(), 1)
	assert.Equal(t, "captions", tl.Tracks()[0].Kind())
	assert.Equal(t, 1, tl.Alerts().Len())
}
