package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gioui.org/app"
	"github.com/spf13/cobra"
	"github.com/vsariola/timeline/editor"
	"github.com/vsariola/timeline/editor/gioui"
	"github.com/vsariola/timeline/editor/raster"
	"github.com/vsariola/timeline/oscsync"
	"github.com/vsariola/timeline/version"
)

var config struct {
	width     int
	length    float64
	start     float64
	end       float64
	at        float64
	kind      string
	lang      string
	tool      string
	images    string
	out       string
	format    string
	dir       string
	name      string
	oscSend   string
	oscListen string
}

var rootCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Edit and convert timed text tracks",
	Long: `Timeline shows subtitle, caption and chapter tracks on a common
timeline, where their segments can be selected, moved, created and deleted.

Tracks are read from json or yaml documents, local or over http(s), and can
be exported as WebVTT, SubRip, json or yaml.`,
	Version: version.VersionOrHash,
}

var editCmd = &cobra.Command{
	Use:   "edit [track files...]",
	Short: "Open the tracks in the editor window",
	RunE:  runEdit,
}

var renderCmd = &cobra.Command{
	Use:   "render track files...",
	Short: "Draw the timeline of the tracks into a PNG image",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

var exportCmd = &cobra.Command{
	Use:   "export track files...",
	Short: "Convert the tracks to another format",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExport,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.IntVar(&config.width, "width", 0, "width of the timeline in pixels (0 uses the config)")
	f.Float64Var(&config.length, "length", 0, "length of the media in seconds (0 uses the config)")
	f.Float64Var(&config.start, "start", 0, "start of the visible window in seconds")
	f.Float64Var(&config.end, "end", 0, "end of the visible window in seconds")
	f.StringVarP(&config.kind, "kind", "k", "", "kind of the loaded tracks, e.g. subtitles or chapters")
	f.StringVarP(&config.lang, "lang", "l", "", "BCP 47 language of the loaded tracks")
	f.StringVar(&config.tool, "tool", "", "initial tool mode: select, order, move, create, delete, repeat or scroll")
	f.StringVar(&config.images, "images", ".", "directory the image paths of the config are relative to")

	editCmd.Flags().StringVar(&config.oscSend, "osc-send", "", "publish the time marker to host:port over OSC")
	editCmd.Flags().StringVar(&config.oscListen, "osc-listen", "", "accept OSC control messages on the UDP address")

	renderCmd.Flags().StringVarP(&config.out, "out", "o", "timeline.png", "output file")
	renderCmd.Flags().Float64Var(&config.at, "at", 0, "position of the time marker in seconds")

	exportCmd.Flags().StringVarP(&config.format, "format", "f", "vtt", "output format: a format name, MIME type or extension")
	exportCmd.Flags().StringVarP(&config.dir, "dir", "d", ".", "output directory")
	exportCmd.Flags().StringVar(&config.name, "name", "", "file name template, e.g. '{{ .Label | lower }}.{{ .Ext }}'")

	rootCmd.AddCommand(editCmd, renderCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newTimeline builds the timeline from the config file and the flags.
func newTimeline(mount editor.Mount) (*editor.Timeline, error) {
	c, err := editor.MakeConfig()
	if err != nil {
		log.Printf("config: %v", err)
	}
	p := c.Params()
	if c.Images != (editor.ImagePaths{}) {
		p.Images = editor.LoadImages(os.DirFS(config.images), c.Images)
	}
	if config.width > 0 {
		p.Width = config.width
	}
	if config.length > 0 {
		p.Length = config.length
	}
	if config.end > config.start {
		p.Start, p.End = config.start, config.end
	}
	if config.tool != "" {
		if p.Tool, err = editor.ParseToolMode(config.tool); err != nil {
			return nil, err
		}
	}
	if config.name != "" {
		p.ExportName = config.name
	}
	return editor.New(mount, p)
}

// loadAll loads the tracks, processing the messages of the broker on this
// goroutine while the loads run.
func loadAll(tl *editor.Timeline, files []string) error {
	srcs := make([]editor.Source, len(files))
	for i, f := range files {
		srcs[i] = editor.URLSource(f)
	}
	done := make(chan error, 1)
	go func() { done <- tl.LoadTextTracks(context.Background(), config.kind, config.lang, srcs...) }()
	for {
		select {
		case msg := <-tl.Broker().ToModel:
			tl.ProcessMsg(msg)
		case err := <-done:
			tl.Drain()
			return err
		}
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	width := config.width
	if width <= 0 {
		width = 1000
	}
	mount := raster.NewMount(width)
	tl, err := newTimeline(mount)
	if err != nil {
		return err
	}
	if err := loadAll(tl, args); err != nil {
		return err
	}
	tl.SetCurrentTime(config.at)
	for tl.RenderPending() {
		msg, ok := editor.TimeoutReceive(tl.Broker().ToModel, 10*time.Second)
		if !ok {
			return errors.New("timed out waiting for the images")
		}
		tl.ProcessMsg(msg)
	}
	f, err := os.Create(config.out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, mount.Composite()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runExport(cmd *cobra.Command, args []string) error {
	tl, err := newTimeline(raster.NewMount(1000))
	if err != nil {
		return err
	}
	if err := loadAll(tl, args); err != nil {
		return err
	}
	exports, err := tl.ExportTracks(config.format)
	if err != nil {
		return err
	}
	for _, ex := range exports {
		fn := filepath.Join(config.dir, ex.Name)
		if err := os.WriteFile(fn, ex.Data, 0o644); err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", fn)
	}
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	prefs, _ := gioui.MakePreferences()
	mount := raster.NewMount(prefs.Window.Width)
	tl, err := newTimeline(mount)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	var sender oscsync.Sender
	if config.oscSend != "" {
		host, portStr, err := net.SplitHostPort(config.oscSend)
		if err != nil {
			return fmt.Errorf("--osc-send: %w", err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("--osc-send: %w", err)
		}
		sender = oscsync.NewClient(host, port)
	}
	bridge := oscsync.New(tl, sender)
	if config.oscListen != "" {
		go func() {
			log.Printf("listening for OSC on %s", config.oscListen)
			if err := bridge.Serve(ctx, config.oscListen); err != nil {
				log.Printf("OSC server: %v", err)
			}
		}()
	}
	for _, a := range args {
		tl.LoadTextTrack(editor.URLSource(a), config.kind, config.lang, "")
	}
	ed := gioui.NewEditor(tl, mount)
	go func() {
		ed.Main()
		bridge.Close()
		cancel()
		os.Exit(0)
	}()
	app.Main()
	return nil
}
