package editor

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
)

type (
	// ImageAssets tells whether the images used for drawing have finished
	// loading. Rendering is deferred until they have.
	ImageAssets interface {
		Complete() bool
	}

	// ReadyNotifier is optionally implemented by ImageAssets. The returned
	// channel is closed once the assets are complete.
	ReadyNotifier interface {
		Ready() <-chan struct{}
	}

	// Images are the bitmaps used for segments and for the slider handles.
	// Any of them can be nil, in which case a plain rectangle is drawn.
	Images struct {
		Segment         image.Image
		SegmentSelected image.Image
		SliderLeft      image.Image
		SliderRight     image.Image

		err   error
		ready chan struct{}
	}

	// ImagePaths are the paths of the images within a file system.
	ImagePaths struct {
		Segment         string `yaml:"segment"`
		SegmentSelected string `yaml:"segmentSelected"`
		SliderLeft      string `yaml:"sliderLeft"`
		SliderRight     string `yaml:"sliderRight"`
	}
)

// NoImages returns complete Images without any bitmaps.
func NoImages() *Images {
	ret := &Images{ready: make(chan struct{})}
	close(ret.ready)
	return ret
}

// LoadImages starts decoding the images in the background. The returned
// Images become complete once all of them have been decoded; images that
// fail to decode are left nil and reported by Err.
func LoadImages(fsys fs.FS, paths ImagePaths) *Images {
	ret := &Images{ready: make(chan struct{})}
	go func() {
		defer close(ret.ready)
		var errs []error
		load := func(path string, dst *image.Image) {
			if path == "" {
				return
			}
			f, err := fsys.Open(path)
			if err != nil {
				errs = append(errs, err)
				return
			}
			defer f.Close()
			img, _, err := image.Decode(f)
			if err != nil {
				errs = append(errs, fmt.Errorf("image.Decode %s: %w", path, err))
				return
			}
			*dst = img
		}
		load(paths.Segment, &ret.Segment)
		load(paths.SegmentSelected, &ret.SegmentSelected)
		load(paths.SliderLeft, &ret.SliderLeft)
		load(paths.SliderRight, &ret.SliderRight)
		ret.err = errors.Join(errs...)
	}()
	return ret
}

func (im *Images) Complete() bool {
	select {
	case <-im.ready:
		return true
	default:
		return false
	}
}

func (im *Images) Ready() <-chan struct{} { return im.ready }

// Err returns the decoding errors. It is nil until the images are complete.
func (im *Images) Err() error {
	if !im.Complete() {
		return nil
	}
	return im.err
}
