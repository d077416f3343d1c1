package editor

import (
	"errors"

	"github.com/vsariola/timeline"
)

var (
	ErrInvalidMount        = errors.New("invalid mount")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	ErrUnknownTrack        = errors.New("unknown track")
	ErrLoadFailure         = errors.New("error loading the track")
	ErrUnsupportedFormat   = timeline.ErrUnsupportedFormat
)
