package resource

import "errors"

// Sentinel errors for the resource package.
var (
	// ErrNotRegistered is returned when loading an identifier with no file.
	ErrNotRegistered = errors.New("resource: identifier not registered")

	// ErrEmptyData is returned when a loader is given empty input.
	ErrEmptyData = errors.New("resource: empty data")

	// ErrNilLoader is returned by Load when the Manager has no Loader.
	ErrNilLoader = errors.New("resource: nil loader")

	// ErrUnsupportedFormat is returned for audio files with an unknown
	// extension.
	ErrUnsupportedFormat = errors.New("resource: unsupported audio format")
)
