package atlas

import "errors"

var (
	// ErrInvalidSize is returned by New for non-positive grid or cell sizes.
	ErrInvalidSize = errors.New("atlas: invalid size")

	// ErrCellIndex is returned when a cell index is outside the grid.
	ErrCellIndex = errors.New("atlas: cell index out of range")

	// ErrNilSource is returned by EditCell for a nil source image.
	ErrNilSource = errors.New("atlas: nil source image")

	// ErrEmptySource is returned by EditCell when the source rectangle
	// does not overlap the source image.
	ErrEmptySource = errors.New("atlas: empty source rectangle")
)
