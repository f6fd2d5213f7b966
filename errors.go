package pixelfilter

import "errors"

var (
	// ErrInvalidDimensions is returned when a filter is asked to process a buffer
	// with zero width or zero height.
	ErrInvalidDimensions = errors.New("pixelfilter: invalid buffer dimensions")

	// ErrInvalidKernel is returned by NewKernel for empty, ragged or even-sized weight matrices.
	ErrInvalidKernel = errors.New("pixelfilter: invalid convolution kernel")

	// ErrUnknownFilter is returned by New for a name missing from the catalog.
	ErrUnknownFilter = errors.New("pixelfilter: unknown filter")
)
