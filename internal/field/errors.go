package field

import "errors"

var (
	// ErrNoSamples is returned when interpolation is requested without samples.
	ErrNoSamples = errors.New("field: no samples")
	// ErrDuplicateSample is returned when two samples share a location.
	ErrDuplicateSample = errors.New("field: duplicate sample location")
	// ErrInvalidSample is returned for samples with non-finite components.
	ErrInvalidSample = errors.New("field: invalid sample")
	// ErrInvalidDimensions is returned for non-positive grid sizes.
	ErrInvalidDimensions = errors.New("field: invalid dimensions")
	// ErrInvalidNearest is returned when fewer than one neighbour is requested.
	ErrInvalidNearest = errors.New("field: nearest sample count must be at least 1")
	// ErrGridSize is returned when a dense grid does not match its dimensions.
	ErrGridSize = errors.New("field: grid length does not match dimensions")
	// ErrOutOfBounds is returned by lookups outside the grid under BoundsReject.
	ErrOutOfBounds = errors.New("field: coordinate out of bounds")
	// ErrInvalidPoint is returned for NaN or infinite query coordinates.
	ErrInvalidPoint = errors.New("field: invalid point")
)
