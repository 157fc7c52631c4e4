package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Configuration errors - invalid parameters, rejected at the call boundary
	ErrInvalidRange       = errors.New("min has to be smaller than max")
	ErrInvalidBinCount    = errors.New("there must be at least one bin")
	ErrInvalidShiftRange  = errors.New("shiftFrom has to be smaller than shiftTo")
	ErrInvalidShiftStep   = errors.New("shiftStep must be greater or equal 1")
	ErrShiftTooLarge      = errors.New("shift does not fit data size")
	ErrInvalidSampleCount = errors.New("there must be at least one bootstrap sample")
	ErrInvalidWorkerCount = errors.New("worker count must be greater or equal 1")

	// Shape errors - structural mismatches between inputs
	ErrSizeMismatch  = errors.New("sequences must have the same size")
	ErrShapeMismatch = errors.New("histograms must have the same bin shape")

	// Degenerate state errors
	ErrEmptyHistogram = errors.New("mutual information undefined for empty histogram")
)

// Error constructors with context

func NewAxisRangeError(axis string, min, max float64) error {
	return fmt.Errorf("%w: axis %s has min=%v max=%v", ErrInvalidRange, axis, min, max)
}

func NewBinCountError(axis string, bins int) error {
	return fmt.Errorf("%w: axis %s has %d bins", ErrInvalidBinCount, axis, bins)
}

func NewSizeMismatchError(sizeX, sizeY int) error {
	return fmt.Errorf("%w: got %d and %d", ErrSizeMismatch, sizeX, sizeY)
}

func NewShapeMismatchError(binsX, binsY, otherBinsX, otherBinsY int) error {
	return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, binsX, binsY, otherBinsX, otherBinsY)
}

func NewShiftTooLargeError(shift, size int) error {
	return fmt.Errorf("%w: shift %d with %d samples", ErrShiftTooLarge, shift, size)
}

// Error checking helpers

func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInvalidBinCount) ||
		errors.Is(err, ErrInvalidShiftRange) ||
		errors.Is(err, ErrInvalidShiftStep) ||
		errors.Is(err, ErrShiftTooLarge) ||
		errors.Is(err, ErrInvalidSampleCount) ||
		errors.Is(err, ErrInvalidWorkerCount)
}

func IsShapeError(err error) bool {
	return errors.Is(err, ErrSizeMismatch) ||
		errors.Is(err, ErrShapeMismatch)
}
