package mapsym

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when a shape has an odd number of
	// coordinates or fewer than two points.
	ErrInvalidShape = errors.New("mapsym: shape must hold an even number of values and at least two points")

	// ErrInvalidScale is returned when the scale is not a finite positive number.
	ErrInvalidScale = errors.New("mapsym: scale must be finite and positive")

	// ErrSymbolTooLarge is returned when an atlas cannot hold the symbol.
	ErrSymbolTooLarge = errors.New("mapsym: symbol is too large for the atlas")
)

// SymbolTooLargeError reports the pixel size an atlas refused to place.
// It matches ErrSymbolTooLarge with errors.Is.
type SymbolTooLargeError struct {
	Width  int
	Height int
}

// Error implements the error interface.
func (e *SymbolTooLargeError) Error() string {
	return fmt.Sprintf("mapsym: symbol of %dx%d pixels is too large for the atlas", e.Width, e.Height)
}

// Is reports whether target is ErrSymbolTooLarge.
func (e *SymbolTooLargeError) Is(target error) bool {
	return target == ErrSymbolTooLarge
}
