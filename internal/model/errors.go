package model

import "errors"

// Common errors used across the application
var (
	// Grid errors
	ErrNonRectangularGrid = errors.New("grid rows have unequal lengths")

	// Classifier errors
	ErrEmptyCatalog = errors.New("glyph catalog is empty")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")

	// Solve errors
	ErrSolveNotFound = errors.New("solve not found")

	// Pointer errors
	ErrPointerNotNormalized = errors.New("pointer is not normalized")
)
