package converter

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid patch resources
var (
	// ErrInvalidMagic means byte 0 of the input is not the SCI patch magic 0x89
	ErrInvalidMagic = errors.New("not an SCI patch resource: missing 0x89 magic byte")

	// ErrMissingBankSeparator means a double-bank file lacks the AB CD marker
	// between bank A and bank B
	ErrMissingBankSeparator = errors.New("not a valid FB-01 patch resource: AB CD bank separator not found")

	// ErrTruncatedInput means a read ran past the end of the input
	ErrTruncatedInput = errors.New("truncated patch resource: unexpected end of input")
)

// UnexpectedLengthError means the input length matches neither the single-
// nor the double-bank size for its title length
type UnexpectedLengthError struct {
	Actual      int
	TitleLength int
}

func (e *UnexpectedLengthError) Error() string {
	return fmt.Sprintf(
		"patch resource is %d bytes with title length %d; expected %d (one bank) or %d (two banks)",
		e.Actual, e.TitleLength,
		singleBankFileSize+e.TitleLength, doubleBankFileSize+e.TitleLength)
}

// InternalShapeError means a pipeline stage produced a block of the wrong
// size. Valid inputs never trigger it; it indicates a converter bug.
type InternalShapeError struct {
	Stage string
	Want  int
	Got   int
}

func (e *InternalShapeError) Error() string {
	return fmt.Sprintf("internal error in %s: block is %d bytes, want %d", e.Stage, e.Got, e.Want)
}
