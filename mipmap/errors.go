package mipmap

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRegion is returned when region negotiation produces an
	// empty source or destination region where a non-empty one is
	// required.
	ErrEmptyRegion = errors.New("mipmap: empty source or destination region")

	// ErrBandCountMismatch is returned when the effective source and
	// destination band selections differ in length.
	ErrBandCountMismatch = errors.New("mipmap: source and destination band counts differ")

	// ErrBandIndexOutOfRange is returned when a band selection names a
	// band the image does not have.
	ErrBandIndexOutOfRange = errors.New("mipmap: band index out of range")

	// ErrUnsupportedDestination is returned when a requested destination
	// format is not among the candidate formats.
	ErrUnsupportedDestination = errors.New("mipmap: unsupported destination format")

	// ErrNoCandidateFormats is returned when destination resolution is
	// attempted with no candidate formats.
	ErrNoCandidateFormats = errors.New("mipmap: no candidate destination formats")

	// ErrDimensionOverflow is returned when width*height exceeds the
	// platform address range.
	ErrDimensionOverflow = errors.New("mipmap: image dimensions overflow")
)

// ScanlineError reports a scanline decoder failure at a specific row.
// Rows above Row were decoded successfully; Decode returns the partially
// populated destination buffer alongside this error so callers can keep the
// best-effort result.
type ScanlineError struct {
	Row int
	Err error
}

func (e *ScanlineError) Error() string {
	return fmt.Sprintf("mipmap: decoding scanline %d: %v", e.Row, e.Err)
}

func (e *ScanlineError) Unwrap() error { return e.Err }
