package codec

import "errors"

var (
	// ErrCodecNotFound is returned when no codec is registered for a
	// name or content encoding.
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidParameter is returned when codec construction
	// parameters are invalid.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEncodeUnsupported is returned by every EncodeMipmap: this
	// module is decode-only.
	ErrEncodeUnsupported = errors.New("encoding not supported")
)
