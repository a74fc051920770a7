package mipmap

import (
	"fmt"
	"math"

	"github.com/hiveworkshop/go-blp-codec/pixel"
)

// ResolveDestination obtains the buffer decoded pixels are written into.
//
// Resolution order, first match wins:
//
//  1. A pre-allocated p.Destination is returned unchanged. The caller owns
//     it and its dimensions may differ from the negotiated region;
//     downstream clipping handles the mismatch.
//  2. A requested p.DestinationFormat must equal one of candidates, else
//     ErrUnsupportedDestination.
//  3. Otherwise the first candidate format (the declared default) is used.
//
// For cases 2 and 3 a new buffer is allocated, sized by ComputeRegions with
// a nil destination so no further clipping occurs.
func ResolveDestination(p *DecodeParam, candidates []pixel.Format, width, height int) (pixel.Buffer, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidateFormats
	}
	if height > 0 && width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensionOverflow, width, height)
	}

	var format *pixel.Format
	if p != nil {
		if p.Destination != nil {
			return p.Destination, nil
		}
		format = p.DestinationFormat
	}

	if format == nil {
		format = &candidates[0]
	} else {
		found := false
		for _, c := range candidates {
			if c == *format {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedDestination, *format)
		}
	}

	_, dstRegion, err := ComputeRegions(p, width, height, nil)
	if err != nil {
		return nil, err
	}
	return pixel.NewBuffer(*format, dstRegion.X+dstRegion.Width, dstRegion.Y+dstRegion.Height)
}
