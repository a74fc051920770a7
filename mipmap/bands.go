package mipmap

import "fmt"

// ValidateBands checks a source/destination band selection pair against the
// true band counts. A nil selection stands for all bands in natural order,
// so its effective length is the band count of its side. The effective
// lengths must match and every explicit index must name an existing band.
//
// Purely a precondition check: it is run once before any pixel is copied
// and has no side effects.
func ValidateBands(srcBands, dstBands []int, numSrcBands, numDstBands int) error {
	srcLen := numSrcBands
	if srcBands != nil {
		srcLen = len(srcBands)
	}
	dstLen := numDstBands
	if dstBands != nil {
		dstLen = len(dstBands)
	}
	if srcLen != dstLen {
		return fmt.Errorf("%w: %d source vs %d destination", ErrBandCountMismatch, srcLen, dstLen)
	}

	for _, b := range srcBands {
		if b < 0 || b >= numSrcBands {
			return fmt.Errorf("%w: source band %d, image has %d", ErrBandIndexOutOfRange, b, numSrcBands)
		}
	}
	for _, b := range dstBands {
		if b < 0 || b >= numDstBands {
			return fmt.Errorf("%w: destination band %d, image has %d", ErrBandIndexOutOfRange, b, numDstBands)
		}
	}
	return nil
}
