package mipmap

import "github.com/hiveworkshop/go-blp-codec/pixel"

// SourceBandCount is the number of bands every scanline decoder produces.
const SourceBandCount = 4

// LineDecoder turns one row's worth of compressed mipmap bytes into
// SourceBandCount band planes of width samples each. A failed row must not
// leave undefined writes beyond what was already written; the engine stops
// decoding further rows and keeps the rows already transferred.
type LineDecoder interface {
	DecodeLine(data []byte, planes [][]byte, width, row int) error
}

// LineDecoderFunc adapts a function to the LineDecoder interface.
type LineDecoderFunc func(data []byte, planes [][]byte, width, row int) error

func (f LineDecoderFunc) DecodeLine(data []byte, planes [][]byte, width, row int) error {
	return f(data, planes, width, row)
}

// destinationFormats is the single advertised destination format:
// interleaved RGBA, one byte per sample.
var destinationFormats = []pixel.Format{pixel.RGBA8}

// DestinationFormats returns the destination formats the engine supports,
// default first.
func DestinationFormats() []pixel.Format {
	out := make([]pixel.Format, len(destinationFormats))
	copy(out, destinationFormats)
	return out
}

// Decode runs one mipmap transfer: it negotiates the source region,
// resolves the destination buffer, validates band selections, then decodes
// every source row through dec and copies the qualifying pixels into the
// destination under clipping, subsampling and band remapping.
//
// Precondition failures (band settings, destination resolution) abort
// before any pixel is written and return a nil buffer. A scanline decoder
// failure returns the partially populated destination together with a
// *ScanlineError carrying the failing row, so callers can keep the
// best-effort result.
//
// Decode is synchronous and keeps no state between calls. The per-row
// scratch planes are owned by the call and never escape it.
func Decode(data []byte, p *DecodeParam, width, height int, dec LineDecoder) (pixel.Buffer, error) {
	region := SourceRegion(p, width, height)

	dst, err := ResolveDestination(p, destinationFormats, width, height)
	if err != nil {
		return nil, err
	}

	srcBands, dstBands := p.bands()
	if err := ValidateBands(srcBands, dstBands, SourceBandCount, dst.NumBands()); err != nil {
		return nil, err
	}

	periodX, periodY := p.subsampling()
	offset := p.destinationOffset()

	// Only source pixels mapping inside these destination bounds are
	// copied.
	dstMaxX := dst.Width() - 1
	dstMaxY := dst.Height() - 1

	planes := make([][]byte, SourceBandCount)
	for i := range planes {
		planes[i] = make([]byte, width)
	}

	numBands := SourceBandCount
	if srcBands != nil {
		numBands = len(srcBands)
	}
	sample := make([]byte, numBands)

	for srcY := 0; srcY < height; srcY++ {
		if err := dec.DecodeLine(data, planes, width, srcY); err != nil {
			return dst, &ScanlineError{Row: srcY, Err: err}
		}

		// Reject rows outside the source region or off the
		// subsampling grid.
		if srcY < region.Y || srcY >= region.Y+region.Height ||
			(srcY-region.Y)%periodY != 0 {
			continue
		}

		dstY := offset.Y + (srcY-region.Y)/periodY
		if dstY < 0 {
			// Above the destination window; later rows may still
			// land inside it.
			continue
		}
		if dstY > dstMaxY {
			// Rows map monotonically downward, so nothing further
			// can land inside the window.
			break
		}

		for srcX := region.X; srcX < region.X+region.Width; srcX++ {
			if (srcX-region.X)%periodX != 0 {
				continue
			}
			dstX := offset.X + (srcX-region.X)/periodX
			if dstX < 0 {
				continue
			}
			if dstX > dstMaxX {
				break
			}

			for i := range sample {
				b := i
				if srcBands != nil {
					b = srcBands[i]
				}
				sample[i] = planes[b][srcX]
			}
			for i, v := range sample {
				b := i
				if dstBands != nil {
					b = dstBands[i]
				}
				dst.SetSample(dstX, dstY, b, v)
			}
		}
	}
	return dst, nil
}
