// Package mipmap implements the pixel-transfer engine that moves decoded
// scanline samples into a clipped, subsampled, band-remapped destination
// buffer. It reproduces the region/subsampling/band negotiation contract of
// the image-reading framework the surrounding codec plugs into, so results
// stay bit-identical for every combination of source region, subsampling
// grid, band selection and destination offset.
package mipmap

import "github.com/hiveworkshop/go-blp-codec/pixel"

// Point is an integer coordinate pair.
type Point struct {
	X, Y int
}

// Rect is an integer rectangle in (x, y, width, height) form. A rectangle
// with non-positive width or height is empty; emptiness is a valid terminal
// state meaning "nothing to transfer".
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersect returns the intersection of r and s. The result may have
// non-positive extents when the rectangles do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x1 := max(r.X, s.X)
	y1 := max(r.Y, s.Y)
	x2 := min(r.X+r.Width, s.X+s.Width)
	y2 := min(r.Y+r.Height, s.Y+s.Height)
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// DecodeParam is the caller-supplied decode configuration. It is a plain
// value type: fields are read once at decode start, so mutating a param
// mid-decode has no effect on a running call. The zero value and a nil
// *DecodeParam both mean "decode everything with defaults".
type DecodeParam struct {
	// SourceRegion restricts decoding to a region of the source image.
	// Nil means the full image.
	SourceRegion *Rect

	// SourceXSubsampling and SourceYSubsampling are the subsampling
	// periods: every period-th column/row of the source region is
	// sampled. Values below 1 are treated as 1.
	SourceXSubsampling int
	SourceYSubsampling int

	// SubsamplingXOffset and SubsamplingYOffset skip that many source
	// samples on each axis before the subsampling grid begins.
	// Must be non-negative.
	SubsamplingXOffset int
	SubsamplingYOffset int

	// SourceBands selects which source bands are read, in order.
	// Nil means all bands in natural order.
	SourceBands []int

	// DestinationBands selects which destination bands are written, in
	// order. Nil means all bands in natural order. When both band
	// selections are set their lengths must match.
	DestinationBands []int

	// DestinationOffset is where the decoded region lands in the
	// destination buffer. Negative offsets clip the source region
	// instead of writing out of bounds.
	DestinationOffset Point

	// Destination, when non-nil, is the pre-allocated buffer to decode
	// into. The caller owns it; its dimensions may differ from the
	// negotiated region, in which case clipping applies.
	Destination pixel.Buffer

	// DestinationFormat, when non-nil, requests allocation of a
	// destination in a specific format. It must match one of the
	// formats the codec advertises.
	DestinationFormat *pixel.Format
}

// NewDecodeParam returns a param with the documented defaults made
// explicit: full image, 1:1 subsampling, zero offsets, all bands.
func NewDecodeParam() *DecodeParam {
	return &DecodeParam{
		SourceXSubsampling: 1,
		SourceYSubsampling: 1,
	}
}

// subsampling returns the effective periods, clamped to at least 1.
// Safe on a nil receiver.
func (p *DecodeParam) subsampling() (periodX, periodY int) {
	periodX, periodY = 1, 1
	if p == nil {
		return periodX, periodY
	}
	if p.SourceXSubsampling > 1 {
		periodX = p.SourceXSubsampling
	}
	if p.SourceYSubsampling > 1 {
		periodY = p.SourceYSubsampling
	}
	return periodX, periodY
}

// gridOffset returns the effective subsampling grid offsets. Safe on a nil
// receiver.
func (p *DecodeParam) gridOffset() (offsetX, offsetY int) {
	if p == nil {
		return 0, 0
	}
	return p.SubsamplingXOffset, p.SubsamplingYOffset
}

// destinationOffset returns the effective destination offset. Safe on a nil
// receiver.
func (p *DecodeParam) destinationOffset() Point {
	if p == nil {
		return Point{}
	}
	return p.DestinationOffset
}

// bands returns the band selections. Safe on a nil receiver.
func (p *DecodeParam) bands() (srcBands, dstBands []int) {
	if p == nil {
		return nil, nil
	}
	return p.SourceBands, p.DestinationBands
}
