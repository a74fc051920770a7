package mipmap

import "github.com/hiveworkshop/go-blp-codec/pixel"

// SourceRegion computes the region of the source image to read: the full
// source rectangle, intersected with the param's source region if set, with
// the subsampling grid offset then added to the origin and subtracted from
// the extent. Subsampling factors, destination size and destination offset
// are not taken into account, so further clipping must take place;
// ComputeRegions performs all necessary clipping.
//
// The result may have non-positive extents when the grid offset exceeds the
// region; callers must treat that as "nothing to transfer", not an error.
func SourceRegion(p *DecodeParam, srcWidth, srcHeight int) Rect {
	region := Rect{Width: srcWidth, Height: srcHeight}
	if p == nil {
		return region
	}
	if p.SourceRegion != nil {
		region = region.Intersect(*p.SourceRegion)
	}
	offsetX, offsetY := p.gridOffset()
	region.X += offsetX
	region.Y += offsetY
	region.Width -= offsetX
	region.Height -= offsetY
	return region
}

// ComputeRegions negotiates the source and destination regions of interest.
//
// The source region starts as the full source image clipped by the param as
// in SourceRegion. The destination region starts as the source image
// translated to the destination offset. A negative destination offset clips
// the source region instead (by offset*period source samples) and pins the
// destination at zero. The destination extent is the subsampled size of the
// source region, rounded up; when dst is non-nil both regions are further
// clipped against the destination's own bounds.
//
// Unlike SourceRegion, an empty result here is an error: callers of
// ComputeRegions require a non-empty transfer.
func ComputeRegions(p *DecodeParam, srcWidth, srcHeight int, dst pixel.Buffer) (srcRegion, dstRegion Rect, err error) {
	srcRegion = Rect{Width: srcWidth, Height: srcHeight}
	dstRegion = Rect{Width: srcWidth, Height: srcHeight}

	periodX, periodY := p.subsampling()
	if p != nil {
		if p.SourceRegion != nil {
			srcRegion = srcRegion.Intersect(*p.SourceRegion)
		}
		offsetX, offsetY := p.gridOffset()
		srcRegion.X += offsetX
		srcRegion.Y += offsetY
		srcRegion.Width -= offsetX
		srcRegion.Height -= offsetY
		dstRegion.X = p.DestinationOffset.X
		dstRegion.Y = p.DestinationOffset.Y
	}

	if dstRegion.X < 0 {
		delta := -dstRegion.X * periodX
		srcRegion.X += delta
		srcRegion.Width -= delta
		dstRegion.X = 0
	}
	if dstRegion.Y < 0 {
		delta := -dstRegion.Y * periodY
		srcRegion.Y += delta
		srcRegion.Height -= delta
		dstRegion.Y = 0
	}

	subsampledWidth := (srcRegion.Width + periodX - 1) / periodX
	subsampledHeight := (srcRegion.Height + periodY - 1) / periodY
	dstRegion.Width = subsampledWidth
	dstRegion.Height = subsampledHeight

	if dst != nil {
		dstRegion = dstRegion.Intersect(Rect{Width: dst.Width(), Height: dst.Height()})
		if dstRegion.Empty() {
			return Rect{}, Rect{}, ErrEmptyRegion
		}
		if delta := dstRegion.X + subsampledWidth - dst.Width(); delta > 0 {
			srcRegion.Width -= delta * periodX
		}
		if delta := dstRegion.Y + subsampledHeight - dst.Height(); delta > 0 {
			srcRegion.Height -= delta * periodY
		}
	}

	if srcRegion.Empty() || dstRegion.Empty() {
		return Rect{}, Rect{}, ErrEmptyRegion
	}
	return srcRegion, dstRegion, nil
}
