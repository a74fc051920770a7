// Package pixel provides the destination pixel buffers the mipmap transfer
// engine writes into: a closed set of format descriptors and a small
// capability interface so new layouts can be added without touching the
// transfer algorithm.
package pixel

import (
	"fmt"
	"image"
	"image/color"
)

// Buffer is a 2-D grid of byte samples grouped into bands, addressable by
// (x, y, band). Implementations are not safe for concurrent mutation; the
// decode call that fills a buffer owns it for the duration of the call.
type Buffer interface {
	Width() int
	Height() int
	NumBands() int
	Format() Format

	// Sample returns the sample at (x, y) in the given band.
	Sample(x, y, band int) byte

	// SetSample stores a sample at (x, y) in the given band.
	SetSample(x, y, band int, v byte)
}

// Interleaved8 is the LayoutInterleaved8 buffer implementation. With the
// RGBA8 format it also satisfies image.Image (non-premultiplied alpha), so
// decoded mipmaps plug directly into the stdlib image machinery.
type Interleaved8 struct {
	format Format
	width  int
	height int
	stride int

	// Pix holds the samples, NumBands bytes per pixel, rows top to bottom.
	Pix []byte
}

// NewInterleaved8 allocates a zeroed interleaved buffer.
func NewInterleaved8(f Format, width, height int) (*Interleaved8, error) {
	if f.Layout != LayoutInterleaved8 {
		return nil, fmt.Errorf("pixel: format %s is not interleaved", f)
	}
	if f.Bands <= 0 {
		return nil, fmt.Errorf("pixel: invalid band count %d", f.Bands)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixel: invalid dimensions %dx%d", width, height)
	}
	return &Interleaved8{
		format: f,
		width:  width,
		height: height,
		stride: width * f.Bands,
		Pix:    make([]byte, width*height*f.Bands),
	}, nil
}

func (b *Interleaved8) Width() int     { return b.width }
func (b *Interleaved8) Height() int    { return b.height }
func (b *Interleaved8) NumBands() int  { return b.format.Bands }
func (b *Interleaved8) Format() Format { return b.format }

func (b *Interleaved8) Sample(x, y, band int) byte {
	return b.Pix[y*b.stride+x*b.format.Bands+band]
}

func (b *Interleaved8) SetSample(x, y, band int, v byte) {
	b.Pix[y*b.stride+x*b.format.Bands+band] = v
}

// ColorModel implements image.Image.
func (b *Interleaved8) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (b *Interleaved8) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image. Buffers with fewer than 4 bands read as
// opaque gray/RGB using the bands present.
func (b *Interleaved8) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return color.NRGBA{}
	}
	i := y*b.stride + x*b.format.Bands
	px := b.Pix[i : i+b.format.Bands]
	c := color.NRGBA{A: 0xff}
	switch b.format.Bands {
	case 1:
		c.R, c.G, c.B = px[0], px[0], px[0]
	case 2:
		c.R, c.G, c.B = px[0], px[0], px[0]
		c.A = px[1]
	case 3:
		c.R, c.G, c.B = px[0], px[1], px[2]
	default:
		c.R, c.G, c.B, c.A = px[0], px[1], px[2], px[3]
	}
	return c
}
