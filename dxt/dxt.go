// Package dxt decodes S3TC (DXT1/DXT3/DXT5) block-compressed mipmap data
// one scanline at a time, producing the 4 band planes the mipmap transfer
// engine consumes.
//
// Block storage is allocated in whole 4x4 blocks, so a mipmap level's
// backing data covers AlignUp4(width) x AlignUp4(height) texels. Undersized
// payloads fail at the first row whose block row has no backing bytes;
// rows decoded before that point remain valid, which lets lenient callers
// keep a best-effort partial image. Bytes past the needed block rows are
// ignored.
package dxt

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Format identifies the S3TC variant of a mipmap payload.
type Format uint8

const (
	// DXT1 is BC1: 8-byte blocks, optional 1-bit punch-through alpha.
	DXT1 Format = iota

	// DXT3 is BC2: 16-byte blocks with explicit 4-bit alpha.
	DXT3

	// DXT5 is BC3: 16-byte blocks with interpolated alpha.
	DXT5
)

func (f Format) String() string {
	switch f {
	case DXT1:
		return "DXT1"
	case DXT3:
		return "DXT3"
	case DXT5:
		return "DXT5"
	default:
		return fmt.Sprintf("DXT(%d)", uint8(f))
	}
}

// BlockSize returns the compressed size of one 4x4 block in bytes.
func (f Format) BlockSize() int {
	if f == DXT1 {
		return 8
	}
	return 16
}

// FormatFor maps the container's alpha depth and alpha encoding fields to
// the S3TC variant: no meaningful alpha decodes as DXT1, alpha encoding 7
// as DXT5, anything else with alpha as DXT3.
func FormatFor(alphaDepth, alphaEncoding uint8) Format {
	if alphaDepth <= 1 {
		return DXT1
	}
	if alphaEncoding == 7 {
		return DXT5
	}
	return DXT3
}

// AlignUp4 rounds a dimension up to the next multiple of 4, the block
// granularity of S3TC storage. It performs no validation and never
// decreases its input.
func AlignUp4(n int) int {
	return (n + 3) &^ 3
}

// LineDecoder decodes S3TC data one scanline at a time. It caches the most
// recently decoded 4-row block group, so sequential row access decodes each
// block exactly once. A LineDecoder serves a single mipmap payload and a
// single decode call; it is not safe for concurrent use.
type LineDecoder struct {
	format Format

	// cache of the current block row, 4 rows per band plane.
	blockRow     int
	alignedWidth int
	planes       [4][]byte
}

// NewLineDecoder returns a line decoder for one mipmap payload.
func NewLineDecoder(format Format) *LineDecoder {
	return &LineDecoder{format: format, blockRow: -1}
}

// DecodeLine writes row's samples into the first 4 planes, width bytes
// each. Band order is R, G, B, A.
func (d *LineDecoder) DecodeLine(data []byte, planes [][]byte, width, row int) error {
	if len(planes) < 4 {
		return fmt.Errorf("dxt: need 4 output planes, have %d", len(planes))
	}
	if width <= 0 || row < 0 {
		return fmt.Errorf("dxt: invalid line %d of width %d", row, width)
	}

	blockRow := row / 4
	if blockRow != d.blockRow || d.alignedWidth != AlignUp4(width) {
		if err := d.decodeBlockRow(data, width, blockRow); err != nil {
			return err
		}
	}

	line := row % 4
	for b := 0; b < 4; b++ {
		copy(planes[b][:width], d.planes[b][line*d.alignedWidth:])
	}
	return nil
}

func (d *LineDecoder) decodeBlockRow(data []byte, width, blockRow int) error {
	aligned := AlignUp4(width)
	if d.alignedWidth != aligned {
		for b := range d.planes {
			d.planes[b] = make([]byte, 4*aligned)
		}
		d.alignedWidth = aligned
	}

	blocks := aligned / 4
	size := d.format.BlockSize()
	offset := blockRow * blocks * size
	need := blocks * size
	if offset < 0 || offset+need > len(data) {
		return fmt.Errorf("dxt: truncated %s data: block row %d needs %d bytes at offset %d, have %d: %w",
			d.format, blockRow, need, offset, len(data), io.ErrUnexpectedEOF)
	}

	for bx := 0; bx < blocks; bx++ {
		block := data[offset+bx*size : offset+(bx+1)*size]
		x0 := bx * 4
		switch d.format {
		case DXT1:
			d.decodeColorBlock(block, x0, true)
		case DXT3:
			d.decodeColorBlock(block[8:], x0, false)
			d.decodeExplicitAlpha(block[:8], x0)
		case DXT5:
			d.decodeColorBlock(block[8:], x0, false)
			d.decodeInterpolatedAlpha(block[:8], x0)
		}
	}
	d.blockRow = blockRow
	return nil
}

// decodeColorBlock fills the RGB planes for one 4x4 block. When punchThrough
// is set (DXT1) it also fills the alpha plane, honoring the c0 <= c1
// transparent mode; otherwise alpha comes from a separate alpha block.
func (d *LineDecoder) decodeColorBlock(block []byte, x0 int, punchThrough bool) {
	c0 := binary.LittleEndian.Uint16(block[0:2])
	c1 := binary.LittleEndian.Uint16(block[2:4])
	bits := binary.LittleEndian.Uint32(block[4:8])

	colors := colorPalette(c0, c1, punchThrough)
	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			c := colors[(bits>>(2*(py*4+px)))&3]
			x := x0 + px
			d.planes[0][py*d.alignedWidth+x] = c[0]
			d.planes[1][py*d.alignedWidth+x] = c[1]
			d.planes[2][py*d.alignedWidth+x] = c[2]
			if punchThrough {
				d.planes[3][py*d.alignedWidth+x] = c[3]
			}
		}
	}
}

// decodeExplicitAlpha fills the alpha plane from a DXT3 alpha block:
// 16 4-bit values, scaled to 8 bits.
func (d *LineDecoder) decodeExplicitAlpha(block []byte, x0 int) {
	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			i := py*4 + px
			v := block[i/2]
			if i%2 == 1 {
				v >>= 4
			}
			d.planes[3][py*d.alignedWidth+x0+px] = (v & 0xf) * 17
		}
	}
}

// decodeInterpolatedAlpha fills the alpha plane from a DXT5 alpha block:
// two endpoint values and 16 3-bit indices into an interpolated table.
func (d *LineDecoder) decodeInterpolatedAlpha(block []byte, x0 int) {
	a0, a1 := block[0], block[1]

	var bits uint64
	for i := 0; i < 6; i++ {
		bits |= uint64(block[2+i]) << (8 * i)
	}

	table := alphaPalette(a0, a1)
	for py := 0; py < 4; py++ {
		for px := 0; px < 4; px++ {
			i := py*4 + px
			d.planes[3][py*d.alignedWidth+x0+px] = table[(bits>>(3*i))&7]
		}
	}
}

// colorPalette expands the two RGB565 endpoints into the 4-entry block
// palette. With punchThrough set and c0 <= c1 the block is in 3-color mode
// and entry 3 is transparent black.
func colorPalette(c0, c1 uint16, punchThrough bool) [4][4]byte {
	r0, g0, b0 := expand565(c0)
	r1, g1, b1 := expand565(c1)

	var p [4][4]byte
	p[0] = [4]byte{r0, g0, b0, 0xff}
	p[1] = [4]byte{r1, g1, b1, 0xff}
	if c0 > c1 || !punchThrough {
		p[2] = [4]byte{mix(2, r0, r1), mix(2, g0, g1), mix(2, b0, b1), 0xff}
		p[3] = [4]byte{mix(2, r1, r0), mix(2, g1, g0), mix(2, b1, b0), 0xff}
	} else {
		p[2] = [4]byte{mix(1, r0, r1), mix(1, g0, g1), mix(1, b0, b1), 0xff}
		p[3] = [4]byte{}
	}
	return p
}

// mix returns (w*a + b) / (w + 1).
func mix(w int, a, b byte) byte {
	return byte((w*int(a) + int(b)) / (w + 1))
}

func expand565(c uint16) (r, g, b byte) {
	r5 := byte(c >> 11 & 0x1f)
	g6 := byte(c >> 5 & 0x3f)
	b5 := byte(c & 0x1f)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// alphaPalette expands the DXT5 alpha endpoints into the 8-entry table.
func alphaPalette(a0, a1 byte) [8]byte {
	var t [8]byte
	t[0], t[1] = a0, a1
	if a0 > a1 {
		for i := 1; i < 7; i++ {
			t[i+1] = byte(((7-i)*int(a0) + i*int(a1)) / 7)
		}
	} else {
		for i := 1; i < 5; i++ {
			t[i+1] = byte(((5-i)*int(a0) + i*int(a1)) / 5)
		}
		t[6] = 0
		t[7] = 0xff
	}
	return t
}
