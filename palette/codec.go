// Package palette decodes indexed-color BLP mipmap content: one palette
// index byte per texel, followed by a packed alpha plane at the header's
// alpha bit depth.
package palette

import (
	"fmt"
	"io"

	"github.com/hiveworkshop/go-blp-codec/codec"
	"github.com/hiveworkshop/go-blp-codec/mipmap"
	"github.com/hiveworkshop/go-blp-codec/pixel"
)

// Entries is the number of color entries in a BLP palette.
const Entries = 256

var _ codec.MipmapCodec = (*Codec)(nil)

// Codec implements the mipmap codec interface for indexed-color content.
type Codec struct {
	// colors holds the palette expanded to RGBA.
	colors     [Entries][4]byte
	alphaDepth uint8
}

// NewCodec creates an indexed-color codec from the header's 256 BGRA
// palette entries and alpha bit depth (0, 1, 4 or 8).
func NewCodec(pal []uint32, alphaDepth uint8) (*Codec, error) {
	if len(pal) != Entries {
		return nil, fmt.Errorf("palette: %w: need %d palette entries, have %d",
			codec.ErrInvalidParameter, Entries, len(pal))
	}
	switch alphaDepth {
	case 0, 1, 4, 8:
	default:
		return nil, fmt.Errorf("palette: %w: alpha depth %d",
			codec.ErrInvalidParameter, alphaDepth)
	}

	c := &Codec{alphaDepth: alphaDepth}
	for i, entry := range pal {
		// Palette entries are stored as BGRA words.
		c.colors[i] = [4]byte{
			byte(entry >> 16),
			byte(entry >> 8),
			byte(entry),
			byte(entry >> 24),
		}
	}
	return c, nil
}

// DecodeMipmap decodes one indexed mipmap level through the transfer
// engine.
func (c *Codec) DecodeMipmap(data []byte, param *mipmap.DecodeParam, width, height int) (pixel.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("palette: invalid dimensions: %dx%d", width, height)
	}
	dec := &lineDecoder{codec: c, alphaBase: width * height}
	return mipmap.Decode(data, param, width, height, dec)
}

// EncodeMipmap fails: writing indexed content is not supported.
func (c *Codec) EncodeMipmap(buf pixel.Buffer, width, height int) ([]byte, error) {
	return nil, fmt.Errorf("palette: %w", codec.ErrEncodeUnsupported)
}

// Name returns a human-readable name for this codec.
func (c *Codec) Name() string { return "indexed" }

// Encoding returns the BLP content encoding this codec handles.
func (c *Codec) Encoding() codec.Encoding { return codec.EncodingPalette }

type lineDecoder struct {
	codec *Codec

	// alphaBase is the byte offset of the packed alpha plane, which
	// follows the full index plane.
	alphaBase int
}

// DecodeLine resolves one row of palette indices (and its slice of the
// packed alpha plane) into R, G, B, A band planes.
func (d *lineDecoder) DecodeLine(data []byte, planes [][]byte, width, row int) error {
	if len(planes) < 4 {
		return fmt.Errorf("palette: need 4 output planes, have %d", len(planes))
	}
	base := row * width
	if base < 0 || base+width > len(data) {
		return fmt.Errorf("palette: truncated data: row %d needs %d index bytes at offset %d, have %d: %w",
			row, width, base, len(data), io.ErrUnexpectedEOF)
	}

	for x := 0; x < width; x++ {
		c := d.codec.colors[data[base+x]]
		planes[0][x] = c[0]
		planes[1][x] = c[1]
		planes[2][x] = c[2]
	}
	return d.decodeAlpha(data, planes[3], width, row)
}

func (d *lineDecoder) decodeAlpha(data []byte, plane []byte, width, row int) error {
	depth := int(d.codec.alphaDepth)
	if depth == 0 {
		for x := 0; x < width; x++ {
			plane[x] = 0xff
		}
		return nil
	}

	firstTexel := row * width
	lastBit := (firstTexel+width)*depth - 1
	if d.alphaBase+lastBit/8 >= len(data) {
		return fmt.Errorf("palette: truncated alpha plane: row %d at depth %d: %w",
			row, depth, io.ErrUnexpectedEOF)
	}

	for x := 0; x < width; x++ {
		bit := (firstTexel + x) * depth
		v := data[d.alphaBase+bit/8] >> (bit % 8)
		switch depth {
		case 1:
			if v&1 != 0 {
				plane[x] = 0xff
			} else {
				plane[x] = 0
			}
		case 4:
			plane[x] = (v & 0xf) * 17
		default:
			plane[x] = v
		}
	}
	return nil
}

func init() {
	codec.Register(codec.EncodingPalette, "palette", func(p codec.Params) (codec.MipmapCodec, error) {
		return NewCodec(p.Palette, p.AlphaDepth)
	})
}
