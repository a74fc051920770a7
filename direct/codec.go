// Package direct decodes uncompressed BLP mipmap content: raw BGRA8888
// texels, one 32-bit word per pixel.
package direct

import (
	"fmt"
	"io"

	"github.com/hiveworkshop/go-blp-codec/codec"
	"github.com/hiveworkshop/go-blp-codec/mipmap"
	"github.com/hiveworkshop/go-blp-codec/pixel"
)

var _ codec.MipmapCodec = (*Codec)(nil)

// Codec implements the mipmap codec interface for uncompressed content.
type Codec struct {
	alphaDepth uint8
}

// NewCodec creates an uncompressed-content codec. An alpha depth of 0
// forces opaque alpha regardless of the stored alpha bytes.
func NewCodec(alphaDepth uint8) *Codec {
	return &Codec{alphaDepth: alphaDepth}
}

// DecodeMipmap decodes one uncompressed mipmap level through the transfer
// engine.
func (c *Codec) DecodeMipmap(data []byte, param *mipmap.DecodeParam, width, height int) (pixel.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("direct: invalid dimensions: %dx%d", width, height)
	}
	return mipmap.Decode(data, param, width, height, &lineDecoder{alphaDepth: c.alphaDepth})
}

// EncodeMipmap fails: writing uncompressed content is not supported.
func (c *Codec) EncodeMipmap(buf pixel.Buffer, width, height int) ([]byte, error) {
	return nil, fmt.Errorf("direct: %w", codec.ErrEncodeUnsupported)
}

// Name returns a human-readable name for this codec.
func (c *Codec) Name() string { return "BGRA8888" }

// Encoding returns the BLP content encoding this codec handles.
func (c *Codec) Encoding() codec.Encoding { return codec.EncodingUncompressed }

type lineDecoder struct {
	alphaDepth uint8
}

// DecodeLine splits one row of BGRA words into R, G, B, A band planes.
func (d *lineDecoder) DecodeLine(data []byte, planes [][]byte, width, row int) error {
	if len(planes) < 4 {
		return fmt.Errorf("direct: need 4 output planes, have %d", len(planes))
	}
	base := row * width * 4
	if base < 0 || base+width*4 > len(data) {
		return fmt.Errorf("direct: truncated data: row %d needs %d bytes at offset %d, have %d: %w",
			row, width*4, base, len(data), io.ErrUnexpectedEOF)
	}

	for x := 0; x < width; x++ {
		px := data[base+4*x : base+4*x+4]
		planes[0][x] = px[2]
		planes[1][x] = px[1]
		planes[2][x] = px[0]
		if d.alphaDepth == 0 {
			planes[3][x] = 0xff
		} else {
			planes[3][x] = px[3]
		}
	}
	return nil
}

func init() {
	codec.Register(codec.EncodingUncompressed, "uncompressed", func(p codec.Params) (codec.MipmapCodec, error) {
		return NewCodec(p.AlphaDepth), nil
	})
}
