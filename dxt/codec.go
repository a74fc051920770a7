package dxt

import (
	"fmt"

	"github.com/hiveworkshop/go-blp-codec/codec"
	"github.com/hiveworkshop/go-blp-codec/mipmap"
	"github.com/hiveworkshop/go-blp-codec/pixel"
)

var _ codec.MipmapCodec = (*Codec)(nil)

// Codec implements the mipmap codec interface for S3TC content.
type Codec struct {
	format Format
}

// NewCodec creates a codec for the given S3TC variant.
func NewCodec(format Format) *Codec {
	return &Codec{format: format}
}

// Format returns the S3TC variant this codec decodes.
func (c *Codec) Format() Format {
	return c.format
}

// DecodeMipmap decodes one DXT mipmap level through the transfer engine.
// A fresh line decoder is created per call, so the block-row cache never
// crosses decode calls.
func (c *Codec) DecodeMipmap(data []byte, param *mipmap.DecodeParam, width, height int) (pixel.Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("dxt: invalid dimensions: %dx%d", width, height)
	}
	return mipmap.Decode(data, param, width, height, NewLineDecoder(c.format))
}

// EncodeMipmap fails: writing DXT content is not supported.
func (c *Codec) EncodeMipmap(buf pixel.Buffer, width, height int) ([]byte, error) {
	return nil, fmt.Errorf("dxt: %w", codec.ErrEncodeUnsupported)
}

// Name returns a human-readable name for this codec.
func (c *Codec) Name() string {
	return c.format.String()
}

// Encoding returns the BLP content encoding this codec handles.
func (c *Codec) Encoding() codec.Encoding {
	return codec.EncodingDXT
}

func init() {
	codec.Register(codec.EncodingDXT, "dxt", func(p codec.Params) (codec.MipmapCodec, error) {
		return NewCodec(FormatFor(p.AlphaDepth, p.AlphaEncoding)), nil
	})
}
