package codec

import (
	"fmt"

	"github.com/hiveworkshop/go-blp-codec/mipmap"
	"github.com/hiveworkshop/go-blp-codec/pixel"
)

// Encoding is the BLP content encoding tag stored in the container header.
type Encoding uint8

const (
	// EncodingJPEG marks JPEG-compressed mipmap content.
	EncodingJPEG Encoding = 0

	// EncodingPalette marks indexed-color mipmap content.
	EncodingPalette Encoding = 1

	// EncodingDXT marks S3TC block-compressed mipmap content.
	EncodingDXT Encoding = 2

	// EncodingUncompressed marks raw BGRA8888 mipmap content.
	EncodingUncompressed Encoding = 3
)

func (e Encoding) String() string {
	switch e {
	case EncodingJPEG:
		return "jpeg"
	case EncodingPalette:
		return "palette"
	case EncodingDXT:
		return "dxt"
	case EncodingUncompressed:
		return "uncompressed"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// MipmapCodec is the universal interface for mipmap content codecs.
type MipmapCodec interface {
	// DecodeMipmap decodes one mipmap level's compressed data into a
	// pixel buffer under the given decode parameters.
	DecodeMipmap(data []byte, param *mipmap.DecodeParam, width, height int) (pixel.Buffer, error)

	// EncodeMipmap encodes a pixel buffer back to mipmap data.
	// No codec in this module supports encoding; all return
	// ErrEncodeUnsupported.
	EncodeMipmap(buf pixel.Buffer, width, height int) ([]byte, error)

	// Name returns a human-readable name.
	Name() string

	// Encoding returns the content encoding tag this codec handles.
	Encoding() Encoding
}

// Params carries the per-file header state a codec needs. Mipmap codecs are
// constructed per container because palette entries and alpha layout come
// from the file header.
type Params struct {
	// AlphaDepth is the alpha bit depth from the header (0, 1, 4 or 8).
	AlphaDepth uint8

	// AlphaEncoding selects the DXT alpha variant (0 DXT1, 1 DXT3,
	// 7 DXT5).
	AlphaEncoding uint8

	// Palette holds the 256 BGRA color entries for indexed content,
	// nil otherwise.
	Palette []uint32
}

// Factory builds a codec instance from per-file parameters.
type Factory func(p Params) (MipmapCodec, error)
