/*
Package blp reads Blizzard BLP2 texture containers.

A BLP2 file is a fixed header (dimensions, content encoding, alpha layout,
palette) followed by up to 16 mipmap levels addressed by offset/size pairs.
Mipmap content is decoded by the codec registered for the header's content
encoding; importing this package registers the DXT, indexed-color and
uncompressed codecs, plus the "blp" format with the stdlib image registry.

Malformed files decode leniently where possible: a mipmap size field
pointing past the end of the file is clamped to the available bytes, and a
payload too short for its level still yields the rows that could be
decoded.
*/
package blp

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/hiveworkshop/go-blp-codec/codec"
	"github.com/hiveworkshop/go-blp-codec/mipmap"
	"github.com/hiveworkshop/go-blp-codec/pixel"

	_ "github.com/hiveworkshop/go-blp-codec/direct"
	_ "github.com/hiveworkshop/go-blp-codec/dxt"
	_ "github.com/hiveworkshop/go-blp-codec/palette"
)

// File is a parsed BLP2 container. Mipmap data stays in the backing byte
// slice and is decoded on demand.
type File struct {
	Header *Header

	data []byte
}

// Parse parses a BLP2 container from raw bytes. The returned File keeps a
// reference to data.
func Parse(data []byte) (*File, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	return &File{Header: h, data: data}, nil
}

// Mipmaps returns the number of mipmap levels in the chain.
func (f *File) Mipmaps() int { return f.Header.MipCount() }

// MipData returns the raw payload of a mipmap level. An oversized size
// field is clamped to the bytes actually present, keeping technically
// corrupt files decodable.
func (f *File) MipData(level int) ([]byte, error) {
	if level < 0 || level >= f.Mipmaps() {
		return nil, fmt.Errorf("%w: mipmap level %d of %d", ErrInvalidFile, level, f.Mipmaps())
	}
	offset := int(f.Header.Offsets[level])
	size := int(f.Header.Sizes[level])
	if offset <= 0 || size <= 0 || offset >= len(f.data) {
		return nil, fmt.Errorf("%w: mipmap level %d has no data", ErrInvalidFile, level)
	}
	if offset+size > len(f.data) {
		size = len(f.data) - offset
	}
	return f.data[offset : offset+size], nil
}

// DecodeMipmap decodes one mipmap level under the given decode parameters
// (nil for defaults). On a scanline failure the partially decoded buffer is
// returned together with the error.
func (f *File) DecodeMipmap(level int, param *mipmap.DecodeParam) (pixel.Buffer, error) {
	data, err := f.MipData(level)
	if err != nil {
		return nil, err
	}

	factory, err := codec.GetEncoding(f.Header.ColorEncoding)
	if err != nil {
		return nil, fmt.Errorf("%w: content encoding %s", ErrUnsupported, f.Header.ColorEncoding)
	}
	c, err := factory(codec.Params{
		AlphaDepth:    f.Header.AlphaDepth,
		AlphaEncoding: f.Header.AlphaEncoding,
		Palette:       f.Header.Palette[:],
	})
	if err != nil {
		return nil, err
	}

	width, height := f.Header.MipDimensions(level)
	return c.DecodeMipmap(data, param, width, height)
}

// Decode reads a BLP2 stream and decodes its full-resolution image.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	buf, err := f.DecodeMipmap(0, nil)
	if err != nil {
		return nil, err
	}
	img, ok := buf.(image.Image)
	if !ok {
		return nil, fmt.Errorf("%w: buffer format %s", ErrUnsupported, buf.Format())
	}
	return img, nil
}

// DecodeConfig returns the dimensions and color model of a BLP2 stream
// without decoding pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, data); err != nil {
		return image.Config{}, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	h, err := ParseHeader(data)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}

func init() {
	image.RegisterFormat("blp", magic, Decode, DecodeConfig)
}
