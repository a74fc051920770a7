package blp

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hiveworkshop/go-blp-codec/codec"
)

var (
	// ErrInvalidFile is returned for malformed container data.
	ErrInvalidFile = errors.New("blp: invalid file")

	// ErrUnsupported is returned for well-formed containers this module
	// cannot decode.
	ErrUnsupported = errors.New("blp: unsupported format")
)

const (
	magic = "BLP2"

	// HeaderSize is the fixed BLP2 header size: magic, fixed fields,
	// 16 mipmap offsets, 16 mipmap sizes, 256 palette entries.
	HeaderSize = 4 + 16 + 64 + 64 + 1024

	// MaxMipmaps is the number of mipmap slots in the header.
	MaxMipmaps = 16
)

// Header is the parsed BLP2 container header.
type Header struct {
	Version       uint32
	ColorEncoding codec.Encoding
	AlphaDepth    uint8
	AlphaEncoding uint8
	HasMips       uint8
	Width         uint32
	Height        uint32
	Offsets       [MaxMipmaps]uint32
	Sizes         [MaxMipmaps]uint32

	// Palette holds 256 BGRA entries; meaningful only for
	// EncodingPalette content.
	Palette [256]uint32
}

// ParseHeader parses and validates a BLP2 header.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes, header needs %d", ErrInvalidFile, len(data), HeaderSize)
	}
	if string(data[0:4]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidFile, data[0:4])
	}

	h := &Header{
		Version:       binary.LittleEndian.Uint32(data[4:8]),
		ColorEncoding: codec.Encoding(data[8]),
		AlphaDepth:    data[9],
		AlphaEncoding: data[10],
		HasMips:       data[11],
		Width:         binary.LittleEndian.Uint32(data[12:16]),
		Height:        binary.LittleEndian.Uint32(data[16:20]),
	}

	o := 20
	for i := range h.Offsets {
		h.Offsets[i] = binary.LittleEndian.Uint32(data[o:])
		o += 4
	}
	for i := range h.Sizes {
		h.Sizes[i] = binary.LittleEndian.Uint32(data[o:])
		o += 4
	}
	for i := range h.Palette {
		h.Palette[i] = binary.LittleEndian.Uint32(data[o:])
		o += 4
	}

	if h.Version != 1 {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupported, h.Version)
	}
	if h.Width == 0 || h.Height == 0 {
		return nil, fmt.Errorf("%w: zero dimensions %dx%d", ErrInvalidFile, h.Width, h.Height)
	}
	return h, nil
}

// MipCount returns the number of mipmap levels in the chain: one when the
// header disables mipmaps, otherwise down to 1x1, capped at the header's
// slot count.
func (h *Header) MipCount() int {
	if h.HasMips == 0 {
		return 1
	}
	count := 1
	for w, ht := h.Width, h.Height; w > 1 || ht > 1; count++ {
		w, ht = max(w/2, 1), max(ht/2, 1)
	}
	return min(count, MaxMipmaps)
}

// MipDimensions returns the pixel dimensions of a mipmap level.
func (h *Header) MipDimensions(level int) (width, height int) {
	return max(int(h.Width)>>level, 1), max(int(h.Height)>>level, 1)
}
