package pixel

import "fmt"

// Layout identifies how samples are arranged in memory. The set of layouts
// is closed: the transfer engine only negotiates formats listed here.
type Layout uint8

const (
	// LayoutInterleaved8 stores one byte per sample with all bands of a
	// pixel adjacent: b0 b1 b2 ... per pixel, rows in scanline order.
	LayoutInterleaved8 Layout = iota
)

func (l Layout) String() string {
	switch l {
	case LayoutInterleaved8:
		return "interleaved8"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// Format describes a destination pixel format: a storage layout plus a band
// count. Formats are plain comparable values so codecs can advertise
// candidate lists and decode parameters can request one by equality.
type Format struct {
	Layout Layout
	Bands  int
}

// RGBA8 is the interleaved 4x8-bit format produced by the mipmap codecs.
// Band order is R=0, G=1, B=2, A=3.
var RGBA8 = Format{Layout: LayoutInterleaved8, Bands: 4}

func (f Format) String() string {
	return fmt.Sprintf("%s/%d-band", f.Layout, f.Bands)
}

// NewBuffer allocates a zeroed buffer of the given format and dimensions.
func NewBuffer(f Format, width, height int) (Buffer, error) {
	switch f.Layout {
	case LayoutInterleaved8:
		return NewInterleaved8(f, width, height)
	default:
		return nil, fmt.Errorf("pixel: unknown layout %s", f.Layout)
	}
}
