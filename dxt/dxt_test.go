package dxt

import (
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestAlignUp4(t *testing.T) {
	tests := []struct{ in, want int }{
		{1, 4}, {2, 4}, {3, 4}, {4, 4}, {5, 8}, {8, 8}, {9, 12},
	}
	for _, tt := range tests {
		if got := AlignUp4(tt.in); got != tt.want {
			t.Errorf("AlignUp4(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		alphaDepth, alphaEncoding uint8
		want                      Format
	}{
		{0, 0, DXT1},
		{1, 0, DXT1},
		{1, 7, DXT1}, // depth wins over encoding
		{8, 1, DXT3},
		{4, 0, DXT3},
		{8, 7, DXT5},
	}
	for _, tt := range tests {
		if got := FormatFor(tt.alphaDepth, tt.alphaEncoding); got != tt.want {
			t.Errorf("FormatFor(%d, %d) = %s, want %s",
				tt.alphaDepth, tt.alphaEncoding, got, tt.want)
		}
	}
}

func TestBlockSize(t *testing.T) {
	if got := DXT1.BlockSize(); got != 8 {
		t.Errorf("DXT1.BlockSize() = %d, want 8", got)
	}
	if got := DXT3.BlockSize(); got != 16 {
		t.Errorf("DXT3.BlockSize() = %d, want 16", got)
	}
	if got := DXT5.BlockSize(); got != 16 {
		t.Errorf("DXT5.BlockSize() = %d, want 16", got)
	}
}

// colorBlock builds one 8-byte DXT color block from the two RGB565
// endpoints and per-texel 2-bit indices.
func colorBlock(c0, c1 uint16, bits uint32) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint16(b[0:2], c0)
	binary.LittleEndian.PutUint16(b[2:4], c1)
	binary.LittleEndian.PutUint32(b[4:8], bits)
	return b
}

func decodeRow(t *testing.T, f Format, data []byte, width, row int) [4][]byte {
	t.Helper()
	planes := make([][]byte, 4)
	for i := range planes {
		planes[i] = make([]byte, width)
	}
	if err := NewLineDecoder(f).DecodeLine(data, planes, width, row); err != nil {
		t.Fatalf("DecodeLine(row %d): %v", row, err)
	}
	var out [4][]byte
	copy(out[:], planes)
	return out
}

func checkSolid(t *testing.T, planes [4][]byte, want [4]byte) {
	t.Helper()
	for b := 0; b < 4; b++ {
		for x, v := range planes[b] {
			if v != want[b] {
				t.Fatalf("band %d sample %d = %d, want %d", b, x, v, want[b])
			}
		}
	}
}

func TestDXT1SolidColor(t *testing.T) {
	// All indices select endpoint 0, pure red in RGB565.
	data := colorBlock(0xf800, 0x0000, 0)
	planes := decodeRow(t, DXT1, data, 4, 0)
	checkSolid(t, planes, [4]byte{255, 0, 0, 255})
}

func TestDXT1PunchThrough(t *testing.T) {
	// c0 <= c1 switches the block to 3-color mode; index 3 decodes as
	// transparent black.
	data := colorBlock(0x0000, 0xffff, 0xffffffff)
	planes := decodeRow(t, DXT1, data, 4, 0)
	checkSolid(t, planes, [4]byte{0, 0, 0, 0})
}

func TestDXT1Interpolated(t *testing.T) {
	// c0 > c1 four-color mode: index 2 is (2*c0 + c1)/3.
	data := colorBlock(0xf800, 0x0000, 0xaaaaaaaa) // all indices 2
	planes := decodeRow(t, DXT1, data, 4, 0)
	checkSolid(t, planes, [4]byte{170, 0, 0, 255})
}

func TestDXT3ExplicitAlpha(t *testing.T) {
	data := make([]byte, 16)
	for i := 0; i < 8; i++ {
		data[i] = 0x88 // both nibbles 8, scales to 8*17 = 136
	}
	copy(data[8:], colorBlock(0xf800, 0x0000, 0))
	planes := decodeRow(t, DXT3, data, 4, 0)
	checkSolid(t, planes, [4]byte{255, 0, 0, 136})
}

func TestDXT5InterpolatedAlpha(t *testing.T) {
	data := make([]byte, 16)
	data[0], data[1] = 255, 0 // a0 > a1; all indices 0 select a0
	copy(data[8:], colorBlock(0xf800, 0x0000, 0))
	planes := decodeRow(t, DXT5, data, 4, 0)
	checkSolid(t, planes, [4]byte{255, 0, 0, 255})
}

func TestDXT5AlphaExtremes(t *testing.T) {
	// a0 <= a1 six-interpolant mode: index 7 is forced opaque.
	data := make([]byte, 16)
	data[0], data[1] = 0, 255
	for i := 2; i < 8; i++ {
		data[i] = 0xff // all 3-bit indices 7
	}
	copy(data[8:], colorBlock(0xf800, 0x0000, 0))
	planes := decodeRow(t, DXT5, data, 4, 0)
	checkSolid(t, planes, [4]byte{255, 0, 0, 255})
}

func TestTwoBlockRow(t *testing.T) {
	// Width 8 at DXT1 is two blocks per block row: red then blue.
	data := append(colorBlock(0xf800, 0, 0), colorBlock(0x001f, 0, 0)...)
	planes := decodeRow(t, DXT1, data, 8, 2)
	for x := 0; x < 4; x++ {
		if planes[0][x] != 255 || planes[2][x] != 0 {
			t.Errorf("sample %d = (%d,_,%d), want red", x, planes[0][x], planes[2][x])
		}
	}
	for x := 4; x < 8; x++ {
		if planes[0][x] != 0 || planes[2][x] != 255 {
			t.Errorf("sample %d = (%d,_,%d), want blue", x, planes[0][x], planes[2][x])
		}
	}
}

func TestBlockRowCache(t *testing.T) {
	data := colorBlock(0xf800, 0, 0)
	d := NewLineDecoder(DXT1)
	planes := make([][]byte, 4)
	for i := range planes {
		planes[i] = make([]byte, 4)
	}
	for row := 0; row < 4; row++ {
		if err := d.DecodeLine(data, planes, 4, row); err != nil {
			t.Fatalf("DecodeLine(row %d): %v", row, err)
		}
		if planes[0][0] != 255 {
			t.Fatalf("row %d band 0 = %d, want 255", row, planes[0][0])
		}
	}
}

func TestTruncatedData(t *testing.T) {
	data := colorBlock(0xf800, 0, 0)
	d := NewLineDecoder(DXT1)
	planes := make([][]byte, 4)
	for i := range planes {
		planes[i] = make([]byte, 4)
	}
	// The first block row is backed, the second is not.
	if err := d.DecodeLine(data, planes, 4, 0); err != nil {
		t.Fatalf("DecodeLine(row 0): %v", err)
	}
	err := d.DecodeLine(data, planes, 4, 4)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("DecodeLine(row 4) error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestDecodeLineBadArgs(t *testing.T) {
	d := NewLineDecoder(DXT1)
	if err := d.DecodeLine(nil, make([][]byte, 2), 4, 0); err == nil {
		t.Error("DecodeLine with 2 planes should fail")
	}
	planes := make([][]byte, 4)
	for i := range planes {
		planes[i] = make([]byte, 4)
	}
	if err := d.DecodeLine(nil, planes, 0, 0); err == nil {
		t.Error("DecodeLine with zero width should fail")
	}
	if err := d.DecodeLine(nil, planes, 4, -1); err == nil {
		t.Error("DecodeLine with negative row should fail")
	}
}
