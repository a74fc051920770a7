// Command blp2img converts a BLP2 texture to PNG, BMP or QOI.
//
// Usage:
//
//	blp2img [-mip N] [-f png|bmp|qoi] [-o output] input.blp
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"

	"github.com/hiveworkshop/go-blp-codec/blp"
)

func main() {
	mip := flag.Int("mip", 0, "mipmap level to decode")
	format := flag.String("f", "png", "output format: png, bmp or qoi")
	output := flag.String("o", "", "output path (default: input name with new extension)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: blp2img [-mip N] [-f png|bmp|qoi] [-o output] input.blp")
		os.Exit(1)
	}
	input := flag.Arg(0)

	if err := convert(input, *output, *format, *mip); err != nil {
		fmt.Fprintln(os.Stderr, "blp2img:", err)
		os.Exit(1)
	}
}

func convert(input, output, format string, mip int) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	f, err := blp.Parse(data)
	if err != nil {
		return err
	}
	if mip < 0 || mip >= f.Mipmaps() {
		return fmt.Errorf("mipmap level %d out of range (file has %d)", mip, f.Mipmaps())
	}

	buf, err := f.DecodeMipmap(mip, nil)
	if err != nil {
		return err
	}
	img, ok := buf.(image.Image)
	if !ok {
		return fmt.Errorf("decoded buffer is not an image")
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	}
	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch format {
	case "png":
		err = png.Encode(out, img)
	case "bmp":
		err = bmp.Encode(out, img)
	case "qoi":
		err = qoi.Encode(out, img)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}
	return out.Close()
}
