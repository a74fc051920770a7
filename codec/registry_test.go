package codec_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/hiveworkshop/go-blp-codec/codec"

	_ "github.com/hiveworkshop/go-blp-codec/direct"
	_ "github.com/hiveworkshop/go-blp-codec/dxt"
	_ "github.com/hiveworkshop/go-blp-codec/palette"
)

func TestDefaultRegistryLookup(t *testing.T) {
	for _, name := range []string{"dxt", "palette", "uncompressed"} {
		if _, err := codec.Get(name); err != nil {
			t.Errorf("Get(%q) error: %v", name, err)
		}
	}
	for _, enc := range []codec.Encoding{
		codec.EncodingPalette, codec.EncodingDXT, codec.EncodingUncompressed,
	} {
		if _, err := codec.GetEncoding(enc); err != nil {
			t.Errorf("GetEncoding(%v) error: %v", enc, err)
		}
	}
}

func TestDefaultRegistryMiss(t *testing.T) {
	if _, err := codec.Get("nope"); !errors.Is(err, codec.ErrCodecNotFound) {
		t.Errorf("Get(nope) error = %v, want ErrCodecNotFound", err)
	}
	if _, err := codec.GetEncoding(codec.EncodingJPEG); !errors.Is(err, codec.ErrCodecNotFound) {
		t.Errorf("GetEncoding(jpeg) error = %v, want ErrCodecNotFound", err)
	}
}

func TestList(t *testing.T) {
	names := codec.List()
	for _, want := range []string{"dxt", "palette", "uncompressed"} {
		if !slices.Contains(names, want) {
			t.Errorf("List() = %v, missing %q", names, want)
		}
	}
}

func TestFactorySelectsVariant(t *testing.T) {
	f, err := codec.GetEncoding(codec.EncodingDXT)
	if err != nil {
		t.Fatalf("GetEncoding(dxt): %v", err)
	}

	tests := []struct {
		params codec.Params
		want   string
	}{
		{codec.Params{AlphaDepth: 0}, "DXT1"},
		{codec.Params{AlphaDepth: 8, AlphaEncoding: 1}, "DXT3"},
		{codec.Params{AlphaDepth: 8, AlphaEncoding: 7}, "DXT5"},
	}
	for _, tt := range tests {
		c, err := f(tt.params)
		if err != nil {
			t.Fatalf("factory(%+v): %v", tt.params, err)
		}
		if c.Name() != tt.want {
			t.Errorf("factory(%+v).Name() = %q, want %q", tt.params, c.Name(), tt.want)
		}
	}
}

func TestFactoryValidatesParams(t *testing.T) {
	f, err := codec.Get("palette")
	if err != nil {
		t.Fatalf("Get(palette): %v", err)
	}
	// Indexed content cannot be decoded without a palette.
	if _, err := f(codec.Params{AlphaDepth: 8}); !errors.Is(err, codec.ErrInvalidParameter) {
		t.Errorf("factory(no palette) error = %v, want ErrInvalidParameter", err)
	}
}

func TestLocalRegistry(t *testing.T) {
	r := codec.NewRegistry()
	if _, err := r.Get("dxt"); !errors.Is(err, codec.ErrCodecNotFound) {
		t.Errorf("empty registry Get() error = %v, want ErrCodecNotFound", err)
	}

	called := false
	r.Register(codec.EncodingDXT, "custom", func(codec.Params) (codec.MipmapCodec, error) {
		called = true
		return nil, nil
	})
	f, err := r.Get("custom")
	if err != nil {
		t.Fatalf("Get(custom): %v", err)
	}
	if _, err := f(codec.Params{}); err != nil {
		t.Fatalf("factory: %v", err)
	}
	if !called {
		t.Error("registered factory was not invoked")
	}
	if len(r.List()) != 1 {
		t.Errorf("List() = %v, want one entry", r.List())
	}
}

func TestEncodingString(t *testing.T) {
	tests := []struct {
		enc  codec.Encoding
		want string
	}{
		{codec.EncodingJPEG, "jpeg"},
		{codec.EncodingPalette, "palette"},
		{codec.EncodingDXT, "dxt"},
		{codec.EncodingUncompressed, "uncompressed"},
	}
	for _, tt := range tests {
		if got := tt.enc.String(); got != tt.want {
			t.Errorf("Encoding(%d).String() = %q, want %q", tt.enc, got, tt.want)
		}
	}
}
