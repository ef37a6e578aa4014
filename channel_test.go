package blurlock

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestChannelMasksDecode(t *testing.T) {
	rgb888 := ChannelMasks{Red: 0xff0000, Green: 0x00ff00, Blue: 0x0000ff}
	bgr888 := ChannelMasks{Red: 0x0000ff, Green: 0x00ff00, Blue: 0xff0000}
	rgb565 := ChannelMasks{Red: 0xf800, Green: 0x07e0, Blue: 0x001f}

	tests := []struct {
		name    string
		masks   ChannelMasks
		pixel   uint32
		r, g, b uint8
	}{
		{"black", rgb888, 0x000000, 0x00, 0x00, 0x00},
		{"white", rgb888, 0xffffff, 0xff, 0xff, 0xff},
		{"red", rgb888, 0xff0000, 0xff, 0x00, 0x00},
		{"mixed", rgb888, 0x123456, 0x12, 0x34, 0x56},
		{"alpha bits ignored", rgb888, 0xff808080, 0x80, 0x80, 0x80},
		{"swapped order", bgr888, 0x123456, 0x56, 0x34, 0x12},
		{"565 white", rgb565, 0xffff, 0x1f, 0x3f, 0x1f},
		{"565 green", rgb565, 0x07e0, 0x00, 0x3f, 0x00},
		{"zero mask", ChannelMasks{}, 0xffffff, 0x00, 0x00, 0x00},
	}
	for _, tt := range tests {
		r, g, b := tt.masks.Decode(tt.pixel)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("%s: Decode(%#x) = (%#x, %#x, %#x), want (%#x, %#x, %#x)",
				tt.name, tt.pixel, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestPixelFormatStride(t *testing.T) {
	tests := []struct {
		f    PixelFormat
		want int
	}{
		{PixelFormat{Width: 3, BitsPerPixel: 32, ScanlinePad: 32}, 12},
		{PixelFormat{Width: 3, BitsPerPixel: 24, ScanlinePad: 32}, 12},
		{PixelFormat{Width: 3, BitsPerPixel: 16, ScanlinePad: 32}, 8},
		{PixelFormat{Width: 3, BitsPerPixel: 8, ScanlinePad: 8}, 3},
		{PixelFormat{Width: 3, BitsPerPixel: 8}, 3},
	}
	for _, tt := range tests {
		if got := tt.f.Stride(); got != tt.want {
			t.Errorf("Stride(%+v) = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestDecodeZPixmap32(t *testing.T) {
	f := PixelFormat{
		Width:        2,
		Height:       2,
		BitsPerPixel: 32,
		ScanlinePad:  32,
		ByteOrder:    binary.LittleEndian,
		Masks:        ChannelMasks{Red: 0xff0000, Green: 0x00ff00, Blue: 0x0000ff},
	}
	data := []byte{
		0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0xff,
		0x56, 0x34, 0x12, 0x00, 0x00, 0x00, 0xff, 0x00,
	}
	img, err := DecodeZPixmap(data, f)
	if err != nil {
		t.Fatalf("DecodeZPixmap: %v", err)
	}
	want := []uint8{
		0x00, 0x00, 0x00, 0xff, 0xff, 0xff,
		0x12, 0x34, 0x56, 0xff, 0x00, 0x00,
	}
	if string(img.Pix) != string(want) {
		t.Errorf("got pixels % x, want % x", img.Pix, want)
	}
	if err := img.Validate(); err != nil {
		t.Error(err)
	}
}

func TestDecodeZPixmapByteOrder(t *testing.T) {
	f := PixelFormat{
		Width:        1,
		Height:       1,
		BitsPerPixel: 32,
		ScanlinePad:  32,
		ByteOrder:    binary.BigEndian,
		Masks:        ChannelMasks{Red: 0xff0000, Green: 0x00ff00, Blue: 0x0000ff},
	}
	img, err := DecodeZPixmap([]byte{0x00, 0x12, 0x34, 0x56}, f)
	if err != nil {
		t.Fatalf("DecodeZPixmap: %v", err)
	}
	if r, g, b := img.Pix[0], img.Pix[1], img.Pix[2]; r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("got (%#x, %#x, %#x), want (0x12, 0x34, 0x56)", r, g, b)
	}
}

func TestDecodeZPixmapPadding(t *testing.T) {
	// 16 bit pixels, rows of 3 pixels padded to 8 bytes.
	f := PixelFormat{
		Width:        3,
		Height:       2,
		BitsPerPixel: 16,
		ScanlinePad:  32,
		ByteOrder:    binary.LittleEndian,
		Masks:        ChannelMasks{Red: 0xf800, Green: 0x07e0, Blue: 0x001f},
	}
	data := []byte{
		0x00, 0xf8, 0xe0, 0x07, 0x1f, 0x00, 0xaa, 0xaa,
		0xff, 0xff, 0x00, 0x00, 0x00, 0xf8, 0xaa, 0xaa,
	}
	img, err := DecodeZPixmap(data, f)
	if err != nil {
		t.Fatalf("DecodeZPixmap: %v", err)
	}
	want := []uint8{
		0x1f, 0x00, 0x00, 0x00, 0x3f, 0x00, 0x00, 0x00, 0x1f,
		0x1f, 0x3f, 0x1f, 0x00, 0x00, 0x00, 0x1f, 0x00, 0x00,
	}
	if string(img.Pix) != string(want) {
		t.Errorf("got pixels % x, want % x", img.Pix, want)
	}
}

func TestDecodeZPixmap24(t *testing.T) {
	masks := ChannelMasks{Red: 0xff0000, Green: 0x00ff00, Blue: 0x0000ff}
	lsb := PixelFormat{Width: 1, Height: 1, BitsPerPixel: 24, ScanlinePad: 8, ByteOrder: binary.LittleEndian, Masks: masks}
	msb := PixelFormat{Width: 1, Height: 1, BitsPerPixel: 24, ScanlinePad: 8, ByteOrder: binary.BigEndian, Masks: masks}

	img, err := DecodeZPixmap([]byte{0x56, 0x34, 0x12}, lsb)
	if err != nil {
		t.Fatalf("DecodeZPixmap: %v", err)
	}
	if string(img.Pix) != "\x12\x34\x56" {
		t.Errorf("LSB first: got % x", img.Pix)
	}

	img, err = DecodeZPixmap([]byte{0x12, 0x34, 0x56}, msb)
	if err != nil {
		t.Fatalf("DecodeZPixmap: %v", err)
	}
	if string(img.Pix) != "\x12\x34\x56" {
		t.Errorf("MSB first: got % x", img.Pix)
	}
}

func TestDecodeZPixmapErrors(t *testing.T) {
	masks := ChannelMasks{Red: 0xff0000, Green: 0x00ff00, Blue: 0x0000ff}
	tests := []struct {
		name string
		data []byte
		f    PixelFormat
	}{
		{"nil data", nil, PixelFormat{Width: 1, Height: 1, BitsPerPixel: 32, ScanlinePad: 32, Masks: masks}},
		{"short data", make([]byte, 7), PixelFormat{Width: 2, Height: 1, BitsPerPixel: 32, ScanlinePad: 32, Masks: masks}},
		{"zero width", make([]byte, 4), PixelFormat{Width: 0, Height: 1, BitsPerPixel: 32, ScanlinePad: 32, Masks: masks}},
		{"odd pixel size", make([]byte, 4), PixelFormat{Width: 1, Height: 1, BitsPerPixel: 12, ScanlinePad: 32, Masks: masks}},
	}
	for _, tt := range tests {
		_, err := DecodeZPixmap(tt.data, tt.f)
		if !errors.Is(err, ErrCapture) {
			t.Errorf("%s: got error %v, want ErrCapture", tt.name, err)
		}
	}
}
