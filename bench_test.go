package blurlock

import (
	"testing"
)

func gradient(w, h int) *RGB {
	img := NewRGB(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, uint8(x*255/Max(w-1, 1)), uint8(y*255/Max(h-1, 1)), 0x80)
		}
	}
	return img
}

func BenchmarkProcess(b *testing.B) {
	src := gradient(1920, 1080)
	g := Geometry{Width: 1920, Height: 1080}
	p := DefaultProcessor()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Process(src, g); err != nil {
			b.Fatalf("Failed processing benchmark image: %v", err)
		}
	}
}

func BenchmarkDecodeZPixmap(b *testing.B) {
	f := PixelFormat{
		Width:        1920,
		Height:       1080,
		BitsPerPixel: 32,
		ScanlinePad:  32,
		Masks:        ChannelMasks{Red: 0xff0000, Green: 0x00ff00, Blue: 0x0000ff},
	}
	data := make([]byte, f.Stride()*f.Height)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeZPixmap(data, f); err != nil {
			b.Fatalf("Failed decoding benchmark image: %v", err)
		}
	}
}
