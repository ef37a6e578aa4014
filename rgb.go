package blurlock

import (
	"fmt"
	"image"
	"image/color"
)

// RGB is a packed 24-bit image: Width*Height pixels stored row by row,
// 3 bytes per pixel and no padding between rows. This is the layout
// i3lock expects from its --raw input.
type RGB struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewRGB returns a black image of the given size.
func NewRGB(width, height int) *RGB {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &RGB{
		Pix:    make([]uint8, width*height*3),
		Width:  width,
		Height: height,
	}
}

// Validate reports whether the buffer length matches the dimensions.
func (p *RGB) Validate() error {
	if p == nil || p.Pix == nil {
		return fmt.Errorf("nil pixel buffer")
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid pixel buffer size %dx%d", p.Width, p.Height)
	}
	if want := p.Width * p.Height * 3; len(p.Pix) != want {
		return fmt.Errorf("pixel buffer holds %d bytes, %dx%d needs %d", len(p.Pix), p.Width, p.Height, want)
	}
	return nil
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *RGB) PixOffset(x, y int) int {
	return (y*p.Width + x) * 3
}

func (p *RGB) ColorModel() color.Model { return color.RGBAModel }

func (p *RGB) Bounds() image.Rectangle { return image.Rect(0, 0, p.Width, p.Height) }

func (p *RGB) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(p.Bounds())) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	return color.RGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: 0xff}
}

// Set stores the pixel at (x, y); the alpha component is dropped.
func (p *RGB) Set(x, y int, r, g, b uint8) {
	if !(image.Point{X: x, Y: y}.In(p.Bounds())) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i+0] = r
	p.Pix[i+1] = g
	p.Pix[i+2] = b
}

// ToRGBA expands the buffer into an opaque *image.RGBA.
func (p *RGB) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(p.Bounds())
	n := Min(len(p.Pix)/3, len(dst.Pix)/4)
	for i := 0; i < n; i++ {
		si, di := i*3, i*4
		dst.Pix[di+0] = p.Pix[si+0]
		dst.Pix[di+1] = p.Pix[si+1]
		dst.Pix[di+2] = p.Pix[si+2]
		dst.Pix[di+3] = 0xff
	}
	return dst
}

// ImgToRGB packs any image into an RGB buffer with min-point at (0, 0).
// Transparent regions are composed over black.
func ImgToRGB(img image.Image) *RGB {
	if src, ok := img.(*RGB); ok {
		dst := NewRGB(src.Width, src.Height)
		copy(dst.Pix, src.Pix)
		return dst
	}
	rgba := ImgToRGBA(img)
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	dst := NewRGB(w, h)

	di := 0
	for y := 0; y < h; y++ {
		si := rgba.PixOffset(0, y)
		for x := 0; x < w; x++ {
			dst.Pix[di+0] = rgba.Pix[si+0]
			dst.Pix[di+1] = rgba.Pix[si+1]
			dst.Pix[di+2] = rgba.Pix[si+2]
			di += 3
			si += 4
		}
	}
	return dst
}
