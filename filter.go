package blurlock

import (
	"image"

	"github.com/fogleman/gg"
)

// Filter is a single step of the backdrop pipeline.
type Filter interface {
	Apply(src *image.RGBA) (*image.RGBA, error)
}

// Chain runs filters one after another, feeding each one the output of
// the previous.
type Chain struct {
	Filters []Filter
}

// NewChain creates a chain initialized with the given list of filters.
func NewChain(filters ...Filter) *Chain {
	return &Chain{
		Filters: filters,
	}
}

// Apply runs all the filters over src and returns the last output.
func (c *Chain) Apply(src *image.RGBA) (*image.RGBA, error) {
	var err error

	out := src
	for _, f := range c.Filters {
		if out, err = f.Apply(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ResizeFilter scales the image to a fixed size.
type ResizeFilter struct {
	Width  int
	Height int
}

func (f ResizeFilter) Apply(src *image.RGBA) (*image.RGBA, error) {
	return resizeRGBA(src, f.Width, f.Height)
}

// BlurFilter box blurs the image.
type BlurFilter struct {
	Radius int
}

func (f BlurFilter) Apply(src *image.RGBA) (*image.RGBA, error) {
	return blurRGBA(src, f.Radius)
}

// DimFilter darkens the image by painting black over it with the given
// opacity, between 0 and 1.
type DimFilter struct {
	Amount float64
}

func (f DimFilter) Apply(src *image.RGBA) (*image.RGBA, error) {
	amount := Clamp(f.Amount, 0, 1)
	if amount == 0 {
		return src, nil
	}
	dc := gg.NewContextForRGBA(src)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	dc.SetRGBA(0, 0, 0, amount)
	dc.Fill()
	return src, nil
}
