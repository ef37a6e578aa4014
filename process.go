package blurlock

import (
	"fmt"
	"image"
)

const (
	// DefaultScale is the factor the screen is shrunk by before blurring.
	DefaultScale = 4
	// DefaultBlurRadius is the box blur radius at the reduced size.
	DefaultBlurRadius = 3
)

// Processor : type with processing options
type Processor struct {
	// Scale divides the screen dimensions to get the blur resolution.
	Scale      int
	BlurRadius int
	Dim        float64
	Noise      int
}

// DefaultProcessor returns the processor used when no options are given.
func DefaultProcessor() *Processor {
	return &Processor{
		Scale:      DefaultScale,
		BlurRadius: DefaultBlurRadius,
	}
}

// ScaledSize divides n by scale, discarding any remainder. The result never
// drops below 1.
func ScaledSize(n, scale int) int {
	if scale <= 1 {
		return Max(n, 1)
	}
	return Max(n/scale, 1)
}

// Filters returns the chain of steps turning a source image into a
// backdrop of size g: shrink, blur, grow back to g, then the optional
// effects.
func (p *Processor) Filters(g Geometry) []Filter {
	filters := []Filter{
		ResizeFilter{Width: ScaledSize(g.Width, p.Scale), Height: ScaledSize(g.Height, p.Scale)},
		BlurFilter{Radius: p.BlurRadius},
		ResizeFilter{Width: g.Width, Height: g.Height},
	}
	if p.Dim > 0 {
		filters = append(filters, DimFilter{Amount: p.Dim})
	}
	if p.Noise > 0 {
		filters = append(filters, NoiseFilter{Amount: p.Noise})
	}
	return filters
}

// Process turns src into a blurred backdrop of exactly g.Width x g.Height.
func (p *Processor) Process(src image.Image, g Geometry) (*RGB, error) {
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid screen size %s", ErrTransform, g)
	}
	if src == nil || src.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty source image", ErrTransform)
	}
	if rgb, ok := src.(*RGB); ok {
		if err := rgb.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransform, err)
		}
	}

	out, err := NewChain(p.Filters(g)...).Apply(ImgToRGBA(src))
	if err != nil {
		return nil, err
	}
	return ImgToRGB(out), nil
}
