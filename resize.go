package blurlock

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// boxKernel is a box filter: every source pixel under the footprint of a
// destination pixel contributes with equal weight. When downscaling the
// footprint is stretched by the scale factor, which turns the resize into
// an area average. The footprint is closed at ±0.5 so a destination centre
// falling exactly between two source pixels still picks them up.
var boxKernel = &draw.Kernel{
	Support: 0.5 + 1e-9,
	At: func(t float64) float64 {
		if t <= 0.5 {
			return 1
		}
		return 0
	},
}

// resizeRGBA scales src to exactly width x height pixels.
func resizeRGBA(src image.Image, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid target size %dx%d", ErrTransform, width, height)
	}
	if src == nil || src.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty source image", ErrTransform)
	}
	if rgb, ok := src.(*RGB); ok {
		if err := rgb.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransform, err)
		}
		src = rgb.ToRGBA()
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	boxKernel.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// Resize resamples src to width x height with a box-filter convolution.
// Source and target aspect ratios may differ.
func Resize(src image.Image, width, height int) (*RGB, error) {
	dst, err := resizeRGBA(src, width, height)
	if err != nil {
		return nil, err
	}
	return ImgToRGB(dst), nil
}
