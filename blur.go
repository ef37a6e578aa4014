package blurlock

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"
)

// blurRGBA applies a box blur of the given radius. A radius of zero or
// less leaves the pixels untouched.
func blurRGBA(src image.Image, radius int) (*image.RGBA, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty source image", ErrTransform)
	}
	if rgb, ok := src.(*RGB); ok {
		if err := rgb.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTransform, err)
		}
		src = rgb.ToRGBA()
	}
	if radius <= 0 {
		return clone.AsRGBA(src), nil
	}
	return blur.Box(src, float64(radius)), nil
}

// Blur returns a box blurred copy of src with identical dimensions.
func Blur(src image.Image, radius int) (*RGB, error) {
	dst, err := blurRGBA(src, radius)
	if err != nil {
		return nil, err
	}
	return ImgToRGB(dst), nil
}
