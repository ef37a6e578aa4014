package blurlock

import (
	"image"
)

type prng struct {
	a         int
	m         int
	randomNum int
	div       float64
}

func newPrng() *prng {
	return &prng{
		a:         16807,
		m:         0x7fffffff,
		randomNum: 1.0,
		div:       1.0 / 0x7fffffff,
	}
}

// NoiseFilter sprinkles grain over the image, like adobe's grain filter.
// The generator is seeded identically on every run so the same input always
// produces the same output.
type NoiseFilter struct {
	Amount int
}

func (f NoiseFilter) Apply(src *image.RGBA) (*image.RGBA, error) {
	if f.Amount <= 0 {
		return src, nil
	}
	prng := newPrng()
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	for y := 0; y < h; y++ {
		i := src.PixOffset(src.Bounds().Min.X, src.Bounds().Min.Y+y)
		for x := 0; x < w; x++ {
			noise := (prng.randomSeed() - 0.1) * float64(f.Amount)
			rf, gf, bf := float64(src.Pix[i]), float64(src.Pix[i+1]), float64(src.Pix[i+2])
			// Skip pixels the grain would push out of range.
			if rf+noise >= 0 && rf+noise < 255 &&
				gf+noise >= 0 && gf+noise < 255 &&
				bf+noise >= 0 && bf+noise < 255 {
				src.Pix[i+0] = uint8(rf + noise)
				src.Pix[i+1] = uint8(gf + noise)
				src.Pix[i+2] = uint8(bf + noise)
			}
			i += 4
		}
	}
	return src, nil
}

func (prng *prng) nextLongRand(seed int) int {
	lo := prng.a * (seed & 0xffff)
	hi := prng.a * (seed >> 16)
	lo += (hi & 0x7fff) << 16

	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	lo += hi >> 15
	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	return lo
}

func (prng *prng) randomSeed() float64 {
	prng.randomNum = prng.nextLongRand(prng.randomNum)
	return float64(prng.randomNum) * prng.div
}
