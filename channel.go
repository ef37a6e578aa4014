package blurlock

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// ChannelMasks describes which bits of a packed native pixel hold each
// color channel. The masks come from the visual of the captured image and
// differ between depths, so no fixed byte order is assumed.
type ChannelMasks struct {
	Red   uint32
	Green uint32
	Blue  uint32
	Alpha uint32
}

// channel isolates the bits selected by mask and shifts them down by the
// mask's trailing zero count.
func channel(pixel, mask uint32) uint8 {
	if mask == 0 {
		return 0
	}
	return uint8((pixel & mask) >> bits.TrailingZeros32(mask))
}

// Decode extracts the red, green and blue components of a native pixel.
func (m ChannelMasks) Decode(pixel uint32) (r, g, b uint8) {
	return channel(pixel, m.Red), channel(pixel, m.Green), channel(pixel, m.Blue)
}

// PixelFormat is the layout of a ZPixmap image as delivered by the X server.
type PixelFormat struct {
	Width        int
	Height       int
	BitsPerPixel int
	// ScanlinePad is the bit boundary each row is padded to.
	ScanlinePad int
	ByteOrder   binary.ByteOrder
	Masks       ChannelMasks
}

// Stride returns the number of bytes per row, padding included.
func (f PixelFormat) Stride() int {
	pad := f.ScanlinePad
	if pad <= 0 {
		pad = 8
	}
	rowBits := f.Width * f.BitsPerPixel
	return ((rowBits + pad - 1) / pad) * pad / 8
}

// DecodeZPixmap unpacks the raw pixel data of a ZPixmap image into an RGB
// buffer, decoding every pixel through the format's channel masks.
func DecodeZPixmap(data []byte, f PixelFormat) (*RGB, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("%w: invalid image size %dx%d", ErrCapture, f.Width, f.Height)
	}
	switch f.BitsPerPixel {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: unsupported pixel size of %d bits", ErrCapture, f.BitsPerPixel)
	}
	if f.ByteOrder == nil {
		f.ByteOrder = binary.LittleEndian
	}
	stride := f.Stride()
	if len(data) < stride*f.Height {
		return nil, fmt.Errorf("%w: got %d bytes of pixel data, want %d", ErrCapture, len(data), stride*f.Height)
	}

	bpp := f.BitsPerPixel / 8
	msb := f.ByteOrder == binary.BigEndian
	dst := NewRGB(f.Width, f.Height)
	di := 0
	for y := 0; y < f.Height; y++ {
		row := data[y*stride : y*stride+f.Width*bpp]
		for x := 0; x < f.Width; x++ {
			px := row[x*bpp : x*bpp+bpp]

			var pixel uint32
			switch bpp {
			case 1:
				pixel = uint32(px[0])
			case 2:
				pixel = uint32(f.ByteOrder.Uint16(px))
			case 3:
				if msb {
					pixel = uint32(px[0])<<16 | uint32(px[1])<<8 | uint32(px[2])
				} else {
					pixel = uint32(px[2])<<16 | uint32(px[1])<<8 | uint32(px[0])
				}
			case 4:
				pixel = f.ByteOrder.Uint32(px)
			}
			dst.Pix[di+0], dst.Pix[di+1], dst.Pix[di+2] = f.Masks.Decode(pixel)
			di += 3
		}
	}
	return dst, nil
}
