package blurlock

import (
	"fmt"
	"image"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/esimov/blurlock/utils"
)

// FileSource loads the backdrop from a still image instead of the screen.
// Path may also be an http(s) URL.
type FileSource struct {
	Path string
}

// Image decodes the image file.
func (s *FileSource) Image() (image.Image, error) {
	path := s.Path
	if isURL(path) {
		f, err := utils.DownloadImage(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		defer os.Remove(f.Name())
		f.Close()
		path = f.Name()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, s.Path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s: empty image", ErrDecode, s.Path)
	}
	return img, nil
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
