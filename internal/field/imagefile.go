package field

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a PNG, JPEG, BMP, TIFF or WebP file and builds a field
// from its red channel.
func LoadImage(path string, opts BuildOptions) (*Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("field: open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("field: decode image %s: %w", path, err)
	}
	return FromImage(img, opts)
}
