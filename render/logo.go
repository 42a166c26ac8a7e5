package render

import (
	"errors"
	"fmt"
	"image"
	"os"

	// Decoders for logo assets.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNoLogo is returned when Render is called without a logo image.
var ErrNoLogo = errors.New("no logo image")

// AssetLoadError reports a logo that could not be read or decoded.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("logo asset: %v", e.Err)
	}
	return fmt.Sprintf("logo asset %q: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// LoadLogo reads and decodes a raster image.
func LoadLogo(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	return img, nil
}

// overlayLogo draws logo scaled by zoom and centred on (cx, cy), clipped to dst.
func overlayLogo(dst xdraw.Image, logo image.Image, zoom float64, cx, cy int) image.Rectangle {
	src := logo.Bounds()
	w := int(float64(src.Dx())*zoom + 0.5)
	h := int(float64(src.Dy())*zoom + 0.5)
	if w < 1 || h < 1 {
		return image.Rectangle{}
	}

	target := image.Rect(cx-w/2, cy-h/2, cx-w/2+w, cy-h/2+h)
	xdraw.CatmullRom.Scale(dst, target, logo, src, xdraw.Over, nil)
	return target.Intersect(dst.Bounds())
}
